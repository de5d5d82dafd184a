// Package tui renders the color picker page as a full-screen Bubble Tea program.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/huepick/huepick/key"
	"github.com/huepick/huepick/picker"
	"github.com/huepick/huepick/prefs"
	"github.com/spf13/viper"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Store persists the picked color. Nil runs the page without persistence.
	Store prefs.Store
}

// Run builds the page from the store and blocks until the user quits.
// A store failure that is still on screen at exit is returned.
func Run(options *Options) error {
	page, err := picker.New(options.Store)
	if err != nil {
		return err
	}

	programOptions := []tea.ProgramOption{tea.WithAltScreen()}
	if viper.GetBool(key.TUIMouse) {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}

	model, err := tea.NewProgram(newBubble(page), programOptions...).Run()
	if err != nil {
		return err
	}

	if b, ok := model.(*pickerBubble); ok && b.state == errorState {
		return b.lastError
	}
	return nil
}

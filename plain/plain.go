// Package plain implements a prompt-driven picker for terminals where the
// full-screen interface is unwanted, such as scripts, logs or dumb terminals.
package plain

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/huepick/huepick/color"
	"github.com/huepick/huepick/icon"
	"github.com/huepick/huepick/key"
	"github.com/huepick/huepick/picker"
	"github.com/huepick/huepick/prefs"
	"github.com/huepick/huepick/style"
	"github.com/huepick/huepick/util"
	"github.com/spf13/viper"
)

const doneOption = "Done"

// Asker matches survey.AskOne.
type Asker func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Options configures Run.
type Options struct {
	Store prefs.Store

	// Out receives the caption and swatch. Defaults to stdout.
	Out io.Writer
	// Ask runs the menu prompt. Defaults to survey.AskOne.
	Ask Asker
}

// Run mounts the page, then loops on a select prompt until the user picks Done
// or interrupts. Every pick is persisted before the new state is printed.
func Run(options *Options) error {
	out, ask := options.Out, options.Ask
	if out == nil {
		out = os.Stdout
	}
	if ask == nil {
		ask = survey.AskOne
	}

	page, err := picker.New(options.Store)
	if err != nil {
		return err
	}
	if err := page.Mount(); err != nil {
		return err
	}

	width := viper.GetInt(key.TUISwatchWidth)
	if w, _, err := util.TerminalSize(); err == nil {
		width = util.Clamp(width, 1, w)
	}

	for {
		printPage(out, page, width)

		prompt := &survey.Select{
			Message: "Select Your Code",
			Options: append(color.Labels(), doneOption),
		}
		if current, ok := color.Lookup(page.Applied()); ok {
			prompt.Default = current.Label
		}

		var answer string
		err := ask(prompt, &answer)
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}

		if answer == doneOption {
			return nil
		}

		choice, ok := color.Lookup(answer)
		if !ok {
			return fmt.Errorf("unknown color %q", answer)
		}
		if err := page.SelectColor(choice.Name); err != nil {
			return err
		}
	}
}

func printPage(out io.Writer, page *picker.Page, width int) {
	fmt.Fprintln(out, icon.Get(icon.Pointer), page.Caption())
	fmt.Fprintln(out, style.Block(color.Swatch(page.Applied()), width, 1))
}

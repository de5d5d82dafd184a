package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/huepick/huepick/color"
	"github.com/huepick/huepick/key"
	"github.com/huepick/huepick/log"
	"github.com/huepick/huepick/picker"
	"github.com/huepick/huepick/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// pickerBubble is the Bubble Tea model wrapping a picker.Page.
type pickerBubble struct {
	state     state
	lastError error

	page   *picker.Page
	cursor int

	keymap *statefulKeymap
	helpC  help.Model

	swatchWidth, swatchHeight int
	showHelp                  bool

	width, height int
}

func newBubble(page *picker.Page) *pickerBubble {
	b := &pickerBubble{
		state:        pageState,
		page:         page,
		keymap:       newStatefulKeymap(),
		helpC:        help.New(),
		swatchWidth:  viper.GetInt(key.TUISwatchWidth),
		swatchHeight: viper.GetInt(key.TUISwatchHeight),
		showHelp:     viper.GetBool(key.TUIShowHelp),
	}

	// Start the cursor on the restored color so enter re-picks it.
	b.cursor = max(lo.IndexOf(color.Names(), page.Selected()), 0)
	b.keymap.setMenuOpen(page.MenuOpen())

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	return b
}

func (b *pickerBubble) raiseError(err error) {
	log.Error(err)
	b.lastError = err
	b.setState(errorState)
}

func (b *pickerBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *pickerBubble) resize(width, height int) {
	b.width = width
	b.height = height
	b.helpC.Width = width - containerStyle.GetHorizontalFrameSize()
}

func (b *pickerBubble) toggleMenu() {
	b.page.ToggleMenu()
	b.keymap.setMenuOpen(b.page.MenuOpen())
}

// selectIndex picks the i-th menu option. Options are only reachable while the menu is shown.
func (b *pickerBubble) selectIndex(i int) {
	options := b.page.Options()
	if !b.page.MenuOpen() || i < 0 || i >= len(options) {
		return
	}

	b.cursor = i
	if err := b.page.SelectColor(options[i].Name); err != nil {
		b.raiseError(err)
	}
}

func (b *pickerBubble) moveCursor(delta int) {
	b.cursor = util.Wrap(b.cursor+delta, len(b.page.Options()))
}

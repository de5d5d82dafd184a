package tui

import (
	"strconv"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *pickerBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mountMsg:
		if err := b.page.Mount(); err != nil {
			b.raiseError(err)
		}
		return b, nil
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case errorState:
		return b.updateError(msg)
	default:
		return b.updatePage(msg)
	}
}

func (b *pickerBubble) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		b.click(msg)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
		case bubblesKey.Matches(msg, b.keymap.toggle):
			b.toggleMenu()
		case !b.page.MenuOpen():
			if bubblesKey.Matches(msg, b.keymap.pick) {
				b.toggleMenu()
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			b.toggleMenu()
		case bubblesKey.Matches(msg, b.keymap.up):
			b.moveCursor(-1)
		case bubblesKey.Matches(msg, b.keymap.down):
			b.moveCursor(1)
		case bubblesKey.Matches(msg, b.keymap.pick):
			b.selectIndex(b.cursor)
		case bubblesKey.Matches(msg, b.keymap.direct):
			n, _ := strconv.Atoi(msg.String())
			b.selectIndex(n - 1)
		}
	}

	return b, nil
}

// click handles left-button presses on the toggle button and the menu items.
func (b *pickerBubble) click(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	l := b.layout()
	switch {
	case l.button.contains(msg.X, msg.Y):
		b.toggleMenu()
	case b.page.MenuOpen():
		for i, item := range l.items {
			if item.contains(msg.X, msg.Y) {
				b.selectIndex(i)
				return
			}
		}
	}
}

func (b *pickerBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.setState(pageState)
		}
	}

	return b, nil
}

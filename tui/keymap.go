package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap holds every binding; help() narrows them to what the current state accepts.
type statefulKeymap struct {
	state    state
	menuOpen bool

	quit, forceQuit,
	toggle, pick,
	up, down,
	direct,
	back,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func (k *statefulKeymap) setMenuOpen(open bool) {
	k.menuOpen = open
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle menu"),
		),
		pick: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "pick"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		direct: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "pick directly"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case errorState:
		return h(k.back, k.quit), h(k.back, k.quit, k.forceQuit)
	default:
		if k.menuOpen {
			return h(k.up, k.down, k.pick, k.toggle, k.quit),
				h(k.up, k.down, k.pick, k.direct, k.toggle, k.showHelp, k.quit, k.forceQuit)
		}

		open := withDescription(k.pick, "open menu")
		return h(open, k.quit), h(open, k.toggle, k.showHelp, k.quit, k.forceQuit)
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}

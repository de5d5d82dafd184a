package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// mountMsg triggers the page's mount effect. It is delivered after the first
// frame, so the swatch starts out unstyled and fills in right after.
type mountMsg struct{}

func (b *pickerBubble) Init() tea.Cmd {
	return func() tea.Msg {
		return mountMsg{}
	}
}

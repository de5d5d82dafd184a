package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huepick/huepick/color"
	"github.com/huepick/huepick/icon"
	"github.com/huepick/huepick/style"
	"github.com/muesli/reflow/wrap"
)

const buttonLabel = "Select Your Code"

var (
	containerStyle = lipgloss.NewStyle().Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Bold(true).
			Foreground(style.ButtonText).
			Background(style.ButtonBackground)

	menuItemStyle = lipgloss.NewStyle().
			Width(16).
			Padding(0, 1).
			Foreground(style.MenuText).
			Background(style.MenuBackground)

	menuCursorStyle = menuItemStyle.Background(style.MenuCursor).Bold(true)
)

// rect is a clickable screen region in cell coordinates.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// pageLayout mirrors where viewPage draws the button and the menu items.
type pageLayout struct {
	button rect
	items  []rect
}

func (b *pickerBubble) layout() pageLayout {
	top, left := containerStyle.GetPaddingTop(), containerStyle.GetPaddingLeft()

	button := buttonStyle.Render(buttonLabel)
	l := pageLayout{
		button: rect{x: left, y: top, w: lipgloss.Width(button), h: lipgloss.Height(button)},
	}

	if b.page.MenuOpen() {
		width := lipgloss.Width(menuItemStyle.Render(""))
		for i := range b.page.Options() {
			l.items = append(l.items, rect{x: left, y: top + l.button.h + i, w: width, h: 1})
		}
	}

	return l
}

func (b *pickerBubble) View() string {
	switch b.state {
	case errorState:
		return b.viewError()
	default:
		return b.viewPage()
	}
}

func (b *pickerBubble) viewPage() string {
	lines := []string{buttonStyle.Render(buttonLabel)}

	if b.page.MenuOpen() {
		lines = append(lines, b.viewMenu())
	}

	lines = append(lines,
		"",
		b.page.Caption(),
		"",
		style.Block(color.Swatch(b.page.Applied()), b.swatchWidth, b.swatchHeight),
	)

	return b.renderLines(b.showHelp, lines)
}

func (b *pickerBubble) viewMenu() string {
	options := b.page.Options()
	items := make([]string, len(options))

	for i, option := range options {
		label := option.Label
		if option.Name == b.page.Applied() {
			label = fmt.Sprintf("%s %s", label, icon.Get(icon.Check))
		}

		if i == b.cursor {
			items[i] = menuCursorStyle.Render(label)
		} else {
			items[i] = menuItemStyle.Render(label)
		}
	}

	return strings.Join(items, "\n")
}

func (b *pickerBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	if b.width > 0 {
		errorBody = wrap.String(errorBody, b.width-containerStyle.GetHorizontalFrameSize())
	}

	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " An error occurred:",
		"",
		errorBody,
	})
}

// renderLines stacks lines in the page container, pushing the help footer to the bottom.
func (b *pickerBubble) renderLines(addHelp bool, lines []string) string {
	body := strings.Join(lines, "\n")

	if addHelp {
		h := lipgloss.Height(body) + containerStyle.GetVerticalFrameSize() + 1
		if b.height > h {
			body += strings.Repeat("\n", b.height-h)
		}
		body += "\n" + b.helpC.View(b.keymap)
	}

	container := containerStyle.
		Foreground(style.PageText).
		Background(style.PageBackground)
	if b.width > 0 && b.height > 0 {
		container = container.Width(b.width).Height(b.height)
	}

	return container.Render(body)
}

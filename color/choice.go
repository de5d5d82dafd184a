package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Choice is one entry of the picker menu.
type Choice struct {
	// Name is the identifier that gets persisted, e.g. "red".
	Name string
	// Label is what the menu shows, e.g. "Red".
	Label string
	// Hex is the CSS value of the named color.
	Hex string
}

// Choices lists the pickable colors in menu order.
var Choices = []Choice{
	{Name: "red", Label: "Red", Hex: "#ff0000"},
	{Name: "blue", Label: "Blue", Hex: "#0000ff"},
	{Name: "yellow", Label: "Yellow", Hex: "#ffff00"},
	{Name: "gray", Label: "Gray", Hex: "#808080"},
	{Name: "green", Label: "Green", Hex: "#008000"},
}

// Names returns the persisted identifiers of all choices, in menu order.
func Names() []string {
	return lo.Map(Choices, func(c Choice, _ int) string { return c.Name })
}

// Labels returns the menu labels of all choices, in menu order.
func Labels() []string {
	return lo.Map(Choices, func(c Choice, _ int) string { return c.Label })
}

// Lookup finds a choice by name or label, ignoring case.
func Lookup(name string) (Choice, bool) {
	return lo.Find(Choices, func(c Choice) bool {
		return strings.EqualFold(c.Name, name) || strings.EqualFold(c.Label, name)
	})
}

// Swatch resolves a stored color identifier to a renderable color.
// Known names map to their CSS hex value; anything else is passed through
// untouched, so a hex string still renders and an unknown word renders unstyled.
func Swatch(name string) lipgloss.Color {
	if c, ok := lo.Find(Choices, func(c Choice) bool { return c.Name == name }); ok {
		return New(c.Hex)
	}
	return New(name)
}

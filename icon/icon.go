// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/huepick/huepick/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a UI symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Check
	Pointer
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "X",
		kaomoji: "(x_x)",
		squares: "▣",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "\uf05d",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Check: {
		emoji:   "✅",
		nerd:    "\uf00c",
		plain:   "*",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "■",
	},
	Pointer: {
		emoji:   "👉",
		nerd:    "\uf0a4",
		plain:   ">",
		kaomoji: "(☞ﾟ∀ﾟ)☞",
		squares: "▸",
	},
}

// Get retrieves the representation for the active icons.variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}

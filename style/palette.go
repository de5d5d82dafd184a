package style

import "github.com/charmbracelet/lipgloss"

// Page chrome colors.
var (
	PageBackground = lipgloss.Color("#0f172a")
	PageText       = lipgloss.Color("#ffffff")

	ButtonBackground = lipgloss.Color("#9ca3af")
	ButtonText       = lipgloss.Color("#000000")

	MenuBackground = lipgloss.Color("#3d3d3d")
	MenuText       = lipgloss.Color("#ffffff")
	MenuCursor     = lipgloss.Color("#5b5b5b")

	ErrorColor = lipgloss.Color("#f38ba8")
)

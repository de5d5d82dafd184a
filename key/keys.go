// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 10

// Preference Storage - these keys select where the picked color is persisted.
const (
	StorageBackend = "storage.backend"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the picker's input handling and geometry.
const (
	TUIMouse        = "tui.mouse"
	TUISwatchWidth  = "tui.swatch_width"
	TUISwatchHeight = "tui.swatch_height"
	TUIShowHelp     = "tui.show_help"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)

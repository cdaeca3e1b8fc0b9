// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 9

// Catalog Resolution - these keys locate the series catalog fed into the selection views.
const (
	CatalogDefault = "catalog.default"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive selection view.
const (
	TUIItemSpacing     = "tui.item_spacing"
	TUIShowIdentifiers = "tui.show_identifiers"
)

// Inline Mode - these keys set defaults for the scriptable, non-interactive mode.
const (
	InlineJson = "inline.json"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)

package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReload   = "⟳"
	IconRemove   = "×"
	IconError    = "❌"
)

// Text fragments
const (
	URLPlaceholder   = "https://example.com/image.png"
	AddButtonLabel   = "Add"
	FailedTileLabel  = "failed to load"
	CaptionMaxLength = 32
	CaptionEllipsis  = "…"
)

// Layout sizing (gallery tiles)
const (
	TileWidth   float32 = 220
	TileHeight  float32 = 200
	CaptionSize float32 = 24
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)

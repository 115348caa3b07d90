package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 820
)

// Dialog sizing
const (
	SettingsDialogW float32 = 480
	SettingsDialogH float32 = 320
)

package tui

// Key name constants shared by MenuPicker and CountPrefixState, matching
// the strings bubbletea's KeyMsg.String() produces for these bindings.
const (
	keyEsc  = "esc"
	keyUp   = "up"
	keyDown = "down"
	keyJ    = "j"
	keyK    = "k"
)

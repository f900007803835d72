package constants

import "time"

// Input adaptation
const (
	// InputHoldWindow is how long a key press counts as held
	// Terminals report presses and auto-repeats only, never releases
	InputHoldWindow = 150 * time.Millisecond

	// MaxPlayers bounds per-player input state
	MaxPlayers = 2
)

package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the fixed simulation and render tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Playfield is the logical coordinate space of the simulation core
// Renderers scale it onto whatever terminal size is available
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

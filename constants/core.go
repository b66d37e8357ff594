package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputQueueSize is the buffer of the terminal event channel
	InputQueueSize = 256
)

// Grid
const (
	// GridSize is the width and height of the toroidal play field
	GridSize = 15

	// InitialHeadX and InitialHeadY place the single-segment snake on reset
	InitialHeadX = 7
	InitialHeadY = 7
)

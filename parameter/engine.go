package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the simulation update interval (clock tick)
	TickInterval = 20 * time.Millisecond

	// SchedulerStallFactor bounds how long the scheduler waits for the
	// renderer's frame-ready signal before ticking anyway, in multiples
	// of TickInterval
	SchedulerStallFactor = 2
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

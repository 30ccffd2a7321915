package events

import (
	"time"

	"github.com/lixenwraith/ripple-fleet/sim"
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventRippleSpawn requests a new ripple at a domain position
	// Trigger: InputHandler (mouse press)
	// Consumer: Scheduler | Payload: *RippleSpawnPayload
	EventRippleSpawn EventType = iota

	// EventTuneAdjust shifts one flocking multiplier
	// Trigger: InputHandler (k/K, a/A, s/S)
	// Consumer: Scheduler | Payload: *TuneAdjustPayload
	EventTuneAdjust

	// EventBoundsResize updates the domain half extents
	// Trigger: InputHandler on terminal resize
	// Consumer: Scheduler | Payload: *BoundsResizePayload
	EventBoundsResize

	// EventVariantToggle flips between the flocking variants
	// Trigger: InputHandler (v key)
	// Consumer: Scheduler | Payload: nil
	EventVariantToggle
)

// Event represents a single simulation event with metadata
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// TuneParam selects which multiplier a TuneAdjust targets
type TuneParam int

const (
	TuneCohesion TuneParam = iota
	TuneAlignment
	TuneSeparation
)

// RippleSpawnPayload carries the spawn position in domain coordinates
// and the brush color selected in the shell
type RippleSpawnPayload struct {
	Pos   vmath.Vec2
	Color sim.ColorTag
}

// TuneAdjustPayload carries a multiplier delta
type TuneAdjustPayload struct {
	Param TuneParam
	Delta int
}

// BoundsResizePayload carries the new domain half extents
type BoundsResizePayload struct {
	HalfW float64
	HalfH float64
}

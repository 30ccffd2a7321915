package sim

import "github.com/lixenwraith/ripple-fleet/vmath"

// Ripple is an expanding disturbance zone. Radius grows every tick;
// the ripple is dropped the tick its radius would reach the maximum.
type Ripple struct {
	Pos    vmath.Vec2
	Radius float64
	Color  ColorTag
}

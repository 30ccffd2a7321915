package sim

import "github.com/lixenwraith/ripple-fleet/vmath"

// ShipView is a ship's render-facing state.
type ShipView struct {
	Pos     vmath.Vec2
	Heading vmath.Vec2
	Color   ColorTag
}

// RippleView is a ripple's render-facing state. Draw styling (intensity,
// thickness) is derived by the renderer from Radius and the snapshot's
// MaxRadius.
type RippleView struct {
	Pos    vmath.Vec2
	Radius float64
	Color  ColorTag
}

// Snapshot is an immutable copy of the visible simulation state, built
// once per tick and safe to read from other goroutines.
type Snapshot struct {
	Ships   []ShipView
	Ripples []RippleView

	Tick     uint64
	Tunables Tunables
	Variant  FlockVariant

	HalfWidth  float64
	HalfHeight float64

	// MaxRadius and HeadingLength let the renderer derive ripple
	// intensity and heading tick scale without reaching into config
	MaxRadius     float64
	HeadingLength float64
}

// Snapshot copies the current populations. Both rings are walked with
// read-only full rotations, leaving head positions where they started.
func (s *Simulation) Snapshot() *Snapshot {
	snap := &Snapshot{
		Ships:         make([]ShipView, 0, s.ships.Len()),
		Ripples:       make([]RippleView, 0, s.ripples.Len()),
		Tick:          s.ticks,
		Tunables:      s.tun,
		Variant:       s.cfg.Variant,
		HalfWidth:     s.cfg.HalfWidth,
		HalfHeight:    s.cfg.HalfHeight,
		MaxRadius:     s.cfg.RippleMaxRadius,
		HeadingLength: s.cfg.HeadingLength,
	}

	n := s.ships.Len()
	for i := 0; i < n; i++ {
		shp := s.ships.PeekHead()
		snap.Ships = append(snap.Ships, ShipView{Pos: shp.Pos, Heading: shp.Heading, Color: shp.Color})
		s.ships.Rotate()
	}

	m := s.ripples.Len()
	for i := 0; i < m; i++ {
		rip := s.ripples.PeekHead()
		snap.Ripples = append(snap.Ripples, RippleView{Pos: rip.Pos, Radius: rip.Radius, Color: rip.Color})
		s.ripples.Rotate()
	}

	return snap
}

// Package sim implements the particle simulation core: a fixed ship
// population perturbed by expanding color-tagged ripples and by
// cohesion, alignment and separation passes. The core owns no clock, no
// screen and no input; the surrounding shell calls Tick on a fixed
// period, pushes ripples in, adjusts the multipliers, and pulls
// immutable snapshots to draw.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/ripple-fleet/ring"
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// Simulation holds the two live populations and their tunables. Not
// safe for concurrent use: one goroutine mutates via Tick and friends,
// readers consume snapshots.
type Simulation struct {
	cfg Config
	tun Tunables

	ships   *ring.Ring[Ship]
	ripples *ring.Ring[Ripple]

	ticks uint64
}

// New validates cfg and builds the initial population from rng.
func New(cfg Config, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Simulation{
		cfg:     cfg,
		ships:   newPopulation(cfg, rng),
		ripples: ring.New[Ripple](16),
	}, nil
}

// SpawnRipple inserts a Growing ripple at radius zero. The caller
// supplies the color; the current brush selection is shell state.
func (s *Simulation) SpawnRipple(pos vmath.Vec2, color ColorTag) {
	s.ripples.InsertAtHead(Ripple{Pos: pos, Color: color})
}

// SetBounds updates the domain half extents used by boundary
// reflection. Supplied by the windowing collaborator on resize.
func (s *Simulation) SetBounds(halfW, halfH float64) {
	if halfW > 0 {
		s.cfg.HalfWidth = halfW
	}
	if halfH > 0 {
		s.cfg.HalfHeight = halfH
	}
}

// SetVariant switches the flocking arithmetic between the literal and
// corrected forms.
func (s *Simulation) SetVariant(v FlockVariant) {
	if v == FlockLiteral || v == FlockCorrected {
		s.cfg.Variant = v
	}
}

// Variant returns the active flocking arithmetic.
func (s *Simulation) Variant() FlockVariant {
	return s.cfg.Variant
}

// AdjustCohesion shifts the cohesion multiplier, clamped at zero.
func (s *Simulation) AdjustCohesion(delta int) int {
	return s.tun.AdjustCohesion(delta)
}

// AdjustAlignment shifts the alignment multiplier, clamped at zero.
func (s *Simulation) AdjustAlignment(delta int) int {
	return s.tun.AdjustAlignment(delta)
}

// AdjustSeparation shifts the separation multiplier, clamped at zero.
func (s *Simulation) AdjustSeparation(delta int) int {
	return s.tun.AdjustSeparation(delta)
}

// Tunables returns the current multiplier values.
func (s *Simulation) Tunables() Tunables {
	return s.tun
}

// ShipCount returns the fixed population size.
func (s *Simulation) ShipCount() int {
	return s.ships.Len()
}

// RippleCount returns the number of live ripples.
func (s *Simulation) RippleCount() int {
	return s.ripples.Len()
}

// Ticks returns how many updates have run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Tick advances the simulation one step: the ripple lifecycle completes
// first, then the ship pipeline runs its passes in fixed order, each
// pass consuming the output of the previous one.
func (s *Simulation) Tick() {
	s.advanceRipples()

	s.translateAndReflect()
	s.displaceShips()
	s.cohesionPass()
	s.alignmentPass()
	s.separationPass()

	s.ticks++
}

// advanceRipples grows every ripple present at tick start by the
// configured increment and drops those that would reach the maximum
// radius. Survivors are re-inserted at the head and rotated past, so
// the walk visits each tick-start ripple exactly once even as spawned
// ripples sit in the ring.
func (s *Simulation) advanceRipples() {
	n := s.ripples.Len()
	for i := 0; i < n; i++ {
		rip := s.ripples.PeekHead()
		s.ripples.RemoveHead()
		rip.Radius += s.cfg.RippleIncrement
		if rip.Radius < s.cfg.RippleMaxRadius {
			s.ripples.InsertAtHead(rip)
			s.ripples.Rotate()
		}
	}
}

// intensity is the displacement strength of a ripple at its current
// radius: full at spawn, linearly decaying to zero at expiry.
func (s *Simulation) intensity(radius float64) float64 {
	return s.cfg.DisplacementGain * (s.cfg.RippleMaxRadius - radius) / s.cfg.RippleMaxRadius
}

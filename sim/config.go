package sim

import (
	"fmt"

	"github.com/lixenwraith/ripple-fleet/parameter"
)

// FlockVariant selects between the historical flocking arithmetic and
// the corrected form.
type FlockVariant uint8

const (
	// FlockLiteral reproduces the historical pass arithmetic: cohesion
	// and alignment keep one running sum across the whole pass and the
	// pair tally counts every (ship, ripple) pair examined, overlapping
	// or not, so the averaging divisor depends on ripple count.
	FlockLiteral FlockVariant = iota

	// FlockCorrected keeps per-ship sums and counts only overlapping
	// pairs; ships with no overlapping ripple are left untouched by the
	// cohesion and alignment passes.
	FlockCorrected
)

func (v FlockVariant) String() string {
	switch v {
	case FlockLiteral:
		return "literal"
	case FlockCorrected:
		return "corrected"
	}
	return "unknown"
}

// Config carries every numeric tunable of the simulation core. It is
// owned by the application shell and passed in at construction; the
// core holds no ambient state.
type Config struct {
	// Domain half extents; updated via SetBounds on window resize
	HalfWidth  float64
	HalfHeight float64

	// Population
	ShipCount  int
	ShipRadius float64

	// BoundsScale multiplies a position before the boundary test
	BoundsScale float64

	// Heading
	HeadingLength float64
	HeadingSeed   float64

	// Speed draw range
	SpeedMin float64
	SpeedMax float64

	// Ripple growth
	RippleIncrement float64
	RippleMaxRadius float64

	// Displacement
	DisplacementGain float64

	Variant FlockVariant
}

// DefaultConfig returns the historical engine's constants.
func DefaultConfig() Config {
	return Config{
		HalfWidth:        parameter.DomainHalfWidth,
		HalfHeight:       parameter.DomainHalfHeight,
		ShipCount:        parameter.ShipCount,
		ShipRadius:       parameter.ShipRadius,
		BoundsScale:      parameter.BoundsScale,
		HeadingLength:    parameter.HeadingLength,
		HeadingSeed:      parameter.HeadingSeed,
		SpeedMin:         parameter.ShipSpeedMin,
		SpeedMax:         parameter.ShipSpeedMax,
		RippleIncrement:  parameter.RippleRadiusIncrement,
		RippleMaxRadius:  parameter.RippleMaxRadius,
		DisplacementGain: parameter.DisplacementGain,
		Variant:          FlockLiteral,
	}
}

// Validate rejects configurations the update loop cannot run on.
func (c Config) Validate() error {
	if c.HalfWidth <= 0 || c.HalfHeight <= 0 {
		return fmt.Errorf("sim: domain half extents must be positive, got %gx%g", c.HalfWidth, c.HalfHeight)
	}
	if c.ShipCount < 0 {
		return fmt.Errorf("sim: ship count must be non-negative, got %d", c.ShipCount)
	}
	if c.ShipRadius < 0 {
		return fmt.Errorf("sim: ship radius must be non-negative, got %g", c.ShipRadius)
	}
	if c.BoundsScale <= 0 {
		return fmt.Errorf("sim: bounds scale must be positive, got %g", c.BoundsScale)
	}
	if c.HeadingLength <= 0 {
		return fmt.Errorf("sim: heading length must be positive, got %g", c.HeadingLength)
	}
	if c.SpeedMin <= 0 || c.SpeedMax < c.SpeedMin {
		return fmt.Errorf("sim: speed range [%g, %g] invalid", c.SpeedMin, c.SpeedMax)
	}
	if c.RippleIncrement <= 0 {
		return fmt.Errorf("sim: ripple increment must be positive, got %g", c.RippleIncrement)
	}
	if c.RippleMaxRadius <= 0 {
		return fmt.Errorf("sim: ripple max radius must be positive, got %g", c.RippleMaxRadius)
	}
	if c.Variant != FlockLiteral && c.Variant != FlockCorrected {
		return fmt.Errorf("sim: unknown flocking variant %d", c.Variant)
	}
	return nil
}

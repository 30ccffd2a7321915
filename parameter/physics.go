package parameter

// Domain & Population
const (
	// DomainHalfWidth is half the nominal world width (world spans ±1.0)
	DomainHalfWidth = 1.0

	// DomainHalfHeight is half the nominal world height
	DomainHalfHeight = 1.0

	// ShipCount is the fixed ship population per run
	ShipCount = 1000

	// ShipRadius is the ship's nominal body radius, also the clamp margin
	// applied on boundary reflection
	ShipRadius = 0.02

	// BoundsScale multiplies a ship position before the bounds test. The
	// historical engine scaled positions by the ship radius here, making
	// the effective reflective boundary 50x the viewport; kept as an
	// explicit tunable rather than silently corrected
	BoundsScale = 0.02
)

// Ripple Growth
const (
	// RippleInitialRadius is the radius a ripple spawns with
	RippleInitialRadius = 0.0

	// RippleMaxRadius expires a ripple the tick its radius would reach it
	RippleMaxRadius = 0.5

	// RippleRadiusIncrement is the per-tick radius growth
	RippleRadiusIncrement = 0.01
)

// Ship Motion
const (
	// HeadingLength is the fixed heading magnitude V restored after every
	// pass that touches a nonzero heading
	HeadingLength = 0.01

	// HeadingSeed bounds the uniform ±seed per-axis vector a ship's
	// initial heading is drawn from before normalization
	HeadingSeed = 0.0001

	// ShipSpeedMin / ShipSpeedMax bound the uniform per-ship speed draw
	ShipSpeedMin = 0.010
	ShipSpeedMax = 0.045

	// DisplacementGain scales ripple displacement intensity
	DisplacementGain = 0.05
)

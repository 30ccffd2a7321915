package sim

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/ripple-fleet/ring"
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// Ship is an autonomous particle. Heading is the perturbation direction
// held at the fixed length V while nonzero; Vel is the independent
// per-axis translation increment with |Vel| == Speed.
type Ship struct {
	Pos     vmath.Vec2
	Heading vmath.Vec2
	Color   ColorTag
	Speed   float64
	Vel     vmath.Vec2
}

// newPopulation builds the initial ship ring: positions uniform over the
// domain, headings seeded from a small random vector then normalized to
// the fixed length, colors uniform over the palette, and a velocity
// increment split from a uniform speed draw with random per-axis signs.
func newPopulation(cfg Config, rng *rand.Rand) *ring.Ring[Ship] {
	ships := ring.New[Ship](cfg.ShipCount)

	for i := 0; i < cfg.ShipCount; i++ {
		var shp Ship

		shp.Pos.X = cfg.HalfWidth * (2*rng.Float64() - 1)
		shp.Pos.Y = cfg.HalfHeight * (2*rng.Float64() - 1)

		shp.Heading.X = cfg.HeadingSeed * (2*rng.Float64() - 1)
		shp.Heading.Y = cfg.HeadingSeed * (2*rng.Float64() - 1)
		shp.Heading = vmath.NormalizeToLength(shp.Heading, cfg.HeadingLength)

		shp.Color = ColorTag(rng.Intn(PaletteSize))

		shp.Speed = cfg.SpeedMin + rng.Float64()*(cfg.SpeedMax-cfg.SpeedMin)
		shp.Vel.X = shp.Speed/4 + rng.Float64()*(shp.Speed-shp.Speed/4)
		shp.Vel.Y = math.Sqrt(shp.Speed*shp.Speed - shp.Vel.X*shp.Vel.X)
		if rng.Float64() < 0.5 {
			shp.Vel.X = -shp.Vel.X
		}
		if rng.Float64() < 0.5 {
			shp.Vel.Y = -shp.Vel.Y
		}

		ships.InsertAtHead(shp)
	}

	return ships
}

package vmath

// ReflectAxis handles one axis of boundary collision. The position is
// tested against ±half after multiplication by scale; the historical
// engine tested a scaled-down position, which makes the effective
// boundary much larger than the nominal viewport, so callers pass the
// scale explicitly rather than inheriting a hidden constant. On
// violation the position is clamped just inside the bound (half minus
// margin, in unscaled units) and the velocity component is negated, both
// on the same tick. Returns the new position, the new velocity and
// whether a reflection occurred.
func ReflectAxis(pos, vel, half, margin, scale float64) (float64, float64, bool) {
	scaled := pos * scale
	if scaled > half {
		return half - margin, -vel, true
	}
	if scaled < -half {
		return -(half - margin), -vel, true
	}
	return pos, vel, false
}

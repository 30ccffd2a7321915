package vmath

// WithinRadius reports whether the squared Euclidean distance between a
// and b is strictly less than r². The strict inequality means a point
// exactly on the circle boundary is not yet inside.
func WithinRadius(a, b Vec2, r float64) bool {
	d := a.Sub(b)
	return d.LengthSq() < r*r
}

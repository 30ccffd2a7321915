package vmath

import "math"

// Vec2 is a 2D vector in domain coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean magnitude.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude without the sqrt.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// NormalizeToLength rescales v so its magnitude equals length. A zero
// vector is returned unchanged: "no heading" is a rest state, not an
// error, and dividing by a zero magnitude would poison the vector.
func NormalizeToLength(v Vec2, length float64) Vec2 {
	mag := v.Length()
	if mag == 0 {
		return v
	}
	return v.Scale(length / mag)
}

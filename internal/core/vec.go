package core

import "math"

// Vec2 is a 2D vector in fractional screen-cell space.
// Particles and drift effects move in this space before being
// snapped to cells for drawing.
type Vec2 struct {
	X, Y float64
}

// Len returns the vector's length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Normalize returns a unit vector in the direction of v.
// A zero-length vector is returned unchanged so a degenerate
// direction never propagates NaN into positions.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

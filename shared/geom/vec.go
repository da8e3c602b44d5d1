// Package geom holds the 2D vector and axis-aligned rectangle math used by
// the level grid, the contact generator and the simulation core.
// Coordinates are y-down, matching screen space and TMX maps.
package geom

import "math"

// Vec2 is a 2D float vector. It is a plain value type.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// MagSq returns the squared magnitude.
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalize returns the unit vector pointing the same way as v.
// A zero-length (or non-finite) vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	m := v.Mag()
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Zero
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

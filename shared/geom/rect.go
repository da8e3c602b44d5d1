package geom

import "math"

// Rect is an axis-aligned box. (X, Y) is the min corner; W and H are
// non-negative extents.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a w x h rect centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.W == 0 || r.H == 0
}

// Overlap returns the overlap extents along each axis. ok is false unless
// both extents are strictly positive, so touching edges never overlap.
func (r Rect) Overlap(o Rect) (Vec2, bool) {
	dx := math.Min(r.X+r.W, o.X+o.W) - math.Max(r.X, o.X)
	dy := math.Min(r.Y+r.H, o.Y+o.H) - math.Max(r.Y, o.Y)
	// NaN fails both comparisons.
	if dx > 0 && dy > 0 {
		return Vec2{X: dx, Y: dy}, true
	}
	return Zero, false
}

// Overlaps reports whether r and o share a positive area.
func (r Rect) Overlaps(o Rect) bool {
	_, ok := r.Overlap(o)
	return ok
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vec2) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// ContainsPoint is half-open: the min edges are inside, the max edges are not.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// IsFinite reports whether every field is a finite number.
func (r Rect) IsFinite() bool {
	for _, f := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

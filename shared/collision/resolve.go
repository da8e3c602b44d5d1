package collision

import (
	"cmp"
	"math"
	"slices"

	"github.com/automoto/tileworld/shared/geom"
)

// FindDisplacement returns the minimum translation that moves a out of b,
// or the zero vector when they do not overlap.
//
// Only the axis with the smaller overlap is kept. When both overlaps are
// exactly equal the x component is zeroed, so a corner hit pushes along y.
// The sign pushes a away from b by comparing min corners on that axis.
// Equal corners fall back to the centers, then to the other axis, so the
// result is antisymmetric for any two distinct rects. Identical rects push
// a toward negative coordinates.
func FindDisplacement(a, b geom.Rect) geom.Vec2 {
	ov, ok := a.Overlap(b)
	if !ok {
		return geom.Zero
	}
	ac, bc := a.Center(), b.Center()
	if ov.X < ov.Y {
		return geom.Vec2{X: ov.X * side(a.X, b.X, ac.X, bc.X, a.Y, b.Y, ac.Y, bc.Y)}
	}
	return geom.Vec2{Y: ov.Y * side(a.Y, b.Y, ac.Y, bc.Y, a.X, b.X, ac.X, bc.X)}
}

// side takes (a, b) key pairs in priority order. The first pair that
// differs decides: -1 when a sorts before b, +1 after.
func side(pairs ...float64) float64 {
	for i := 0; i+1 < len(pairs); i += 2 {
		switch {
		case pairs[i] < pairs[i+1]:
			return -1
		case pairs[i] > pairs[i+1]:
			return 1
		}
	}
	return -1
}

// depth ranks a contact for sorting. NaN sorts as the shallowest.
func depth(c Contact) float64 {
	d := c.Displacement.MagSq()
	if math.IsNaN(d) {
		return -1
	}
	return d
}

// Compare orders contacts deepest first. Equal depths fall back to AIndex,
// BIndex, then the b rect's row and column, which makes the order total.
func Compare(x, y Contact) int {
	if c := cmp.Compare(depth(y), depth(x)); c != 0 {
		return c
	}
	if c := cmp.Compare(x.AIndex, y.AIndex); c != 0 {
		return c
	}
	if c := cmp.Compare(x.BIndex, y.BIndex); c != 0 {
		return c
	}
	if c := cmp.Compare(x.BRect.Y, y.BRect.Y); c != 0 {
		return c
	}
	return cmp.Compare(x.BRect.X, y.BRect.X)
}

// Sort orders contacts in place, deepest first.
func Sort(cs []Contact) {
	slices.SortStableFunc(cs, Compare)
}

// Resolve sorts the contacts and pushes each mover out of the rect it hit.
// Every displacement is computed against the mover's rect as already
// corrected by earlier contacts, so a shallow contact that the deepest one
// already separated adds nothing. It returns the total correction per
// mover. Contacts whose AIndex has no mover are skipped.
func Resolve(cs []Contact, movers []geom.Rect) []geom.Vec2 {
	out := make([]geom.Vec2, len(movers))
	if len(cs) == 0 {
		return out
	}
	Sort(cs)

	cur := slices.Clone(movers)
	for _, c := range cs {
		if c.AIndex < 0 || c.AIndex >= len(cur) {
			continue
		}
		d := FindDisplacement(cur[c.AIndex], c.BRect)
		if d.IsZero() || !d.IsFinite() {
			continue
		}
		cur[c.AIndex] = cur[c.AIndex].Translate(d)
		out[c.AIndex] = out[c.AIndex].Add(d)
	}
	return out
}

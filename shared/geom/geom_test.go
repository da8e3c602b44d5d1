package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalize())
	assert.Equal(t, Zero, Vec2{X: math.NaN(), Y: 1}.Normalize())
	assert.Equal(t, Zero, Vec2{X: math.Inf(1), Y: 0}.Normalize())

	n := Vec2{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Mag(), 1e-12)
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: -2}
	b := Vec2{X: 0.5, Y: 4}
	assert.Equal(t, Vec2{X: 1.5, Y: 2}, a.Add(b))
	assert.Equal(t, Vec2{X: 0.5, Y: -6}, a.Sub(b))
	assert.Equal(t, Vec2{X: 3, Y: -6}, a.Scale(3))
	assert.Equal(t, Vec2{X: -1, Y: 2}, a.Neg())
	assert.Equal(t, 5.0, a.MagSq())
}

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Vec2
		ok   bool
	}{
		{"partial", Rect{0, 0, 16, 16}, Rect{10, 12, 16, 16}, Vec2{6, 4}, true},
		{"contained", Rect{0, 0, 16, 16}, Rect{4, 4, 4, 4}, Vec2{4, 4}, true},
		{"touching edge", Rect{0, 0, 16, 16}, Rect{16, 0, 16, 16}, Zero, false},
		{"apart", Rect{0, 0, 4, 4}, Rect{10, 10, 4, 4}, Zero, false},
		{"empty", Rect{0, 0, 0, 16}, Rect{0, 0, 16, 16}, Zero, false},
		{"nan", Rect{math.NaN(), 0, 16, 16}, Rect{0, 0, 16, 16}, Zero, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Overlap(tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			// Existence of an overlap is symmetric.
			_, back := tt.b.Overlap(tt.a)
			assert.Equal(t, ok, back)
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectAround(Vec2{X: 8, Y: 8}, 16, 16)
	assert.Equal(t, Rect{0, 0, 16, 16}, r)
	assert.Equal(t, Vec2{X: 8, Y: 8}, r.Center())
	assert.True(t, r.ContainsPoint(Vec2{X: 0, Y: 0}))
	assert.False(t, r.ContainsPoint(Vec2{X: 16, Y: 8}))
	assert.Equal(t, Rect{2, -1, 16, 16}, r.Translate(Vec2{X: 2, Y: -1}))
	assert.True(t, Rect{}.IsEmpty())
	assert.False(t, r.IsEmpty())
}

func TestDirFromAxis(t *testing.T) {
	d, ok := DirFromAxis(Vec2{X: 1, Y: -1})
	assert.True(t, ok)
	assert.Equal(t, N, d)

	d, ok = DirFromAxis(Vec2{X: -1})
	assert.True(t, ok)
	assert.Equal(t, W, d)

	_, ok = DirFromAxis(Zero)
	assert.False(t, ok)

	for _, d := range Dirs {
		assert.InDelta(t, 1.0, d.Vec().Mag(), 1e-12, d.String())
	}
}

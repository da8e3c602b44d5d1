package collision

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevel(t *testing.T) *leveldata.Level {
	t.Helper()
	lvl, err := leveldata.FromString("room.txt", `size 5 5
tile # solid 1
tile . open 0
start @ player
grid
#####
#@..#
#.#.#
#...#
#####
`)
	require.NoError(t, err)
	return lvl
}

func TestFindDisplacement(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Rect
		want geom.Vec2
	}{
		{"apart", geom.Rect{X: 0, Y: 0, W: 4, H: 4}, geom.Rect{X: 10, Y: 0, W: 4, H: 4}, geom.Zero},
		{"touching", geom.Rect{X: 0, Y: 0, W: 4, H: 4}, geom.Rect{X: 4, Y: 0, W: 4, H: 4}, geom.Zero},
		{"left of b pushes -x", geom.Rect{X: 0, Y: 0, W: 16, H: 16}, geom.Rect{X: 14, Y: 2, W: 16, H: 16}, geom.Vec2{X: -2}},
		{"right of b pushes +x", geom.Rect{X: 14, Y: 2, W: 16, H: 16}, geom.Rect{X: 0, Y: 0, W: 16, H: 16}, geom.Vec2{X: 2}},
		{"above b pushes -y", geom.Rect{X: 0, Y: 0, W: 16, H: 16}, geom.Rect{X: 3, Y: 13, W: 16, H: 16}, geom.Vec2{Y: -3}},
		{"below b pushes +y", geom.Rect{X: 3, Y: 13, W: 16, H: 16}, geom.Rect{X: 0, Y: 0, W: 16, H: 16}, geom.Vec2{Y: 3}},
		{"tie pushes along y", geom.Rect{X: 0, Y: 0, W: 16, H: 16}, geom.Rect{X: 10, Y: 10, W: 16, H: 16}, geom.Vec2{Y: -6}},
		{"equal anchors use centers", geom.Rect{X: 0, Y: 0, W: 16, H: 4}, geom.Rect{X: 0, Y: 0, W: 16, H: 16}, geom.Vec2{Y: -4}},
		{"coincident axis falls back to the other axis", geom.Rect{X: 0, Y: 0, W: 20, H: 4}, geom.Rect{X: 2, Y: 0, W: 20, H: 4}, geom.Vec2{Y: -4}},
		{"coincident axis reversed", geom.Rect{X: 2, Y: 0, W: 20, H: 4}, geom.Rect{X: 0, Y: 0, W: 20, H: 4}, geom.Vec2{Y: 4}},
		{"coincident pushes negative", geom.Rect{X: 5, Y: 5, W: 8, H: 8}, geom.Rect{X: 5, Y: 5, W: 8, H: 8}, geom.Vec2{Y: -8}},
		{"nan", geom.Rect{X: math.NaN(), W: 8, H: 8}, geom.Rect{W: 8, H: 8}, geom.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindDisplacement(tt.a, tt.b))
		})
	}
}

func TestFindDisplacementProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randRect := func() geom.Rect {
		return geom.Rect{
			X: float64(rng.IntN(64)),
			Y: float64(rng.IntN(64)),
			W: float64(1 + rng.IntN(24)),
			H: float64(1 + rng.IntN(24)),
		}
	}

	for i := 0; i < 2000; i++ {
		a, b := randRect(), randRect()

		_, ab := a.Overlap(b)
		_, ba := b.Overlap(a)
		require.Equal(t, ab, ba, "overlap existence is symmetric for %v %v", a, b)

		d := FindDisplacement(a, b)
		if d.IsZero() {
			continue
		}
		if a != b {
			assert.Equal(t, d.Neg(), FindDisplacement(b, a), "antisymmetric for %v %v", a, b)
		}
		// One application separates the pair.
		ov, ok := a.Translate(d).Overlap(b)
		if ok {
			assert.LessOrEqual(t, ov.MagSq(), 1e-9, "still overlapping after %v: %v %v", d, a, b)
		}
		// Only one axis moves.
		assert.True(t, d.X == 0 || d.Y == 0)
	}
}

func TestGenerate(t *testing.T) {
	a := []geom.Rect{
		{X: 0, Y: 0, W: 16, H: 16},
		{},
		{X: 40, Y: 0, W: 16, H: 16},
	}
	b := []geom.Rect{
		{X: 8, Y: 8, W: 16, H: 16},
		{X: 44, Y: 4, W: 16, H: 16},
		{X: 100, Y: 100, W: 16, H: 16},
	}
	cs := Generate(a, b)
	require.Len(t, cs, 2)

	assert.Equal(t, 0, cs[0].AIndex)
	assert.Equal(t, 0, cs[0].BIndex)
	assert.Equal(t, geom.Vec2{X: 8, Y: 8}, cs[0].Displacement)
	assert.Equal(t, a[0], cs[0].ARect)
	assert.Equal(t, b[0], cs[0].BRect)

	assert.Equal(t, 2, cs[1].AIndex)
	assert.Equal(t, 1, cs[1].BIndex)
	assert.Equal(t, geom.Vec2{X: 12, Y: 12}, cs[1].Displacement)
	assert.False(t, cs[1].IsTile())

	assert.Empty(t, Generate(nil, b))
	assert.Empty(t, Generate(a, nil))
}

func TestGenerateTiles(t *testing.T) {
	lvl := testLevel(t)

	// Overlaps the top wall row and the inner pillar at (2,2).
	cs := GenerateTiles([]geom.Rect{{X: 20, Y: 12, W: 16, H: 24}}, lvl)
	require.Len(t, cs, 3)
	for _, c := range cs {
		assert.True(t, c.IsTile())
		assert.Equal(t, TileIndex, c.BIndex)
		assert.Equal(t, 0, c.AIndex)
	}
	assert.Equal(t, geom.Rect{X: 16, Y: 0, W: 16, H: 16}, cs[0].BRect)
	assert.Equal(t, geom.Rect{X: 32, Y: 0, W: 16, H: 16}, cs[1].BRect)
	assert.Equal(t, geom.Rect{X: 32, Y: 32, W: 16, H: 16}, cs[2].BRect)

	// An open-floor rect touches nothing.
	assert.Empty(t, GenerateTiles([]geom.Rect{{X: 16, Y: 16, W: 16, H: 16}}, lvl))
	assert.Empty(t, GenerateTiles([]geom.Rect{{X: 16, Y: 16, W: 16, H: 16}}, nil))
}

func TestSortDeepestFirst(t *testing.T) {
	cs := []Contact{
		{Displacement: geom.Vec2{X: 1, Y: 1}, AIndex: 0, BIndex: 0},
		{Displacement: geom.Vec2{X: 4, Y: 4}, AIndex: 2, BIndex: 1},
		{Displacement: geom.Vec2{X: math.NaN(), Y: 1}, AIndex: 0, BIndex: 3},
		{Displacement: geom.Vec2{X: 4, Y: 4}, AIndex: 1, BIndex: 5},
		{Displacement: geom.Vec2{X: 2, Y: 2}, AIndex: 0, BIndex: TileIndex, BRect: geom.Rect{X: 32}},
		{Displacement: geom.Vec2{X: 2, Y: 2}, AIndex: 0, BIndex: TileIndex, BRect: geom.Rect{X: 16}},
	}
	Sort(cs)

	assert.Equal(t, 1, cs[0].AIndex)
	assert.Equal(t, 2, cs[1].AIndex)
	assert.Equal(t, 16.0, cs[2].BRect.X)
	assert.Equal(t, 32.0, cs[3].BRect.X)
	assert.Equal(t, 0, cs[4].BIndex)
	assert.Equal(t, 3, cs[5].BIndex, "NaN sorts last")
}

func TestResolveScenario(t *testing.T) {
	// A 16px player at (10,10) pushed into the tile covering (16,16).
	player := geom.Rect{X: 10, Y: 10, W: 16, H: 16}
	tile := geom.Rect{X: 16, Y: 16, W: 16, H: 16}

	cs := Generate([]geom.Rect{player}, []geom.Rect{tile})
	require.Len(t, cs, 1)

	moved := player.Translate(Resolve(cs, []geom.Rect{player})[0])
	assert.False(t, moved.Overlaps(tile))
}

func TestResolveDeepestFirstAvoidsDoublePush(t *testing.T) {
	// Mover sits mostly inside a wall tile to its right and barely clips the
	// tile below that wall.
	mover := geom.Rect{X: 4, Y: 2, W: 16, H: 16}
	wall := geom.Rect{X: 16, Y: 0, W: 16, H: 16}
	below := geom.Rect{X: 16, Y: 16, W: 16, H: 16}

	cs := Generate([]geom.Rect{mover}, []geom.Rect{below, wall})
	require.Len(t, cs, 2)

	d := Resolve(cs, []geom.Rect{mover})[0]
	assert.Equal(t, geom.Vec2{X: -4}, d)
	moved := mover.Translate(d)
	assert.False(t, moved.Overlaps(wall))
	assert.False(t, moved.Overlaps(below))
}

func TestResolveSkipsUnknownMovers(t *testing.T) {
	cs := []Contact{{Displacement: geom.Vec2{X: 1, Y: 1}, AIndex: 3, BRect: geom.Rect{W: 1, H: 1}}}
	out := Resolve(cs, []geom.Rect{{W: 4, H: 4}})
	assert.Equal(t, []geom.Vec2{geom.Zero}, out)
	assert.Empty(t, Resolve(nil, nil))
}

func TestResolveKeepsCentersOutOfSolidTiles(t *testing.T) {
	lvl := testLevel(t)
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		// Start from an open cell and jitter by up to 7 units, as one
		// frame of movement never exceeds that.
		cells := [][2]float64{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
		cell := cells[rng.IntN(len(cells))]
		center := geom.Vec2{
			X: cell[0]*16 + 8 + float64(rng.IntN(15)-7),
			Y: cell[1]*16 + 8 + float64(rng.IntN(15)-7),
		}
		body := geom.RectAround(center, 16, 16)

		cs := GenerateTiles([]geom.Rect{body}, lvl)
		moved := body.Translate(Resolve(cs, []geom.Rect{body})[0])

		tile, ok := lvl.TileAt(moved.Center())
		require.True(t, ok)
		assert.False(t, tile.Solid, "center %v inside a solid tile (from %v)", moved.Center(), center)
	}
}

func TestIndexMatchesGenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	randRects := func(n int) []geom.Rect {
		out := make([]geom.Rect, n)
		for i := range out {
			out[i] = geom.Rect{
				X: rng.Float64()*400 - 100,
				Y: rng.Float64()*300 - 50,
				W: 0.25 + rng.Float64()*30,
				H: 0.25 + rng.Float64()*30,
			}
		}
		return out
	}

	for round := 0; round < 20; round++ {
		a := randRects(40)
		b := randRects(60)
		want := Generate(a, b)
		got := NewIndex(b, 16).Contacts(a)
		assert.Equal(t, want, got, "round %d", round)
		assert.Equal(t, want, GenerateAuto(a, b, 16, 0))
	}
}

func TestIndexSliverOverlap(t *testing.T) {
	a := []geom.Rect{{X: 15.5, Y: 0, W: 0.7, H: 4}}
	b := []geom.Rect{{X: 16, Y: 0, W: 16, H: 16}}
	got := NewIndex(b, 16).Contacts(a)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.2, got[0].Displacement.X, 1e-9)
}

func TestIndexFallbacks(t *testing.T) {
	a := []geom.Rect{{X: 0, Y: 0, W: 8, H: 8}}
	b := []geom.Rect{{X: 4, Y: 4, W: 8, H: 8}, {X: math.Inf(1), Y: 0, W: 8, H: 8}}

	assert.Equal(t, Generate(a, b), NewIndex(b, 16).Contacts(a))
	assert.Equal(t, Generate(a, b[:1]), NewIndex(b[:1], 0).Contacts(a))
	assert.Empty(t, NewIndex(nil, 16).Contacts(a))
	assert.Equal(t, 2, NewIndex(b, 16).Len())

	far := []geom.Rect{{X: 0, Y: 0, W: 8, H: 8}, {X: 1e7, Y: 0, W: 8, H: 8}}
	assert.Equal(t, Generate(a, far), NewIndex(far, 16).Contacts(a))
}

package core

import (
	"testing"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/stretchr/testify/require"
)

const roomLevel = `name Room
size 12 10
tile # solid 1
tile . open 0
start @ player
grid
############
#..........#
#..........#
#..........#
#....@.....#
#..........#
#..........#
#..........#
#..........#
############
`

// scriptRand replays queued values, then falls back to defaults that mean
// "no spawn, no wander turn".
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func mustLevels(t *testing.T, texts ...string) []*leveldata.Level {
	t.Helper()
	levels := make([]*leveldata.Level, 0, len(texts))
	for _, text := range texts {
		lvl, err := leveldata.FromString("test.txt", text)
		require.NoError(t, err)
		levels = append(levels, lvl)
	}
	return levels
}

// newTestSim builds a sim on the given levels with enemies and knights
// standing still unless a test turns speeds back on.
func newTestSim(t *testing.T, rules Rules, tune func(*Params), texts ...string) (*Sim, *scriptRand) {
	t.Helper()
	if len(texts) == 0 {
		texts = []string{roomLevel}
	}
	p := DefaultParams()
	p.EnemySpeed = 0
	if tune != nil {
		tune(&p)
	}
	w, err := NewWorld(mustLevels(t, texts...), geom.Vec2{X: p.ScreenWidth, Y: p.ScreenHeight})
	require.NoError(t, err)

	rng := &scriptRand{}
	s, err := NewSim(w, p, rules, rng)
	require.NoError(t, err)
	return s, rng
}

func tickN(s *Sim, n int, in Input) Events {
	var all Events
	for range n {
		all = append(all, s.Tick(s.Params.DT, in)...)
	}
	return all
}

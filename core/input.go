package core

import (
	"math"

	"github.com/automoto/tileworld/shared/gamemath"
	"github.com/automoto/tileworld/shared/geom"
)

// UpgradeChoice is the pick made on the level-up menu.
type UpgradeChoice int

const (
	UpgradeNone UpgradeChoice = iota
	UpgradeHealth
	UpgradeRange
)

// Input is one tick of player intent. Move is an axis pair in [-1,1]
// on each axis, y-down.
type Input struct {
	Move        geom.Vec2
	Attack      bool
	Pause       bool
	Upgrade     UpgradeChoice
	SpawnEnemy  bool
	SpawnKnight bool
	Finish      bool
}

// sanitized clamps Move into range and drops non-finite axes.
func (in Input) sanitized() Input {
	axis := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return gamemath.Clamp(v, -1, 1)
	}
	in.Move = geom.Vec2{X: axis(in.Move.X), Y: axis(in.Move.Y)}
	return in
}

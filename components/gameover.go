package components

import (
	"github.com/automoto/tileworld/core"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// RunResult is what the world scene hands to the game over scene.
type RunResult struct {
	Game     string
	Finished bool // the stopwatch stopped rather than the player dying
	Score    int
	Rank     int
	Record   core.Record
	Total    int // levels in the run
}

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption
	Result         RunResult
	Board          core.Leaderboard
	Placed         int // leaderboard rank of this run, 0 when not placed
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()

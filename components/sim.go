package components

import (
	"github.com/automoto/tileworld/core"
	"github.com/yohamta/donburi"
)

// SimData owns the running simulation of the world scene. Step turns frame
// time into fixed ticks; Events holds what the ticks of this frame raised.
// A non-nil Bot replaces the player's input.
type SimData struct {
	Sim    *core.Sim
	Step   *core.FixedStep
	Bot    *core.Bot
	Game   string
	Events core.Events
	Ticks  int
}

var Sim = donburi.NewComponentType[SimData]()

package systems

import (
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSim returns the running sim of the scene, if any.
func GetSim(e *ecs.ECS) (*components.SimData, bool) {
	entry, ok := tags.Sim.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Sim.Get(entry), true
}

// UpdateSimulation spends one frame of wall time on fixed ticks. Edge
// triggered intents (pause, upgrades, spawns) are delivered to the first
// tick of the frame only so a slow frame cannot repeat them.
func UpdateSimulation(e *ecs.ECS) {
	data, ok := GetSim(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	pause := GetOrCreatePause(e)

	in := SimInput(input, data.Sim)
	if pause.Resume {
		in.Pause = data.Sim.World.Paused
		pause.Resume = false
	}

	data.Events = data.Events[:0]
	frame := 1.0 / float64(cfg.C.TPS)
	data.Step.Advance(frame, func() {
		if data.Bot != nil && (!data.Sim.World.Paused || data.Sim.Upgrading) {
			auto := data.Bot.Input()
			auto.Pause = in.Pause
			in = auto
		}
		events := data.Sim.Tick(data.Step.DT, in)
		data.Events = append(data.Events, events...)
		data.Ticks++
		in = held(in)
	})
	publishSimEvents(e.World, data.Events)
}

// held keeps only the intents that make sense to repeat across ticks.
func held(in core.Input) core.Input {
	return core.Input{Move: in.Move, Attack: in.Attack}
}

// UpdateAnimations advances the shared actor animations while the sim is
// running.
func UpdateAnimations(e *ecs.ECS) {
	tags.Sim.Each(e.World, func(entry *donburi.Entry) {
		sim := components.Sim.Get(entry).Sim
		if sim.World.Paused || sim.World.GameEnd {
			return
		}
		anim := components.Animation.Get(entry)
		anim.Enemy.Update()
		anim.Knight.Update()
		anim.Exit.Update()
	})
}

// ResultOf summarizes a run for the game over screen.
func ResultOf(data *components.SimData) components.RunResult {
	sim := data.Sim
	finished := sim.Rules.Stopwatch && sim.World.GameEnd && sim.Health > 0
	r := components.RunResult{
		Game:     data.Game,
		Finished: finished,
		Score:    sim.Score,
		Rank:     sim.Rank,
		Total:    len(sim.World.Levels),
	}
	if finished {
		r.Record = core.Record{
			Time:   sim.ElapsedDuration(),
			Levels: sim.World.CurrentLevel + 1,
		}
	}
	return r
}

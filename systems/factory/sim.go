package factory

import (
	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/assets/animations"
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSim starts a run of the named variant on levels using the global
// tuning. With autoplay on, the bot drives the player.
func CreateSim(ecs *ecs.ECS, game string, levels []*leveldata.Level) (*donburi.Entry, error) {
	rules, err := core.RulesByName(game)
	if err != nil {
		return nil, err
	}
	sim, err := core.NewGame(levels, cfg.Sim, rules, nil)
	if err != nil {
		return nil, err
	}

	data := &components.SimData{
		Sim:  sim,
		Step: core.NewFixedStep(cfg.Sim.DT, cfg.Sim.MaxSteps),
		Game: game,
	}
	if cfg.Debug.Autoplay {
		data.Bot = core.NewBot(sim, core.BotNormal, nil)
	}

	entry := archetypes.Sim.Spawn(ecs)
	components.Sim.Set(entry, data)
	components.Animation.Set(entry, &components.AnimationData{
		Enemy:  animations.NewPingPong(0, 3, 8),
		Knight: animations.NewPingPong(0, 1, 20),
		Exit:   animations.NewAnimation(0, 3, 1, 10),
	})
	return entry, nil
}

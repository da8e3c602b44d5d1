package factory

import (
	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEffects spawns the holder of full-screen effects with nothing
// active.
func CreateEffects(ecs *ecs.ECS) *donburi.Entry {
	effects := archetypes.Effects.Spawn(ecs)
	components.Flash.Set(effects, &components.FlashData{})
	return effects
}

package archetypes

import (
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Sim = newArchetype(
		tags.Sim,
		components.Sim,
		components.Animation,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.LevelFiles,
	)
	Effects = newArchetype(
		tags.Effects,
		components.Flash,
	)
	Settings = newArchetype(
		tags.Settings,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

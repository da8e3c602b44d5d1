package systems

import (
	"testing"

	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newWorldECS builds the non-rendering part of a world scene.
func newWorldECS(t *testing.T, game string) (*ecs.ECS, *components.SimData) {
	t.Helper()
	levels, _, err := assets.NewLevelLoader(game).Load()
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	entry, err := factory.CreateSim(e, game, levels)
	require.NoError(t, err)
	data := components.Sim.Get(entry)
	pos := data.Sim.World.Camera.Pos
	factory.CreateCamera(e, pos.X, pos.Y)
	factory.CreateEffects(e)
	return e, data
}

// press sets the current frame's actions, keeping the previous frame.
func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func TestSimInputMovement(t *testing.T) {
	s := &core.Sim{Rules: core.AdventureRules()}
	input := &components.InputData{}
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveDown] = true
	input.Current[cfg.ActionAttack] = true
	input.Previous[cfg.ActionAttack] = true

	in := SimInput(input, s)
	assert.Equal(t, geom.Vec2{X: -1, Y: 1}, in.Move)
	assert.True(t, in.Attack, "held attack keeps attacking")
	assert.False(t, in.Pause)

	input.Axis = [2]float64{0.5, -0.25}
	assert.Equal(t, geom.Vec2{X: 0.5, Y: -0.25}, SimInput(input, s).Move, "stick wins over keys")
}

func TestSimInputSharedKeys(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionUpgradeHealth] = true
	input.Current[cfg.ActionSpawnEnemy] = true

	arena := &core.Sim{Rules: core.ArenaRules()}
	in := SimInput(input, arena)
	assert.True(t, in.SpawnEnemy)
	assert.Equal(t, core.UpgradeNone, in.Upgrade)

	upgrading := &core.Sim{Rules: core.AdventureRules(), Upgrading: true}
	in = SimInput(input, upgrading)
	assert.Equal(t, core.UpgradeHealth, in.Upgrade)
	assert.False(t, in.SpawnEnemy)

	adventure := &core.Sim{Rules: core.AdventureRules()}
	assert.Equal(t, core.Input{}, SimInput(input, adventure))
}

func TestHeldKeepsOnlyRepeatableIntents(t *testing.T) {
	in := core.Input{
		Move:       geom.Vec2{X: 1},
		Attack:     true,
		Pause:      true,
		Upgrade:    core.UpgradeRange,
		SpawnEnemy: true,
		Finish:     true,
	}
	assert.Equal(t, core.Input{Move: geom.Vec2{X: 1}, Attack: true}, held(in))
}

func TestUpdateSimulationTicksAndPublishes(t *testing.T) {
	e, data := newWorldECS(t, "maze")

	var got []core.EventKind
	SimEvent.Subscribe(e.World, func(w donburi.World, ev core.Event) {
		got = append(got, ev.Kind)
	})

	start := data.Sim.World.Player.Pos
	press(e, cfg.ActionMoveRight)
	UpdateSimulation(e)
	assert.Equal(t, 1, data.Ticks)
	assert.Greater(t, data.Sim.World.Player.Pos.X, start.X)

	press(e, cfg.ActionPause)
	UpdateSimulation(e)
	require.True(t, data.Sim.World.Paused)
	assert.Equal(t, core.Events{{Kind: core.EventPaused}}, data.Events)

	assert.Empty(t, got, "events wait for dispatch")
	DispatchEvents(e)
	assert.Equal(t, []core.EventKind{core.EventPaused}, got)

	// Holding the key must not toggle again.
	press(e, cfg.ActionPause)
	UpdateSimulation(e)
	assert.True(t, data.Sim.World.Paused)
}

func TestPauseMenu(t *testing.T) {
	e, data := newWorldECS(t, "maze")

	press(e, cfg.ActionPause)
	UpdatePause(e)
	UpdateSimulation(e)
	require.True(t, data.Sim.World.Paused)

	// Resume is the default selection.
	press(e, cfg.ActionMenuSelect)
	UpdatePause(e)
	UpdateSimulation(e)
	assert.False(t, data.Sim.World.Paused)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	UpdateSimulation(e)
	press(e, cfg.ActionMenuDown)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	assert.Equal(t, components.MenuExit, pause.SelectedOption)

	press(e, cfg.ActionMenuSelect)
	UpdatePause(e)
	assert.True(t, pause.ExitRequested)
	assert.False(t, pause.Resume)
}

func TestUpgradeKeysDuringLevelUp(t *testing.T) {
	e, data := newWorldECS(t, "adventure")
	data.Sim.XP = data.Sim.Params.LevelUpXP

	press(e)
	UpdateSimulation(e)
	require.True(t, data.Sim.Upgrading)
	health := data.Sim.Health

	press(e, cfg.ActionUpgradeHealth)
	UpdateSimulation(e)
	assert.False(t, data.Sim.Upgrading)
	assert.Equal(t, health+data.Sim.Params.HealthUpgrade, data.Sim.Health)
}

func TestResultOf(t *testing.T) {
	_, data := newWorldECS(t, "maze")
	data.Sim.Elapsed = 12.5
	data.Sim.World.CurrentLevel = len(data.Sim.World.Levels) - 1
	data.Sim.World.GameEnd = true

	r := ResultOf(data)
	assert.Equal(t, "maze", r.Game)
	assert.True(t, r.Finished)
	assert.Equal(t, r.Total, r.Record.Levels)
	assert.Equal(t, "12:500", core.FormatStopwatch(r.Record.Time))

	_, fight := newWorldECS(t, "adventure")
	fight.Sim.Score = 7
	fight.Sim.Health = 0
	fight.Sim.World.GameEnd = true
	r = ResultOf(fight)
	assert.False(t, r.Finished)
	assert.Equal(t, 7, r.Score)
	assert.Zero(t, r.Record)
}

func TestUpdateAnimationsFreezeWhilePaused(t *testing.T) {
	e, data := newWorldECS(t, "maze")
	anim := animationsOf(e)
	require.NotNil(t, anim)

	data.Sim.World.Paused = true
	for range 30 {
		UpdateAnimations(e)
	}
	assert.Zero(t, anim.Exit.Frame())

	data.Sim.World.Paused = false
	for range 30 {
		UpdateAnimations(e)
	}
	assert.NotZero(t, anim.Exit.Frame())
}

func TestUpdateCameraMirrorsSim(t *testing.T) {
	e, data := newWorldECS(t, "adventure")
	data.Sim.World.Camera.Pos = geom.Vec2{X: 40, Y: 24}

	UpdateCamera(e)
	x, y, ok := cameraView(e)
	require.True(t, ok)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 24.0, y)
}

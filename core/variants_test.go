package core

import (
	"strings"
	"testing"
	"time"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridorLevel = `size 6 3
tile # solid 1
tile . open 0
start @ player
start x exit
grid
######
#@.x.#
######
`

func TestKnightsHuntEnemies(t *testing.T) {
	s, _ := newTestSim(t, ArenaRules(), nil)
	s.World.Knights = []Knight{{Pos: geom.Vec2{X: 40, Y: 40}, Health: 2}}
	s.World.Enemies = []Enemy{
		{Entity: Entity{Pos: geom.Vec2{X: 150, Y: 40}}},
		{Entity: Entity{Pos: geom.Vec2{X: 52, Y: 40}}},
	}

	events := s.Tick(s.Params.DT, Input{})

	require.Equal(t, 1, events.Count(EventEnemyRemoved))
	require.Len(t, s.World.Enemies, 1)
	assert.Equal(t, geom.Vec2{X: 150, Y: 40}, s.World.Enemies[0].Pos)
	require.Len(t, s.World.Knights, 1)
	assert.Equal(t, 1, s.World.Knights[0].Health)
	assert.Equal(t, 1, s.Score)
	assert.Zero(t, s.XP, "knight kills grant no xp")

	// The knight walks toward the remaining enemy.
	x := s.World.Knights[0].Pos.X
	s.Tick(s.Params.DT, Input{})
	assert.InDelta(t, x+s.Params.KnightSpeed*s.Params.DT, s.World.Knights[0].Pos.X, 1e-9)

	// Its last hit point goes on the next kill.
	s.World.Enemies[0].Pos = s.World.Knights[0].Pos
	events = s.Tick(s.Params.DT, Input{})
	assert.True(t, events.Has(EventKnightRemoved))
	assert.Empty(t, s.World.Knights)
	assert.Empty(t, s.World.Enemies)
}

func TestKnightOnTargetDoesNotMove(t *testing.T) {
	s, _ := newTestSim(t, ArenaRules(), nil)
	s.Rules.Knights = true
	s.World.Knights = []Knight{{Pos: geom.Vec2{X: 40, Y: 40}, Health: 3}}
	s.World.Enemies = []Enemy{{Entity: Entity{Pos: geom.Vec2{X: 40, Y: 40}}}}

	s.seekKnights(s.Params.DT)
	assert.Equal(t, geom.Vec2{X: 40, Y: 40}, s.World.Knights[0].Pos)
}

func TestArenaManualSpawns(t *testing.T) {
	s, rng := newTestSim(t, ArenaRules(), nil)
	// Enemy sample, then knight sample; both away from the player and from
	// each other.
	rng.ints = []int{148, 120, 8, 8}

	events := s.Tick(s.Params.DT, Input{SpawnEnemy: true, SpawnKnight: true})

	assert.Equal(t, 1, events.Count(EventEnemySpawned))
	assert.Equal(t, 1, events.Count(EventKnightSpawned))
	require.Len(t, s.World.Enemies, 1)
	require.Len(t, s.World.Knights, 1)
	assert.Equal(t, s.Params.KnightHealth, s.World.Knights[0].Health)
	for _, e := range events {
		switch e.Kind {
		case EventEnemySpawned:
			assert.Equal(t, geom.Vec2{X: 150, Y: 122}, e.Pos)
		case EventKnightSpawned:
			assert.Equal(t, geom.Vec2{X: 40, Y: 40}, e.Pos)
		}
	}

	// Arena bodies do not hurt the player.
	s.World.Enemies[0].Pos = s.World.Player.Pos
	s.Tick(s.Params.DT, Input{})
	assert.Equal(t, 3, s.Health)
}

func TestMazeExitAdvancesAndFinishes(t *testing.T) {
	s, _ := newTestSim(t, MazeRules(), nil, corridorLevel, corridorLevel)
	right := Input{Move: geom.Vec2{X: 1}}

	var entered bool
	for range 60 {
		if s.Tick(s.Params.DT, right).Has(EventLevelEntered) {
			entered = true
			break
		}
	}
	require.True(t, entered)
	assert.Equal(t, 1, s.World.CurrentLevel)
	assert.Equal(t, geom.Vec2{X: 24, Y: 24}, s.World.Player.Pos)
	assert.Greater(t, s.Elapsed, 0.0)

	var finished Events
	for range 60 {
		if events := s.Tick(s.Params.DT, right); events.Has(EventFinished) {
			finished = events
			break
		}
	}
	require.NotNil(t, finished)
	assert.True(t, s.World.GameEnd)

	elapsed := s.Elapsed
	s.Tick(s.Params.DT, right)
	assert.Equal(t, elapsed, s.Elapsed, "stopwatch stops at the finish")
}

func TestMazeFinishIntent(t *testing.T) {
	s, _ := newTestSim(t, MazeRules(), nil, corridorLevel)
	tickN(s, 30, Input{})
	events := s.Tick(s.Params.DT, Input{Finish: true})
	require.True(t, events.Has(EventFinished))
	assert.True(t, s.World.GameEnd)
	assert.InDelta(t, 0.5, s.Elapsed, 1e-9)
	assert.Equal(t, 500*time.Millisecond, s.ElapsedDuration().Round(time.Millisecond))
}

func TestRulesByName(t *testing.T) {
	for _, name := range RuleNames() {
		r, err := RulesByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.Name)
	}
	_, err := RulesByName("golf")
	assert.ErrorIs(t, err, ErrUnknownRules)
	assert.Equal(t, []string{"adventure", "arena", "maze"}, RuleNames())
}

func TestLoadParams(t *testing.T) {
	p, err := LoadParams(strings.NewReader("player_speed: 80\nknockback_time: 0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 80.0, p.PlayerSpeed)
	assert.Equal(t, 0.5, p.KnockbackTime)
	assert.Equal(t, DefaultParams().EnemySpeed, p.EnemySpeed)

	p, err = LoadParams(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultParams(), p)

	_, err = LoadParams(strings.NewReader("player_sped: 80\n"))
	assert.Error(t, err)

	_, err = LoadParams(strings.NewReader("attack_cooldown_time: 0.5\n"))
	assert.ErrorIs(t, err, ErrBadParams)

	_, err = LoadParams(strings.NewReader("dt: 0\nbody_size: -1\n"))
	assert.ErrorIs(t, err, ErrBadParams)
	assert.Contains(t, err.Error(), "dt")
	assert.Contains(t, err.Error(), "body_size")
}

func TestLeaderboard(t *testing.T) {
	var lb Leaderboard
	assert.Equal(t, 0, lb.Add(Record{Name: "ana", Time: 12 * time.Second}))
	assert.Equal(t, 0, lb.Add(Record{Name: "bo", Time: 9 * time.Second}))
	assert.Equal(t, 2, lb.Add(Record{Name: " ", Time: 20 * time.Second}))
	assert.Equal(t, "anon", lb.Entries[2].Name)

	assert.True(t, lb.Qualifies(15*time.Second))
	assert.False(t, lb.Qualifies(25*time.Second))
	assert.Equal(t, -1, lb.Add(Record{Name: "slow", Time: 30 * time.Second}))

	// An equal time ranks after the earlier run.
	assert.Equal(t, 2, lb.Add(Record{Name: "tie", Time: 12 * time.Second}))
	require.Len(t, lb.Entries, LeaderboardSize)
	assert.Equal(t, []string{"bo", "ana", "tie"}, []string{lb.Entries[0].Name, lb.Entries[1].Name, lb.Entries[2].Name})

	assert.Equal(t, "0:045", FormatStopwatch(45*time.Millisecond))
	assert.Equal(t, "12:340", FormatStopwatch(12340*time.Millisecond))
	assert.Equal(t, "0:000", FormatStopwatch(-time.Second))
}

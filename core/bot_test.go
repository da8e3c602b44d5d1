package core

import (
	"testing"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bendLevel = `name Bend
size 7 5
tile # solid 1
tile . open 0
start @ player
start x exit
grid
#######
#@..#.#
###.#.#
#....x#
#######
`

// runBot ticks the sim with bot input until pred holds or limit ticks pass.
func runBot(s *Sim, b *Bot, limit int, pred func(Events) bool) (Events, bool) {
	var all Events
	for range limit {
		events := s.Tick(s.Params.DT, b.Input())
		all = append(all, events...)
		if pred(events) {
			return all, true
		}
	}
	return all, false
}

func TestBotWalksMazesToTheEnd(t *testing.T) {
	s, _ := newTestSim(t, MazeRules(), nil, bendLevel, corridorLevel)
	b := NewBot(s, BotNormal, &scriptRand{})

	events, ok := runBot(s, b, 3000, func(es Events) bool { return es.Has(EventFinished) })
	require.True(t, ok, "bot never finished")

	assert.Equal(t, 1, events.Count(EventLevelEntered))
	assert.True(t, s.World.GameEnd)
	assert.Equal(t, 1, s.World.CurrentLevel)
	assert.Positive(t, s.Elapsed)
}

func TestBotHuntsEnemiesInRange(t *testing.T) {
	s, _ := newTestSim(t, fightRules(), nil)
	s.World.Enemies = []Enemy{{Entity: Entity{Pos: geom.Vec2{X: 136, Y: 72}}}}
	b := NewBot(s, BotHard, &scriptRand{})

	_, ok := runBot(s, b, 240, func(es Events) bool { return es.Has(EventEnemyRemoved) })
	require.True(t, ok, "bot never landed a hit")
	assert.Equal(t, 1, s.Score)
	assert.Empty(t, s.World.Enemies)
}

func TestBotIgnoresDistantEnemies(t *testing.T) {
	s, _ := newTestSim(t, fightRules(), nil)
	s.World.Enemies = []Enemy{{Entity: Entity{Pos: geom.Vec2{X: 168, Y: 136}}}}
	b := NewBot(s, BotSkill{ReactionTicks: 1, ChaseRange: 16, WanderTicks: 60}, &scriptRand{ints: []int{1}})

	in := b.Input()
	assert.False(t, in.Attack)
	assert.Equal(t, geom.E.Vec(), in.Move, "wanders in the drawn direction")
}

func TestBotPicksUpgradesInTurn(t *testing.T) {
	s, _ := newTestSim(t, AdventureRules(), nil)
	b := NewBot(s, BotNormal, nil)

	s.Upgrading = true
	assert.Equal(t, UpgradeHealth, b.Input().Upgrade)
	assert.Equal(t, UpgradeRange, b.Input().Upgrade)
	assert.Equal(t, UpgradeHealth, b.Input().Upgrade)
}

func TestBotAsksForEnemiesInArena(t *testing.T) {
	s, _ := newTestSim(t, ArenaRules(), nil)
	b := NewBot(s, BotNormal, &scriptRand{})

	assert.True(t, b.Input().SpawnEnemy)

	s.World.Enemies = []Enemy{{Entity: Entity{Pos: geom.Vec2{X: 40, Y: 40}}}}
	assert.False(t, b.Input().SpawnEnemy)
}

func TestBotIdleAfterGameEnd(t *testing.T) {
	s, _ := newTestSim(t, fightRules(), nil)
	s.World.GameEnd = true
	assert.Equal(t, Input{}, NewBot(s, BotNormal, nil).Input())
}

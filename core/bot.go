package core

import (
	"github.com/automoto/tileworld/shared/gamemath"
	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/automoto/tileworld/shared/nav"
)

// waypointReach is how close the bot must get to a path point before
// heading for the next one.
const waypointReach = 1.0

// BotSkill holds tuning values for bot behavior at one difficulty.
type BotSkill struct {
	ReactionTicks int     // ticks between decisions
	ChaseRange    float64 // distance at which an enemy is hunted
	WanderTicks   int     // ticks before picking a new wander direction
}

var (
	BotEasy   = BotSkill{ReactionTicks: 30, ChaseRange: 96, WanderTicks: 90}
	BotNormal = BotSkill{ReactionTicks: 15, ChaseRange: 160, WanderTicks: 60}
	BotHard   = BotSkill{ReactionTicks: 5, ChaseRange: 256, WanderTicks: 45}
)

// Bot plays a Sim. It hunts enemies in range, wanders otherwise, and walks
// the shortest path to the exit when the rules advance through exits. It
// reads the sim between ticks, so it must run on the tick goroutine.
type Bot struct {
	sim   *Sim
	skill BotSkill
	rng   Rand

	grid      *nav.Grid
	gridLevel *leveldata.Level
	path      []geom.Vec2

	ticks    int
	move     geom.Vec2
	attack   bool
	wander   geom.Dir
	upgrades int
}

// NewBot drives sim with the given skill. A nil rng uses the process-wide
// generator.
func NewBot(sim *Sim, skill BotSkill, rng Rand) *Bot {
	if rng == nil {
		rng = globalRand{}
	}
	if skill.ReactionTicks <= 0 {
		skill.ReactionTicks = 1
	}
	if skill.WanderTicks <= 0 {
		skill.WanderTicks = 1
	}
	return &Bot{sim: sim, skill: skill, rng: rng}
}

// Input decides the intent for the next tick. It satisfies InputSource.
func (b *Bot) Input() Input {
	s := b.sim
	if s.World.GameEnd {
		return Input{}
	}
	if s.Upgrading {
		b.upgrades++
		if b.upgrades%2 == 1 {
			return Input{Upgrade: UpgradeHealth}
		}
		return Input{Upgrade: UpgradeRange}
	}
	if s.World.Paused {
		return Input{Pause: true}
	}

	b.ticks++
	if s.Rules.ExitAdvances {
		return Input{Move: b.followExit()}
	}

	if (b.ticks-1)%b.skill.ReactionTicks == 0 {
		b.decide()
	}
	in := Input{Move: b.move, Attack: b.attack}
	if s.Rules.ManualSpawns && s.World.AliveEnemies() == 0 {
		in.SpawnEnemy = true
	}
	return in
}

// decide refreshes the held move and attack intent.
func (b *Bot) decide() {
	s := b.sim
	pos := s.World.Player.Pos
	target, ok := s.nearestEnemy(pos)
	if ok {
		dist := target.Sub(pos).Mag()
		if dist <= b.skill.ChaseRange {
			b.move = b.steer(target)
			reach := s.Attack.Range * s.World.Level().TileSize / 2
			b.attack = s.Rules.Attack && dist <= reach
			return
		}
	}

	b.attack = false
	if (b.ticks-1)%b.skill.WanderTicks == 0 || b.move.IsZero() {
		b.wander = geom.Dirs[b.rng.IntN(len(geom.Dirs))]
	}
	b.move = b.wander.Vec()
}

// followExit walks the nav path to the level's exit, rebuilding it when
// the level changes.
func (b *Bot) followExit() geom.Vec2 {
	s := b.sim
	lvl := s.World.Level()
	if lvl != b.gridLevel {
		b.grid = nav.NewGrid(lvl)
		b.gridLevel = lvl
		b.path = nil
		if exits := lvl.StartsOf(leveldata.KindExit); len(exits) > 0 {
			b.path = b.grid.FindPath(s.World.Player.Pos, exits[0])
		}
	}

	pos := s.World.Player.Pos
	for len(b.path) > 0 && b.path[0].Sub(pos).MagSq() <= waypointReach*waypointReach {
		b.path = b.path[1:]
	}
	if len(b.path) == 0 {
		return geom.Zero
	}
	return b.steer(b.path[0])
}

// steer returns an axis intent that lands on target instead of
// overshooting it.
func (b *Bot) steer(target geom.Vec2) geom.Vec2 {
	p := b.sim.Params
	d := target.Sub(b.sim.World.Player.Pos)
	step := p.PlayerSpeed * p.DT
	if step <= 0 {
		return geom.Zero
	}
	return geom.Vec2{
		X: gamemath.Clamp(d.X/step, -1, 1),
		Y: gamemath.Clamp(d.Y/step, -1, 1),
	}
}

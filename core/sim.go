package core

import (
	"math"

	"github.com/automoto/tileworld/shared/collision"
	"github.com/automoto/tileworld/shared/gamemath"
	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
)

// Player-side rects in the classification pass.
const (
	slotBody   = 0
	slotAttack = 1
)

// Sim is the owned simulation context. Tick is the only mutator; the
// renderer reads it between ticks.
type Sim struct {
	World  *World
	Params Params
	Rules  Rules

	Health    int
	XP        int
	Rank      int // raised by each level-up
	Score     int
	Upgrading bool
	Attack    Attack
	Invuln    Invuln
	Elapsed   float64 // stopwatch seconds

	rng    Rand
	events Events
}

// NewSim enters the world's current level. A nil rng uses the process-wide
// generator.
func NewSim(w *World, p Params, r Rules, rng Rand) (*Sim, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNoLevels
	}
	if rng == nil {
		rng = globalRand{}
	}
	s := &Sim{
		World:  w,
		Params: p,
		Rules:  r,
		Health: p.StartHealth,
		Attack: Attack{Range: p.StartAttackRange},
		rng:    rng,
	}
	if err := s.EnterLevel(w.CurrentLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame builds a world on levels with a view sized by p and starts a sim
// on it.
func NewGame(levels []*leveldata.Level, p Params, r Rules, rng Rand) (*Sim, error) {
	w, err := NewWorld(levels, geom.Vec2{X: p.ScreenWidth, Y: p.ScreenHeight})
	if err != nil {
		return nil, err
	}
	return NewSim(w, p, r, rng)
}

// EnterLevel switches to level i, reseeds its actors and snaps the camera.
func (s *Sim) EnterLevel(i int) error {
	if err := s.World.SwitchLevel(i); err != nil {
		return err
	}
	for _, p := range s.World.Level().StartsOf(leveldata.KindKnight) {
		s.World.Knights = append(s.World.Knights, Knight{Pos: p, Health: s.Params.KnightHealth})
	}
	s.Attack.Timer = 0
	s.Attack.Area = geom.Rect{}
	s.World.Camera.Follow(s.World.Player.Pos, s.World.Level().PixelSize(), s.Params.CameraMargin)
	return nil
}

// ReloadLevel swaps in a new version of level i, re-entering it when it is
// the active one.
func (s *Sim) ReloadLevel(i int, lvl *leveldata.Level) error {
	if err := s.World.ReplaceLevel(i, lvl); err != nil {
		return err
	}
	if i == s.World.CurrentLevel {
		return s.EnterLevel(i)
	}
	return nil
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

// PlayerRect is the player's body box.
func (s *Sim) PlayerRect() geom.Rect {
	return BodyRect(s.World.Player.Pos, s.Params.BodySize)
}

// Tick advances the world by one fixed step and returns what happened.
// It never fails: bad input degrades to no movement.
func (s *Sim) Tick(dt float64, in Input) Events {
	s.events = nil
	if !(dt >= 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	in = in.sanitized()
	w := s.World

	if !w.Paused && !w.GameEnd {
		s.spawn(in)
	}

	if s.Rules.Upgrades && !s.Upgrading && s.XP >= s.Params.LevelUpXP {
		s.Upgrading = true
		w.Paused = true
		s.XP = 0
		s.Rank++
		s.emit(Event{Kind: EventLeveledUp, Value: s.Rank})
	}
	if s.Upgrading && in.Upgrade != UpgradeNone {
		s.applyUpgrade(in.Upgrade)
	}
	if in.Pause && !s.Upgrading && !w.GameEnd {
		w.Paused = !w.Paused
		if w.Paused {
			s.emit(Event{Kind: EventPaused})
		} else {
			s.emit(Event{Kind: EventResumed})
		}
	}
	if s.Rules.Stopwatch && in.Finish && !w.GameEnd {
		s.finish()
	}
	if w.Paused || w.GameEnd {
		return s.events
	}

	s.Invuln.Tick(dt, s.Params.TimerEpsilon)
	if s.Rules.Stopwatch {
		s.Elapsed += dt
	}

	s.faceAlong(in.Move)
	if s.Rules.Attack {
		if s.Attack.Update(dt, in.Attack, w.Player.Pos, w.Level().TileSize, s.Params) {
			s.emit(Event{Kind: EventAttackStarted, Pos: w.Player.Pos})
		}
	}
	s.movePlayer(in.Move, dt)
	s.wanderEnemies(dt)
	if s.Rules.Knights {
		s.seekKnights(dt)
	}

	w.Camera.Follow(w.Player.Pos, w.Level().PixelSize(), s.Params.CameraMargin)

	s.resolveTiles()
	s.classify()

	if s.Rules.ExitAdvances {
		s.checkExit()
	}
	return s.events
}

func (s *Sim) spawn(in Input) {
	if s.Rules.ManualSpawns {
		if in.SpawnEnemy {
			s.SpawnEnemy()
		}
		if in.SpawnKnight {
			s.SpawnKnight()
		}
	}
	if s.Rules.RandomSpawns {
		s.rollEnemySpawn()
	}
}

func (s *Sim) applyUpgrade(c UpgradeChoice) {
	switch c {
	case UpgradeHealth:
		s.Health += s.Params.HealthUpgrade
	case UpgradeRange:
		s.Attack.Range += s.Params.RangeUpgrade
	default:
		return
	}
	s.Upgrading = false
	s.World.Paused = false
	s.emit(Event{Kind: EventUpgraded, Value: int(c)})
}

// resolveTiles pushes every actor group out of solid tiles, deepest contact
// first within each group.
func (s *Sim) resolveTiles() {
	w := s.World
	lvl := w.Level()
	size := s.Params.BodySize

	body := []geom.Rect{s.PlayerRect()}
	if d := collision.Resolve(collision.GenerateTiles(body, lvl), body); len(d) == 1 {
		w.Player.Pos = w.Player.Pos.Add(d[0])
	}

	enemies := w.EnemyRects(size)
	for i, d := range collision.Resolve(collision.GenerateTiles(enemies, lvl), enemies) {
		w.Enemies[i].Pos = w.Enemies[i].Pos.Add(d)
	}

	knights := w.KnightRects(size)
	for i, d := range collision.Resolve(collision.GenerateTiles(knights, lvl), knights) {
		w.Knights[i].Pos = w.Knights[i].Pos.Add(d)
	}
}

// classify turns entity contacts into events and removals. These contacts
// do not move the player; enemies hit by knights are pushed clear first.
func (s *Sim) classify() {
	w := s.World
	size := s.Params.BodySize
	enemyRects := w.EnemyRects(size)

	var removeKnights []int
	killEnemy := func(i int) bool {
		if w.Enemies[i].State != Alive {
			return false
		}
		w.Enemies[i].State = Dead
		return true
	}

	player := []geom.Rect{s.PlayerRect(), s.Attack.Area}
	contacts := collision.GenerateAuto(player, enemyRects, size, s.Params.BroadphaseMinPairs)
	collision.Sort(contacts)
	for _, c := range contacts {
		switch c.AIndex {
		case slotAttack:
			if s.Rules.Attack && killEnemy(c.BIndex) {
				s.XP++
				s.Score++
				s.emit(Event{Kind: EventEnemyRemoved, Index: c.BIndex, Pos: w.Enemies[c.BIndex].Pos, Value: s.XP})
			}
		case slotBody:
			if s.Rules.ContactDamage && w.Enemies[c.BIndex].State == Alive {
				s.hurtPlayer(w.Enemies[c.BIndex].Pos)
			}
		}
	}

	if s.Rules.Knights && len(w.Knights) > 0 {
		knightRects := w.KnightRects(size)
		contacts := collision.GenerateAuto(knightRects, enemyRects, size, s.Params.BroadphaseMinPairs)
		collision.Sort(contacts)
		for _, c := range contacts {
			k := &w.Knights[c.AIndex]
			if k.Health <= 0 || w.Enemies[c.BIndex].State != Alive {
				continue
			}
			push := collision.FindDisplacement(enemyRects[c.BIndex], knightRects[c.AIndex])
			w.Enemies[c.BIndex].Pos = w.Enemies[c.BIndex].Pos.Add(push)
			killEnemy(c.BIndex)
			s.Score++
			s.emit(Event{Kind: EventEnemyRemoved, Index: c.BIndex, Pos: w.Enemies[c.BIndex].Pos, Value: s.Score})

			k.Health--
			if k.Health <= 0 {
				removeKnights = append(removeKnights, c.AIndex)
				s.emit(Event{Kind: EventKnightRemoved, Index: c.AIndex, Pos: k.Pos})
			}
		}
	}

	w.Enemies = gamemath.SwapRemoveSorted(w.Enemies, deadEnemies(w.Enemies))
	w.Knights = gamemath.SwapRemoveSorted(w.Knights, removeKnights)
}

// deadEnemies collects the slots marked Dead, whether this tick or earlier.
func deadEnemies(es []Enemy) []int {
	var out []int
	for i, e := range es {
		if e.State == Dead {
			out = append(out, i)
		}
	}
	return out
}

// hurtPlayer applies one point of damage unless the invulnerability window
// is open.
func (s *Sim) hurtPlayer(from geom.Vec2) {
	if s.World.GameEnd || !s.Invuln.TryHit(s.Params.KnockbackTime) {
		return
	}
	s.Health--
	s.emit(Event{Kind: EventPlayerDamaged, Pos: from, Value: s.Health})
	if s.Health <= 0 {
		s.Health = 0
		s.World.GameEnd = true
		s.emit(Event{Kind: EventGameOver, Value: s.Score})
	}
}

// checkExit moves to the next level when the player stands in an exit
// cell, or ends the run after the last level.
func (s *Sim) checkExit() {
	lvl := s.World.Level()
	for _, p := range lvl.StartsOf(leveldata.KindExit) {
		cell := geom.RectAround(p, lvl.TileSize, lvl.TileSize)
		if !cell.ContainsPoint(s.World.Player.Pos) {
			continue
		}
		next := s.World.CurrentLevel + 1
		if next >= len(s.World.Levels) {
			s.finish()
			return
		}
		if err := s.EnterLevel(next); err != nil {
			// Levels are validated at load, so this only trips on a
			// hot-reloaded level without a start. Stay put.
			return
		}
		s.emit(Event{Kind: EventLevelEntered, Index: next, Pos: s.World.Player.Pos})
		return
	}
}

func (s *Sim) finish() {
	s.World.GameEnd = true
	s.emit(Event{Kind: EventFinished, Value: int(math.Round(s.Elapsed * 1000))})
}

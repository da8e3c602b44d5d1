// Package core is the tile-world simulation shared by every game variant:
// the entity store, the attack and invulnerability state machines, spawning,
// and the fixed-step tick that moves actors, resolves contacts and reports
// events. It draws nothing and polls no devices.
package core

import (
	"errors"
	"fmt"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
)

var (
	// ErrNoLevels is returned when a world is built without any level.
	ErrNoLevels = errors.New("no levels")
	// ErrLevelIndex is returned for a level index outside the level list.
	ErrLevelIndex = errors.New("level index out of range")
)

// Entity is a movable actor.
type Entity struct {
	Pos geom.Vec2
	Dir geom.Dir
}

// EnemyState says whether an enemy is still in play. It carries no kind.
type EnemyState int

const (
	Alive EnemyState = iota
	Dead
)

func (s EnemyState) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}

type Enemy struct {
	Entity
	State EnemyState
}

// Knight is an allied actor that hunts enemies.
type Knight struct {
	Pos    geom.Vec2
	Health int
}

// Camera is the visible window into the level, in world units.
type Camera struct {
	Pos  geom.Vec2
	Size geom.Vec2
}

// World owns the levels, the active level index, the camera and every actor.
// It is mutated only by the tick.
type World struct {
	Camera       Camera
	CurrentLevel int
	Levels       []*leveldata.Level
	Player       Entity
	Enemies      []Enemy
	Knights      []Knight
	Paused       bool
	GameEnd      bool
}

// NewWorld builds a world on the first level. Actors are placed by
// EnterLevel or SwitchLevel.
func NewWorld(levels []*leveldata.Level, screen geom.Vec2) (*World, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, l := range levels {
		if l == nil {
			return nil, fmt.Errorf("level %d is nil: %w", i, ErrNoLevels)
		}
	}
	return &World{
		Camera: Camera{Size: screen},
		Levels: append([]*leveldata.Level(nil), levels...),
		Player: Entity{Dir: geom.S},
	}, nil
}

// Level returns the active level.
func (w *World) Level() *leveldata.Level {
	return w.Levels[w.CurrentLevel]
}

// EnterLevel places the player, clears every enemy and knight and reseeds
// enemies from the active level's enemy markers.
func (w *World) EnterLevel(playerPos geom.Vec2) {
	w.Player = Entity{Pos: playerPos, Dir: geom.S}
	w.Enemies = w.Enemies[:0]
	w.Knights = w.Knights[:0]
	for _, p := range w.Level().StartsOf(leveldata.KindEnemy) {
		w.Enemies = append(w.Enemies, Enemy{Entity: Entity{Pos: p, Dir: geom.S}})
	}
}

// SwitchLevel makes level i active and enters it at its player start.
func (w *World) SwitchLevel(i int) error {
	if i < 0 || i >= len(w.Levels) {
		return fmt.Errorf("switch to level %d of %d: %w", i, len(w.Levels), ErrLevelIndex)
	}
	start, err := w.Levels[i].PlayerStart()
	if err != nil {
		return err
	}
	w.CurrentLevel = i
	w.EnterLevel(start)
	return nil
}

// ReplaceLevel swaps level i for a freshly loaded one. The active level is
// re-entered so no actor is left standing in removed geometry.
func (w *World) ReplaceLevel(i int, lvl *leveldata.Level) error {
	if i < 0 || i >= len(w.Levels) {
		return fmt.Errorf("replace level %d of %d: %w", i, len(w.Levels), ErrLevelIndex)
	}
	if lvl == nil {
		return fmt.Errorf("replace level %d: %w", i, ErrNoLevels)
	}
	if _, err := lvl.PlayerStart(); err != nil {
		return err
	}
	w.Levels[i] = lvl
	if i == w.CurrentLevel {
		return w.SwitchLevel(i)
	}
	return nil
}

// BodyRect is the collision box of an actor standing at pos.
func BodyRect(pos geom.Vec2, size float64) geom.Rect {
	return geom.RectAround(pos, size, size)
}

// EnemyRects returns one body rect per enemy, index aligned with Enemies.
func (w *World) EnemyRects(size float64) []geom.Rect {
	out := make([]geom.Rect, len(w.Enemies))
	for i, e := range w.Enemies {
		out[i] = BodyRect(e.Pos, size)
	}
	return out
}

// KnightRects returns one body rect per knight, index aligned with Knights.
func (w *World) KnightRects(size float64) []geom.Rect {
	out := make([]geom.Rect, len(w.Knights))
	for i, k := range w.Knights {
		out[i] = BodyRect(k.Pos, size)
	}
	return out
}

// AliveEnemies counts enemies still in play.
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.State == Alive {
			n++
		}
	}
	return n
}

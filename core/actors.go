package core

import (
	"math"

	"github.com/automoto/tileworld/shared/gamemath"
	"github.com/automoto/tileworld/shared/geom"
)

// movePlayer commits the step only when the destination is an open tile
// inside the grid.
func (s *Sim) movePlayer(move geom.Vec2, dt float64) {
	if move.IsZero() {
		return
	}
	dest := s.World.Player.Pos.Add(move.Scale(s.Params.PlayerSpeed * dt))
	if s.World.Level().IsOpen(dest) {
		s.World.Player.Pos = dest
	}
}

// faceAlong turns the player toward the move intent. Facing is frozen
// while the attack area is live.
func (s *Sim) faceAlong(move geom.Vec2) {
	if !s.Attack.Area.IsEmpty() {
		return
	}
	if d, ok := geom.DirFromAxis(move); ok {
		s.World.Player.Dir = d
	}
}

// wanderEnemies turns each enemy to a random direction with a small chance
// per tick and steps it forward. Steps leaving the grid are dropped; walls
// are handled by tile resolution.
func (s *Sim) wanderEnemies(dt float64) {
	lvl := s.World.Level()
	step := s.Params.EnemySpeed * dt
	for i := range s.World.Enemies {
		e := &s.World.Enemies[i]
		if e.State != Alive {
			continue
		}
		if s.rng.Float64() < s.Params.WanderTurnChance {
			e.Dir = geom.Dirs[s.rng.IntN(len(geom.Dirs))]
		}
		dest := e.Pos.Add(e.Dir.Vec().Scale(step))
		if _, ok := lvl.TileAt(dest); ok {
			e.Pos = dest
		}
	}
}

// nearestEnemy returns the closest live enemy to p. Ties go to the lower
// index.
func (s *Sim) nearestEnemy(p geom.Vec2) (geom.Vec2, bool) {
	best := math.Inf(1)
	var target geom.Vec2
	found := false
	for _, e := range s.World.Enemies {
		if e.State != Alive {
			continue
		}
		if d := e.Pos.Sub(p).MagSq(); d < best {
			best, target, found = d, e.Pos, true
		}
	}
	return target, found
}

// seekKnights walks every knight toward its nearest enemy. A knight standing
// exactly on its target gets a zero direction and stays put.
func (s *Sim) seekKnights(dt float64) {
	lvl := s.World.Level()
	step := s.Params.KnightSpeed * dt
	for i := range s.World.Knights {
		k := &s.World.Knights[i]
		target, ok := s.nearestEnemy(k.Pos)
		if !ok {
			continue
		}
		dest := k.Pos.Add(target.Sub(k.Pos).Normalize().Scale(step))
		if _, ok := lvl.TileAt(dest); ok {
			k.Pos = dest
		}
	}
}

// Follow scrolls the camera so target stays at least margin units inside
// the view, then clamps the view to the level. Scrolling moves in whole
// units. Levels smaller than the view pin the camera at the origin.
func (c *Camera) Follow(target, levelSize geom.Vec2, margin float64) {
	c.Pos.X = follow(c.Pos.X, c.Size.X, target.X, margin)
	c.Pos.Y = follow(c.Pos.Y, c.Size.Y, target.Y, margin)
	c.Pos.X = gamemath.Clamp(c.Pos.X, 0, math.Max(levelSize.X, c.Size.X)-c.Size.X)
	c.Pos.Y = gamemath.Clamp(c.Pos.Y, 0, math.Max(levelSize.Y, c.Size.Y)-c.Size.Y)
}

func follow(pos, size, target, margin float64) float64 {
	if over := target - (pos + size - margin); over > 0 {
		pos += math.Ceil(over)
	}
	if under := (pos + margin) - target; under > 0 {
		pos -= math.Ceil(under)
	}
	return pos
}

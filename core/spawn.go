package core

import (
	"math"

	"github.com/automoto/tileworld/shared/geom"
)

// spawnPoint samples integer positions in [margin, size-margin) on both axes
// until one lands on an open tile outside the exclusion box around the
// player. It gives up after MaxSpawnAttempts.
func (s *Sim) spawnPoint(margin float64) (geom.Vec2, bool) {
	lvl := s.World.Level()
	size := lvl.PixelSize()
	lo := math.Ceil(margin)
	nx := int(math.Floor(size.X-margin) - lo)
	ny := int(math.Floor(size.Y-margin) - lo)
	if nx <= 0 || ny <= 0 {
		return geom.Zero, false
	}

	player := s.World.Player.Pos
	for range s.Params.MaxSpawnAttempts {
		p := geom.Vec2{
			X: lo + float64(s.rng.IntN(nx)),
			Y: lo + float64(s.rng.IntN(ny)),
		}
		if !lvl.IsOpen(p) {
			continue
		}
		if s.nearPlayer(p, player) {
			continue
		}
		return p, true
	}
	return geom.Zero, false
}

// nearPlayer is true inside the square exclusion box around the player.
func (s *Sim) nearPlayer(p, player geom.Vec2) bool {
	r := s.Params.SpawnExclusion
	return math.Abs(p.X-player.X) < r && math.Abs(p.Y-player.Y) < r
}

// SpawnEnemy places one enemy at a random valid point. It reports false,
// without error, when no point was found.
func (s *Sim) SpawnEnemy() bool {
	p, ok := s.spawnPoint(s.Params.EnemySpawnMargin)
	if !ok {
		return false
	}
	s.World.Enemies = append(s.World.Enemies, Enemy{Entity: Entity{Pos: p, Dir: geom.S}})
	s.emit(Event{Kind: EventEnemySpawned, Index: len(s.World.Enemies) - 1, Pos: p})
	return true
}

// SpawnKnight places one knight at a random valid point.
func (s *Sim) SpawnKnight() bool {
	p, ok := s.spawnPoint(s.Params.KnightSpawnMargin)
	if !ok {
		return false
	}
	s.World.Knights = append(s.World.Knights, Knight{Pos: p, Health: s.Params.KnightHealth})
	s.emit(Event{Kind: EventKnightSpawned, Index: len(s.World.Knights) - 1, Pos: p, Value: s.Params.KnightHealth})
	return true
}

// rollEnemySpawn spawns an enemy when the roll beats the threshold.
func (s *Sim) rollEnemySpawn() bool {
	if s.rng.IntN(s.Params.SpawnRollMax) <= s.Params.SpawnThreshold {
		return false
	}
	return s.SpawnEnemy()
}

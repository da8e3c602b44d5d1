package core

import (
	"github.com/automoto/tileworld/shared/gamemath"
	"github.com/automoto/tileworld/shared/geom"
)

// AttackPhase is derived from the attack timer and area.
type AttackPhase int

const (
	// AttackIdle: timer at zero, no area. An attack intent arms the attack.
	AttackIdle AttackPhase = iota
	// AttackActive: the area is live and hits enemies.
	AttackActive
	// AttackCooldown: the area is cleared but the timer is still draining.
	AttackCooldown
)

func (p AttackPhase) String() string {
	switch p {
	case AttackActive:
		return "active"
	case AttackCooldown:
		return "cooldown"
	}
	return "idle"
}

// Attack is the player's melee sweep. Range is in tiles and is raised by
// upgrades.
type Attack struct {
	Timer float64
	Range float64
	Area  geom.Rect
}

// Phase reports the current state.
func (a *Attack) Phase() AttackPhase {
	switch {
	case a.Timer <= 0:
		return AttackIdle
	case !a.Area.IsEmpty():
		return AttackActive
	}
	return AttackCooldown
}

// Update drains the timer and steps the state machine. An intent while the
// timer is at zero arms the attack for AttackMaxTime with a square area
// of Range tiles centered on the attacker. Once the timer falls to
// AttackCooldownTime the area is cleared. It reports whether an attack
// started this tick.
func (a *Attack) Update(dt float64, intent bool, center geom.Vec2, tileSize float64, p Params) bool {
	a.Timer = gamemath.DrainTimer(a.Timer, dt, 0)
	if a.Timer <= 0 && intent {
		side := a.Range * tileSize
		a.Timer = p.AttackMaxTime
		a.Area = geom.RectAround(center, side, side)
		return true
	}
	if a.Timer <= p.AttackCooldownTime {
		a.Area = geom.Rect{}
	}
	return false
}

// Invuln is the knockback window after the player takes a hit.
type Invuln struct {
	Timer float64
}

// Tick drains the window. A timer within eps of zero ends at exactly zero.
func (v *Invuln) Tick(dt, eps float64) {
	v.Timer = gamemath.DrainTimer(v.Timer, dt, eps)
}

// Active reports whether hits are being ignored.
func (v *Invuln) Active() bool {
	return v.Timer > 0
}

// TryHit opens a new window of the given length and returns true, unless a
// window is already open.
func (v *Invuln) TryHit(window float64) bool {
	if v.Timer != 0 {
		return false
	}
	v.Timer = window
	return true
}

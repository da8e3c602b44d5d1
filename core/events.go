package core

import (
	"fmt"

	"github.com/automoto/tileworld/shared/geom"
)

// EventKind names something that happened during a tick.
type EventKind int

const (
	EventEnemyRemoved EventKind = iota
	EventPlayerDamaged
	EventLeveledUp
	EventUpgraded
	EventPaused
	EventResumed
	EventGameOver
	EventFinished
	EventEnemySpawned
	EventKnightSpawned
	EventKnightRemoved
	EventAttackStarted
	EventLevelEntered
)

var eventNames = [...]string{
	EventEnemyRemoved:  "enemy_removed",
	EventPlayerDamaged: "player_damaged",
	EventLeveledUp:     "leveled_up",
	EventUpgraded:      "upgraded",
	EventPaused:        "paused",
	EventResumed:       "resumed",
	EventGameOver:      "game_over",
	EventFinished:      "finished",
	EventEnemySpawned:  "enemy_spawned",
	EventKnightSpawned: "knight_spawned",
	EventKnightRemoved: "knight_removed",
	EventAttackStarted: "attack_started",
	EventLevelEntered:  "level_entered",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is transient output of one tick for the presentation layer to react
// to. Index is the actor's slot before this tick's removals; Value carries
// the new health, xp or level depending on the kind.
type Event struct {
	Kind  EventKind
	Index int
	Pos   geom.Vec2
	Value int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(index=%d value=%d pos=%.1f,%.1f)", e.Kind, e.Index, e.Value, e.Pos.X, e.Pos.Y)
}

// Events is the ordered event list of a tick.
type Events []Event

// Count returns how many events of a kind were raised.
func (es Events) Count(kind EventKind) int {
	n := 0
	for _, e := range es {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Has reports whether any event of the kind was raised.
func (es Events) Has(kind EventKind) bool {
	return es.Count(kind) > 0
}

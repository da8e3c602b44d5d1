package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRules is returned by RulesByName for an unknown variant.
var ErrUnknownRules = errors.New("unknown rules")

// Rules selects which parts of the tick a game variant uses. Every variant
// shares the same movement, tile collision and camera.
type Rules struct {
	Name string

	Attack        bool // melee sweep removes enemies and grants xp
	Upgrades      bool // xp opens the level-up menu
	RandomSpawns  bool // enemies appear on a per-tick roll
	ContactDamage bool // enemy bodies hurt the player
	Knights       bool // knights hunt enemies
	ManualSpawns  bool // spawn intents add enemies and knights
	Stopwatch     bool // elapsed time is tracked for the leaderboard
	ExitAdvances  bool // reaching an exit marker moves to the next level
}

// AdventureRules: fight roaming enemies, level up, survive.
func AdventureRules() Rules {
	return Rules{
		Name:          "adventure",
		Attack:        true,
		Upgrades:      true,
		RandomSpawns:  true,
		ContactDamage: true,
	}
}

// ArenaRules: the player places enemies and knights and watches them fight.
func ArenaRules() Rules {
	return Rules{
		Name:         "arena",
		Knights:      true,
		ManualSpawns: true,
	}
}

// MazeRules: race through every level against the clock.
func MazeRules() Rules {
	return Rules{
		Name:         "maze",
		Stopwatch:    true,
		ExitAdvances: true,
	}
}

var rulesByName = map[string]func() Rules{
	"adventure": AdventureRules,
	"arena":     ArenaRules,
	"maze":      MazeRules,
}

// RulesByName returns a preset.
func RulesByName(name string) (Rules, error) {
	f, ok := rulesByName[name]
	if !ok {
		return Rules{}, fmt.Errorf("%q: %w", name, ErrUnknownRules)
	}
	return f(), nil
}

// RuleNames lists the presets in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rulesByName))
	for n := range rulesByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

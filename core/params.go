package core

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrBadParams marks a tuning set that would break the tick.
var ErrBadParams = errors.New("invalid params")

// Params holds every tuning number the tick reads. Distances are world
// units, times are seconds.
type Params struct {
	DT       float64 `yaml:"dt"`
	MaxSteps int     `yaml:"max_steps"`

	BodySize    float64 `yaml:"body_size"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	KnightSpeed float64 `yaml:"knight_speed"`

	StartHealth      int     `yaml:"start_health"`
	StartAttackRange float64 `yaml:"start_attack_range"`
	HealthUpgrade    int     `yaml:"health_upgrade"`
	RangeUpgrade     float64 `yaml:"range_upgrade"`
	LevelUpXP        int     `yaml:"level_up_xp"`

	AttackMaxTime      float64 `yaml:"attack_max_time"`
	AttackCooldownTime float64 `yaml:"attack_cooldown_time"`
	KnockbackTime      float64 `yaml:"knockback_time"`
	TimerEpsilon       float64 `yaml:"timer_epsilon"`

	SpawnRollMax       int     `yaml:"spawn_roll_max"`
	SpawnThreshold     int     `yaml:"spawn_threshold"`
	SpawnExclusion     float64 `yaml:"spawn_exclusion"`
	EnemySpawnMargin   float64 `yaml:"enemy_spawn_margin"`
	KnightSpawnMargin  float64 `yaml:"knight_spawn_margin"`
	MaxSpawnAttempts   int     `yaml:"max_spawn_attempts"`
	WanderTurnChance   float64 `yaml:"wander_turn_chance"`
	KnightHealth       int     `yaml:"knight_health"`
	BroadphaseMinPairs int     `yaml:"broadphase_min_pairs"`

	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`
	CameraMargin float64 `yaml:"camera_margin"`
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		DT:       1.0 / 60.0,
		MaxSteps: 8,

		BodySize:    16,
		PlayerSpeed: 64,
		EnemySpeed:  32,
		KnightSpeed: 32,

		StartHealth:      3,
		StartAttackRange: 3,
		HealthUpgrade:    2,
		RangeUpgrade:     0.5,
		LevelUpXP:        5,

		AttackMaxTime:      0.3,
		AttackCooldownTime: 0.1,
		KnockbackTime:      1.0,
		TimerEpsilon:       0.02,

		SpawnRollMax:       1000,
		SpawnThreshold:     960,
		SpawnExclusion:     48,
		EnemySpawnMargin:   2,
		KnightSpawnMargin:  32,
		MaxSpawnAttempts:   64,
		WanderTurnChance:   0.05,
		KnightHealth:       3,
		BroadphaseMinPairs: 256,

		ScreenWidth:  220,
		ScreenHeight: 140,
		CameraMargin: 64,
	}
}

// LoadParams overlays YAML on the defaults. Keys that are absent keep their
// default value.
func LoadParams(r io.Reader) (Params, error) {
	p := DefaultParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects tunings the tick cannot run with.
func (p Params) Validate() error {
	check := func(ok bool, format string, args ...any) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadParams)
	}
	return errors.Join(
		check(p.DT > 0, "dt %v must be positive", p.DT),
		check(p.MaxSteps > 0, "max_steps %d must be positive", p.MaxSteps),
		check(p.BodySize > 0, "body_size %v must be positive", p.BodySize),
		check(p.PlayerSpeed >= 0 && p.EnemySpeed >= 0 && p.KnightSpeed >= 0, "speeds must not be negative"),
		check(p.StartHealth > 0, "start_health %d must be positive", p.StartHealth),
		check(p.LevelUpXP > 0, "level_up_xp %d must be positive", p.LevelUpXP),
		check(p.AttackMaxTime > 0, "attack_max_time %v must be positive", p.AttackMaxTime),
		check(p.AttackCooldownTime >= 0 && p.AttackCooldownTime < p.AttackMaxTime,
			"attack_cooldown_time %v must be in [0, attack_max_time)", p.AttackCooldownTime),
		check(p.KnockbackTime > 0, "knockback_time %v must be positive", p.KnockbackTime),
		check(p.TimerEpsilon >= 0, "timer_epsilon %v must not be negative", p.TimerEpsilon),
		check(p.SpawnRollMax > 0, "spawn_roll_max %d must be positive", p.SpawnRollMax),
		check(p.MaxSpawnAttempts > 0, "max_spawn_attempts %d must be positive", p.MaxSpawnAttempts),
		check(p.WanderTurnChance >= 0 && p.WanderTurnChance <= 1, "wander_turn_chance %v must be in [0, 1]", p.WanderTurnChance),
		check(p.KnightHealth > 0, "knight_health %d must be positive", p.KnightHealth),
		check(p.ScreenWidth > 0 && p.ScreenHeight > 0, "screen size must be positive"),
		check(p.CameraMargin >= 0, "camera_margin %v must not be negative", p.CameraMargin),
	)
}

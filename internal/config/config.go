// Package config provides YAML-based configuration loading and the
// difficulty model for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all tunables of the lane runner simulation.
type RunnerConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Collision  CollisionConfig  `yaml:"collision"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig describes the track geometry along the lane (x) and
// longitudinal (z) axes. Entities travel towards +z.
type TrackConfig struct {
	LaneSpacing float64 `yaml:"lane_spacing"` // Distance between adjacent lanes
	PlayerZ     float64 `yaml:"player_z"`     // Longitudinal position of the player
	SpawnZ      float64 `yaml:"spawn_z"`      // Where new entities appear
	CleanupZ    float64 `yaml:"cleanup_z"`    // Entities past this are destroyed
	PassMargin  float64 `yaml:"pass_margin"`  // Obstacle counts as passed at PlayerZ+PassMargin
}

// SpawnConfig defines what a spawn decision produces.
type SpawnConfig struct {
	ShieldChance     float64 `yaml:"shield_chance"`
	MultiplierChance float64 `yaml:"multiplier_chance"`
}

// CollisionConfig defines collision radii.
type CollisionConfig struct {
	Radius       float64 `yaml:"radius"`        // Obstacle collision radius
	PowerUpScale float64 `yaml:"powerup_scale"` // Power-up radius = Radius * PowerUpScale
}

// RadiusSq returns the squared obstacle collision radius.
func (c CollisionConfig) RadiusSq() float64 {
	return c.Radius * c.Radius
}

// PowerUpRadiusSq returns the squared power-up pickup radius.
func (c CollisionConfig) PowerUpRadiusSq() float64 {
	r := c.Radius * c.PowerUpScale
	return r * r
}

// PowerUpConfig defines power-up durations and effects.
type PowerUpConfig struct {
	ShieldDuration     time.Duration `yaml:"shield_duration"` // Fallback timeout, shields usually break first
	MultiplierDuration time.Duration `yaml:"multiplier_duration"`
	MultiplierFactor   int           `yaml:"multiplier_factor"`
}

// ScoringConfig defines points and currency rewards.
type ScoringConfig struct {
	BasePoints   int `yaml:"base_points"`   // Points per obstacle passed
	RewardStep   int `yaml:"reward_step"`   // Orbs are granted every RewardStep points
	RewardAmount int `yaml:"reward_amount"` // Orbs granted per crossed step
}

// DifficultyConfig defines the difficulty curve.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	ScoreTarget  float64 `yaml:"score_target"`  // Score at which difficulty saturates
	Exponent     float64 `yaml:"exponent"`      // > 1 keeps the early game gentle
	MinSpeed     float64 `yaml:"min_speed"`     // Units per tick at factor 0
	MaxSpeed     float64 `yaml:"max_speed"`     // Units per tick at factor 1
	BaseInterval float64 `yaml:"base_interval"` // Spawn interval in ticks at factor 0
	MinInterval  float64 `yaml:"min_interval"`  // Spawn interval in ticks at factor 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validation errors.
var (
	ErrSpawnChance   = errors.New("config: spawn chances must be within [0,1] and sum to at most 1")
	ErrDifficulty    = errors.New("config: invalid difficulty curve")
	ErrScoring       = errors.New("config: invalid scoring")
	ErrTrackGeometry = errors.New("config: invalid track geometry")
)

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	s := c.Spawn
	if s.ShieldChance < 0 || s.MultiplierChance < 0 || s.ShieldChance+s.MultiplierChance > 1 {
		return fmt.Errorf("%w: shield=%.3f multiplier=%.3f", ErrSpawnChance, s.ShieldChance, s.MultiplierChance)
	}

	d := c.Difficulty
	if d.ScoreTarget <= 0 || d.Exponent <= 0 {
		return fmt.Errorf("%w: score_target and exponent must be positive", ErrDifficulty)
	}
	if d.MinSpeed <= 0 || d.MaxSpeed < d.MinSpeed {
		return fmt.Errorf("%w: need 0 < min_speed <= max_speed", ErrDifficulty)
	}
	if d.MinInterval <= 0 || d.BaseInterval < d.MinInterval {
		return fmt.Errorf("%w: need 0 < min_interval <= base_interval", ErrDifficulty)
	}
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("%w: initial_level %.2f outside [0,1]", ErrDifficulty, d.InitialLevel)
	}

	sc := c.Scoring
	if sc.BasePoints <= 0 || sc.RewardStep <= 0 || sc.RewardAmount < 0 {
		return fmt.Errorf("%w: base_points and reward_step must be positive", ErrScoring)
	}

	t := c.Track
	if t.SpawnZ >= t.PlayerZ || t.CleanupZ <= t.PlayerZ+t.PassMargin {
		return fmt.Errorf("%w: need spawn_z < player_z < player_z+pass_margin < cleanup_z", ErrTrackGeometry)
	}
	if c.Collision.Radius <= 0 || c.PowerUps.MultiplierFactor < 1 {
		return fmt.Errorf("%w: radius must be positive and multiplier_factor >= 1", ErrTrackGeometry)
	}
	return nil
}

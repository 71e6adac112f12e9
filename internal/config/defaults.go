package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			LaneSpacing: 3.5,
			PlayerZ:     5,
			SpawnZ:      -120,
			CleanupZ:    100,
			PassMargin:  2,
		},
		Spawn: SpawnConfig{
			ShieldChance:     0.025,
			MultiplierChance: 0.020,
		},
		Collision: CollisionConfig{
			Radius:       1.05,
			PowerUpScale: 0.9,
		},
		PowerUps: PowerUpConfig{
			ShieldDuration:     20 * time.Second,
			MultiplierDuration: 15 * time.Second,
			MultiplierFactor:   2,
		},
		Scoring: ScoringConfig{
			BasePoints:   10,
			RewardStep:   500,
			RewardAmount: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			ScoreTarget:  1500,
			Exponent:     1.4,
			MinSpeed:     0.22,
			MaxSpeed:     1.35,
			BaseInterval: 60,
			MinInterval:  18,
		},
	}
}

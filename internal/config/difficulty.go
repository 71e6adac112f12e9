package config

import "math"

// DifficultyManager derives game speed and spawn cadence from the score.
// It holds no mutable state besides its configuration, so every method is a
// pure function of the score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Factor returns the difficulty factor in [0,1] for the given score.
// It follows (score/target)^exponent, saturating at 1 once the score reaches
// the target, lifted by the initial level of the active preset.
func (d *DifficultyManager) Factor(score int) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	target := d.cfg.ScoreTarget
	if target <= 0 {
		target = 1 // Prevent division by zero
	}

	raw := math.Max(float64(score), 0) / target
	progress := math.Min(math.Pow(raw, d.cfg.Exponent), 1)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns entity speed in track units per tick.
func (d *DifficultyManager) Speed(score int) float64 {
	f := d.Factor(score)
	return d.cfg.MinSpeed + (d.cfg.MaxSpeed-d.cfg.MinSpeed)*f
}

// SpawnInterval returns the number of ticks between spawn decisions.
func (d *DifficultyManager) SpawnInterval(score int) float64 {
	f := d.Factor(score)
	return d.cfg.BaseInterval - f*(d.cfg.BaseInterval-d.cfg.MinInterval)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

package config

import (
	"math"
	"testing"
)

func TestDifficultyFactorBounds(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	prev := -1.0
	for score := 0; score <= 3000; score += 10 {
		f := d.Factor(score)
		if f < 0 || f > 1 {
			t.Fatalf("Factor(%d) = %f, outside [0,1]", score, f)
		}
		if f < prev {
			t.Fatalf("Factor(%d) = %f decreased from %f", score, f, prev)
		}
		prev = f
	}
}

func TestDifficultyFactorSaturatesAtTarget(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	d := NewDifficultyManager(cfg)

	for _, score := range []int{1500, 1501, 2000, 100000} {
		if f := d.Factor(score); f != 1 {
			t.Errorf("Factor(%d) = %f, expected exactly 1", score, f)
		}
	}
	if f := d.Factor(0); f != 0 {
		t.Errorf("Factor(0) = %f, expected 0", f)
	}
}

func TestDifficultyFactorCurve(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	// Halfway to the target the exponent keeps the factor below linear.
	f := d.Factor(750)
	expected := math.Pow(0.5, 1.4)
	if math.Abs(f-expected) > 1e-9 {
		t.Errorf("Factor(750) = %f, expected %f", f, expected)
	}
	if f >= 0.5 {
		t.Errorf("Factor(750) = %f, expected below linear progress 0.5", f)
	}
}

func TestSpeedAndIntervalMonotonic(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	d := NewDifficultyManager(cfg)

	prevSpeed := d.Speed(0)
	prevInterval := d.SpawnInterval(0)
	if prevSpeed != cfg.MinSpeed {
		t.Errorf("Speed(0) = %f, expected %f", prevSpeed, cfg.MinSpeed)
	}
	if prevInterval != cfg.BaseInterval {
		t.Errorf("SpawnInterval(0) = %f, expected %f", prevInterval, cfg.BaseInterval)
	}

	for score := 10; score <= 2500; score += 10 {
		speed := d.Speed(score)
		interval := d.SpawnInterval(score)

		if speed < prevSpeed {
			t.Fatalf("Speed decreased at score %d: %f -> %f", score, prevSpeed, speed)
		}
		if interval > prevInterval {
			t.Fatalf("SpawnInterval increased at score %d: %f -> %f", score, prevInterval, interval)
		}
		if speed < cfg.MinSpeed || speed > cfg.MaxSpeed+1e-9 {
			t.Fatalf("Speed(%d) = %f outside [%f,%f]", score, speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if interval < cfg.MinInterval || interval > cfg.BaseInterval {
			t.Fatalf("SpawnInterval(%d) = %f outside [%f,%f]", score, interval, cfg.MinInterval, cfg.BaseInterval)
		}
		prevSpeed, prevInterval = speed, interval
	}

	if got := d.Speed(1500); math.Abs(got-cfg.MaxSpeed) > 1e-9 {
		t.Errorf("Speed at target = %f, expected %f", got, cfg.MaxSpeed)
	}
	if got := d.SpawnInterval(1500); got != cfg.MinInterval {
		t.Errorf("SpawnInterval at target = %f, expected %f", got, cfg.MinInterval)
	}
}

func TestDifficultyFixedPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	if d.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if d.Factor(0) != d.Factor(5000) {
		t.Error("fixed preset should not progress with score")
	}
}

func TestDifficultyHardPresetStartsHigher(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	d := NewDifficultyManager(cfg.Difficulty)

	if f := d.Factor(0); f != 0.7 {
		t.Errorf("hard preset Factor(0) = %f, expected 0.7", f)
	}
	if f := d.Factor(1500); math.Abs(f-1) > 1e-9 {
		t.Errorf("hard preset Factor(1500) = %f, expected 1", f)
	}
}

func TestNegativeScoreClamped(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)
	if f := d.Factor(-100); f != 0 {
		t.Errorf("Factor(-100) = %f, expected 0", f)
	}
}

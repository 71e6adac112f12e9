package runner

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/foxrun/internal/config"
)

var update = flag.Bool("update", false, "rewrite the simulation baseline in testdata")

func baselineOptions() SimOptions {
	return SimOptions{
		Config:     config.DefaultRunnerConfig(),
		Seed:       20240601,
		Ticks:      1000,
		DeltaTicks: 1,
		Pilot:      DodgePilot{Lookahead: 8},
	}
}

func TestSimulationBaseline(t *testing.T) {
	path := filepath.Join("testdata", "simulate_1000.golden")
	got := Simulate(baselineOptions()).String()

	if *update {
		if err := os.MkdirAll("testdata", 0o755); err != nil {
			t.Fatalf("create testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(got+"\n"), 0o644); err != nil {
			t.Fatalf("write baseline: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read baseline %s (record with -update): %v", path, err)
	}
	if strings.TrimSpace(string(want)) != got {
		t.Errorf("simulation drifted from baseline\n got: %s\nwant: %s", got, strings.TrimSpace(string(want)))
	}
}

func TestSimulationDeterminism(t *testing.T) {
	a := Simulate(baselineOptions())
	b := Simulate(baselineOptions())
	if a != b {
		t.Errorf("same seed produced different runs:\n%s\n%s", a, b)
	}
}

func TestSimulationInvariants(t *testing.T) {
	opts := baselineOptions()
	r := Simulate(opts)

	if r.Ticks > opts.Ticks {
		t.Errorf("ran %d ticks, limit %d", r.Ticks, opts.Ticks)
	}
	if !r.GameOver && r.Ticks != opts.Ticks {
		t.Errorf("run stopped early at %d ticks without a game over", r.Ticks)
	}
	if r.Score%opts.Config.Scoring.BasePoints != 0 {
		t.Errorf("score %d is not a multiple of base points", r.Score)
	}
	if want := r.Score / opts.Config.Scoring.RewardStep * opts.Config.Scoring.RewardAmount; r.Orbs != want {
		t.Errorf("orbs = %d, want %d for score %d", r.Orbs, want, r.Score)
	}
	if r.Live > r.Spawned {
		t.Errorf("live %d exceeds spawned %d", r.Live, r.Spawned)
	}
	if r.Spawned == 0 {
		t.Error("no entities spawned in 1000 ticks")
	}
}

func TestSimulationBaselineSurvives(t *testing.T) {
	r := Simulate(baselineOptions())
	if r.GameOver || r.Ticks != 1000 {
		t.Errorf("dodging run ended at tick %d (game over %t), want all 1000 ticks", r.Ticks, r.GameOver)
	}
	if r.Score == 0 {
		t.Error("dodging run passed no obstacles")
	}
}

func TestSimulationWithoutPilotCrashes(t *testing.T) {
	opts := baselineOptions()
	opts.Pilot = nil
	r := Simulate(opts)

	if !r.GameOver {
		t.Fatalf("idle run survived %d ticks", r.Ticks)
	}
	if r.Ticks >= opts.Ticks {
		t.Errorf("game over reported after the tick limit: %d", r.Ticks)
	}
	if r.HighScore != r.Score {
		t.Errorf("high score %d not recorded from final score %d", r.HighScore, r.Score)
	}
}

func TestSimulationStartsFromProfileCurrency(t *testing.T) {
	p := newTestProfile()
	p.AddOrbs(70)

	opts := baselineOptions()
	opts.Ticks = 10
	opts.Profile = p
	r := Simulate(opts)

	if r.Orbs != 70 || r.Score != 0 {
		t.Errorf("after 10 ticks: orbs=%d score=%d, want 70/0", r.Orbs, r.Score)
	}
}

func TestDodgePilot(t *testing.T) {
	p := DodgePilot{Lookahead: 10}
	obstacles := []Entity{{Lane: 1, Z: -1}}

	if d := p.Decide(1, obstacles, 5); d != -1 {
		t.Errorf("decide = %d, want -1", d)
	}
	obstacles = append(obstacles, Entity{Lane: 0, Z: 0})
	if d := p.Decide(1, obstacles, 5); d != 1 {
		t.Errorf("decide = %d, want 1", d)
	}
	if d := p.Decide(2, obstacles, 5); d != 0 {
		t.Errorf("decide = %d for a clear lane, want 0", d)
	}
}

package runner

import (
	"testing"

	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/profile"
)

func newTestRunState() *RunState {
	return NewRunState(newTestProfile(), config.DefaultRunnerConfig())
}

func TestAddScoreCrossesOneThreshold(t *testing.T) {
	s := newTestRunState()
	s.score = 495

	d := s.AddScore(10)
	if s.Score() != 505 {
		t.Errorf("score = %d, want 505", s.Score())
	}
	if d.Score != 10 || d.Orbs != 10 {
		t.Errorf("delta = %+v, want {10 10}", d)
	}
	if s.Orbs() != 10 {
		t.Errorf("orbs = %d, want 10", s.Orbs())
	}
}

func TestAddScoreWithMultiplier(t *testing.T) {
	s := newTestRunState()
	s.score = 490
	s.Multiplier.Activate(0)

	d := s.AddScore(10)
	if d.Score != 20 {
		t.Errorf("gained = %d, want 20", d.Score)
	}
	if s.Score() != 510 {
		t.Errorf("score = %d, want 510", s.Score())
	}
	if d.Orbs != 10 || s.Orbs() != 10 {
		t.Errorf("orbs delta = %d balance = %d, want 10/10", d.Orbs, s.Orbs())
	}
}

func TestAddScoreCrossesSeveralThresholds(t *testing.T) {
	s := newTestRunState()
	s.score = 450

	d := s.AddScore(1100)
	if s.Score() != 1550 {
		t.Errorf("score = %d, want 1550", s.Score())
	}
	if d.Orbs != 30 {
		t.Errorf("orbs delta = %d, want 30", d.Orbs)
	}
}

func TestAddScoreNoThreshold(t *testing.T) {
	s := newTestRunState()

	d := s.AddScore(10)
	if d.Orbs != 0 || s.Orbs() != 0 {
		t.Errorf("unexpected orbs: delta %d balance %d", d.Orbs, s.Orbs())
	}
}

func TestAddScoreIgnoresNonPositive(t *testing.T) {
	s := newTestRunState()
	s.AddScore(10)

	if d := s.AddScore(-5); d != (ScoreDelta{}) {
		t.Errorf("negative points produced %+v", d)
	}
	if d := s.AddScore(0); d != (ScoreDelta{}) {
		t.Errorf("zero points produced %+v", d)
	}
	if s.Score() != 10 {
		t.Errorf("score = %d, want 10", s.Score())
	}
}

func TestAddScorePersistsOrbs(t *testing.T) {
	kv := profile.NewMemoryKV()
	s := NewRunState(profile.Load(kv, quietLogger()), config.DefaultRunnerConfig())
	s.score = 495
	s.AddScore(10)

	if v, ok := kv.Get(profile.KeyOrbs); !ok || v != "10" {
		t.Errorf("stored orbs = %q (present %t), want \"10\"", v, ok)
	}
}

func TestResetForRun(t *testing.T) {
	s := newTestRunState()
	s.profile.AddOrbs(500)
	if !s.BuyTrail("pixel") {
		t.Fatal("buying sunset should succeed")
	}
	orbs := s.Orbs()

	s.score = 1234
	s.MoveLane(1)
	s.Shield.Activate(0)
	s.Multiplier.Activate(0)

	s.ResetForRun()

	if s.Score() != 0 || s.Lane() != CenterLane {
		t.Errorf("score=%d lane=%d after reset", s.Score(), s.Lane())
	}
	if s.Shield.Active() || s.Multiplier.Active() || s.Multiplier.Factor() != 1 {
		t.Error("power-ups should be cleared")
	}
	if s.Orbs() != orbs {
		t.Errorf("orbs = %d, want %d", s.Orbs(), orbs)
	}
	if !s.profile.IsUnlocked("pixel") {
		t.Error("unlocks should survive a reset")
	}
}

func TestMoveLaneClamps(t *testing.T) {
	s := newTestRunState()

	if !s.MoveLane(-1) || s.Lane() != 0 {
		t.Fatalf("lane = %d, want 0", s.Lane())
	}
	if s.MoveLane(-1) {
		t.Error("moving past the left edge should fail")
	}
	s.MoveLane(1)
	s.MoveLane(1)
	if s.Lane() != LaneCount-1 {
		t.Errorf("lane = %d, want %d", s.Lane(), LaneCount-1)
	}
	if s.MoveLane(1) {
		t.Error("moving past the right edge should fail")
	}
}

func TestBuyTrailRules(t *testing.T) {
	s := newTestRunState()

	if s.BuyTrail("pixel") {
		t.Fatal("buying without orbs should fail")
	}
	if s.Orbs() != 0 || s.profile.IsUnlocked("pixel") {
		t.Fatal("failed purchase changed state")
	}

	s.profile.AddOrbs(500)
	before := s.Orbs()
	if !s.BuyTrail("pixel") {
		t.Fatal("affordable purchase should succeed")
	}
	trail, _ := profile.LookupTrail("pixel")
	if s.Orbs() != before-trail.Price {
		t.Errorf("orbs = %d, want %d", s.Orbs(), before-trail.Price)
	}

	after := s.Orbs()
	if s.BuyTrail("pixel") {
		t.Error("buying an owned trail should fail")
	}
	if s.Orbs() != after {
		t.Error("repeat purchase changed the balance")
	}
}

package runner

import (
	"testing"
	"time"
)

func TestShieldActivate(t *testing.T) {
	s := NewShield(20 * time.Second)

	if !s.Activate(time.Second) {
		t.Fatal("activating an inactive shield should succeed")
	}
	if !s.Active() {
		t.Fatal("shield should be active")
	}
	if got := s.Remaining(time.Second); got != 20*time.Second {
		t.Errorf("remaining = %v, want 20s", got)
	}

	// Second activation is a no-op and keeps the original expiry
	if s.Activate(10 * time.Second) {
		t.Error("activating an active shield should be a no-op")
	}
	if got := s.Remaining(10 * time.Second); got != 11*time.Second {
		t.Errorf("remaining = %v, want 11s", got)
	}
}

func TestShieldBreak(t *testing.T) {
	s := NewShield(20 * time.Second)

	if s.Break() {
		t.Error("breaking an inactive shield should be a no-op")
	}

	s.Activate(0)
	if !s.Break() {
		t.Error("breaking an active shield should succeed")
	}
	if s.Active() {
		t.Error("shield should be inactive after break")
	}
	if s.Break() {
		t.Error("second break should be a no-op")
	}
}

func TestShieldExpiry(t *testing.T) {
	s := NewShield(20 * time.Second)
	s.Activate(5 * time.Second)

	if s.CheckExpiry(24 * time.Second) {
		t.Error("shield expired early")
	}
	if !s.CheckExpiry(25 * time.Second) {
		t.Error("shield should expire at its deadline")
	}
	if s.Active() {
		t.Error("expired shield should be inactive")
	}
	if s.Remaining(25*time.Second) != 0 {
		t.Error("expired shield should report no remaining time")
	}
}

func TestMultiplierActivate(t *testing.T) {
	m := NewMultiplier(15*time.Second, 2)
	if m.Factor() != 1 {
		t.Fatalf("inactive factor = %d, want 1", m.Factor())
	}

	m.Activate(10 * time.Second)
	if !m.Active() || m.Factor() != 2 {
		t.Fatalf("active=%t factor=%d, want true/2", m.Active(), m.Factor())
	}
	if got := m.Remaining(10 * time.Second); got != 15*time.Second {
		t.Errorf("remaining = %v, want 15s", got)
	}
}

func TestMultiplierRefreshDoesNotStack(t *testing.T) {
	m := NewMultiplier(15*time.Second, 2)
	m.Activate(0)
	m.Activate(10 * time.Second)

	if m.Factor() != 2 {
		t.Errorf("factor = %d after refresh, want 2", m.Factor())
	}
	// Expiry extended to now+duration
	if m.CheckExpiry(24 * time.Second) {
		t.Error("refreshed multiplier expired at the original deadline")
	}
	if !m.CheckExpiry(25 * time.Second) {
		t.Error("refreshed multiplier should expire at the new deadline")
	}
	if m.Factor() != 1 {
		t.Errorf("factor = %d after expiry, want 1", m.Factor())
	}
}

func TestMultiplierEnd(t *testing.T) {
	m := NewMultiplier(15*time.Second, 2)
	if m.End() {
		t.Error("ending an inactive multiplier should be a no-op")
	}

	m.Activate(0)
	if !m.End() {
		t.Error("ending an active multiplier should succeed")
	}
	if m.Active() || m.Factor() != 1 {
		t.Errorf("active=%t factor=%d after end", m.Active(), m.Factor())
	}
}

func TestMultiplierBoostFloor(t *testing.T) {
	m := NewMultiplier(time.Second, 0)
	m.Activate(0)
	if m.Factor() != 1 {
		t.Errorf("factor = %d, want 1 for a zero boost", m.Factor())
	}
}

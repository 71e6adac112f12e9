package runner

import "time"

// Shield absorbs one obstacle hit. It breaks on the first hit or expires
// after its duration, whichever comes first.
type Shield struct {
	active    bool
	expiresAt time.Duration
	duration  time.Duration
}

// NewShield creates an inactive shield lasting d once activated.
func NewShield(d time.Duration) Shield {
	return Shield{duration: d}
}

// Activate raises the shield at time now. Collecting a shield while one is
// already up changes nothing, including its expiry. Returns true if the
// shield was raised.
func (s *Shield) Activate(now time.Duration) bool {
	if s.active {
		return false
	}
	s.active = true
	s.expiresAt = now + s.duration
	return true
}

// Break deactivates the shield. Returns true if it was active.
func (s *Shield) Break() bool {
	if !s.active {
		return false
	}
	s.active = false
	s.expiresAt = 0
	return true
}

// CheckExpiry breaks the shield if its time is up. Returns true if it expired.
func (s *Shield) CheckExpiry(now time.Duration) bool {
	if s.active && now >= s.expiresAt {
		return s.Break()
	}
	return false
}

// Active reports whether the shield is up.
func (s *Shield) Active() bool { return s.active }

// Remaining returns the time left before expiry, 0 when inactive.
func (s *Shield) Remaining(now time.Duration) time.Duration {
	if !s.active || now >= s.expiresAt {
		return 0
	}
	return s.expiresAt - now
}

// Multiplier scales points earned while active.
type Multiplier struct {
	active    bool
	expiresAt time.Duration
	duration  time.Duration
	boost     int // Factor applied while active
	factor    int
}

// NewMultiplier creates an inactive multiplier that applies boost for d.
func NewMultiplier(d time.Duration, boost int) Multiplier {
	if boost < 1 {
		boost = 1
	}
	return Multiplier{duration: d, boost: boost, factor: 1}
}

// Activate starts the multiplier at time now. Collecting another one while
// active only refreshes the expiry; factors never stack.
func (m *Multiplier) Activate(now time.Duration) {
	m.expiresAt = now + m.duration
	if m.active {
		return
	}
	m.active = true
	m.factor = m.boost
}

// End deactivates the multiplier and restores factor 1. Returns true if it
// was active.
func (m *Multiplier) End() bool {
	m.factor = 1
	if !m.active {
		return false
	}
	m.active = false
	m.expiresAt = 0
	return true
}

// CheckExpiry ends the multiplier if its time is up. Returns true if it expired.
func (m *Multiplier) CheckExpiry(now time.Duration) bool {
	if m.active && now >= m.expiresAt {
		return m.End()
	}
	return false
}

// Active reports whether the multiplier is running.
func (m *Multiplier) Active() bool { return m.active }

// Factor returns the current score factor, 1 when inactive.
func (m *Multiplier) Factor() int {
	if m.factor < 1 {
		return 1
	}
	return m.factor
}

// Remaining returns the time left before expiry, 0 when inactive.
func (m *Multiplier) Remaining(now time.Duration) time.Duration {
	if !m.active || now >= m.expiresAt {
		return 0
	}
	return m.expiresAt - now
}

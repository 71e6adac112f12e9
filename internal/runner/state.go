package runner

import (
	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/core"
	"github.com/vovakirdan/foxrun/internal/profile"
)

// ScoreDelta reports what a scoring event changed.
type ScoreDelta struct {
	Score int // Points actually added after the multiplier
	Orbs  int // Currency granted for crossed reward thresholds
}

// RunState holds the per-run player state on top of the persistent profile.
type RunState struct {
	profile *profile.Profile
	scoring config.ScoringConfig

	score          int
	lane           int
	lastRewardStep int

	Shield     Shield
	Multiplier Multiplier
}

// NewRunState creates the run state for a profile.
func NewRunState(p *profile.Profile, cfg config.RunnerConfig) *RunState {
	s := &RunState{
		profile:    p,
		scoring:    cfg.Scoring,
		Shield:     NewShield(cfg.PowerUps.ShieldDuration),
		Multiplier: NewMultiplier(cfg.PowerUps.MultiplierDuration, cfg.PowerUps.MultiplierFactor),
	}
	s.ResetForRun()
	return s
}

// ResetForRun prepares a fresh run. Currency, unlocks and the high score are
// untouched.
func (s *RunState) ResetForRun() {
	s.score = 0
	s.lane = CenterLane
	s.lastRewardStep = 0
	s.Shield.Break()
	s.Multiplier.End()
}

// AddScore adds basePoints scaled by the multiplier. Every reward step
// crossed grants currency, which is persisted immediately. Non-positive
// points are ignored so the score never decreases.
func (s *RunState) AddScore(basePoints int) ScoreDelta {
	if basePoints <= 0 {
		return ScoreDelta{}
	}

	gained := basePoints * s.Multiplier.Factor()
	s.score += gained

	var orbs int
	step := s.score / s.scoring.RewardStep
	if step > s.lastRewardStep {
		orbs = (step - s.lastRewardStep) * s.scoring.RewardAmount
		s.lastRewardStep = step
		s.profile.AddOrbs(orbs)
	}

	return ScoreDelta{Score: gained, Orbs: orbs}
}

// Score returns the current run score.
func (s *RunState) Score() int { return s.score }

// Lane returns the player's lane index.
func (s *RunState) Lane() int { return s.lane }

// Orbs returns the persistent currency balance.
func (s *RunState) Orbs() int { return s.profile.Orbs() }

// Profile returns the persistent profile behind the run.
func (s *RunState) Profile() *profile.Profile { return s.profile }

// MoveLane shifts the player by delta lanes, clamped to the track. Returns
// true if the lane changed.
func (s *RunState) MoveLane(delta int) bool {
	next := core.Clamp(s.lane+delta, 0, LaneCount-1)
	if next == s.lane {
		return false
	}
	s.lane = next
	return true
}

// BuyTrail unlocks a trail if affordable and not yet owned.
func (s *RunState) BuyTrail(id string) bool {
	return s.profile.BuyTrail(id)
}

// EquipTrail equips an unlocked trail.
func (s *RunState) EquipTrail(id string) bool {
	return s.profile.EquipTrail(id)
}

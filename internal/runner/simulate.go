package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/profile"
)

// Pilot steers the player in headless runs. Decide returns a lane delta.
type Pilot interface {
	Decide(lane int, obstacles []Entity, playerZ float64) int
}

// StayPilot never moves.
type StayPilot struct{}

func (StayPilot) Decide(int, []Entity, float64) int { return 0 }

// DodgePilot sidesteps the nearest obstacle approaching in the player's lane
// once it is within Lookahead track units.
type DodgePilot struct {
	Lookahead float64
}

func (p DodgePilot) Decide(lane int, obstacles []Entity, playerZ float64) int {
	if !p.threatened(lane, obstacles, playerZ) {
		return 0
	}
	for _, d := range []int{-1, 1} {
		next := lane + d
		if next < 0 || next >= LaneCount {
			continue
		}
		if !p.threatened(next, obstacles, playerZ) {
			return d
		}
	}
	return 0
}

func (p DodgePilot) threatened(lane int, obstacles []Entity, playerZ float64) bool {
	for _, o := range obstacles {
		if o.Lane == lane && o.Z <= playerZ && playerZ-o.Z <= p.Lookahead {
			return true
		}
	}
	return false
}

// SimOptions configures a headless run.
type SimOptions struct {
	Config     config.RunnerConfig
	Seed       int64
	Ticks      int
	DeltaTicks float64 // Nominal frames per tick, 1 when zero
	Pilot      Pilot
	Profile    *profile.Profile // Fresh in-memory profile when nil
}

// SimResult summarizes a headless run.
type SimResult struct {
	Seed      int64
	Ticks     int
	Score     int
	Orbs      int
	Live      int
	Spawned   int
	Lane      int
	GameOver  bool
	Shield    bool
	Factor    int
	HighScore int
}

// Simulate runs a single seeded run without a front end. Power-up time is
// advanced by a manual clock in step with the ticks, so results are fully
// determined by the options.
func Simulate(opts SimOptions) SimResult {
	if opts.DeltaTicks <= 0 {
		opts.DeltaTicks = 1
	}
	if opts.Pilot == nil {
		opts.Pilot = StayPilot{}
	}
	quiet := log.New(io.Discard)
	if opts.Profile == nil {
		opts.Profile = profile.Load(profile.NewMemoryKV(), quiet)
	}

	clock := &ManualClock{}
	frame := time.Duration(opts.DeltaTicks * float64(time.Second) / 60)

	c := NewController(Options{
		Config:  opts.Config,
		Profile: opts.Profile,
		Clock:   clock,
		Seed:    opts.Seed,
		Logger:  quiet,
	})
	c.StartRun()

	ticks := 0
	for ticks < opts.Ticks && c.Screen() == ScreenPlaying {
		obstacles, _ := c.Entities()
		if d := opts.Pilot.Decide(c.state.Lane(), obstacles, opts.Config.Track.PlayerZ); d != 0 {
			c.MoveLane(d)
		}
		clock.Advance(frame)
		c.Tick(opts.DeltaTicks)
		ticks++
	}

	s := c.Snapshot()
	return SimResult{
		Seed:      opts.Seed,
		Ticks:     ticks,
		Score:     s.Score,
		Orbs:      s.Orbs,
		Live:      s.Obstacles + s.PowerUps,
		Spawned:   s.Spawned,
		Lane:      s.Lane,
		GameOver:  s.Screen == ScreenGameOver,
		Shield:    s.ShieldActive,
		Factor:    s.MultiplierFactor,
		HighScore: s.HighScore,
	}
}

// String formats the result as a single trace line.
func (r SimResult) String() string {
	return fmt.Sprintf("seed=%d ticks=%d score=%d orbs=%d live=%d spawned=%d lane=%d game_over=%t shield=%t factor=%d high=%d",
		r.Seed, r.Ticks, r.Score, r.Orbs, r.Live, r.Spawned, r.Lane, r.GameOver, r.Shield, r.Factor, r.HighScore)
}

package runner

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/core"
	"github.com/vovakirdan/foxrun/internal/profile"
)

// LeaderboardSize is how many entries the leaderboard screen requests.
const LeaderboardSize = 100

// Options configures a Controller. Only Profile is required.
type Options struct {
	Config  config.RunnerConfig
	Profile *profile.Profile
	UI      UISink
	Render  RenderSink
	Cloud   CloudSink
	Clock   Clock
	Seed    int64
	Logger  *log.Logger
}

// Controller owns one player's session: the screen state machine and, while
// playing, the per-tick orchestration of spawning, scoring and collisions.
// It is not safe for concurrent use; front ends call it from their update loop.
type Controller struct {
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	resolver   *Resolver
	state      *RunState

	ui     UISink
	render RenderSink
	cloud  CloudSink
	clock  Clock
	logger *log.Logger

	screen    ScreenID
	seed      int64
	runs      int
	ticks     int
	submitted bool
}

// NewController wires a controller from options. Missing collaborators are
// replaced with no-op implementations.
func NewController(opts Options) *Controller {
	c := &Controller{
		cfg:    opts.Config,
		ui:     opts.UI,
		render: opts.Render,
		cloud:  opts.Cloud,
		clock:  opts.Clock,
		logger: opts.Logger,
		seed:   opts.Seed,
		screen: ScreenMenu,
	}
	if c.ui == nil {
		c.ui = NopUI{}
	}
	if c.render == nil {
		c.render = NopRender{}
	}
	if c.cloud == nil {
		c.cloud = nopCloud{}
	}
	if c.clock == nil {
		c.clock = NewMonotonicClock()
	}
	if c.logger == nil {
		c.logger = log.Default()
	}

	c.difficulty = config.NewDifficultyManager(c.cfg.Difficulty)
	c.state = NewRunState(opts.Profile, c.cfg)
	c.spawner = NewSpawner(c.seed, &c.cfg, c.difficulty, c.render)
	c.resolver = NewResolver(c.cfg.Collision, powerupSink{c})
	return c
}

// Boot pushes the initial HUD values and asks the cloud for the player's
// remote high score.
func (c *Controller) Boot() {
	p := c.state.Profile()
	c.render.SetTrailStyle(p.Equipped())
	c.ui.UpdateScore(0)
	c.ui.UpdateCurrency(p.Orbs())
	c.ui.TransitionScreen(c.screen)
	c.cloud.LoadHighScore(p.PlayerID())
}

// Screen returns the active screen.
func (c *Controller) Screen() ScreenID {
	return c.screen
}

func (c *Controller) transition(s ScreenID) {
	c.screen = s
	c.ui.TransitionScreen(s)
}

// StartRun begins a new run from any screen. Each run reseeds the spawner
// from the base seed and the run count, so a session is reproducible.
func (c *Controller) StartRun() {
	c.runs++
	c.ticks = 0
	c.submitted = false
	c.state.ResetForRun()
	c.spawner.Reset(c.seed + int64(c.runs-1))

	c.ui.UpdateScore(0)
	c.ui.UpdateCurrency(c.state.Orbs())
	c.transition(ScreenPlaying)
	c.logger.Debug("run started", "run", c.runs, "seed", c.seed+int64(c.runs-1))
}

// Tick advances a run by deltaTicks nominal frames. It is a no-op unless a
// run is in progress.
func (c *Controller) Tick(deltaTicks float64) {
	if c.screen != ScreenPlaying || deltaTicks <= 0 {
		return
	}
	c.ticks++

	now := c.clock.Now()
	c.state.Shield.CheckExpiry(now)
	c.state.Multiplier.CheckExpiry(now)

	c.spawner.Tick(deltaTicks, c.state.Score(), c.cfg.Track.PlayerZ, c.onObstaclePassed)

	out := c.resolver.Resolve(c.playerPos(), c.spawner.Obstacles(), c.spawner.PowerUps())
	for _, id := range out.Removed {
		c.spawner.Remove(id)
	}
	if out.Fatal {
		c.gameOver()
	}
}

func (c *Controller) onObstaclePassed(points int) {
	d := c.state.AddScore(points)
	if d.Score != 0 {
		c.ui.UpdateScore(c.state.Score())
	}
	if d.Orbs != 0 {
		c.ui.UpdateCurrency(c.state.Orbs())
	}
}

func (c *Controller) playerPos() core.Point {
	return core.Point{
		X: LaneX(c.state.Lane(), c.cfg.Track.LaneSpacing),
		Z: c.cfg.Track.PlayerZ,
	}
}

func (c *Controller) gameOver() {
	score := c.state.Score()
	p := c.state.Profile()

	c.transition(ScreenGameOver)
	c.ui.ShowFinalScore(score)

	if p.RecordHighScore(score) {
		c.cloud.SaveHighScore(p.PlayerID(), score)
	}
	c.logger.Info("run over", "score", score, "ticks", c.ticks, "orbs", p.Orbs())
}

// MoveLane shifts the player by dir lanes while playing.
func (c *Controller) MoveLane(dir int) bool {
	if c.screen != ScreenPlaying {
		return false
	}
	return c.state.MoveLane(dir)
}

// OpenLeaderboard shows the leaderboard and requests fresh entries.
func (c *Controller) OpenLeaderboard() {
	if c.screen == ScreenPlaying {
		return
	}
	c.transition(ScreenLeaderboard)
	c.cloud.FetchLeaderboard(LeaderboardSize)
}

// OpenTrailShop shows the trail shop.
func (c *Controller) OpenTrailShop() {
	if c.screen == ScreenPlaying {
		return
	}
	c.transition(ScreenTrailShop)
}

// BackToMenu returns to the main menu from any screen, abandoning a run in
// progress without recording it.
func (c *Controller) BackToMenu() {
	if c.screen == ScreenPlaying {
		c.spawner.Reset(c.seed)
		c.state.ResetForRun()
	}
	c.transition(ScreenMenu)
}

// SubmitScore sends the finished run to the leaderboard under the given
// initials. Only one submission per run is accepted, and only from the game
// over screen.
func (c *Controller) SubmitScore(initials string) bool {
	if c.screen != ScreenGameOver || c.submitted {
		return false
	}
	c.submitted = true
	c.cloud.SubmitEntry(c.state.Profile().PlayerID(), initials, c.state.Score())
	c.OpenLeaderboard()
	return true
}

// BuyTrail unlocks a trail from the shop.
func (c *Controller) BuyTrail(id string) bool {
	if !c.state.BuyTrail(id) {
		return false
	}
	c.ui.UpdateCurrency(c.state.Orbs())
	return true
}

// EquipTrail equips an owned trail and restyles the player's trail.
func (c *Controller) EquipTrail(id string) bool {
	if !c.state.EquipTrail(id) {
		return false
	}
	c.render.SetTrailStyle(id)
	return true
}

// ApplyRemoteHighScore merges a high score loaded from the cloud. The larger
// value wins and is persisted locally.
func (c *Controller) ApplyRemoteHighScore(score int) bool {
	return c.state.Profile().RecordHighScore(score)
}

// Snapshot is a read-only view of the session for HUDs and tests.
type Snapshot struct {
	Screen              ScreenID
	Score               int
	HighScore           int
	Orbs                int
	Lane                int
	Trail               string
	ShieldActive        bool
	ShieldRemaining     time.Duration
	MultiplierActive    bool
	MultiplierFactor    int
	MultiplierRemaining time.Duration
	Obstacles           int
	PowerUps            int
	Spawned             int
	Speed               float64
	Ticks               int
	Run                 int
}

// Snapshot returns the current session view.
func (c *Controller) Snapshot() Snapshot {
	now := c.clock.Now()
	p := c.state.Profile()
	return Snapshot{
		Screen:              c.screen,
		Score:               c.state.Score(),
		HighScore:           p.HighScore(),
		Orbs:                p.Orbs(),
		Lane:                c.state.Lane(),
		Trail:               p.Equipped(),
		ShieldActive:        c.state.Shield.Active(),
		ShieldRemaining:     c.state.Shield.Remaining(now),
		MultiplierActive:    c.state.Multiplier.Active(),
		MultiplierFactor:    c.state.Multiplier.Factor(),
		MultiplierRemaining: c.state.Multiplier.Remaining(now),
		Obstacles:           len(c.spawner.Obstacles()),
		PowerUps:            len(c.spawner.PowerUps()),
		Spawned:             c.spawner.Spawned(),
		Speed:               c.difficulty.Speed(c.state.Score()),
		Ticks:               c.ticks,
		Run:                 c.runs,
	}
}

// Entities returns copies of the live obstacles and power-ups.
func (c *Controller) Entities() (obstacles, powerups []Entity) {
	obstacles = append([]Entity(nil), c.spawner.Obstacles()...)
	powerups = append([]Entity(nil), c.spawner.PowerUps()...)
	return obstacles, powerups
}

// Profile returns the session's persistent profile.
func (c *Controller) Profile() *profile.Profile {
	return c.state.Profile()
}

// powerupSink routes collision effects into the run state using the
// controller's clock.
type powerupSink struct {
	c *Controller
}

func (s powerupSink) OnShieldHit() bool {
	return s.c.state.Shield.Break()
}

func (s powerupSink) OnPowerupCollected(kind Kind) {
	now := s.c.clock.Now()
	switch kind {
	case KindShield:
		s.c.state.Shield.Activate(now)
	case KindMultiplier:
		s.c.state.Multiplier.Activate(now)
	}
	s.c.logger.Debug("power-up collected", "kind", kind)
}

package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/profile"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestProfile() *profile.Profile {
	return profile.Load(profile.NewMemoryKV(), quietLogger())
}

// obstaclesOnly returns the default config with power-up spawns disabled.
func obstaclesOnly() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ShieldChance = 0
	cfg.Spawn.MultiplierChance = 0
	return cfg
}

type visual struct {
	kind Kind
	lane int
	z    float64
}

type recordingRender struct {
	next    VisualHandle
	live    map[VisualHandle]visual
	removed int
	kinds   map[Kind]int
	trail   string
}

func newRecordingRender() *recordingRender {
	return &recordingRender{live: make(map[VisualHandle]visual), kinds: make(map[Kind]int)}
}

func (r *recordingRender) SpawnVisual(kind Kind, lane int, z float64) VisualHandle {
	r.next++
	r.kinds[kind]++
	r.live[r.next] = visual{kind: kind, lane: lane, z: z}
	return r.next
}

func (r *recordingRender) MoveVisual(h VisualHandle, z float64) {
	if v, ok := r.live[h]; ok {
		v.z = z
		r.live[h] = v
	}
}

func (r *recordingRender) RemoveVisual(h VisualHandle) {
	if _, ok := r.live[h]; ok {
		delete(r.live, h)
		r.removed++
	}
}

func (r *recordingRender) SetTrailStyle(id string) { r.trail = id }

type recordingUI struct {
	scores      []int
	currency    []int
	screens     []ScreenID
	finalScores []int
}

func (u *recordingUI) UpdateScore(score int)       { u.scores = append(u.scores, score) }
func (u *recordingUI) UpdateCurrency(orbs int)     { u.currency = append(u.currency, orbs) }
func (u *recordingUI) TransitionScreen(s ScreenID) { u.screens = append(u.screens, s) }
func (u *recordingUI) ShowFinalScore(score int)    { u.finalScores = append(u.finalScores, score) }

type submission struct {
	playerID string
	initials string
	score    int
}

type recordingCloud struct {
	loads       []string
	saves       map[string]int
	submissions []submission
	fetches     int
}

func newRecordingCloud() *recordingCloud {
	return &recordingCloud{saves: make(map[string]int)}
}

func (c *recordingCloud) LoadHighScore(playerID string) { c.loads = append(c.loads, playerID) }
func (c *recordingCloud) SaveHighScore(playerID string, score int) {
	c.saves[playerID] = score
}
func (c *recordingCloud) SubmitEntry(playerID, initials string, score int) {
	c.submissions = append(c.submissions, submission{playerID, initials, score})
}
func (c *recordingCloud) FetchLeaderboard(int) { c.fetches++ }

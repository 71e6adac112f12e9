package runner

// ScreenID names a front-end screen.
type ScreenID int

const (
	ScreenMenu ScreenID = iota
	ScreenPlaying
	ScreenGameOver
	ScreenLeaderboard
	ScreenTrailShop
)

// String returns the screen name.
func (s ScreenID) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game_over"
	case ScreenLeaderboard:
		return "leaderboard"
	case ScreenTrailShop:
		return "trail_shop"
	default:
		return "unknown"
	}
}

// VisualHandle refers to a visual object owned by a RenderSink.
type VisualHandle int

// RenderSink receives semantic scene updates. The simulation owns no
// rendering resources.
type RenderSink interface {
	SpawnVisual(kind Kind, lane int, z float64) VisualHandle
	MoveVisual(h VisualHandle, z float64)
	RemoveVisual(h VisualHandle)
	SetTrailStyle(id string)
}

// UISink receives HUD updates and screen transitions.
type UISink interface {
	UpdateScore(score int)
	UpdateCurrency(orbs int)
	TransitionScreen(screen ScreenID)
	ShowFinalScore(score int)
}

// CloudSink dispatches best-effort remote calls. Implementations must not
// block; results, if any, come back through the front end.
type CloudSink interface {
	LoadHighScore(playerID string)
	SaveHighScore(playerID string, score int)
	SubmitEntry(playerID, initials string, score int)
	FetchLeaderboard(limit int)
}

// NopRender discards scene updates.
type NopRender struct{}

func (NopRender) SpawnVisual(Kind, int, float64) VisualHandle { return 0 }
func (NopRender) MoveVisual(VisualHandle, float64)            {}
func (NopRender) RemoveVisual(VisualHandle)                   {}
func (NopRender) SetTrailStyle(string)                        {}

// NopUI discards HUD updates.
type NopUI struct{}

func (NopUI) UpdateScore(int)           {}
func (NopUI) UpdateCurrency(int)        {}
func (NopUI) TransitionScreen(ScreenID) {}
func (NopUI) ShowFinalScore(int)        {}

// nopCloud is used when no cloud is configured.
type nopCloud struct{}

func (nopCloud) LoadHighScore(string)            {}
func (nopCloud) SaveHighScore(string, int)       {}
func (nopCloud) SubmitEntry(string, string, int) {}
func (nopCloud) FetchLeaderboard(int)            {}

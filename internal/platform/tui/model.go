package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/foxrun/internal/cloud"
	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/core"
	"github.com/vovakirdan/foxrun/internal/profile"
	"github.com/vovakirdan/foxrun/internal/runner"
	"github.com/vovakirdan/foxrun/internal/storage"
)

// HUD collects the values the controller pushes to the UI.
// It implements runner.UISink.
type HUD struct {
	Score  int
	Orbs   int
	Final  int
	Screen runner.ScreenID
}

func (h *HUD) UpdateScore(score int)              { h.Score = score }
func (h *HUD) UpdateCurrency(orbs int)            { h.Orbs = orbs }
func (h *HUD) TransitionScreen(s runner.ScreenID) { h.Screen = s }
func (h *HUD) ShowFinalScore(score int)           { h.Final = score }

// Options configures a Model.
type Options struct {
	Config  config.RunnerConfig
	Profile *profile.Profile

	// Store keeps the local run history. Optional.
	Store *storage.Store

	// Cloud carries high score and leaderboard calls. Optional; without it
	// the leaderboard reports itself unavailable.
	Cloud *cloud.Dispatcher

	// Renderer styles output for the target terminal. Nil means stdout.
	Renderer *lipgloss.Renderer

	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

type cloudResultMsg cloud.Result

// Model is the Bubble Tea model for one player's session.
type Model struct {
	ctrl    *runner.Controller
	hud     *HUD
	scene   *Scene
	palette *Palette
	screen  *core.Screen
	cloud   *cloud.Dispatcher
	store   *storage.Store
	logger  *log.Logger

	menu  MenuModel
	board LeaderboardModel
	shop  ShopModel
	help  help.Model
	keys  KeyMap

	input     core.InputFrame
	interval  time.Duration
	lastFrame time.Time
	shown     runner.ScreenID
	width     int
	height    int

	entering bool
	initials []rune
	runOrbs  int // orbs when the current run started
	quitting bool
}

// NewModel creates the session model and boots its controller.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	def := core.DefaultConfig()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	palette := NewPalette(opts.Renderer)
	r := palette.Renderer()
	scene := NewScene(opts.Config.Track, palette)
	hud := &HUD{}

	ro := runner.Options{
		Config:  opts.Config,
		Profile: opts.Profile,
		UI:      hud,
		Render:  scene,
		Seed:    rt.Seed,
		Logger:  opts.Logger,
	}
	// A nil *Dispatcher must not end up in the interface
	if opts.Cloud != nil {
		ro.Cloud = opts.Cloud
	}
	ctrl := runner.NewController(ro)
	ctrl.Boot()

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		ctrl:     ctrl,
		hud:      hud,
		scene:    scene,
		palette:  palette,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-2, 1)),
		cloud:    opts.Cloud,
		store:    opts.Store,
		logger:   opts.Logger,
		menu:     NewMenuModel(r, rt.ScreenW, rt.ScreenH),
		board:    NewLeaderboardModel(r, opts.Profile.PlayerID(), rt.ScreenW, rt.ScreenH),
		shop:     NewShopModel(r, opts.Profile, rt.ScreenW, rt.ScreenH),
		help:     h,
		keys:     DefaultKeyMap(),
		input:    core.NewInputFrame(),
		interval: rt.FrameInterval(),
		shown:    ctrl.Screen(),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
}

// Controller returns the session's run controller.
func (m Model) Controller() *runner.Controller {
	return m.ctrl
}

// Init starts the frame loop and the cloud listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.interval), m.waitForCloud())
}

// waitForCloud returns a command that delivers the next cloud result.
func (m Model) waitForCloud() tea.Cmd {
	if m.cloud == nil {
		return nil
	}
	d := m.cloud
	return func() tea.Msg {
		select {
		case r := <-d.Results():
			return cloudResultMsg(r)
		case <-d.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case cloudResultMsg:
		m.handleCloud(cloud.Result(msg))
		return m, m.waitForCloud()
	}

	return m, nil
}

// handleFrame advances the run by the time elapsed since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.ctrl.Screen() != runner.ScreenPlaying {
		m.lastFrame = time.Time{}
		return m, frameCmd(m.interval)
	}

	// Lane changes land before the step that may collide
	for _, a := range m.input.Actions {
		switch a {
		case core.ActionLeft:
			m.ctrl.MoveLane(-1)
		case core.ActionRight:
			m.ctrl.MoveLane(1)
		}
	}
	m.input.Clear()

	m.ctrl.Tick(deltaTicks(m.lastFrame, now))
	m.lastFrame = now
	m.sync()

	return m, frameCmd(m.interval)
}

// handleKey processes keyboard input for the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.entering {
		m.handleInitials(msg)
		m.sync()
		return m, nil
	}

	a := m.keys.MapKey(msg)
	if a == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.ctrl.Screen() {
	case runner.ScreenMenu:
		switch a {
		case core.ActionLeaderboard:
			m.ctrl.OpenLeaderboard()
		case core.ActionShop:
			m.ctrl.OpenTrailShop()
		default:
			var choice MenuChoice
			m.menu, choice = m.menu.Handle(a)
			switch choice {
			case ChoicePlay:
				m.ctrl.StartRun()
			case ChoiceLeaderboard:
				m.ctrl.OpenLeaderboard()
			case ChoiceShop:
				m.ctrl.OpenTrailShop()
			case ChoiceQuit:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case runner.ScreenPlaying:
		switch a {
		case core.ActionLeft, core.ActionRight:
			m.input.Push(a)
		case core.ActionBack:
			m.ctrl.BackToMenu()
		}

	case runner.ScreenGameOver:
		switch a {
		case core.ActionConfirm:
			m.entering = true
			m.initials = m.initials[:0]
		case core.ActionRestart:
			m.ctrl.StartRun()
		case core.ActionLeaderboard:
			m.ctrl.OpenLeaderboard()
		case core.ActionBack:
			m.ctrl.BackToMenu()
		}

	case runner.ScreenLeaderboard:
		switch a {
		case core.ActionUp:
			m.board, cmd = m.board.Update(tea.KeyMsg{Type: tea.KeyUp})
		case core.ActionDown:
			m.board, cmd = m.board.Update(tea.KeyMsg{Type: tea.KeyDown})
		case core.ActionRestart:
			m.ctrl.StartRun()
		case core.ActionBack:
			m.ctrl.BackToMenu()
		}

	case runner.ScreenTrailShop:
		switch a {
		case core.ActionUp:
			m.shop, cmd = m.shop.Update(tea.KeyMsg{Type: tea.KeyUp})
		case core.ActionDown:
			m.shop, cmd = m.shop.Update(tea.KeyMsg{Type: tea.KeyDown})
		case core.ActionConfirm:
			m.shopSelect()
		case core.ActionBack:
			m.ctrl.BackToMenu()
		}
	}

	m.sync()
	return m, cmd
}

// handleInitials edits the initials prompt on the game over screen.
func (m *Model) handleInitials(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.entering = false
		m.ctrl.SubmitScore(cloud.SanitizeInitials(string(m.initials)))
	case tea.KeyEsc:
		m.entering = false
		m.initials = m.initials[:0]
	case tea.KeyBackspace:
		if len(m.initials) > 0 {
			m.initials = m.initials[:len(m.initials)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if len(m.initials) >= cloud.MaxInitials {
				break
			}
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				m.initials = append(m.initials, unicode.ToUpper(r))
			}
		}
	}
}

// shopSelect equips an owned trail or buys and equips a locked one.
func (m *Model) shopSelect() {
	t := m.shop.Selected()
	p := m.ctrl.Profile()

	switch {
	case p.Equipped() == t.ID:
		m.shop.SetNotice(fmt.Sprintf("%s is already equipped", t.Name))
	case p.IsUnlocked(t.ID):
		m.ctrl.EquipTrail(t.ID)
		m.shop.SetNotice(fmt.Sprintf("Equipped %s", t.Name))
	case m.ctrl.BuyTrail(t.ID):
		m.ctrl.EquipTrail(t.ID)
		m.shop.SetNotice(fmt.Sprintf("Unlocked %s", t.Name))
	default:
		need := t.Price - p.Orbs()
		m.shop.SetNotice(fmt.Sprintf("Need %s more orbs", humanize.Comma(int64(need))))
	}
	m.shop.Refresh(p)
}

// sync reacts to screen changes made by the controller.
func (m *Model) sync() {
	s := m.ctrl.Screen()
	if s == m.shown {
		return
	}
	m.shown = s

	switch s {
	case runner.ScreenPlaying:
		m.runOrbs = m.ctrl.Profile().Orbs()
		m.lastFrame = time.Time{}
		m.input.Clear()
	case runner.ScreenGameOver:
		m.entering = false
		m.initials = m.initials[:0]
		m.saveRun()
	case runner.ScreenLeaderboard:
		if m.cloud == nil {
			m.board.SetEntries(nil, cloud.ErrUnavailable)
		} else {
			m.board.SetLoading()
		}
	case runner.ScreenTrailShop:
		m.shop.SetNotice("")
		m.shop.Refresh(m.ctrl.Profile())
	}
}

// saveRun records the finished run in the local history.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	snap := m.ctrl.Snapshot()
	_, err := m.store.SaveRun(storage.RunRecord{
		PlayerID:   m.ctrl.Profile().PlayerID(),
		Score:      snap.Score,
		OrbsEarned: snap.Orbs - m.runOrbs,
		Ticks:      snap.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// handleCloud applies a completed cloud call.
func (m *Model) handleCloud(r cloud.Result) {
	switch r.Op {
	case cloud.OpLoadHighScore:
		if r.Err == nil && m.ctrl.ApplyRemoteHighScore(r.HighScore) {
			m.logger.Info("remote high score applied", "score", r.HighScore)
		}
	case cloud.OpLeaderboard:
		m.board.SetEntries(r.Entries, r.Err)
	}
}

// resize adapts every screen to the terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.screen.Resize(width, max(height-2, 1))
	m.menu.Resize(width, height)
	m.board.Resize(width, height)
	m.shop.Resize(width, height, m.ctrl.Profile())
	m.help.Width = width
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.ctrl.Profile()
	var body string
	switch m.ctrl.Screen() {
	case runner.ScreenMenu:
		body = m.menu.View(p.HighScore(), p.Orbs())
	case runner.ScreenPlaying:
		snap := m.ctrl.Snapshot()
		body = m.hudLine(snap) + "\n" + m.renderTrack(snap)
	case runner.ScreenGameOver:
		body = m.gameOverView(p.HighScore())
	case runner.ScreenLeaderboard:
		body = m.board.View()
	case runner.ScreenTrailShop:
		body = m.shop.View(p.Orbs())
	}

	return body + "\n" + m.help.View(m.helpKeys())
}

func (m Model) renderTrack(snap runner.Snapshot) string {
	m.screen.Clear()
	m.scene.Draw(m.screen, snap)
	return m.palette.RenderScreen(m.screen)
}

// hudLine renders score, orbs and active power-ups.
func (m Model) hudLine(snap runner.Snapshot) string {
	r := m.palette.Renderer()
	parts := []string{
		"Score " + humanize.Comma(int64(m.hud.Score)),
		"Best " + humanize.Comma(int64(snap.HighScore)),
		"Orbs " + humanize.Comma(int64(m.hud.Orbs)),
	}
	if snap.ShieldActive {
		s := r.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
		parts = append(parts, s.Render(fmt.Sprintf("SHIELD %ds", int(snap.ShieldRemaining.Seconds()+0.5))))
	}
	if snap.MultiplierActive {
		s := r.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
		parts = append(parts, s.Render(fmt.Sprintf("x%d %ds", snap.MultiplierFactor, int(snap.MultiplierRemaining.Seconds()+0.5))))
	}
	return " " + strings.Join(parts, "   ")
}

func (m Model) gameOverView(best int) string {
	r := m.palette.Renderer()
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")).Render("GAME OVER")

	lines := []string{title, "", "Score " + humanize.Comma(int64(m.hud.Final))}
	if m.hud.Final > 0 && m.hud.Final >= best {
		lines = append(lines, r.NewStyle().Foreground(lipgloss.Color("#fbbf24")).Render("New best!"))
	} else {
		lines = append(lines, "Best "+humanize.Comma(int64(best)))
	}
	lines = append(lines, "")
	if m.entering {
		lines = append(lines, fmt.Sprintf("Initials: %s_", string(m.initials)))
	} else {
		lines = append(lines, "Press enter to post your score")
	}

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, box)
}

// screenHelp adapts a binding list to help.KeyMap.
type screenHelp []key.Binding

func (s screenHelp) ShortHelp() []key.Binding  { return s }
func (s screenHelp) FullHelp() [][]key.Binding { return [][]key.Binding{s} }

var (
	submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	cancelKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	buyKey    = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "buy/equip"))
)

func (m Model) helpKeys() help.KeyMap {
	k := m.keys
	switch m.ctrl.Screen() {
	case runner.ScreenPlaying:
		return screenHelp{k.Left, k.Right, k.Back, k.Quit}
	case runner.ScreenGameOver:
		if m.entering {
			return screenHelp{submitKey, cancelKey}
		}
		return screenHelp{submitKey, k.Restart, k.Leaderboard, k.Back, k.Quit}
	case runner.ScreenLeaderboard:
		return screenHelp{k.Up, k.Down, k.Restart, k.Back, k.Quit}
	case runner.ScreenTrailShop:
		return screenHelp{k.Up, k.Down, buyKey, k.Back, k.Quit}
	default:
		return screenHelp{k.Up, k.Down, k.Confirm, k.Leaderboard, k.Shop, k.Quit}
	}
}

// Run starts a local session on the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

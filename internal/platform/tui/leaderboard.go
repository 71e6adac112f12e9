package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/foxrun/internal/cloud"
)

// Medal returns the rank marker: 🔥 🥈 🥉 for the podium, the number otherwise.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🔥"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// rankColors returns the initials and score colours for a rank.
func rankColors(rank int) (name, score lipgloss.Color) {
	switch rank {
	case 1:
		return "#fbbf24", "#fde68a"
	case 2:
		return "#d1d5db", "#e5e7eb"
	case 3:
		return "#cd7f32", "#f2c899"
	default:
		return "#93c5fd", "#bfdbfe"
	}
}

type boardState int

const (
	boardLoading boardState = iota
	boardReady
	boardFailed
)

// LeaderboardModel shows the ranked cloud leaderboard.
type LeaderboardModel struct {
	entries  []cloud.Entry
	state    boardState
	playerID string
	table    table.Model
	renderer *lipgloss.Renderer
	width    int
	height   int
}

// NewLeaderboardModel creates an empty leaderboard. Entries of playerID
// are marked.
func NewLeaderboardModel(r *lipgloss.Renderer, playerID string, width, height int) LeaderboardModel {
	m := LeaderboardModel{
		playerID: playerID,
		renderer: r,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 8},
		{Title: "Score", Width: 12},
		{Title: "When", Width: 16},
	}

	// Drop the date column on narrow terminals
	if m.width > 0 && m.width < 50 {
		columns = columns[:3]
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)), // Leave room for title, podium and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetLoading marks the board as waiting for fresh entries.
func (m *LeaderboardModel) SetLoading() {
	m.state = boardLoading
}

// SetEntries replaces the shown entries. A non-nil err marks the board
// unavailable and keeps the previous rows.
func (m *LeaderboardModel) SetEntries(entries []cloud.Entry, err error) {
	if err != nil {
		m.state = boardFailed
		return
	}
	m.state = boardReady
	m.entries = entries
	m.updateTableRows()
}

// Entries returns the shown entries.
func (m LeaderboardModel) Entries() []cloud.Entry {
	return m.entries
}

// updateTableRows updates the table with current entries.
func (m *LeaderboardModel) updateTableRows() {
	wide := len(m.table.Columns()) > 3
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		name := e.Initials
		if m.playerID != "" && e.PlayerID == m.playerID {
			name += " *"
		}
		row := table.Row{Medal(i + 1), name, humanize.Comma(int64(e.Score))}
		if wide {
			when := ""
			if !e.CreatedAt.IsZero() {
				when = humanize.Time(e.CreatedAt)
			}
			row = append(row, when)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (m *LeaderboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
}

// Update scrolls the table.
func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.width))
	b.WriteString("\n\n")

	if podium := m.podium(); podium != "" {
		b.WriteString(centerText(podium, m.width))
		b.WriteString("\n\n")
	}

	boxStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// podium renders the top three entries in their rank colours.
func (m LeaderboardModel) podium() string {
	if m.state != boardReady || len(m.entries) == 0 {
		return ""
	}
	parts := make([]string, 0, 3)
	for i, e := range m.entries {
		if i == 3 {
			break
		}
		nameColor, scoreColor := rankColors(i + 1)
		name := m.renderer.NewStyle().Bold(true).Foreground(nameColor).Render(e.Initials)
		score := m.renderer.NewStyle().Foreground(scoreColor).Render(humanize.Comma(int64(e.Score)))
		parts = append(parts, fmt.Sprintf("%s %s %s", Medal(i+1), name, score))
	}
	return strings.Join(parts, "   ")
}

// renderTableContent renders the table or a status message.
func (m LeaderboardModel) renderTableContent() string {
	msgStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.state == boardLoading && len(m.entries) == 0:
		return msgStyle.Render("Loading...")
	case m.state == boardFailed && len(m.entries) == 0:
		return msgStyle.Render("Leaderboard unavailable.")
	case len(m.entries) == 0:
		return msgStyle.Render("Be the first to set a score!")
	}
	return m.table.View()
}

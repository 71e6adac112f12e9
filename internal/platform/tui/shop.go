package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/foxrun/internal/profile"
)

// ShopModel lists the trail catalog with ownership state.
type ShopModel struct {
	trails   []profile.Trail
	table    table.Model
	renderer *lipgloss.Renderer
	notice   string
	width    int
	height   int
}

// NewShopModel creates the trail shop for p.
func NewShopModel(r *lipgloss.Renderer, p *profile.Profile, width, height int) ShopModel {
	m := ShopModel{
		trails:   profile.Catalog(),
		renderer: r,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.Refresh(p)
	return m
}

func (m *ShopModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Trail", Width: 20},
			{Title: "Price", Width: 8},
			{Title: "", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
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

// Refresh rebuilds the rows from the profile, keeping the cursor.
func (m *ShopModel) Refresh(p *profile.Profile) {
	cursor := m.table.Cursor()
	rows := make([]table.Row, len(m.trails))
	for i, t := range m.trails {
		status := ""
		switch {
		case p.Equipped() == t.ID:
			status = "equipped"
		case p.IsUnlocked(t.ID):
			status = "owned"
		case !p.CanBuyTrail(t.ID):
			status = "locked"
		}
		price := humanize.Comma(int64(t.Price))
		if t.Price == 0 {
			price = "free"
		}
		rows[i] = table.Row{t.Name, price, status}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
}

// Resize adapts the table to a new terminal size.
func (m *ShopModel) Resize(width, height int, p *profile.Profile) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.Refresh(p)
}

// Selected returns the trail under the cursor.
func (m ShopModel) Selected() profile.Trail {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.trails) {
		return m.trails[0]
	}
	return m.trails[i]
}

// SetNotice shows a one-line message under the table.
func (m *ShopModel) SetNotice(s string) {
	m.notice = s
}

// Update moves the cursor.
func (m ShopModel) Update(msg tea.Msg) (ShopModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the shop with the selected trail's colours.
func (m ShopModel) View(orbs int) string {
	var b strings.Builder

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("TRAIL SHOP"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Orbs: %s", humanize.Comma(int64(orbs))), m.width))
	b.WriteString("\n\n")

	boxStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.table.View()), m.width))
	b.WriteString("\n")

	t := m.Selected()
	primary := m.renderer.NewStyle().Foreground(lipgloss.Color(t.Primary)).Render(strings.Repeat("█", 6))
	secondary := m.renderer.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Render(strings.Repeat("▓", 6))
	b.WriteString(centerText(primary+secondary, m.width))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/foxrun/internal/core"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceLeaderboard
	ChoiceShop
	ChoiceQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceLeaderboard:
		return "Leaderboard"
	case ChoiceShop:
		return "Trail Shop"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuModel is the main menu.
type MenuModel struct {
	items    []MenuChoice
	cursor   int
	renderer *lipgloss.Renderer
	width    int
	height   int
}

// NewMenuModel creates the main menu.
func NewMenuModel(r *lipgloss.Renderer, width, height int) MenuModel {
	return MenuModel{
		items:    []MenuChoice{ChoicePlay, ChoiceLeaderboard, ChoiceShop, ChoiceQuit},
		renderer: r,
		width:    width,
		height:   height,
	}
}

// Resize updates the layout size.
func (m *MenuModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the highlighted choice.
func (m MenuModel) Cursor() MenuChoice {
	return m.items[m.cursor]
}

// Handle applies a navigation action. It returns the chosen entry when the
// action confirms a selection, ChoiceNone otherwise.
func (m MenuModel) Handle(a core.Action) (MenuModel, MenuChoice) {
	switch a {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		return m, m.items[m.cursor]
	}
	return m, ChoiceNone
}

// View renders the menu with the player's best score and orbs.
func (m MenuModel) View(best, orbs int) string {
	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208"))
	dim := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	selected := m.renderer.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F O X R U N"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dim.Render("three lanes, no brakes"), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Best %s   Orbs %s", humanize.Comma(int64(best)), humanize.Comma(int64(orbs)))
	b.WriteString(centerText(stats, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.String() + "  "
		if i == m.cursor {
			line = selected.Render("> " + item.String() + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	if strings.Contains(text, "\n") {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

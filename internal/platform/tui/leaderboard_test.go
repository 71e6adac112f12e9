package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/foxrun/internal/cloud"
	"github.com/vovakirdan/foxrun/internal/profile"
)

func TestMedal(t *testing.T) {
	tests := map[int]string{
		1:  "🔥",
		2:  "🥈",
		3:  "🥉",
		4:  "4",
		10: "10",
	}
	for rank, want := range tests {
		if got := Medal(rank); got != want {
			t.Errorf("Medal(%d) = %q, want %q", rank, got, want)
		}
	}
}

func TestLeaderboardStates(t *testing.T) {
	m := NewLeaderboardModel(lipgloss.DefaultRenderer(), "me", 80, 30)

	m.SetLoading()
	if !strings.Contains(m.View(), "Loading") {
		t.Error("loading board should say so")
	}

	m.SetEntries(nil, nil)
	if !strings.Contains(m.View(), "Be the first to set a score!") {
		t.Error("empty board should invite a first score")
	}

	m.SetEntries(nil, cloud.ErrUnavailable)
	if !strings.Contains(m.View(), "Leaderboard unavailable") {
		t.Error("failed board should report unavailability")
	}
}

func TestLeaderboardRows(t *testing.T) {
	m := NewLeaderboardModel(lipgloss.DefaultRenderer(), "me", 80, 30)
	m.SetEntries([]cloud.Entry{
		{PlayerID: "me", Initials: "FOX", Score: 12345},
		{PlayerID: "other", Initials: "BOB", Score: 900},
	}, nil)

	view := m.View()
	for _, want := range []string{"FOX *", "12,345", "BOB", "🔥", "🥈"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// A failed refresh keeps the last good rows
	m.SetEntries(nil, cloud.ErrUnavailable)
	if len(m.Entries()) != 2 || !strings.Contains(m.View(), "BOB") {
		t.Error("failed refresh should keep previous entries")
	}
}

func TestShopModel(t *testing.T) {
	p := profile.Load(profile.NewMemoryKV(), quietLogger())
	m := NewShopModel(lipgloss.DefaultRenderer(), p, 80, 40)

	if got := m.Selected().ID; got != profile.DefaultTrailID {
		t.Errorf("initial selection = %q, want default", got)
	}

	view := m.View(p.Orbs())
	for _, want := range []string{"Default Ribbon", "equipped", "free", "Solar Flare", "locked"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Selected().ID; got != "pixel" {
		t.Errorf("selection after down = %q, want pixel", got)
	}

	// Refresh keeps the cursor
	p.AddOrbs(100)
	m.Refresh(p)
	if got := m.Selected().ID; got != "pixel" {
		t.Errorf("selection after refresh = %q, want pixel", got)
	}
}

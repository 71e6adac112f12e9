package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/core"
	"github.com/vovakirdan/foxrun/internal/runner"
)

func TestSceneMirrorsVisuals(t *testing.T) {
	s := NewScene(config.DefaultRunnerConfig().Track, nil)

	a := s.SpawnVisual(runner.KindObstacle, 0, -120)
	b := s.SpawnVisual(runner.KindShield, 2, -120)
	if a == b {
		t.Fatal("handles should be unique")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 sprites, got %d", s.Len())
	}

	s.MoveVisual(a, -50)
	s.RemoveVisual(a)
	s.RemoveVisual(a)
	if s.Len() != 1 {
		t.Errorf("expected 1 sprite after removal, got %d", s.Len())
	}

	// Moving a removed handle is ignored
	s.MoveVisual(a, 0)
	if s.Len() != 1 {
		t.Errorf("move after removal should not resurrect the sprite")
	}
}

func TestSceneTrailStyle(t *testing.T) {
	p := NewPalette(nil)
	s := NewScene(config.DefaultRunnerConfig().Track, p)
	if s.Trail() != "default" {
		t.Errorf("new scene trail = %q, want default", s.Trail())
	}
	s.SetTrailStyle("fire")
	if s.Trail() != "fire" {
		t.Errorf("trail = %q, want fire", s.Trail())
	}
}

func TestSceneDrawsPlayerInLane(t *testing.T) {
	s := NewScene(config.DefaultRunnerConfig().Track, nil)
	dst := core.NewScreen(80, 24)

	// Player row is h-4; lanes are 14 columns apart at full spread
	for lane := 0; lane < runner.LaneCount; lane++ {
		dst.Clear()
		s.Draw(dst, runner.Snapshot{Lane: lane})
		x := 40 + (lane-runner.CenterLane)*14
		if got := dst.Get(x, 20); got != FoxChar {
			t.Errorf("lane %d: expected fox at (%d, 20), got %q", lane, x, got)
		}
	}
}

func TestSceneDrawsSpritesByDepth(t *testing.T) {
	track := config.DefaultRunnerConfig().Track
	s := NewScene(track, nil)
	dst := core.NewScreen(80, 24)

	s.SpawnVisual(runner.KindObstacle, 2, track.PlayerZ)
	s.SpawnVisual(runner.KindShield, 0, track.PlayerZ)
	s.Draw(dst, runner.Snapshot{Lane: runner.CenterLane})

	if got := dst.Get(54, 20); got != ObstacleChar {
		t.Errorf("expected obstacle at (54, 20), got %q", got)
	}
	if got := dst.Get(26, 20); got != ShieldChar {
		t.Errorf("expected shield at (26, 20), got %q", got)
	}

	// Sprites at the spawn line sit on the horizon
	dst.Clear()
	s2 := NewScene(track, nil)
	s2.SpawnVisual(runner.KindObstacle, runner.CenterLane, track.SpawnZ)
	s2.Draw(dst, runner.Snapshot{Lane: 0})
	if got := dst.Get(40, 2); got != ObstacleChar {
		t.Errorf("expected obstacle on the horizon at (40, 2), got %q", got)
	}
}

func TestSceneTooSmall(t *testing.T) {
	s := NewScene(config.DefaultRunnerConfig().Track, nil)
	dst := core.NewScreen(20, 5)
	s.Draw(dst, runner.Snapshot{})
	if !strings.Contains(dst.String(), "too small") {
		t.Errorf("expected a size warning, got:\n%s", dst.String())
	}
}

func TestPaletteRenderScreen(t *testing.T) {
	p := NewPalette(nil)
	p.SetTrail("no-such-trail")

	s := core.NewScreen(3, 1)
	s.SetColored(1, 0, ObstacleChar, core.ColorRed)
	s.SetColored(2, 0, TrailNearChar, core.ColorTrailPrimary)

	out := p.RenderScreen(s)
	if !strings.Contains(out, string(ObstacleChar)) || !strings.Contains(out, string(TrailNearChar)) {
		t.Errorf("rendered screen lost glyphs: %q", out)
	}
}

func TestPaletteRenderScreenPlain(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	p := NewPalette(r)

	s := core.NewScreen(4, 2)
	s.SetColored(1, 0, ObstacleChar, core.ColorRed)
	s.DrawText(0, 1, "ok")

	want := " " + string(ObstacleChar) + "  \nok  "
	if got := p.RenderScreen(s); got != want {
		t.Errorf("plain render = %q, want %q", got, want)
	}
}

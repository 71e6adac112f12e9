package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/foxrun/internal/core"
	"github.com/vovakirdan/foxrun/internal/profile"
)

// ansiColors maps core.Color to terminal palette indices.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette maps core.Color to lipgloss styles for one renderer. The trail
// slots follow the equipped trail.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewPalette creates a palette bound to r. A nil renderer uses the default
// renderer for stdout; SSH sessions pass their own.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style, len(ansiColors)+3),
	}
	p.styles[core.ColorDefault] = r.NewStyle()
	for c, code := range ansiColors {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	p.SetTrail(profile.DefaultTrailID)
	return p
}

// SetTrail points the trail slots at a catalog trail's colour pair.
// Unknown ids fall back to the default trail.
func (p *Palette) SetTrail(id string) {
	t, ok := profile.LookupTrail(id)
	if !ok {
		t, _ = profile.LookupTrail(profile.DefaultTrailID)
	}
	p.styles[core.ColorTrailPrimary] = p.renderer.NewStyle().Foreground(lipgloss.Color(t.Primary))
	p.styles[core.ColorTrailSecondary] = p.renderer.NewStyle().Foreground(lipgloss.Color(t.Secondary))
}

// Style returns the style for c.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.styles[core.ColorDefault]
}

// Renderer returns the lipgloss renderer the palette was built for.
func (p *Palette) Renderer() *lipgloss.Renderer {
	return p.renderer
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Terminals without color support get the plain buffer.
func (p *Palette) RenderScreen(s *core.Screen) string {
	if p.renderer.ColorProfile() == termenv.Ascii {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

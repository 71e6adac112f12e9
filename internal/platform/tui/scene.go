package tui

import (
	"math"
	"sort"

	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/core"
	"github.com/vovakirdan/foxrun/internal/profile"
	"github.com/vovakirdan/foxrun/internal/runner"
)

// Track glyphs.
const (
	EdgeLeft      = '╱'
	EdgeRight     = '╲'
	LaneMark      = '┆'
	ObstacleChar  = '●'
	ShieldChar    = '◈'
	FoxChar       = '▲'
	TrailNearChar = '█'
	TrailFarChar  = '▓'
)

type sprite struct {
	kind runner.Kind
	lane int
	z    float64
}

// Scene mirrors the simulation's entities and rasterises them onto a
// perspective track. It implements runner.RenderSink.
type Scene struct {
	sprites map[runner.VisualHandle]sprite
	next    runner.VisualHandle
	trail   string
	palette *Palette
	track   config.TrackConfig
	frame   int
}

// NewScene creates an empty scene for the given track geometry. Trail
// changes are forwarded to palette when it is not nil.
func NewScene(track config.TrackConfig, palette *Palette) *Scene {
	return &Scene{
		sprites: make(map[runner.VisualHandle]sprite),
		trail:   profile.DefaultTrailID,
		palette: palette,
		track:   track,
	}
}

func (s *Scene) SpawnVisual(kind runner.Kind, lane int, z float64) runner.VisualHandle {
	s.next++
	s.sprites[s.next] = sprite{kind: kind, lane: lane, z: z}
	return s.next
}

func (s *Scene) MoveVisual(h runner.VisualHandle, z float64) {
	if sp, ok := s.sprites[h]; ok {
		sp.z = z
		s.sprites[h] = sp
	}
}

func (s *Scene) RemoveVisual(h runner.VisualHandle) {
	delete(s.sprites, h)
}

func (s *Scene) SetTrailStyle(id string) {
	s.trail = id
	if s.palette != nil {
		s.palette.SetTrail(id)
	}
}

// Trail returns the active trail id.
func (s *Scene) Trail() string { return s.trail }

// Len returns the number of live sprites.
func (s *Scene) Len() int { return len(s.sprites) }

// layout describes where the track sits on the screen.
type layout struct {
	horizon   int
	playerRow int
	center    int
	maxSpread float64
}

func (s *Scene) layout(dst *core.Screen) layout {
	h := dst.Height()
	return layout{
		horizon:   2,
		playerRow: h - 4,
		center:    dst.Width() / 2,
		maxSpread: math.Min(float64(dst.Width())/4, 14),
	}
}

// depth returns the normalized distance from the spawn line (0) to the
// player (1). Values above 1 are behind the player.
func (s *Scene) depth(z float64) float64 {
	return (z - s.track.SpawnZ) / (s.track.PlayerZ - s.track.SpawnZ)
}

// row maps depth to a screen row. Squaring t compresses the far end of the
// track towards the horizon.
func (l layout) row(t float64) int {
	return l.horizon + int(math.Round(float64(l.playerRow-l.horizon)*t*t))
}

func (l layout) spread(t float64) float64 {
	return core.Lerp(2, l.maxSpread, core.ClampF(t, 0, 1.2))
}

func (l layout) col(lane int, t float64) int {
	return l.center + int(math.Round(float64(lane-runner.CenterLane)*l.spread(t)))
}

// Draw renders the track, the sprites and the player for snap.
func (s *Scene) Draw(dst *core.Screen, snap runner.Snapshot) {
	s.frame++
	l := s.layout(dst)
	if l.playerRow <= l.horizon+2 {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small")
		return
	}

	s.drawTrack(dst, l)

	// Far sprites first so near ones overwrite them
	sprites := make([]sprite, 0, len(s.sprites))
	for _, sp := range s.sprites {
		sprites = append(sprites, sp)
	}
	sort.Slice(sprites, func(i, j int) bool {
		if sprites[i].z != sprites[j].z {
			return sprites[i].z < sprites[j].z
		}
		return sprites[i].lane < sprites[j].lane
	})
	for _, sp := range sprites {
		s.drawSprite(dst, l, sp)
	}

	s.drawPlayer(dst, l, snap)
}

func (s *Scene) drawTrack(dst *core.Screen, l layout) {
	for y := l.horizon; y < dst.Height(); y++ {
		t := math.Sqrt(float64(y-l.horizon) / float64(l.playerRow-l.horizon))
		sp := l.spread(t)
		left := l.center - int(math.Round(1.5*sp))
		right := l.center + int(math.Round(1.5*sp))
		dst.SetColored(left, y, EdgeLeft, core.ColorGray)
		dst.SetColored(right, y, EdgeRight, core.ColorGray)

		// Dashes scroll towards the player
		if (y+s.frame/4)%2 == 0 {
			dst.SetColored(l.center-int(math.Round(0.5*sp)), y, LaneMark, core.ColorGray)
			dst.SetColored(l.center+int(math.Round(0.5*sp)), y, LaneMark, core.ColorGray)
		}
	}
}

func (s *Scene) drawSprite(dst *core.Screen, l layout, sp sprite) {
	t := s.depth(sp.z)
	if t < 0 {
		return
	}
	y := l.row(t)
	if y >= dst.Height() {
		return
	}
	x := l.col(sp.lane, t)

	switch sp.kind {
	case runner.KindObstacle:
		dst.SetColored(x, y, ObstacleChar, core.ColorBrightRed)
		if t > 0.6 {
			dst.SetColored(x-1, y, '(', core.ColorRed)
			dst.SetColored(x+1, y, ')', core.ColorRed)
		}
	case runner.KindShield:
		dst.SetColored(x, y, ShieldChar, core.ColorBrightCyan)
	case runner.KindMultiplier:
		dst.DrawTextColored(x-1, y, "x2", core.ColorBrightYellow)
	}
}

func (s *Scene) drawPlayer(dst *core.Screen, l layout, snap runner.Snapshot) {
	x := l.col(snap.Lane, 1)
	y := l.playerRow

	dst.SetColored(x, y, FoxChar, core.ColorOrange)
	dst.SetColored(x-1, y, '/', core.ColorOrange)
	dst.SetColored(x+1, y, '\\', core.ColorOrange)
	if snap.ShieldActive {
		dst.SetColored(x-2, y, '(', core.ColorBrightCyan)
		dst.SetColored(x+2, y, ')', core.ColorBrightCyan)
	}

	// Ribbon alternates between the trail's two colours
	near, far := core.ColorTrailPrimary, core.ColorTrailSecondary
	if (s.frame/6)%2 == 1 {
		near, far = far, near
	}
	dst.SetColored(x, y+1, TrailNearChar, near)
	dst.SetColored(x, y+2, TrailFarChar, far)
}

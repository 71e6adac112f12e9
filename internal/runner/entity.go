// Package runner implements the lane-runner simulation: spawning and moving
// obstacles and power-ups, resolving collisions, timed power-up effects,
// scoring, and the run controller that ties them together once per tick.
//
// The package has no rendering or terminal dependencies. Front ends observe
// a run through the RenderSink and UISink interfaces.
package runner

import "github.com/vovakirdan/foxrun/internal/core"

// Lane layout.
const (
	LaneCount  = 3
	CenterLane = 1
)

// LaneX returns the lane-axis coordinate of a lane index.
func LaneX(lane int, spacing float64) float64 {
	return float64(lane-CenterLane) * spacing
}

// Kind tags what an entity is.
type Kind int

const (
	KindObstacle Kind = iota
	KindShield
	KindMultiplier
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindShield:
		return "shield"
	case KindMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// IsPowerUp reports whether the kind is collectable.
func (k Kind) IsPowerUp() bool {
	return k == KindShield || k == KindMultiplier
}

// EntityID uniquely identifies an entity within an engine's lifetime.
type EntityID uint64

// Entity is an obstacle or power-up on the track. Z grows as the entity
// scrolls towards and then past the player.
type Entity struct {
	ID     EntityID
	Kind   Kind
	Lane   int
	X      float64
	Z      float64
	Scored bool // Obstacles only: set once when passed unharmed
}

// Pos returns the entity position on the track plane.
func (e Entity) Pos() core.Point {
	return core.Point{X: e.X, Z: e.Z}
}

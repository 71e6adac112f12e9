// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a position on the track plane: X along the lane axis, Z along
// the longitudinal axis. The vertical axis never takes part in gameplay.
type Point struct {
	X, Z float64
}

// DistSq returns the squared planar distance between two points.
func (p Point) DistSq(o Point) float64 {
	dx := o.X - p.X
	dz := o.Z - p.Z
	return dx*dx + dz*dz
}

// Within reports whether o lies inside a circle of squared radius rSq around p.
// The boundary counts as inside.
func (p Point) Within(o Point, rSq float64) bool {
	return p.DistSq(o) <= rSq
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

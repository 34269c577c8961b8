package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Len returns the vector length.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vector) Dist(o Vector) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// MotionData is the circle body every simulated entity has.
// Positions are circle centres in playfield pixels, velocity is pixels per second.
type MotionData struct {
	Position Vector
	Velocity Vector
	Radius   float64
	Rotation float64
}

var Motion = donburi.NewComponentType[MotionData]()

// Overlaps reports whether two circles overlap (distance < sum of radii).
func (m *MotionData) Overlaps(o *MotionData) bool {
	return m.Position.Dist(o.Position) < m.Radius+o.Radius
}

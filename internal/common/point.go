package common

import (
	"fmt"
	"math"
)

// Point represents a position on the 2D game plane.
type Point struct {
	X float64
	Y float64
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Distance calculates the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", FormatFloat(p.X), FormatFloat(p.Y))
}

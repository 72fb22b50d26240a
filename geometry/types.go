// Package geometry - central value types and sentinel errors.
//
// This file declares Circle, Square, Chord, the UnitDisk constant, and
// the validation sentinels shared by all coverage checkers.
package geometry

import (
	"errors"

	"github.com/jbeda/geom"
)

// Sentinel errors for malformed geometry.
var (
	// ErrNonFinite indicates a NaN or infinite coordinate, radius, or side.
	ErrNonFinite = errors.New("geometry: non-finite value")

	// ErrNonPositiveRadius indicates a circle with radius <= 0.
	ErrNonPositiveRadius = errors.New("geometry: radius must be positive")

	// ErrNonPositiveSide indicates a square with side length <= 0.
	ErrNonPositiveSide = errors.New("geometry: side length must be positive")
)

// Circle is a circle in the plane: center (X, Y) and radius R.
// It is an immutable value type; all methods are pure.
type Circle struct {
	// X is the x coordinate of the center.
	X float64

	// Y is the y coordinate of the center.
	Y float64

	// R is the radius, R > 0 for well-formed circles.
	R float64
}

// Center returns the center of c as a coordinate.
func (c Circle) Center() geom.Coord {
	return geom.Coord{X: c.X, Y: c.Y}
}

// UnitDisk is the covering target: the circle of radius 1 at the origin.
var UnitDisk = Circle{X: 0, Y: 0, R: 1}

// Square is an axis-aligned square: (X, Y) is the lower-left corner and
// Side the edge length. It is an immutable value type used as the
// subdivision unit of the quadtree checker.
type Square struct {
	// X is the x coordinate of the lower-left corner.
	X float64

	// Y is the y coordinate of the lower-left corner.
	Y float64

	// Side is the edge length, Side > 0 for well-formed squares.
	Side float64
}

// Corners returns the four corners of s in the order
// lower-left, lower-right, upper-left, upper-right.
func (s Square) Corners() [4]geom.Coord {
	return [4]geom.Coord{
		{X: s.X, Y: s.Y},
		{X: s.X + s.Side, Y: s.Y},
		{X: s.X, Y: s.Y + s.Side},
		{X: s.X + s.Side, Y: s.Y + s.Side},
	}
}

// Quadrants subdivides s into its four child squares. Each child has
// half the side length and the children exactly tile s.
func (s Square) Quadrants() [4]Square {
	half := s.Side / 2
	return [4]Square{
		{X: s.X, Y: s.Y, Side: half},
		{X: s.X + half, Y: s.Y, Side: half},
		{X: s.X, Y: s.Y + half, Side: half},
		{X: s.X + half, Y: s.Y + half, Side: half},
	}
}

// Chord is the horizontal interval a shape cuts at a fixed height,
// with Start <= End. Chords are transient: checkers create and merge
// them per sampled height and never retain them.
type Chord struct {
	// Start is the left endpoint.
	Start float64

	// End is the right endpoint.
	End float64
}

// Contains reports whether other lies entirely within c.
func (c Chord) Contains(other Chord) bool {
	return c.Start <= other.Start && c.End >= other.End
}

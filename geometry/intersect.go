package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Intersections computes the two intersection points of circles a and b.
// The points are symmetric about the line joining the centers; for
// centers on the x-axis they are symmetric about it.
//
// ok is false when no well-defined intersection pair exists:
//   - the circles are separate or externally tangent (center distance
//     >= Ra+Rb),
//   - one circle lies inside the other (center distance < |Ra-Rb|),
//   - the circles are coincident (same center, same radius).
//
// Degenerate pairs are a normal branch for alignment routines, so the
// absence is reported via ok rather than an error.
func Intersections(a, b Circle) (p1, p2 geom.Coord, ok bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d := math.Sqrt(dx*dx + dy*dy)

	switch {
	case d >= a.R+b.R:
		return geom.Coord{}, geom.Coord{}, false
	case d < math.Abs(a.R-b.R):
		return geom.Coord{}, geom.Coord{}, false
	case d == 0 && a.R == b.R:
		return geom.Coord{}, geom.Coord{}, false
	}

	// Distance from a's center to the chord midpoint, then half-chord.
	h2 := (a.R*a.R - b.R*b.R + d*d) / (2 * d)
	half := math.Sqrt(a.R*a.R - h2*h2)

	mid := geom.Coord{
		X: a.X + h2*dx/d,
		Y: a.Y + h2*dy/d,
	}

	p1 = geom.Coord{X: mid.X + half*dy/d, Y: mid.Y - half*dx/d}
	p2 = geom.Coord{X: mid.X - half*dy/d, Y: mid.Y + half*dx/d}

	return p1, p2, true
}

// Rotate canonicalizes a circle configuration: the set is rotated about
// the origin by the polar angle of the first circle's upper crossing of
// the unit disk, then mirrored across the x-axis. Configurations that
// differ only by rotation about the origin map to the same canonical
// form, which makes covering candidates comparable. When the first
// circle does not cross the unit disk the set is returned unchanged.
func Rotate(circles []Circle) []Circle {
	if len(circles) == 0 {
		return circles
	}

	p1, p2, ok := Intersections(circles[0], UnitDisk)
	if !ok {
		return circles
	}

	// Pick the upper intersection point.
	upper := p1
	if p2.Y > p1.Y {
		upper = p2
	}
	angle := math.Atan2(upper.Y, upper.X)
	sin, cos := math.Sincos(angle)

	rotated := make([]Circle, len(circles))
	for i, c := range circles {
		rotated[i] = Circle{
			X: c.X*cos - c.Y*sin,
			Y: -(c.X*sin + c.Y*cos),
			R: c.R,
		}
	}

	return rotated
}

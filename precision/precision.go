package precision

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/ofekih/RectilinearDroneSearching/geometry"
)

// Defaults (single source of truth).
const (
	// DefaultPrecision is the precision a fresh Context starts with.
	// It derives epsilon = 1e-3.
	DefaultPrecision = 7

	// MaxQuadSegments caps the number of tessellation segments per
	// quarter arc, bounding worst-case polygon size at high precision.
	MaxQuadSegments = 1 << 20
)

// Context carries the tolerance and tessellation state for one sequence
// of coverage checks. It is not safe for concurrent mutation: give each
// goroutine its own Context (or an immutable snapshot) rather than
// sharing one across SetPrecision calls.
type Context struct {
	precision int
	epsilon   float64
	unitDisk  geom.Polygon
}

// New returns a Context at DefaultPrecision with the unit-disk polygon
// already tessellated.
func New() *Context {
	c := &Context{}
	c.apply(DefaultPrecision)
	return c
}

// SetPrecision sets the precision level. Equal precision is a no-op;
// otherwise epsilon and the cached unit-disk polygon are recomputed
// together before the call returns.
func (c *Context) SetPrecision(p int) {
	if p == c.precision {
		return
	}
	c.apply(p)
}

// apply recomputes every derived value for precision p.
func (c *Context) apply(p int) {
	c.precision = p
	c.epsilon = 1 / math.Pow(10, float64(p/2))
	c.unitDisk = c.CirclePolygon(geometry.UnitDisk)
}

// Precision returns the current precision level.
func (c *Context) Precision() int { return c.precision }

// Epsilon returns the current tolerance, 10^-(precision/2).
func (c *Context) Epsilon() float64 { return c.epsilon }

// UnitDiskPolygon returns the cached tessellation of the unit disk at
// the current precision. Callers must not mutate the returned polygon.
func (c *Context) UnitDiskPolygon() geom.Polygon { return c.unitDisk }

// QuadSegments returns the tessellation segment count per quarter arc
// for a circle of radius r at the current epsilon, capped at
// MaxQuadSegments.
func (c *Context) QuadSegments(r float64) int {
	segs := int(math.Ceil(r * math.Pi / 2 / c.epsilon))
	if segs > MaxQuadSegments {
		return MaxQuadSegments
	}
	if segs < 1 {
		return 1
	}
	return segs
}

// CirclePolygon tessellates circle into a closed polygon whose chord
// error stays within the current epsilon. Per-circle polygons are
// recomputed on every call; only the unit disk is cached.
func (c *Context) CirclePolygon(circle geometry.Circle) geom.Polygon {
	n := 4 * c.QuadSegments(circle.R)
	path := make(geom.Path, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		sin, cos := math.Sincos(theta)
		path[i] = geom.Point{X: circle.X + circle.R*cos, Y: circle.Y + circle.R*sin}
	}
	return geom.Polygon{path}
}

// Package analytic implements the polygon-boolean coverage checker.
//
// Every candidate circle is tessellated into a polygon at the context
// resolution, the polygons are unioned, the union is subtracted from
// the cached unit-disk polygon, and the disk counts as covered when
// the residual area falls below epsilon.
//
// This is the most numerically faithful checker — the verdict is
// area-based rather than sampled — at the price of polygon boolean
// operations on every call. Choose it when area-level precision
// matters more than speed; the scanline and quadtree checkers are the
// cheaper boundary-level alternatives.
//
// Errors:
//
//   - geometry sentinels for malformed input circles.
package analytic

import (
	"github.com/ctessum/geom"

	"github.com/ofekih/RectilinearDroneSearching/geometry"
	"github.com/ofekih/RectilinearDroneSearching/precision"
)

// Covers reports whether circles jointly cover the unit disk to within
// the context epsilon of residual area.
func Covers(circles []geometry.Circle, prec *precision.Context) (bool, error) {
	area, err := UncoveredArea(circles, prec)
	if err != nil {
		return false, err
	}
	return area < prec.Epsilon(), nil
}

// UncoveredArea returns the area of the unit disk left uncovered by
// circles: the disk polygon minus the union of the tessellated circle
// polygons. Callers grading near-misses read the residual directly
// instead of the boolean verdict.
func UncoveredArea(circles []geometry.Circle, prec *precision.Context) (float64, error) {
	if err := geometry.ValidateCircles(circles); err != nil {
		return 0, err
	}

	disk := prec.UnitDiskPolygon()
	if len(circles) == 0 {
		return disk.Area(), nil
	}

	union := geom.Polygonal(prec.CirclePolygon(circles[0]))
	for _, c := range circles[1:] {
		union = union.Union(prec.CirclePolygon(c))
	}

	residual := disk.Difference(union)
	if residual == nil {
		return 0, nil
	}

	return residual.Area(), nil
}

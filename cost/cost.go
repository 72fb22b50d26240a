// Package cost models the traversal cost of a self-similar recursive
// covering scheme and searches for the smallest feasible design
// parameter.
//
// What:
//
//   - DistanceTraveled walks the circle centers in order from the
//     origin and returns the dominant cost ratio max_k d_k/(1-r_k).
//   - BinarySearch bisects a scalar parameter against a feasibility
//     Evaluator until the bracket width reaches the context epsilon.
//
// Why:
//
//   - A covering of the unit disk by circles of shrink ratio r recurses
//     into each circle; the total traversal cost is dominated by the
//     largest accumulated-distance-to-shrink ratio along the tour.
//
// Complexity:
//
//   - DistanceTraveled: O(n) over circles.
//   - BinarySearch: O(log((high-low)/epsilon)) Evaluator calls.
//
// Errors:
//
//   - ErrInteriorUnitRadius, ErrNoSolution, ErrBadBracket, plus
//     geometry sentinels for malformed circles.
package cost

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/ofekih/RectilinearDroneSearching/geometry"
)

// DistanceTraveled returns the dominant cost term of visiting circles
// in order, starting from the origin: the maximum over all circles of
// accumulated distance divided by (1 - r).
//
// The final circle is special-cased: the traversal need not reach its
// center, only the first probe point of the next recursive layer, so
// its leg is shortened by 2*sqrt(x0^2+y0^2)*r (once for reaching that
// probe, once for the next layer not having to). The shortening term
// is a fixed property of the recursive covering scheme and is
// reproduced as given, not derived here.
//
// A final circle with r >= 1 is the terminal case — the recursion ends
// there, no further cost accrues — so its ratio term is skipped rather
// than dividing by zero. A non-final circle with r >= 1 is rejected
// with ErrInteriorUnitRadius.
func DistanceTraveled(circles []geometry.Circle) (float64, error) {
	if err := geometry.ValidateCircles(circles); err != nil {
		return 0, err
	}

	var (
		distance float64
		maxRatio float64
		current  geom.Coord
	)

	for i, c := range circles {
		last := i == len(circles)-1
		if !last && c.R >= 1 {
			return 0, fmt.Errorf("%w: circle %d has r=%v", ErrInteriorUnitRadius, i, c.R)
		}

		leg := current.DistanceFrom(c.Center())
		if last {
			leg -= 2 * math.Sqrt(circles[0].X*circles[0].X+circles[0].Y*circles[0].Y) * c.R
		}
		distance += leg

		if !(last && c.R >= 1) {
			maxRatio = math.Max(maxRatio, distance/(1-c.R))
		}
		current = c.Center()
	}

	return maxRatio, nil
}

// Package cost - result types and sentinel errors for the covering
// cost evaluators.
package cost

import (
	"errors"

	"github.com/ofekih/RectilinearDroneSearching/geometry"
)

// Sentinel errors for cost evaluation and feasibility search.
var (
	// ErrNoSolution indicates BinarySearch never observed a feasible
	// parameter anywhere in [low, high].
	ErrNoSolution = errors.New("cost: no feasible parameter in search range")

	// ErrBadBracket indicates a search bracket with low > high or a
	// non-finite bound.
	ErrBadBracket = errors.New("cost: invalid search bracket")

	// ErrInteriorUnitRadius indicates a non-final circle with radius
	// >= 1, which makes the running ratio d/(1-r) undefined mid-tour.
	ErrInteriorUnitRadius = errors.New("cost: non-final circle radius >= 1")
)

// Evaluator judges one candidate parameter: ok reports feasibility and
// circles is the configuration realizing it. Errors abort the search.
type Evaluator func(p float64) (ok bool, circles []geometry.Circle, err error)

// Result is the outcome of a feasibility search: the smallest parameter
// observed to succeed and the circle configuration that succeeded with
// it.
type Result struct {
	// Param is the smallest feasible parameter found.
	Param float64

	// Circles is the configuration the Evaluator returned for Param.
	Circles []geometry.Circle
}

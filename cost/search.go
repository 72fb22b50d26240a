package cost

import (
	"fmt"
	"math"

	"github.com/ofekih/RectilinearDroneSearching/precision"
)

// BinarySearch finds the infimum parameter in [low, high] for which
// eval reports success, to within the context epsilon.
//
// The bracket endpoints track the tightest known failure (low) and
// success (high): each feasible midpoint pulls high down, each
// infeasible midpoint pushes low up, and bisection stops when
// high-low <= epsilon. The smallest successful parameter and its
// circle configuration are retained and returned.
//
// Returns ErrNoSolution when no midpoint in the searched range ever
// succeeded; an Evaluator error aborts the search immediately.
func BinarySearch(low, high float64, eval Evaluator, prec *precision.Context) (Result, error) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return Result{}, fmt.Errorf("%w: [%v, %v]", ErrBadBracket, low, high)
	}

	var (
		best  Result
		found bool
		eps   = prec.Epsilon()
	)

	for high-low > eps {
		p := (low + high) / 2
		ok, circles, err := eval(p)
		if err != nil {
			return Result{}, fmt.Errorf("cost: evaluator failed at p=%v: %w", p, err)
		}

		if ok {
			high = p
			if !found || p < best.Param {
				best = Result{Param: p, Circles: circles}
				found = true
			}
		} else {
			low = p
		}
	}

	if !found {
		return Result{}, fmt.Errorf("%w: [%v, %v]", ErrNoSolution, low, high)
	}

	return best, nil
}

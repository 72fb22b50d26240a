// Package geometry - validation helpers shared by the coverage checkers.
//
// Checkers reject malformed input eagerly, before any numeric work, so a
// bad circle surfaces as a sentinel error instead of a silently wrong
// verdict. All helpers are deterministic and side-effect free.
package geometry

import (
	"fmt"
	"math"
)

// Validate reports whether c is well-formed: finite center coordinates
// and a strictly positive, finite radius.
func (c Circle) Validate() error {
	if !isFinite(c.X) || !isFinite(c.Y) || !isFinite(c.R) {
		return fmt.Errorf("%w: circle (%v, %v, r=%v)", ErrNonFinite, c.X, c.Y, c.R)
	}
	if c.R <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveRadius, c.R)
	}
	return nil
}

// Validate reports whether s is well-formed: finite corner coordinates
// and a strictly positive, finite side length.
func (s Square) Validate() error {
	if !isFinite(s.X) || !isFinite(s.Y) || !isFinite(s.Side) {
		return fmt.Errorf("%w: square (%v, %v, side=%v)", ErrNonFinite, s.X, s.Y, s.Side)
	}
	if s.Side <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveSide, s.Side)
	}
	return nil
}

// ValidateCircles validates every circle in the set. An empty set is
// valid input: checkers report it as simply not covering.
func ValidateCircles(circles []Circle) error {
	for i, c := range circles {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("circle %d: %w", i, err)
		}
	}
	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

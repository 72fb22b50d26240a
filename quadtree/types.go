// Package quadtree - tunable options and error definitions for the
// subdivision coverage checker.
package quadtree

import (
	"errors"
	"fmt"

	"github.com/ofekih/RectilinearDroneSearching/geometry"
)

// Sentinel errors for quadtree execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("quadtree: invalid option supplied")
)

// PruneReason explains why a square was retired without subdivision.
type PruneReason int

const (
	// PruneOutside: all four corners lie outside the unit disk, so the
	// square cannot affect disk coverage.
	PruneOutside PruneReason = iota

	// PruneCovered: no uncovered corners and the square sits entirely
	// inside a single candidate circle.
	PruneCovered

	// PruneResolution: the child side length would fall below epsilon
	// (or past MaxDepth); the square is treated as covered by
	// convention.
	PruneResolution
)

// String returns a short human-readable label for r.
func (r PruneReason) String() string {
	switch r {
	case PruneOutside:
		return "outside"
	case PruneCovered:
		return "covered"
	case PruneResolution:
		return "resolution"
	default:
		return "unknown"
	}
}

// Option configures a traversal via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// OnEnqueue is called when a square is scheduled for examination,
	// with its subdivision depth (0 for the four top-level quadrants).
	OnEnqueue func(s geometry.Square, depth int)

	// OnPrune is called when a square is retired without subdivision.
	OnPrune func(s geometry.Square, reason PruneReason)

	// MaxDepth, if > 0, stops subdividing beyond this depth; deeper
	// squares are treated as covered, the same convention as the
	// epsilon resolution floor. A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(geometry.Square, int) {},
		OnPrune:   func(geometry.Square, PruneReason) {},
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run when a square is scheduled.
func WithOnEnqueue(fn func(s geometry.Square, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnPrune registers a callback to run when a square is retired.
func WithOnPrune(fn func(s geometry.Square, reason PruneReason)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WithMaxDepth stops subdivision at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit (epsilon floor only)
//	d < 0: invalid option, surfaced as ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

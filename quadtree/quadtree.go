// Package quadtree implements coverage verification and uncovered-region
// location by recursive subdivision of the four unit quadrant squares
// tiling [-1,1]x[-1,1].
//
// Every traversal applies the same per-square decision procedure:
//  1. All four corners outside the unit disk: the square is irrelevant
//     to disk coverage, prune it.
//  2. Count corners inside the disk but covered by no candidate circle.
//     Four such corners certify the square uncovered.
//  3. Zero such corners plus full containment in a single circle
//     certify the square covered, prune it.
//  4. Otherwise subdivide into four half-side children, unless the
//     child side would drop below epsilon, in which case the square is
//     treated as covered by convention (resolution floor). Subdivision
//     depth is therefore bounded by O(log(1/epsilon)).
//
// Covers walks depth-first over an explicit stack and demands success
// on every reachable square. The locators walk breadth-first, so the
// first qualifying square dequeued has the largest side length among
// all qualifying squares: BFS exhausts each subdivision level before
// descending to the next.
//
// Errors:
//
//   - ErrOptionViolation for invalid options.
//   - geometry sentinels for malformed input circles.
package quadtree

import (
	"github.com/ofekih/RectilinearDroneSearching/geometry"
	"github.com/ofekih/RectilinearDroneSearching/precision"
)

// quadrants are the four top-level squares tiling [-1,1]x[-1,1].
var quadrants = [4]geometry.Square{
	{X: -1, Y: -1, Side: 1},
	{X: -1, Y: 0, Side: 1},
	{X: 0, Y: -1, Side: 1},
	{X: 0, Y: 0, Side: 1},
}

// workItem pairs a square with its subdivision depth.
type workItem struct {
	square geometry.Square
	depth  int
}

// walker encapsulates shared traversal state.
type walker struct {
	circles []geometry.Circle
	opts    Options
	eps     float64
}

// newWalker validates input and assembles options.
func newWalker(circles []geometry.Circle, prec *precision.Context, opts []Option) (*walker, error) {
	if err := geometry.ValidateCircles(circles); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &walker{circles: circles, opts: o, eps: prec.Epsilon()}, nil
}

// cornerCounts classifies the corners of s: outside is the number of
// corners beyond the unit disk, uncovered the number inside the disk
// but covered by no candidate circle.
func (w *walker) cornerCounts(s geometry.Square) (outside, uncovered int) {
	for _, corner := range s.Corners() {
		if !geometry.UnitDisk.Contains(corner) {
			outside++
		} else if !geometry.AnyContains(w.circles, corner) {
			uncovered++
		}
	}
	return outside, uncovered
}

// containedInAny reports whether some single candidate circle contains
// all four corners of s.
func (w *walker) containedInAny(s geometry.Square) bool {
	for _, c := range w.circles {
		if c.ContainsSquare(s) {
			return true
		}
	}
	return false
}

// atFloor reports whether subdividing item would cross the resolution
// floor: child side below epsilon, or depth past MaxDepth.
func (w *walker) atFloor(item workItem) bool {
	if item.square.Side/2 < w.eps {
		return true
	}
	return w.opts.MaxDepth > 0 && item.depth+1 > w.opts.MaxDepth
}

// schedule invokes OnEnqueue and returns the item for appending.
func (w *walker) schedule(s geometry.Square, depth int) workItem {
	w.opts.OnEnqueue(s, depth)
	return workItem{square: s, depth: depth}
}

// seed returns the four quadrant squares as depth-0 work items.
func (w *walker) seed() []workItem {
	items := make([]workItem, 0, 4)
	for _, q := range quadrants {
		items = append(items, w.schedule(q, 0))
	}
	return items
}

// Covers reports whether circles jointly cover the unit disk, walking
// the subdivision with an explicit stack so recursion depth never
// grows with precision.
func Covers(circles []geometry.Circle, prec *precision.Context, opts ...Option) (bool, error) {
	w, err := newWalker(circles, prec, opts)
	if err != nil {
		return false, err
	}

	stack := w.seed()
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		outside, uncovered := w.cornerCounts(item.square)
		switch {
		case outside == 4:
			w.opts.OnPrune(item.square, PruneOutside)
		case uncovered > 3:
			// Four interior corners with no covering circle: certified
			// uncovered, the whole candidate set fails.
			return false, nil
		case uncovered == 0 && w.containedInAny(item.square):
			w.opts.OnPrune(item.square, PruneCovered)
		case w.atFloor(item):
			w.opts.OnPrune(item.square, PruneResolution)
		default:
			for _, child := range item.square.Quadrants() {
				stack = append(stack, w.schedule(child, item.depth+1))
			}
		}
	}

	return true, nil
}

// LargestUncovered locates the largest square whose interior corners
// are all uncovered. Breadth-first order guarantees the first match is
// the largest. found is false when the subdivision completes without a
// qualifying square.
func LargestUncovered(circles []geometry.Circle, prec *precision.Context, opts ...Option) (s geometry.Square, found bool, err error) {
	return locate(circles, prec, opts, 3)
}

// LargestSemicovered locates the largest square with at least one
// uncovered interior corner. Same breadth-first largest-first
// guarantee as LargestUncovered.
func LargestSemicovered(circles []geometry.Circle, prec *precision.Context, opts ...Option) (s geometry.Square, found bool, err error) {
	return locate(circles, prec, opts, 0)
}

// locate runs the shared BFS, returning the first square whose
// uncovered-corner count exceeds threshold.
func locate(circles []geometry.Circle, prec *precision.Context, opts []Option, threshold int) (geometry.Square, bool, error) {
	w, err := newWalker(circles, prec, opts)
	if err != nil {
		return geometry.Square{}, false, err
	}

	queue := w.seed()
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		outside, uncovered := w.cornerCounts(item.square)
		switch {
		case outside == 4:
			w.opts.OnPrune(item.square, PruneOutside)
		case uncovered > threshold:
			return item.square, true, nil
		case uncovered == 0 && w.containedInAny(item.square):
			w.opts.OnPrune(item.square, PruneCovered)
		case w.atFloor(item):
			w.opts.OnPrune(item.square, PruneResolution)
		default:
			for _, child := range item.square.Quadrants() {
				queue = append(queue, w.schedule(child, item.depth+1))
			}
		}
	}

	return geometry.Square{}, false, nil
}

// UncoveredSquares collects every certified-uncovered square down to
// the resolution floor, in depth-first order. Unlike the locators it
// does not stop at the first match; callers use it to map the whole
// uncovered region.
func UncoveredSquares(circles []geometry.Circle, prec *precision.Context, opts ...Option) ([]geometry.Square, error) {
	w, err := newWalker(circles, prec, opts)
	if err != nil {
		return nil, err
	}

	var out []geometry.Square
	stack := w.seed()
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		outside, uncovered := w.cornerCounts(item.square)
		switch {
		case outside == 4:
			w.opts.OnPrune(item.square, PruneOutside)
		case uncovered > 3:
			out = append(out, item.square)
		case uncovered == 0 && w.containedInAny(item.square):
			w.opts.OnPrune(item.square, PruneCovered)
		case w.atFloor(item):
			w.opts.OnPrune(item.square, PruneResolution)
		default:
			for _, child := range item.square.Quadrants() {
				stack = append(stack, w.schedule(child, item.depth+1))
			}
		}
	}

	return out, nil
}

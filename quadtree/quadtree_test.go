package quadtree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofekih/RectilinearDroneSearching/geometry"
	"github.com/ofekih/RectilinearDroneSearching/precision"
	"github.com/ofekih/RectilinearDroneSearching/quadtree"
)

// TestCovers_DiskItself verifies the exact-tiling baseline.
func TestCovers_DiskItself(t *testing.T) {
	prec := precision.New()

	ok, err := quadtree.Covers([]geometry.Circle{geometry.UnitDisk}, prec)

	require.NoError(t, err)
	assert.True(t, ok)
}

// TestCovers_EmptySet verifies that the subdivision certifies failure
// for no circles at all.
func TestCovers_EmptySet(t *testing.T) {
	prec := precision.New()

	ok, err := quadtree.Covers(nil, prec)

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCovers_AnnulusGap verifies failure for a single circle leaving an
// uncovered rim annulus.
func TestCovers_AnnulusGap(t *testing.T) {
	prec := precision.New()

	ok, err := quadtree.Covers([]geometry.Circle{{X: 0, Y: 0, R: 0.9}}, prec)

	require.NoError(t, err)
	assert.False(t, ok, "the 0.9..1 annulus contains fully uncovered squares")
}

// TestCovers_GenerousCircle verifies success for a single circle
// strictly larger than the disk.
func TestCovers_GenerousCircle(t *testing.T) {
	prec := precision.New()

	ok, err := quadtree.Covers([]geometry.Circle{{X: 0, Y: 0, R: 1.5}}, prec)

	require.NoError(t, err)
	assert.True(t, ok)
}

// TestCovers_InvalidCircle verifies eager validation before traversal.
func TestCovers_InvalidCircle(t *testing.T) {
	prec := precision.New()

	_, err := quadtree.Covers([]geometry.Circle{{X: 0, Y: math.Inf(1), R: 1}}, prec)

	assert.ErrorIs(t, err, geometry.ErrNonFinite)
}

// TestCovers_MaxDepthFloor verifies that a depth limit acts like the
// epsilon floor: ambiguous regions below it count as covered.
func TestCovers_MaxDepthFloor(t *testing.T) {
	prec := precision.New()
	circles := []geometry.Circle{{X: 0, Y: 0, R: 0.9}}

	ok, err := quadtree.Covers(circles, prec, quadtree.WithMaxDepth(2))
	require.NoError(t, err)
	assert.True(t, ok, "no certified-uncovered square exists at depth <= 2")

	ok, err = quadtree.Covers(circles, prec)
	require.NoError(t, err)
	assert.False(t, ok, "unbounded depth finds the uncovered annulus")
}

// TestCovers_NegativeMaxDepth verifies option validation.
func TestCovers_NegativeMaxDepth(t *testing.T) {
	prec := precision.New()

	_, err := quadtree.Covers(nil, prec, quadtree.WithMaxDepth(-1))

	assert.ErrorIs(t, err, quadtree.ErrOptionViolation)
}

// TestLargestUncovered_EmptySet verifies the BFS largest-first
// guarantee on the empty set. No side-1 quadrant qualifies (each has a
// corner outside the disk or on its rim), so the first fully uncovered
// square dequeued is the central side-0.5 square of the lower-left
// quadrant.
func TestLargestUncovered_EmptySet(t *testing.T) {
	prec := precision.New()

	sq, found, err := quadtree.LargestUncovered(nil, prec)

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, geometry.Square{X: -0.5, Y: -0.5, Side: 0.5}, sq)
}

// TestLargestSemicovered_EmptySet verifies that the weaker one-corner
// criterion already fires on the first top-level quadrant: side 1, the
// largest possible.
func TestLargestSemicovered_EmptySet(t *testing.T) {
	prec := precision.New()

	sq, found, err := quadtree.LargestSemicovered(nil, prec)

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, geometry.Square{X: -1, Y: -1, Side: 1}, sq)
}

// TestLargestUncovered_FullyCovered verifies the no-such-square result
// on a covered disk.
func TestLargestUncovered_FullyCovered(t *testing.T) {
	prec := precision.New()

	_, found, err := quadtree.LargestUncovered([]geometry.Circle{{X: 0, Y: 0, R: 1.5}}, prec)

	require.NoError(t, err)
	assert.False(t, found)
}

// TestLargestUncovered_LargerThanSemicovered verifies the relation
// between the two locators: the semicovered square is found at least
// as early, so its side is at least as large.
func TestLargestUncovered_LargerThanSemicovered(t *testing.T) {
	prec := precision.New()
	circles := []geometry.Circle{{X: 0, Y: 0, R: 0.9}}

	unc, foundU, err := quadtree.LargestUncovered(circles, prec)
	require.NoError(t, err)
	semi, foundS, err := quadtree.LargestSemicovered(circles, prec)
	require.NoError(t, err)

	require.True(t, foundU)
	require.True(t, foundS)
	assert.GreaterOrEqual(t, semi.Side, unc.Side)
}

// TestUncoveredSquares verifies the collect-all variant: none on a
// covered disk, plenty for a partial covering, and every reported
// square genuinely has all interior corners uncovered.
func TestUncoveredSquares(t *testing.T) {
	prec := precision.New()
	prec.SetPrecision(5) // epsilon 1e-2 keeps the sweep small

	covered, err := quadtree.UncoveredSquares([]geometry.Circle{{X: 0, Y: 0, R: 1.5}}, prec)
	require.NoError(t, err)
	assert.Empty(t, covered)

	circles := []geometry.Circle{{X: 0, Y: 0, R: 0.9}}
	squares, err := quadtree.UncoveredSquares(circles, prec)
	require.NoError(t, err)
	require.NotEmpty(t, squares)

	for _, sq := range squares {
		for _, corner := range sq.Corners() {
			if geometry.UnitDisk.Contains(corner) {
				assert.False(t, geometry.AnyContains(circles, corner),
					"reported square %+v has a covered corner", sq)
			}
		}
	}
}

// TestHooks verifies that the enqueue and prune callbacks observe the
// traversal: all four quadrants scheduled, and at least one square
// pruned for each of outside and covered reasons.
func TestHooks(t *testing.T) {
	prec := precision.New()

	var enqueued int
	pruned := make(map[quadtree.PruneReason]int)

	ok, err := quadtree.Covers([]geometry.Circle{geometry.UnitDisk}, prec,
		quadtree.WithOnEnqueue(func(geometry.Square, int) { enqueued++ }),
		quadtree.WithOnPrune(func(_ geometry.Square, r quadtree.PruneReason) { pruned[r]++ }),
	)

	require.NoError(t, err)
	require.True(t, ok)
	assert.GreaterOrEqual(t, enqueued, 4, "at least the four quadrants are scheduled")
	assert.Positive(t, pruned[quadtree.PruneOutside], "corner regions outside the disk get pruned")
	assert.Positive(t, pruned[quadtree.PruneCovered], "interior regions inside the circle get pruned")
}

// TestCheckerAgreement verifies that scanline-style and quadtree
// verdicts match on clear-cut configurations (divergence is only
// permitted at resolution-limited boundaries).
func TestCheckerAgreement(t *testing.T) {
	prec := precision.New()

	cases := []struct {
		name    string
		circles []geometry.Circle
		want    bool
	}{
		{"disk itself", []geometry.Circle{geometry.UnitDisk}, true},
		{"empty", nil, false},
		{"small offset circle", []geometry.Circle{{X: 0.5, Y: 0, R: 0.3}}, false},
		{"generous circle", []geometry.Circle{{X: 0, Y: 0, R: 1.5}}, true},
	}

	for _, tc := range cases {
		ok, err := quadtree.Covers(tc.circles, prec)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, ok, "quadtree: %s", tc.name)
	}
}

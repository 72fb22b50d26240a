package scanline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofekih/RectilinearDroneSearching/geometry"
	"github.com/ofekih/RectilinearDroneSearching/precision"
	"github.com/ofekih/RectilinearDroneSearching/scanline"
)

// TestCovers_DiskItself verifies the exact-tiling baseline: the unit
// disk as its own single covering circle.
func TestCovers_DiskItself(t *testing.T) {
	prec := precision.New()

	ok, err := scanline.Covers([]geometry.Circle{geometry.UnitDisk}, prec)

	require.NoError(t, err)
	assert.True(t, ok)
}

// TestCovers_EmptySet verifies that no circles cover nothing: the very
// first sampled height already fails.
func TestCovers_EmptySet(t *testing.T) {
	prec := precision.New()

	ok, err := scanline.Covers(nil, prec)

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCovers_SingleSmallCircle verifies failure for a circle that
// plainly cannot reach the rim.
func TestCovers_SingleSmallCircle(t *testing.T) {
	prec := precision.New()

	ok, err := scanline.Covers([]geometry.Circle{{X: 0, Y: 0, R: 0.5}}, prec)

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCovers_TwoHalves verifies that two generous overlapping circles
// whose chords jointly span every disk chord pass the sweep.
func TestCovers_TwoHalves(t *testing.T) {
	prec := precision.New()
	circles := []geometry.Circle{
		{X: -0.25, Y: 0, R: 1.25},
		{X: 0.25, Y: 0, R: 1.25},
	}

	ok, err := scanline.Covers(circles, prec)

	require.NoError(t, err)
	assert.True(t, ok)
}

// TestCovers_InvalidCircle verifies eager input validation.
func TestCovers_InvalidCircle(t *testing.T) {
	prec := precision.New()

	_, err := scanline.Covers([]geometry.Circle{{X: math.NaN(), Y: 0, R: 1}}, prec)
	assert.ErrorIs(t, err, geometry.ErrNonFinite)

	_, err = scanline.Covers([]geometry.Circle{{X: 0, Y: 0, R: -1}}, prec)
	assert.ErrorIs(t, err, geometry.ErrNonPositiveRadius)
}

// TestCoversWith_OnSample verifies the sampling hook: called once per
// height, and a failing sample is the last call.
func TestCoversWith_OnSample(t *testing.T) {
	prec := precision.New()
	prec.SetPrecision(3) // epsilon 0.1: a short, countable sweep

	var calls int
	var lastCovered bool
	opts := scanline.Options{OnSample: func(_ float64, covered bool) {
		calls++
		lastCovered = covered
	}}

	ok, err := scanline.CoversWith(nil, prec, opts)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, calls, "empty set fails at the first sampled height")
	assert.False(t, lastCovered)

	calls = 0
	ok, err = scanline.CoversWith([]geometry.Circle{geometry.UnitDisk}, prec, opts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 20, calls, 1, "epsilon 0.1 sweeps about 20 heights across [-1, 1)")
	assert.True(t, lastCovered)
}

// TestCovers_UncoveredWaist verifies failure when two stacked circles
// leave the disk's widest chord uncontained.
func TestCovers_UncoveredWaist(t *testing.T) {
	prec := precision.New()
	circles := []geometry.Circle{
		{X: 0, Y: 0.5, R: 1.05},
		{X: 0, Y: -0.5, R: 1.05},
	}

	ok, err := scanline.Covers(circles, prec)

	require.NoError(t, err)
	assert.False(t, ok, "neither circle's chord spans [-1, 1] near y=0")
}

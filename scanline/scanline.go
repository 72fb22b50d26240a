package scanline

import (
	"github.com/ofekih/RectilinearDroneSearching/geometry"
	"github.com/ofekih/RectilinearDroneSearching/precision"
)

// Options tunes a sweep. The zero value is ready to use.
type Options struct {
	// OnSample, when non-nil, is called after every sampled height with
	// the height and its verdict. A failing sample is always the last
	// call: the sweep aborts immediately after it.
	OnSample func(y float64, covered bool)
}

// Covers reports whether circles jointly cover the unit disk, sampled
// at heights spaced by the context epsilon.
func Covers(circles []geometry.Circle, prec *precision.Context) (bool, error) {
	return CoversWith(circles, prec, Options{})
}

// CoversWith is Covers with explicit Options.
func CoversWith(circles []geometry.Circle, prec *precision.Context, opts Options) (bool, error) {
	if err := geometry.ValidateCircles(circles); err != nil {
		return false, err
	}

	eps := prec.Epsilon()
	for y := -1.0; y < 1; y += eps {
		covered := coveredAtHeight(circles, y)
		if opts.OnSample != nil {
			opts.OnSample(y, covered)
		}
		if !covered {
			return false, nil
		}
	}

	return true, nil
}

// coveredAtHeight merges the chords every circle cuts at height y and
// reports whether one merged chord contains the disk's chord there.
// A height the disk does not reach is trivially covered.
func coveredAtHeight(circles []geometry.Circle, y float64) bool {
	diskChord, ok := geometry.UnitDisk.ChordAt(y)
	if !ok {
		return true
	}

	chords := make([]geometry.Chord, 0, len(circles))
	for _, c := range circles {
		if ch, ok := c.ChordAt(y); ok {
			chords = append(chords, ch)
		}
	}

	for _, merged := range geometry.MergeChords(chords) {
		if merged.Contains(diskChord) {
			return true
		}
	}

	return false
}

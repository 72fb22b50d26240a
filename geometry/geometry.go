package geometry

import (
	"math"
	"sort"

	"github.com/jbeda/geom"
)

// Contains reports whether p lies inside or on c. The comparison uses
// squared distances, so no square root is taken.
func (c Circle) Contains(p geom.Coord) bool {
	dx := p.X - c.X
	dy := p.Y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// AnyContains reports whether at least one circle in circles contains p.
func AnyContains(circles []Circle, p geom.Coord) bool {
	for _, c := range circles {
		if c.Contains(p) {
			return true
		}
	}
	return false
}

// ContainsSquare reports whether all four corners of s lie inside c.
// Corner containment of a convex region is sufficient for full
// containment of the square, though not necessary for coverage by a
// union of circles; callers use it as a conservative prune.
func (c Circle) ContainsSquare(s Square) bool {
	for _, corner := range s.Corners() {
		if !c.Contains(corner) {
			return false
		}
	}
	return true
}

// ChordAt returns the horizontal chord c cuts at height y.
// The second return value is false when the circle does not reach y.
func (c Circle) ChordAt(y float64) (Chord, bool) {
	if math.Abs(y-c.Y) > c.R {
		return Chord{}, false
	}
	delta := math.Sqrt(c.R*c.R - (y-c.Y)*(y-c.Y))
	return Chord{Start: c.X - delta, End: c.X + delta}, true
}

// MergeChords fuses chords into a minimal set of non-overlapping chords,
// sorted by start coordinate. Two chords fuse when the later start is
// <= the running end. An empty input yields an empty output; disjoint
// sorted input is returned unchanged (modulo a fresh slice).
func MergeChords(chords []Chord) []Chord {
	if len(chords) == 0 {
		return nil
	}

	sorted := make([]Chord, len(chords))
	copy(sorted, chords)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Chord, 0, len(sorted))
	current := sorted[0]
	for _, ch := range sorted[1:] {
		if ch.Start <= current.End {
			current.End = math.Max(current.End, ch.End)
		} else {
			merged = append(merged, current)
			current = ch
		}
	}

	return append(merged, current)
}

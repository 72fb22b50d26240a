// Package scanline implements the horizontal-slab coverage checker for
// the unit disk.
//
// What:
//
//   - Covers sweeps y from -1 to 1 in steps of the context epsilon.
//   - At each height every candidate circle contributes its chord; the
//     chords are merged into a minimal non-overlapping set and one of
//     them must contain the unit disk's own chord at that height.
//   - The sweep fails fast on the first uncovered height.
//
// Why:
//
//   - Cheapest of the three checkers: O((2/epsilon) * n log n) with a
//     tiny constant, good for coarse screening inside a search loop.
//
// Approximation:
//
//   - The sweep samples heights; a coverage gap strictly narrower than
//     one epsilon step can fall between samples and go undetected.
//     This is a documented property of the method, not a defect. Use
//     the quadtree or analytic checker when boundary-exact or
//     area-exact answers are required.
//
// Errors:
//
//   - geometry.ErrNonFinite / geometry.ErrNonPositiveRadius for
//     malformed input circles.
package scanline

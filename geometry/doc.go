// Package geometry provides the planar primitives shared by every
// unit-disk coverage checker: circles, axis-aligned squares, horizontal
// chords, and the pure predicates that relate them.
//
// What:
//
//   - Circle, Square, and Chord immutable value types.
//   - Inclusive point-in-circle tests on squared distances (no sqrt).
//   - Square corner enumeration and exact quadrant subdivision.
//   - Chord extraction at a fixed height and minimal interval merging.
//   - Pairwise circle intersection points, with degenerate pairs
//     (separate, nested, coincident) reported as an explicit absence.
//   - Rotation of a circle set so its first circle aligns with the
//     positive x-axis crossing of the unit disk.
//
// Why:
//
//   - Coverage checkers: scanline, quadtree, and analytic verification
//     all reduce to these predicates.
//   - Search-cost models: traversal distance between circle centers.
//
// Complexity:
//
//   - All point predicates: O(1); set predicates: O(n) over circles.
//   - MergeChords: O(n log n) for the sort, O(n) fuse.
//
// Errors:
//
//   - ErrNonFinite: a coordinate or radius is NaN or ±Inf.
//   - ErrNonPositiveRadius: circle radius <= 0.
//   - ErrNonPositiveSide: square side length <= 0.
package geometry

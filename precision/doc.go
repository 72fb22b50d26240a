// Package precision provides the numeric-policy context shared by all
// unit-disk coverage checkers: decision tolerance (epsilon) and the
// polygon tessellation resolution derived from it.
//
// What:
//
//   - Context bundles precision, epsilon, and the cached unit-disk
//     polygon; it is an explicit value threaded through checker calls,
//     never hidden package state.
//   - SetPrecision(p) updates epsilon = 10^-(p/2) (integer division)
//     and retessellates the cached unit-disk polygon in the same call,
//     so dependent values are never observed half-updated.
//   - CirclePolygon tessellates any circle at the current resolution:
//     ceil(r*pi/2 / epsilon) segments per quarter arc, capped at 2^20.
//
// Why:
//
//   - One knob: raising precision tightens every checker consistently.
//   - Per-call contexts keep concurrent or test-isolated checks from
//     interfering; a Context is owned by one goroutine at a time.
//
// Invariants:
//
//   - SetPrecision with the current precision is a no-op (idempotent).
//   - Raising precision only ever tightens or holds epsilon.
//
// Complexity:
//
//   - SetPrecision: O(k) where k is the tessellation segment count.
//   - CirclePolygon: O(k).
package precision

// Package dronesearching is the coverage-verification core of a
// rectilinear drone-search study: given circles of chosen radii, can
// they cover the unit disk, and at what traversal cost?
//
// What's inside?
//
//	A small numeric-geometry library that brings together:
//		• Geometry primitives: circles, squares, chords, intersections
//		• Scanline checker: epsilon-stepped horizontal-slab sweep
//		• Quadtree checker: subdivision with BFS largest-region location
//		• Analytic checker: polygon-boolean residual-area verdict
//		• Precision context: one knob for tolerance and tessellation
//		• Cost evaluators: traversal-cost ratio and feasibility search
//
// Why three checkers?
//
//   - scanline is the cheap screen, quadtree locates the failing
//     region, analytic gives the area-exact verdict — same inputs,
//     same precision context, pick by precision/performance need.
//
// Under the hood, everything is organized under flat subpackages:
//
//	geometry/  — value types and pure predicates
//	precision/ — the tolerance/tessellation context threaded everywhere
//	scanline/  — sampling coverage checker
//	quadtree/  — subdivision checker and uncovered-region locators
//	analytic/  — polygon-boolean coverage checker
//	cost/      — distance-traveled metric and binary feasibility search
//
// Rendering, CSV aggregation, and CLI glue live outside this module;
// they consume the verdicts, squares, and costs produced here.
package dronesearching

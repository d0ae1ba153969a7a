// Package matrix provides the adjacency-matrix storage used by the weighted
// graph: a square, growable table of optional int64 weights.
//
// What:
//
//   - Square is a dense n×n matrix whose cells are either unset ("no edge")
//     or hold a weight. Absence is a first-class state; no numeric sentinel
//     is ever reused to mean "missing".
//   - Grow appends one row and one column at a time, preserving existing
//     cells, so the matrix tracks a graph that only ever gains nodes.
//   - String renders the fixed-width debugging view: a header of column
//     indices and one row per index, with ∞ standing in for unset cells.
//
// Why:
//
//   - Dense storage keeps edge lookups O(1) and suits the small-to-medium
//     graphs this library targets; O(n²) memory is the accepted trade.
//   - Keeping "unset" separate from any weight lets path algorithms use
//     their own infinity for "not yet reached" without ambiguity.
//
// Complexity:
//
//   - At/Set/Has: O(1).
//   - Grow: amortized O(n) per call, O(n²) total for n rows.
//   - Clone/String: O(n²).
//
// Options:
//
//   - WithCapacity(n): preallocate for an expected final size; rows still
//     start at the current dimension and grow by append.
//
// Errors:
//
//   - ErrIndexOutOfBounds: row or column outside [0, Size()).
//
// See also: package graph, which owns edge identity and direction rules on
// top of this container.
package matrix

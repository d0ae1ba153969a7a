// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over the matrix-backed weighted graph.
//
// Dijkstra computes the minimum-cost path from a source node to every
// reachable node in a graph with non-negative edge weights. This
// implementation selects the frontier node by a linear scan instead of a
// priority queue: at the target graph sizes (dense, matrix-backed) the scan
// is simple, allocation-free and fast enough, and it fixes the tie-break
// exactly — among equal minimum distances the lowest node id is always
// selected first, so returned paths are fully reproducible.
//
// Complexity:
//
//   - Time:  O(V²)
//   - Each of the V rounds scans up to V working-set nodes for the minimum.
//   - Each selected node relaxes up to V neighbors via O(1) matrix lookups.
//   - Space: O(V) for the distance, predecessor and working-set arrays.
//
// Behavior:
//
//   - The search always runs to full completion (no early exit at the
//     destination), so one Run answers path queries to every destination.
//   - The graph is treated as strictly read-only; concurrent Runs against
//     the same frozen graph are safe.
//   - An unreachable destination yields an empty path, not an error; the
//     path from a node to itself is the single-element sequence [source].
//
// Errors (sentinel):
//
//   - ErrNilGraph if the provided graph pointer is nil.
//   - ErrNodeNotFound if the source or destination id is not a node of the
//     graph.
//
// Example usage:
//
//	path, err := dijkstra.ShortestPath(g, 0, 9)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path) // e.g. [0 4 1 6 7 9]
package dijkstra

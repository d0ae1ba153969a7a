// Package densepath provides a weighted graph backed by a dense adjacency
// matrix together with a single-source Dijkstra shortest-path search.
//
// It targets small-to-medium dense graphs where O(V²) matrix storage and an
// O(V²) linear-scan search are acceptable, favoring correctness, API
// clarity and reproducible output (deterministic tie-breaking) over
// asymptotic optimality.
//
// Subpackages:
//
//   - matrix:   the growable square matrix of optional weights.
//   - graph:    the WeightedGraph — nodes, edges, directed/undirected
//     semantics, adjacency queries.
//   - dijkstra: the shortest-path search and path reconstruction.
//
// A thin demo CLI lives under cmd/densepath.
//
// Typical use:
//
//	g := graph.New()
//	for i := 0; i < 3; i++ {
//	    g.AddNode()
//	}
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(0, 2, 5)
//
//	path, err := dijkstra.ShortestPath(g, 0, 2) // [0 1 2]
package densepath

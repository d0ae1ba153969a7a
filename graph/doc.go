// Package graph provides a weighted graph backed by a dense adjacency
// matrix, aimed at small-to-medium graphs where O(V²) storage is acceptable
// and API clarity matters more than asymptotic optimality.
//
// What:
//
//   - Graph owns the node sequence, the adjacency matrix and the edge
//     records. Nodes are sequential integer ids starting at 0; edges are
//     (from, to, weight) triples with non-negative int64 weights.
//   - Directedness is fixed at construction. An undirected graph stores
//     every edge in exactly one canonical cell, (min, max) by node id, so
//     an edge is never double-counted when traversed from either endpoint.
//   - Neighbors and Weight answer one-hop adjacency and edge-cost queries;
//     String renders the matrix for debugging.
//
// Why:
//
//   - Dense graphs: the matrix answers Weight in O(1) with no hashing.
//   - Deterministic iteration: Neighbors follows matrix scan order, so
//     algorithms layered on top (see the dijkstra package) produce
//     reproducible paths, including tie cases.
//
// Complexity:
//
//   - AddNode:   amortized O(V)     (one matrix row+column).
//   - AddEdge:   O(1).
//   - Neighbors: O(V).
//   - Weight:    O(1).
//   - Clone:     O(V²).
//
// Errors:
//
//   - ErrSelfLoop: an edge's endpoints are the same node.
//   - ErrNegativeWeight: a negative edge weight was supplied.
//   - ErrUnknownNode: an endpoint id is not a node of the graph.
//   - ErrNotDirected: a directed edge was requested on an undirected graph.
//   - ErrEdgeExists: the target cell already holds an edge; the concrete
//     error is *EdgeExistsError carrying the offending endpoints and weight.
//
// Concurrency:
//
//   - None is provided. The intended contract is mutate, then freeze, then
//     query: build the graph from a single goroutine, after which any number
//     of goroutines may query it concurrently, since queries never mutate.
//     Callers that must interleave mutation and query need their own lock.
package graph

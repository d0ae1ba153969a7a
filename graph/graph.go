// This file implements the graph mutations (AddNode, AddEdge) and the
// adjacency queries (Neighbors, Weight, String).
package graph

import "fmt"

// AddNode appends a node, assigns it the next sequential id, and extends the
// adjacency matrix by one row and one column with every new cell unset.
// Existing cells are preserved. No failure modes.
// Complexity: amortized O(V).
func (g *Graph) AddNode() NodeID {
	id := NodeID(g.cells.Grow())
	g.nodes = append(g.nodes, id)

	return id
}

// AddEdge inserts an edge between two existing, distinct nodes with a
// non-negative weight and returns the ids of the records created, in
// insertion order.
//
// Default (bidirectional) behavior:
//
//   - undirected graph: the pair is canonicalized to (min, max) id order and
//     one record is stored; one id is returned.
//   - directed graph: two records are stored, from→to first, each with the
//     same weight; both ids are returned.
//
// With WithEdgeDirected(true) exactly one from→to record is stored; on an
// undirected graph the call fails with ErrNotDirected.
//
// Failures (ErrSelfLoop, ErrNegativeWeight, ErrUnknownNode, ErrNotDirected,
// *EdgeExistsError) leave the graph exactly as it was: in the two-record
// case both target cells are checked before either record is inserted.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to NodeID, weight int64, opts ...EdgeOption) ([]EdgeID, error) {
	// 1) Structural preconditions, checked before touching any state.
	if from == to {
		return nil, fmt.Errorf("edge %d→%d: %w", from, to, ErrSelfLoop)
	}
	if weight < 0 {
		return nil, fmt.Errorf("edge %d→%d weight=%d: %w", from, to, weight, ErrNegativeWeight)
	}
	if !g.HasNode(from) {
		return nil, fmt.Errorf("node %d: %w", from, ErrUnknownNode)
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("node %d: %w", to, ErrUnknownNode)
	}

	var cfg edgeConfig
	var opt EdgeOption
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Explicitly directed edge: exactly one record, directed graphs only.
	if cfg.directed {
		if !g.directed {
			return nil, ErrNotDirected
		}
		id, err := g.insert(from, to, weight)
		if err != nil {
			return nil, err
		}

		return []EdgeID{id}, nil
	}

	// 3) Bidirectional edge on a directed graph: one record per direction.
	//    Both cells are checked up front so a duplicate in either direction
	//    inserts nothing.
	if g.directed {
		if g.has(int(from), int(to)) {
			return nil, &EdgeExistsError{From: from, To: to, Weight: weight}
		}
		if g.has(int(to), int(from)) {
			return nil, &EdgeExistsError{From: to, To: from, Weight: weight}
		}
		fwd, _ := g.insert(from, to, weight)
		rev, _ := g.insert(to, from, weight)

		return []EdgeID{fwd, rev}, nil
	}

	// 4) Undirected graph: canonicalize to (min, max) so the edge occupies
	//    exactly one cell regardless of argument order.
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	id, err := g.insert(lo, hi, weight)
	if err != nil {
		return nil, err
	}

	return []EdgeID{id}, nil
}

// insert records one directed edge at the exact (from, to) cell, assigning
// the next sequential edge id. Indices are validated by AddEdge.
func (g *Graph) insert(from, to NodeID, weight int64) (EdgeID, error) {
	if g.has(int(from), int(to)) {
		return 0, &EdgeExistsError{From: from, To: to, Weight: weight}
	}
	_ = g.cells.Set(int(from), int(to), weight)

	id := g.nextEdge
	g.nextEdge++
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight})

	return id, nil
}

// has reports cell presence; indices are validated by the caller.
func (g *Graph) has(row, col int) bool {
	ok, _ := g.cells.Has(row, col)

	return ok
}

// Neighbors returns the nodes reachable from id via one edge, in matrix scan
// order: id's row by increasing column, then — on undirected graphs, whose
// canonical storage keeps an edge only at its lower-index row — every row
// above id whose cell in id's column is populated, by increasing row. This
// order is part of the contract: path algorithms rely on it for reproducible
// tie-breaking. Complexity: O(V).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	n := len(g.nodes)
	out := make([]NodeID, 0, n)

	// 1) id's own row, increasing column order.
	for col := 0; col < n; col++ {
		if g.has(int(id), col) {
			out = append(out, NodeID(col))
		}
	}
	if g.directed {
		return out, nil
	}

	// 2) Rows above id at column id, increasing row order.
	for row := 0; row < int(id); row++ {
		if g.has(row, int(id)) {
			out = append(out, NodeID(row))
		}
	}

	return out, nil
}

// Weight returns the stored weight of the edge between from and to, checking
// the canonical (min, max) orientation on undirected graphs and the exact
// (from, to) cell on directed ones. Absence — including unknown ids — is
// reported as ok == false, not as an error: callers must check ok before
// using the weight as a traversal cost. Complexity: O(1).
func (g *Graph) Weight(from, to NodeID) (int64, bool) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return 0, false
	}
	if !g.directed && from > to {
		from, to = to, from
	}
	w, ok, err := g.cells.At(int(from), int(to))
	if err != nil || !ok {
		return 0, false
	}

	return w, true
}

// String renders the adjacency matrix in the fixed-width debugging view:
// a header of column indices, then one row per node with ∞ for absent edges.
// Purely a diagnostic aid, not part of the algorithmic contract.
func (g *Graph) String() string {
	return g.cells.String()
}

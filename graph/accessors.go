// This file provides the read-only accessors and Clone.
package graph

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// NodeCount returns the number of nodes, which always equals the matrix
// dimension.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of stored edge records. A bidirectional edge
// on a directed graph counts as two records.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns a copy of the node id sequence in matrix order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge records in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasNode reports whether id names a node of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// HasEdge reports whether an edge connects from and to, honoring the
// canonical orientation on undirected graphs.
func (g *Graph) HasEdge(from, to NodeID) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Clone returns a deep copy sharing no mutable state with the receiver, so
// the copy can be mutated while the original stays frozen for concurrent
// queries. Complexity: O(V² + E).
func (g *Graph) Clone() *Graph {
	dup := &Graph{
		directed: g.directed,
		cap:      g.cap,
		nodes:    make([]NodeID, len(g.nodes)),
		cells:    g.cells.Clone(),
		edges:    make([]Edge, len(g.edges)),
		nextEdge: g.nextEdge,
	}
	copy(dup.nodes, g.nodes)
	copy(dup.edges, g.edges)

	return dup
}

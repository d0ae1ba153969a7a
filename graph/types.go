// This file declares NodeID, EdgeID, Edge, the Graph aggregate with its
// construction options, and the sentinel errors for graph mutations.
package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densepath/matrix"
)

// Sentinel errors for graph mutations and queries.
var (
	// ErrSelfLoop indicates an edge whose source and destination are the same node.
	ErrSelfLoop = errors.New("graph: source and destination cannot be the same")

	// ErrNegativeWeight indicates a negative edge weight; the graph only
	// admits non-negative weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("graph: node not found")

	// ErrNotDirected indicates a directed edge was requested on an undirected graph.
	ErrNotDirected = errors.New("graph: directed edge on undirected graph")

	// ErrEdgeExists indicates the target cell already holds an edge.
	// The concrete error is always *EdgeExistsError; match with errors.Is
	// against this sentinel or errors.As for the offending triple.
	ErrEdgeExists = errors.New("graph: edge already exists")
)

// NodeID identifies a node. Ids are assigned sequentially from 0 in AddNode
// order and are never reused; a node's id doubles as its matrix index.
type NodeID int

// EdgeID identifies an edge record, assigned sequentially in the order edges
// are successfully added and never reused.
type EdgeID int

// Edge is one stored edge record: a directed (From, To) pair with its weight.
// Undirected graphs hold one record per edge at the canonical (min, max)
// orientation; directed graphs hold one record per direction.
type Edge struct {
	ID     EdgeID
	From   NodeID
	To     NodeID
	Weight int64
}

// EdgeExistsError reports a rejected duplicate insertion, carrying the
// endpoints of the occupied cell and the weight that was being added.
type EdgeExistsError struct {
	From   NodeID
	To     NodeID
	Weight int64
}

// Error implements the error interface.
func (e *EdgeExistsError) Error() string {
	return fmt.Sprintf("graph: edge %d→%d already exists (adding weight %d)", e.From, e.To, e.Weight)
}

// Is makes the error match ErrEdgeExists under errors.Is.
func (e *EdgeExistsError) Is(target error) bool {
	return target == ErrEdgeExists
}

// Graph is the matrix-backed weighted graph. It owns the node sequence, the
// adjacency matrix and the edge records exclusively; directedness is fixed
// at construction and never changes. The zero value is not usable; construct
// with New.
type Graph struct {
	directed bool
	cap      int // node-count preallocation hint; 0 means none

	nodes    []NodeID
	cells    *matrix.Square
	edges    []Edge
	nextEdge EdgeID
}

// Option configures a Graph before creation.
type Option func(*Graph)

// WithDirected sets the graph-wide directedness
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithCapacity preallocates node storage and the adjacency matrix for an
// expected final node count. Non-positive hints are ignored.
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.cap = n
		}
	}
}

// EdgeOption configures an individual AddEdge call.
type EdgeOption func(*edgeConfig)

// edgeConfig holds per-edge settings resolved from EdgeOptions.
type edgeConfig struct {
	directed bool
}

// WithEdgeDirected requests a single one-way edge instead of the default
// bidirectional insertion. Only valid on a directed graph; AddEdge fails
// with ErrNotDirected otherwise.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) { c.directed = directed }
}

// New creates an empty graph: 0 nodes, 0 edges, a 0×0 matrix. The first
// AddNode establishes a valid 1×1 matrix. Options are applied in order.
// Complexity: O(1) plus any preallocation requested via WithCapacity.
func New(opts ...Option) *Graph {
	g := &Graph{}
	var opt Option
	for _, opt = range opts {
		opt(g)
	}

	mopts := make([]matrix.Option, 0, 1)
	if g.cap > 0 {
		mopts = append(mopts, matrix.WithCapacity(g.cap))
	}
	g.cells = matrix.New(mopts...)
	g.nodes = make([]NodeID, 0, g.cap)

	return g
}

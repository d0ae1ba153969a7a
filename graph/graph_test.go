package graph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densepath/graph"
)

// addNodes appends n nodes and asserts the ids come out sequential.
func addNodes(t *testing.T, g *graph.Graph, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.Equal(t, graph.NodeID(i), g.AddNode())
	}
}

// TestNew_Empty verifies the empty starting state for both directedness modes.
func TestNew_Empty(t *testing.T) {
	g := graph.New()
	require.False(t, g.Directed(), "default graph must be undirected")
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.Nodes())
	require.Empty(t, g.Edges())

	d := graph.New(graph.WithDirected(true))
	require.True(t, d.Directed())
}

// TestAddNode_SequentialIDs verifies ids 0..n-1 in AddNode order and that
// node count tracks the matrix dimension.
func TestAddNode_SequentialIDs(t *testing.T) {
	g := graph.New(graph.WithCapacity(4))
	addNodes(t, g, 4)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, []graph.NodeID{0, 1, 2, 3}, g.Nodes())

	require.True(t, g.HasNode(0))
	require.True(t, g.HasNode(3))
	require.False(t, g.HasNode(4))
	require.False(t, g.HasNode(-1))
}

// TestAddEdge_SelfLoop verifies self-loops are rejected in both modes with
// no mutation.
func TestAddEdge_SelfLoop(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := graph.New(graph.WithDirected(directed))
		addNodes(t, g, 2)

		_, err := g.AddEdge(1, 1, 7)
		require.ErrorIs(t, err, graph.ErrSelfLoop, "directed=%v", directed)
		require.Equal(t, 0, g.EdgeCount())
	}
}

// TestAddEdge_NegativeWeight verifies the non-negative weight precondition.
func TestAddEdge_NegativeWeight(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 2)

	_, err := g.AddEdge(0, 1, -3)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
	require.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_UnknownNode verifies fail-fast validation of both endpoints.
func TestAddEdge_UnknownNode(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 2)

	_, err := g.AddEdge(0, 5, 1)
	require.ErrorIs(t, err, graph.ErrUnknownNode)

	_, err = g.AddEdge(5, 0, 1)
	require.ErrorIs(t, err, graph.ErrUnknownNode)
	require.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_NotDirected verifies a directed-edge request on an undirected
// graph always fails.
func TestAddEdge_NotDirected(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 2)

	_, err := g.AddEdge(0, 1, 1, graph.WithEdgeDirected(true))
	require.ErrorIs(t, err, graph.ErrNotDirected)
	require.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_UndirectedCanonical verifies that argument order does not
// matter on an undirected graph: the edge lands in the (min, max) cell and
// the reversed pair is a duplicate.
func TestAddEdge_UndirectedCanonical(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 5)

	ids, err := g.AddEdge(4, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []graph.EdgeID{0}, ids)

	// Both orientations answer with the same weight.
	w, ok := g.Weight(1, 4)
	require.True(t, ok)
	require.EqualValues(t, 3, w)
	w, ok = g.Weight(4, 1)
	require.True(t, ok)
	require.EqualValues(t, 3, w)

	// The stored record uses the canonical orientation.
	require.Equal(t, []graph.Edge{{ID: 0, From: 1, To: 4, Weight: 3}}, g.Edges())

	// The reversed pair targets the same cell and is rejected.
	_, err = g.AddEdge(1, 4, 9)
	require.ErrorIs(t, err, graph.ErrEdgeExists)
	require.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_DuplicateDiagnostics verifies the duplicate error carries the
// offending triple and that a failed attempt leaves Neighbors unchanged.
func TestAddEdge_DuplicateDiagnostics(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 3)

	_, err := g.AddEdge(0, 2, 5)
	require.NoError(t, err)
	before, err := g.Neighbors(0)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 2, 8)
	require.ErrorIs(t, err, graph.ErrEdgeExists)

	var dup *graph.EdgeExistsError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, graph.NodeID(0), dup.From)
	require.Equal(t, graph.NodeID(2), dup.To)
	require.EqualValues(t, 8, dup.Weight)

	after, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(before, after), "failed insert must not change adjacency")
}

// TestAddEdge_DirectedPair verifies a bidirectional request on a directed
// graph inserts two records, from→to first, and that a duplicate in either
// direction inserts nothing at all.
func TestAddEdge_DirectedPair(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	addNodes(t, g, 3)

	ids, err := g.AddEdge(0, 1, 4)
	require.NoError(t, err)
	require.Equal(t, []graph.EdgeID{0, 1}, ids)
	require.Equal(t, []graph.Edge{
		{ID: 0, From: 0, To: 1, Weight: 4},
		{ID: 1, From: 1, To: 0, Weight: 4},
	}, g.Edges())

	// Occupy only 2→1, then request the 1↔2 pair: the reverse cell is taken,
	// so neither record may be inserted.
	_, err = g.AddEdge(2, 1, 6, graph.WithEdgeDirected(true))
	require.NoError(t, err)

	_, err = g.AddEdge(1, 2, 7)
	require.ErrorIs(t, err, graph.ErrEdgeExists)
	require.False(t, g.HasEdge(1, 2), "no partial insert on duplicate")
	require.Equal(t, 3, g.EdgeCount())
}

// TestAddEdge_DirectedSingle verifies one-way edges on a directed graph.
func TestAddEdge_DirectedSingle(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	addNodes(t, g, 2)

	ids, err := g.AddEdge(0, 1, 2, graph.WithEdgeDirected(true))
	require.NoError(t, err)
	require.Equal(t, []graph.EdgeID{0}, ids)

	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0), "directed edge must not imply its reverse")
}

// TestEdgeIDs_Sequential verifies edge ids count successful insertions only.
func TestEdgeIDs_Sequential(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 4)

	ids, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	require.Equal(t, []graph.EdgeID{0}, ids)

	// A failed attempt must not consume an id.
	_, err = g.AddEdge(0, 1, 1)
	require.ErrorIs(t, err, graph.ErrEdgeExists)

	ids, err = g.AddEdge(2, 3, 1)
	require.NoError(t, err)
	require.Equal(t, []graph.EdgeID{1}, ids)
}

// TestNeighbors_Order pins the enumeration order on the showcase network:
// own-row columns ascending, then prior rows ascending.
func TestNeighbors_Order(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 10)
	for _, e := range [][3]int64{
		{0, 1, 6}, {0, 3, 4}, {0, 4, 2}, {1, 4, 3}, {1, 6, 5},
		{2, 3, 3}, {2, 8, 10}, {3, 4, 1}, {5, 8, 5}, {5, 9, 3},
		{5, 6, 6}, {6, 7, 2}, {7, 9, 2}, {8, 9, 9},
	} {
		_, err := g.AddEdge(graph.NodeID(e[0]), graph.NodeID(e[1]), e[2])
		require.NoError(t, err)
	}

	want := map[graph.NodeID][]graph.NodeID{
		0: {1, 3, 4},
		1: {4, 6, 0},       // row 1 gives 4 and 6, then prior row 0
		4: {0, 1, 3},       // row 4 is empty above 4; all neighbors sit in prior rows
		9: {5, 7, 8},
		2: {3, 8},
	}
	for id, expect := range want {
		got, err := g.Neighbors(id)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(expect, got), "Neighbors(%d)", id)
	}

	_, err := g.Neighbors(10)
	require.ErrorIs(t, err, graph.ErrUnknownNode)
}

// TestNeighbors_Directed verifies only outgoing edges are enumerated on a
// directed graph.
func TestNeighbors_Directed(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	addNodes(t, g, 3)

	_, err := g.AddEdge(2, 0, 1, graph.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, 1, graph.WithEdgeDirected(true))
	require.NoError(t, err)

	got, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{0, 1}, got)

	got, err = g.Neighbors(0)
	require.NoError(t, err)
	require.Empty(t, got, "incoming edges are not neighbors on a directed graph")
}

// TestWeight_Absent verifies absence is comma-ok false, never an error.
func TestWeight_Absent(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 2)

	_, ok := g.Weight(0, 1)
	require.False(t, ok)

	// Unknown ids are absence too, not a panic or an error.
	_, ok = g.Weight(0, 9)
	require.False(t, ok)
	_, ok = g.Weight(-1, 0)
	require.False(t, ok)
}

// TestString_Display pins the fixed-width matrix rendering.
func TestString_Display(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 3)
	_, err := g.AddEdge(0, 1, 6)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 10)
	require.NoError(t, err)

	want := strings.Join([]string{
		"    0   1   2   ",
		"0   ∞   6   ∞   ",
		"1   ∞   ∞   10  ",
		"2   ∞   ∞   ∞   ",
	}, "\n") + "\n"
	require.Equal(t, want, g.String())
}

// TestClone_Isolation verifies a clone shares no mutable state.
func TestClone_Isolation(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 3)
	_, err := g.AddEdge(0, 1, 2)
	require.NoError(t, err)

	dup := g.Clone()
	dup.AddNode()
	_, err = dup.AddEdge(1, 2, 5)
	require.NoError(t, err)

	require.Equal(t, 3, g.NodeCount(), "clone growth must not touch the original")
	require.Equal(t, 1, g.EdgeCount())
	require.False(t, g.HasEdge(1, 2))
	require.True(t, dup.HasEdge(0, 1), "clone keeps the original's edges")
}

// TestAddEdge_WrappedErrors verifies the sentinel survives context wrapping.
func TestAddEdge_WrappedErrors(t *testing.T) {
	g := graph.New()
	addNodes(t, g, 2)

	_, err := g.AddEdge(1, 1, 0)
	require.True(t, errors.Is(err, graph.ErrSelfLoop))
	require.Contains(t, err.Error(), "1→1")
}

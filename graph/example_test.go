package graph_test

import (
	"fmt"

	"github.com/katalvlaran/densepath/graph"
)

// ExampleGraph demonstrates the build-then-query lifecycle:
//  1. add nodes (ids come out sequential),
//  2. connect them with weighted undirected edges,
//  3. query adjacency and render the matrix.
func ExampleGraph() {
	// 1) Four nodes, ids 0..3.
	g := graph.New(graph.WithCapacity(4))
	for i := 0; i < 4; i++ {
		g.AddNode()
	}

	// 2) A small diamond: 0—1, 0—2, 1—3, 2—3.
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 4)
	g.AddEdge(1, 3, 2)
	g.AddEdge(2, 3, 1)

	// 3) Adjacency and edge-cost queries.
	near, _ := g.Neighbors(0)
	fmt.Println("neighbors of 0:", near)
	near, _ = g.Neighbors(3)
	fmt.Println("neighbors of 3:", near)
	w, ok := g.Weight(3, 1) // argument order does not matter when undirected
	fmt.Println("weight 3—1:", w, ok)
	// Output:
	// neighbors of 0: [1 2]
	// neighbors of 3: [1 2]
	// weight 3—1: 2 true
}

// ExampleGraph_directed demonstrates one-way edges on a directed graph.
func ExampleGraph_directed() {
	g := graph.New(graph.WithDirected(true))
	for i := 0; i < 3; i++ {
		g.AddNode()
	}

	// One-way 0→1 plus a bidirectional 1↔2 pair (two records).
	g.AddEdge(0, 1, 5, graph.WithEdgeDirected(true))
	ids, _ := g.AddEdge(1, 2, 7)
	fmt.Println("pair ids:", ids)

	fmt.Println(g.HasEdge(0, 1), g.HasEdge(1, 0))
	// Output:
	// pair ids: [1 2]
	// true false
}

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/densepath/graph"
)

// ShortestPath computes the cheapest path from source to destination and
// returns it as an ordered node sequence, endpoints inclusive. An
// unreachable destination yields an empty (nil) path; destination == source
// yields [source].
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. destination must be a node of g (ErrNodeNotFound).
//  3. source must be a node of g (ErrNodeNotFound, via Run).
//
// The graph is read-only throughout; edge weights are assumed non-negative,
// which the graph layer enforces at insertion.
// Complexity: O(V²) — the run always relaxes the full graph.
func ShortestPath(g *graph.Graph, source, destination graph.NodeID) ([]graph.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(destination) {
		return nil, fmt.Errorf("destination %d: %w", destination, ErrNodeNotFound)
	}

	res, err := Run(g, source)
	if err != nil {
		return nil, err
	}

	return res.PathTo(destination), nil
}

// Run performs one full single-source pass from source, computing the
// distance and predecessor of every node, and returns them as a Result for
// any number of PathTo / DistTo queries. Complexity: O(V²).
func Run(g *graph.Graph, source graph.NodeID) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("source %d: %w", source, ErrNodeNotFound)
	}

	// 2) Initialize state and run the main loop.
	r := newRunner(g, source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	g       *graph.Graph   // the input graph; read-only within the run
	dist    []int64        // node id → current best distance from source
	prev    []graph.NodeID // node id → predecessor on the best-known path
	pending []bool         // working-set membership by node id
	left    int            // number of nodes still in the working set
}

// newRunner initializes every distance to Unreached, every predecessor to
// NoPredecessor, places all nodes in the working set, and seeds the source
// at distance zero.
func newRunner(g *graph.Graph, source graph.NodeID) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		dist:    make([]int64, n),
		prev:    make([]graph.NodeID, n),
		pending: make([]bool, n),
		left:    n,
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Unreached
		r.prev[v] = NoPredecessor
		r.pending[v] = true
	}
	r.dist[source] = 0

	return r
}

// process drains the working set: each round removes the minimum-distance
// pending node and relaxes its neighbors. The loop never exits early — once
// only unreachable nodes remain they are drained without relaxation, since
// no finite distance can flow out of Unreached.
func (r *runner) process() {
	for r.left > 0 {
		u := r.next()
		r.pending[u] = false
		r.left--

		if r.dist[u] == Unreached {
			continue
		}
		r.relax(u)
	}
}

// next returns the pending node with the minimum current distance. The scan
// runs in ascending id order and keeps only strict improvements, so ties
// resolve to the lowest node id — the tie-break the returned paths depend on.
func (r *runner) next() int {
	best := -1
	for v := range r.pending {
		if !r.pending[v] {
			continue
		}
		if best == -1 || r.dist[v] < r.dist[best] {
			best = v
		}
	}

	return best
}

// relax offers u's distance plus the connecting edge weight to every
// neighbor still in the working set, recording u as predecessor on strict
// improvement.
func (r *runner) relax(u int) {
	neighbors, _ := r.g.Neighbors(graph.NodeID(u)) // u is a valid id by construction

	var v graph.NodeID
	for _, v = range neighbors {
		if !r.pending[v] {
			continue
		}
		w, ok := r.g.Weight(graph.NodeID(u), v)
		if !ok {
			continue
		}
		if cand := r.dist[u] + w; cand < r.dist[v] {
			r.dist[v] = cand
			r.prev[v] = graph.NodeID(u)
		}
	}
}

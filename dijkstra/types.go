// This file declares the sentinel errors, the distance and predecessor
// sentinels, and the Result type with its path-reconstruction methods.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/densepath/graph"
)

// Sentinel errors returned by Run and ShortestPath.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or destination id is not a
	// node of the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")
)

// Unreached is the distance recorded for nodes the source cannot reach.
// It is the algorithm's "infinite" value: any finite candidate distance is
// strictly smaller. It is distinct from the graph's "no edge" state, which
// is the matrix cell being unset — the two concepts never mix.
const Unreached int64 = math.MaxInt64

// NoPredecessor marks a node with no recorded predecessor: the source
// itself, and every node the search never reached.
const NoPredecessor graph.NodeID = -1

// Result holds the outcome of one full single-source run. Dist and Prev are
// indexed by node id; Dist holds Unreached and Prev holds NoPredecessor for
// nodes the source cannot reach.
type Result struct {
	// Source is the node the run started from.
	Source graph.NodeID

	// Dist[v] is the minimum total weight from Source to v.
	Dist []int64

	// Prev[v] is the node immediately preceding v on its shortest path.
	Prev []graph.NodeID
}

// PathTo reconstructs the shortest path from the run's source to
// destination by walking predecessors backward and reversing. It returns
// [source] when destination is the source itself, and nil when destination
// is unreachable or out of range. Complexity: O(path length).
func (r *Result) PathTo(destination graph.NodeID) []graph.NodeID {
	if destination < 0 || int(destination) >= len(r.Prev) {
		return nil
	}
	if destination == r.Source {
		return []graph.NodeID{r.Source}
	}
	if r.Prev[destination] == NoPredecessor {
		return nil
	}

	// Walk backward from the destination, then reverse in place.
	path := make([]graph.NodeID, 0, 8)
	for cur := destination; cur != NoPredecessor; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// DistTo returns the minimum total weight from the run's source to
// destination. The boolean is false when destination is unreachable or out
// of range.
func (r *Result) DistTo(destination graph.NodeID) (int64, bool) {
	if destination < 0 || int(destination) >= len(r.Dist) {
		return 0, false
	}
	if d := r.Dist[destination]; d != Unreached {
		return d, true
	}

	return 0, false
}

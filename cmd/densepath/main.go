// Command densepath is the demo driver for the densepath library: it builds
// weighted graphs from the command line, renders their adjacency matrices,
// and answers shortest-path queries.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/katalvlaran/densepath/dijkstra"
	"github.com/katalvlaran/densepath/graph"
)

// showcaseEdges is the 10-node reference network used by the demo command.
var showcaseEdges = [][3]int64{
	{0, 1, 6}, {0, 3, 4}, {0, 4, 2}, {1, 4, 3}, {1, 6, 5},
	{2, 3, 3}, {2, 8, 10}, {3, 4, 1}, {5, 8, 5}, {5, 9, 3},
	{5, 6, 6}, {6, 7, 2}, {7, 9, 2}, {8, 9, 9},
}

// showcaseRoutes pairs each demo query with its known cheapest path.
var showcaseRoutes = []struct {
	from, to graph.NodeID
	want     []graph.NodeID
}{
	{0, 9, []graph.NodeID{0, 4, 1, 6, 7, 9}},
	{0, 8, []graph.NodeID{0, 4, 3, 2, 8}},
	{2, 5, []graph.NodeID{2, 8, 5}},
}

// parseEdges turns repeated "from,to,weight" flags into edge triples and
// reports the highest endpoint id seen.
func parseEdges(specs []string) (edges [][3]int64, maxID int64, err error) {
	maxID = -1
	for _, s := range specs {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return nil, 0, fmt.Errorf("edge %q: want from,to,weight", s)
		}
		var e [3]int64
		for i, p := range parts {
			e[i], err = strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return nil, 0, fmt.Errorf("edge %q: %w", s, err)
			}
		}
		if e[0] < 0 || e[1] < 0 {
			return nil, 0, fmt.Errorf("edge %q: node ids must be non-negative", s)
		}
		maxID = max(maxID, max(e[0], e[1]))
		edges = append(edges, e)
	}

	return edges, maxID, nil
}

// buildGraph constructs a graph holding every listed edge, sized to the
// larger of nodes and the highest endpoint id plus one.
func buildGraph(specs []string, nodes int, directed bool) (*graph.Graph, error) {
	edges, maxID, err := parseEdges(specs)
	if err != nil {
		return nil, err
	}
	n := int(maxID + 1)
	if nodes > n {
		n = nodes
	}

	g := graph.New(graph.WithDirected(directed), graph.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for _, e := range edges {
		if _, err = g.AddEdge(graph.NodeID(e[0]), graph.NodeID(e[1]), e[2]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// pathCost sums the edge weights along a path returned by the search.
func pathCost(g *graph.Graph, path []graph.NodeID) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		w, _ := g.Weight(path[i-1], path[i])
		total += w
	}

	return total
}

func equalPaths(a, b []graph.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// DemoCmd builds the showcase network, prints it, and verifies the known
// cheapest routes.
type DemoCmd struct{}

// Run executes the demo command.
func (c *DemoCmd) Run() error {
	g := graph.New(graph.WithCapacity(10))
	for i := 0; i < 10; i++ {
		g.AddNode()
	}
	for _, e := range showcaseEdges {
		ids, err := g.AddEdge(graph.NodeID(e[0]), graph.NodeID(e[1]), e[2])
		if err != nil {
			return fmt.Errorf("building showcase: %w", err)
		}
		fmt.Printf("Adding edge %d to %d cost %d with ID %d\n", e[0], e[1], e[2], ids[0])
	}

	fmt.Println()
	fmt.Print(g)
	fmt.Println()

	failed := 0
	for _, route := range showcaseRoutes {
		got, err := dijkstra.ShortestPath(g, route.from, route.to)
		if err != nil {
			return fmt.Errorf("route %d→%d: %w", route.from, route.to, err)
		}
		if equalPaths(got, route.want) {
			color.Green("PASS  %d→%d  %v  cost %d", route.from, route.to, got, pathCost(g, got))
		} else {
			color.Red("FAIL  %d→%d  got %v want %v", route.from, route.to, got, route.want)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d route(s) failed", failed)
	}
	color.Green("All routes passed")

	return nil
}

// RouteCmd answers a single shortest-path query on an ad-hoc graph.
type RouteCmd struct {
	Edge     []string `short:"e" help:"Edge as from,to,weight; repeat for each edge."`
	Nodes    int      `help:"Minimum node count; defaults to the highest endpoint id + 1."`
	Directed bool     `help:"Build a directed graph."`
	From     int      `arg:"" help:"Source node id."`
	To       int      `arg:"" help:"Destination node id."`
}

// Run executes the route command.
func (c *RouteCmd) Run() error {
	g, err := buildGraph(c.Edge, c.Nodes, c.Directed)
	if err != nil {
		return err
	}

	path, err := dijkstra.ShortestPath(g, graph.NodeID(c.From), graph.NodeID(c.To))
	if err != nil {
		return err
	}
	if len(path) == 0 {
		color.Yellow("no route from %d to %d", c.From, c.To)

		return nil
	}
	color.Green("%v  cost %d", path, pathCost(g, path))

	return nil
}

// ShowCmd renders an ad-hoc graph's adjacency matrix.
type ShowCmd struct {
	Edge     []string `short:"e" help:"Edge as from,to,weight; repeat for each edge."`
	Nodes    int      `help:"Minimum node count; defaults to the highest endpoint id + 1."`
	Directed bool     `help:"Build a directed graph."`
}

// Run executes the show command.
func (c *ShowCmd) Run() error {
	g, err := buildGraph(c.Edge, c.Nodes, c.Directed)
	if err != nil {
		return err
	}
	fmt.Print(g)

	return nil
}

// CLI is the root kong command structure.
type CLI struct {
	Demo  DemoCmd  `cmd:"" help:"Build the showcase network and verify its known routes."`
	Route RouteCmd `cmd:"" help:"Find the cheapest path between two nodes of an ad-hoc graph."`
	Show  ShowCmd  `cmd:"" help:"Print the adjacency matrix of an ad-hoc graph."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("densepath"),
		kong.Description("Matrix-backed weighted graphs with Dijkstra shortest paths"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

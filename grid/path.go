package grid

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

// Result contains the outcome of a path query.
// Found is false, with a nil Path, when start and end are not connected.
type Result struct {
	Path     []Cell
	Found    bool
	Expanded int
}

// Len returns the number of edges on the path.
func (r Result) Len() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// FindPath returns a minimum-hop path from start to end using A* with the
// Manhattan heuristic. Endpoints that are not open cells of the graph yield
// ErrInvalidEndpoint; unreachable endpoints yield a Result with Found unset.
func FindPath(g *Graph, start, end Cell) (Result, error) {
	for _, c := range []Cell{start, end} {
		if !g.Has(c) {
			return Result{}, fmt.Errorf("%w: %s is not an open cell", ErrInvalidEndpoint, c)
		}
	}

	if start == end {
		return Result{Path: []Cell{start}, Found: true}, nil
	}

	heuristic := func(x, y graph.Node) float64 {
		return Manhattan(g.cellOf(x.ID()), g.cellOf(y.ID()))
	}

	shortest, expanded := path.AStar(g.node(start), g.node(end), g.g, heuristic)
	nodes, _ := shortest.To(g.node(end).id)
	if len(nodes) == 0 {
		return Result{Expanded: expanded}, nil
	}

	cells := make([]Cell, len(nodes))
	for i, n := range nodes {
		cells[i] = g.cellOf(n.ID())
	}

	return Result{Path: cells, Found: true, Expanded: expanded}, nil
}

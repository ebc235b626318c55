package grid

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is the adjacency graph of the open cells of a Grid.
// It is read-only once built and safe for concurrent queries.
type Graph struct {
	grid Grid
	g    *simple.UndirectedGraph
}

// cellNode is a graph node carrying its grid position.
type cellNode struct {
	id   int64
	cell Cell
}

func (n cellNode) ID() int64 { return n.id }

// DOTID names the node in DOT output.
func (n cellNode) DOTID() string {
	return fmt.Sprintf("r%dc%d", n.cell.Row, n.cell.Col)
}

// Attributes places the node the way the board is drawn: x grows with the
// column, y falls with the row.
func (n cellNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "pos", Value: fmt.Sprintf("%d,%d!", n.cell.Col, -n.cell.Row)},
	}
}

// Build creates one node per open cell and an edge between every pair of
// orthogonally adjacent open cells.
func Build(gr Grid) *Graph {
	g := &Graph{grid: gr, g: simple.NewUndirectedGraph()}

	for r := 0; r < gr.rows; r++ {
		for c := 0; c < gr.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if gr.IsOpen(cell) {
				g.g.AddNode(g.node(cell))
			}
		}
	}

	for r := 0; r < gr.rows; r++ {
		for c := 0; c < gr.cols; c++ {
			from := Cell{Row: r, Col: c}
			if !gr.IsOpen(from) {
				continue
			}
			for _, to := range []Cell{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
				if gr.IsOpen(to) {
					g.g.SetEdge(simple.Edge{F: g.node(from), T: g.node(to)})
				}
			}
		}
	}

	return g
}

// Grid returns the grid the graph was built from.
func (g *Graph) Grid() Grid { return g.grid }

func (g *Graph) node(c Cell) cellNode {
	return cellNode{id: int64(c.Row*g.grid.cols + c.Col), cell: c}
}

func (g *Graph) cellOf(id int64) Cell {
	return Cell{Row: int(id) / g.grid.cols, Col: int(id) % g.grid.cols}
}

// Has reports whether c is a node of the graph.
func (g *Graph) Has(c Cell) bool {
	return g.grid.InBound(c) && g.g.Node(g.node(c).id) != nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return g.g.Nodes().Len()
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.g.Edges().Len()
}

// Nodes returns the open cells in row-major order.
func (g *Graph) Nodes() []Cell {
	cells := make([]Cell, 0, g.Len())
	for _, n := range graph.NodesOf(g.g.Nodes()) {
		cells = append(cells, g.cellOf(n.ID()))
	}
	sortCells(cells)
	return cells
}

// Edges returns every edge once, ordered by its first cell.
func (g *Graph) Edges() [][2]Cell {
	var edges [][2]Cell
	for _, from := range g.Nodes() {
		for _, to := range []Cell{{Row: from.Row, Col: from.Col + 1}, {Row: from.Row + 1, Col: from.Col}} {
			if g.Has(to) && g.g.HasEdgeBetween(g.node(from).id, g.node(to).id) {
				edges = append(edges, [2]Cell{from, to})
			}
		}
	}
	return edges
}

// Neighbors returns the cells joined to c by an edge.
func (g *Graph) Neighbors(c Cell) []Cell {
	if !g.Has(c) {
		return nil
	}
	var cells []Cell
	for _, n := range graph.NodesOf(g.g.From(g.node(c).id)) {
		cells = append(cells, g.cellOf(n.ID()))
	}
	sortCells(cells)
	return cells
}

// Components returns the connected components of the graph, each sorted in
// row-major order and ordered by their first cell.
func (g *Graph) Components() [][]Cell {
	var comps [][]Cell
	for _, nodes := range topo.ConnectedComponents(g.g) {
		comp := make([]Cell, 0, len(nodes))
		for _, n := range nodes {
			comp = append(comp, g.cellOf(n.ID()))
		}
		sortCells(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool {
		return less(comps[i][0], comps[j][0])
	})
	return comps
}

// DOT encodes the graph in Graphviz format.
func (g *Graph) DOT() ([]byte, error) {
	return dot.Marshal(g.g, "board", "", "  ")
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return less(cells[i], cells[j]) })
}

func less(a, b Cell) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

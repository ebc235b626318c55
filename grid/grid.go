/*
Package grid turns an occupancy grid into a graph and answers shortest-path
queries over it.

A Grid holds open (0) and wall (1) markers. Build converts it into an
undirected graph whose nodes are the open cells and whose edges join
orthogonally adjacent open cells. FindPath runs A* with the Manhattan
heuristic over that graph.
*/
package grid

import (
	"errors"
	"fmt"
)

// Cell markers.
const (
	Open = 0
	Wall = 1
)

var (
	ErrInvalidGrid     = errors.New("invalid grid")
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// Grid is an immutable rectangular matrix of Open/Wall markers.
type Grid struct {
	rows  int
	cols  int
	cells [][]int
}

// New validates cells and returns a Grid holding a private copy of them.
func New(cells [][]int) (Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty", ErrInvalidGrid)
	}

	cols := len(cells[0])
	cp := make([][]int, len(cells))
	for r, row := range cells {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidGrid, r, len(row), cols)
		}
		for c, v := range row {
			if v != Open && v != Wall {
				return Grid{}, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidGrid, v, r, c)
			}
		}
		cp[r] = append([]int(nil), row...)
	}

	return Grid{rows: len(cells), cols: cols, cells: cp}, nil
}

// MustNew is New for static layouts; it panics on a malformed grid.
func MustNew(cells [][]int) Grid {
	g, err := New(cells)
	if err != nil {
		panic(err)
	}
	return g
}

// ReferenceBoard returns the 6x6 demo layout.
func ReferenceBoard() Grid {
	return MustNew([][]int{
		{0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0},
		{0, 1, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0},
		{0, 1, 0, 0, 0, 0},
	})
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }

// InBound reports whether c lies inside the grid.
func (g Grid) InBound(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsOpen reports whether c is inside the grid and not a wall.
func (g Grid) IsOpen(c Cell) bool {
	return g.InBound(c) && g.cells[c.Row][c.Col] == Open
}

// Cells returns a copy of the markers.
func (g Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = append([]int(nil), g.cells[r]...)
	}
	return out
}

// String provides an ASCII view of the grid, '#' for walls.
func (g Grid) String() string {
	var output string
	for _, row := range g.cells {
		for _, v := range row {
			if v == Wall {
				output += "#"
			} else {
				output += "."
			}
		}
		output += "\n"
	}
	return output
}

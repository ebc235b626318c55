package grid

import "fmt"

// Directions holds the four orthogonal steps between adjacent cells.
var Directions = map[string]Cell{
	"North": {Row: -1, Col: 0},
	"South": {Row: 1, Col: 0},
	"East":  {Row: 0, Col: 1},
	"West":  {Row: 0, Col: -1},
}

// Cell is a position on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the cell as (row,col).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o differ by exactly one step in a single axis.
func (c Cell) Adjacent(o Cell) bool {
	return manhattan(c, o) == 1
}

// Manhattan returns the grid distance between two cells. It is the A*
// heuristic for a 4-connected unit-cost grid.
func Manhattan(a, b Cell) float64 {
	return float64(manhattan(a, b))
}

func manhattan(a, b Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

/*
Package maze generates random boards.

Rooms are carved into a perfect maze with Wilson's algorithm (loop-erased
random walks), then projected onto an occupancy grid: rooms sit on even
coordinates, an opened passage frees the cell between two rooms and every
other cell is a wall. The resulting board is fully connected.
*/
package maze

import (
	"errors"
	"math/rand"

	"github.com/beka-birhanu/gridpath/grid"
)

const (
	maxMazeDimenssion = 20
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimensions")

	// steps is ordered so a seeded generator is reproducible.
	steps = []grid.Cell{
		grid.Directions["North"],
		grid.Directions["South"],
		grid.Directions["East"],
		grid.Directions["West"],
	}
)

// WilsonMaze is a rows x cols arrangement of rooms and the passages between them.
type WilsonMaze struct {
	Rows     int
	Cols     int
	passages map[[2]grid.Cell]struct{}
	rng      *rand.Rand
}

// Generate carves a rows x cols maze and returns it as a
// (2*rows-1) x (2*cols-1) occupancy grid.
func Generate(rows, cols int, rng *rand.Rand) (grid.Grid, error) {
	m, err := New(rows, cols, rng)
	if err != nil {
		return grid.Grid{}, err
	}
	return m.Grid(), nil
}

// New initializes a maze of the given dimensions and carves its passages.
func New(rows, cols int, rng *rand.Rand) (*WilsonMaze, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > maxMazeDimenssion {
		return nil, ErrInvalidDimension
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	m := &WilsonMaze{
		Rows:     rows,
		Cols:     cols,
		passages: make(map[[2]grid.Cell]struct{}),
		rng:      rng,
	}
	m.generateMaze()
	return m, nil
}

// randomRoom picks a random room.
func (m *WilsonMaze) randomRoom() grid.Cell {
	return grid.Cell{Row: m.rng.Intn(m.Rows), Col: m.rng.Intn(m.Cols)}
}

// randomUnvisitedRoom selects a random room that is not yet part of the maze.
func (m *WilsonMaze) randomUnvisitedRoom(visited map[grid.Cell]struct{}) grid.Cell {
	for {
		room := m.randomRoom()
		if _, included := visited[room]; !included {
			return room
		}
	}
}

// neighbors lists the rooms next to room.
func (m *WilsonMaze) neighbors(room grid.Cell) []grid.Cell {
	var result []grid.Cell
	for _, d := range steps {
		next := grid.Cell{Row: room.Row + d.Row, Col: room.Col + d.Col}
		if next.Row >= 0 && next.Row < m.Rows && next.Col >= 0 && next.Col < m.Cols {
			result = append(result, next)
		}
	}
	return result
}

// randomWalk walks from an unvisited room until it hits the maze. Each room
// keeps only its last exit, which erases the loops of the walk.
func (m *WilsonMaze) randomWalk(visited map[grid.Cell]struct{}) (grid.Cell, map[grid.Cell]grid.Cell) {
	start := m.randomUnvisitedRoom(visited)
	exits := make(map[grid.Cell]grid.Cell)
	room := start

	for {
		neighbors := m.neighbors(room)
		next := neighbors[m.rng.Intn(len(neighbors))]
		exits[room] = next
		if _, included := visited[next]; included {
			break
		}
		room = next
	}

	return start, exits
}

// generateMaze adds loop-erased walks until every room is connected.
func (m *WilsonMaze) generateMaze() {
	visited := map[grid.Cell]struct{}{m.randomRoom(): {}}

	for len(visited) < m.Rows*m.Cols {
		room, exits := m.randomWalk(visited)
		for {
			if _, included := visited[room]; included {
				break
			}
			next := exits[room]
			m.openPassage(room, next)
			visited[room] = struct{}{}
			room = next
		}
	}
}

func (m *WilsonMaze) openPassage(a, b grid.Cell) {
	m.passages[passageKey(a, b)] = struct{}{}
}

// HasPassage reports whether adjacent rooms a and b are connected.
func (m *WilsonMaze) HasPassage(a, b grid.Cell) bool {
	_, ok := m.passages[passageKey(a, b)]
	return ok
}

func passageKey(a, b grid.Cell) [2]grid.Cell {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return [2]grid.Cell{a, b}
}

// Grid projects the maze onto an occupancy grid.
func (m *WilsonMaze) Grid() grid.Grid {
	rows, cols := 2*m.Rows-1, 2*m.Cols-1
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			cells[r][c] = grid.Wall
		}
	}

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			room := grid.Cell{Row: r, Col: c}
			cells[2*r][2*c] = grid.Open
			if c+1 < m.Cols && m.HasPassage(room, grid.Cell{Row: r, Col: c + 1}) {
				cells[2*r][2*c+1] = grid.Open
			}
			if r+1 < m.Rows && m.HasPassage(room, grid.Cell{Row: r + 1, Col: c}) {
				cells[2*r+1][2*c] = grid.Open
			}
		}
	}

	return grid.MustNew(cells)
}

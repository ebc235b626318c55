package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("Valid grid", func(t *testing.T) {
		cells := [][]int{{0, 1}, {0, 0}}
		g, err := New(cells)
		assert.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
		assert.True(t, g.IsOpen(Cell{Row: 0, Col: 0}))
		assert.False(t, g.IsOpen(Cell{Row: 0, Col: 1}))

		// The grid keeps its own copy.
		cells[0][0] = Wall
		assert.True(t, g.IsOpen(Cell{Row: 0, Col: 0}))
	})

	t.Run("Empty grid", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrInvalidGrid)

		_, err = New([][]int{{}})
		assert.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Ragged grid", func(t *testing.T) {
		_, err := New([][]int{{0, 0}, {0}})
		assert.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Unknown marker", func(t *testing.T) {
		_, err := New([][]int{{0, 2}})
		assert.ErrorIs(t, err, ErrInvalidGrid)
	})
}

func TestGridBounds(t *testing.T) {
	g := ReferenceBoard()

	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 6, g.Cols())
	assert.False(t, g.InBound(Cell{Row: -1, Col: 0}))
	assert.False(t, g.InBound(Cell{Row: 0, Col: 6}))
	assert.False(t, g.IsOpen(Cell{Row: 6, Col: 6}))
	assert.Equal(t, "#", g.String()[1:2])
}

func TestCellsIsCopy(t *testing.T) {
	g := ReferenceBoard()
	cells := g.Cells()
	cells[0][0] = Wall
	assert.True(t, g.IsOpen(Cell{Row: 0, Col: 0}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 10.0, Manhattan(Cell{Row: 0, Col: 0}, Cell{Row: 5, Col: 5}))
	assert.Equal(t, 0.0, Manhattan(Cell{Row: 2, Col: 2}, Cell{Row: 2, Col: 2}))
	assert.True(t, Cell{Row: 1, Col: 1}.Adjacent(Cell{Row: 1, Col: 2}))
	assert.False(t, Cell{Row: 1, Col: 1}.Adjacent(Cell{Row: 2, Col: 2}))
	assert.Equal(t, "(2,3)", Cell{Row: 2, Col: 3}.String())
}

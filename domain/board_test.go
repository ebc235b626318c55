package domain

import (
	"testing"

	"github.com/beka-birhanu/gridpath/grid"
	"github.com/stretchr/testify/assert"
)

func TestNewBoard(t *testing.T) {
	t.Run("Valid board", func(t *testing.T) {
		cells := [][]int{{0, 1}, {0, 0}}
		b, err := NewBoard(BoardConfig{Name: "small_one", Cells: cells})
		assert.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, "small_one", b.Name)
		assert.Equal(t, cells, b.Cells)
		assert.False(t, b.CreatedAt.IsZero())

		g, err := b.Grid()
		assert.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
	})

	t.Run("Default name and given ID", func(t *testing.T) {
		b, err := NewBoard(BoardConfig{ID: "abc", Cells: [][]int{{0}}})
		assert.NoError(t, err)
		assert.Equal(t, "abc", b.ID)
		assert.Equal(t, defaultBoardName, b.Name)
	})

	t.Run("Invalid name", func(t *testing.T) {
		_, err := NewBoard(BoardConfig{Name: "no spaces", Cells: [][]int{{0}}})
		assert.ErrorIs(t, err, ErrInvalidBoardName)
	})

	t.Run("Oversized grid", func(t *testing.T) {
		cells := make([][]int, maxBoardDimension+1)
		for r := range cells {
			cells[r] = make([]int, 2)
		}
		_, err := NewBoard(BoardConfig{Name: "tall", Cells: cells})
		assert.ErrorIs(t, err, grid.ErrInvalidGrid)

		cells = cells[:maxBoardDimension]
		_, err = NewBoard(BoardConfig{Name: "tall", Cells: cells})
		assert.NoError(t, err)
	})

	t.Run("Invalid grid", func(t *testing.T) {
		_, err := NewBoard(BoardConfig{Name: "ragged", Cells: [][]int{{0, 0}, {0}}})
		assert.ErrorIs(t, err, grid.ErrInvalidGrid)
	})
}

func TestReferenceBoard(t *testing.T) {
	b := ReferenceBoard()
	assert.Equal(t, ReferenceBoardID, b.ID)

	g, err := b.Grid()
	assert.NoError(t, err)
	assert.Equal(t, grid.ReferenceBoard().Cells(), g.Cells())
}

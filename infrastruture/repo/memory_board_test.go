package repo

import (
	"context"
	"testing"

	dmn "github.com/beka-birhanu/gridpath/domain"
	"github.com/stretchr/testify/assert"
)

func TestMemoryBoardRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryBoardRepo()

	t.Run("Save and load", func(t *testing.T) {
		b, err := dmn.NewBoard(dmn.BoardConfig{Name: "tiny", Cells: [][]int{{0, 1}}})
		assert.NoError(t, err)
		assert.NoError(t, r.Save(ctx, b))

		got, err := r.ByID(ctx, b.ID)
		assert.NoError(t, err)
		assert.Equal(t, b.Name, got.Name)
		assert.Equal(t, b.Cells, got.Cells)

		// Stored boards are isolated from callers.
		got.Cells[0][0] = 1
		again, _ := r.ByID(ctx, b.ID)
		assert.Equal(t, 0, again.Cells[0][0])
	})

	t.Run("Missing board", func(t *testing.T) {
		_, err := r.ByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}

package session

import (
	"testing"

	"github.com/beka-birhanu/gridpath/grid"
	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	g := grid.Build(grid.ReferenceBoard())

	t.Run("Start then end resolves a path", func(t *testing.T) {
		s, err := Select(State{}, g, grid.Cell{Row: 0, Col: 0})
		assert.NoError(t, err)
		assert.Equal(t, StartPicked, s.Phase)
		assert.Equal(t, grid.Cell{Row: 0, Col: 0}, *s.Start)
		assert.Nil(t, s.End)

		s, err = Select(s, g, grid.Cell{Row: 3, Col: 3})
		assert.NoError(t, err)
		assert.Equal(t, Resolved, s.Phase)
		assert.Equal(t, grid.Cell{Row: 3, Col: 3}, *s.End)
		assert.Len(t, s.Path, 7)
		assert.Empty(t, s.Message)
	})

	t.Run("Same cell twice", func(t *testing.T) {
		s, _ := Select(State{}, g, grid.Cell{Row: 2, Col: 2})
		s, err := Select(s, g, grid.Cell{Row: 2, Col: 2})
		assert.NoError(t, err)
		assert.Equal(t, []grid.Cell{{Row: 2, Col: 2}}, s.Path)
	})

	t.Run("Wall as start stays idle", func(t *testing.T) {
		s, err := Select(State{}, g, grid.Cell{Row: 0, Col: 1})
		assert.ErrorIs(t, err, grid.ErrInvalidEndpoint)
		assert.Equal(t, Idle, s.Phase)
		assert.Nil(t, s.Start)
		assert.Equal(t, MsgInvalidCell, s.Message)
	})

	t.Run("Wall as end keeps the start", func(t *testing.T) {
		s, _ := Select(State{}, g, grid.Cell{Row: 0, Col: 0})
		s, err := Select(s, g, grid.Cell{Row: 4, Col: 4})
		assert.ErrorIs(t, err, grid.ErrInvalidEndpoint)
		assert.Equal(t, StartPicked, s.Phase)
		assert.Equal(t, grid.Cell{Row: 0, Col: 0}, *s.Start)
		assert.Equal(t, MsgInvalidCell, s.Message)

		// A valid end still works afterwards.
		s, err = Select(s, g, grid.Cell{Row: 5, Col: 5})
		assert.NoError(t, err)
		assert.Equal(t, Resolved, s.Phase)
		assert.Empty(t, s.Message)
	})

	t.Run("Resolved ignores selections", func(t *testing.T) {
		s, _ := Select(State{}, g, grid.Cell{Row: 0, Col: 0})
		s, _ = Select(s, g, grid.Cell{Row: 1, Col: 1})
		before := s

		s, err := Select(s, g, grid.Cell{Row: 5, Col: 5})
		assert.ErrorIs(t, err, ErrSessionResolved)
		assert.Equal(t, before, s)
	})
}

func TestSelectNoPath(t *testing.T) {
	g := grid.Build(grid.MustNew([][]int{
		{0, 1, 0},
		{0, 1, 0},
	}))

	s, _ := Select(State{}, g, grid.Cell{Row: 0, Col: 0})
	s, err := Select(s, g, grid.Cell{Row: 1, Col: 2})
	assert.NoError(t, err)
	assert.Equal(t, Resolved, s.Phase)
	assert.Nil(t, s.Path)
	assert.Equal(t, MsgNoPath, s.Message)
}

func TestReset(t *testing.T) {
	g := grid.Build(grid.ReferenceBoard())
	s, _ := Select(State{}, g, grid.Cell{Row: 0, Col: 0})
	s, _ = Select(s, g, grid.Cell{Row: 3, Col: 3})

	s = Reset(s)
	assert.Equal(t, State{}, s)
	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, "idle", s.Phase.String())
}

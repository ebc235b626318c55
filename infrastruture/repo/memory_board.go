package repo

import (
	"context"
	"sync"

	dmn "github.com/beka-birhanu/gridpath/domain"
)

// MemoryBoardRepo keeps boards in process memory.
type MemoryBoardRepo struct {
	boards map[string]dmn.Board
	sync.RWMutex
}

func NewMemoryBoardRepo() *MemoryBoardRepo {
	return &MemoryBoardRepo{boards: make(map[string]dmn.Board)}
}

// Save stores a copy of board.
func (m *MemoryBoardRepo) Save(_ context.Context, board *dmn.Board) error {
	m.Lock()
	defer m.Unlock()
	m.boards[board.ID] = copyBoard(*board)
	return nil
}

// ByID returns a copy of the stored board.
func (m *MemoryBoardRepo) ByID(_ context.Context, id string) (*dmn.Board, error) {
	m.RLock()
	defer m.RUnlock()
	board, ok := m.boards[id]
	if !ok {
		return nil, ErrBoardNotFound
	}
	cp := copyBoard(board)
	return &cp, nil
}

func copyBoard(b dmn.Board) dmn.Board {
	cells := make([][]int, len(b.Cells))
	for r := range b.Cells {
		cells[r] = append([]int(nil), b.Cells[r]...)
	}
	b.Cells = cells
	return b
}

package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/gridpath/domain"
)

// ErrBoardNotFound is reported by BoardRepo.ByID for an unknown ID.
var ErrBoardNotFound = errors.New("board not found")

// BoardRepo defines the interface for board persistence operations.
type BoardRepo interface {
	// Save inserts or updates a board in the repository.
	Save(ctx context.Context, board *dmn.Board) error

	// ByID retrieves a board by its unique ID.
	// Returns ErrBoardNotFound if the board is not found, or the underlying error.
	ByID(ctx context.Context, id string) (*dmn.Board, error)
}

package i

import (
	"context"
	"io"

	dmn "github.com/beka-birhanu/gridpath/domain"
	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
	"github.com/google/uuid"
)

// SessionManager owns board sessions and applies user events to them.
type SessionManager interface {
	CreateBoard(ctx context.Context, name string, cells [][]int) (*dmn.Board, error)
	GenerateBoard(ctx context.Context, name string, rows, cols int) (*dmn.Board, error)
	Board(ctx context.Context, id string) (*dmn.Board, error)

	// NewSession starts a session on a board and returns its bearer token.
	// An empty board ID selects the reference board.
	NewSession(ctx context.Context, boardID string) (*dmn.Session, string, error)
	State(ctx context.Context, id uuid.UUID) (session.State, error)
	Select(ctx context.Context, id uuid.UUID, cell grid.Cell) (session.State, error)
	Reset(ctx context.Context, id uuid.UUID) (session.State, error)
	Close(ctx context.Context, id uuid.UUID) error

	GraphDOT(ctx context.Context, id uuid.UUID) ([]byte, error)
	RenderBoard(ctx context.Context, id uuid.UUID, w io.Writer) error
	RenderGraph(ctx context.Context, id uuid.UUID, w io.Writer) error
}

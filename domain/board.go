package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/beka-birhanu/gridpath/grid"
	"github.com/google/uuid"
)

const (
	boardNamePattern   = `^[a-zA-Z0-9_-]+$` // Alphanumeric with underscores and dashes
	maxBoardNameLength = 40
	maxBoardDimension  = 40 // rows and columns; generated mazes reach 39

	defaultBoardName = "board"
	// ReferenceBoardID identifies the built-in demo layout.
	ReferenceBoardID = "reference"
)

var (
	boardNameRegex = regexp.MustCompile(boardNamePattern)

	ErrInvalidBoardName = errors.New("invalid board name")
	ErrBoardNameTooLong = errors.New("board name too long")
)

// Board represents the BSON version of a stored grid layout.
type Board struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Cells     [][]int   `bson:"cells" json:"cells"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// BoardConfig holds parameters for creating a Board.
type BoardConfig struct {
	ID    string
	Name  string
	Cells [][]int
}

// NewBoard validates the layout and returns a Board holding it.
func NewBoard(config BoardConfig) (*Board, error) {
	name := config.Name
	if name == "" {
		name = defaultBoardName
	}
	if err := validateBoardName(name); err != nil {
		return nil, err
	}

	g, err := grid.New(config.Cells)
	if err != nil {
		return nil, err
	}
	if g.Rows() > maxBoardDimension || g.Cols() > maxBoardDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", grid.ErrInvalidGrid, g.Rows(), g.Cols(), maxBoardDimension, maxBoardDimension)
	}

	id := config.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Board{
		ID:        id,
		Name:      name,
		Cells:     g.Cells(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ReferenceBoard returns the built-in demo board.
func ReferenceBoard() *Board {
	return &Board{
		ID:    ReferenceBoardID,
		Name:  ReferenceBoardID,
		Cells: grid.ReferenceBoard().Cells(),
	}
}

// Grid returns the board layout as a validated grid.
func (b *Board) Grid() (grid.Grid, error) {
	return grid.New(b.Cells)
}

// validateBoardName validates the board name.
func validateBoardName(name string) error {
	if len(name) > maxBoardNameLength {
		return ErrBoardNameTooLong
	}
	if !boardNameRegex.MatchString(name) {
		return ErrInvalidBoardName
	}
	return nil
}

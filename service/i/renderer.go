package i

import (
	"io"

	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
)

// Renderer draws a session as an image.
type Renderer interface {
	// Board draws the grid with the selected endpoints and path.
	Board(w io.Writer, g grid.Grid, s session.State) error

	// Graph draws the node/edge structure with the path highlighted.
	Graph(w io.Writer, g *grid.Graph, s session.State) error
}

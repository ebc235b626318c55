// Package session holds the selection state of one board session and the
// transitions driven by user events.
package session

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/gridpath/grid"
)

// Messages shown to the user alongside the board.
const (
	MsgNoPath      = "No path available"
	MsgInvalidCell = "Invalid cell"
)

var ErrSessionResolved = errors.New("session already resolved, reset to select again")

// Phase enumerates the selection states.
type Phase int

const (
	Idle Phase = iota
	StartPicked
	Resolved
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case StartPicked:
		return "start_picked"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the value threaded through every event. The zero value is Idle.
type State struct {
	Phase   Phase       `json:"phase"`
	Start   *grid.Cell  `json:"start,omitempty"`
	End     *grid.Cell  `json:"end,omitempty"`
	Path    []grid.Cell `json:"path,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Select applies a cell selection to s and returns the next state.
//
// The first selection fixes the start, the second fixes the end and runs the
// path query. Selections on a resolved state are rejected until Reset.
// A cell that is not open leaves the phase unchanged and reports
// grid.ErrInvalidEndpoint.
func Select(s State, g *grid.Graph, c grid.Cell) (State, error) {
	switch s.Phase {
	case Idle:
		if !g.Has(c) {
			s.Message = MsgInvalidCell
			return s, fmt.Errorf("%w: %s is not an open cell", grid.ErrInvalidEndpoint, c)
		}
		return State{Phase: StartPicked, Start: &c}, nil

	case StartPicked:
		res, err := grid.FindPath(g, *s.Start, c)
		if err != nil {
			s.Message = MsgInvalidCell
			return s, err
		}

		next := State{Phase: Resolved, Start: s.Start, End: &c}
		if res.Found {
			next.Path = res.Path
		} else {
			next.Message = MsgNoPath
		}
		return next, nil

	default:
		return s, ErrSessionResolved
	}
}

// Reset clears every selection.
func Reset(State) State {
	return State{}
}

// Package sessionapi provides request and response shapes for session endpoints.
package sessionapi

import (
	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
)

// NewSessionRequest picks the board of a new session; empty means the reference board.
type NewSessionRequest struct {
	BoardID string `json:"board_id"`
}

// SelectRequest is a click on a cell.
type SelectRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// StateResponse represents the selection state of a session.
type StateResponse struct {
	Phase   string      `json:"phase"`
	Start   *grid.Cell  `json:"start,omitempty"`
	End     *grid.Cell  `json:"end,omitempty"`
	Path    []grid.Cell `json:"path,omitempty"`
	Length  int         `json:"length,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SessionResponse is returned once, when a session starts.
type SessionResponse struct {
	ID      string         `json:"id"`
	BoardID string         `json:"board_id"`
	Token   string         `json:"token"`
	State   *StateResponse `json:"state"`
}

func toStateResponse(s session.State) *StateResponse {
	res := &StateResponse{
		Phase:   s.Phase.String(),
		Start:   s.Start,
		End:     s.End,
		Path:    s.Path,
		Message: s.Message,
	}
	if len(s.Path) > 0 {
		res.Length = len(s.Path) - 1
	}
	return res
}

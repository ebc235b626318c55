package domain

import (
	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/google/uuid"
)

// Session binds a board to one user's selection state.
type Session struct {
	ID      uuid.UUID     `json:"id"`
	BoardID string        `json:"board_id"`
	State   session.State `json:"state"`
}

package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/google/uuid"
)

// ErrStateNotFound is reported by StateStore.Load when a session has no
// stored state, including after it expired.
var ErrStateNotFound = errors.New("session state not found")

// StateStore persists session selection states.
type StateStore interface {
	// Save stores the state of a session, replacing any previous one.
	Save(ctx context.Context, id uuid.UUID, state session.State) error

	// Load returns the stored state of a session.
	// Returns ErrStateNotFound if the session has no stored state.
	Load(ctx context.Context, id uuid.UUID) (session.State, error)

	// Delete removes the state of a session.
	Delete(ctx context.Context, id uuid.UUID) error

	// Lock serializes events on a session. The returned func releases it.
	Lock(ctx context.Context, id uuid.UUID) (func(), error)
}

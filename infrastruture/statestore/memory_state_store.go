// Package statestore persists session selection states.
package statestore

import (
	"context"
	"sync"

	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/service/i"
	"github.com/google/uuid"
)

// ErrStateNotFound is returned by Load when a session has no stored state.
var ErrStateNotFound = i.ErrStateNotFound

// MemoryStateStore keeps states in process memory.
type MemoryStateStore struct {
	states map[uuid.UUID]session.State
	locks  map[uuid.UUID]*sync.Mutex
	mu     sync.RWMutex
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		states: make(map[uuid.UUID]session.State),
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

func (m *MemoryStateStore) Save(_ context.Context, id uuid.UUID, state session.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = state
	return nil
}

func (m *MemoryStateStore) Load(_ context.Context, id uuid.UUID) (session.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.states[id]
	if !ok {
		return session.State{}, ErrStateNotFound
	}
	return state, nil
}

func (m *MemoryStateStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	delete(m.locks, id)
	return nil
}

// Lock blocks until the session's mutex is held.
func (m *MemoryStateStore) Lock(_ context.Context, id uuid.UUID) (func(), error) {
	m.mu.Lock()
	lock, ok := m.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock, nil
}

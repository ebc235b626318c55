package statestore

import (
	"context"
	"sync"
	"testing"

	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStateStore()
	id := uuid.New()

	t.Run("Missing state", func(t *testing.T) {
		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, ErrStateNotFound)
	})

	t.Run("Save and load", func(t *testing.T) {
		start := grid.Cell{Row: 1, Col: 2}
		state := session.State{Phase: session.StartPicked, Start: &start}
		assert.NoError(t, store.Save(ctx, id, state))

		got, err := store.Load(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, state, got)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, id))
		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, ErrStateNotFound)
	})

	t.Run("Lock serializes updates", func(t *testing.T) {
		counter := 0
		var wg sync.WaitGroup
		for n := 0; n < 50; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := store.Lock(ctx, id)
				assert.NoError(t, err)
				defer unlock()
				counter++
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
	})
}

func TestRedisStateStoreKeys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	store := NewRedisStateStore(client, "", 60)
	id := uuid.MustParse("8f3c2a8e-5d0b-4d8e-9a33-0d4b1f6f2a11")

	assert.Equal(t, "gridpath:session:8f3c2a8e-5d0b-4d8e-9a33-0d4b1f6f2a11:state", store.stateKey(id))
	assert.Equal(t, "gridpath:session:8f3c2a8e-5d0b-4d8e-9a33-0d4b1f6f2a11:lock", store.lockKey(id))
}

package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "gridpath"
	stateKeyFmt   = "%s:session:%s:state"
	lockKeyFmt    = "%s:session:%s:lock"
)

// RedisStateStore keeps session states in Redis with TTL support and
// serializes events on a session with a redsync mutex.
type RedisStateStore struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisStateStore initializes a RedisStateStore with the provided Redis client and TTL.
func NewRedisStateStore(client *redis.Client, prefix string, ttlSeconds int) *RedisStateStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	store := &RedisStateStore{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store
}

// Save writes the state and refreshes its expiration.
func (r *RedisStateStore) Save(ctx context.Context, id uuid.UUID, state session.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.stateKey(id), payload, r.ttl).Err()
}

// Load reads the state of a session.
func (r *RedisStateStore) Load(ctx context.Context, id uuid.UUID) (session.State, error) {
	payload, err := r.client.Get(ctx, r.stateKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.State{}, ErrStateNotFound
		}
		return session.State{}, err
	}

	var state session.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return session.State{}, err
	}
	return state, nil
}

// Delete removes the state of a session.
func (r *RedisStateStore) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, r.stateKey(id)).Err()
}

// Lock obtains the session's distributed mutex.
func (r *RedisStateStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	mutex := r.locker.NewMutex(r.lockKey(id))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (r *RedisStateStore) stateKey(id uuid.UUID) string {
	return fmt.Sprintf(stateKeyFmt, r.prefix, id)
}

func (r *RedisStateStore) lockKey(id uuid.UUID) string {
	return fmt.Sprintf(lockKeyFmt, r.prefix, id)
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache persists poller state per table. Load returns (nil, nil) when no
// state has been saved yet.
type Cache interface {
	Load(ctx context.Context, tableNumber string) (*State, error)
	Save(ctx context.Context, tableNumber string, state *State) error
	Clear(ctx context.Context, tableNumber string) error
}

const cacheTTL = 24 * time.Hour

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func stateKey(tableNumber string) string {
	return fmt.Sprintf("notify:state:%s", tableNumber)
}

func (c *RedisCache) Load(ctx context.Context, tableNumber string) (*State, error) {
	raw, err := c.rdb.Get(ctx, stateKey(tableNumber)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *RedisCache) Save(ctx context.Context, tableNumber string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, stateKey(tableNumber), raw, cacheTTL).Err()
}

func (c *RedisCache) Clear(ctx context.Context, tableNumber string) error {
	return c.rdb.Del(ctx, stateKey(tableNumber)).Err()
}

var _ Cache = (*RedisCache)(nil)

// MemoryCache keeps state in-process. Useful for tests and single-binary
// deployments without Redis.
type MemoryCache struct {
	mu     sync.Mutex
	states map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{states: make(map[string][]byte)}
}

func (c *MemoryCache) Load(ctx context.Context, tableNumber string) (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.states[tableNumber]
	if !ok {
		return nil, nil
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *MemoryCache) Save(ctx context.Context, tableNumber string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[tableNumber] = raw
	return nil
}

func (c *MemoryCache) Clear(ctx context.Context, tableNumber string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, tableNumber)
	return nil
}

var _ Cache = (*MemoryCache)(nil)

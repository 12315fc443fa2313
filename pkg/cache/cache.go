// Package cache stores JSON objects under a key with an expiry, in Redis when
// it is configured and in process memory otherwise.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	// GetObject decodes the value of key into dest and reports whether it was found.
	GetObject(ctx context.Context, key string, dest interface{}) (bool, error)
	SetObject(ctx context.Context, key string, obj interface{}, exp time.Duration) error
	Remove(ctx context.Context, keys ...string) error
}

type redisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) Cache {
	return &redisCache{rdb}
}

func (c *redisCache) GetObject(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) SetObject(ctx context.Context, key string, obj interface{}, exp time.Duration) error {
	objInByte, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, objInByte, exp).Err()
}

func (c *redisCache) Remove(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() Cache {
	return &memoryCache{entries: map[string]memoryEntry{}, now: time.Now}
}

func (c *memoryCache) GetObject(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(e.value, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memoryCache) SetObject(_ context.Context, key string, obj interface{}, exp time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	e := memoryEntry{value: b}
	if exp > 0 {
		e.expiresAt = c.now().Add(exp)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Remove(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.mu.Unlock()
	return nil
}

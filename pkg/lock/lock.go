// Package lock provides the busy guard that keeps one long-running operation
// (save, bulk import, scan) per resource at a time.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var ErrBusy = errors.New("operation already in progress")

// Guard hands out exclusive, expiring claims on a key.
type Guard interface {
	// Acquire claims key or returns ErrBusy. The returned func releases it.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type memoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryGuard is a process-local guard.
func NewMemoryGuard() Guard {
	return &memoryGuard{held: map[string]struct{}{}}
}

func (g *memoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return nil, ErrBusy
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}

type redisGuard struct {
	locker *redislock.Client
	ttl    time.Duration
}

// NewRedisGuard shares claims across gateway replicas. A claim expires after
// ttl if its holder dies.
func NewRedisGuard(rdb *redis.Client, ttl time.Duration) Guard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisGuard{locker: redislock.New(rdb), ttl: ttl}
}

func (g *redisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	l, err := g.locker.Obtain(ctx, "busy:"+key, g.ttl, nil)
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, ErrBusy
		}
		return nil, err
	}
	return func() {
		_ = l.Release(context.Background())
	}, nil
}

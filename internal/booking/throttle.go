package booking

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ThrottleStore remembers when each form instance last had a submission
// accepted.  A zero time means the instance has never been accepted.
type ThrottleStore interface {
	LastAccepted(ctx context.Context, key string) (time.Time, error)
	MarkAccepted(ctx context.Context, key string, at time.Time) error
}

// MemoryThrottle keeps acceptance timestamps in process memory.
type MemoryThrottle struct {
	mu   sync.Mutex
	last map[string]time.Time
}

// NewMemoryThrottle returns an empty in-memory store.
func NewMemoryThrottle() *MemoryThrottle {
	return &MemoryThrottle{last: make(map[string]time.Time)}
}

func (m *MemoryThrottle) LastAccepted(_ context.Context, key string) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last[key], nil
}

func (m *MemoryThrottle) MarkAccepted(_ context.Context, key string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last[key] = at
	return nil
}

// Forget drops the timestamp of a torn-down form instance.
func (m *MemoryThrottle) Forget(key string) {
	m.mu.Lock()
	delete(m.last, key)
	m.mu.Unlock()
}

// RedisThrottle stores acceptance timestamps in Redis as unix milliseconds.
// Keys expire after the throttle window, after which the instance counts as
// never accepted again.
type RedisThrottle struct {
	rdb    *redis.Client
	prefix string
	window time.Duration
}

// NewRedisThrottle returns a Redis-backed store.  Prefix namespaces the keys.
func NewRedisThrottle(rdb *redis.Client, prefix string, window time.Duration) *RedisThrottle {
	if prefix == "" {
		prefix = "throttle"
	}
	return &RedisThrottle{rdb: rdb, prefix: prefix, window: window}
}

func (r *RedisThrottle) key(k string) string { return r.prefix + ":" + k }

func (r *RedisThrottle) LastAccepted(ctx context.Context, key string) (time.Time, error) {
	s, err := r.rdb.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

func (r *RedisThrottle) MarkAccepted(ctx context.Context, key string, at time.Time) error {
	return r.rdb.Set(ctx, r.key(key), at.UnixMilli(), r.window).Err()
}

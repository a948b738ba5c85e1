package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryThrottle(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryThrottle()

	last, err := m.LastAccepted(ctx, "a")
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	at := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, m.MarkAccepted(ctx, "a", at))
	last, _ = m.LastAccepted(ctx, "a")
	assert.Equal(t, at, last)

	m.Forget("a")
	last, _ = m.LastAccepted(ctx, "a")
	assert.True(t, last.IsZero())
}

func TestRedisThrottle(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	r := NewRedisThrottle(rdb, "pb:throttle", 10*time.Second)

	last, err := r.LastAccepted(ctx, "inst")
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	at := time.UnixMilli(time.Now().UnixMilli())
	require.NoError(t, r.MarkAccepted(ctx, "inst", at))
	assert.True(t, mr.Exists("pb:throttle:inst"))

	last, err = r.LastAccepted(ctx, "inst")
	require.NoError(t, err)
	assert.True(t, at.Equal(last))

	// the key lives for one window only
	mr.FastForward(11 * time.Second)
	last, err = r.LastAccepted(ctx, "inst")
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}

func TestGuard_WithRedisThrottle(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	clock := &fakeClock{t: time.UnixMilli(time.Now().UnixMilli())}
	g := NewGuard(DefaultThrottleWindow, NewRedisThrottle(rdb, "", DefaultThrottleWindow), nil, newTestLogger(t))
	g.Now = clock.Now
	ctx := context.Background()

	g.Accept(ctx, Acceptance{InstanceID: "inst", AcceptedAt: clock.Now()})
	clock.Advance(5 * time.Second)
	outcome, _ := g.Check(ctx, "inst", validForm(), clock.Now())
	assert.Equal(t, OutcomeThrottled, outcome)
}

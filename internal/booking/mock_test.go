package booking

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/mock"
)

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) EnquiryAccepted(ctx context.Context, a Acceptance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type mockThrottle struct{ mock.Mock }

func (m *mockThrottle) LastAccepted(ctx context.Context, key string) (time.Time, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *mockThrottle) MarkAccepted(ctx context.Context, key string, at time.Time) error {
	args := m.Called(ctx, key, at)
	return args.Error(0)
}

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

// fakeClock is advanced by hand in tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGuard(t *testing.T, clock *fakeClock, n Notifier) *Guard {
	t.Helper()
	g := NewGuard(DefaultThrottleWindow, NewMemoryThrottle(), n, newTestLogger(t))
	g.Now = clock.Now
	return g
}

package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lasttx/willkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) (*MemoryScheduler, context.Context) {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	s := NewMemoryScheduler(logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return s, ctx
}

type recorder struct {
	mu    sync.Mutex
	keys  []string
	calls atomic.Int32
}

func (r *recorder) handler(_ context.Context, key, _ string) {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.mu.Unlock()
	r.calls.Add(1)
}

func (r *recorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func TestMemoryScheduler_FiresInOrder(t *testing.T) {
	t.Parallel()
	s, ctx := newTestScheduler(t)
	rec := &recorder{}
	go s.Run(ctx, rec.handler)

	now := time.Now()
	_, err := s.Schedule(ctx, "w1", now.Add(60*time.Millisecond), "expire")
	require.NoError(t, err)
	_, err = s.Schedule(ctx, "w2", now.Add(20*time.Millisecond), "expire")
	require.NoError(t, err)
	_, err = s.Schedule(ctx, "w3", now.Add(100*time.Millisecond), "expire")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return rec.calls.Load() == 3 }, time.Second, 10*time.Millisecond)
	require.Equal(t, []string{"w2", "w1", "w3"}, rec.recorded())
	require.Zero(t, s.Pending())
}

func TestMemoryScheduler_ScheduleReplacesSameKey(t *testing.T) {
	t.Parallel()
	s, ctx := newTestScheduler(t)
	rec := &recorder{}
	go s.Run(ctx, rec.handler)

	now := time.Now()
	_, err := s.Schedule(ctx, "w1", now.Add(20*time.Millisecond), "expire")
	require.NoError(t, err)
	// Replacement pushes the fire time out; the first registration must not fire.
	_, err = s.Schedule(ctx, "w1", now.Add(80*time.Millisecond), "expire")
	require.NoError(t, err)
	require.Equal(t, 1, s.Pending())

	require.Eventually(t, func() bool { return rec.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(1), rec.calls.Load(), "replaced registration must not fire")
}

func TestMemoryScheduler_CancelPreventsFire(t *testing.T) {
	t.Parallel()
	s, ctx := newTestScheduler(t)
	rec := &recorder{}
	go s.Run(ctx, rec.handler)

	token, err := s.Schedule(ctx, "w1", time.Now().Add(30*time.Millisecond), "expire")
	require.NoError(t, err)
	require.NoError(t, s.Cancel(ctx, token))
	require.Zero(t, s.Pending())

	time.Sleep(80 * time.Millisecond)
	require.Zero(t, rec.calls.Load())
}

func TestMemoryScheduler_CancelIdempotent(t *testing.T) {
	t.Parallel()
	s, ctx := newTestScheduler(t)
	rec := &recorder{}
	go s.Run(ctx, rec.handler)

	token, err := s.Schedule(ctx, "w1", time.Now().Add(10*time.Millisecond), "expire")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return rec.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// Already fired.
	require.NoError(t, s.Cancel(ctx, token))
	// Never existed.
	require.NoError(t, s.Cancel(ctx, "no-such-token"))
}

func TestMemoryScheduler_PastFireTimeFiresImmediately(t *testing.T) {
	t.Parallel()
	s, ctx := newTestScheduler(t)
	rec := &recorder{}
	go s.Run(ctx, rec.handler)

	_, err := s.Schedule(ctx, "w1", time.Now().Add(-time.Second), "expire")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return rec.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMemoryScheduler_StopsOnContextCancel(t *testing.T) {
	t.Parallel()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	s := NewMemoryScheduler(logger)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx, func(context.Context, string, string) {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lasttx/willkeeper/internal/logging"
)

type entry struct {
	key       string
	token     string
	fireAt    time.Time
	payload   string
	seq       int64
	cancelled bool
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].fireAt.Equal(h[j].fireAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].fireAt.Before(h[j].fireAt)
}
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)        { *h = append(*h, x.(*entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// MemoryScheduler is an in-process Scheduler backed by a min-heap and a
// single dispatch goroutine. Replaced and cancelled registrations stay in the
// heap but are skipped when they surface.
//
// Registrations do not survive process restarts; the engine re-arms them from
// the store on startup.
type MemoryScheduler struct {
	mu      sync.Mutex
	heap    entryHeap
	byKey   map[string]*entry
	byToken map[string]*entry
	wake    chan struct{}
	seq     int64

	logger  logging.Logger
	nowFunc func() time.Time
}

func NewMemoryScheduler(logger logging.Logger) *MemoryScheduler {
	return &MemoryScheduler{
		byKey:   make(map[string]*entry),
		byToken: make(map[string]*entry),
		wake:    make(chan struct{}, 1),
		logger:  logger.With("module", "memory_scheduler"),
		nowFunc: time.Now,
	}
}

// Schedule registers a one-shot action. Any pending registration under the
// same key is replaced atomically with respect to the dispatch loop.
func (s *MemoryScheduler) Schedule(ctx context.Context, key string, fireAt time.Time, payload string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byKey[key]; ok {
		prev.cancelled = true
		delete(s.byToken, prev.token)
	}

	s.seq++
	e := &entry{
		key:     key,
		token:   uuid.New().String(),
		fireAt:  fireAt,
		payload: payload,
		seq:     s.seq,
	}
	s.byKey[key] = e
	s.byToken[e.token] = e
	heap.Push(&s.heap, e)

	s.notify()
	return e.token, nil
}

// Cancel drops the registration identified by token, if it is still pending.
func (s *MemoryScheduler) Cancel(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byToken[token]
	if !ok {
		return nil
	}
	e.cancelled = true
	delete(s.byToken, token)
	if cur, ok := s.byKey[e.key]; ok && cur == e {
		delete(s.byKey, e.key)
	}
	return nil
}

func (s *MemoryScheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run drives the dispatch loop until ctx is cancelled, invoking handler for
// every due registration. Each invocation runs in its own goroutine so a slow
// handler cannot delay later fires.
func (s *MemoryScheduler) Run(ctx context.Context, handler Handler) {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		next := s.dispatchDue(ctx, handler)

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		if next != nil {
			timer.Reset(time.Until(*next))
		} else {
			timer.Reset(time.Hour)
		}

		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "scheduler stopped")
			return
		case <-s.wake:
		case <-timer.C:
		}
	}
}

// dispatchDue fires every entry whose time has come and returns the fire time
// of the earliest remaining entry, or nil when the heap is empty.
func (s *MemoryScheduler) dispatchDue(ctx context.Context, handler Handler) *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	for s.heap.Len() > 0 {
		e := s.heap[0]
		if e.cancelled {
			heap.Pop(&s.heap)
			continue
		}
		if e.fireAt.After(now) {
			next := e.fireAt
			return &next
		}
		heap.Pop(&s.heap)
		delete(s.byToken, e.token)
		if cur, ok := s.byKey[e.key]; ok && cur == e {
			delete(s.byKey, e.key)
		}
		s.logger.Debug(ctx, "firing", "key", e.key, "fire_at", e.fireAt)
		go handler(ctx, e.key, e.payload)
	}
	return nil
}

// Pending returns the number of live registrations. Test helper.
func (s *MemoryScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byToken)
}

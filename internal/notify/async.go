package notify

import (
	"context"
	"sync"

	"github.com/lasttx/willkeeper/internal/logging"
)

type notification struct {
	recipient string
	kind      EventKind
	details   map[string]string
}

// AsyncDispatcher queues notifications to a single worker goroutine so
// lifecycle transitions never wait on delivery. When the queue is full the
// notification is dropped and logged; the caller is never blocked or failed.
type AsyncDispatcher struct {
	sender Sender
	logger logging.Logger
	queue  chan notification

	wg       sync.WaitGroup
	stopOnce sync.Once

	sent    int64
	failed  int64
	dropped int64
	mu      sync.Mutex
}

func NewAsyncDispatcher(sender Sender, queueSize int, logger logging.Logger) *AsyncDispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &AsyncDispatcher{
		sender: sender,
		logger: logger.With("module", "notify"),
		queue:  make(chan notification, queueSize),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// Notify enqueues a notification for delivery. It never blocks.
func (d *AsyncDispatcher) Notify(ctx context.Context, recipient string, kind EventKind, details map[string]string) {
	select {
	case d.queue <- notification{recipient: recipient, kind: kind, details: details}:
	default:
		d.mu.Lock()
		d.dropped++
		d.mu.Unlock()
		d.logger.Warn(ctx, "notification queue full, dropping", "recipient", recipient, "kind", string(kind))
	}
}

func (d *AsyncDispatcher) worker() {
	defer d.wg.Done()
	ctx := context.Background()
	for n := range d.queue {
		err := d.sender.Send(ctx, n.recipient, n.kind, n.details)
		d.mu.Lock()
		if err != nil {
			d.failed++
		} else {
			d.sent++
		}
		d.mu.Unlock()
		if err != nil {
			d.logger.Error(ctx, "notification delivery failed", "recipient", n.recipient, "kind", string(n.kind), "error", err.Error())
		} else {
			d.logger.Debug(ctx, "notification delivered", "recipient", n.recipient, "kind", string(n.kind))
		}
	}
}

// Close drains the queue and stops the worker.
func (d *AsyncDispatcher) Close() {
	d.stopOnce.Do(func() { close(d.queue) })
	d.wg.Wait()
}

// Stats reports delivery counters since start.
func (d *AsyncDispatcher) Stats() (sent, failed, dropped int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sent, d.failed, d.dropped
}

// LogSender writes notifications to the structured log. It stands in for an
// outbound email/webhook integration, which is a deployment concern.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger.With("module", "log_sender")}
}

func (s *LogSender) Send(ctx context.Context, recipient string, kind EventKind, details map[string]string) error {
	args := []any{"recipient", recipient, "kind", string(kind)}
	for k, v := range details {
		args = append(args, k, v)
	}
	s.logger.Info(ctx, "notification", args...)
	return nil
}

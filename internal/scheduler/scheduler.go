// Package scheduler provides the one-shot timer abstraction the lifecycle
// engine arms will expiries with: run an action at time T, identified by key
// K, replacing any prior action under the same key.
package scheduler

import (
	"context"
	"time"
)

// Handler is invoked with the registration's key and payload at or after its
// fire time. Delivery is at-least-once; handlers must tolerate stale and
// duplicate invocations.
type Handler func(ctx context.Context, key, payload string)

// Scheduler registers one-shot actions.
//
// Schedule replaces any pending registration under the same key and returns
// an opaque token for the new one. Cancel is idempotent: cancelling a token
// that already fired, was replaced, or never existed is not an error.
type Scheduler interface {
	Schedule(ctx context.Context, key string, fireAt time.Time, payload string) (string, error)
	Cancel(ctx context.Context, token string) error
}

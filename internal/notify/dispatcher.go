// Package notify delivers user-facing messages about will lifecycle events.
// Delivery is best effort: the engine never blocks on it and never acts on
// its failures.
package notify

import "context"

// EventKind identifies the lifecycle event being communicated.
type EventKind string

const (
	EventWillCreated        EventKind = "will-created"
	EventWillExpiringSoon   EventKind = "will-expiring-soon"
	EventWillExpired        EventKind = "will-expired"
	EventInheritanceClaimed EventKind = "inheritance-claimed"
)

// Dispatcher accepts notifications for asynchronous delivery.
type Dispatcher interface {
	Notify(ctx context.Context, recipient string, kind EventKind, details map[string]string)
}

// Sender performs the actual delivery of a single notification (email,
// webhook, ...). Implementations may fail; the dispatcher logs and moves on.
type Sender interface {
	Send(ctx context.Context, recipient string, kind EventKind, details map[string]string) error
}

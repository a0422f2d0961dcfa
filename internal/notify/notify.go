// Package notify carries state-change events from the sessions and the
// slideshow engine to whoever renders them. Implementations range from
// in-process callbacks to an AMQP fan-out for remote display shells.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event kinds emitted by the core.
const (
	KindAuthCode   = "auth.code"
	KindAuthReady  = "auth.ready"
	KindAuthError  = "auth.error"
	KindFeedSynced = "feed.synced"
	KindLogout     = "logout"
	KindSlide      = "slide.advanced"
)

type Event struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Source    string            `json:"source"`
	Detail    map[string]string `json:"detail,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(kind, source string, detail map[string]string) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Source:    source,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
	Close() error
}

// Func adapts a plain function into a Notifier, for in-process observers
// such as a shell re-render trigger.
type Func func(ctx context.Context, event Event) error

func (f Func) Notify(ctx context.Context, event Event) error { return f(ctx, event) }

func (f Func) Close() error { return nil }

// Multi fans an event out to several notifiers, returning the first
// error after delivering to all of them.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event Event) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m Multi) Close() error {
	var first error
	for _, n := range m {
		if err := n.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

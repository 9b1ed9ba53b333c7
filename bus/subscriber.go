package bus

import (
	"context"

	"github.com/dshills/newsbus/news"
)

// Subscriber is the receive-event contract. A subscriber's identity is its
// interface value: registering the same value under several topics makes it
// one recipient for de-duplication purposes, so implementations must have a
// comparable dynamic type (a pointer receiver is the usual choice).
//
// Notify is invoked on a pool worker, concurrently with other deliveries.
// A returned error or panic is contained and reported out-of-band; it never
// reaches the dispatcher or other subscribers.
type Subscriber interface {
	Notify(ctx context.Context, ev news.Event) error
}

// funcSubscriber adapts a plain function to the Subscriber interface.
type funcSubscriber struct {
	fn func(ctx context.Context, ev news.Event) error
}

// SubscriberFunc wraps fn as a Subscriber. Each call produces a distinct
// subscriber identity, even for the same fn.
func SubscriberFunc(fn func(ctx context.Context, ev news.Event) error) Subscriber {
	return &funcSubscriber{fn: fn}
}

// Notify implements the Subscriber interface.
func (s *funcSubscriber) Notify(ctx context.Context, ev news.Event) error {
	return s.fn(ctx, ev)
}

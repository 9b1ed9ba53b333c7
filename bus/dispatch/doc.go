// Package dispatch provides the delivery engine for the event channel.
//
// Deliveries run on a bounded worker pool: each notified subscriber's
// callback executes as an independently scheduled unit of work, concurrently
// with respect to the dispatcher and to other recipients of the same event.
// The pool is the explicit, bounded replacement for spawning one goroutine
// per notification, and it preserves the contract that matters: delivery
// never blocks the dispatcher, and a failing or panicking subscriber affects
// nobody but itself.
//
// # Panic Recovery
//
// The executor recovers from panics in subscriber callbacks so a misbehaving
// subscriber cannot take down the channel or starve other subscribers.
// Panics and returned errors are reported out-of-band via configurable
// PanicHandler and ErrorHandler callbacks; they are never propagated back to
// the publisher.
//
// # Context Support
//
// Delivery respects context cancellation and deadlines. A task whose context
// is already cancelled is skipped; a subscriber that honors its context is
// cut off at the configured per-delivery timeout.
package dispatch

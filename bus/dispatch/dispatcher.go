package dispatch

import (
	"context"
	"time"

	"github.com/dshills/newsbus/news"
)

// Handler receives one event delivery. This mirrors the channel's Subscriber
// interface so the bus package can hand its subscribers straight to the pool
// without a circular import.
type Handler interface {
	Notify(ctx context.Context, ev news.Event) error
}

// Result represents the outcome of a single delivery.
type Result struct {
	// Success is true if the handler completed without error or panic.
	Success bool

	// Error is the error returned by the handler, if any.
	Error error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took to execute.
	Duration time.Duration

	// Skipped is true if the handler was not executed (context cancelled).
	Skipped bool
}

// IsSuccess returns true if the result indicates successful delivery.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// IsError returns true if the handler returned an error (not a panic).
func (r Result) IsError() bool {
	return r.Error != nil && !r.Panicked
}

// IsPanic returns true if the handler panicked.
func (r Result) IsPanic() bool {
	return r.Panicked
}

// PanicHandler is called when a subscriber panics during delivery.
// It receives the event being delivered, the panic value, and the stack
// trace.
type PanicHandler func(ev news.Event, panicValue any, stack []byte)

// ErrorHandler is called when a subscriber returns an error from a delivery.
type ErrorHandler func(ev news.Event, err error)

// defaultPanicHandler is a no-op; the channel installs one that logs.
func defaultPanicHandler(ev news.Event, panicValue any, stack []byte) {}

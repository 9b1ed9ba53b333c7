package dispatch

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/dshills/newsbus/news"
)

// Executor runs a single delivery with panic recovery and timing.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets the panic handler for the executor.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		if h != nil {
			e.panicHandler = h
		}
	}
}

// Execute delivers the event to the handler and returns the result.
// It recovers from panics and captures timing information.
func (e *Executor) Execute(ctx context.Context, ev news.Event, handler Handler) (result Result) {
	// Check context before starting
	select {
	case <-ctx.Done():
		return Result{
			Success: false,
			Error:   ctx.Err(),
			Skipped: true,
		}
	default:
	}

	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Success = false
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack

			// A panicking panic handler must not crash the process.
			func() {
				defer func() { _ = recover() }()
				e.panicHandler(ev, r, stack)
			}()
		}
	}()

	if err := handler.Notify(ctx, ev); err != nil {
		result.Success = false
		result.Error = err
	} else {
		result.Success = true
	}

	return result
}

// ExecuteWithTimeout delivers with a per-delivery timeout. The handler must
// respect context cancellation for the timeout to be effective.
func (e *Executor) ExecuteWithTimeout(ctx context.Context, ev news.Event, handler Handler, timeout time.Duration) Result {
	if timeout <= 0 {
		return e.Execute(ctx, ev, handler)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return e.Execute(ctx, ev, handler)
}

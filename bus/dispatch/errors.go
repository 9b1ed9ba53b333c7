package dispatch

import "errors"

// Sentinel errors for the dispatch package.
var (
	// ErrAlreadyRunning is returned when Start is called on a running pool.
	ErrAlreadyRunning = errors.New("dispatch pool is already running")

	// ErrNotRunning is returned when operations are attempted on a stopped pool.
	ErrNotRunning = errors.New("dispatch pool is not running")

	// ErrQueueFull is returned when the delivery queue is at capacity.
	ErrQueueFull = errors.New("delivery queue is full")
)

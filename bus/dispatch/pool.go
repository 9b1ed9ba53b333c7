package dispatch

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/newsbus/news"
)

// Pool delivers events to subscribers using a fixed set of workers over a
// bounded queue. Enqueueing never blocks: when the queue is full the
// delivery is dropped and reported, rather than back-pressuring the
// dispatcher.
type Pool struct {
	// Configuration
	queueSize   int
	workerCount int
	timeout     time.Duration

	// State
	mu      sync.Mutex // protects queue creation/destruction
	queue   chan task
	running atomic.Bool
	wg      sync.WaitGroup

	// Out-of-band failure reporting
	panicHandler PanicHandler
	errorHandler ErrorHandler

	// Stats
	enqueued    atomic.Uint64
	processed   atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	dropped     atomic.Uint64
	timedOut    atomic.Uint64
	totalTimeNs atomic.Int64
}

// task is one pending delivery.
type task struct {
	ctx     context.Context
	ev      news.Event
	handler Handler
	timeout time.Duration
}

// NewPool creates a delivery pool with the given options.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		queueSize:    1024,
		workerCount:  8,
		timeout:      0, // no per-delivery timeout by default
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithQueueSize sets the delivery queue capacity.
func WithQueueSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of delivery workers.
func WithWorkerCount(count int) PoolOption {
	return func(p *Pool) {
		if count > 0 {
			p.workerCount = count
		}
	}
}

// WithDeliveryTimeout sets the per-delivery timeout. Zero means none.
func WithDeliveryTimeout(timeout time.Duration) PoolOption {
	return func(p *Pool) {
		p.timeout = timeout
	}
}

// WithPoolPanicHandler sets the panic handler for deliveries.
func WithPoolPanicHandler(h PanicHandler) PoolOption {
	return func(p *Pool) {
		if h != nil {
			p.panicHandler = h
		}
	}
}

// WithPoolErrorHandler sets the handler for subscriber errors.
func WithPoolErrorHandler(h ErrorHandler) PoolOption {
	return func(p *Pool) {
		p.errorHandler = h
	}
}

// Start starts the workers.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return ErrAlreadyRunning
	}

	p.queue = make(chan task, p.queueSize)
	p.running.Store(true)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return nil
}

// Stop stops the pool gracefully. It waits for all queued deliveries to
// complete or until the context is cancelled.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running.Load() {
		p.mu.Unlock()
		return ErrNotRunning
	}

	p.running.Store(false)
	// Closing the queue signals workers to drain and exit.
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning returns true if the pool is running.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Enqueue schedules a delivery. Returns ErrQueueFull if the queue is at
// capacity; the delivery is then dropped, never blocked on.
func (p *Pool) Enqueue(ctx context.Context, ev news.Event, handler Handler) error {
	// The running check and the send must sit under the same lock Stop uses,
	// or Enqueue could race Stop and send on the closed queue.
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.Load() {
		return ErrNotRunning
	}

	t := task{
		ctx:     ctx,
		ev:      ev,
		handler: handler,
		timeout: p.timeout,
	}

	select {
	case p.queue <- t:
		p.enqueued.Add(1)
		return nil
	default:
		p.dropped.Add(1)
		return ErrQueueFull
	}
}

// worker processes deliveries from the queue until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	executor := NewExecutor(WithExecutorPanicHandler(p.panicHandler))

	for t := range p.queue {
		p.deliver(executor, t)
	}
}

// deliver runs a single delivery and records its outcome.
func (p *Pool) deliver(executor *Executor, t task) {
	p.processed.Add(1)
	start := time.Now()

	// Tracks whether the executor completed; a panic that escapes it
	// (should not happen) is still counted exactly once.
	var executorHandled bool

	defer func() {
		if r := recover(); r != nil {
			if !executorHandled {
				p.panicked.Add(1)
			}
			func() {
				defer func() { _ = recover() }()
				p.panicHandler(t.ev, r, debug.Stack())
			}()
		}
		p.totalTimeNs.Add(time.Since(start).Nanoseconds())
	}()

	select {
	case <-t.ctx.Done():
		p.failed.Add(1)
		return
	default:
	}

	var result Result
	if t.timeout > 0 {
		result = executor.ExecuteWithTimeout(t.ctx, t.ev, t.handler, t.timeout)
	} else {
		result = executor.Execute(t.ctx, t.ev, t.handler)
	}
	executorHandled = true

	switch {
	case result.Skipped:
		p.failed.Add(1)
	case result.Panicked:
		p.panicked.Add(1)
	case result.Error != nil:
		if result.Error == context.DeadlineExceeded {
			p.timedOut.Add(1)
		}
		p.failed.Add(1)
		if p.errorHandler != nil {
			p.errorHandler(t.ev, result.Error)
		}
	case result.Success:
		p.succeeded.Add(1)
	}
}

// QueueDepth returns the current number of pending deliveries.
// Returns 0 if the pool is not running.
func (p *Pool) QueueDepth() int {
	if !p.running.Load() {
		return 0
	}
	// Queue is guaranteed to exist when running is true
	return len(p.queue)
}

// Stats returns pool statistics.
func (p *Pool) Stats() PoolStats {
	processed := p.processed.Load()
	totalNs := p.totalTimeNs.Load()

	var avgNs int64
	if processed > 0 {
		avgNs = totalNs / int64(processed)
	}

	return PoolStats{
		Enqueued:      p.enqueued.Load(),
		Processed:     processed,
		Succeeded:     p.succeeded.Load(),
		Failed:        p.failed.Load(),
		Panicked:      p.panicked.Load(),
		Dropped:       p.dropped.Load(),
		TimedOut:      p.timedOut.Load(),
		QueueDepth:    p.QueueDepth(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// PoolStats contains statistics for a delivery pool.
type PoolStats struct {
	// Enqueued is the total number of deliveries accepted onto the queue.
	Enqueued uint64

	// Processed is the number of deliveries taken off the queue.
	Processed uint64

	// Succeeded is the number of deliveries that completed cleanly.
	Succeeded uint64

	// Failed is the number of deliveries that errored or were skipped.
	Failed uint64

	// Panicked is the number of subscriber panics recovered.
	Panicked uint64

	// Dropped is the number of deliveries rejected because the queue was full.
	Dropped uint64

	// TimedOut is the number of deliveries cut off at the delivery timeout.
	TimedOut uint64

	// QueueDepth is the current number of pending deliveries.
	QueueDepth int

	// TotalDuration is the cumulative time spent in subscriber callbacks.
	TotalDuration time.Duration

	// AvgDuration is the average delivery time.
	AvgDuration time.Duration
}

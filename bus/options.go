package bus

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Channel.
type Option func(*config)

// config contains configuration for the channel.
type config struct {
	// queueSize is the capacity of the delivery queue.
	queueSize int

	// workerCount is the number of delivery workers.
	workerCount int

	// deliveryTimeout is the per-delivery timeout. Zero means none.
	deliveryTimeout time.Duration

	// logger receives delivery failures and recovered panics.
	logger *zap.Logger
}

// defaultConfig returns sensible default configuration.
func defaultConfig() config {
	return config{
		queueSize:   1024,
		workerCount: 8,
		logger:      zap.NewNop(),
	}
}

// WithQueueSize sets the delivery queue capacity.
func WithQueueSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of delivery workers.
func WithWorkerCount(count int) Option {
	return func(c *config) {
		if count > 0 {
			c.workerCount = count
		}
	}
}

// WithDeliveryTimeout sets a per-delivery timeout. Subscribers must honor
// context cancellation for the timeout to take effect.
func WithDeliveryTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.deliveryTimeout = timeout
	}
}

// WithLogger sets the logger used to report subscriber failures, recovered
// panics, and dropped deliveries.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

package bus

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/dshills/newsbus/bus/dispatch"
	"github.com/dshills/newsbus/news"
	"github.com/dshills/newsbus/topic"
)

// Channel owns the topic-to-subscriber table and the dispatch algorithm.
// It is safe for concurrent use by multiple producers and registrars.
//
// A Channel must be created with New and released with Close; it holds a
// running worker pool.
type Channel struct {
	mu    sync.RWMutex
	table map[string]*entry

	pool   *dispatch.Pool
	logger *zap.Logger
	closed atomic.Bool

	// Stats
	eventsDispatched   atomic.Uint64
	recipientsSelected atomic.Uint64
	subscriberErrors   atomic.Uint64
	subscriberPanics   atomic.Uint64
}

// entry is one subscription-table row: a topic and the subscribers bound to
// it, in registration order. A duplicate registration appends a duplicate
// element; the order carries no delivery semantics.
type entry struct {
	topic topic.Topic
	subs  []Subscriber
}

// New creates a channel ready for use. It needs no external configuration;
// options tune the delivery pool and logging.
func New(opts ...Option) *Channel {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Channel{
		table:  make(map[string]*entry),
		logger: cfg.logger,
	}

	c.pool = dispatch.NewPool(
		dispatch.WithQueueSize(cfg.queueSize),
		dispatch.WithWorkerCount(cfg.workerCount),
		dispatch.WithDeliveryTimeout(cfg.deliveryTimeout),
		dispatch.WithPoolPanicHandler(func(ev news.Event, panicValue any, stack []byte) {
			c.subscriberPanics.Add(1)
			c.logger.Error("subscriber panicked during delivery",
				zap.String("event_id", ev.ID),
				zap.Stringer("kind", ev.Kind),
				zap.Any("panic", panicValue),
				zap.ByteString("stack", stack),
			)
		}),
		dispatch.WithPoolErrorHandler(func(ev news.Event, err error) {
			c.subscriberErrors.Add(1)
			c.logger.Warn("subscriber returned error",
				zap.String("event_id", ev.ID),
				zap.Stringer("kind", ev.Kind),
				zap.Error(err),
			)
		}),
	)

	// A freshly created pool cannot already be running.
	_ = c.pool.Start()

	return c
}

// Close shuts the channel down, draining pending deliveries until done or
// until the context is cancelled. Register and Dispatch fail with
// ErrChannelClosed afterwards.
func (c *Channel) Close(ctx context.Context) error {
	if c.closed.Swap(true) {
		return ErrChannelClosed
	}
	return c.pool.Stop(ctx)
}

// Register binds subscriber to t. Registering the same subscriber under
// several topics is allowed and makes it a single recipient for any event
// matching more than one of them. Duplicate registrations of the same
// (topic, subscriber) pair create duplicate independent entries.
//
// There is no unregister operation; the table is append-only for the life
// of the channel.
func (c *Channel) Register(t topic.Topic, subscriber Subscriber) error {
	if c.closed.Load() {
		return ErrChannelClosed
	}
	if t == nil {
		return ErrInvalidArgument.New("nil topic")
	}
	if subscriber == nil {
		return ErrInvalidArgument.New("nil subscriber")
	}
	// Recipient de-duplication keys on the subscriber value, so it must be
	// usable as a map key. A type-level comparability check is not enough:
	// a comparable struct can still carry an unhashable value in an
	// interface field, which would only blow up inside Dispatch.
	if !hashable(subscriber) {
		return ErrInvalidArgument.New("subscriber type %T is not hashable; wrap it with SubscriberFunc or use a pointer receiver", subscriber)
	}

	key := t.Key()

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.table[key]
	if e == nil {
		e = &entry{topic: t}
		c.table[key] = e
	}
	e.subs = append(e.subs, subscriber)

	return nil
}

// RegisterFunc binds a plain function to t. Each call registers a distinct
// subscriber identity.
func (c *Channel) RegisterFunc(t topic.Topic, fn func(ctx context.Context, ev news.Event) error) error {
	if fn == nil {
		return ErrInvalidArgument.New("nil subscriber func")
	}
	return c.Register(t, SubscriberFunc(fn))
}

// Dispatch matches ev against every registered topic and schedules one
// delivery per distinct subscriber bound to any matching topic. It returns
// once the deliveries are scheduled, without waiting for them to run, and
// never reports subscriber-side failures. An event matching no topic is a
// delivery no-op, not an error.
//
// When the delivery queue is full the affected deliveries are dropped and
// logged rather than blocking the dispatcher.
func (c *Channel) Dispatch(ctx context.Context, ev news.Event) error {
	if c.closed.Load() {
		return ErrChannelClosed
	}
	if ev.Article == nil {
		return ErrInvalidArgument.New("event has no article")
	}

	// The recipient set is snapshotted under the read lock, which is
	// released before any delivery runs, so slow subscribers never block
	// Register, and a registration landing mid-delivery cannot receive
	// this event.
	recipients := c.selectRecipients(ev)

	c.eventsDispatched.Add(1)
	c.recipientsSelected.Add(uint64(len(recipients)))

	for _, s := range recipients {
		if err := c.pool.Enqueue(ctx, ev, s); err != nil {
			c.logger.Warn("delivery dropped",
				zap.String("event_id", ev.ID),
				zap.Stringer("kind", ev.Kind),
				zap.Error(err),
			)
		}
	}

	return nil
}

// selectRecipients scans the table and returns the distinct subscribers
// bound to any topic matching ev. The read lock is released by defer so a
// misbehaving Matches implementation cannot leak it.
func (c *Channel) selectRecipients(ev news.Event) []Subscriber {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var recipients []Subscriber
	seen := make(map[Subscriber]struct{})
	for _, e := range c.table {
		if !e.topic.Matches(ev) {
			continue
		}
		for _, s := range e.subs {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			recipients = append(recipients, s)
		}
	}
	return recipients
}

// hashable reports whether s can serve as a dedup map key. It tries an
// actual map insert because type-level comparability misses unhashable
// values reached through interface fields.
func hashable(s Subscriber) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[Subscriber]struct{}{s: {}}
	return true
}

// Stats returns a snapshot of channel statistics.
func (c *Channel) Stats() Stats {
	c.mu.RLock()
	topics := len(c.table)
	registrations := 0
	for _, e := range c.table {
		registrations += len(e.subs)
	}
	c.mu.RUnlock()

	poolStats := c.pool.Stats()

	return Stats{
		EventsDispatched:   c.eventsDispatched.Load(),
		RecipientsSelected: c.recipientsSelected.Load(),
		Delivered:          poolStats.Succeeded,
		Dropped:            poolStats.Dropped,
		SubscriberErrors:   c.subscriberErrors.Load(),
		SubscriberPanics:   c.subscriberPanics.Load(),
		Topics:             topics,
		Registrations:      registrations,
		QueueDepth:         poolStats.QueueDepth,
	}
}

// Stats contains channel statistics.
type Stats struct {
	// EventsDispatched is the number of Dispatch calls accepted.
	EventsDispatched uint64

	// RecipientsSelected is the total number of distinct recipients chosen
	// across all dispatches.
	RecipientsSelected uint64

	// Delivered is the number of deliveries that completed cleanly.
	Delivered uint64

	// Dropped is the number of deliveries dropped because the queue was full.
	Dropped uint64

	// SubscriberErrors is the number of deliveries whose subscriber
	// returned an error.
	SubscriberErrors uint64

	// SubscriberPanics is the number of subscriber panics recovered.
	SubscriberPanics uint64

	// Topics is the current number of distinct table entries.
	Topics int

	// Registrations is the current total of (topic, subscriber) bindings.
	Registrations int

	// QueueDepth is the current number of pending deliveries.
	QueueDepth int
}

// Package bus provides the event channel: the subscription table mapping
// topics to subscribers, and the dispatch algorithm that fans incoming
// events out to every subscriber whose topic matches.
//
// # Matching and delivery
//
// Dispatch scans every registered topic under the table lock, accumulates
// the set of distinct subscribers bound to any matching topic, releases the
// lock, and schedules one delivery per distinct subscriber on a bounded
// worker pool. A subscriber registered under two topics that both match an
// event is notified exactly once per Dispatch call. Dispatch returns once
// deliveries are scheduled; it never waits for subscriber callbacks and
// never reports their failures; those surface out-of-band through the
// channel's logger.
//
// # Consistency
//
// Register takes the table's write lock and Dispatch's scan takes the read
// lock, so a scan never observes a half-updated topic entry. The recipient
// set is computed once, synchronously, before any delivery begins: a
// registration that lands while deliveries for an event are still running
// does not receive that event.
//
// # Ordering
//
// None. Deliveries for one event run concurrently and unordered, and events
// dispatched by different producers may reach subscribers in any order.
//
// # Basic usage
//
//	ch := bus.New(bus.WithLogger(logger))
//	defer ch.Close(context.Background())
//
//	err := ch.RegisterFunc(topic.ForAuthor("alice"), func(ctx context.Context, ev news.Event) error {
//	    fmt.Println("alice activity:", ev.Kind)
//	    return nil
//	})
//
//	err = ch.Dispatch(ctx, news.NewEvent(news.KindPublished, article))
package bus

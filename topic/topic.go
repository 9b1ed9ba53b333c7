package topic

import "github.com/dshills/newsbus/news"

// Topic decides whether a given event is of interest.
// Implementations must be immutable and side-effect free: Matches must be a
// pure function of the topic's bound parameters and the event.
type Topic interface {
	// Matches reports whether the event is of interest to this topic.
	Matches(ev news.Event) bool

	// Key returns the subscription-table identity of this topic.
	// It is never consulted during event matching.
	Key() string
}

package news

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the closed set of article lifecycle event kinds.
type Kind int

const (
	// KindPublished means the article entered circulation.
	KindPublished Kind = iota

	// KindModified means an existing article was changed. The Modified
	// event is dispatched explicitly by the actor that mutated the
	// article; setters do not emit it automatically.
	KindModified

	// KindDeleted means the article was withdrawn.
	KindDeleted

	// KindRead means somebody read the article.
	KindRead
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPublished:
		return "published"
	case KindModified:
		return "modified"
	case KindDeleted:
		return "deleted"
	case KindRead:
		return "read"
	default:
		return "unknown"
	}
}

// Event is an immutable record of something that happened to an article.
// It is created by the actor performing the action, consumed by the dispatch
// call, and not retained by the channel.
type Event struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Kind is the lifecycle action the event records.
	Kind Kind

	// Article is the subject of the event. Never nil for a valid event.
	Article *Article

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the actor that emitted the event. May be empty.
	Source string
}

// NewEvent creates an event of the given kind about the given article.
func NewEvent(kind Kind, article *Article) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Article:   article,
		Timestamp: timeNow(),
	}
}

// WithSource returns a copy of the event with the source set.
func (e Event) WithSource(source string) Event {
	e.Source = source
	return e
}

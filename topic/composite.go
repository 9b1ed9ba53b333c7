package topic

import (
	"github.com/google/uuid"

	"github.com/dshills/newsbus/news"
)

// Composite matchers. Evaluation is a plain recursive tree walk with
// short-circuiting; since matchers are pure, short-circuiting is not
// observable.

// allTopic matches when every child matches.
type allTopic struct {
	key      string
	children []Topic
}

// All creates a topic matching events that match every child topic.
// With no children it matches everything.
func All(children ...Topic) Topic {
	return allTopic{
		key:      "all#" + uuid.NewString(),
		children: children,
	}
}

func (t allTopic) Matches(ev news.Event) bool {
	for _, c := range t.children {
		if !c.Matches(ev) {
			return false
		}
	}
	return true
}

func (t allTopic) Key() string {
	return t.key
}

// anyTopic matches when at least one child matches.
type anyTopic struct {
	key      string
	children []Topic
}

// Any creates a topic matching events that match at least one child topic.
// With no children it matches nothing.
func Any(children ...Topic) Topic {
	return anyTopic{
		key:      "any#" + uuid.NewString(),
		children: children,
	}
}

func (t anyTopic) Matches(ev news.Event) bool {
	for _, c := range t.children {
		if c.Matches(ev) {
			return true
		}
	}
	return false
}

func (t anyTopic) Key() string {
	return t.key
}

// notTopic inverts its child.
type notTopic struct {
	child Topic
}

// Not creates a topic matching exactly the events its child does not match.
func Not(child Topic) Topic {
	return notTopic{child: child}
}

func (t notTopic) Matches(ev news.Event) bool {
	return !t.child.Matches(ev)
}

func (t notTopic) Key() string {
	return "not(" + t.child.Key() + ")"
}

package news

import (
	"time"

	"github.com/google/uuid"
)

// timeNow is a variable to allow testing with fixed timestamps.
var timeNow = time.Now

// Article is a news article entity. Every article carries a unique ID
// assigned at construction; the ID, not the title, is the article's
// identity. Two distinct articles may share a title.
//
// The publish timestamp is fixed at construction and never changes. The
// last-modified timestamp is bumped by every mutating setter.
//
// An Article is not safe for unsynchronized concurrent mutation; that is
// the owning producer's responsibility, not the bus's.
type Article struct {
	id         uuid.UUID
	title      string
	subdomain  Subdomain
	authorName string
	published  time.Time
	modified   time.Time
}

// NewArticle creates an article with a fresh unique ID and both timestamps
// set to the current time.
func NewArticle(title string, subdomain Subdomain, authorName string) *Article {
	now := timeNow()
	return &Article{
		id:         uuid.New(),
		title:      title,
		subdomain:  subdomain,
		authorName: authorName,
		published:  now,
		modified:   now,
	}
}

// ID returns the article's unique identifier.
func (a *Article) ID() uuid.UUID {
	return a.id
}

// Title returns the article title.
func (a *Article) Title() string {
	return a.title
}

// SetTitle changes the title and bumps the last-modified timestamp.
func (a *Article) SetTitle(title string) {
	a.title = title
	a.modified = timeNow()
}

// Subdomain returns the article's subdomain.
func (a *Article) Subdomain() Subdomain {
	return a.subdomain
}

// SetSubdomain moves the article to another subdomain and bumps the
// last-modified timestamp.
func (a *Article) SetSubdomain(subdomain Subdomain) {
	a.subdomain = subdomain
	a.modified = timeNow()
}

// AuthorName returns the name of the authoring editor.
func (a *Article) AuthorName() string {
	return a.authorName
}

// PublishedAt returns the publish timestamp fixed at construction.
func (a *Article) PublishedAt() time.Time {
	return a.published
}

// ModifiedAt returns the time of the most recent mutation.
func (a *Article) ModifiedAt() time.Time {
	return a.modified
}

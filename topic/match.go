package topic

import "github.com/dshills/newsbus/news"

// Atomic matchers. Each compares one event or article attribute against a
// value bound at construction.

// domainTopic matches events whose article sits anywhere under a domain.
type domainTopic struct {
	domain news.Domain
}

// ForDomain creates a topic matching every event about an article whose
// subdomain belongs to the given domain.
func ForDomain(d news.Domain) Topic {
	return domainTopic{domain: d}
}

func (t domainTopic) Matches(ev news.Event) bool {
	return ev.Article.Subdomain().Domain() == t.domain
}

func (t domainTopic) Key() string {
	return "domain=" + t.domain.String()
}

// subdomainTopic matches by subdomain name, mirroring news.Subdomain
// equality.
type subdomainTopic struct {
	name string
}

// ForSubdomain creates a topic matching events about articles in the given
// subdomain. Subdomains compare by name.
func ForSubdomain(s news.Subdomain) Topic {
	return subdomainTopic{name: s.Name()}
}

func (t subdomainTopic) Matches(ev news.Event) bool {
	return ev.Article.Subdomain().Name() == t.name
}

func (t subdomainTopic) Key() string {
	return "subdomain=" + t.name
}

// titleTopic matches by exact title string. Titles are not unique article
// identifiers; two distinct articles with the same title both match.
type titleTopic struct {
	title string
}

// ForTitle creates a topic matching events about articles with exactly the
// given title.
func ForTitle(title string) Topic {
	return titleTopic{title: title}
}

func (t titleTopic) Matches(ev news.Event) bool {
	return ev.Article.Title() == t.title
}

func (t titleTopic) Key() string {
	return "title=" + t.title
}

// authorTopic matches by author name.
type authorTopic struct {
	name string
}

// ForAuthor creates a topic matching events about articles written by the
// named author.
func ForAuthor(name string) Topic {
	return authorTopic{name: name}
}

func (t authorTopic) Matches(ev news.Event) bool {
	return ev.Article.AuthorName() == t.name
}

func (t authorTopic) Key() string {
	return "author=" + t.name
}

// kindTopic matches by event kind, ignoring the article entirely.
type kindTopic struct {
	kind news.Kind
}

// ForKind creates a topic matching every event of the given kind.
func ForKind(k news.Kind) Topic {
	return kindTopic{kind: k}
}

func (t kindTopic) Matches(ev news.Event) bool {
	return ev.Kind == t.kind
}

func (t kindTopic) Key() string {
	return "kind=" + t.kind.String()
}

// Published creates a topic matching every Published event.
func Published() Topic {
	return ForKind(news.KindPublished)
}

// Deleted creates a topic matching every Deleted event.
func Deleted() Topic {
	return ForKind(news.KindDeleted)
}

// Read creates a topic matching every Read event.
func Read() Topic {
	return ForKind(news.KindRead)
}

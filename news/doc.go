// Package news provides the domain model for the newsbus library: the
// article entity, its domain/subdomain taxonomy, and the lifecycle events
// that producers emit about articles.
//
// Events are immutable once created. They carry a reference to the article
// they concern; the bus never owns or locks articles, it only observes them
// through events. Concurrent mutation of an article while an event
// referencing it is in flight is the producer's responsibility.
package news

// Package topic provides the predicate algebra used to subscribe to article
// events. A Topic is a pure boolean matcher over a news.Event: atomic topics
// compare one event or article attribute against a bound value, and
// composite topics combine child topics with AND (All), OR (Any), or
// negation (Not), nesting to arbitrary depth.
//
// Every topic also exposes a Key. The channel uses the key only as the
// subscription-table identity, never for event matching. Atomic topics of
// the same kind and bound value share a key, so registering the same atomic
// topic twice appends to one table entry. Composite topics have no
// structural equality: each constructed composite gets a unique key and
// therefore its own table entry, even when textually identical to another.
package topic

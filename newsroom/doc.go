// Package newsroom provides the domain actors that sit on top of the event
// channel: editors who publish articles and get told when their work is
// read, readers who subscribe to whatever interests them and emit Read
// events, and the archive that tracks the currently published articles by
// listening for Published and Deleted events.
//
// None of these own any channel machinery; they are illustrations of the
// topic algebra from a host's point of view, registering topics and
// dispatching events like any other collaborator would.
package newsroom

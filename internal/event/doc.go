// Package event provides a synchronous publish/subscribe bus for view
// lifecycle and selection commit notifications.
//
// Topics use dot notation:
//
//	view.activated       - a document view was opened
//	view.closed          - a document view was closed
//	selection.committed  - a view's saved selection changed
//
// Subscriptions match an exact topic, a "prefix.*" pattern that matches
// every topic below prefix, or "*" for everything. Handlers run in the
// publisher's goroutine in subscription order.
package event

// Package selection provides handlers for the incremental selection
// commands.
//
// Each command runs on the dispatch's view through the selection engine.
// A command that commits a new saved selection returns StatusOK and is
// recorded into the view's generic command history under its own name,
// which is what lets the undo/redo bridge recognise it later. Toggle never
// touches the history, so an Add that falls through to Toggle is recorded
// under the toggle name instead.
package selection

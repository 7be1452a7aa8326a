// Package history provides the generic soft undo and soft redo commands
// for views that keep their own command history.
//
// Soft undo steps the view's command history back and restores the
// selection recorded before the undone command. A pre-dispatch hook that
// has already restored the selection sets ArgSelectionRestored, in which
// case only the history cursor moves.
package history

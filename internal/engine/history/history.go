package history

import (
	"slices"
	"sync"

	"github.com/dshills/incsel/internal/engine/region"
)

// DefaultMaxEntries bounds the past stack when no limit is given.
const DefaultMaxEntries = 1000

// SelectionHistory records committed selection snapshots for one view.
// It is safe for concurrent use.
type SelectionHistory struct {
	mu sync.Mutex

	past    []region.Group // oldest first
	present region.Group
	future  []region.Group // nearest redo first

	// Most recent group added or subtracted; not part of undo/redo.
	change region.Group

	// Zero means unbounded.
	maxEntries int
}

// New creates an empty history keeping at most maxEntries past snapshots.
// A negative value selects DefaultMaxEntries; zero disables the bound.
func New(maxEntries int) *SelectionHistory {
	if maxEntries < 0 {
		maxEntries = DefaultMaxEntries
	}
	return &SelectionHistory{
		present:    region.Group{},
		maxEntries: maxEntries,
	}
}

// Push commits g as the new present.
// Returns false when g equals present and nothing changed.
func (h *SelectionHistory) Push(g region.Group) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if g.Equals(h.present) {
		return false
	}

	h.past = append(h.past, h.present)
	h.present = g.Clone()
	h.future = nil
	h.trimLocked()
	return true
}

// Undo moves present onto future and restores the newest past snapshot.
// Returns false when there is nothing to undo.
func (h *SelectionHistory) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return false
	}

	last := len(h.past) - 1
	h.future = append([]region.Group{h.present}, h.future...)
	h.present = h.past[last]
	h.past = h.past[:last]
	return true
}

// Redo moves present onto past and restores the nearest future snapshot.
// Returns false when there is nothing to redo.
func (h *SelectionHistory) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return false
	}

	h.past = append(h.past, h.present)
	h.present = h.future[0]
	h.future = h.future[1:]
	return true
}

// Present returns a copy of the committed selection.
func (h *SelectionHistory) Present() region.Group {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.present.Clone()
}

// Previous returns the newest past snapshot, or present when past is empty.
func (h *SelectionHistory) Previous() region.Group {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return h.present.Clone()
	}
	return h.past[len(h.past)-1].Clone()
}

// Past returns a copy of the past stack, oldest first.
func (h *SelectionHistory) Past() []region.Group {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloneStack(h.past)
}

// Future returns a copy of the future stack, nearest redo first.
func (h *SelectionHistory) Future() []region.Group {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloneStack(h.future)
}

// CanUndo returns true if undo is available.
func (h *SelectionHistory) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past) > 0
}

// CanRedo returns true if redo is available.
func (h *SelectionHistory) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future) > 0
}

// UndoCount returns the number of undo steps available.
func (h *SelectionHistory) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past)
}

// RedoCount returns the number of redo steps available.
func (h *SelectionHistory) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future)
}

// RecordChange stores the group most recently added or subtracted.
func (h *SelectionHistory) RecordChange(g region.Group) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.change = g.Clone()
}

// LastChange returns the recorded change group, which may be empty.
func (h *SelectionHistory) LastChange() region.Group {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.change.Clone()
}

// SetMaxEntries changes the bound on the past stack.
// If the stack is larger, oldest snapshots are dropped.
func (h *SelectionHistory) SetMaxEntries(max int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if max < 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	h.trimLocked()
}

// trimLocked drops the oldest past snapshots beyond maxEntries.
func (h *SelectionHistory) trimLocked() {
	if h.maxEntries > 0 && len(h.past) > h.maxEntries {
		excess := len(h.past) - h.maxEntries
		h.past = slices.Clone(h.past[excess:])
	}
}

// MaxEntries returns the bound on the past stack.
func (h *SelectionHistory) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

func cloneStack(stack []region.Group) []region.Group {
	out := make([]region.Group, len(stack))
	for i, g := range stack {
		out[i] = g.Clone()
	}
	return out
}

// Package store owns the selection history of every open view.
package store

import (
	"sync"

	"github.com/dshills/incsel/internal/engine/history"
	"github.com/dshills/incsel/internal/host"
)

// Store maps view identity to its SelectionHistory.
// Entries are created lazily on first access and removed when the view closes.
// No other component keeps a history reference across command invocations.
type Store struct {
	mu         sync.Mutex
	histories  map[host.ViewID]*history.SelectionHistory
	maxEntries int
}

// New creates an empty store whose histories keep at most maxEntries past
// snapshots (see history.New).
func New(maxEntries int) *Store {
	return &Store{
		histories:  make(map[host.ViewID]*history.SelectionHistory),
		maxEntries: maxEntries,
	}
}

// Get returns the history for id, creating an empty one if needed.
func (s *Store) Get(id host.ViewID) *history.SelectionHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.histories[id]
	if !ok {
		h = history.New(s.maxEntries)
		s.histories[id] = h
	}
	return h
}

// Open creates the history for id ahead of the first command.
// Returns false if the view was already known.
func (s *Store) Open(id host.ViewID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.histories[id]; ok {
		return false
	}
	s.histories[id] = history.New(s.maxEntries)
	return true
}

// Has returns true if a history exists for id.
func (s *Store) Has(id host.ViewID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.histories[id]
	return ok
}

// Remove discards the history for id.
// Returns false if there was none.
func (s *Store) Remove(id host.ViewID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.histories[id]; !ok {
		return false
	}
	delete(s.histories, id)
	return true
}

// Len returns the number of tracked views.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.histories)
}

// SetMaxEntries changes the bound for new and existing histories.
func (s *Store) SetMaxEntries(max int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maxEntries = max
	for _, h := range s.histories {
		h.SetMaxEntries(max)
	}
}

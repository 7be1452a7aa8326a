// Package notify delivers settings changes to the documents that asked
// for them.
//
// Each open document registers one record holding its id and a callback.
// Notify invokes every callback with the document id passed explicitly,
// so callbacks never need to capture the view they belong to.
package notify

import (
	"sort"
	"sync"

	"github.com/dshills/incsel/internal/config"
	"github.com/dshills/incsel/internal/host"
)

// Callback receives new settings for one document.
type Callback func(documentID host.ViewID, settings *config.Settings)

// Registration is one document's interest in settings changes.
type Registration struct {
	DocumentID host.ViewID
	Callback   Callback
}

// Registry holds registrations keyed by document id.
type Registry struct {
	mu      sync.RWMutex
	records map[host.ViewID]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[host.ViewID]Registration)}
}

// Add registers or replaces the callback for a document.
func (r *Registry) Add(documentID host.ViewID, cb Callback) {
	if cb == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[documentID] = Registration{DocumentID: documentID, Callback: cb}
}

// Remove drops the registration for a document.
// Returns false if there was none.
func (r *Registry) Remove(documentID host.ViewID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[documentID]; !ok {
		return false
	}
	delete(r.records, documentID)
	return true
}

// Has reports whether a document is registered.
func (r *Registry) Has(documentID host.ViewID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[documentID]
	return ok
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Notify invokes every callback in document id order.
// Callbacks may add or remove registrations.
func (r *Registry) Notify(settings *config.Settings) {
	r.mu.RLock()
	regs := make([]Registration, 0, len(r.records))
	for _, reg := range r.records {
		regs = append(regs, reg)
	}
	r.mu.RUnlock()

	sort.Slice(regs, func(i, j int) bool { return regs[i].DocumentID < regs[j].DocumentID })
	for _, reg := range regs {
		reg.Callback(reg.DocumentID, settings)
	}
}

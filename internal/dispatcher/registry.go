package dispatcher

import (
	"slices"
	"strings"
	"sync"

	"github.com/dshills/incsel/internal/dispatcher/handler"
)

// Registry maps action names to handlers. A name may carry several
// handlers; the highest priority wins and ties go to the earliest.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]handler.Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]handler.Handler)}
}

// Register adds a handler for an action name.
func (r *Registry) Register(actionName string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hs := r.handlers[actionName]
	i := slices.IndexFunc(hs, func(e handler.Handler) bool { return e.Priority() < h.Priority() })
	if i < 0 {
		i = len(hs)
	}
	r.handlers[actionName] = slices.Insert(hs, i, h)
}

// Unregister removes every handler for an action name.
func (r *Registry) Unregister(actionName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.handlers[actionName]
	delete(r.handlers, actionName)
	return ok
}

// Get returns the winning handler for an action, or nil.
func (r *Registry) Get(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if hs := r.handlers[actionName]; len(hs) > 0 {
		return hs[0]
	}
	return nil
}

// Has returns true if a handler is registered for the action.
func (r *Registry) Has(actionName string) bool {
	return r.Get(actionName) != nil
}

// Names returns the sorted action names starting with prefix.
func (r *Registry) Names(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.handlers {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered action names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

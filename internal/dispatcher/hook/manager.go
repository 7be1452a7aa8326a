package hook

import (
	"slices"
	"sort"
	"sync"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/input"
)

// Manager manages dispatch hooks with priority-based ordering.
type Manager struct {
	mu        sync.RWMutex
	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// NewManager creates a new hook manager.
func NewManager() *Manager {
	return &Manager{}
}

// RegisterPre adds a pre-dispatch hook, replacing one with the same name.
func (m *Manager) RegisterPre(h PreDispatchHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.preHooks = slices.DeleteFunc(m.preHooks, func(e PreDispatchHook) bool { return e.Name() == h.Name() })
	m.preHooks = append(m.preHooks, h)
	sort.SliceStable(m.preHooks, func(i, j int) bool {
		return m.preHooks[i].Priority() > m.preHooks[j].Priority()
	})
}

// RegisterPost adds a post-dispatch hook, replacing one with the same name.
func (m *Manager) RegisterPost(h PostDispatchHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.postHooks = slices.DeleteFunc(m.postHooks, func(e PostDispatchHook) bool { return e.Name() == h.Name() })
	m.postHooks = append(m.postHooks, h)
	sort.SliceStable(m.postHooks, func(i, j int) bool {
		return m.postHooks[i].Priority() < m.postHooks[j].Priority()
	})
}

// Register adds a hook to every list whose interface it implements.
func (m *Manager) Register(h Hook) {
	if pre, ok := h.(PreDispatchHook); ok {
		m.RegisterPre(pre)
	}
	if post, ok := h.(PostDispatchHook); ok {
		m.RegisterPost(post)
	}
}

// Unregister removes a hook by name from both lists.
func (m *Manager) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.preHooks) + len(m.postHooks)
	m.preHooks = slices.DeleteFunc(m.preHooks, func(e PreDispatchHook) bool { return e.Name() == name })
	m.postHooks = slices.DeleteFunc(m.postHooks, func(e PostDispatchHook) bool { return e.Name() == name })
	return len(m.preHooks)+len(m.postHooks) < n
}

// RunPreDispatch runs all pre-dispatch hooks in priority order.
// Returns false if any hook cancels the action.
func (m *Manager) RunPreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	m.mu.RLock()
	hooks := slices.Clone(m.preHooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

// RunPostDispatch runs all post-dispatch hooks from lowest to highest priority.
func (m *Manager) RunPostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	m.mu.RLock()
	hooks := slices.Clone(m.postHooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}

// PreHookNames returns the names of all pre-dispatch hooks in run order.
func (m *Manager) PreHookNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.preHooks))
	for i, h := range m.preHooks {
		names[i] = h.Name()
	}
	return names
}

// PostHookNames returns the names of all post-dispatch hooks in run order.
func (m *Manager) PostHookNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.postHooks))
	for i, h := range m.postHooks {
		names[i] = h.Name()
	}
	return names
}

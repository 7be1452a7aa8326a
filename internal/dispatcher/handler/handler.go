// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/input"
)

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Priority returns the handler priority (higher = checked first).
	Priority() int
}

// Func adapts a plain function to Handler. It accepts every action and has
// priority zero.
type Func func(action input.Action, ctx *execctx.ExecutionContext) Result

// Handle implements Handler.
func (f Func) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(action, ctx)
}

// CanHandle implements Handler.
func (f Func) CanHandle(string) bool { return true }

// Priority implements Handler.
func (f Func) Priority() int { return 0 }

type prioritized struct {
	Handler
	prio int
}

func (p prioritized) Priority() int { return p.prio }

// WithPriority wraps h so it reports prio instead of its own priority.
func WithPriority(h Handler, prio int) Handler {
	return prioritized{Handler: h, prio: prio}
}

// NamespaceHandler handles a fixed family of actions.
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Actions lists every action name the handler accepts.
	Actions() []string
}

// NewNamespaceAdapter creates a Handler from a NamespaceHandler.
func NewNamespaceAdapter(h NamespaceHandler) Handler {
	return namespaceAdapter{h}
}

type namespaceAdapter struct {
	NamespaceHandler
}

func (a namespaceAdapter) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if !a.CanHandle(action.Name) {
		return Errorf("namespace does not accept %q", action.Name)
	}
	return a.HandleAction(action, ctx)
}

func (a namespaceAdapter) Priority() int { return 0 }

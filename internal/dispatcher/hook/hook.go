package hook

import (
	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/input"
)

// Standard hook priorities. Pre-dispatch hooks run from highest to lowest,
// post-dispatch hooks from lowest to highest.
const (
	PriorityAudit      = 1000
	PriorityCountLimit = 900
	PriorityIntercept  = 800
	PriorityPlugin     = 100
)

// Hook is the base interface for all dispatch hooks.
type Hook interface {
	// Name returns a unique identifier for this hook.
	Name() string

	// Priority returns the hook priority.
	Priority() int
}

// PreDispatchHook is called before an action is dispatched.
type PreDispatchHook interface {
	Hook

	// PreDispatch may modify the action. Returns false to cancel the dispatch.
	PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool
}

// PostDispatchHook is called after an action is dispatched.
type PostDispatchHook interface {
	Hook

	// PostDispatch may inspect or modify the result.
	PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

type named struct {
	name     string
	priority int
}

func (n named) Name() string  { return n.name }
func (n named) Priority() int { return n.priority }

type preFunc struct {
	named
	fn func(action *input.Action, ctx *execctx.ExecutionContext) bool
}

func (f preFunc) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	if f.fn == nil {
		return true
	}
	return f.fn(action, ctx)
}

type postFunc struct {
	named
	fn func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

func (f postFunc) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if f.fn != nil {
		f.fn(action, ctx, result)
	}
}

// Pre returns a pre-dispatch hook backed by fn. A nil fn never cancels.
func Pre(name string, priority int, fn func(action *input.Action, ctx *execctx.ExecutionContext) bool) PreDispatchHook {
	return preFunc{named{name, priority}, fn}
}

// Post returns a post-dispatch hook backed by fn.
func Post(name string, priority int, fn func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)) PostDispatchHook {
	return postFunc{named{name, priority}, fn}
}

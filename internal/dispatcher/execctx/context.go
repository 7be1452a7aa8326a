// Package execctx provides the execution context for action handlers.
package execctx

import (
	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/engine/selection"
	"github.com/dshills/incsel/internal/host"
)

// ExecutionContext provides context for action execution.
type ExecutionContext struct {
	// View is the active document view.
	View host.View

	// Engine runs the incremental selection commands.
	Engine *selection.Engine

	// Logger is scoped to the dispatch.
	Logger *zap.Logger

	// Count is the repeat count (1 if not specified).
	Count int
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Count:  1,
		Logger: zap.NewNop(),
	}
}

// WithView returns the context with the view set.
func (ctx *ExecutionContext) WithView(v host.View) *ExecutionContext {
	ctx.View = v
	return ctx
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(e *selection.Engine) *ExecutionContext {
	ctx.Engine = e
	return ctx
}

// WithLogger returns the context with the logger set.
func (ctx *ExecutionContext) WithLogger(l *zap.Logger) *ExecutionContext {
	if l != nil {
		ctx.Logger = l
	}
	return ctx
}

// WithCount returns the context with repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// SoftHistory returns the view's generic command history, if it has one.
func (ctx *ExecutionContext) SoftHistory() (host.SoftHistory, bool) {
	if ctx.View == nil {
		return nil, false
	}
	sh, ok := ctx.View.(host.SoftHistory)
	return sh, ok
}

// Validate checks that the context has a view.
func (ctx *ExecutionContext) Validate() error {
	if ctx.View == nil {
		return ErrMissingView
	}
	return nil
}

// ValidateForSelection checks that the context can run selection commands.
func (ctx *ExecutionContext) ValidateForSelection() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}

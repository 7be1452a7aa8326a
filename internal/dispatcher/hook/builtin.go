package hook

import (
	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/input"
)

// AuditHook logs every dispatched action.
type AuditHook struct {
	logger *zap.Logger
}

// NewAuditHook creates an audit hook with the given logger.
func NewAuditHook(logger *zap.Logger) *AuditHook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditHook{logger: logger}
}

// Name implements Hook.
func (h *AuditHook) Name() string { return "audit" }

// Priority implements Hook.
func (h *AuditHook) Priority() int { return PriorityAudit }

// PreDispatch logs the action being dispatched.
func (h *AuditHook) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	h.logger.Debug("dispatch start",
		zap.String("command", action.Name),
		zap.Stringer("source", action.Source),
		zap.Int("count", ctx.GetCount()),
	)
	return true
}

// PostDispatch logs the dispatch result.
func (h *AuditHook) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if result.Status == handler.StatusError {
		h.logger.Warn("dispatch failed",
			zap.String("command", action.Name),
			zap.Error(result.Error),
		)
		return
	}
	h.logger.Debug("dispatch complete",
		zap.String("command", action.Name),
		zap.Stringer("status", result.Status),
		zap.String("message", result.Message),
		zap.Bool("restored", result.Restored),
	)
}

// CountLimitHook clamps the repeat count of actions.
type CountLimitHook struct {
	max int
}

// NewCountLimitHook creates a hook that limits counts to max.
func NewCountLimitHook(max int) *CountLimitHook {
	return &CountLimitHook{max: max}
}

// Name implements Hook.
func (h *CountLimitHook) Name() string { return "count-limit" }

// Priority implements Hook.
func (h *CountLimitHook) Priority() int { return PriorityCountLimit }

// PreDispatch clamps the action and context counts.
func (h *CountLimitHook) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	if h.max <= 0 {
		return true
	}
	if action.Count > h.max {
		action.Count = h.max
	}
	if ctx.Count > h.max {
		ctx.Count = h.max
	}
	return true
}

package selection

import (
	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	engine "github.com/dshills/incsel/internal/engine/selection"
	"github.com/dshills/incsel/internal/input"
)

// Action names for selection commands.
const (
	ActionClear    = "incremental_select_clear"
	ActionAdd      = "incremental_select_add"
	ActionSubtract = "incremental_select_subtract"
	ActionToggle   = "incremental_select_toggle"
	ActionReorient = "incremental_select_reorient"
)

// UndoableActions are the commands whose effect lives in the selection
// history. The selection history only steps back through soft_undo and
// soft_redo, in step with the editor's command history.
func UndoableActions() []string {
	return []string{ActionClear, ActionAdd, ActionSubtract}
}

// Handler handles the incremental selection commands.
type Handler struct{}

// NewHandler creates a new selection handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Actions implements handler.NamespaceHandler.
func (h *Handler) Actions() []string {
	return []string{
		ActionClear, ActionAdd, ActionSubtract, ActionToggle, ActionReorient,
	}
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionClear, ActionAdd, ActionSubtract, ActionToggle, ActionReorient:
		return true
	}
	return false
}

// HandleAction processes a selection action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForSelection(); err != nil {
		return handler.Error(err)
	}

	e := ctx.Engine
	v := ctx.View

	var res handler.Result
	switch action.Name {
	case ActionClear:
		res = committed(e.Clear(v))
	case ActionAdd:
		res = committed(e.Add(v))
	case ActionSubtract:
		res = committed(e.Subtract(v))
	case ActionToggle:
		res = committed(e.Toggle(v))
	case ActionReorient:
		res = h.reorient(ctx)
	default:
		return handler.Errorf("unknown selection action: %s", action.Name)
	}

	saved := e.Saved(v.ID())
	ctx.Logger.Debug("selection command",
		zap.String("command", action.Name),
		zap.Stringer("status", res.Status),
		zap.Int("regions", saved.Len()),
	)
	return res.WithSaved(saved.Len())
}

func (h *Handler) reorient(ctx *execctx.ExecutionContext) handler.Result {
	before := ctx.View.Selection()
	ctx.Engine.Reorient(ctx.View)
	if ctx.View.Selection().Equals(before) {
		return handler.NoOp()
	}
	return handler.Success()
}

// committed maps an engine result onto a handler result.
func committed(r engine.Result) handler.Result {
	if r.Toggle != nil {
		if r.Toggle.Outcome == engine.Untouched {
			return handler.NoOp().WithOutcome(r.Toggle.Outcome.String())
		}
		return handler.Success().
			WithRecordAs(ActionToggle).
			WithOutcome(r.Toggle.Outcome.String())
	}
	if r.LiveOnly {
		// Only the live selection moved; generic undo restores it.
		return handler.Success().WithRecordAs(ActionToggle)
	}
	if !r.Committed {
		return handler.NoOp()
	}
	return handler.Success()
}

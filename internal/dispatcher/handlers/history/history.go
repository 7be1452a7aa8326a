package history

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/input"
)

// Action names for generic history commands.
const (
	ActionSoftUndo = "soft_undo"
	ActionSoftRedo = "soft_redo"
)

// ArgSelectionRestored marks a soft undo/redo whose selection change was
// already applied.
const ArgSelectionRestored = "selection_restored"

// Handler handles soft undo and soft redo.
type Handler struct{}

// NewHandler creates a new history handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Actions implements handler.NamespaceHandler.
func (h *Handler) Actions() []string {
	return []string{ActionSoftUndo, ActionSoftRedo}
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	return actionName == ActionSoftUndo || actionName == ActionSoftRedo
}

// HandleAction processes a history action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	sh, ok := ctx.SoftHistory()
	if !ok {
		return handler.Error(fmt.Errorf("%s: %w", action.Name, host.ErrNoCommandHistory))
	}

	restore := !action.Args.GetBool(ArgSelectionRestored)

	var stepped bool
	switch action.Name {
	case ActionSoftUndo:
		stepped = sh.SoftUndo(restore)
	case ActionSoftRedo:
		stepped = sh.SoftRedo(restore)
	default:
		return handler.Errorf("unknown history action: %s", action.Name)
	}

	ctx.Logger.Debug("soft history",
		zap.String("command", action.Name),
		zap.Bool("stepped", stepped),
		zap.Bool("restore_selection", restore),
	)

	res := handler.Success()
	if !stepped {
		res = handler.NoOp().WithMessage("nothing to " + verb(action.Name))
	} else if ctx.Engine != nil {
		ctx.Engine.Resync(ctx.View)
	}
	if !restore {
		res = res.WithRestored()
	}
	return res.WithoutRecord()
}

func verb(name string) string {
	if name == ActionSoftRedo {
		return "redo"
	}
	return "undo"
}

// Package bridge routes the editor's generic soft undo and soft redo into
// the selection history when they target an incremental selection command.
//
// The bridge runs as a pre-dispatch hook. It asks the view which command
// the gesture would act on. When that command is tracked, the selection
// history is replayed instead of the generic selection restore, and the
// action is marked so the generic handler only advances its history
// cursor. Only the single pending step is inspected.
package bridge

import (
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handlers/history"
	"github.com/dshills/incsel/internal/dispatcher/hook"
	"github.com/dshills/incsel/internal/engine/selection"
	"github.com/dshills/incsel/internal/input"
)

// HookName is the name the bridge registers under.
const HookName = "incremental-select-undo"

// History indexes passed to host.CommandLog.CommandHistory.
const (
	undoTarget = 0
	redoTarget = 1
)

// UndoRedo intercepts soft undo and soft redo.
type UndoRedo struct {
	engine *selection.Engine
	logger *zap.Logger

	mu      sync.RWMutex
	tracked map[string]struct{}
}

// New creates a bridge that replays history for the tracked command names.
func New(e *selection.Engine, tracked []string, logger *zap.Logger) *UndoRedo {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &UndoRedo{engine: e, logger: logger}
	b.SetTracked(tracked)
	return b
}

// SetTracked replaces the set of command names the bridge intercepts.
func (b *UndoRedo) SetTracked(names []string) {
	tracked := make(map[string]struct{}, len(names))
	for _, n := range names {
		tracked[n] = struct{}{}
	}

	b.mu.Lock()
	b.tracked = tracked
	b.mu.Unlock()
}

// Tracks reports whether name is intercepted.
func (b *UndoRedo) Tracks(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.tracked[name]
	return ok
}

// Name implements hook.Hook.
func (b *UndoRedo) Name() string { return HookName }

// Priority implements hook.Hook.
func (b *UndoRedo) Priority() int { return hook.PriorityIntercept }

// PreDispatch implements hook.PreDispatchHook. It never cancels.
func (b *UndoRedo) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	var index int
	switch action.Name {
	case history.ActionSoftUndo:
		index = undoTarget
	case history.ActionSoftRedo:
		index = redoTarget
	default:
		return true
	}
	if ctx.View == nil || action.Args.GetBool(history.ArgSelectionRestored) {
		return true
	}

	rec, err := ctx.View.CommandHistory(index)
	if err != nil {
		b.logger.Debug("no command to intercept",
			zap.String("command", action.Name),
			zap.Error(err),
		)
		return true
	}
	if !b.Tracks(rec.Name) {
		return true
	}

	var res selection.Result
	if action.Name == history.ActionSoftUndo {
		res = b.engine.Undo(ctx.View)
	} else {
		res = b.engine.Redo(ctx.View)
	}

	b.logger.Debug("intercepted",
		zap.String("command", action.Name),
		zap.String("target", rec.Name),
		zap.Bool("replayed", res.Committed),
		zap.Int("regions", ctx.View.Selection().Len()),
	)

	*action = action.WithArg(history.ArgSelectionRestored, true)
	return true
}

package history_test

import (
	"testing"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/dispatcher/handlers/history"
	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/host/memview"
	"github.com/dshills/incsel/internal/input"
)

// plainView has no generic command history.
type plainView struct {
	sel region.Group
}

func (v *plainView) ID() host.ViewID { return 1 }
func (v *plainView) Selection() region.Group { return v.sel }
func (v *plainView) SetSelection(g region.Group) { v.sel = g }
func (v *plainView) AddRegions(string, region.Group, host.RegionStyle) {}
func (v *plainView) EraseRegions(string) {}
func (v *plainView) CommandHistory(int) (host.CommandRecord, error) { return host.CommandRecord{}, host.ErrNoCommandHistory }

func TestSoftUndoRestoresSelection(t *testing.T) {
	h := history.NewHandler()
	v := memview.New("test", "hello world")
	before := region.Of(region.Caret(0))
	after := region.Of(region.New(0, 5))
	v.SetSelection(after)
	v.Record(host.CommandRecord{Name: "expand"}, before, after)

	ctx := execctx.New().WithView(v)
	res := h.HandleAction(input.NewAction(history.ActionSoftUndo), ctx)

	if res.Status != handler.StatusOK {
		t.Fatalf("expected ok, got %v", res.Status)
	}
	if !res.SkipRecord {
		t.Error("soft undo must not be recorded")
	}
	if res.Restored {
		t.Error("plain soft undo is not a restored dispatch")
	}
	if !v.Selection().Equals(before) {
		t.Errorf("selection = %v, want %v", v.Selection(), before)
	}

	res = h.HandleAction(input.NewAction(history.ActionSoftRedo), ctx)
	if res.Status != handler.StatusOK {
		t.Fatalf("expected ok, got %v", res.Status)
	}
	if !v.Selection().Equals(after) {
		t.Errorf("selection = %v, want %v", v.Selection(), after)
	}
}

func TestSoftUndoHonorsRestoredFlag(t *testing.T) {
	h := history.NewHandler()
	v := memview.New("test", "hello world")
	v.Record(host.CommandRecord{Name: "expand"}, region.Of(region.Caret(0)), region.Of(region.New(0, 5)))

	current := region.Of(region.New(6, 11))
	v.SetSelection(current)

	action := input.NewAction(history.ActionSoftUndo).WithArg(history.ArgSelectionRestored, true)
	res := h.HandleAction(action, execctx.New().WithView(v))

	if res.Status != handler.StatusOK {
		t.Fatalf("expected ok, got %v", res.Status)
	}
	if !res.Restored {
		t.Error("result should report the restored selection")
	}
	if !v.Selection().Equals(current) {
		t.Errorf("selection should be left alone, got %v", v.Selection())
	}
	if _, applied := v.HistoryLen(); applied != 0 {
		t.Errorf("history cursor should move, applied = %d", applied)
	}
}

func TestSoftUndoEmptyHistory(t *testing.T) {
	h := history.NewHandler()
	ctx := execctx.New().WithView(memview.New("test", ""))

	res := h.HandleAction(input.NewAction(history.ActionSoftUndo), ctx)
	if res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op, got %v", res.Status)
	}
	if res.Message != "nothing to undo" {
		t.Errorf("unexpected message %q", res.Message)
	}

	res = h.HandleAction(input.NewAction(history.ActionSoftRedo), ctx)
	if res.Message != "nothing to redo" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestSoftUndoWithoutHistorySupport(t *testing.T) {
	h := history.NewHandler()
	ctx := execctx.New().WithView(&plainView{})

	if res := h.HandleAction(input.NewAction(history.ActionSoftUndo), ctx); !res.IsError() {
		t.Errorf("expected error, got %v", res.Status)
	}
}

func TestCanHandle(t *testing.T) {
	h := history.NewHandler()
	if !h.CanHandle(history.ActionSoftUndo) || !h.CanHandle(history.ActionSoftRedo) {
		t.Error("expected soft undo/redo to be handled")
	}
	if h.CanHandle("undo") {
		t.Error("unexpected action accepted")
	}
}

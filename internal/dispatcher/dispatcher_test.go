package dispatcher_test

import (
	"errors"
	"testing"

	"github.com/dshills/incsel/internal/dispatcher"
	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/dispatcher/hook"
	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/host/memview"
	"github.com/dshills/incsel/internal/input"
)

func TestNewWithDefaults(t *testing.T) {
	d := dispatcher.NewWithDefaults()

	if d.Registry() == nil {
		t.Error("expected non-nil registry")
	}
	if d.HookManager() == nil {
		t.Error("expected non-nil hook manager")
	}
	if d.Metrics() != nil {
		t.Error("expected nil metrics by default")
	}
	if names := d.HookManager().PreHookNames(); len(names) != 1 || names[0] != "count-limit" {
		t.Errorf("expected count-limit hook, got %v", names)
	}
}

func TestDispatchNoView(t *testing.T) {
	d := dispatcher.NewWithDefaults()

	result := d.Dispatch(nil, input.NewAction("anything"))
	if !errors.Is(result.Error, dispatcher.ErrNoView) {
		t.Errorf("expected ErrNoView, got %v", result.Error)
	}
}

func TestDispatchNoHandler(t *testing.T) {
	d := dispatcher.NewWithDefaults()

	result := d.Dispatch(memview.New("a", ""), input.NewAction("unknown"))
	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError, got %v", result.Status)
	}
	if !errors.Is(result.Error, dispatcher.ErrNoHandler) {
		t.Errorf("expected ErrNoHandler, got %v", result.Error)
	}
}

func TestDispatchBuildsContext(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	v := memview.New("a", "")

	var got *execctx.ExecutionContext
	d.RegisterHandlerFunc("probe", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		got = ctx
		return handler.Success()
	})

	d.Dispatch(v, input.Action{Name: "probe", Count: 3})

	if got == nil {
		t.Fatal("handler not called")
	}
	if got.View != host.View(v) {
		t.Error("context should carry the view")
	}
	if got.Count != 3 {
		t.Errorf("expected count 3, got %d", got.Count)
	}
	if got.Logger == nil {
		t.Error("expected logger")
	}
}

func TestDispatchRecordsCommands(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	v := memview.New("a", "hello world")

	d.RegisterHandlerFunc("select_word", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		ctx.View.SetSelection(region.Of(region.New(0, 5)))
		return handler.Success()
	})
	d.RegisterHandlerFunc("renamed", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithRecordAs("other")
	})
	d.RegisterHandlerFunc("quiet", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithoutRecord()
	})
	d.RegisterHandlerFunc("nothing", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.NoOp()
	})

	d.Dispatch(v, input.NewAction("select_word"))
	rec, err := v.CommandHistory(0)
	if err != nil {
		t.Fatalf("expected recorded command: %v", err)
	}
	if rec.Name != "select_word" {
		t.Errorf("expected select_word, got %q", rec.Name)
	}

	d.Dispatch(v, input.NewAction("renamed"))
	if rec, _ := v.CommandHistory(0); rec.Name != "other" {
		t.Errorf("expected RecordAs name, got %q", rec.Name)
	}

	d.Dispatch(v, input.NewAction("quiet"))
	d.Dispatch(v, input.NewAction("nothing"))
	if total, _ := v.HistoryLen(); total != 2 {
		t.Errorf("expected 2 recorded commands, got %d", total)
	}

	if !v.SoftUndo(true) || !v.SoftUndo(true) {
		t.Fatal("expected two undo steps")
	}
	if !v.Selection().Equals(region.Of(region.Caret(0))) {
		t.Errorf("undo should restore the recorded before selection, got %v", v.Selection())
	}
}

func TestDispatchRecordingDisabled(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithRecordCommands(false))
	v := memview.New("a", "")
	d.RegisterHandlerFunc("x", func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	})

	d.Dispatch(v, input.NewAction("x"))
	if total, _ := v.HistoryLen(); total != 0 {
		t.Errorf("expected nothing recorded, got %d", total)
	}
}

func TestPreHookCancels(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	called := false
	d.RegisterHandlerFunc("x", func(input.Action, *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	})
	d.HookManager().RegisterPre(hook.Pre("block", 10, func(*input.Action, *execctx.ExecutionContext) bool {
		return false
	}))

	result := d.Dispatch(memview.New("a", ""), input.NewAction("x"))
	if result.Status != handler.StatusCancelled {
		t.Errorf("expected cancelled, got %v", result.Status)
	}
	if called {
		t.Error("handler should not run")
	}
}

func TestPreHookRewritesArgs(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	var seen bool
	d.RegisterHandlerFunc("x", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		seen = action.Args.GetBool("flag")
		return handler.Success()
	})
	d.HookManager().RegisterPre(hook.Pre("mark", 10, func(action *input.Action, ctx *execctx.ExecutionContext) bool {
		*action = action.WithArg("flag", true)
		return true
	}))

	d.Dispatch(memview.New("a", ""), input.NewAction("x"))
	if !seen {
		t.Error("handler should see the argument set by the hook")
	}
}

func TestPostHookSeesResult(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	d.RegisterHandlerFunc("x", func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithMessage("done")
	})

	var msg string
	d.HookManager().RegisterPost(hook.Post("observe", 10, func(_ *input.Action, _ *execctx.ExecutionContext, r *handler.Result) {
		msg = r.Message
	}))

	d.Dispatch(memview.New("a", ""), input.NewAction("x"))
	if msg != "done" {
		t.Errorf("post hook saw %q", msg)
	}
}

func TestPanicRecovery(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithMetrics())
	d.RegisterHandlerFunc("boom", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("kaboom")
	})

	result := d.Dispatch(memview.New("a", ""), input.NewAction("boom"))
	if !errors.Is(result.Error, dispatcher.ErrPanic) {
		t.Errorf("expected ErrPanic, got %v", result.Error)
	}

	snap := d.Metrics().Snapshot()
	if snap.Panics != 1 || snap.Errors != 1 || snap.Dispatches != 1 {
		t.Errorf("unexpected metrics %+v", snap)
	}
	am, ok := d.Metrics().Action("boom")
	if !ok || am.Errors != 1 {
		t.Errorf("unexpected action metrics %+v", am)
	}
}

func TestCountLimit(t *testing.T) {
	cfg := dispatcher.DefaultConfig()
	cfg.MaxRepeatCount = 4
	d := dispatcher.New(cfg)

	var count int
	d.RegisterHandlerFunc("x", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		count = ctx.Count
		return handler.Success()
	})

	d.Dispatch(memview.New("a", ""), input.Action{Name: "x", Count: 100})
	if count != 4 {
		t.Errorf("expected count clamped to 4, got %d", count)
	}
}

type namespace struct{}

func (namespace) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	return handler.Success().WithMessage(action.Name)
}
func (namespace) CanHandle(name string) bool { return name == "ns_a" || name == "ns_b" }
func (namespace) Actions() []string { return []string{"ns_a", "ns_b"} }

func TestRegisterNamespace(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	d.RegisterNamespace(namespace{})

	if got := d.Commands("ns_"); len(got) != 2 {
		t.Fatalf("expected 2 actions, got %v", got)
	}
	result := d.Dispatch(memview.New("a", ""), input.NewAction("ns_b"))
	if result.Message != "ns_b" {
		t.Errorf("unexpected message %q", result.Message)
	}

	d.UnregisterHandler("ns_b")
	if d.Registry().Has("ns_b") {
		t.Error("ns_b should be gone")
	}
}

func TestMetricsCountEveryOutcome(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithMetrics())
	d.RegisterHandlerFunc("x", func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.NoOp()
	})
	d.HookManager().RegisterPre(hook.Pre("veto", 10, func(action *input.Action, _ *execctx.ExecutionContext) bool {
		return action.Name != "vetoed"
	}))

	v := memview.New("a", "")
	d.Dispatch(v, input.NewAction("x"))
	d.Dispatch(v, input.NewAction("vetoed"))
	d.Dispatch(v, input.NewAction("missing"))

	snap := d.Metrics().Snapshot()
	if snap.Dispatches != 3 || snap.NoOps != 1 || snap.Cancelled != 1 || snap.Errors != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestPanicPropagatesWithoutRecovery(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithPanicRecovery(false))
	d.RegisterHandler("boom", handler.Func(func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("kaboom")
	}))

	defer func() {
		if recover() == nil {
			t.Error("expected the panic to reach the caller")
		}
	}()
	d.Dispatch(memview.New("a", ""), input.NewAction("boom"))
}

package hook_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/dispatcher/hook"
	"github.com/dshills/incsel/internal/input"
)

func TestPre(t *testing.T) {
	called := false
	h := hook.Pre("test-pre", 100, func(action *input.Action, ctx *execctx.ExecutionContext) bool {
		called = true
		return true
	})

	if h.Name() != "test-pre" {
		t.Errorf("expected name 'test-pre', got %q", h.Name())
	}
	if h.Priority() != 100 {
		t.Errorf("expected priority 100, got %d", h.Priority())
	}
	if !h.PreDispatch(&input.Action{Name: "test"}, execctx.New()) {
		t.Error("expected PreDispatch to return true")
	}
	if !called {
		t.Error("expected PreDispatch to be called")
	}
}

func TestPreNilFunc(t *testing.T) {
	h := hook.Pre("nil", 0, nil)
	if !h.PreDispatch(&input.Action{}, execctx.New()) {
		t.Error("nil function should not cancel")
	}
}

func TestManagerPreOrder(t *testing.T) {
	m := hook.NewManager()
	var order []string
	add := func(name string, prio int) {
		m.RegisterPre(hook.Pre(name, prio, func(*input.Action, *execctx.ExecutionContext) bool {
			order = append(order, name)
			return true
		}))
	}
	add("low", 10)
	add("high", 1000)
	add("mid", 500)

	if !m.RunPreDispatch(&input.Action{Name: "x"}, execctx.New()) {
		t.Fatal("expected dispatch to continue")
	}
	want := []string{"high", "mid", "low"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestManagerPostOrder(t *testing.T) {
	m := hook.NewManager()
	m.RegisterPost(hook.Post("high", 1000, nil))
	m.RegisterPost(hook.Post("low", 10, nil))

	names := m.PostHookNames()
	if len(names) != 2 || names[0] != "low" || names[1] != "high" {
		t.Errorf("PostHookNames() = %v", names)
	}
}

func TestManagerCancel(t *testing.T) {
	m := hook.NewManager()
	ranLow := false
	m.RegisterPre(hook.Pre("stop", 100, func(*input.Action, *execctx.ExecutionContext) bool {
		return false
	}))
	m.RegisterPre(hook.Pre("after", 1, func(*input.Action, *execctx.ExecutionContext) bool {
		ranLow = true
		return true
	}))

	if m.RunPreDispatch(&input.Action{}, execctx.New()) {
		t.Error("expected cancellation")
	}
	if ranLow {
		t.Error("hooks after a cancel should not run")
	}
}

func TestManagerReplaceAndUnregister(t *testing.T) {
	m := hook.NewManager()
	m.RegisterPre(hook.Pre("a", 1, nil))
	m.RegisterPre(hook.Pre("a", 2, nil))

	if names := m.PreHookNames(); len(names) != 1 {
		t.Fatalf("duplicate name should replace, got %v", names)
	}

	m.Register(hook.NewAuditHook(nil))
	if len(m.PreHookNames()) != 2 || len(m.PostHookNames()) != 1 {
		t.Errorf("audit hook should register pre and post, got %v / %v", m.PreHookNames(), m.PostHookNames())
	}

	if !m.Unregister("audit") {
		t.Error("expected audit to be removed")
	}
	if m.Unregister("audit") {
		t.Error("second removal should report false")
	}
	if len(m.PostHookNames()) != 0 {
		t.Error("post hooks should be empty")
	}
}

func TestAuditHookLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := hook.NewAuditHook(zap.New(core))

	action := &input.Action{Name: "incremental_select_add"}
	ctx := execctx.New()
	h.PreDispatch(action, ctx)

	result := handler.Errorf("boom")
	h.PostDispatch(action, ctx, &result)

	if logs.FilterMessage("dispatch start").Len() != 1 {
		t.Error("expected dispatch start entry")
	}
	failed := logs.FilterMessage("dispatch failed").All()
	if len(failed) != 1 {
		t.Fatal("expected dispatch failed entry")
	}
	if failed[0].ContextMap()["command"] != "incremental_select_add" {
		t.Errorf("unexpected fields %v", failed[0].ContextMap())
	}
}

func TestCountLimitHook(t *testing.T) {
	h := hook.NewCountLimitHook(5)
	action := &input.Action{Count: 50}
	ctx := execctx.New().WithCount(50)

	h.PreDispatch(action, ctx)
	if action.Count != 5 || ctx.Count != 5 {
		t.Errorf("expected counts clamped to 5, got %d/%d", action.Count, ctx.Count)
	}

	unlimited := hook.NewCountLimitHook(0)
	action.Count = 50
	unlimited.PreDispatch(action, ctx)
	if action.Count != 50 {
		t.Error("zero limit should not clamp")
	}
}

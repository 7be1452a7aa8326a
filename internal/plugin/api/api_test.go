package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/incsel/internal/bridge"
	"github.com/dshills/incsel/internal/dispatcher"
	"github.com/dshills/incsel/internal/dispatcher/handlers/history"
	selcmd "github.com/dshills/incsel/internal/dispatcher/handlers/selection"
	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/engine/selection"
	"github.com/dshills/incsel/internal/engine/store"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/host/memview"
	"github.com/dshills/incsel/internal/plugin/lua"
	"github.com/dshills/incsel/internal/renderer/overlay"
)

type fixture struct {
	state  *lua.State
	engine *selection.Engine
	view   *memview.View
	active host.View
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	e := selection.New(store.New(0), overlay.NewMarker(overlay.DefaultKey, host.RegionStyle{}))
	d := dispatcher.NewWithDefaults()
	d.SetEngine(e)
	d.RegisterNamespace(selcmd.NewHandler())
	d.RegisterNamespace(history.NewHandler())
	d.HookManager().RegisterPre(bridge.New(e, selcmd.UndoableActions(), nil))

	state, err := lua.NewState()
	require.NoError(t, err)
	t.Cleanup(state.Close)

	f := &fixture{state: state, engine: e, view: memview.New("test", "0123456789abcdefghij")}
	f.active = f.view

	mod := NewModule(Context{
		Dispatcher: d,
		Engine:     e,
		ActiveView: func() host.View { return f.active },
	})
	require.NoError(t, state.Do(mod.Register))
	return f
}

func (f *fixture) global(name string) glua.LValue {
	return f.state.GetGlobal(name)
}

func TestRegisterRequiresContext(t *testing.T) {
	state, err := lua.NewState()
	require.NoError(t, err)
	defer state.Close()

	err = state.Do(NewModule(Context{}).Register)
	assert.ErrorIs(t, err, ErrIncompleteContext)
	assert.Equal(t, ModuleName, NewModule(Context{}).Name())
}

func TestAddFromScript(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.state.DoString(`
		incsel.set_selection({{anchor = 0, active = 5}})
		status = incsel.add()
		saved = incsel.saved()
		undoable = incsel.can_undo()
		redoable = incsel.can_redo()
	`))

	assert.Equal(t, "ok", f.global("status").String())
	assert.Equal(t, glua.LTrue, f.global("undoable"))
	assert.Equal(t, glua.LFalse, f.global("redoable"))
	assert.True(t, f.engine.Saved(f.view.ID()).Equals(region.Of(region.New(0, 5))))

	saved, ok := f.global("saved").(*glua.LTable)
	require.True(t, ok)
	assert.Equal(t, 1, saved.Len())
	first := saved.RawGetInt(1).(*glua.LTable)
	assert.Equal(t, glua.LNumber(0), first.RawGetString("anchor"))
	assert.Equal(t, glua.LNumber(5), first.RawGetString("active"))
}

func TestUndoRedoFromScript(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.state.DoString(`
		incsel.set_selection({{anchor = 0, active = 5}})
		incsel.add()
		undo = incsel.undo()
		after_undo = #incsel.saved()
		redoable = incsel.can_redo()
		redo = incsel.redo()
		after_redo = #incsel.selection()
	`))

	assert.Equal(t, "ok", f.global("undo").String())
	assert.Equal(t, glua.LNumber(0), f.global("after_undo"))
	assert.Equal(t, glua.LTrue, f.global("redoable"))
	assert.Equal(t, "ok", f.global("redo").String())
	assert.Equal(t, glua.LNumber(1), f.global("after_redo"))

	total, applied := f.view.HistoryLen()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, applied, "undo and redo step the command history too")
}

func TestClearWithNothingSavedIsNoOp(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.state.DoString(`status = incsel.clear()`))
	assert.Equal(t, "no-op", f.global("status").String())
}

func TestSetSelection(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.state.DoString(`
		incsel.set_selection({{anchor = 8, active = 2}, {anchor = 12}})
	`))
	assert.True(t, f.view.Selection().Equals(region.Of(region.New(8, 2), region.Caret(12))),
		"live = %v", f.view.Selection())

	tests := []struct {
		name string
		code string
	}{
		{"not a table", `incsel.set_selection(3)`},
		{"entry not a table", `incsel.set_selection({1, 2})`},
		{"missing anchor", `incsel.set_selection({{active = 1}})`},
		{"negative offset", `incsel.set_selection({{anchor = -1}})`},
		{"fractional offset", `incsel.set_selection({{anchor = 1.5}})`},
		{"fractional active", `incsel.set_selection({{anchor = 1, active = 2.25}})`},
		{"nan offset", `incsel.set_selection({{anchor = 0/0}})`},
		{"infinite offset", `incsel.set_selection({{anchor = 1/0}})`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, f.state.DoString(tt.code))
		})
	}
}

func TestNoActiveView(t *testing.T) {
	f := newFixture(t)
	f.active = nil

	for _, code := range []string{`incsel.add()`, `incsel.saved()`, `incsel.can_undo()`} {
		assert.Error(t, f.state.DoString(code), code)
	}
}

func TestUnknownViewCannotUndo(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.state.DoString(`u = incsel.can_undo(); r = incsel.can_redo()`))
	assert.Equal(t, glua.LFalse, f.global("u"))
	assert.Equal(t, glua.LFalse, f.global("r"))
	assert.False(t, f.engine.Store().Has(f.view.ID()), "querying should not create a history")
}

func TestRunAndCommands(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.state.DoString(`
		incsel.set_selection({{anchor = 0, active = 5}})
		status, count = incsel.add()
		names = incsel.commands("incremental_select_")
		first = names[1]
		total = #names
		undo = incsel.run("soft_undo")
	`))

	assert.Equal(t, "ok", f.global("status").String())
	assert.Equal(t, glua.LNumber(1), f.global("count"))
	assert.Equal(t, selcmd.ActionAdd, f.global("first").String())
	assert.Equal(t, glua.LNumber(5), f.global("total"))
	assert.Equal(t, "ok", f.global("undo").String())
	total, applied := f.view.HistoryLen()
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, applied, "soft undo should step the generic history")

	assert.Error(t, f.state.DoString(`incsel.run("no_such_command")`))
}

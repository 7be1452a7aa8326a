package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/incsel/internal/dispatcher/handlers/history"
	"github.com/dshills/incsel/internal/dispatcher/handlers/selection"
	"github.com/dshills/incsel/internal/input"
)

// commandFuncs maps module functions to dispatched actions.
var commandFuncs = map[string]string{
	"clear":    selection.ActionClear,
	"add":      selection.ActionAdd,
	"subtract": selection.ActionSubtract,
	"toggle":   selection.ActionToggle,
	"reorient": selection.ActionReorient,
	"undo":     history.ActionSoftUndo,
	"redo":     history.ActionSoftRedo,
}

// command returns a Lua function that dispatches action on the active view.
// fn() -> status, saved
func (m *Module) command(action string) lua.LGFunction {
	return func(L *lua.LState) int {
		return m.dispatch(L, action)
	}
}

// run(name) -> status, saved
// Dispatches any registered command, including soft_undo and soft_redo.
func (m *Module) run(L *lua.LState) int {
	return m.dispatch(L, L.CheckString(1))
}

func (m *Module) dispatch(L *lua.LState, action string) int {
	v := m.view(L, action)
	result := m.ctx.Dispatcher.Dispatch(v, input.NewAction(action).WithSource(input.SourcePlugin))
	if result.IsError() {
		L.RaiseError("%s: %v", action, result.Error)
		return 0
	}
	L.Push(lua.LString(result.Status.String()))
	L.Push(lua.LNumber(m.ctx.Engine.Saved(v.ID()).Len()))
	return 2
}

// commands([prefix]) -> {name, ...}
func (m *Module) commands(L *lua.LState) int {
	names := m.ctx.Dispatcher.Commands(L.OptString(1, ""))
	tbl := L.CreateTable(len(names), 0)
	for _, name := range names {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// saved() -> {{anchor=, active=}, ...}
func (m *Module) saved(L *lua.LState) int {
	v := m.view(L, "saved")
	L.Push(groupToTable(L, m.ctx.Engine.Saved(v.ID())))
	return 1
}

// selection() -> {{anchor=, active=}, ...}
func (m *Module) selection(L *lua.LState) int {
	v := m.view(L, "selection")
	L.Push(groupToTable(L, v.Selection()))
	return 1
}

// set_selection(regions) -> nil
func (m *Module) setSelection(L *lua.LState) int {
	tbl := L.CheckTable(1)
	g, err := tableToGroup(tbl)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	m.view(L, "set_selection").SetSelection(g)
	return 0
}

// can_undo() -> bool
func (m *Module) canUndo(L *lua.LState) int {
	v := m.view(L, "can_undo")
	L.Push(lua.LBool(m.ctx.Engine.Store().Has(v.ID()) && m.ctx.Engine.Store().Get(v.ID()).CanUndo()))
	return 1
}

// can_redo() -> bool
func (m *Module) canRedo(L *lua.LState) int {
	v := m.view(L, "can_redo")
	L.Push(lua.LBool(m.ctx.Engine.Store().Has(v.ID()) && m.ctx.Engine.Store().Get(v.ID()).CanRedo()))
	return 1
}

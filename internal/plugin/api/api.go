package api

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/engine/selection"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/input"
)

// ModuleName is the global the module is installed under.
const ModuleName = "incsel"

// ErrIncompleteContext is returned by Register when a required provider is nil.
var ErrIncompleteContext = errors.New("api: dispatcher, engine and active view are required")

// Dispatcher runs actions against a view.
type Dispatcher interface {
	Dispatch(view host.View, action input.Action) handler.Result

	// Commands lists registered action names starting with prefix.
	Commands(prefix string) []string
}

// Context supplies the editor state the module reads and drives.
type Context struct {
	Dispatcher Dispatcher
	Engine     *selection.Engine

	// ActiveView returns the focused view, or nil when none is open.
	ActiveView func() host.View
}

// Module implements the incsel Lua module.
type Module struct {
	ctx Context
}

// NewModule creates the module.
func NewModule(ctx Context) *Module {
	return &Module{ctx: ctx}
}

// Name returns the module name.
func (m *Module) Name() string {
	return ModuleName
}

// Register installs the module table as a global in L.
func (m *Module) Register(L *lua.LState) error {
	if m.ctx.Dispatcher == nil || m.ctx.Engine == nil || m.ctx.ActiveView == nil {
		return ErrIncompleteContext
	}

	mod := L.NewTable()
	for fn, action := range commandFuncs {
		L.SetField(mod, fn, L.NewFunction(m.command(action)))
	}
	L.SetField(mod, "run", L.NewFunction(m.run))
	L.SetField(mod, "commands", L.NewFunction(m.commands))
	L.SetField(mod, "saved", L.NewFunction(m.saved))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "set_selection", L.NewFunction(m.setSelection))
	L.SetField(mod, "can_undo", L.NewFunction(m.canUndo))
	L.SetField(mod, "can_redo", L.NewFunction(m.canRedo))

	L.SetGlobal(ModuleName, mod)
	return nil
}

// view returns the active view or raises a Lua error.
func (m *Module) view(L *lua.LState, fn string) host.View {
	v := m.ctx.ActiveView()
	if v == nil {
		L.RaiseError("%s: no active view", fn)
	}
	return v
}

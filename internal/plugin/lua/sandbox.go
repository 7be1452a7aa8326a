package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// removedGlobals are base functions that load code from disk or strings.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// openSafeLibraries opens only the libraries scripts may use.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug, channel, coroutine and package stay closed.
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}

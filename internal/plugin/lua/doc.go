// Package lua wraps gopher-lua in a sandboxed state for user scripts.
//
// Only the base, table, string and math libraries are opened. File and
// chunk loaders (dofile, loadfile, load, loadstring, require) are removed,
// so scripts can reach the editor only through modules registered by Go
// code:
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := state.DoFile("init.lua"); err != nil {
//	    return err
//	}
//
// A State is not goroutine-safe at the Lua level; the mutex only serializes
// calls coming from Go.
package lua

// Package api exposes the incremental selection commands to Lua scripts.
//
// Register installs a global table named incsel:
//
//	incsel.add()                 -- dispatches incremental_select_add
//	incsel.subtract()
//	incsel.clear()
//	incsel.toggle()
//	incsel.reorient()
//	incsel.undo()                -- dispatches soft_undo
//	incsel.redo()                -- dispatches soft_redo
//	incsel.run(name)             -- dispatches any registered command
//	incsel.commands([prefix])    -- sorted registered command names
//	incsel.saved()               -- {{anchor=, active=}, ...}
//	incsel.selection()           -- live selection, same shape
//	incsel.set_selection(tbl)    -- replace the live selection
//	incsel.can_undo()
//	incsel.can_redo()
//
// Command functions return the dispatch status ("ok", "no-op" or
// "cancelled") and the number of saved regions afterwards. A failed dispatch
// raises a Lua error. Every call acts on the view returned by
// Context.ActiveView.
package api

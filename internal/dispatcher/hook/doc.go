// Package hook provides pre/post dispatch hooks for the dispatcher.
//
// Pre-dispatch hooks run in descending priority order and may rewrite the
// action's arguments or cancel it. Post-dispatch hooks run in ascending
// priority order so the highest priority hook sees the final result.
//
//	manager := hook.NewManager()
//	manager.Register(hook.NewAuditHook(logger))
//	manager.RegisterPre(hook.NewCountLimitHook(1000))
//
// The undo/redo interception bridge is registered here as a pre-dispatch
// hook.
package hook

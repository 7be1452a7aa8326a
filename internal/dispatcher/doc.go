// Package dispatcher routes actions to handlers and coordinates execution.
//
// When an action is dispatched:
//
//  1. An ExecutionContext is built for the target view
//  2. Pre-dispatch hooks run (they can rewrite arguments or cancel)
//  3. The registry finds the handler for the action name
//  4. The handler runs, with optional panic recovery
//  5. Successful commands are recorded into the view's generic command
//     history when the view implements host.SoftHistory
//  6. Post-dispatch hooks run
//  7. Metrics are recorded (if enabled)
//
// Basic setup:
//
//	d := dispatcher.NewWithDefaults()
//	d.SetEngine(engine)
//	d.RegisterNamespace(selectionHandler)
//	d.HookManager().RegisterPre(bridge)
//
//	result := d.Dispatch(view, input.NewAction("incremental_select_add"))
package dispatcher

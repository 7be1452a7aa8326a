package dispatcher

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/dispatcher/execctx"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/dispatcher/hook"
	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/engine/selection"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/input"
)

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	hooks    *hook.Manager
	engine   *selection.Engine
	logger   *zap.Logger
	config   Config
	metrics  *Metrics
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		hooks:    hook.NewManager(),
		logger:   zap.NewNop(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	if config.MaxRepeatCount > 0 {
		d.hooks.RegisterPre(hook.NewCountLimitHook(config.MaxRepeatCount))
	}
	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetEngine sets the selection engine handed to handlers.
func (d *Dispatcher) SetEngine(e *selection.Engine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = e
}

// Engine returns the selection engine.
func (d *Dispatcher) Engine() *selection.Engine {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.engine
}

// SetLogger sets the logger handed to handlers.
func (d *Dispatcher) SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = l
}

// Dispatch executes an action against a view.
func (d *Dispatcher) Dispatch(view host.View, action input.Action) (result handler.Result) {
	start := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.RecordDispatch(action.Name, time.Since(start), result)
		}
	}()

	if view == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoView, action.Name))
	}

	ctx := d.buildContext(view)
	if action.Count > 0 {
		ctx.Count = action.Count
	}

	if !d.hooks.RunPreDispatch(&action, ctx) {
		return handler.Cancelled("cancelled by hook")
	}

	h := d.registry.Get(action.Name)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	before := view.Selection()

	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, action, ctx)
	} else {
		result = h.Handle(action, ctx)
	}

	if d.config.RecordCommands {
		d.record(view, action, before, result)
	}

	d.hooks.RunPostDispatch(&action, ctx, &result)
	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Logger.Error("handler panic",
				zap.String("command", action.Name),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))
			if d.metrics != nil {
				d.metrics.RecordPanic()
			}
		}
	}()

	return h.Handle(action, ctx)
}

// record appends a successful command to the view's generic history.
func (d *Dispatcher) record(view host.View, action input.Action, before region.Group, result handler.Result) {
	if !result.Recordable() {
		return
	}
	sh, ok := view.(host.SoftHistory)
	if !ok {
		return
	}

	rec := host.CommandRecord{
		Name:  result.RecordName(action.Name),
		Args:  action.Args.Clone(),
		Count: action.Count,
	}
	sh.Record(rec, before, view.Selection())
}

// buildContext builds an execution context for a view.
func (d *Dispatcher) buildContext(view host.View) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return execctx.New().
		WithView(view).
		WithEngine(d.engine).
		WithLogger(d.logger.With(zap.Uint64("view", uint64(view.ID()))))
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn func(input.Action, *execctx.ExecutionContext) handler.Result) {
	d.registry.Register(actionName, handler.Func(fn))
}

// Commands returns the sorted names of registered actions starting with
// prefix.
func (d *Dispatcher) Commands(prefix string) []string {
	return d.registry.Names(prefix)
}

// RegisterNamespace registers a namespace handler under each of its actions.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	adapter := handler.NewNamespaceAdapter(h)
	for _, name := range h.Actions() {
		d.registry.Register(name, adapter)
	}
}

// UnregisterHandler removes a handler for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.registry.Unregister(actionName)
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// HookManager returns the hook manager.
func (d *Dispatcher) HookManager() *hook.Manager {
	return d.hooks
}

// Metrics returns the metrics collector (nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

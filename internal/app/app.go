package app

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/bridge"
	"github.com/dshills/incsel/internal/config"
	"github.com/dshills/incsel/internal/config/loader"
	"github.com/dshills/incsel/internal/config/notify"
	"github.com/dshills/incsel/internal/config/watcher"
	"github.com/dshills/incsel/internal/dispatcher"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/dispatcher/handlers/history"
	"github.com/dshills/incsel/internal/dispatcher/handlers/selection"
	"github.com/dshills/incsel/internal/dispatcher/hook"
	"github.com/dshills/incsel/internal/engine/region"
	engine "github.com/dshills/incsel/internal/engine/selection"
	"github.com/dshills/incsel/internal/engine/store"
	"github.com/dshills/incsel/internal/event"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/input"
	"github.com/dshills/incsel/internal/plugin/api"
	"github.com/dshills/incsel/internal/plugin/lua"
	"github.com/dshills/incsel/internal/renderer/overlay"
)

// Application is the central coordinator for all components.
type Application struct {
	mu sync.RWMutex

	// cmdMu serializes commands with settings reloads, which arrive on the
	// watcher goroutine.
	cmdMu sync.Mutex

	opts     Options
	settings *config.Settings

	logging *Logging
	logger  *zap.Logger

	bus        *event.Bus
	store      *store.Store
	marker     *overlay.Marker
	engine     *engine.Engine
	dispatcher *dispatcher.Dispatcher
	bridge     *bridge.UndoRedo
	keymap     *input.Keymap
	listeners  *notify.Registry
	scripting  *lua.State
	watcher    *watcher.Watcher

	documents *DocumentManager
	closed    bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the settings file. Empty uses defaults only.
	ConfigPath string

	// LogLevel overrides logging.level when set.
	LogLevel string

	// LogFile overrides logging.file when set.
	LogFile string

	// Logger replaces the logger built from the settings.
	Logger *zap.Logger

	// FS reads the settings file. Defaults to the OS file system.
	FS loader.FileSystem

	// Env supplies environment overrides. Defaults to the process environment.
	Env loader.Loader
}

// New creates an Application and starts every component.
func New(opts Options) (*Application, error) {
	if opts.FS == nil {
		opts.FS = loader.OSFS{}
	}
	if opts.Env == nil {
		opts.Env = loader.NewEnvLoader()
	}

	app := &Application{
		opts:      opts,
		documents: NewDocumentManager(),
		listeners: notify.NewRegistry(),
	}
	if err := app.bootstrap(); err != nil {
		app.shutdown()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	settings, err := app.loadSettings()
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.settings = settings

	if err := app.initLogging(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	app.bus = event.NewBus()

	if err := app.initEngine(); err != nil {
		return &InitError{Component: "engine", Err: err}
	}
	app.initDispatcher()

	if app.keymap, err = input.NewKeymap(settings.Keymap); err != nil {
		return &InitError{Component: "keymap", Err: err}
	}

	if err := app.initScripting(); err != nil {
		return &InitError{Component: "scripting", Err: err}
	}

	app.logger.Info("started",
		zap.String("config", app.opts.ConfigPath),
		zap.Strings("undoable", settings.History.UndoableCommands),
	)
	return nil
}

func (app *Application) loadSettings() (*config.Settings, error) {
	settings, err := config.LoadWith(app.opts.FS, app.opts.ConfigPath, app.opts.Env)
	if err != nil {
		return nil, err
	}
	if app.opts.LogLevel != "" {
		settings.Logging.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		settings.Logging.File = app.opts.LogFile
	}
	return settings, nil
}

func (app *Application) initLogging() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
		return nil
	}
	logging, err := NewLogger(app.settings.Logging)
	if err != nil {
		return err
	}
	app.logging = logging
	app.logger = logging.Logger
	return nil
}

func (app *Application) initEngine() error {
	style, err := app.settings.Marker.RegionStyle()
	if err != nil {
		return err
	}

	app.store = store.New(app.settings.History.MaxEntries)
	app.marker = overlay.NewMarker(app.settings.Marker.Key, style)
	app.engine = engine.New(app.store, app.marker,
		engine.WithLogger(app.logger.Named("engine")),
		engine.WithCommitFunc(app.publishCommit),
	)
	return nil
}

func (app *Application) initDispatcher() {
	app.dispatcher = dispatcher.New(dispatcher.DefaultConfig().WithMetrics())
	app.dispatcher.SetEngine(app.engine)
	app.dispatcher.SetLogger(app.logger.Named("dispatch"))

	app.dispatcher.RegisterNamespace(selection.NewHandler())
	app.dispatcher.RegisterNamespace(history.NewHandler())

	app.bridge = bridge.New(app.engine, app.settings.History.UndoableCommands, app.logger.Named("bridge"))
	app.dispatcher.HookManager().Register(app.bridge)
	app.dispatcher.HookManager().Register(hook.NewAuditHook(app.logger.Named("audit")))
}

func (app *Application) initScripting() error {
	state, err := lua.NewState()
	if err != nil {
		return err
	}
	app.scripting = state

	mod := api.NewModule(api.Context{
		Dispatcher: scriptDispatcher{app},
		Engine:     app.engine,
		ActiveView: app.ActiveView,
	})
	if err := state.Do(mod.Register); err != nil {
		return err
	}

	if init := app.settings.Scripting.Init; init != "" {
		if err := state.DoFile(init); err != nil {
			return &OperationError{Op: "run", Target: init, Err: err}
		}
		app.logger.Info("init script loaded", zap.String("path", init))
	}
	return nil
}

// scriptDispatcher runs script commands under the same lock as key commands.
type scriptDispatcher struct {
	app *Application
}

func (d scriptDispatcher) Dispatch(v host.View, action input.Action) handler.Result {
	return d.app.dispatchTo(v, action)
}

func (d scriptDispatcher) Commands(prefix string) []string {
	return d.app.dispatcher.Commands(prefix)
}

// publishCommit forwards saved-selection changes to the event bus.
func (app *Application) publishCommit(view host.ViewID, present region.Group) {
	app.publish(event.TopicSelectionCommitted, event.SelectionPayload{View: view, Present: present.Clone()})
}

func (app *Application) publish(topic event.Topic, payload any) {
	if err := app.bus.Publish(context.Background(), event.NewEvent(topic, payload, "app")); err != nil {
		app.logger.Warn("event handler failed", zap.String("topic", string(topic)), zap.Error(err))
	}
}

// Settings returns a copy of the current settings.
func (app *Application) Settings() *config.Settings {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.settings.Clone()
}

// Logger returns the application logger.
func (app *Application) Logger() *zap.Logger {
	return app.logger
}

// Bus returns the event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Engine returns the selection engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Bridge returns the undo/redo interception hook.
func (app *Application) Bridge() *bridge.UndoRedo {
	return app.bridge
}

// Listeners returns the settings-change registry.
func (app *Application) Listeners() *notify.Registry {
	return app.listeners
}

// Documents returns the document manager.
func (app *Application) Documents() *DocumentManager {
	return app.documents
}

// Scripting returns the Lua state.
func (app *Application) Scripting() *lua.State {
	return app.scripting
}

// Close stops the watcher and scripting, erases every marker, and flushes
// the log. Closing twice returns ErrClosed.
func (app *Application) Close() error {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return ErrClosed
	}
	app.closed = true
	app.mu.Unlock()

	for _, doc := range app.documents.All() {
		app.engine.Forget(doc.View)
	}
	app.logMetrics()
	app.logger.Info("shutdown", zap.Int("documents", app.documents.Count()))
	app.shutdown()
	return nil
}

func (app *Application) logMetrics() {
	m := app.dispatcher.Metrics()
	if m == nil {
		return
	}
	for _, am := range m.Actions() {
		app.logger.Debug("command stats",
			zap.String("command", am.Name),
			zap.Uint64("dispatches", am.Dispatches),
			zap.Uint64("changed", am.Changed),
			zap.Uint64("noop", am.NoOps),
			zap.Uint64("errors", am.Errors),
			zap.Uint64("restored", am.Restored),
			zap.Duration("max", am.MaxDuration),
		)
	}
	snap := m.Snapshot()
	app.logger.Info("dispatch totals",
		zap.Uint64("dispatches", snap.Dispatches),
		zap.Uint64("errors", snap.Errors),
		zap.Uint64("panics", snap.Panics),
	)
}

func (app *Application) shutdown() {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	if app.scripting != nil {
		app.scripting.Close()
	}
	if app.logging != nil {
		app.logging.Close()
	}
}

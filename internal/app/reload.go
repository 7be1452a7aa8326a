package app

import (
	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/config"
	"github.com/dshills/incsel/internal/config/watcher"
	"github.com/dshills/incsel/internal/input"
)

// Reload re-reads the settings and applies them. On error the current
// settings stay in effect. Reload waits for a running command to finish.
func (app *Application) Reload() error {
	app.cmdMu.Lock()
	defer app.cmdMu.Unlock()

	settings, err := app.loadSettings()
	if err != nil {
		app.logger.Warn("config reload failed", zap.String("path", app.opts.ConfigPath), zap.Error(err))
		return &OperationError{Op: "reload", Target: app.opts.ConfigPath, Err: err}
	}
	if err := app.apply(settings); err != nil {
		app.logger.Warn("config reload failed", zap.String("path", app.opts.ConfigPath), zap.Error(err))
		return &OperationError{Op: "reload", Target: app.opts.ConfigPath, Err: err}
	}

	app.logger.Info("config reloaded", zap.Int("views", app.listeners.Len()))
	app.listeners.Notify(settings.Clone())
	return nil
}

// apply pushes settings into the running components.
func (app *Application) apply(settings *config.Settings) error {
	style, err := settings.Marker.RegionStyle()
	if err != nil {
		return err
	}
	km, err := input.NewKeymap(settings.Keymap)
	if err != nil {
		return err
	}

	app.marker.SetStyle(style)
	app.store.SetMaxEntries(settings.History.MaxEntries)
	app.bridge.SetTracked(settings.History.UndoableCommands)
	if app.logging != nil {
		app.logging.SetLevel(settings.Logging.Level)
	}

	app.mu.Lock()
	app.settings = settings
	app.keymap = km
	app.mu.Unlock()
	return nil
}

// Watch reloads the settings whenever the settings file changes. It is a
// no-op without a settings file.
func (app *Application) Watch() error {
	if app.opts.ConfigPath == "" {
		return nil
	}
	w, err := watcher.New(app.opts.ConfigPath, func(string) {
		_ = app.Reload()
	}, watcher.WithLogger(app.logger.Named("watcher")))
	if err != nil {
		return &OperationError{Op: "watch", Target: app.opts.ConfigPath, Err: err}
	}

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
	return nil
}

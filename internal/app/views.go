package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/config"
	"github.com/dshills/incsel/internal/dispatcher/handler"
	"github.com/dshills/incsel/internal/event"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/input"
)

// OpenView opens a scratch document over text and makes it active.
func (app *Application) OpenView(text string) *Document {
	return app.open(NewDocument("", text))
}

// OpenFile opens the file at path and makes it active.
func (app *Application) OpenFile(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &OperationError{Op: "open", Target: path, Err: err}
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &OperationError{Op: "open", Target: path, Err: err}
	}
	return app.open(NewDocument(abs, string(data))), nil
}

func (app *Application) open(doc *Document) *Document {
	app.store.Open(doc.ID())
	app.documents.Add(doc)
	app.listeners.Add(doc.ID(), app.settingsChanged)

	app.logger.Debug("view opened", zap.Uint64("view", uint64(doc.ID())), zap.String("name", doc.Name()))
	app.publish(event.TopicViewActivated, event.ViewPayload{View: doc.ID(), Name: doc.Name()})
	return doc
}

// CloseView discards the selection history of a view and stops notifying it.
func (app *Application) CloseView(id host.ViewID) error {
	doc, ok := app.documents.Remove(id)
	if !ok {
		return &OperationError{Op: "close", Err: ErrDocumentNotFound}
	}
	app.engine.Forget(doc.View)
	app.listeners.Remove(id)

	app.logger.Debug("view closed", zap.Uint64("view", uint64(id)))
	app.publish(event.TopicViewClosed, event.ViewPayload{View: id, Name: doc.Name()})
	return nil
}

// Activate makes the view with id the target of dispatched actions.
func (app *Application) Activate(id host.ViewID) error {
	doc, err := app.documents.SetActive(id)
	if err != nil {
		return err
	}
	app.publish(event.TopicViewActivated, event.ViewPayload{View: doc.ID(), Name: doc.Name()})
	return nil
}

// ActiveView returns the active view, or nil when none is open.
func (app *Application) ActiveView() host.View {
	doc := app.documents.Active()
	if doc == nil {
		return nil
	}
	return doc.View
}

// Dispatch runs action against the active view.
func (app *Application) Dispatch(action input.Action) handler.Result {
	v := app.ActiveView()
	if v == nil {
		return handler.Error(ErrNoActiveDocument)
	}
	return app.dispatchTo(v, action)
}

func (app *Application) dispatchTo(v host.View, action input.Action) handler.Result {
	app.cmdMu.Lock()
	defer app.cmdMu.Unlock()
	return app.dispatcher.Dispatch(v, action)
}

// HandleKey dispatches the command bound to key. Returns false when the key
// is unbound.
func (app *Application) HandleKey(key string) (handler.Result, bool) {
	app.mu.RLock()
	km := app.keymap
	app.mu.RUnlock()

	action, ok := km.Lookup(key)
	if !ok {
		return handler.Result{}, false
	}
	return app.Dispatch(action), true
}

// settingsChanged redraws a view's marker after a reload.
func (app *Application) settingsChanged(id host.ViewID, _ *config.Settings) {
	doc, ok := app.documents.Get(id)
	if !ok {
		return
	}
	app.engine.Resync(doc.View)
}

package selection

import (
	"go.uber.org/zap"

	"github.com/dshills/incsel/internal/engine/history"
	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/engine/store"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/renderer/overlay"
)

// CommitFunc is called after a command changes a view's saved selection.
type CommitFunc func(view host.ViewID, present region.Group)

// Result reports what a command did.
type Result struct {
	// Committed is true when the history gained or replayed a snapshot.
	Committed bool

	// Toggle is set when the command resolved through Toggle.
	Toggle *Resolution

	// LiveOnly is true when the live selection was replaced but the saved
	// selection stayed the same.
	LiveOnly bool
}

// Engine runs selection commands against views.
type Engine struct {
	store    *store.Store
	marker   *overlay.Marker
	logger   *zap.Logger
	onCommit CommitFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCommitFunc sets the commit callback.
func WithCommitFunc(fn CommitFunc) Option {
	return func(e *Engine) {
		e.onCommit = fn
	}
}

// New creates an engine over the given store and marker.
func New(s *store.Store, m *overlay.Marker, opts ...Option) *Engine {
	e := &Engine{
		store:  s,
		marker: m,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the history store.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Marker returns the overlay marker.
func (e *Engine) Marker() *overlay.Marker {
	return e.marker
}

// Clear commits an empty selection.
func (e *Engine) Clear(v host.View) Result {
	h := e.store.Get(v.ID())
	return Result{Committed: e.commit(v, h, region.Group{})}
}

// Add merges the live selection into the saved one.
func (e *Engine) Add(v host.View) Result {
	h := e.store.Get(v.ID())
	saved := h.Present()
	live := v.Selection()

	if !saved.IsEmpty() && live.Equals(saved) {
		e.logger.Debug("add on unchanged selection, toggling", zap.Uint64("view", uint64(v.ID())))
		return e.toggle(v, h)
	}

	added := region.Difference(live, saved)
	if added.IsEmpty() {
		e.logger.Debug("add with nothing new, toggling", zap.Uint64("view", uint64(v.ID())))
		return e.toggle(v, h)
	}

	merged := region.Union(saved, live)
	h.RecordChange(added)
	v.SetSelection(merged)
	return Result{Committed: e.commit(v, h, merged)}
}

// Subtract removes the live selection from the saved one.
func (e *Engine) Subtract(v host.View) Result {
	h := e.store.Get(v.ID())
	live := v.Selection()

	rest := region.Difference(h.Present(), live)
	h.RecordChange(live)
	v.SetSelection(rest)
	committed := e.commit(v, h, rest)
	return Result{Committed: committed, LiveOnly: !committed && !rest.Equals(live)}
}

// Toggle switches between the saved selection and a single caret.
func (e *Engine) Toggle(v host.View) Result {
	return e.toggle(v, e.store.Get(v.ID()))
}

func (e *Engine) toggle(v host.View, h *history.SelectionHistory) Result {
	res := Resolve(h.Present(), h.Previous(), v.Selection(), h.LastChange())
	if res.Outcome != Untouched {
		v.SetSelection(res.Selection)
	}

	e.logger.Debug("toggle",
		zap.Uint64("view", uint64(v.ID())),
		zap.Stringer("outcome", res.Outcome),
		zap.Int("regions", res.Selection.Len()),
	)
	return Result{Toggle: &res}
}

// Reorient points every live region forward.
func (e *Engine) Reorient(v host.View) Result {
	live := v.Selection()
	if out := live.Reorient(); !out.Equals(live) {
		v.SetSelection(out)
	}
	return Result{}
}

// Undo replays the previous saved selection into the live selection.
func (e *Engine) Undo(v host.View) Result {
	h := e.store.Get(v.ID())
	ok := h.Undo()
	e.apply(v, h)
	return Result{Committed: ok}
}

// Redo replays the next saved selection into the live selection.
func (e *Engine) Redo(v host.View) Result {
	h := e.store.Get(v.ID())
	ok := h.Redo()
	e.apply(v, h)
	return Result{Committed: ok}
}

// Saved returns the committed selection of a view.
func (e *Engine) Saved(id host.ViewID) region.Group {
	return e.store.Get(id).Present()
}

// Forget drops the history of a closed view and erases its marker.
func (e *Engine) Forget(v host.View) {
	e.store.Remove(v.ID())
	e.marker.Erase(v)
}

// Resync redraws the marker from the saved selection.
func (e *Engine) Resync(v host.View) {
	e.marker.Sync(v, e.store.Get(v.ID()).Present())
}

func (e *Engine) apply(v host.View, h *history.SelectionHistory) {
	present := h.Present()
	v.SetSelection(present)
	e.marker.Sync(v, present)
	if e.onCommit != nil {
		e.onCommit(v.ID(), present)
	}
}

func (e *Engine) commit(v host.View, h *history.SelectionHistory, g region.Group) bool {
	changed := h.Push(g)
	e.marker.Sync(v, h.Present())

	if changed {
		e.logger.Debug("selection committed",
			zap.Uint64("view", uint64(v.ID())),
			zap.Int("regions", g.Len()),
			zap.Int("undo", h.UndoCount()),
		)
		if e.onCommit != nil {
			e.onCommit(v.ID(), h.Present())
		}
	}
	return changed
}

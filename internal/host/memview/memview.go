// Package memview provides an in-memory editor view implementing the host
// interfaces. It backs the terminal demo, the Lua bindings, and tests.
package memview

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/host"
)

var nextID atomic.Uint64

// Overlay is a drawn region set.
type Overlay struct {
	Group region.Group
	Style host.RegionStyle
}

// entry is one command in the generic history.
type entry struct {
	rec    host.CommandRecord
	before region.Group
	after  region.Group
}

// View is an in-memory document view.
type View struct {
	mu sync.Mutex

	id   host.ViewID
	name string
	text string

	selection region.Group
	overlays  map[string]Overlay

	// Generic command history; entries[:pos] are applied.
	entries []entry
	pos     int
}

// New creates a view over text with a caret at offset 0.
func New(name, text string) *View {
	return &View{
		id:        host.ViewID(nextID.Add(1)),
		name:      name,
		text:      text,
		selection: region.Of(region.Caret(0)),
		overlays:  make(map[string]Overlay),
	}
}

// ID implements host.View.
func (v *View) ID() host.ViewID {
	return v.id
}

// Name returns the view name.
func (v *View) Name() string {
	return v.name
}

// Text returns the document text.
func (v *View) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.text
}

// Len returns the document length in bytes.
func (v *View) Len() region.Offset {
	v.mu.Lock()
	defer v.mu.Unlock()
	return region.Offset(len(v.text))
}

// Selection implements host.Selector.
func (v *View) Selection() region.Group {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Clone()
}

// SetSelection implements host.Selector.
// Regions are clamped to the document, exact duplicates are dropped, and
// order is preserved.
func (v *View) SetSelection(g region.Group) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = v.normalizeLocked(g)
}

// AddSelection appends a region to the live selection.
func (v *View) AddSelection(r region.Region) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = v.normalizeLocked(append(v.selection.Clone(), r))
}

// MapSelection replaces every live region with f(region).
func (v *View) MapSelection(f func(r region.Region) region.Region) {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(region.Group, len(v.selection))
	for i, r := range v.selection {
		out[i] = f(r)
	}
	v.selection = v.normalizeLocked(out)
}

func (v *View) normalizeLocked(g region.Group) region.Group {
	max := region.Offset(len(v.text))
	out := make(region.Group, 0, len(g))
	for _, r := range g {
		r = region.New(clamp(r.Anchor, max), clamp(r.Active, max))
		if !out.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

func clamp(o, max region.Offset) region.Offset {
	if o < 0 {
		return 0
	}
	if o > max {
		return max
	}
	return o
}

// AddRegions implements host.RegionDrawer.
func (v *View) AddRegions(key string, g region.Group, style host.RegionStyle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.overlays[key] = Overlay{Group: g.Clone(), Style: style}
}

// EraseRegions implements host.RegionDrawer.
func (v *View) EraseRegions(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.overlays, key)
}

// Regions returns the overlay drawn under key.
func (v *View) Regions(key string) (Overlay, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	o, ok := v.overlays[key]
	if !ok {
		return Overlay{}, false
	}
	return Overlay{Group: o.Group.Clone(), Style: o.Style}, true
}

// CommandHistory implements host.CommandLog.
func (v *View) CommandHistory(index int) (host.CommandRecord, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// index 0 is entries[pos-1], index 1 is entries[pos].
	i := v.pos - 1 + index
	if i < 0 || i >= len(v.entries) {
		return host.CommandRecord{}, host.ErrNoCommandHistory
	}
	return v.entries[i].rec, nil
}

// Record implements host.SoftHistory.
// Anything past the history cursor is discarded.
func (v *View) Record(rec host.CommandRecord, before, after region.Group) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.entries = append(v.entries[:v.pos], entry{
		rec:    rec,
		before: before.Clone(),
		after:  after.Clone(),
	})
	v.pos = len(v.entries)
}

// SoftUndo implements host.SoftHistory.
func (v *View) SoftUndo(restoreSelection bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pos == 0 {
		return false
	}
	v.pos--
	if restoreSelection {
		v.selection = v.normalizeLocked(v.entries[v.pos].before)
	}
	return true
}

// SoftRedo implements host.SoftHistory.
func (v *View) SoftRedo(restoreSelection bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pos >= len(v.entries) {
		return false
	}
	if restoreSelection {
		v.selection = v.normalizeLocked(v.entries[v.pos].after)
	}
	v.pos++
	return true
}

// HistoryLen returns the number of recorded commands and the cursor position.
func (v *View) HistoryLen() (total, applied int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.entries), v.pos
}

var (
	_ host.View        = (*View)(nil)
	_ host.SoftHistory = (*View)(nil)
)

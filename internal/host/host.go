// Package host defines the boundary between the selection engine and the
// editor that embeds it.
//
// The editor owns the live selection, its generic command history, and the
// drawing of region overlays. The engine only reads and writes through the
// interfaces declared here.
package host

import (
	"errors"

	"github.com/dshills/incsel/internal/engine/region"
)

// ErrNoCommandHistory is returned when the editor has no command at the
// requested history index.
var ErrNoCommandHistory = errors.New("host: no command history at index")

// ViewID identifies an open document view.
// It is stable for the life of the view and unique within the process.
type ViewID uint64

// CommandRecord describes one entry of the editor's generic command history.
type CommandRecord struct {
	Name  string
	Args  map[string]any
	Count int
}

// DrawFlags control how a region overlay is drawn.
type DrawFlags uint8

const (
	// DrawFill fills the region background.
	DrawFill DrawFlags = 0
	// DrawOutline draws an outline around the region.
	DrawOutline DrawFlags = 1
	// DrawUnderline underlines the region.
	DrawUnderline DrawFlags = 2
	// DrawHidden registers the overlay without drawing it.
	DrawHidden DrawFlags = 4
)

// String returns the flag name.
func (f DrawFlags) String() string {
	switch f {
	case DrawFill:
		return "fill"
	case DrawOutline:
		return "outline"
	case DrawUnderline:
		return "underline"
	case DrawHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// RegionStyle is the presentation of a region overlay.
type RegionStyle struct {
	Scope string
	Flags DrawFlags
}

// Selector gives access to the live selection.
type Selector interface {
	// Selection returns the live selection in display order.
	Selection() region.Group

	// SetSelection replaces the live selection.
	SetSelection(g region.Group)
}

// CommandLog exposes the editor's generic command history.
type CommandLog interface {
	// CommandHistory returns the command at index: 0 is the command generic
	// undo would revert, 1 the command generic redo would reapply, and
	// negative values walk further back. Returns ErrNoCommandHistory when
	// there is none.
	CommandHistory(index int) (CommandRecord, error)
}

// RegionDrawer draws non-destructive overlays keyed by name.
type RegionDrawer interface {
	AddRegions(key string, g region.Group, style RegionStyle)
	EraseRegions(key string)
}

// View is a document view as seen by the engine.
type View interface {
	ID() ViewID
	Selector
	CommandLog
	RegionDrawer
}

// SoftHistory is implemented by views whose generic command history is
// driven through the dispatcher.
type SoftHistory interface {
	// Record appends a command with the live selection before and after it.
	Record(rec CommandRecord, before, after region.Group)

	// SoftUndo steps the command history back one entry. When
	// restoreSelection is set the selection from before the command is
	// restored. Returns false when there is nothing to undo.
	SoftUndo(restoreSelection bool) bool

	// SoftRedo steps the command history forward one entry.
	SoftRedo(restoreSelection bool) bool
}

// Package overlay draws the committed selection as a visual marker.
//
// The marker is presentation only. It is derived from the selection history
// on every mutation and is never read back as the source of truth.
package overlay

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/host"
)

// DefaultKey is the per-installation overlay key.
const DefaultKey = "IncrementalMultiSelect"

// Marker renders saved groups under a fixed key.
type Marker struct {
	mu    sync.RWMutex
	key   string
	style host.RegionStyle
}

// NewMarker creates a marker drawing under key with the given style.
func NewMarker(key string, style host.RegionStyle) *Marker {
	if key == "" {
		key = DefaultKey
	}
	return &Marker{key: key, style: style}
}

// Key returns the overlay key.
func (m *Marker) Key() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.key
}

// Style returns the current style.
func (m *Marker) Style() host.RegionStyle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.style
}

// SetStyle changes the style used by later Sync calls.
func (m *Marker) SetStyle(style host.RegionStyle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.style = style
}

// Sync draws g on the view, or erases the marker when g is empty.
func (m *Marker) Sync(d host.RegionDrawer, g region.Group) {
	m.mu.RLock()
	key, style := m.key, m.style
	m.mu.RUnlock()

	if g.IsEmpty() {
		d.EraseRegions(key)
		return
	}
	d.AddRegions(key, g, style)
}

// Erase removes the marker from the view.
func (m *Marker) Erase(d host.RegionDrawer) {
	d.EraseRegions(m.Key())
}

// ParseFlags converts a style name to draw flags.
func ParseFlags(name string) (host.DrawFlags, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fill", "":
		return host.DrawFill, nil
	case "outline":
		return host.DrawOutline, nil
	case "underline":
		return host.DrawUnderline, nil
	case "hidden":
		return host.DrawHidden, nil
	default:
		return 0, fmt.Errorf("unknown marker style %q", name)
	}
}

package app

import (
	"path/filepath"
	"sync"

	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/host/memview"
)

// Document is an open view and where it came from.
type Document struct {
	// Path is the absolute file path (empty for scratch views).
	Path string

	// View holds the text and the live selection.
	View *memview.View
}

// NewDocument creates a document over text.
func NewDocument(path, text string) *Document {
	name := "Untitled"
	if path != "" {
		name = filepath.Base(path)
	}
	return &Document{Path: path, View: memview.New(name, text)}
}

// ID returns the view id.
func (d *Document) ID() host.ViewID {
	return d.View.ID()
}

// Name returns the display name.
func (d *Document) Name() string {
	return d.View.Name()
}

// IsScratch returns true if the document has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// DocumentManager tracks open documents in open order.
type DocumentManager struct {
	mu     sync.RWMutex
	docs   []*Document
	active *Document
}

// NewDocumentManager creates an empty manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{}
}

// Add registers doc and makes it active.
func (dm *DocumentManager) Add(doc *Document) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.docs = append(dm.docs, doc)
	dm.active = doc
}

// Get returns the document with id.
func (dm *DocumentManager) Get(id host.ViewID) (*Document, bool) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	for _, d := range dm.docs {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

// Remove drops the document with id. If it was active, the most recently
// opened remaining document becomes active.
func (dm *DocumentManager) Remove(id host.ViewID) (*Document, bool) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	for i, d := range dm.docs {
		if d.ID() != id {
			continue
		}
		dm.docs = append(dm.docs[:i], dm.docs[i+1:]...)
		if dm.active == d {
			dm.active = nil
			if n := len(dm.docs); n > 0 {
				dm.active = dm.docs[n-1]
			}
		}
		return d, true
	}
	return nil, false
}

// Active returns the active document, or nil.
func (dm *DocumentManager) Active() *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.active
}

// SetActive makes the document with id active.
func (dm *DocumentManager) SetActive(id host.ViewID) (*Document, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, d := range dm.docs {
		if d.ID() == id {
			dm.active = d
			return d, nil
		}
	}
	return nil, ErrDocumentNotFound
}

// All returns the open documents in open order.
func (dm *DocumentManager) All() []*Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	out := make([]*Document, len(dm.docs))
	copy(out, dm.docs)
	return out
}

// Count returns the number of open documents.
func (dm *DocumentManager) Count() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.docs)
}

package dispatcher

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dshills/incsel/internal/dispatcher/handler"
)

// Metrics counts dispatch outcomes per command.
type Metrics struct {
	mu      sync.Mutex
	actions map[string]*ActionMetrics
	panics  uint64
}

// ActionMetrics are the counters for one command.
type ActionMetrics struct {
	Name string

	Dispatches uint64
	Changed    uint64 // StatusOK
	NoOps      uint64
	Errors     uint64
	Cancelled  uint64

	// Restored counts dispatches whose selection came from the selection
	// history rather than the generic command history.
	Restored uint64

	TotalDuration time.Duration
	MaxDuration   time.Duration
}

// Snapshot sums the counters of every command.
type Snapshot struct {
	Dispatches    uint64
	Changed       uint64
	NoOps         uint64
	Errors        uint64
	Cancelled     uint64
	Restored      uint64
	Panics        uint64
	TotalDuration time.Duration
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{actions: make(map[string]*ActionMetrics)}
}

// RecordDispatch counts one dispatch of actionName.
func (m *Metrics) RecordDispatch(actionName string, d time.Duration, result handler.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am := m.actions[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actions[actionName] = am
	}

	am.Dispatches++
	am.TotalDuration += d
	am.MaxDuration = max(am.MaxDuration, d)
	switch result.Status {
	case handler.StatusOK:
		am.Changed++
	case handler.StatusNoOp:
		am.NoOps++
	case handler.StatusError:
		am.Errors++
	case handler.StatusCancelled:
		am.Cancelled++
	}
	if result.Restored {
		am.Restored++
	}
}

// RecordPanic counts a recovered handler panic.
func (m *Metrics) RecordPanic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panics++
}

// Action returns a copy of the counters for one command.
func (m *Metrics) Action(name string) (ActionMetrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am, ok := m.actions[name]
	if !ok {
		return ActionMetrics{}, false
	}
	return *am, true
}

// Actions returns a copy of every command's counters ordered by name.
func (m *Metrics) Actions() []ActionMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		out = append(out, *am)
	}
	slices.SortFunc(out, func(a, b ActionMetrics) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Snapshot returns the totals across all commands.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{Panics: m.panics}
	for _, am := range m.actions {
		s.Dispatches += am.Dispatches
		s.Changed += am.Changed
		s.NoOps += am.NoOps
		s.Errors += am.Errors
		s.Cancelled += am.Cancelled
		s.Restored += am.Restored
		s.TotalDuration += am.TotalDuration
	}
	return s
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = make(map[string]*ActionMetrics)
	m.panics = 0
}

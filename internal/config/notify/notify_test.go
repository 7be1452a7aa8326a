package notify

import (
	"testing"

	"github.com/dshills/incsel/internal/config"
	"github.com/dshills/incsel/internal/host"
)

func TestRegistryNotify(t *testing.T) {
	r := NewRegistry()
	var got []host.ViewID

	cb := func(id host.ViewID, s *config.Settings) {
		if s == nil {
			t.Error("expected settings")
		}
		got = append(got, id)
	}
	r.Add(3, cb)
	r.Add(1, cb)
	r.Add(2, cb)

	r.Notify(config.Default())

	want := []host.ViewID{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRegistryReplaceAndRemove(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Add(1, func(host.ViewID, *config.Settings) { t.Error("replaced callback should not run") })
	r.Add(1, func(host.ViewID, *config.Settings) { calls++ })

	if r.Len() != 1 {
		t.Fatalf("expected 1 registration, got %d", r.Len())
	}

	r.Notify(config.Default())
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	if !r.Remove(1) {
		t.Error("expected removal")
	}
	if r.Remove(1) {
		t.Error("second removal should report false")
	}
	if r.Has(1) {
		t.Error("document should be gone")
	}

	r.Notify(config.Default())
	if calls != 1 {
		t.Errorf("removed callback ran, calls = %d", calls)
	}
}

func TestRegistryIgnoresNilCallback(t *testing.T) {
	r := NewRegistry()
	r.Add(1, nil)
	if r.Has(1) {
		t.Error("nil callback should not register")
	}
}

func TestCallbackMayRemoveItself(t *testing.T) {
	r := NewRegistry()
	r.Add(1, func(id host.ViewID, _ *config.Settings) { r.Remove(id) })

	r.Notify(config.Default())
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

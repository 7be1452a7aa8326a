package selection

import (
	"testing"

	"github.com/dshills/incsel/internal/engine/region"
)

func TestResolve(t *testing.T) {
	r05 := region.New(0, 5)
	r1015 := region.New(10, 15)
	r2520 := region.New(25, 20)

	tests := []struct {
		name     string
		saved    region.Group
		previous region.Group
		live     region.Group
		change   region.Group
		outcome  Outcome
		want     region.Group
	}{
		{
			name:    "nothing saved",
			saved:   region.Group{},
			live:    region.Of(r05),
			outcome: Untouched,
			want:    region.Of(r05),
		},
		{
			name:    "live differs reselects",
			saved:   region.Of(r05, r1015),
			live:    region.Of(region.Caret(15)),
			outcome: Reselected,
			want:    region.Of(r05, r1015),
		},
		{
			name:    "reordered live differs",
			saved:   region.Of(r05, r1015),
			live:    region.Of(r1015, r05),
			outcome: Reselected,
			want:    region.Of(r05, r1015),
		},
		{
			name:     "deselect collapses to newest difference",
			saved:    region.Of(r05, r1015),
			previous: region.Of(r05),
			live:     region.Of(r05, r1015),
			outcome:  Collapsed,
			want:     region.Of(region.Caret(15)),
		},
		{
			name:     "deselect uses active endpoint",
			saved:    region.Of(r05, r2520),
			previous: region.Of(r05),
			live:     region.Of(r05, r2520),
			outcome:  Collapsed,
			want:     region.Of(region.Caret(20)),
		},
		{
			name:     "removed regions count as changed",
			saved:    region.Of(r05),
			previous: region.Of(r05, r1015),
			live:     region.Of(r05),
			outcome:  Collapsed,
			want:     region.Of(region.Caret(15)),
		},
		{
			name:     "empty difference falls back to change record",
			saved:    region.Of(r05, r1015),
			previous: region.Of(r05, r1015),
			live:     region.Of(r05, r1015),
			change:   region.Of(r2520, r05),
			outcome:  Collapsed,
			want:     region.Of(region.Caret(5)),
		},
		{
			name:     "no difference and no change record",
			saved:    region.Of(r05),
			previous: region.Of(r05),
			live:     region.Of(r05),
			outcome:  Untouched,
			want:     region.Of(r05),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.saved, tt.previous, tt.live, tt.change)
			if got.Outcome != tt.outcome {
				t.Errorf("Outcome = %v, want %v", got.Outcome, tt.outcome)
			}
			if !got.Selection.Equals(tt.want) {
				t.Errorf("Selection = %v, want %v", got.Selection, tt.want)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{Untouched, "untouched"},
		{Collapsed, "collapsed"},
		{Reselected, "reselected"},
		{Outcome(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

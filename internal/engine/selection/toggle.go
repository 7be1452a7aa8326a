package selection

import (
	"github.com/dshills/incsel/internal/engine/region"
)

// Outcome classifies a toggle resolution.
type Outcome uint8

const (
	// Untouched leaves the live selection as it is.
	Untouched Outcome = iota
	// Collapsed replaces the live selection with a single caret.
	Collapsed
	// Reselected replaces the live selection with the saved group.
	Reselected
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Untouched:
		return "untouched"
	case Collapsed:
		return "collapsed"
	case Reselected:
		return "reselected"
	default:
		return "unknown"
	}
}

// Resolution is the selection a toggle should leave behind.
type Resolution struct {
	Outcome   Outcome
	Selection region.Group
}

// Resolve decides the toggle result.
//
// saved is the committed group, previous the snapshot before it (or saved
// itself when there is none), live the editor selection, and change the most
// recently added or subtracted group.
//
// When live equals saved the selection is deselected: the caret goes to the
// active end of the last region in previous △ live, or of the last changed
// region when that difference is empty. Group order is the only recency
// signal available, so the last element stands in for the newest one.
func Resolve(saved, previous, live, change region.Group) Resolution {
	if saved.IsEmpty() {
		return Resolution{Outcome: Untouched, Selection: live.Clone()}
	}

	if !live.Equals(saved) {
		return Resolution{Outcome: Reselected, Selection: saved.Clone()}
	}

	if last, ok := region.SymmetricDifference(previous, live).Last(); ok {
		return collapseTo(last)
	}
	if last, ok := change.Last(); ok {
		return collapseTo(last)
	}
	return Resolution{Outcome: Untouched, Selection: live.Clone()}
}

func collapseTo(r region.Region) Resolution {
	return Resolution{
		Outcome:   Collapsed,
		Selection: region.Of(region.Caret(r.Active)),
	}
}

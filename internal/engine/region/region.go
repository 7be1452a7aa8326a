package region

import "fmt"

// Offset is a position in a document.
type Offset int64

// Region represents a directed half-open interval of text.
// Region is an immutable value type.
type Region struct {
	Anchor Offset // Where the selection started
	Active Offset // Where the caret sits
}

// New creates a region from anchor to active.
func New(anchor, active Offset) Region {
	return Region{Anchor: anchor, Active: active}
}

// Caret creates a region with no extent at the given offset.
func Caret(offset Offset) Region {
	return Region{Anchor: offset, Active: offset}
}

// Begin returns the lower bound of the region.
func (r Region) Begin() Offset {
	if r.Anchor <= r.Active {
		return r.Anchor
	}
	return r.Active
}

// End returns the upper bound of the region.
func (r Region) End() Offset {
	if r.Anchor >= r.Active {
		return r.Anchor
	}
	return r.Active
}

// Len returns the length of the region.
func (r Region) Len() Offset {
	return r.End() - r.Begin()
}

// IsEmpty returns true if the region is a caret.
func (r Region) IsEmpty() bool {
	return r.Anchor == r.Active
}

// IsReversed returns true if the active endpoint precedes the anchor.
func (r Region) IsReversed() bool {
	return r.Active < r.Anchor
}

// Reorient returns the region with a forward direction (anchor <= active).
func (r Region) Reorient() Region {
	if r.Anchor <= r.Active {
		return r
	}
	return Region{Anchor: r.Active, Active: r.Anchor}
}

// Collapse returns a caret at the active endpoint.
func (r Region) Collapse() Region {
	return Region{Anchor: r.Active, Active: r.Active}
}

// Extend returns a region with the same anchor and a new active endpoint.
func (r Region) Extend(active Offset) Region {
	return Region{Anchor: r.Anchor, Active: active}
}

// Contains returns true if offset lies within [Begin, End).
func (r Region) Contains(offset Offset) bool {
	return offset >= r.Begin() && offset < r.End()
}

// Equals returns true if both regions cover the same interval in the same direction.
func (r Region) Equals(other Region) bool {
	return r.Anchor == other.Anchor && r.Active == other.Active
}

// String returns a string representation of the region.
func (r Region) String() string {
	if r.IsEmpty() {
		return fmt.Sprintf("Caret(%d)", r.Active)
	}
	dir := "→"
	if r.IsReversed() {
		dir = "←"
	}
	return fmt.Sprintf("Region(%d%s%d)", r.Anchor, dir, r.Active)
}

package region

import "strings"

// Group is an ordered selection snapshot.
type Group []Region

// Of builds a group from regions.
func Of(regions ...Region) Group {
	if len(regions) == 0 {
		return Group{}
	}
	g := make(Group, len(regions))
	copy(g, regions)
	return g
}

// Len returns the number of regions.
func (g Group) Len() int {
	return len(g)
}

// IsEmpty returns true if the group holds no regions.
func (g Group) IsEmpty() bool {
	return len(g) == 0
}

// Contains returns true if an equal region is present.
func (g Group) Contains(r Region) bool {
	for _, x := range g {
		if x.Equals(r) {
			return true
		}
	}
	return false
}

// Last returns the most recently added region.
func (g Group) Last() (Region, bool) {
	if len(g) == 0 {
		return Region{}, false
	}
	return g[len(g)-1], true
}

// Equals reports ordered, element-wise equality.
// A nil group and an empty group are equal.
func (g Group) Equals(other Group) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if !g[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no storage with g.
func (g Group) Clone() Group {
	out := make(Group, len(g))
	copy(out, g)
	return out
}

// Reorient returns a copy with every region pointing forward.
func (g Group) Reorient() Group {
	out := make(Group, len(g))
	for i, r := range g {
		out[i] = r.Reorient()
	}
	return out
}

// String returns a string representation of the group.
func (g Group) String() string {
	parts := make([]string, len(g))
	for i, r := range g {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Union returns a followed by the elements of b not already present in a.
func Union(a, b Group) Group {
	out := a.Clone()
	for _, r := range b {
		if !out.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// Difference returns the elements of a not present in b, in a's order.
func Difference(a, b Group) Group {
	out := make(Group, 0, len(a))
	for _, r := range a {
		if !b.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// SymmetricDifference returns the elements of a absent from b followed by the
// elements of b absent from a.
func SymmetricDifference(a, b Group) Group {
	return append(Difference(a, b), Difference(b, a)...)
}

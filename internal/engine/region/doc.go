// Package region provides the selection value types and set operations used
// by incremental multi-selection.
//
// A Region is a half-open text interval with a direction:
//   - Anchor: the endpoint where the selection started
//   - Active: the endpoint that moves (where the caret is drawn)
//
// When Anchor == Active the region is a caret with no extent. Begin and End
// are always min/max of the two endpoints.
//
// A Group is an ordered sequence of regions representing one selection
// snapshot. Order is significant: two groups holding the same regions in a
// different order are not equal, and the last element of a group is treated
// as the most recently added one.
//
// Set operations:
//
//	union := region.Union(saved, live)        // saved, then live regions not in saved
//	diff := region.Difference(saved, live)    // saved regions not in live
//	sym := region.SymmetricDifference(a, b)   // a-only regions, then b-only regions
//
// Regions are compared by value (anchor and active), never by overlap.
//
// Thread Safety:
//
// Region is an immutable value type. Group values are treated as immutable by
// every function in this package: results are always freshly allocated.
package region

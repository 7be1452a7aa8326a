// Package selection implements incremental multi-selection commands.
//
// The saved selection of a view is the present snapshot of its history in
// the store. The live selection is whatever the editor shows right now; the
// user may change it freely between commands.
//
//   - Clear commits an empty group.
//   - Add commits saved ∪ live and records the newly added regions.
//   - Subtract commits saved − live and records the removed regions.
//   - Toggle flips between the saved group and a single caret without
//     touching history.
//   - Reorient points every live region forward.
//
// Add hands off to Toggle when there is nothing new to add, so invoking Add
// twice on the same selection turns it off.
//
// After every committed change the overlay marker is resynced from the
// history; the marker is never consulted when deciding anything.
package selection

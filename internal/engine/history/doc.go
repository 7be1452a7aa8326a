// Package history provides per-view selection history with undo/redo.
//
// A SelectionHistory is a past/present/future triple over region.Group
// snapshots:
//
//	h := history.New(1000) // keep at most 1000 past snapshots
//
//	h.Push(region.Of(region.New(0, 5)))
//	h.Push(region.Of(region.New(0, 5), region.New(10, 15)))
//
//	h.Undo() // present is [0→5] again, the two-region group waits in future
//	h.Redo() // and is back
//
// # State Machine
//
// Push, Undo and Redo are the only mutations. There is no separate mode:
// behavior is fully determined by which stacks are empty.
//
//   - Push is a no-op when the group equals present (ordered equality);
//     otherwise present moves onto past and future is cleared.
//   - Undo is a no-op when past is empty.
//   - Redo is a no-op when future is empty.
//
// # Change Record
//
// The history also carries the group most recently added or subtracted by a
// command. It is a side channel used by the toggle heuristic and is never
// part of the past or future stacks.
//
// # Thread Safety
//
// SelectionHistory is not synchronized. Every mutation happens on the host's
// UI-serialized command path for a single view.
package history

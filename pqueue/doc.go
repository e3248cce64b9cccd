// Package pqueue provides an indexed binary min-heap: a priority queue with
// O(1) membership testing and O(log n) priority replacement (decrease-key).
//
// What:
//
//   - IndexedQueue[T] keys entries by item value; at most one live entry
//     exists per item at any time.
//   - Put inserts a new entry or overwrites the priority of an existing one.
//   - Replace is the explicit decrease-key form of the same operation.
//   - PopMin removes and returns the entry with the smallest priority.
//   - Contains and PriorityOf answer membership queries without disturbing
//     heap order.
//
// Why:
//
//	Uniform-cost search relaxes frontier nodes in place. A plain
//	container/heap forces either a linear scan to find the stale entry or a
//	lazy-deletion scheme that can deliver the same node twice. Keeping an
//	item→entry index alongside the heap gives true in-place replacement:
//	after Replace, PriorityOf reflects the new value and the item is popped
//	exactly once.
//
// Tie-break:
//
//	Entries with equal priority pop in update order: the entry whose
//	priority was written least recently wins. The order is deterministic
//	for a given call sequence (a monotonic sequence number assigned on
//	every Put/Replace breaks the tie).
//
// Complexity:
//
//   - Put / Replace / PopMin: O(log n).
//   - Contains / PriorityOf / Len: O(1).
//
// Errors:
//
//   - ErrEmptyQueue: PopMin called on an empty queue.
package pqueue

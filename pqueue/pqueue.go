package pqueue

import "container/heap"

// entry is one live heap slot. index tracks the slot's position in the heap
// slice so Replace can heap.Fix it without searching; seq breaks priority
// ties deterministically (smaller = written earlier).
type entry[T comparable] struct {
	item     T
	priority float64
	seq      uint64
	index    int
}

// entryHeap implements heap.Interface over *entry, ordered by (priority, seq).
type entryHeap[T comparable] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// IndexedQueue is a min-priority queue keyed by item value, with at most one
// live entry per item. Lower priority means higher urgency. Equal priorities
// pop in update order (see package doc). The zero value is not usable;
// construct with New.
type IndexedQueue[T comparable] struct {
	heap    entryHeap[T]
	entries map[T]*entry[T]
	seq     uint64
}

// New returns an empty IndexedQueue.
func New[T comparable]() *IndexedQueue[T] {
	return &IndexedQueue[T]{
		heap:    make(entryHeap[T], 0),
		entries: make(map[T]*entry[T]),
	}
}

// Len returns the number of live entries.
func (q *IndexedQueue[T]) Len() int { return len(q.heap) }

// Put inserts item with the given priority, or overwrites the priority of an
// existing entry. The previous entry for the item, if any, ceases to exist:
// the item will be delivered by PopMin at most once, at its latest priority.
func (q *IndexedQueue[T]) Put(priority float64, item T) {
	q.seq++
	if e, ok := q.entries[item]; ok {
		e.priority = priority
		e.seq = q.seq
		heap.Fix(&q.heap, e.index)

		return
	}
	e := &entry[T]{item: item, priority: priority, seq: q.seq}
	q.entries[item] = e
	heap.Push(&q.heap, e)
}

// Replace atomically updates the priority of item if present, or inserts it
// like Put if absent. After Replace, PriorityOf(item) reports the new value.
func (q *IndexedQueue[T]) Replace(priority float64, item T) {
	q.Put(priority, item)
}

// PopMin removes and returns the entry with the smallest priority.
// Returns ErrEmptyQueue if the queue is empty.
func (q *IndexedQueue[T]) PopMin() (float64, T, error) {
	if len(q.heap) == 0 {
		var zero T

		return 0, zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.heap).(*entry[T])
	delete(q.entries, e.item)

	return e.priority, e.item, nil
}

// Contains reports whether item has a live entry, independent of pop order.
func (q *IndexedQueue[T]) Contains(item T) bool {
	_, ok := q.entries[item]

	return ok
}

// PriorityOf returns the current priority of item and whether it is present.
func (q *IndexedQueue[T]) PriorityOf(item T) (float64, bool) {
	e, ok := q.entries[item]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

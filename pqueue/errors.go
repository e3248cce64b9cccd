package pqueue

import "errors"

var (
	// ErrEmptyQueue indicates PopMin was called on a queue with no entries.
	ErrEmptyQueue = errors.New("pqueue: pop from empty queue")
)

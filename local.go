package debt

import "sync"

// Local biases where one goroutine's Acquire calls start scanning. It holds
// the index just past the most recently claimed cell, which spreads claims
// across the table instead of stuffing them towards the start where every
// scan would walk the same held cells again. A Local must only be used by
// one goroutine at a time and so needs no synchronization. The zero value
// starts at cell 0.
type Local struct {
	offset uint
}

// localPool hands out cursors for callers that don't keep their own. Pools
// are per-P under the hood, so a pooled cursor tends to come back to the
// same thread, which is all the rotation heuristic wants.
var localPool = sync.Pool{New: func() interface{} { return new(Local) }}

package debt

import (
	"sync/atomic"
	"unsafe"
)

const (
	cacheLine = 64 // typical size of a cache line
	numSlots  = 8  // cells per table; when all are held, callers take their slow path
)

// Slots is a fixed bunch of debt cells shared by every reader of the
// protected pointer. Each cell is claimed and released independently with
// compare-and-swap; there is no lock anywhere, and no operation on the
// table blocks or retries. The cells are padded apart so that readers
// claiming different cells do not share a cache line. The zero value is
// safe to use.
type Slots struct {
	cells [numSlots]struct {
		d Debt
		_ [cacheLine - unsafe.Sizeof(Debt{})]byte
	}
}

// Acquire claims a free cell, records ptr in it, and returns the cell. The
// caller (or whoever it delegates to) must Pay the cell exactly once with
// the same ptr. If every cell is taken, Acquire returns nil and leaves the
// table untouched; that is the expected outcome under load, not a failure,
// and the caller branches to its unbounded fallback. ptr must be a real
// protected address, never zero.
//
// The scan visits each cell at most once, starting where local's cursor
// points, so a call makes at most numSlots attempts. local may be nil, in
// which case a pooled cursor is used.
func (s *Slots) Acquire(ptr uintptr, local *Local) *Debt {
	assertClaimable(ptr)

	pooled := local == nil
	if pooled {
		local = localPool.Get().(*Local)
	}

	// Rotate the scan start from claim to claim. Successive claims then
	// tend to succeed on the first attempt instead of walking past the
	// cells still held from previous ones.
	offset := local.offset
	var got *Debt
	for i := uint(0); i < numSlots; i++ {
		n := (offset + i) % numSlots
		// The winning CAS is sequentially consistent, so a writer that
		// scans occupancy afterwards cannot conclude the address was
		// unprotected. A lost CAS changed nothing and synchronizes nothing.
		if atomic.CompareAndSwapUintptr(&s.cells[n].d.ptr, none, ptr) {
			local.offset = (n + 1) % numSlots
			got = &s.cells[n].d
			break
		}
	}

	if pooled {
		localPool.Put(local)
	}
	return got
}

// Range calls fn for each cell in index order until fn returns false. It
// never mutates the table. There is no snapshot across cells: each cell's
// value is whatever one atomic load observes when fn reaches it. A writer
// uses Range to check whether a retired address is still owed to some
// reader before freeing it.
func (s *Slots) Range(fn func(*Debt) bool) {
	for i := range s.cells {
		if !fn(&s.cells[i].d) {
			return
		}
	}
}

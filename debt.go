package debt

import "sync/atomic"

// none marks a free cell. It doubles as the zero value so that a zeroed
// Slots starts with every cell free. No live Go allocation has address 0,
// so a real protected pointer can never collide with it.
const none uintptr = 0

// Debt records that some reader depends on the address stored in it and
// that the address must not be freed until the debt is paid. A cell is
// either free or held for exactly one address by exactly one reader; every
// transition between those states is a single atomic operation, so no
// thread can observe a partially claimed cell.
type Debt struct {
	ptr uintptr
}

// Ptr returns the address currently recorded in the cell, or zero if the
// cell is free. It is one atomic load: claims and payments racing with it
// land entirely before or entirely after, never partway.
func (d *Debt) Ptr() uintptr { return atomic.LoadUintptr(&d.ptr) }

// Pay settles the debt if the cell still records ptr, freeing the cell, and
// reports whether this call settled it. The reader that acquired the cell
// calls Pay when it is done with the address; a writer retiring the address
// may be delegated the same call. When both race, exactly one returns true,
// and the false side knows the other settled on its behalf.
func (d *Debt) Pay(ptr uintptr) bool {
	return atomic.CompareAndSwapUintptr(&d.ptr, ptr, none)
}

// package debt provides a bounded, lock-free way to record borrowed pointers.
//
// Consider a pointer that a single thread occasionally swaps while many
// others dereference it. The swapping thread cannot free the old value the
// moment it swaps it out: some reader may have loaded the pointer and not
// yet finished with it. Before dereferencing, a reader therefore registers
// the exact address it is about to use, and the swapping thread checks the
// registrations before freeing anything:
//
//	var (
//		current unsafe.Pointer // the shared, swappable value
//		slots   debt.Slots
//	)
//
//	func read() *value {
//		for {
//			p := atomic.LoadPointer(&current)
//			d := slots.Acquire(uintptr(p), nil)
//			if d == nil {
//				return readSlow() // every cell taken: unbounded path
//			}
//			if atomic.LoadPointer(&current) == p {
//				v := (*value)(p)
//				// ... use v ...
//				d.Pay(uintptr(p))
//				return v
//			}
//			d.Pay(uintptr(p)) // swapped out from under us; retry
//		}
//	}
//
//	func retire(old unsafe.Pointer) {
//		owed := false
//		slots.Range(func(d *debt.Debt) bool {
//			owed = d.Ptr() == uintptr(old)
//			return !owed
//		})
//		if owed {
//			// defer the free until the debt is paid
//			return
//		}
//		free(old)
//	}
//
// Acquire makes at most one compare-and-swap attempt per cell and never
// blocks, spins or retries; Pay is exactly one. When every cell is held by
// a live reader, Acquire reports that instead of waiting, so the cost of
// the fast path stays bounded no matter the contention; callers pair it
// with a slower, unbounded protection scheme for that case. The zero value
// of Slots is safe to use.
package debt

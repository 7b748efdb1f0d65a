//go:build debtdebug
// +build debtdebug

package debt

// assertClaimable panics when a caller tries to register the reserved free
// sentinel as a protected address. That is a contract breach by the caller,
// not a runtime condition, so the check only exists under the debtdebug tag.
func assertClaimable(ptr uintptr) {
	if ptr == none {
		panic("debt: acquiring the free sentinel as an address")
	}
}

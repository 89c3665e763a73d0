package fixedmap

import "unsafe"

// Estimates capacity (number of pairs) from the given memory size in bytes.
// Useful for sizing a map to a cache-line or arena budget before passing the
// result to New. A zero-sized pair type (both K and V empty structs) has no
// meaningful per-entry cost, so the estimate is 0.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	sizeOfEntry := unsafe.Sizeof(entry[K, V]{})
	if sizeOfEntry == 0 {
		return 0
	}

	return int(size / sizeOfEntry)
}

package intkeymap

import (
	"math"
	"math/bits"
	"unsafe"
)

// Returns the smallest power of 2 greater than or equal to `v`, capped at MaxCapacity.
// Values below 2 yield 1.
func NextPowerOf2(v int) int {
	if v <= 1 {
		return 1
	}
	if v >= MaxCapacity {
		return MaxCapacity
	}

	return 1 << bits.Len(uint(v-1))
}

// Estimates the bucket capacity whose fully loaded table fits in the given memory
// size in bytes: the bucket array itself plus capacity*loadFactor entries.
// The result is a power of 2, or 0 if not even a single bucket fits.
func CapacityFromSize[K Key, V any](size uintptr, loadFactor float64) int {
	if loadFactor <= 0 || math.IsNaN(loadFactor) {
		return 0
	}

	var (
		sizeOfBucket = float64(unsafe.Sizeof((*Entry[K, V])(nil)))
		sizeOfEntry  = float64(unsafe.Sizeof(Entry[K, V]{}))
	)

	n := int(float64(size) / (sizeOfBucket + sizeOfEntry*loadFactor))
	if n < 1 {
		return 0
	}
	if n >= MaxCapacity {
		return MaxCapacity
	}

	return 1 << (bits.Len(uint(n)) - 1)
}

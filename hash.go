package intkeymap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Key is the set of key types a Map can be instantiated with.
// Both widths share one implementation, keys are widened to 64 bits before mixing.
type Key interface {
	~int32 | ~int64
}

type HashFunc[K Key] func(K) uint32

// Mix is the default hash function. It folds the widened key to 32 bits and
// runs a shift-add avalanche over it, so that keys differing only in their
// high bits still land in different buckets of a small table.
func Mix[K Key](k K) uint32 {
	x := uint64(int64(k))
	h := uint32(x ^ (x >> 32))

	h += ^(h << 9)
	h ^= h >> 14
	h += h << 4
	h ^= h >> 10

	return h
}

// XXHash hashes the little-endian bytes of the widened key with xxhash.
func XXHash[K Key](k K) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(k)))

	h := xxhash.Sum64(buf[:])
	return uint32(h ^ (h >> 32))
}

// indexFor returns the bucket index of hash h in a table of n buckets.
// n must be a power of two.
func indexFor(h uint32, n int) int {
	return int(h & uint32(n-1))
}

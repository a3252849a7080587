package hash

import (
	"hash/maphash"
)

// MapHashAlgorithm - Bucket selection for any comparable key using the runtime hasher.
// The seed is drawn once per instance, so values are stable for the lifetime of the instance
// (and the bucket map using it) but differ between instances and processes.
type MapHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewMapHashAlgorithm - Returns a pointer to a new MapHashAlgorithm instance with a fresh seed
func NewMapHashAlgorithm[K comparable]() *MapHashAlgorithm[K] {
	return &MapHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// Sum64 - Given key it generates a hash value, equal keys always give equal values
func (M *MapHashAlgorithm[K]) Sum64(key K) uint64 {
	return maphash.Comparable(M.seed, key)
}

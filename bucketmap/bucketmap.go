package bucketmap

import (
	"fmt"
	"github.com/gostonefire/linkedds/chain"
	"github.com/gostonefire/linkedds/hashfunc"
	"github.com/gostonefire/linkedds/internal/conf"
)

// Entry - A key-value pair stored as payload in a bucket chain. Two entries are the same entry
// when their keys are equal, the value plays no part.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Conf - Is a struct to be passed in the call to NewFromConf and contains configuration for the map.
//   - Buckets is the fixed number of buckets, it never changes after creation (no rehashing)
//   - HashAlgorithm is an optional entry to provide a custom bucket selection, nil gives hashfunc.NewMapHash
type Conf[K comparable] struct {
	Buckets       int
	HashAlgorithm hashfunc.HashAlgorithm[K]
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - Buckets is the number of buckets
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the fullest bucket
//   - LoadFactor is Entries / Buckets
//   - BucketDistribution is the number of entries stored in each bucket, nil unless asked for
type Stat struct {
	Entries            int
	Buckets            int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int64
}

// Map - A hash map with a fixed number of buckets, each bucket a chain of entries that collided to
// the same bucket number. A very skewed key distribution degrades lookups towards O(n), that
// degradation is accepted, there is no rehashing.
type Map[K comparable, V any] struct {
	buckets       []*chain.Chain[Entry[K, V]]
	size          int
	hashAlgorithm hashfunc.HashAlgorithm[K]
}

// New - Returns a pointer to a new empty Map with conf.DefaultBuckets buckets and the default hash algorithm
func New[K comparable, V any]() *Map[K, V] {
	return newMap[K, V](conf.DefaultBuckets, nil)
}

// WithCapacity - Returns a pointer to a new empty Map with exactly buckets buckets.
// A number of buckets lower than one is raised to one.
func WithCapacity[K comparable, V any](buckets int) *Map[K, V] {
	if buckets < conf.MinBuckets {
		buckets = conf.MinBuckets
	}

	return newMap[K, V](buckets, nil)
}

// NewFromConf - Returns a pointer to a new empty Map configured by mapConf
//   - mapConf is an instance of the Conf struct
//
// It returns:
//   - bucketMap is a pointer to the new Map
//   - err is a standard error if the configuration is not valid
func NewFromConf[K comparable, V any](mapConf Conf[K]) (bucketMap *Map[K, V], err error) {
	// Check if number of buckets is valid
	if mapConf.Buckets < conf.MinBuckets {
		err = fmt.Errorf("buckets must be a positive value higher than 0 (zero), got %d", mapConf.Buckets)
		return
	}

	bucketMap = newMap[K, V](mapConf.Buckets, mapConf.HashAlgorithm)

	return
}

// newMap - Allocates buckets and picks the default hash algorithm if none is given
func newMap[K comparable, V any](buckets int, hashAlgorithm hashfunc.HashAlgorithm[K]) *Map[K, V] {
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.NewMapHash[K]()
	}

	sameKey := func(a, b Entry[K, V]) bool { return a.Key == b.Key }

	m := &Map[K, V]{
		buckets:       make([]*chain.Chain[Entry[K, V]], buckets),
		hashAlgorithm: hashAlgorithm,
	}
	for i := range m.buckets {
		m.buckets[i] = chain.NewWithEqual(sameKey)
	}

	return m
}

// Len - Returns the number of entries in the map
func (M *Map[K, V]) Len() int {
	return M.size
}

// BucketCount - Returns the fixed number of buckets
func (M *Map[K, V]) BucketCount() int {
	return len(M.buckets)
}

// BucketNo - Returns which bucket number the given key results in
//   - key is the identifier of an entry
func (M *Map[K, V]) BucketNo(key K) int {
	return int(M.hashAlgorithm.Sum64(key) % uint64(len(M.buckets)))
}

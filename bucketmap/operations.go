package bucketmap

import (
	"github.com/gostonefire/linkedds/chain"
)

// Put - Updates an existing entry with a new value or adds it if no existing is found with same key.
// An existing entry is overwritten in place in its bucket chain and the size is unchanged, a new entry
// is appended to the chain of its bucket.
//   - key is the identifier of an entry
//   - value is the value to store along with key
func (M *Map[K, V]) Put(key K, value V) {
	bucket := M.bucket(key)

	// Try to find an existing entry with matching key, or append a new one
	if node := bucket.FindMatch(keyIs[K, V](key)); node != nil {
		entry := node.Value()
		entry.Value = value
		node.SetValue(entry)
		return
	}

	bucket.Add(Entry[K, V]{Key: key, Value: value})
	M.size++
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, zero value otherwise
//   - ok is false if no entry with key exists
func (M *Map[K, V]) Get(key K) (value V, ok bool) {
	node := M.bucket(key).FindMatch(keyIs[K, V](key))
	if node == nil {
		return
	}

	return node.Value().Value, true
}

// Contains - Returns true if an entry with key exists
func (M *Map[K, V]) Contains(key K) bool {
	return M.bucket(key).ContainsMatch(keyIs[K, V](key))
}

// Remove - Returns the value corresponding to key and removes the entry from the map.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the removed entry if found, zero value otherwise
//   - ok is false if no entry with key existed, which is a normal outcome and not an error
func (M *Map[K, V]) Remove(key K) (value V, ok bool) {
	entry, ok := M.bucket(key).DeleteMatch(keyIs[K, V](key))
	if !ok {
		return
	}

	M.size--

	return entry.Value, true
}

// Keys - Returns all distinct keys in bucket traversal order, which is not insertion order.
// Put keeps keys unique, still every key passes through a scratch set so that a key can never be
// reported twice.
func (M *Map[K, V]) Keys() []K {
	seen := WithCapacity[K, struct{}](len(M.buckets))
	keys := make([]K, 0, M.size)

	M.walk(func(entry Entry[K, V]) {
		if seen.Contains(entry.Key) {
			return
		}
		seen.Put(entry.Key, struct{}{})
		keys = append(keys, entry.Key)
	})

	return keys
}

// Values - Returns all values in bucket traversal order
func (M *Map[K, V]) Values() []V {
	values := make([]V, 0, M.size)
	M.walk(func(entry Entry[K, V]) {
		values = append(values, entry.Value)
	})

	return values
}

// Entries - Returns copies of all entries in bucket traversal order
func (M *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, M.size)
	M.walk(func(entry Entry[K, V]) {
		entries = append(entries, entry)
	})

	return entries
}

// Stat - Walks through the entire set of buckets and produce a Stat struct with information.
//   - includeDistribution set to true will include a slice of length BucketCount with number of entries per bucket, false will set Stat.BucketDistribution to nil.
func (M *Map[K, V]) Stat(includeDistribution bool) (stat Stat) {
	stat.Buckets = len(M.buckets)
	if includeDistribution {
		stat.BucketDistribution = make([]int64, len(M.buckets))
	}

	// Iterate over every bucket
	for i, bucket := range M.buckets {
		n := bucket.Len()
		stat.Entries += n
		if n > 0 {
			stat.UsedBuckets++
		}
		if n > stat.LongestChain {
			stat.LongestChain = n
		}
		if includeDistribution {
			stat.BucketDistribution[i] = int64(n)
		}
	}

	stat.LoadFactor = float64(stat.Entries) / float64(stat.Buckets)

	return
}

// bucket - Returns the chain of the bucket that key belongs to
func (M *Map[K, V]) bucket(key K) *chain.Chain[Entry[K, V]] {
	return M.buckets[M.BucketNo(key)]
}

// walk - Calls fn for every entry, bucket by bucket, head to tail within a bucket
func (M *Map[K, V]) walk(fn func(entry Entry[K, V])) {
	var entry Entry[K, V]
	var err error
	for _, bucket := range M.buckets {
		iter := bucket.Iterator()
		for iter.HasNext() {
			entry, err = iter.Next()
			if err != nil {
				break
			}
			fn(entry)
		}
	}
}

// keyIs - Returns a predicate matching entries holding key
func keyIs[K comparable, V any](key K) func(Entry[K, V]) bool {
	return func(e Entry[K, V]) bool { return e.Key == key }
}

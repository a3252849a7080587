package hashfunc

import (
	"github.com/gostonefire/linkedds/internal/hash"
	"github.com/gostonefire/linkedds/internal/utils"
)

// HashAlgorithm - Interface that permits a user of the bucket map to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// Sum64 - Given key it generates a hash value. The bucket map derives the bucket number as
	// the value modulo its number of buckets, so the full uint64 range may be used.
	// Equal keys must always give equal values for the lifetime of the bucket map.
	Sum64(key K) uint64
}

// NewMapHash - Returns the default algorithm, the runtime hasher for comparable keys with a seed
// of its own.
func NewMapHash[K comparable]() HashAlgorithm[K] {
	return hash.NewMapHashAlgorithm[K]()
}

// NewCRC32 - Returns an algorithm checksumming an encoded key with CRC-32 (IEEE). Unlike NewMapHash
// the values are stable between processes.
//   - encode turns a key into bytes, equal keys must give equal bytes
func NewCRC32[K any](encode func(K) []byte) HashAlgorithm[K] {
	return hash.NewChainingHashAlgorithm(encode)
}

// StringKey - Key encoder for string keys to be used with NewCRC32
func StringKey(key string) []byte {
	return []byte(key)
}

// BytesKey - Key encoder for []byte keys to be used with NewCRC32
func BytesKey(key []byte) []byte {
	return key
}

// IntKey - Key encoder for int keys to be used with NewCRC32
func IntKey(key int) []byte {
	return utils.Uint64Bytes(uint64(key))
}

package hash

import (
	"hash/crc32"
)

// ChainingHashAlgorithm - Bucket selection for keys that can be encoded into bytes. It is implemented using
// crc32.ChecksumIEEE to create a hash value over the encoded key, the bucket map then applies
// bucket = hash % numberOfBuckets to get the bucket number.
type ChainingHashAlgorithm[K any] struct {
	encode func(K) []byte
}

// NewChainingHashAlgorithm - Returns a pointer to a new ChainingHashAlgorithm instance
//   - encode turns a key into the bytes to checksum, equal keys must give equal bytes
func NewChainingHashAlgorithm[K any](encode func(K) []byte) *ChainingHashAlgorithm[K] {
	return &ChainingHashAlgorithm[K]{encode: encode}
}

// Sum64 - Given key it generates a hash value, equal keys always give equal values
func (C *ChainingHashAlgorithm[K]) Sum64(key K) uint64 {
	return uint64(crc32.ChecksumIEEE(C.encode(key)))
}

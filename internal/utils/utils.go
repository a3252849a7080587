package utils

import (
	"encoding/binary"
	"github.com/gostonefire/linkedds/internal/conf"
)

// GrowCapacity - Returns the capacity a full buffer of the given capacity should grow to.
// Empty and very small buffers jump to conf.MinGrowCapacity, others grow by conf.GrowFactor.
func GrowCapacity(current int) int {
	if current < conf.MinGrowCapacity {
		return conf.MinGrowCapacity
	}

	return current * conf.GrowFactor
}

// Uint64Bytes - Returns the big endian byte representation of v
func Uint64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// Package benchmarks compares the ordered key-value structures in this
// repository against each other and against Pebble, CockroachDB's LSM
// storage engine, on insert and lookup workloads.
package benchmarks

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/go-faker/faker/v4"
)

// Workload is a fixed set of key-value pairs shared by the benchmark runs:
// shuffled fixed-width keys with small faker-generated text payloads.
type Workload struct {
	Keys   [][]byte
	Values [][]byte
}

// NewWorkload builds n distinct pairs in random key order.
func NewWorkload(n int) *Workload {
	w := &Workload{
		Keys:   make([][]byte, n),
		Values: make([][]byte, n),
	}
	for i, v := range rand.Perm(n) {
		w.Keys[i] = encodeKey(uint64(v))
		w.Values[i] = []byte(faker.Word())
	}
	return w
}

// big-endian fixed-width keys, so byte order matches numeric order
func encodeKey(v uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, v)
	return key
}

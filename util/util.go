// Package util provides reproducible random data helpers for tests and
// benchmarks.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateIndices returns num distinct bit indices in [0, bitLen) in random
// order. num is capped at bitLen.
func (r *RNG) GenerateIndices(num, bitLen int) []int {
	if num > bitLen {
		num = bitLen
	}
	return r.rand.Perm(bitLen)[:num]
}

// GenerateBytes returns n random bytes.
func (r *RNG) GenerateBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// GenerateCoords returns one random in-range coordinate per dimension.
func (r *RNG) GenerateCoords(dims []int) []int {
	coords := make([]int, len(dims))
	for i, d := range dims {
		coords[i] = r.rand.Intn(d)
	}
	return coords
}

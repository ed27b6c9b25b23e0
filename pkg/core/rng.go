package core

import (
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. The generator is ChaCha8, so a single uint64 seed reproduces the
// exact same draw sequence on every platform.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided seed. The seed is
// expanded to the generator's 256-bit key with splitmix64 so that nearby
// seeds still produce unrelated streams.
func NewRNG(seed uint64) *RNG {
	var key [32]byte
	s := seed
	for i := 0; i < 4; i++ {
		s += 0x9e3779b97f4a7c15
		z := s
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		binary.LittleEndian.PutUint64(key[i*8:], z)
	}
	return &RNG{r: rand.New(rand.NewChaCha8(key))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

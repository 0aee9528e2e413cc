// Package ant - RNG utilities for per-ant random streams.
//
// Every ant owns one *rand.Rand. Streams are derived from a parent seed with a
// SplitMix64 finalizer so that ants seeded from consecutive stream ids are not
// correlated.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across ants.
//   - A Seeder hands out seeds; it is meant for the single goroutine that
//     builds the colony.
package ant

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// RandomSeed returns a seed drawn from a non-deterministic source.
// Falls back to the wall clock if the OS entropy source is unavailable.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// SplitMix64-style avalanche: small input changes spread over all output bits.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Seeder derives independent per-ant seeds from one parent seed.
type Seeder struct {
	parent int64
	next   uint64
}

// NewSeeder returns a Seeder rooted at seed; seed==0 draws a random parent.
func NewSeeder(seed int64) *Seeder {
	if seed == 0 {
		seed = RandomSeed()
	}
	return &Seeder{parent: seed}
}

// Parent returns the root seed, useful to log and replay a run.
func (s *Seeder) Parent() int64 { return s.parent }

// Next returns the seed of the next stream.
func (s *Seeder) Next() int64 {
	seed := DeriveSeed(s.parent, s.next)
	s.next++
	return seed
}

// Rand returns a generator for the next stream.
func (s *Seeder) Rand() *rand.Rand {
	return NewRand(s.Next())
}

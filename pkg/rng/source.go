// Package rng provides the seeded random sources used by the simulator.
//
// Every Game owns exactly one Source and mutates it sequentially, so a
// Source is not required to be safe for concurrent use. SeedGenerator is
// the one type here that is shared between goroutines.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_rng

// Source is a reproducible pseudo-random integer stream
type Source interface {
	// Int63 returns a non-negative pseudo-random 63-bit integer
	Int63() int64
	// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewSource returns a Source whose sequence is fully determined by seed
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes n elements in place using the Fisher-Yates algorithm,
// drawing every index from src so that the permutation is reproducible.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// SeedGenerator hands out seeds for games whose caller did not supply one.
// It is safe for concurrent use.
type SeedGenerator struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewSeedGenerator creates a generator with a deterministic seed sequence
func NewSeedGenerator(seed int64) *SeedGenerator {
	return &SeedGenerator{src: rand.New(rand.NewSource(seed))}
}

// NewTimeSeedGenerator creates a generator seeded from the wall clock.
// Its output is not reproducible.
func NewTimeSeedGenerator() *SeedGenerator {
	return NewSeedGenerator(time.Now().UnixNano())
}

// Next returns the next seed
func (g *SeedGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.src.Int63()
}

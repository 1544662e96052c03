// Package dice is the randomness port used by every generator and the reducer.
//
// Generators never reach for an ambient random number generator directly;
// they take a Source so that tests (and replays) can substitute a seeded or
// scripted one.
package dice

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness provider for generators.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Default returns the process-wide, non-deterministic source.
// It is safe for concurrent use.
func Default() Source {
	return globalSource{}
}

// Seeded is a deterministic source. It is safe for concurrent use, though
// concurrent callers interleave draws.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a deterministic source for the given seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Pick returns a uniformly chosen element of options.
// options must not be empty.
func Pick[T any](src Source, options []T) T {
	return options[src.IntN(len(options))]
}

// Between returns a uniform integer in [lo, hi).
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}

package rng

import "math/rand"

// Seeded is a deterministic Generator backed by math/rand.
// The same seed always replays the same sequence.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a new Seeded generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		r: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

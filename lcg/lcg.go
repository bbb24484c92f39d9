// Package lcg implements the deterministic linear congruential source used to
// synthesize self-test inputs.
//
// The recurrence is
//
//	state = state*1103515245 + 12345 (mod 2^32)
//
// and is advanced once per draw. Two sources created with the same seed
// produce the same sequence. A Source is owned by a single caller and is not
// safe for concurrent use.
package lcg

import "math"

const (
	multiplier uint32 = 1103515245
	increment  uint32 = 12345
)

// Source is a 32-bit linear congruential generator.
type Source struct {
	seed  uint32
	state uint32
}

// New returns a Source seeded with seed.
func New(seed uint32) *Source {
	return &Source{seed: seed, state: seed}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint32 {
	return s.seed
}

// Next advances the recurrence and returns the new state.
func (s *Source) Next() uint32 {
	s.state = s.state*multiplier + increment
	return s.state
}

// Uniform returns a float64 in [0, 1).
func (s *Source) Uniform() float64 {
	return float64(s.Next()) / (1 << 32)
}

// UniformRange returns a float64 in [lo, hi).
func (s *Source) UniformRange(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Uniform()
}

// Normal returns a normally distributed sample using the Box-Muller transform.
// Each call consumes two draws.
func (s *Source) Normal(mean, stddev float64) float64 {
	u1 := 1 - s.Uniform() // (0, 1], keeps the logarithm finite
	u2 := s.Uniform()
	return mean + stddev*math.Sqrt(-2*math.Log(u1))*math.Cos(2*math.Pi*u2)
}

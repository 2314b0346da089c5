package random

import (
	"math/rand/v2"
)

// DefaultRange is the exclusive upper bound of values produced by the
// default source.
const DefaultRange uint64 = 1 << 31

// Source produces raw integers in [0, Range()).
type Source interface {
	Next() uint64
	Range() uint64
}

// pcgSource is a 31-bit source backed by a PCG stream.
type pcgSource struct {
	rng *rand.Rand
}

// NewSource returns the default source seeded with seed.
// Equal seeds yield identical streams.
func NewSource(seed uint64) Source {
	return &pcgSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next returns the top 31 bits of the next PCG output.
func (s *pcgSource) Next() uint64 {
	return s.rng.Uint64() >> 33
}

// Range returns DefaultRange.
func (s *pcgSource) Range() uint64 {
	return DefaultRange
}

// SubSeed derives the seed for one iteration from a base seed using the
// splitmix64 finalizer. Distinct iterations get well-separated seeds even
// when the base seed is small.
func SubSeed(base, iteration uint64) uint64 {
	z := base + (iteration+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

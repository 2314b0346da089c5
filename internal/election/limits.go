package election

import (
	"math"
	"math/bits"
)

// MaxPopulation returns the largest population an engine accepts for a
// generator with exclusive upper bound r: the integer square root of the
// generator's maximum value. It keeps population*numIssues and every
// Uniform ceiling well inside the generator range.
func MaxPopulation(r uint64) uint64 {
	if r < 2 {
		return 0
	}
	return isqrt(r - 1)
}

// MaxIssues returns the largest issue count an engine accepts for a
// generator with exclusive upper bound r. It is the bit length of
// MaxPopulation, one less when MaxPopulation is not all ones, so a pool of
// 2^issues candidates never outnumbers the largest population.
func MaxIssues(r uint64) int {
	mp := MaxPopulation(r)
	if mp == 0 {
		return 0
	}
	if mp&(mp+1) == 0 {
		return bits.OnesCount64(mp)
	}
	return bits.Len64(mp >> 1)
}

func isqrt(n uint64) uint64 {
	s := uint64(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	return s
}

package random

import (
	"errors"
	"fmt"
)

// ErrCeilingOutOfRange is the panic value (wrapped) raised when Uniform is
// called with a ceiling of zero or one larger than the source range.
var ErrCeilingOutOfRange = errors.New("random: ceiling out of range")

// Bounded draws uniformly distributed integers from a Source.
type Bounded struct {
	src Source
}

// NewBounded wraps src.
func NewBounded(src Source) *Bounded {
	return &Bounded{src: src}
}

// Range returns the range of the underlying source.
func (b *Bounded) Range() uint64 {
	return b.src.Range()
}

// Uniform returns an integer in [0, ceiling).
//
// Raw draws at or above the largest multiple of ceiling that fits in the
// source range are rejected, so every result is equally likely. A ceiling
// of zero, or one above the source range, is a programming error and
// panics.
func (b *Bounded) Uniform(ceiling uint64) uint64 {
	r := b.src.Range()
	if ceiling == 0 || ceiling > r {
		panic(fmt.Errorf("%w: ceiling %d, source range %d", ErrCeilingOutOfRange, ceiling, r))
	}

	rejectMultiplier := r / ceiling
	reject := ceiling * rejectMultiplier

	for {
		raw := b.src.Next()
		if raw < reject {
			return raw / rejectMultiplier
		}
	}
}

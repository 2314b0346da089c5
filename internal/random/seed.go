package random

import (
	"encoding/binary"
	"math"
	"time"
)

// SeedFromClock returns a seed derived from the current wall-clock second.
func SeedFromClock() uint32 {
	return SeedFromTime(time.Now())
}

// SeedFromTime folds the in-memory bytes of t's Unix second into a 32-bit
// accumulator. Each byte is mixed in as acc = acc*(MaxUint8+2) + byte;
// 257 is prime, so every byte position influences the result instead of
// being truncated away by a narrowing cast.
func SeedFromTime(t time.Time) uint32 {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], uint64(t.Unix()))

	var seed uint32
	for _, b := range buf {
		seed = seed*(math.MaxUint8+2) + uint32(b)
	}
	return seed
}

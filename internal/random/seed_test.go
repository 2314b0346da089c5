package random

import (
	"testing"
	"time"
)

func TestSeedFromTime(t *testing.T) {
	base := time.Date(2012, time.October, 19, 12, 0, 0, 0, time.UTC)

	t.Run("equal seconds give equal seeds", func(t *testing.T) {
		if SeedFromTime(base) != SeedFromTime(base.Add(500*time.Millisecond)) {
			t.Error("sub-second difference changed the seed")
		}
	})

	t.Run("consecutive seconds give different seeds", func(t *testing.T) {
		seen := make(map[uint32]time.Time)
		for i := 0; i < 600; i++ {
			at := base.Add(time.Duration(i) * time.Second)
			s := SeedFromTime(at)
			if prev, ok := seen[s]; ok {
				t.Fatalf("seed %d repeated for %v and %v", s, prev, at)
			}
			seen[s] = at
		}
	})

	t.Run("zero time folds to zero", func(t *testing.T) {
		if got := SeedFromTime(time.Unix(0, 0)); got != 0 {
			t.Errorf("SeedFromTime(epoch) = %d, want 0", got)
		}
	})
}

func TestSeedFromClock(t *testing.T) {
	before := SeedFromTime(time.Now())
	got := SeedFromClock()
	after := SeedFromTime(time.Now())
	if got != before && got != after {
		t.Errorf("SeedFromClock() = %d, want %d or %d", got, before, after)
	}
}

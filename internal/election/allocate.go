package election

import "github.com/wbgray/votesim/internal/platform"

// ResetPool restores slots to the identity permutation 0..len(slots)-1.
func ResetPool(slots []platform.Platform) {
	for i := range slots {
		slots[i] = platform.Platform(i)
	}
}

// Allocate distributes votersLeft voters over the platforms in slots and
// appends one Candidate per platform that received votes to active.
//
// It walks a partial Fisher–Yates shuffle of slots: step i swaps a random
// slot from [i, len(slots)) into position i and gives it between zero and
// votersLeft voters. Slots drawing zero voters are skipped. Voters still
// left when all but the last slot have been visited go to the last slot.
// The emitted votes always sum to votersLeft and the emitted ids are
// distinct. slots is permuted in place.
func Allocate(rng Sampler, votersLeft uint64, slots []platform.Platform, active []Candidate) []Candidate {
	pool := uint64(len(slots))
	if pool == 0 {
		return active
	}

	for i := uint64(0); votersLeft > 0 && i < pool-1; i++ {
		grab := rng.Uniform(pool-i) + i
		slots[i], slots[grab] = slots[grab], slots[i]

		votes := rng.Uniform(votersLeft + 1)
		if votes == 0 {
			continue
		}
		votersLeft -= votes
		active = append(active, Candidate{ID: slots[i], Votes: votes})
	}

	if votersLeft > 0 {
		active = append(active, Candidate{ID: slots[pool-1], Votes: votersLeft})
	}
	return active
}

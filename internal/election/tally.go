package election

import (
	"cmp"
	"slices"

	"github.com/wbgray/votesim/internal/platform"
)

// SortByVotes orders candidates by votes, most first. Equal vote counts
// are ordered by ascending id so the order is fully deterministic.
func SortByVotes(candidates []Candidate) {
	slices.SortFunc(candidates, compareByVotes)
}

func compareByVotes(a, b Candidate) int {
	if c := cmp.Compare(b.Votes, a.Votes); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// PluralityWinners returns the indices of the leading run of candidates
// sharing the top vote count. sorted must be ordered by SortByVotes.
func PluralityWinners(sorted []Candidate) []int {
	if len(sorted) == 0 {
		return nil
	}

	winners := []int{0}
	for i := 1; i < len(sorted) && sorted[i].Votes == sorted[0].Votes; i++ {
		winners = append(winners, i)
	}
	return winners
}

// ApprovalWinners returns the indices of every candidate with the
// minimum SumDisapproval.
func ApprovalWinners(candidates []Candidate) []int {
	return minimumBy(candidates, func(c Candidate) uint64 {
		return c.SumDisapproval
	})
}

// AntagonistWinners returns the indices of every candidate named
// antagonist by the fewest voters, according to the antagonist tally
// indexed by platform id.
func AntagonistWinners(candidates []Candidate, antagonist []uint64) []int {
	return minimumBy(candidates, func(c Candidate) uint64 {
		return antagonist[c.ID]
	})
}

func minimumBy(candidates []Candidate, key func(Candidate) uint64) []int {
	var winners []int
	var best uint64
	for i, c := range candidates {
		k := key(c)
		switch {
		case len(winners) == 0 || k < best:
			best = k
			winners = append(winners[:0], i)
		case k == best:
			winners = append(winners, i)
		}
	}
	return winners
}

// ConsensusPlatform returns the platform holding, on every issue, the
// stance of the majority of population. Ties go to stance 1.
func ConsensusPlatform(stance []uint64, population uint64) platform.Platform {
	var id platform.Platform
	for w, ones := range stance {
		if ones >= population-ones {
			id |= 1 << uint(w)
		}
	}
	return id
}

// Consensus synthesizes the consensus candidate and scores it against
// active. The consensus candidate receives no votes of its own.
func Consensus(active []Candidate, stance []uint64, population uint64, numIssues int) Candidate {
	c := Candidate{ID: ConsensusPlatform(stance, population)}
	ScoreCandidate(&c, active, numIssues)
	return c
}

// TwoParty reduces the election to its two leading candidates. sorted
// must be ordered by SortByVotes. Every voter group moves to the pole it
// is strictly closer to; groups equidistant from both poles are dropped.
// The poles are rescored against sorted, keep their reassigned votes and
// are returned ordered by SortByVotes.
//
// With a single active candidate there is only one pole and it receives
// every vote. An empty election has no poles.
func TwoParty(sorted []Candidate, numIssues int) []Candidate {
	switch len(sorted) {
	case 0:
		return nil
	case 1:
		pole := Candidate{ID: sorted[0].ID}
		ScoreCandidate(&pole, sorted, numIssues)
		pole.Votes = sorted[0].Votes
		return []Candidate{pole}
	}

	poles := []Candidate{{ID: sorted[0].ID}, {ID: sorted[1].ID}}
	for _, c := range sorted {
		d0 := platform.Distance(poles[0].ID, c.ID)
		d1 := platform.Distance(poles[1].ID, c.ID)
		switch {
		case d0 < d1:
			poles[0].Votes += c.Votes
		case d1 < d0:
			poles[1].Votes += c.Votes
		}
	}

	for i := range poles {
		ScoreCandidate(&poles[i], sorted, numIssues)
	}
	SortByVotes(poles)
	return poles
}

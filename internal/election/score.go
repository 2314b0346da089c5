package election

import "github.com/wbgray/votesim/internal/platform"

// ScoreCandidate recomputes c's statistics against the comparison set
// others, which may include c itself. c.Votes is left untouched.
//
// A voter group at distance d counts toward Contra when d is more than
// half of numIssues, toward Pro when less, and toward Medius when exactly
// half. The antagonist is the first candidate in others at strictly
// maximal distance.
func ScoreCandidate(c *Candidate, others []Candidate, numIssues int) {
	c.Pro, c.Contra, c.Medius = 0, 0, 0
	c.SumDisapproval = 0
	c.Antagonist = c.ID

	maxDistance := 0
	for _, h := range others {
		d := platform.Distance(c.ID, h.ID)

		// 2d against numIssues is the exact half comparison.
		switch {
		case 2*d > numIssues:
			c.Contra += h.Votes
		case 2*d < numIssues:
			c.Pro += h.Votes
		default:
			c.Medius += h.Votes
		}

		if d > maxDistance {
			maxDistance = d
			c.Antagonist = h.ID
		}

		c.SumDisapproval += uint64(d) * h.Votes
	}
}

// Score computes the statistics of every candidate in active against the
// whole active set. Each candidate's votes are added to
// antagonist[c.Antagonist], and stance[w] accumulates the votes of
// candidates holding stance 1 on issue w. antagonist must be indexable
// by every platform id in the pool and stance must have numIssues
// entries; both are accumulated into, not cleared.
func Score(active []Candidate, numIssues int, antagonist, stance []uint64) {
	for i := range active {
		ScoreCandidate(&active[i], active, numIssues)
	}

	for _, c := range active {
		antagonist[c.Antagonist] += c.Votes
		for w := 0; w < numIssues; w++ {
			stance[w] += c.ID.Stance(w) * c.Votes
		}
	}
}

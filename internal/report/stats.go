package report

import (
	"fmt"

	"github.com/wbgray/votesim/internal/election"
)

// Lean describes which way the electorate leans relative to c: "P" when
// more voters mostly agree with c, "C" when more mostly disagree, "M" when
// the two are even, followed by the margin as a share of the population.
func Lean(c election.Candidate, population uint64) string {
	switch {
	case c.Pro > c.Contra:
		return fmt.Sprintf("P%.2f", ratio(c.Pro-c.Contra, population))
	case c.Contra > c.Pro:
		return fmt.Sprintf("C%.2f", ratio(c.Contra-c.Pro, population))
	default:
		return "M0.00"
	}
}

// MediusRatio is the share of the population that agrees with c on
// exactly half of the issues.
func MediusRatio(c election.Candidate, population uint64) float64 {
	return ratio(c.Medius, population)
}

// VoteRatio is c's share of the population.
func VoteRatio(c election.Candidate, population uint64) float64 {
	return ratio(c.Votes, population)
}

func ratio(n, population uint64) float64 {
	if population == 0 {
		return 0
	}
	return float64(n) / float64(population)
}

// CandidateLine formats c as
//
//	id: approval% (lean medius) [antagonist] votes antagonist-votes
//
// where antagonist-votes is the number of voters naming c their antagonist.
func CandidateLine(res *election.Result, c election.Candidate, antagonistVotes uint64) string {
	return fmt.Sprintf("%d: %.2f%% (%s %.2f) [%d] %d %d",
		c.ID, res.ApprovalOf(c), Lean(c, res.Population), MediusRatio(c, res.Population),
		c.Antagonist, c.Votes, antagonistVotes)
}

// ConsensusLine formats the consensus candidate as
//
//	id: approval% (lean medius) [antagonist]{opposite}
//
// where opposite is the platform disagreeing with it on every issue.
func ConsensusLine(res *election.Result) string {
	c := res.Consensus
	return fmt.Sprintf("%d: %.2f%% (%s %.2f) [%d]{%d}",
		c.ID, res.ApprovalOf(c), Lean(c, res.Population), MediusRatio(c, res.Population),
		c.Antagonist, res.ConsensusAntagonist())
}

// PoleLine formats a two-party pole as
//
//	id: approval% (lean medius) votes vote-ratio
func PoleLine(res *election.Result, c election.Candidate) string {
	return fmt.Sprintf("%d: %.2f%% (%s %.2f) %d %.2f",
		c.ID, res.ApprovalOf(c), Lean(c, res.Population), MediusRatio(c, res.Population),
		c.Votes, VoteRatio(c, res.Population))
}

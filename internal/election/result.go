package election

import (
	"fmt"

	"github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/platform"
)

// Result is the outcome of one election. It is produced by Engine.Run
// and never modified afterwards; winner sets index into Candidates.
type Result struct {
	NumIssues  int
	Population uint64

	// Candidates holds the active candidates ordered by SortByVotes.
	Candidates []Candidate

	// AntagonistVotes[i] is the number of voters whose antagonist is
	// Candidates[i].
	AntagonistVotes []uint64

	// StanceTally[w] is the number of voters holding stance 1 on issue w.
	StanceTally []uint64

	Plurality  []int
	Approval   []int
	Antagonist []int

	// Consensus is scored against Candidates and holds no votes.
	Consensus Candidate

	// TwoParty holds the poles of the two-party reduction, most votes
	// first. It has a single entry when only one candidate was active.
	TwoParty []Candidate
}

// WinnerIndices returns the indices into Candidates of the winners under m.
func (r *Result) WinnerIndices(m Method) []int {
	switch m {
	case MethodPlurality:
		return r.Plurality
	case MethodApproval:
		return r.Approval
	case MethodAntagonist:
		return r.Antagonist
	default:
		return nil
	}
}

// Winners returns copies of the winning candidates under m.
func (r *Result) Winners(m Method) []Candidate {
	idx := r.WinnerIndices(m)
	out := make([]Candidate, len(idx))
	for i, j := range idx {
		out[i] = r.Candidates[j]
	}
	return out
}

// ApprovalOf returns c's approval rating under r's configuration.
func (r *Result) ApprovalOf(c Candidate) float64 {
	return ApprovalPercent(c, r.Population, r.NumIssues)
}

// ApprovalPercent returns the share of the largest possible disapproval,
// population*numIssues, that c avoids, as a percentage. A candidate every
// voter fully agrees with scores 100.
func ApprovalPercent(c Candidate, population uint64, numIssues int) float64 {
	worst := float64(population) * float64(numIssues)
	if worst == 0 {
		return 0
	}
	return (1 - float64(c.SumDisapproval)/worst) * 100
}

// ConsensusAntagonist returns the platform opposing the consensus
// candidate on every issue.
func (r *Result) ConsensusAntagonist() platform.Platform {
	return r.Consensus.ID.Invert(r.NumIssues)
}

// Verify checks the structural invariants of r: votes add up to the
// population, ids are distinct and inside the pool, and every
// candidate's buckets add up to the population.
func (r *Result) Verify() error {
	invariant := func(format string, args ...any) error {
		return errors.NewSimulationError(fmt.Sprintf(format, args...), errors.ErrInvariant).
			WithPhase(string(PhaseReport)).
			WithSeverity(errors.SeverityCritical)
	}

	pool := platform.PoolSize(r.NumIssues)
	seen := make(map[platform.Platform]bool, len(r.Candidates))
	var total uint64
	for _, c := range r.Candidates {
		if uint64(c.ID) >= pool {
			return invariant("candidate %d outside pool of %d", c.ID, pool)
		}
		if seen[c.ID] {
			return invariant("candidate %d allocated twice", c.ID)
		}
		seen[c.ID] = true
		total += c.Votes
	}
	if total != r.Population {
		return invariant("allocated %d votes to a population of %d", total, r.Population)
	}

	for _, c := range r.Candidates {
		if sum := c.Pro + c.Contra + c.Medius; sum != r.Population {
			return invariant("candidate %d buckets sum to %d, want %d", c.ID, sum, r.Population)
		}
	}
	return nil
}

package sim

import (
	"github.com/wbgray/votesim/internal/election"
)

// Outcomes compared against the plurality leader besides the winner
// selection methods.
const (
	OutcomeConsensus = "consensus"
	OutcomeTwoParty  = "two-party"
)

// MethodStats aggregates one method's first winner over many elections.
type MethodStats struct {
	Method string `json:"method" yaml:"method" toml:"method"`
	// Agreements counts elections whose first winner is the plurality
	// leader.
	Agreements int `json:"agreements" yaml:"agreements" toml:"agreements"`
	// Ties counts elections with more than one winner.
	Ties int `json:"ties" yaml:"ties" toml:"ties"`
	// MeanApproval is the mean approval rating of the first winner.
	MeanApproval float64 `json:"mean_approval" yaml:"mean_approval" toml:"mean_approval"`
}

// Summary aggregates the elections of one run.
type Summary struct {
	Params         Params        `json:"params" yaml:"params" toml:"params"`
	Elections      int           `json:"elections" yaml:"elections" toml:"elections"`
	MeanCandidates float64       `json:"mean_candidates" yaml:"mean_candidates" toml:"mean_candidates"`
	Methods        []MethodStats `json:"methods" yaml:"methods" toml:"methods"`
}

// NewSummary returns an empty Summary tracking every method and the two
// synthesized outcomes.
func NewSummary(p Params) *Summary {
	s := &Summary{Params: p}
	for _, m := range election.Methods() {
		s.Methods = append(s.Methods, MethodStats{Method: string(m)})
	}
	s.Methods = append(s.Methods,
		MethodStats{Method: OutcomeConsensus},
		MethodStats{Method: OutcomeTwoParty},
	)
	return s
}

// Add folds one election result into the summary.
func (s *Summary) Add(res *election.Result) {
	if len(res.Candidates) == 0 {
		return
	}
	s.Elections++
	n := float64(s.Elections)
	s.MeanCandidates += (float64(len(res.Candidates)) - s.MeanCandidates) / n

	leader := res.Candidates[res.Plurality[0]].ID

	for i := range s.Methods {
		m := &s.Methods[i]

		var first election.Candidate
		ties := false
		switch m.Method {
		case OutcomeConsensus:
			first = res.Consensus
		case OutcomeTwoParty:
			first = res.TwoParty[0]
			ties = len(res.TwoParty) == 2 && res.TwoParty[0].Votes == res.TwoParty[1].Votes
		default:
			idx := res.WinnerIndices(election.Method(m.Method))
			first = res.Candidates[idx[0]]
			ties = len(idx) > 1
		}

		if first.ID == leader {
			m.Agreements++
		}
		if ties {
			m.Ties++
		}
		m.MeanApproval += (res.ApprovalOf(first) - m.MeanApproval) / n
	}
}

// Method returns the stats for the named method, or false if the summary
// does not track it.
func (s *Summary) Method(name string) (MethodStats, bool) {
	for _, m := range s.Methods {
		if m.Method == name {
			return m, true
		}
	}
	return MethodStats{}, false
}

// AgreementRate returns the fraction of elections in which m's first
// winner was the plurality leader.
func (s *Summary) AgreementRate(m MethodStats) float64 {
	if s.Elections == 0 {
		return 0
	}
	return float64(m.Agreements) / float64(s.Elections)
}

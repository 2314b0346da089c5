package report

import (
	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/sim"
)

// document is the shape of the JSON and YAML exports.
type document struct {
	Params    sim.Params       `json:"params" yaml:"params" toml:"params"`
	Elections []electionRecord `json:"elections" yaml:"elections" toml:"elections"`
	Summary   *sim.Summary     `json:"summary,omitempty" yaml:"summary,omitempty" toml:"summary,omitempty"`
}

type electionRecord struct {
	Election    int                 `json:"election" yaml:"election" toml:"election"`
	Candidates  []candidateRecord   `json:"candidates" yaml:"candidates" toml:"candidates"`
	StanceTally []uint64            `json:"stance_tally" yaml:"stance_tally,flow" toml:"stance_tally"`
	Winners     map[string][]uint64 `json:"winners" yaml:"winners" toml:"winners"`
	Consensus   candidateRecord     `json:"consensus" yaml:"consensus" toml:"consensus"`
	// Opposite is the platform disagreeing with the consensus on every issue.
	Opposite uint64            `json:"consensus_opposite" yaml:"consensus_opposite" toml:"consensus_opposite"`
	TwoParty []candidateRecord `json:"two_party" yaml:"two_party" toml:"two_party"`
}

type candidateRecord struct {
	election.Candidate `yaml:",inline"`
	Platform           string  `json:"platform" yaml:"platform" toml:"platform"`
	Approval           float64 `json:"approval" yaml:"approval" toml:"approval"`
	AntagonistVotes    *uint64 `json:"antagonist_votes,omitempty" yaml:"antagonist_votes,omitempty" toml:"antagonist_votes,omitempty"`
}

func newCandidateRecord(res *election.Result, c election.Candidate) candidateRecord {
	return candidateRecord{
		Candidate: c,
		Platform:  c.ID.Binary(res.NumIssues),
		Approval:  res.ApprovalOf(c),
	}
}

func newElectionRecord(n int, res *election.Result) electionRecord {
	rec := electionRecord{
		Election:    n,
		Candidates:  make([]candidateRecord, len(res.Candidates)),
		StanceTally: res.StanceTally,
		Winners:     make(map[string][]uint64, len(election.Methods())),
		Consensus:   newCandidateRecord(res, res.Consensus),
		Opposite:    uint64(res.ConsensusAntagonist()),
		TwoParty:    make([]candidateRecord, len(res.TwoParty)),
	}

	for i, c := range res.Candidates {
		rec.Candidates[i] = newCandidateRecord(res, c)
		votes := res.AntagonistVotes[i]
		rec.Candidates[i].AntagonistVotes = &votes
	}
	for _, m := range election.Methods() {
		idx := res.WinnerIndices(m)
		ids := make([]uint64, len(idx))
		for i, j := range idx {
			ids[i] = uint64(res.Candidates[j].ID)
		}
		rec.Winners[string(m)] = ids
	}
	for i, pole := range res.TwoParty {
		rec.TwoParty[i] = newCandidateRecord(res, pole)
	}
	return rec
}

package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/wbgray/votesim/internal/election"
	verrors "github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/sim"
)

// scenarioResult is the two-issue election with ids 3, 0 and 1 holding
// 5, 3 and 2 votes, as Engine.Run would report it.
func scenarioResult() *election.Result {
	return &election.Result{
		NumIssues:  2,
		Population: 10,
		Candidates: []election.Candidate{
			{ID: 3, Votes: 5, Pro: 5, Medius: 2, Contra: 3, SumDisapproval: 8, Antagonist: 0},
			{ID: 0, Votes: 3, Pro: 3, Medius: 2, Contra: 5, SumDisapproval: 12, Antagonist: 3},
			{ID: 1, Votes: 2, Pro: 2, Medius: 8, Contra: 0, SumDisapproval: 8, Antagonist: 0},
		},
		AntagonistVotes: []uint64{3, 7, 0},
		StanceTally:     []uint64{7, 5},
		Plurality:       []int{0},
		Approval:        []int{0, 2},
		Antagonist:      []int{2},
		Consensus:       election.Candidate{ID: 3, Pro: 5, Medius: 2, Contra: 3, SumDisapproval: 8, Antagonist: 0},
		TwoParty: []election.Candidate{
			{ID: 3, Votes: 5, Pro: 5, Medius: 2, Contra: 3, SumDisapproval: 8, Antagonist: 0},
			{ID: 0, Votes: 3, Pro: 3, Medius: 2, Contra: 5, SumDisapproval: 12, Antagonist: 3},
		},
	}
}

func scenarioParams() sim.Params {
	return sim.Params{NumIssues: 2, Population: 10, Elections: 1, Seed: 42, Workers: 1}
}

func scenarioSummary() *sim.Summary {
	s := sim.NewSummary(scenarioParams())
	s.Add(scenarioResult())
	return s
}

// runReporter drives r through a one-election run.
func runReporter(t *testing.T, r Reporter) {
	t.Helper()
	if err := r.Begin(scenarioParams()); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := r.Election(1, scenarioResult()); err != nil {
		t.Fatalf("Election() error = %v", err)
	}
	if err := r.End(scenarioSummary()); err != nil {
		t.Fatalf("End() error = %v", err)
	}
}

func TestNew(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			r, err := New(format, &bytes.Buffer{}, Options{})
			if err != nil {
				t.Fatalf("New(%q) error = %v", format, err)
			}
			if r == nil {
				t.Fatal("New() returned nil reporter")
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := New("xml", &bytes.Buffer{}, Options{})
		if !verrors.Is(err, verrors.ErrUnknownFormat) {
			t.Errorf("New(xml) error = %v, want ErrUnknownFormat", err)
		}
	})
}

func TestLean(t *testing.T) {
	tests := []struct {
		name string
		c    election.Candidate
		want string
	}{
		{"pro", election.Candidate{Pro: 7, Contra: 2}, "P0.50"},
		{"contra", election.Candidate{Pro: 1, Contra: 4}, "C0.30"},
		{"even", election.Candidate{Pro: 3, Contra: 3, Medius: 4}, "M0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lean(tt.c, 10); got != tt.want {
				t.Errorf("Lean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRatios(t *testing.T) {
	c := election.Candidate{Votes: 3, Medius: 8}
	if got := MediusRatio(c, 10); got != 0.8 {
		t.Errorf("MediusRatio() = %v, want 0.8", got)
	}
	if got := VoteRatio(c, 10); got != 0.3 {
		t.Errorf("VoteRatio() = %v, want 0.3", got)
	}
	if got := VoteRatio(c, 0); got != 0 {
		t.Errorf("VoteRatio() with no population = %v, want 0", got)
	}
}

func TestLines(t *testing.T) {
	res := scenarioResult()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"leader", CandidateLine(res, res.Candidates[0], res.AntagonistVotes[0]), "3: 60.00% (P0.20 0.20) [0] 5 3"},
		{"contra leaning", CandidateLine(res, res.Candidates[1], res.AntagonistVotes[1]), "0: 40.00% (C0.20 0.20) [3] 3 7"},
		{"medius heavy", CandidateLine(res, res.Candidates[2], res.AntagonistVotes[2]), "1: 60.00% (P0.20 0.80) [0] 2 0"},
		{"consensus", ConsensusLine(res), "3: 60.00% (P0.20 0.20) [0]{0}"},
		{"first pole", PoleLine(res, res.TwoParty[0]), "3: 60.00% (P0.20 0.20) 5 0.50"},
		{"second pole", PoleLine(res, res.TwoParty[1]), "0: 40.00% (C0.20 0.20) 3 0.30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("line = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestReporters_PropagateWriteErrors(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			r, err := New(format, failingWriter{}, Options{Verbose: true})
			if err != nil {
				t.Fatal(err)
			}

			// Buffered reporters only write at the end.
			errBegin := r.Begin(scenarioParams())
			errElection := r.Election(1, scenarioResult())
			errEnd := r.End(scenarioSummary())
			if errBegin == nil && errElection == nil && errEnd == nil {
				t.Error("no error reported for a failing writer")
			}
		})
	}
}

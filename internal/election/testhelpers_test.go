package election

import (
	"testing"

	"github.com/wbgray/votesim/internal/platform"
)

// scriptedSampler returns a fixed sequence of draws and fails the test if
// a draw does not fit the requested ceiling.
type scriptedSampler struct {
	t     *testing.T
	draws []uint64
	next  int
}

func (s *scriptedSampler) Uniform(ceiling uint64) uint64 {
	s.t.Helper()
	if s.next >= len(s.draws) {
		s.t.Fatalf("scripted sampler exhausted after %d draws", s.next)
	}
	v := s.draws[s.next]
	s.next++
	if v >= ceiling {
		s.t.Fatalf("draw %d: scripted value %d not below ceiling %d", s.next, v, ceiling)
	}
	return v
}

// scenario is the two-issue election used throughout these tests:
// ids 0, 1 and 3 hold 3, 2 and 5 votes; id 2 is absent.
func scenario() []Candidate {
	return []Candidate{
		{ID: 0, Votes: 3},
		{ID: 1, Votes: 2},
		{ID: 3, Votes: 5},
	}
}

func ids(cs []Candidate) []platform.Platform {
	out := make([]platform.Platform, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func totalVotes(cs []Candidate) uint64 {
	var n uint64
	for _, c := range cs {
		n += c.Votes
	}
	return n
}

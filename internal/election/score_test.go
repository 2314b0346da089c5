package election

import (
	"slices"
	"testing"

	"github.com/wbgray/votesim/internal/platform"
	"github.com/wbgray/votesim/internal/random"
)

func TestScore_TwoIssueScenario(t *testing.T) {
	active := scenario()
	antagonist := make([]uint64, 4)
	stance := make([]uint64, 2)

	Score(active, 2, antagonist, stance)

	// With two issues a distance of 1 is exactly half and lands in Medius.
	want := []Candidate{
		{ID: 0, Votes: 3, Pro: 3, Medius: 2, Contra: 5, SumDisapproval: 12, Antagonist: 3},
		{ID: 1, Votes: 2, Pro: 2, Medius: 8, Contra: 0, SumDisapproval: 8, Antagonist: 0},
		{ID: 3, Votes: 5, Pro: 5, Medius: 2, Contra: 3, SumDisapproval: 8, Antagonist: 0},
	}
	for i := range want {
		if active[i] != want[i] {
			t.Errorf("candidate %d = %+v, want %+v", want[i].ID, active[i], want[i])
		}
	}

	if wantTally := []uint64{7, 0, 0, 3}; !slices.Equal(antagonist, wantTally) {
		t.Errorf("antagonist tally = %v, want %v", antagonist, wantTally)
	}
	if wantStance := []uint64{7, 5}; !slices.Equal(stance, wantStance) {
		t.Errorf("stance tally = %v, want %v", stance, wantStance)
	}
}

func TestScoreCandidate_HalfBoundary(t *testing.T) {
	others := []Candidate{
		{ID: 0b000, Votes: 1},
		{ID: 0b001, Votes: 10},
		{ID: 0b011, Votes: 100},
		{ID: 0b111, Votes: 1000},
	}

	tests := []struct {
		name      string
		numIssues int
		want      Candidate
	}{
		{
			// half is 1.5: distances 0 and 1 are pro, 2 and 3 contra
			name:      "odd issue count never ties",
			numIssues: 3,
			want:      Candidate{Pro: 11, Contra: 1100, SumDisapproval: 0 + 10 + 200 + 3000, Antagonist: 0b111},
		},
		{
			// half is 2: distance 2 is medius
			name:      "even issue count ties at half",
			numIssues: 4,
			want:      Candidate{Pro: 11, Medius: 100, Contra: 1000, SumDisapproval: 3210, Antagonist: 0b111},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{ID: 0, Votes: 42, Pro: 99, Antagonist: 5}
			ScoreCandidate(&c, others, tt.numIssues)

			tt.want.Votes = 42
			if c != tt.want {
				t.Errorf("ScoreCandidate() = %+v, want %+v", c, tt.want)
			}
		})
	}
}

func TestScoreCandidate_AntagonistDefaultsToSelf(t *testing.T) {
	c := Candidate{ID: 6}
	ScoreCandidate(&c, []Candidate{{ID: 6, Votes: 4}}, 3)

	if c.Antagonist != 6 {
		t.Errorf("Antagonist = %d, want own id 6", c.Antagonist)
	}
	if c.Pro != 4 || c.SumDisapproval != 0 {
		t.Errorf("ScoreCandidate() = %+v", c)
	}
}

func TestScoreCandidate_FirstMaximumWins(t *testing.T) {
	c := Candidate{ID: 0}
	ScoreCandidate(&c, []Candidate{
		{ID: 0b01, Votes: 1},
		{ID: 0b11, Votes: 1},
		{ID: 0b11 << 2, Votes: 1},
	}, 4)

	if c.Antagonist != 0b11 {
		t.Errorf("Antagonist = %d, want first id at distance 2 (3)", c.Antagonist)
	}
}

func TestScore_Properties(t *testing.T) {
	for _, numIssues := range []int{1, 2, 3, 5, 8} {
		pool := platform.PoolSize(numIssues)
		slots := make([]platform.Platform, pool)

		for seed := uint64(0); seed < 25; seed++ {
			ResetPool(slots)
			const population = 500
			active := Allocate(random.NewBounded(random.NewSource(seed)), population, slots, nil)

			antagonist := make([]uint64, pool)
			stance := make([]uint64, numIssues)
			Score(active, numIssues, antagonist, stance)

			var tallied uint64
			for _, v := range antagonist {
				tallied += v
			}
			if tallied != population {
				t.Fatalf("issues=%d seed=%d: antagonist tally sums to %d", numIssues, seed, tallied)
			}

			for _, c := range active {
				if sum := c.Pro + c.Contra + c.Medius; sum != population {
					t.Fatalf("issues=%d seed=%d: candidate %d buckets sum to %d", numIssues, seed, c.ID, sum)
				}

				var direct uint64
				maxD := 0
				for _, h := range active {
					d := platform.Distance(c.ID, h.ID)
					direct += uint64(d) * h.Votes
					maxD = max(maxD, d)
				}
				if c.SumDisapproval != direct {
					t.Fatalf("candidate %d: SumDisapproval = %d, recomputed %d", c.ID, c.SumDisapproval, direct)
				}
				if got := platform.Distance(c.ID, c.Antagonist); got != maxD {
					t.Fatalf("candidate %d: antagonist %d at distance %d, max is %d", c.ID, c.Antagonist, got, maxD)
				}
			}

			for w := 0; w < numIssues; w++ {
				var want uint64
				for _, c := range active {
					if c.ID&(1<<uint(w)) != 0 {
						want += c.Votes
					}
				}
				if stance[w] != want {
					t.Fatalf("stance[%d] = %d, want %d", w, stance[w], want)
				}
			}
		}
	}
}

func BenchmarkScore(b *testing.B) {
	const numIssues = 12
	slots := make([]platform.Platform, platform.PoolSize(numIssues))
	active := make([]Candidate, 0, len(slots))
	for i := range 64 {
		active = append(active, Candidate{ID: platform.Platform(i * 61 % len(slots)), Votes: uint64(i + 1)})
	}
	antagonist := make([]uint64, len(slots))
	stance := make([]uint64, numIssues)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(antagonist)
		clear(stance)
		Score(active, numIssues, antagonist, stance)
	}
}

package election

import (
	"fmt"
	"slices"

	"github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/logging"
	"github.com/wbgray/votesim/internal/platform"
	"github.com/wbgray/votesim/internal/random"
)

// Engine runs elections for one (numIssues, population) configuration.
// Its buffers are sized to the candidate pool once and re-initialized on
// every Run. An Engine is not safe for concurrent use; give each worker
// its own.
type Engine struct {
	numIssues   int
	population  uint64
	sourceRange uint64
	logger      *logging.Logger

	slots      []platform.Platform
	active     []Candidate
	antagonist []uint64
	stance     []uint64
}

// NewEngine returns an Engine for elections over numIssues issues among
// population voters. Both are checked against the limits implied by the
// generator range (random.DefaultRange unless WithSourceRange is given).
func NewEngine(numIssues int, population uint64, opts ...Option) (*Engine, error) {
	e := &Engine{
		numIssues:   numIssues,
		population:  population,
		sourceRange: random.DefaultRange,
		logger:      logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if maxIssues := MaxIssues(e.sourceRange); numIssues < 1 || numIssues > maxIssues {
		return nil, errors.NewSimulationError(
			fmt.Sprintf("cannot run %d issues (allowed 1-%d)", numIssues, maxIssues),
			errors.ErrIssuesOutOfRange,
		).WithPhase(string(PhaseInit))
	}
	if maxPop := MaxPopulation(e.sourceRange); population < 1 || population > maxPop {
		return nil, errors.NewSimulationError(
			fmt.Sprintf("cannot run a population of %d (allowed 1-%d)", population, maxPop),
			errors.ErrPopulationOutOfRange,
		).WithPhase(string(PhaseInit))
	}

	pool := platform.PoolSize(numIssues)
	e.slots = make([]platform.Platform, pool)
	e.active = make([]Candidate, 0, pool)
	e.antagonist = make([]uint64, pool)
	e.stance = make([]uint64, numIssues)
	return e, nil
}

// NumIssues returns the issue count the engine was built for.
func (e *Engine) NumIssues() int { return e.numIssues }

// Population returns the population the engine was built for.
func (e *Engine) Population() uint64 { return e.population }

// Run executes one election, drawing all randomness from rng, and returns
// a snapshot of the outcome.
func (e *Engine) Run(rng Sampler) *Result {
	// INIT
	ResetPool(e.slots)
	clear(e.antagonist)
	clear(e.stance)
	e.active = e.active[:0]
	e.trace(PhaseInit, "pool reset", "pool_size", len(e.slots))

	e.active = Allocate(rng, e.population, e.slots, e.active)
	e.trace(PhaseAllocate, "voters allocated", "active", len(e.active))

	Score(e.active, e.numIssues, e.antagonist, e.stance)
	e.trace(PhaseScore, "candidates scored", "stance", e.stance)

	SortByVotes(e.active)
	e.trace(PhaseSort, "candidates sorted", "leader", e.active[0].ID, "votes", e.active[0].Votes)

	res := &Result{
		NumIssues:   e.numIssues,
		Population:  e.population,
		Candidates:  slices.Clone(e.active),
		StanceTally: slices.Clone(e.stance),
	}
	res.AntagonistVotes = make([]uint64, len(res.Candidates))
	for i, c := range res.Candidates {
		res.AntagonistVotes[i] = e.antagonist[c.ID]
	}

	res.Plurality = PluralityWinners(res.Candidates)
	res.Approval = ApprovalWinners(res.Candidates)
	res.Antagonist = AntagonistWinners(res.Candidates, e.antagonist)
	e.trace(PhaseTally, "winners selected",
		"plurality", len(res.Plurality),
		"approval", len(res.Approval),
		"antagonist", len(res.Antagonist))

	res.Consensus = Consensus(res.Candidates, res.StanceTally, e.population, e.numIssues)
	e.trace(PhaseSynthesize, "consensus synthesized", "id", res.Consensus.ID)

	res.TwoParty = TwoParty(res.Candidates, e.numIssues)
	e.trace(PhaseReduce, "two-party reduction done", "poles", len(res.TwoParty))

	e.trace(PhaseReport, "snapshot ready")
	return res
}

func (e *Engine) trace(phase Phase, msg string, args ...any) {
	if !e.logger.Enabled(logging.LevelDebug) {
		return
	}
	e.logger.WithPhase(string(phase)).Debug(msg, args...)
}

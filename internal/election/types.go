package election

import (
	"github.com/wbgray/votesim/internal/logging"
	"github.com/wbgray/votesim/internal/platform"
)

// Sampler draws integers uniformly from [0, ceiling).
// *random.Bounded satisfies it.
type Sampler interface {
	Uniform(ceiling uint64) uint64
}

// Candidate is one platform in an election together with the statistics
// computed against a comparison set of candidates.
type Candidate struct {
	ID    platform.Platform `json:"id" yaml:"id" toml:"id"`
	Votes uint64            `json:"votes" yaml:"votes" toml:"votes"`

	// Pro, Contra and Medius bucket the comparison set's votes by whether
	// the voters disagree with ID on fewer than, more than, or exactly
	// half of the issues.
	Pro    uint64 `json:"pro" yaml:"pro" toml:"pro"`
	Contra uint64 `json:"contra" yaml:"contra" toml:"contra"`
	Medius uint64 `json:"medius" yaml:"medius" toml:"medius"`

	// SumDisapproval is the vote-weighted sum of distances to ID.
	SumDisapproval uint64 `json:"sum_disapproval" yaml:"sum_disapproval" toml:"sum_disapproval"`

	// Antagonist is the first candidate at maximal distance from ID, or
	// ID itself when every distance is zero.
	Antagonist platform.Platform `json:"antagonist" yaml:"antagonist" toml:"antagonist"`
}

// Phase names one step of an election iteration.
type Phase string

// Iteration phases, in execution order.
const (
	PhaseInit       Phase = "init"
	PhaseAllocate   Phase = "allocate"
	PhaseScore      Phase = "score"
	PhaseSort       Phase = "sort"
	PhaseTally      Phase = "tally"
	PhaseSynthesize Phase = "synthesize"
	PhaseReduce     Phase = "reduce"
	PhaseReport     Phase = "report"
)

// Phases returns every phase in execution order.
func Phases() []Phase {
	return []Phase{
		PhaseInit, PhaseAllocate, PhaseScore, PhaseSort,
		PhaseTally, PhaseSynthesize, PhaseReduce, PhaseReport,
	}
}

// Method identifies a winner-selection rule.
type Method string

const (
	// MethodPlurality elects the candidates with the most votes.
	MethodPlurality Method = "plurality"
	// MethodApproval elects the candidates with the least total
	// disapproval.
	MethodApproval Method = "approval"
	// MethodAntagonist elects the candidates named antagonist by the
	// fewest voters.
	MethodAntagonist Method = "antagonist"
)

// Methods returns the winner-selection rules in report order.
func Methods() []Method {
	return []Method{MethodPlurality, MethodApproval, MethodAntagonist}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for phase tracing. Phases are logged
// at DEBUG.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSourceRange sets the range of the generator behind the Sampler
// passed to Run. It bounds the accepted population and issue count.
func WithSourceRange(r uint64) Option {
	return func(e *Engine) {
		e.sourceRange = r
	}
}

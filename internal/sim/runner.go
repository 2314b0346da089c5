package sim

import (
	"context"
	"sync/atomic"

	"github.com/sourcegraph/conc/stream"

	"github.com/wbgray/votesim/internal/config"
	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/logging"
	"github.com/wbgray/votesim/internal/random"
)

// Params fixes the elections a Runner executes.
type Params struct {
	NumIssues  int    `json:"issues" yaml:"issues" toml:"issues"`
	Population uint64 `json:"population" yaml:"population" toml:"population"`
	Elections  int    `json:"elections" yaml:"elections" toml:"elections"`
	Seed       uint64 `json:"seed" yaml:"seed" toml:"seed"`
	Workers    int    `json:"workers" yaml:"workers" toml:"workers"`
}

// FromConfig builds Params from the simulation section of the config. A
// zero seed is replaced by one derived from the clock.
func FromConfig(c config.SimulationConfig) Params {
	p := Params{
		NumIssues:  c.Issues,
		Population: uint64(max(c.Population, 0)),
		Elections:  c.Elections,
		Seed:       c.Seed,
		Workers:    c.Workers,
	}
	if p.Seed == 0 {
		p.Seed = uint64(random.SeedFromClock())
	}
	return p
}

// Handler receives each election result in order. n is 1-based. A
// non-nil error stops the run.
type Handler func(n int, res *election.Result) error

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for run progress and engine phases.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithVerify checks every result's invariants before handing it on.
func WithVerify(verify bool) Option {
	return func(r *Runner) {
		r.verify = verify
	}
}

// Runner executes a series of elections.
type Runner struct {
	params Params
	logger *logging.Logger
	verify bool
}

// NewRunner validates p and returns a Runner for it.
func NewRunner(p Params, opts ...Option) (*Runner, error) {
	r := &Runner{
		params: p,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if p.Elections < 1 {
		return nil, errors.NewSimulationError("nothing to run", errors.ErrNoElections)
	}
	if r.params.Workers < 1 {
		r.params.Workers = 1
	}
	// surface engine limit errors before any election starts
	if _, err := r.newEngine(); err != nil {
		return nil, err
	}
	return r, nil
}

// Params returns the parameters the Runner was built with.
func (r *Runner) Params() Params {
	return r.params
}

func (r *Runner) newEngine() (*election.Engine, error) {
	return election.NewEngine(r.params.NumIssues, r.params.Population, election.WithLogger(r.logger))
}

// Run executes every election, passing each result to handle, and
// returns the aggregate summary. If ctx is canceled the elections
// completed so far are summarized and the returned error wraps
// errors.ErrCanceled. Cancellation only stops new elections from
// starting: once every election has been started the run completes
// and returns nil in both modes.
func (r *Runner) Run(ctx context.Context, handle Handler) (*Summary, error) {
	r.logger.Info("run started",
		"issues", r.params.NumIssues,
		"population", r.params.Population,
		"elections", r.params.Elections,
		"seed", r.params.Seed,
		"workers", r.params.Workers)

	summary := NewSummary(r.params)
	var err error
	if r.params.Workers == 1 {
		err = r.runSequential(ctx, summary, handle)
	} else {
		err = r.runPooled(ctx, summary, handle)
	}

	if err != nil {
		r.logger.Warn("run stopped", "completed", summary.Elections, "error", err.Error())
		return summary, err
	}
	r.logger.Info("run finished", "completed", summary.Elections)
	return summary, nil
}

func (r *Runner) runSequential(ctx context.Context, summary *Summary, handle Handler) error {
	engine, err := r.newEngine()
	if err != nil {
		return err
	}
	rng := random.NewBounded(random.NewSource(r.params.Seed))

	for n := 1; n <= r.params.Elections; n++ {
		if ctx.Err() != nil {
			return canceled(n, ctx.Err())
		}
		if err := r.deliver(n, engine.Run(rng), summary, handle); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runPooled(ctx context.Context, summary *Summary, handle Handler) error {
	engines := make(chan *election.Engine, r.params.Workers)
	for range r.params.Workers {
		e, err := r.newEngine()
		if err != nil {
			return err
		}
		engines <- e
	}

	var (
		stopped  atomic.Bool
		firstErr error // written only by stream callbacks, which run serially
	)

	s := stream.New().WithMaxGoroutines(r.params.Workers)
	for n := 1; n <= r.params.Elections; n++ {
		if stopped.Load() {
			break
		}
		if ctx.Err() != nil {
			stopped.Store(true)
			s.Wait()
			if firstErr != nil {
				return firstErr
			}
			return canceled(n, ctx.Err())
		}

		s.Go(func() stream.Callback {
			engine := <-engines
			rng := random.NewBounded(random.NewSource(random.SubSeed(r.params.Seed, uint64(n))))
			res := engine.Run(rng)
			engines <- engine

			return func() {
				if stopped.Load() {
					return
				}
				if err := r.deliver(n, res, summary, handle); err != nil {
					firstErr = err
					stopped.Store(true)
				}
			}
		})
	}
	s.Wait()
	return firstErr
}

func (r *Runner) deliver(n int, res *election.Result, summary *Summary, handle Handler) error {
	if r.verify {
		if err := res.Verify(); err != nil {
			var simErr *errors.SimulationError
			if errors.As(err, &simErr) {
				simErr.WithElection(n)
			}
			return err
		}
	}

	summary.Add(res)
	r.logger.WithElection(n).Debug("election complete",
		"candidates", len(res.Candidates),
		"plurality", len(res.Plurality),
		"approval", len(res.Approval))

	if handle == nil {
		return nil
	}
	if err := handle(n, res); err != nil {
		return errors.Wrapf(err, "election %d", n)
	}
	return nil
}

func canceled(n int, cause error) error {
	return errors.NewSimulationError("interrupted", errors.Join(errors.ErrCanceled, cause)).
		WithElection(n)
}

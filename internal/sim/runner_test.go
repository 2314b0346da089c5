package sim

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/wbgray/votesim/internal/config"
	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/logging"
	"github.com/wbgray/votesim/internal/random"
)

func collect(t *testing.T, r *Runner) ([]*election.Result, *Summary) {
	t.Helper()
	var got []*election.Result
	summary, err := r.Run(context.Background(), func(n int, res *election.Result) error {
		if n != len(got)+1 {
			t.Fatalf("handler got election %d, want %d", n, len(got)+1)
		}
		got = append(got, res)
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return got, summary
}

func TestNewRunner_Errors(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"no elections", Params{NumIssues: 4, Population: 10, Elections: 0}, errors.ErrNoElections},
		{"too many issues", Params{NumIssues: 20, Population: 10, Elections: 1}, errors.ErrIssuesOutOfRange},
		{"no voters", Params{NumIssues: 4, Population: 0, Elections: 1}, errors.ErrPopulationOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRunner(tt.params); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRunner() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRunner_DefaultsWorkers(t *testing.T) {
	r, err := NewRunner(Params{NumIssues: 2, Population: 5, Elections: 1})
	if err != nil {
		t.Fatal(err)
	}
	if r.Params().Workers != 1 {
		t.Errorf("Workers = %d, want 1", r.Params().Workers)
	}
}

func TestRun_SequentialUsesOneStream(t *testing.T) {
	p := Params{NumIssues: 4, Population: 150, Elections: 6, Seed: 1234, Workers: 1}
	r, err := NewRunner(p)
	if err != nil {
		t.Fatal(err)
	}
	got, summary := collect(t, r)

	engine, _ := election.NewEngine(p.NumIssues, p.Population)
	rng := random.NewBounded(random.NewSource(p.Seed))
	for i, res := range got {
		if want := engine.Run(rng); !reflect.DeepEqual(res, want) {
			t.Fatalf("election %d differs from a single-stream replay", i+1)
		}
	}

	if summary.Elections != p.Elections {
		t.Errorf("summary.Elections = %d, want %d", summary.Elections, p.Elections)
	}
}

func TestRun_PooledUsesSubSeeds(t *testing.T) {
	p := Params{NumIssues: 5, Population: 300, Elections: 40, Seed: 99, Workers: 4}
	r, err := NewRunner(p, WithVerify(true))
	if err != nil {
		t.Fatal(err)
	}
	got, summary := collect(t, r)

	if len(got) != p.Elections {
		t.Fatalf("handled %d elections, want %d", len(got), p.Elections)
	}
	engine, _ := election.NewEngine(p.NumIssues, p.Population)
	for i, res := range got {
		rng := random.NewBounded(random.NewSource(random.SubSeed(p.Seed, uint64(i+1))))
		if want := engine.Run(rng); !reflect.DeepEqual(res, want) {
			t.Fatalf("election %d does not match its sub-stream", i+1)
		}
	}
	if summary.Elections != p.Elections {
		t.Errorf("summary.Elections = %d, want %d", summary.Elections, p.Elections)
	}
}

func TestRun_PooledIndependentOfWorkerCount(t *testing.T) {
	var runs [][]*election.Result
	for _, workers := range []int{2, 3, 8} {
		r, err := NewRunner(Params{NumIssues: 3, Population: 80, Elections: 25, Seed: 5, Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		got, _ := collect(t, r)
		runs = append(runs, got)
	}

	for i := 1; i < len(runs); i++ {
		if !reflect.DeepEqual(runs[0], runs[i]) {
			t.Errorf("run %d differs from run 0", i)
		}
	}
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r, err := NewRunner(Params{NumIssues: 3, Population: 30, Elections: 10, Seed: 1, Workers: workers})
			if err != nil {
				t.Fatal(err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			summary, err := r.Run(ctx, nil)
			if !errors.Is(err, errors.ErrCanceled) {
				t.Fatalf("Run() error = %v, want ErrCanceled", err)
			}
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Run() error = %v, want context.Canceled in chain", err)
			}
			if summary.Elections != 0 {
				t.Errorf("summary.Elections = %d, want 0", summary.Elections)
			}
		})
	}
}

func TestRun_CanceledMidRun(t *testing.T) {
	r, err := NewRunner(Params{NumIssues: 3, Population: 30, Elections: 10, Seed: 1, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	summary, err := r.Run(ctx, func(n int, _ *election.Result) error {
		if n == 3 {
			cancel()
		}
		return nil
	})

	var simErr *errors.SimulationError
	if !errors.As(err, &simErr) || simErr.Election != 4 {
		t.Fatalf("Run() error = %v, want interruption at election 4", err)
	}
	if summary.Elections != 3 {
		t.Errorf("summary.Elections = %d, want 3", summary.Elections)
	}
}

func TestRun_CanceledAfterLastElectionCompletes(t *testing.T) {
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			const elections = 6
			r, err := NewRunner(Params{NumIssues: 3, Population: 30, Elections: elections, Seed: 5, Workers: workers})
			if err != nil {
				t.Fatal(err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			summary, err := r.Run(ctx, func(n int, _ *election.Result) error {
				if n == elections {
					cancel()
				}
				return nil
			})
			if err != nil {
				t.Fatalf("Run() error = %v, want nil once every election started", err)
			}
			if summary.Elections != elections {
				t.Errorf("summary.Elections = %d, want %d", summary.Elections, elections)
			}
		})
	}
}

func TestRun_HandlerErrorStopsRun(t *testing.T) {
	boom := errors.New("disk full")

	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r, err := NewRunner(Params{NumIssues: 3, Population: 30, Elections: 20, Seed: 8, Workers: workers})
			if err != nil {
				t.Fatal(err)
			}

			calls := 0
			summary, err := r.Run(context.Background(), func(n int, _ *election.Result) error {
				calls++
				if n == 2 {
					return boom
				}
				return nil
			})

			if !errors.Is(err, boom) {
				t.Fatalf("Run() error = %v, want %v", err, boom)
			}
			if !strings.Contains(err.Error(), "election 2") {
				t.Errorf("error %q should name the election", err)
			}
			if calls != 2 {
				t.Errorf("handler called %d times, want 2", calls)
			}
			if summary.Elections != 2 {
				t.Errorf("summary.Elections = %d, want 2", summary.Elections)
			}
		})
	}
}

func TestRun_LogsStartAndFinish(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerTo(&buf, logging.LevelInfo)

	r, err := NewRunner(Params{NumIssues: 2, Population: 10, Elections: 2, Seed: 3, Workers: 1}, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{`"msg":"run started"`, `"msg":"run finished"`, `"seed":3`} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %s:\n%s", msg, out)
		}
	}
}

func TestFromConfig(t *testing.T) {
	p := FromConfig(config.SimulationConfig{Issues: 6, Population: 700, Elections: 3, Seed: 17, Workers: 2})
	want := Params{NumIssues: 6, Population: 700, Elections: 3, Seed: 17, Workers: 2}
	if p != want {
		t.Errorf("FromConfig() = %+v, want %+v", p, want)
	}

	if p := FromConfig(config.SimulationConfig{Population: -1}); p.Population != 0 {
		t.Errorf("negative population converted to %d", p.Population)
	}
}

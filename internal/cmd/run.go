package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/wbgray/votesim/internal/config"
	"github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/logging"
	"github.com/wbgray/votesim/internal/report"
	"github.com/wbgray/votesim/internal/sim"
	"github.com/wbgray/votesim/internal/tui/prompt"
)

// simulationFlags are the flags that make the interactive prompt unnecessary.
var simulationFlags = []string{"issues", "population", "elections"}

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a series of elections",
		Long: `Run a series of elections and report each one followed by a summary.

When started on a terminal without --issues, --population or --elections,
votesim asks for them interactively. Answer 0 to any question to exit.

Examples:
  votesim run --issues 4 --population 1000 --elections 10
  votesim run -i 8 -p 5000 -n 200 --quiet --workers 4
  votesim run -i 3 -p 100 --format json --output results.json`,
		Args: cobra.NoArgs,
		RunE: runSimulation,
	}

	defaults := config.Default()
	flags := runCmd.Flags()

	flags.IntP("issues", "i", defaults.Simulation.Issues, "number of issues each platform takes a stance on")
	flags.IntP("population", "p", defaults.Simulation.Population, "number of voters per election")
	flags.IntP("elections", "n", defaults.Simulation.Elections, "number of elections to run")
	flags.Uint64("seed", defaults.Simulation.Seed, "random seed (0 = derive from the clock)")
	flags.IntP("workers", "w", defaults.Simulation.Workers, "elections run concurrently (1 = sequential)")
	flags.StringP("format", "f", defaults.Output.Format, "report format: text, json, yaml, toml, csv")
	flags.StringP("output", "o", defaults.Output.File, "write the report to a file instead of stdout")
	flags.String("color", defaults.Output.Color, "color the text report: auto, always, never")
	flags.BoolP("quiet", "q", false, "print only the summary, not every election")
	flags.Bool("log", defaults.Logging.Enabled, "write structured run logs")
	flags.String("log-dir", defaults.Logging.Dir, "directory for votesim.log (default stderr)")
	flags.String("log-level", defaults.Logging.Level, "log level: debug, info, warn, error")
	flags.Bool("no-prompt", false, "never ask for settings interactively")
	flags.Bool("verify", false, "check every election result for consistency")

	bindings := map[string]string{
		"simulation.issues":     "issues",
		"simulation.population": "population",
		"simulation.elections":  "elections",
		"simulation.seed":       "seed",
		"simulation.workers":    "workers",
		"output.format":         "format",
		"output.file":           "output",
		"output.color":          "color",
		"logging.enabled":       "log",
		"logging.dir":           "log-dir",
		"logging.level":         "log-level",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	return runCmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		cfg.Output.Verbose = false
	}

	if shouldPrompt(cmd) {
		answers, err := prompt.Run(prompt.Answers{
			Verbose:    cfg.Output.Verbose,
			File:       cfg.Output.File,
			Issues:     cfg.Simulation.Issues,
			Population: cfg.Simulation.Population,
			Elections:  cfg.Simulation.Elections,
		})
		if errors.Is(err, prompt.ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
		cfg.Output.Verbose = answers.Verbose
		cfg.Output.File = answers.File
		cfg.Simulation.Issues = answers.Issues
		cfg.Simulation.Population = answers.Population
		cfg.Simulation.Elections = answers.Elections
	}

	logger, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()
	logger = logger.WithRun(generateRunID())

	verify, _ := cmd.Flags().GetBool("verify")
	runner, err := sim.NewRunner(sim.FromConfig(cfg.Simulation),
		sim.WithLogger(logger),
		sim.WithVerify(verify))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.File != "" {
		f, err := os.Create(cfg.Output.File)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	reporter, err := report.New(cfg.Output.Format, out, report.Options{
		Verbose: cfg.Output.Verbose,
		Color:   useColor(cfg.Output.Color, out),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := reporter.Begin(runner.Params()); err != nil {
		return err
	}
	summary, runErr := runner.Run(ctx, reporter.Election)
	// An interrupted run still reports the elections that completed
	if err := reporter.End(summary); err != nil {
		return errors.Join(runErr, err)
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Output.File != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", cfg.Output.File)
	}
	return nil
}

// shouldPrompt reports whether settings should be collected interactively.
func shouldPrompt(cmd *cobra.Command) bool {
	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); noPrompt {
		return false
	}
	for _, name := range simulationFlags {
		if cmd.Flags().Changed(name) {
			return false
		}
	}
	return isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
}

// isTerminal reports whether v is a terminal, including Cygwin and MSYS
// pseudo terminals.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor resolves the output.color mode for w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(w)
	}
}

func newLogger(cfg config.LoggingConfig, stderr io.Writer) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	if cfg.Dir == "" {
		return logging.NewLoggerTo(stderr, cfg.Level), nil
	}
	return logging.NewLoggerWithRotation(cfg.Dir, cfg.Level, cfg.Rotation())
}

// generateRunID creates a short random hex ID
func generateRunID() string {
	bytes := make([]byte, 4)
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbgray/votesim/internal/config"
	"github.com/wbgray/votesim/internal/platform"
	"github.com/wbgray/votesim/internal/random"
)

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Show the largest accepted simulation sizes",
		Long: `Show the largest issue count and population the random source supports.

Population is capped so that population * issues stays within the
generator range, and the issue count so that every candidate pool fits.`,
		Args: cobra.NoArgs,
		RunE: runLimits,
	}
}

func runLimits(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	maxIssues := config.MaxIssues()

	fmt.Fprintf(out, "Generator range: %d\n", random.DefaultRange)
	fmt.Fprintf(out, "Max issues:      %d (pool of %d platforms)\n", maxIssues, platform.PoolSize(maxIssues))
	fmt.Fprintf(out, "Max population:  %d\n", config.MaxPopulation())
	return nil
}

// Package cmd implements the votesim command line.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wbgray/votesim/internal/config"
	"github.com/wbgray/votesim/internal/errors"
)

// Execute runs the root command and prints any error it returns.
func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// printError shows err to the operator. Critical errors come from broken
// engine invariants and get a pointer to the diagnostics.
func printError(w io.Writer, err error) {
	switch {
	case errors.Is(err, errors.ErrCanceled):
		fmt.Fprintf(w, "Interrupted: %v\n", err)
	case errors.GetSeverity(err) == errors.SeverityCritical:
		fmt.Fprintf(w, "Internal error: %v\n", err)
		fmt.Fprintln(w, "Rerun with --verify --log --log-level debug and report the output.")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "votesim",
		Short: "Election simulator comparing voting methods",
		Long: `votesim places candidates on a hypercube of binary issue stances,
lets a random population vote for the candidate it agrees with most, and
compares the winners chosen by plurality, approval and antagonist voting
with a consensus platform and a two-party runoff.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/votesim/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newLimitsCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VOTESIM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., VOTESIM_SIMULATION_ISSUES for simulation.issues
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

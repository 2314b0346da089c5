package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wbgray/votesim/internal/config"
	"github.com/wbgray/votesim/internal/errors"
)

// configKeys lists the keys accepted by "config set" and their value types.
var configKeys = map[string]string{
	"simulation.issues":     "int",
	"simulation.population": "int",
	"simulation.elections":  "int",
	"simulation.seed":       "uint",
	"simulation.workers":    "int",
	"output.format":         "string",
	"output.file":           "string",
	"output.verbose":        "bool",
	"output.color":          "string",
	"logging.enabled":       "bool",
	"logging.level":         "string",
	"logging.dir":           "string",
	"logging.max_size_mb":   "int",
	"logging.max_backups":   "int",
	"logging.compress":      "bool",
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify votesim configuration",
		Long: `View or modify votesim configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
		RunE: runConfigShow,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE:  runConfigShow,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  votesim config set simulation.issues 6
  votesim config set output.format json
  votesim config set logging.enabled true

Valid keys:
  simulation.issues      - Issues per platform (1-` + strconv.Itoa(config.MaxIssues()) + `)
  simulation.population  - Voters per election (1-` + strconv.Itoa(config.MaxPopulation()) + `)
  simulation.elections   - Elections per run
  simulation.seed        - Random seed (0 = derive from the clock)
  simulation.workers     - Elections run concurrently
  output.format          - Options: text, json, yaml, toml, csv
  output.file            - Report file (empty = stdout)
  output.verbose         - Print every election (true/false)
  output.color           - Options: auto, always, never
  logging.enabled        - Write structured run logs (true/false)
  logging.level          - Options: debug, info, warn, error
  logging.dir            - Log directory (empty = stderr)
  logging.max_size_mb    - Log size before rotation
  logging.max_backups    - Rotated logs to keep
  logging.compress       - Gzip rotated logs (true/false)`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long:  `Create a default config file at ~/.config/votesim/config.yaml with all available options.`,
		RunE:  runConfigInit,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		RunE:  runConfigPath,
	})

	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Get()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "simulation:")
	fmt.Fprintf(out, "  issues: %d\n", cfg.Simulation.Issues)
	fmt.Fprintf(out, "  population: %d\n", cfg.Simulation.Population)
	fmt.Fprintf(out, "  elections: %d\n", cfg.Simulation.Elections)
	fmt.Fprintf(out, "  seed: %d\n", cfg.Simulation.Seed)
	fmt.Fprintf(out, "  workers: %d\n", cfg.Simulation.Workers)

	fmt.Fprintln(out, "output:")
	fmt.Fprintf(out, "  format: %s\n", cfg.Output.Format)
	fmt.Fprintf(out, "  file: %q\n", cfg.Output.File)
	fmt.Fprintf(out, "  verbose: %v\n", cfg.Output.Verbose)
	fmt.Fprintf(out, "  color: %s\n", cfg.Output.Color)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %q\n", cfg.Logging.Dir)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	keyType, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'votesim config set --help' to see valid keys", key)
	}

	// Parse the value based on type
	var typedValue any
	switch keyType {
	case "string":
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return errors.NewValidationError("expected true or false").WithField(key).WithValue(value)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewValidationError("expected integer").WithField(key).WithValue(value)
		}
		typedValue = intVal
	case "uint":
		uintVal, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return errors.NewValidationError("expected non-negative integer").WithField(key).WithValue(value)
		}
		typedValue = uintVal
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)

	// Range checks live in the config validator
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return errors.NewValidationError("rejected by config validation").
			WithField(key).
			WithValue(value).
			WithCause(err)
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'votesim config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize votesim's behavior.")

	return nil
}

// defaultConfigContent renders a commented config file holding the defaults.
func defaultConfigContent() string {
	d := config.Default()

	var b strings.Builder
	b.WriteString("# votesim configuration\n\n")

	b.WriteString("# Elections to simulate\n")
	b.WriteString("simulation:\n")
	fmt.Fprintf(&b, "  # Issues each platform takes a stance on (1-%d)\n", config.MaxIssues())
	fmt.Fprintf(&b, "  issues: %d\n", d.Simulation.Issues)
	fmt.Fprintf(&b, "  # Voters per election (1-%d)\n", config.MaxPopulation())
	fmt.Fprintf(&b, "  population: %d\n", d.Simulation.Population)
	b.WriteString("  # Elections per run\n")
	fmt.Fprintf(&b, "  elections: %d\n", d.Simulation.Elections)
	b.WriteString("  # Random seed (0 = derive from the clock)\n")
	fmt.Fprintf(&b, "  seed: %d\n", d.Simulation.Seed)
	b.WriteString("  # Elections run concurrently (1 = sequential)\n")
	fmt.Fprintf(&b, "  workers: %d\n\n", d.Simulation.Workers)

	b.WriteString("# Report settings\n")
	b.WriteString("output:\n")
	b.WriteString("  # Options: text, json, yaml, toml, csv\n")
	fmt.Fprintf(&b, "  format: %s\n", d.Output.Format)
	b.WriteString("  # Report file (empty = stdout)\n")
	fmt.Fprintf(&b, "  file: %q\n", d.Output.File)
	b.WriteString("  # Print every election, not only the summary\n")
	fmt.Fprintf(&b, "  verbose: %v\n", d.Output.Verbose)
	b.WriteString("  # Options: auto, always, never\n")
	fmt.Fprintf(&b, "  color: %s\n\n", d.Output.Color)

	b.WriteString("# Structured run logs\n")
	b.WriteString("logging:\n")
	fmt.Fprintf(&b, "  enabled: %v\n", d.Logging.Enabled)
	b.WriteString("  # Options: debug, info, warn, error\n")
	fmt.Fprintf(&b, "  level: %s\n", d.Logging.Level)
	b.WriteString("  # Log directory (empty = stderr)\n")
	fmt.Fprintf(&b, "  dir: %q\n", d.Logging.Dir)
	fmt.Fprintf(&b, "  max_size_mb: %d\n", d.Logging.MaxSizeMB)
	fmt.Fprintf(&b, "  max_backups: %d\n", d.Logging.MaxBackups)
	fmt.Fprintf(&b, "  compress: %v\n", d.Logging.Compress)

	return b.String()
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: VOTESIM_* (e.g., VOTESIM_SIMULATION_ISSUES)")

	return nil
}

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/wbgray/votesim/internal/logging"
)

// Config represents the complete votesim configuration
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig describes the elections to run
type SimulationConfig struct {
	// Issues is the number of issues a platform takes a stance on.
	// The candidate pool holds 2^Issues platforms.
	Issues int `mapstructure:"issues"`
	// Population is the number of voters in every election
	Population int `mapstructure:"population"`
	// Elections is the number of independent elections to run
	Elections int `mapstructure:"elections"`
	// Seed initializes the random source (0 = derive from the clock)
	Seed uint64 `mapstructure:"seed"`
	// Workers is the number of elections run concurrently (1 = sequential)
	Workers int `mapstructure:"workers"`
}

// OutputConfig controls how results are reported
type OutputConfig struct {
	// Format is the report format
	// Options: "text", "json", "yaml", "toml", "csv"
	Format string `mapstructure:"format"`
	// File receives the report instead of stdout when set
	File string `mapstructure:"file"`
	// Verbose prints every election; when false only the summary is printed
	Verbose bool `mapstructure:"verbose"`
	// Color controls styling of the text report
	// Options: "auto", "always", "never"
	Color string `mapstructure:"color"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether run and phase logging is written
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level to record
	// Options: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the directory for votesim.log (empty = stderr)
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum size of a log file before rotation
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files
	Compress bool `mapstructure:"compress"`
}

// Rotation returns the log rotation settings.
func (c *LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Issues:     4,
			Population: 100,
			Elections:  1,
			Seed:       0,
			Workers:    1,
		},
		Output: OutputConfig{
			Format:  "text",
			File:    "",
			Verbose: true,
			Color:   "auto",
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Simulation defaults
	viper.SetDefault("simulation.issues", defaults.Simulation.Issues)
	viper.SetDefault("simulation.population", defaults.Simulation.Population)
	viper.SetDefault("simulation.elections", defaults.Simulation.Elections)
	viper.SetDefault("simulation.seed", defaults.Simulation.Seed)
	viper.SetDefault("simulation.workers", defaults.Simulation.Workers)

	// Output defaults
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.file", defaults.Output.File)
	viper.SetDefault("output.verbose", defaults.Output.Verbose)
	viper.SetDefault("output.color", defaults.Output.Color)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the directory holding the config file
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "votesim")
	}
	// Fall back to ~/.config/votesim
	home, err := os.UserHomeDir()
	if err != nil {
		return ".votesim"
	}
	return filepath.Join(home, ".config", "votesim")
}

// ConfigFile returns the default config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

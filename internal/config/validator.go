package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wbgray/votesim/internal/election"
	"github.com/wbgray/votesim/internal/errors"
	"github.com/wbgray/votesim/internal/random"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "simulation.issues")
	Value   any    // The invalid value
	Message string // Human-readable error description
	Cause   error  // Sentinel from the errors package, if any
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the sentinel behind the failure.
func (e ValidationError) Unwrap() error {
	return e.Cause
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidOutputFormats returns the list of valid report formats
func ValidOutputFormats() []string {
	return []string{"text", "json", "yaml", "toml", "csv"}
}

// ValidColorModes returns the list of valid color modes
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// MaxIssues returns the largest accepted simulation.issues for the default
// random source.
func MaxIssues() int {
	return election.MaxIssues(random.DefaultRange)
}

// MaxPopulation returns the largest accepted simulation.population for the
// default random source.
func MaxPopulation() int {
	return int(election.MaxPopulation(random.DefaultRange))
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, c.validateSimulation()...)
	errs = append(errs, c.validateOutput()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

// ValidateIssues checks a single issue count.
func ValidateIssues(n int) *ValidationError {
	if n < 1 || n > MaxIssues() {
		return &ValidationError{
			Field:   "simulation.issues",
			Value:   n,
			Message: fmt.Sprintf("must be between 1 and %d", MaxIssues()),
			Cause:   errors.ErrIssuesOutOfRange,
		}
	}
	return nil
}

// ValidatePopulation checks a single population size.
func ValidatePopulation(n int) *ValidationError {
	if n < 1 || n > MaxPopulation() {
		return &ValidationError{
			Field:   "simulation.population",
			Value:   n,
			Message: fmt.Sprintf("must be between 1 and %d", MaxPopulation()),
			Cause:   errors.ErrPopulationOutOfRange,
		}
	}
	return nil
}

// ValidateElections checks a single election count.
func ValidateElections(n int) *ValidationError {
	if n < 1 {
		return &ValidationError{
			Field:   "simulation.elections",
			Value:   n,
			Message: "must be at least 1",
			Cause:   errors.ErrNoElections,
		}
	}
	return nil
}

// validateSimulation validates the SimulationConfig
func (c *Config) validateSimulation() []ValidationError {
	var errs []ValidationError

	for _, err := range []*ValidationError{
		ValidateIssues(c.Simulation.Issues),
		ValidatePopulation(c.Simulation.Population),
		ValidateElections(c.Simulation.Elections),
	} {
		if err != nil {
			errs = append(errs, *err)
		}
	}

	if c.Simulation.Workers < 1 {
		errs = append(errs, ValidationError{
			Field:   "simulation.workers",
			Value:   c.Simulation.Workers,
			Message: "must be at least 1",
		})
	}

	// Reasonable upper bound; each worker owns pool-sized buffers
	const maxWorkers = 256
	if c.Simulation.Workers > maxWorkers {
		errs = append(errs, ValidationError{
			Field:   "simulation.workers",
			Value:   c.Simulation.Workers,
			Message: fmt.Sprintf("exceeds maximum of %d", maxWorkers),
		})
	}

	return errs
}

// validateOutput validates the OutputConfig
func (c *Config) validateOutput() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
			Cause:   errors.ErrUnknownFormat,
		})
	}

	if !slices.Contains(ValidColorModes(), c.Output.Color) {
		errs = append(errs, ValidationError{
			Field:   "output.color",
			Value:   c.Output.Color,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidColorModes(), ", ")),
		})
	}

	return errs
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// Max size must be positive
	if c.Logging.MaxSizeMB <= 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	// Reasonable upper bound for log file size
	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	// Max backups must be non-negative
	if c.Logging.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errs
}

// Package errors provides centralized error definitions and error handling
// utilities for votesim. It defines the sentinel errors raised when a
// simulation cannot be configured or run, a domain error type that carries
// the election and phase in which a failure happened, and classification
// helpers used by the CLI to decide what to show the operator.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewSimulationError("engine setup failed", errors.ErrIssuesOutOfRange).
//		WithElection(3).
//		WithPhase("allocate")
//
//	err := errors.NewValidationError("population must be positive").
//		WithField("simulation.population").
//		WithValue(0)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrIssuesOutOfRange) { ... }
//
//	var simErr *errors.SimulationError
//	if errors.As(err, &simErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityWarning is for errors caused by operator input.
	SeverityWarning Severity = iota
	// SeverityError is for errors that abort a run.
	SeverityError
	// SeverityCritical is for broken invariants inside the engine.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Configuration sentinel errors
var (
	// ErrIssuesOutOfRange indicates an issue count that does not fit the
	// candidate pool or the sampler range.
	ErrIssuesOutOfRange = New("number of issues out of range")
	// ErrPopulationOutOfRange indicates a population that would overflow
	// the sampler range or the disapproval sums.
	ErrPopulationOutOfRange = New("population size out of range")
	// ErrNoElections indicates a run was requested with zero elections.
	ErrNoElections = New("number of elections must be at least 1")
	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = New("unknown report format")
)

// Run sentinel errors
var (
	// ErrCanceled indicates the run was interrupted before completing.
	ErrCanceled = New("run canceled")
	// ErrInvariant indicates the engine produced a result that violates
	// one of its own invariants.
	ErrInvariant = New("engine invariant violated")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain Errors
// -----------------------------------------------------------------------------

// SimulationError represents a failure while preparing or running an
// election.
//
// Example:
//
//	err := errors.NewSimulationError("engine setup failed", errors.ErrPopulationOutOfRange)
//	err = err.WithElection(2).WithPhase("score")
//	fmt.Println(err) // "simulation error [election=2, phase=score]: engine setup failed: population size out of range"
type SimulationError struct {
	baseError
	Election int // 1-based; 0 when not tied to one election
	Phase    string
}

// NewSimulationError creates a new SimulationError.
func NewSimulationError(message string, cause error) *SimulationError {
	return &SimulationError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithElection adds the 1-based election number to the error context.
func (e *SimulationError) WithElection(n int) *SimulationError {
	e.Election = n
	return e
}

// WithPhase adds the engine phase to the error context.
func (e *SimulationError) WithPhase(phase string) *SimulationError {
	e.Phase = phase
	return e
}

// WithSeverity sets the error severity.
func (e *SimulationError) WithSeverity(s Severity) *SimulationError {
	e.severity = s
	if s == SeverityCritical {
		e.userFacing = false
	}
	return e
}

// Error returns the formatted error message.
func (e *SimulationError) Error() string {
	var parts []string
	if e.Election > 0 {
		parts = append(parts, fmt.Sprintf("election=%d", e.Election))
	}
	if e.Phase != "" {
		parts = append(parts, fmt.Sprintf("phase=%s", e.Phase))
	}

	prefix := "simulation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("simulation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// ValidationError represents invalid operator input.
//
// Example:
//
//	err := errors.NewValidationError("must be at least 1").
//		WithField("simulation.elections").
//		WithValue(0)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

type classified interface {
	Severity() Severity
	IsUserFacing() bool
}

// IsUserFacing returns true if the error message is safe to display to the
// operator verbatim. Cancellation is always user-facing.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var c classified
	if As(err, &c) {
		return c.IsUserFacing()
	}

	return Is(err, ErrCanceled)
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that carry no classification.
func GetSeverity(err error) Severity {
	var c classified
	if As(err, &c) {
		return c.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

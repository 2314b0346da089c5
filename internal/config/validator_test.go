package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wbgray/votesim/internal/errors"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestValidationErrors_Unwrap(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Issues = 0
	cfg.Simulation.Population = 1 << 20

	err := error(ValidationErrors(cfg.Validate()))
	if !errors.Is(err, errors.ErrIssuesOutOfRange) {
		t.Error("errors.Is(err, ErrIssuesOutOfRange) = false")
	}
	if !errors.Is(err, errors.ErrPopulationOutOfRange) {
		t.Error("errors.Is(err, ErrPopulationOutOfRange) = false")
	}
	if errors.Is(err, errors.ErrNoElections) {
		t.Error("errors.Is(err, ErrNoElections) = true for valid elections")
	}

	var ve ValidationError
	if !errors.As(err, &ve) || ve.Field != "simulation.issues" {
		t.Errorf("errors.As() = %+v", ve)
	}
}

func TestLimits(t *testing.T) {
	if MaxIssues() != 15 {
		t.Errorf("MaxIssues() = %d, want 15", MaxIssues())
	}
	if MaxPopulation() != 46340 {
		t.Errorf("MaxPopulation() = %d, want 46340", MaxPopulation())
	}
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got errors: %v", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
		wantCause error
	}{
		{"zero issues", func(c *Config) { c.Simulation.Issues = 0 }, "simulation.issues", errors.ErrIssuesOutOfRange},
		{"too many issues", func(c *Config) { c.Simulation.Issues = 16 }, "simulation.issues", errors.ErrIssuesOutOfRange},
		{"zero population", func(c *Config) { c.Simulation.Population = 0 }, "simulation.population", errors.ErrPopulationOutOfRange},
		{"negative population", func(c *Config) { c.Simulation.Population = -5 }, "simulation.population", errors.ErrPopulationOutOfRange},
		{"population too large", func(c *Config) { c.Simulation.Population = 46341 }, "simulation.population", errors.ErrPopulationOutOfRange},
		{"zero elections", func(c *Config) { c.Simulation.Elections = 0 }, "simulation.elections", errors.ErrNoElections},
		{"zero workers", func(c *Config) { c.Simulation.Workers = 0 }, "simulation.workers", nil},
		{"too many workers", func(c *Config) { c.Simulation.Workers = 1000 }, "simulation.workers", nil},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, "output.format", errors.ErrUnknownFormat},
		{"unknown color", func(c *Config) { c.Output.Color = "sometimes" }, "output.color", nil},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level", nil},
		{"zero log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb", nil},
		{"huge log size", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, "logging.max_size_mb", nil},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if tt.wantCause != nil && !errors.Is(errs[0], tt.wantCause) {
				t.Errorf("Cause = %v, want %v", errs[0].Cause, tt.wantCause)
			}
		})
	}
}

func TestConfig_Validate_Boundaries(t *testing.T) {
	for _, issues := range []int{1, MaxIssues()} {
		for _, pop := range []int{1, MaxPopulation()} {
			t.Run(fmt.Sprintf("issues=%d,population=%d", issues, pop), func(t *testing.T) {
				cfg := Default()
				cfg.Simulation.Issues = issues
				cfg.Simulation.Population = pop
				if errs := cfg.Validate(); len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
			})
		}
	}
}

func TestConfig_Validate_EmptyLogLevelAllowed(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = ""
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateHelpers(t *testing.T) {
	if err := ValidateIssues(4); err != nil {
		t.Errorf("ValidateIssues(4) = %v", err)
	}
	if err := ValidatePopulation(46340); err != nil {
		t.Errorf("ValidatePopulation(46340) = %v", err)
	}
	if err := ValidateElections(1); err != nil {
		t.Errorf("ValidateElections(1) = %v", err)
	}
	if err := ValidateElections(0); err == nil || !strings.Contains(err.Error(), "at least 1") {
		t.Errorf("ValidateElections(0) = %v", err)
	}
}

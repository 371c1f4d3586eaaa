package configloader

import (
	"fmt"
	"strings"

	"github.com/delonchen2011/SwiftLint/pkg/config"
	"github.com/delonchen2011/SwiftLint/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.SW101.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("unknown format %q; valid formats: text, json", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must not be negative",
		})
	}

	for key, ruleCfg := range cfg.Rules {
		if _, ok := lint.DefaultRegistry.Get(key); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + key,
				Value:   key,
				Message: "unknown rule",
			})
		}

		if ruleCfg.Severity != nil {
			if _, err := config.ParseSeverity(*ruleCfg.Severity); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Field:   "rules." + key + ".severity",
					Value:   *ruleCfg.Severity,
					Message: err.Error(),
				})
			}
		}
	}

	return result
}

package cli

import (
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

// Exit codes for swiftlint.
const (
	// ExitSuccess indicates successful execution with no violations.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found error-severity violations.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint found warnings while strict mode is on.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitError carries a process exit code through the command error path.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap supports errors.Is/errors.As chains.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.ViolationsBySeverity["error"]
	warnings := result.Stats.ViolationsBySeverity["warning"]

	if errors > 0 {
		return ExitLintErrors
	}

	if strict && warnings > 0 {
		return ExitLintWarnings
	}

	return ExitSuccess
}

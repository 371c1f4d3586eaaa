package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

func resultWith(errorCount, warningCount int) *runner.Result {
	return &runner.Result{
		Stats: runner.Stats{
			ViolationsBySeverity: map[string]int{
				"error":   errorCount,
				"warning": warningCount,
			},
		},
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{"nil result", nil, false, ExitSuccess},
		{"clean", resultWith(0, 0), false, ExitSuccess},
		{"warnings only", resultWith(0, 3), false, ExitSuccess},
		{"warnings strict", resultWith(0, 3), true, ExitLintWarnings},
		{"errors", resultWith(2, 0), false, ExitLintErrors},
		{"errors beat strict warnings", resultWith(1, 5), true, ExitLintErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("config broken")
	exitErr := &ExitError{Code: ExitConfigError, Err: wrapped}

	assert.Equal(t, "config broken", exitErr.Error())
	assert.ErrorIs(t, exitErr, wrapped)

	var target *ExitError
	require.ErrorAs(t, error(exitErr), &target)
	assert.Equal(t, ExitConfigError, target.Code)

	bare := &ExitError{Code: ExitIOError}
	assert.Equal(t, "exit code 74", bare.Error())
}

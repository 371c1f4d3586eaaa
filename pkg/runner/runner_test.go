package runner_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delonchen2011/SwiftLint/pkg/config"
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/lint/rules"
	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

// newTestRunner builds a runner over a text-only engine with the trailing
// newline and line length rules.
func newTestRunner() *runner.Runner {
	registry := lint.NewRegistry()
	registry.Register(rules.NewTrailingNewlineRule())
	registry.Register(rules.NewLineLengthRule())

	engine := lint.NewEngine(lint.TextOnlyAnalyzer{}, registry)
	return runner.New(engine)
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "clean.swift", "let x = 1\n")
	writeFile(t, dir, "dirty.swift", "let y = 2")
	writeFile(t, dir, "long.swift", strings.Repeat("a", 120)+"\n")

	r := newTestRunner()
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	// Outcomes follow discovery order regardless of worker completion order.
	require.Len(t, result.Files, 3)
	assert.Equal(t, filepath.Join(dir, "clean.swift"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "dirty.swift"), result.Files[1].Path)
	assert.Equal(t, filepath.Join(dir, "long.swift"), result.Files[2].Path)

	assert.Empty(t, result.Files[0].Result.Violations)

	require.Len(t, result.Files[1].Result.Violations, 1)
	assert.Equal(t, lint.KindTrailingNewline, result.Files[1].Result.Violations[0].Kind)

	require.Len(t, result.Files[2].Result.Violations, 1)
	assert.Equal(t, lint.KindLength, result.Files[2].Result.Violations[0].Kind)
}

func TestRunnerRun_Stats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "clean.swift", "let x = 1\n")
	writeFile(t, dir, "dirty.swift", "let y = 2")

	r := newTestRunner()
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesWithViolations)
	assert.Equal(t, 1, result.Stats.ViolationsTotal)

	// The default severity renders as a warning.
	assert.Equal(t, 1, result.Stats.ViolationsBySeverity["warning"])
	assert.Zero(t, result.Stats.ViolationsBySeverity["error"])

	assert.True(t, result.HasViolations())
	assert.False(t, result.HasErrors())
}

func TestRunnerRun_ErrorSeverityCounted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "dirty.swift", "let y = 2")

	cfg := config.NewConfig()
	high := "high"
	cfg.Rules["SW105"] = config.RuleConfig{Severity: &high}

	r := newTestRunner()
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.ViolationsBySeverity["error"])
	assert.True(t, result.HasErrors())
}

func TestRunnerRun_NoFiles(t *testing.T) {
	t.Parallel()

	r := newTestRunner()
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasViolations())
}

func TestRunnerRun_ManyFilesDeterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"e.swift", "a.swift", "c.swift", "b.swift", "d.swift"} {
		writeFile(t, dir, name, "let x = 1")
	}

	r := newTestRunner()
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
		Jobs:       4,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 5)
	for i, want := range []string{"a.swift", "b.swift", "c.swift", "d.swift", "e.swift"} {
		assert.Equal(t, filepath.Join(dir, want), result.Files[i].Path)
	}
	assert.Equal(t, 5, result.Stats.ViolationsTotal)
}

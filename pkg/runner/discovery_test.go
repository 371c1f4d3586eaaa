package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

// writeFile creates a file and its parent directories under dir.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_FindsSwiftFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.swift", "let x = 1\n")
	writeFile(t, dir, "Sources/App/app.swift", "let y = 2\n")
	writeFile(t, dir, "README.md", "# readme\n")
	writeFile(t, dir, "script.go", "package main\n")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "Sources/App/app.swift"), files[0])
	assert.Equal(t, filepath.Join(dir, "main.swift"), files[1])
}

func TestDiscover_SkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.swift", "let x = 1\n")
	writeFile(t, dir, ".build/generated.swift", "let y = 2\n")
	writeFile(t, dir, ".git/hook.swift", "let z = 3\n")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "main.swift"), files[0])
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.swift", "let x = 1\n")
	writeFile(t, dir, "Pods/Dep/dep.swift", "let y = 2\n")
	writeFile(t, dir, "Generated/gen.swift", "let z = 3\n")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"Pods", "Generated/*.swift"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "main.swift"), files[0])
}

func TestDiscover_ExplicitPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	swift := writeFile(t, dir, "main.swift", "let x = 1\n")
	writeFile(t, dir, "other.swift", "let y = 2\n")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"main.swift"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, swift, files[0])
}

func TestDiscover_ExplicitFileSniffedByContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := writeFile(t, dir, "tool", "#!/usr/bin/env swift\nimport Foundation\nprint(\"hi\")\n")
	writeFile(t, dir, "notes.txt", "just some notes\n")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"tool", "notes.txt"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, script, files[0])
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"does-not-exist"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestDiscover_DeduplicatesOverlappingInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.swift", "let x = 1\n")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{".", "main.swift"},
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

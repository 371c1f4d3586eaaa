// Package main is the entry point for the swiftlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/delonchen2011/SwiftLint/internal/cli"
	"github.com/delonchen2011/SwiftLint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/delonchen2011/SwiftLint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Violations are reported already; the sentinel only carries the code.
		if !errors.Is(err, cli.ErrViolationsFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}

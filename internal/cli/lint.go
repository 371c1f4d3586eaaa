package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/delonchen2011/SwiftLint/internal/configloader"
	"github.com/delonchen2011/SwiftLint/internal/logging"
	"github.com/delonchen2011/SwiftLint/pkg/config"
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	_ "github.com/delonchen2011/SwiftLint/pkg/lint/rules" // Register built-in rules
	"github.com/delonchen2011/SwiftLint/pkg/parser/sourcekitten"
	"github.com/delonchen2011/SwiftLint/pkg/reporter"
	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

// ErrViolationsFound is returned when lint violations are found.
var ErrViolationsFound = errors.New("lint violations found")

type lintFlags struct {
	format    string
	excluded  []string
	enable    []string
	disable   []string
	strict    bool
	noSummary bool
	context   bool
	compact   bool
	grouped   bool
	analyzer  string
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Swift source files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint Swift source files for style and convention violations.

By default, lints all .swift files in the current directory and
subdirectories. Specify paths to lint specific files or directories.

Structural rules (naming, body length, nesting) need the sourcekitten
binary on PATH; without it only the textual rules run.

Examples:
  swiftlint lint                    # Lint current directory
  swiftlint lint Sources/           # Lint a directory
  swiftlint lint AppDelegate.swift  # Lint single file
  swiftlint lint --format json      # Output as JSON for CI
  swiftlint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values. The format flag is resolved
	// separately so its default does not stomp config file or env settings.
	cfg.Excluded = flags.excluded
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	if flags.strict {
		cfg.Strict = true
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("get working directory: %w", err)}
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: fmt.Errorf("load configuration: %w", err)}
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	if finalCfg.LogLevel != "" && !cmd.Flags().Changed("debug") {
		logging.SetLevel(finalCfg.LogLevel)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldStrict, finalCfg.Strict,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Pick the analyzer. Without sourcekitten only textual rules can fire.
	analyzer := newAnalyzer(flags.analyzer, logger)

	engine := lint.NewEngine(analyzer, lint.DefaultRegistry)
	lintRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Excluded,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return &ExitError{Code: ExitInternalError, Err: fmt.Errorf("lint run: %w", err)}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	// The summary format exists only at the reporter level, so the flag value
	// bypasses the config type when set explicitly.
	formatStr := string(finalCfg.Format)
	if cmd.Flags().Changed("format") {
		formatStr = flags.format
	}
	format, err := reporter.ParseFormat(formatStr)
	if err != nil {
		return &ExitError{Code: ExitInvalidUsage, Err: err}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: flags.context,
		ShowSummary: !flags.noSummary,
		GroupByFile: flags.grouped,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return &ExitError{Code: ExitInvalidUsage, Err: fmt.Errorf("create reporter: %w", err)}
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("report results: %w", err)}
	}

	exitCode := ExitCodeFromResult(result, finalCfg.Strict)
	if exitCode != ExitSuccess {
		return &ExitError{Code: exitCode, Err: ErrViolationsFound}
	}

	return nil
}

// newAnalyzer selects the syntax analyzer implementation for this run.
func newAnalyzer(name string, logger *log.Logger) lint.Analyzer {
	switch name {
	case "none":
		return lint.TextOnlyAnalyzer{}
	default:
		skAnalyzer := sourcekitten.NewWithBinary(analyzerBinary(name))
		if skAnalyzer.Available() {
			return skAnalyzer
		}
		logger.Warn("sourcekitten not found on PATH; structural rules disabled")
		return lint.TextOnlyAnalyzer{}
	}
}

// analyzerBinary maps the --analyzer flag value to an executable name.
func analyzerBinary(name string) string {
	if name == "" || name == "sourcekitten" {
		return sourcekitten.DefaultBinary
	}
	return name
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.excluded, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the aggregate summary line")
	cmd.Flags().BoolVar(&flags.context, "show-context", false, "show source line context with each violation")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output where applicable")
	cmd.Flags().BoolVar(&flags.grouped, "group-by-file", false, "group violations under per-file headers")
	cmd.Flags().StringVar(&flags.analyzer, "analyzer", "sourcekitten",
		"syntax analyzer: sourcekitten, none, or a binary name")
}

package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/delonchen2011/SwiftLint/internal/logging"
	"github.com/delonchen2011/SwiftLint/pkg/config"
	"github.com/delonchen2011/SwiftLint/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Engine.
// Files are analyzed independently, so workers share nothing but the engine.
type Runner struct {
	// Engine handles per-file analysis and rule execution.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and lints them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate
// stats: outcomes are assembled in discovery (path-sorted) order regardless
// of worker completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Config)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logging.FromContext(ctx).Debug("lint run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithViolations, result.Stats.FilesWithViolations,
		logging.FieldViolationsTotal, result.Stats.ViolationsTotal,
	)

	return result, nil
}

// worker lints files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	cfg *config.Config,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		content, err := os.ReadFile(path)
		if err != nil {
			outcome.Error = fmt.Errorf("read %s: %w", path, err)
		} else {
			fr, err := r.Engine.LintFile(ctx, path, content, cfg)
			if err != nil {
				outcome.Error = err
			} else {
				outcome.Result = fr
				for id, ruleErr := range fr.RuleErrors {
					logging.FromContext(ctx).Warn("rule failed",
						logging.FieldRule, id,
						logging.FieldPath, path,
						logging.FieldError, ruleErr,
					)
				}
			}
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/delonchen2011/SwiftLint/internal/ui/pretty"
	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

// SummaryReporter emits only the aggregate statistics block, without
// individual violations. Useful on large trees where the per-violation
// output would drown the signal.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	fmt.Fprint(bw, r.styles.FormatSummary(result.Stats))

	return result.Stats.ViolationsTotal, nil
}

// compile-time interface check
var _ Reporter = (*SummaryReporter)(nil)

package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/delonchen2011/SwiftLint/internal/ui/pretty"
	"github.com/delonchen2011/SwiftLint/pkg/runner"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// TextReporter formats results as terminal output. In flat mode each
// violation is one compiler-style line; in grouped mode violations are
// styled and grouped under a per-file header.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	if r.opts.GroupByFile {
		total = r.reportGrouped(ctx, bw, result)
	} else {
		total = r.reportFlat(ctx, bw, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportGrouped writes violations grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, bw *bufio.Writer, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || len(file.Result.Violations) == 0 {
			continue
		}

		fmt.Fprintln(bw, r.styles.FormatFileHeader(path, len(file.Result.Violations)))

		for _, v := range file.Result.Violations {
			var sourceLine string
			if r.opts.ShowContext {
				sourceLine = getSourceLine(file.Result.File, v.Location.Line)
			}

			fmt.Fprint(bw, r.styles.FormatViolation(v, r.opts.ShowContext, sourceLine))
			total++
		}

		// Blank line between files
		fmt.Fprintln(bw)
	}

	return total
}

// reportFlat writes one compiler-style line per violation, the form most
// build tools and editors know how to parse.
func (r *TextReporter) reportFlat(_ context.Context, bw *bufio.Writer, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil {
			continue
		}

		for _, v := range file.Result.Violations {
			v.Location.File = path
			fmt.Fprintln(bw, v.String())
			total++
		}
	}

	return total
}

// getSourceLine extracts a specific line from an analyzed file using its
// pre-computed line index.
func getSourceLine(file *syntax.File, lineNum int) string {
	if file == nil {
		return ""
	}
	content := file.LineContent(lineNum)
	if content == nil {
		return ""
	}
	return string(content)
}

// compile-time interface check
var _ Reporter = (*TextReporter)(nil)

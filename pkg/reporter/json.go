package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string          `json:"path"`
	Violations []JSONViolation `json:"violations"`
	Error      string          `json:"error,omitempty"`
}

// JSONViolation represents a single violation.
type JSONViolation struct {
	RuleID    string `json:"ruleId"`
	Kind      string `json:"kind"`
	Severity  string `json:"severity"`
	Reason    string `json:"reason,omitempty"`
	Line      int    `json:"line,omitempty"`
	Character int    `json:"character,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked        int            `json:"filesChecked"`
	FilesWithViolations int            `json:"filesWithViolations"`
	FilesErrored        int            `json:"filesErrored"`
	TotalViolations     int            `json:"totalViolations"`
	BySeverity          map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalViolations, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:       displayPath(file.Path, r.opts.WorkingDir),
			Violations: make([]JSONViolation, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			for _, v := range file.Result.Violations {
				fileResult.Violations = append(fileResult.Violations, JSONViolation{
					RuleID:    v.RuleID,
					Kind:      v.Kind.String(),
					Severity:  v.Severity.Label(),
					Reason:    v.Reason,
					Line:      v.Location.Line,
					Character: v.Location.Character,
				})
				output.Summary.TotalViolations++
				output.Summary.BySeverity[v.Severity.Label()]++
			}
		}

		if len(fileResult.Violations) > 0 {
			output.Summary.FilesWithViolations++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}

// compile-time interface check
var _ Reporter = (*JSONReporter)(nil)

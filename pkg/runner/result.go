package runner

import "github.com/delonchen2011/SwiftLint/pkg/lint"

// FileOutcome pairs a file path with its lint result.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the lint result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithViolations is the number of files with at least one violation.
	FilesWithViolations int

	// ViolationsTotal is the total number of violations across all files.
	ViolationsTotal int

	// ViolationsBySeverity maps severity labels ("warning", "error") to counts.
	ViolationsBySeverity map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any error-severity violations occurred.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsBySeverity["error"] > 0
}

// HasViolations reports whether any violations were found.
func (r *Result) HasViolations() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		ViolationsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	count := len(outcome.Result.Violations)
	r.Stats.ViolationsTotal += count
	if count > 0 {
		r.Stats.FilesWithViolations++
	}

	for _, v := range outcome.Result.Violations {
		r.Stats.ViolationsBySeverity[v.Severity.Label()]++
	}
}

package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/delonchen2011/SwiftLint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 violations (8 errors, 4 warnings), in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ViolationsTotal == 0 {
		msg := s.Success.Render("No violations found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		return msg + "\n"
	}

	var parts []string

	violationWord := "violations"
	if stats.ViolationsTotal == 1 {
		violationWord = "violation"
	}

	// Build severity breakdown
	var severityParts []string
	if errors := stats.ViolationsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.ViolationsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)",
			stats.ViolationsTotal, violationWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.ViolationsTotal, violationWord))
	}

	fileWord := wordFiles
	if stats.FilesWithViolations == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithViolations, fileWord))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files checked:         " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithViolations > 0 {
		builder.WriteString("  Files with violations: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithViolations)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:         " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	// Violations by severity
	builder.WriteString("  Total violations:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.ViolationsTotal)) + "\n")

	if errors := stats.ViolationsBySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:              " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.ViolationsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:            " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.ViolationsBySeverity["error"] > 0:
		builder.WriteString(s.Failure.Render("Lint failed with errors"))
	case stats.ViolationsBySeverity["warning"] > 0:
		builder.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

package pretty

import (
	"fmt"
	"strings"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
)

// FormatViolation formats a single violation for terminal output.
func (s *Styles) FormatViolation(v lint.Violation, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := s.FormatLocation(v.Location)
	severity := s.FormatSeverity(v.Severity.Label())
	ruleDisplay := s.RuleID.Render("(" + v.RuleID + ")")

	message := v.Kind.String() + " Violation"
	if v.Reason != "" {
		message += ": " + v.Reason
	}

	// Main line: location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(message),
		ruleDisplay,
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, v.Location.Character))
	}

	return builder.String()
}

// FormatLocation renders a styled path:line:character location.
func (s *Styles) FormatLocation(loc lint.Location) string {
	var builder strings.Builder
	builder.WriteString(s.FilePath.Render(loc.String()))
	return builder.String()
}

// FormatSeverity returns a styled severity label.
func (s *Styles) FormatSeverity(label string) string {
	if label == "error" {
		return s.Error.Render(label)
	}
	return s.Warning.Render(label)
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with violation output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, violationCount int) string {
	header := s.FilePath.Render(path)
	if violationCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d violations)", violationCount))
	}
	return header
}

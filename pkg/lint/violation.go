// Package lint provides the violation model, rule engine, and registry for
// swiftlint.
package lint

import (
	"fmt"
	"strings"

	"github.com/delonchen2011/SwiftLint/pkg/config"
)

// Kind is the closed enumeration of violation categories.
type Kind int

const (
	KindNameFormat Kind = iota
	KindLength
	KindTrailingNewline
	KindLeadingWhitespace
	KindTrailingWhitespace
	KindForceCast
	KindTODO
	KindColon
	KindNesting
)

// kindLabels holds the fixed display label for each violation kind.
var kindLabels = map[Kind]string{
	KindNameFormat:         "Name Format",
	KindLength:             "Length",
	KindTrailingNewline:    "Trailing Newline",
	KindLeadingWhitespace:  "Leading Whitespace",
	KindTrailingWhitespace: "Trailing Whitespace",
	KindForceCast:          "Force Cast",
	KindTODO:               "TODO or FIXME",
	KindColon:              "Colon",
	KindNesting:            "Nesting",
}

// String returns the display label for the kind.
func (k Kind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// noPathPlaceholder is rendered when a location has no file path.
const noPathPlaceholder = "<nopath>"

// Location identifies where in a source file a violation occurred.
// A zero Line means the line is unknown; a zero Character means the character
// is unknown. A Location never carries a character without a line.
type Location struct {
	File      string
	Line      int
	Character int
}

// NewLocation builds a Location, dropping the character when no line is
// present so the line/character invariant always holds.
func NewLocation(file string, line, character int) Location {
	if line <= 0 {
		return Location{File: file}
	}
	if character < 0 {
		character = 0
	}
	return Location{File: file, Line: line, Character: character}
}

// String renders the location as path[:line[:character]], substituting a
// placeholder when the path is absent.
func (l Location) String() string {
	var sb strings.Builder
	if l.File != "" {
		sb.WriteString(l.File)
	} else {
		sb.WriteString(noPathPlaceholder)
	}
	if l.Line > 0 {
		fmt.Fprintf(&sb, ":%d", l.Line)
		if l.Character > 0 {
			fmt.Fprintf(&sb, ":%d", l.Character)
		}
	}
	return sb.String()
}

// Violation is one reported instance of a source file failing a rule.
// Violations are value types and never mutated once constructed.
type Violation struct {
	// RuleID is the identifier of the rule that produced this violation.
	RuleID string

	// Kind categorizes the violation.
	Kind Kind

	// Severity indicates the importance of the violation.
	Severity config.Severity

	// Location is where the violation occurred.
	Location Location

	// Reason is the human-readable explanation (may be empty).
	Reason string
}

// Equal reports whether two violations describe the same finding. Severity is
// deliberately excluded: it is a presentation policy, not part of the finding.
func (v Violation) Equal(other Violation) bool {
	return v.Kind == other.Kind &&
		v.Location == other.Location &&
		v.Reason == other.Reason
}

// String renders the violation in compiler-diagnostic form:
// path:line:char: severity: Kind Violation: reason.
func (v Violation) String() string {
	var sb strings.Builder
	sb.WriteString(v.Location.String())
	sb.WriteString(": ")
	sb.WriteString(v.Severity.Label())
	sb.WriteString(": ")
	sb.WriteString(v.Kind.String())
	sb.WriteString(" Violation")
	if v.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(v.Reason)
	}
	return sb.String()
}

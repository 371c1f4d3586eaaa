package rules

import (
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
)

// LeadingWhitespaceRule checks that files do not start with whitespace.
type LeadingWhitespaceRule struct {
	lint.BaseRule
}

// NewLeadingWhitespaceRule creates a new leading whitespace rule.
func NewLeadingWhitespaceRule() *LeadingWhitespaceRule {
	return &LeadingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"SW103",
			"leading-whitespace",
			"Files should not begin with whitespace or newline characters",
			lint.KindLeadingWhitespace,
			[]string{"text", "whitespace"},
		),
	}
}

// Apply checks the file's leading run of whitespace and newline characters.
func (r *LeadingWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	count := lint.LeadingWhitespaceCount(ctx.File)
	if count == 0 {
		return nil, nil
	}

	violation := lint.Violation{
		Kind:     lint.KindLeadingWhitespace,
		Location: lint.NewLocation(ctx.File.Path, 1, 0),
		Reason: fmt.Sprintf("File shouldn't start with whitespace: "+
			"currently starts with %d whitespace characters", count),
	}
	return []lint.Violation{violation}, nil
}

// TrailingWhitespaceRule checks for trailing whitespace on lines.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"SW104",
			"trailing-whitespace",
			"Lines should not have trailing whitespace",
			lint.KindTrailingWhitespace,
			[]string{"text", "whitespace"},
		),
	}
}

// Apply checks each line's trailing run of whitespace characters.
func (r *TrailingWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var violations []lint.Violation
	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		count := lint.TrailingWhitespaceCount(ctx.File, lineNum)
		if count == 0 {
			continue
		}

		violations = append(violations, lint.Violation{
			Kind:     lint.KindTrailingWhitespace,
			Location: lint.NewLocation(ctx.File.Path, lineNum, 0),
			Reason: fmt.Sprintf("Line #%d should have no trailing whitespace: "+
				"currently has %d trailing whitespace characters", lineNum, count),
		})
	}

	return violations, nil
}

// TrailingNewlineRule checks that files end with exactly one newline.
type TrailingNewlineRule struct {
	lint.BaseRule
}

// NewTrailingNewlineRule creates a new trailing newline rule.
func NewTrailingNewlineRule() *TrailingNewlineRule {
	return &TrailingNewlineRule{
		BaseRule: lint.NewBaseRule(
			"SW105",
			"trailing-newline",
			"Files should end with a single trailing newline",
			lint.KindTrailingNewline,
			[]string{"text", "whitespace"},
		),
	}
}

// Apply counts the file's trailing newline characters. Zero and two or more
// both violate.
func (r *TrailingNewlineRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	count := lint.TrailingNewlineCount(ctx.File)
	if count == 1 {
		return nil, nil
	}

	violation := lint.Violation{
		Kind:     lint.KindTrailingNewline,
		Location: lint.NewLocation(ctx.File.Path, 0, 0),
		Reason:   fmt.Sprintf("File should have a single trailing newline: currently has %d", count),
	}
	return []lint.Violation{violation}, nil
}

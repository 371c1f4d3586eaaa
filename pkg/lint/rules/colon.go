package rules

import (
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// Colon spacing patterns for type annotations. Both require the match span to
// be classified as an identifier token followed by a type identifier token.
//
// The first catches whitespace before the colon ("let x : Int"); the second
// catches zero or two-plus spaces after it ("let x:Int", "let x:  Int"). The
// two result sets are concatenated, each sub-pattern reporting its matches
// independently.
const (
	colonSpaceBeforePattern = `\w+\s+:\s+\w+`
	colonSpaceAfterPattern  = `\w+:(?:\s{0}|\s{2,})\w+`
)

// ColonRule checks the spacing around type annotation colons.
type ColonRule struct {
	lint.BaseRule
}

// NewColonRule creates a new colon spacing rule.
func NewColonRule() *ColonRule {
	return &ColonRule{
		BaseRule: lint.NewBaseRule(
			"SW108",
			"colon-spacing",
			"Type annotation colons should hug the identifier and be followed by one space",
			lint.KindColon,
			[]string{"text", "style"},
		),
	}
}

// Apply reports each misplaced type annotation colon.
func (r *ColonRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	kinds := []syntax.TokenKind{syntax.TokenIdentifier, syntax.TokenTypeIdentifier}

	var matches []syntax.Range
	matches = append(matches, ctx.File.MatchPattern(colonSpaceBeforePattern, kinds...)...)
	matches = append(matches, ctx.File.MatchPattern(colonSpaceAfterPattern, kinds...)...)

	var violations []lint.Violation
	for _, match := range matches {
		violations = append(violations, lint.Violation{
			Kind:     lint.KindColon,
			Location: lint.LocationAtOffset(ctx.File, match.Start),
			Reason:   "When specifying a type, always associate the colon with the identifier",
		})
	}

	return violations, nil
}

package rules

import (
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// forceCastPattern matches the forced downcast operator. A match only counts
// when the span is classified as exactly one keyword token, so occurrences
// inside strings or comments are ignored.
const forceCastPattern = `as!`

// ForceCastRule checks for forced type casts.
type ForceCastRule struct {
	lint.BaseRule
}

// NewForceCastRule creates a new force cast rule.
func NewForceCastRule() *ForceCastRule {
	return &ForceCastRule{
		BaseRule: lint.NewBaseRule(
			"SW106",
			"force-cast",
			"Force casts should be avoided",
			lint.KindForceCast,
			[]string{"text", "idiomatic"},
		),
	}
}

// Apply reports each occurrence of the force cast operator in keyword position.
func (r *ForceCastRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var violations []lint.Violation
	for _, match := range ctx.File.MatchPattern(forceCastPattern, syntax.TokenKeyword) {
		violations = append(violations, lint.Violation{
			Kind:     lint.KindForceCast,
			Location: lint.LocationAtOffset(ctx.File, match.Start),
			Reason:   "Force casts should be avoided",
		})
	}

	return violations, nil
}

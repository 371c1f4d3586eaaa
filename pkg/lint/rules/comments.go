package rules

import (
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// todoPattern matches TODO and FIXME comment markers. A match only counts
// when the span is classified as exactly one comment token.
const todoPattern = `// (?:TODO|FIXME):`

// TODORule checks for TODO and FIXME markers left in source.
type TODORule struct {
	lint.BaseRule
}

// NewTODORule creates a new TODO/FIXME rule.
func NewTODORule() *TODORule {
	return &TODORule{
		BaseRule: lint.NewBaseRule(
			"SW107",
			"todo",
			"TODO and FIXME markers should be resolved before committing",
			lint.KindTODO,
			[]string{"text", "idiomatic"},
		),
	}
}

// Apply reports each TODO or FIXME marker found in comment position.
func (r *TODORule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var violations []lint.Violation
	for _, match := range ctx.File.MatchPattern(todoPattern, syntax.TokenComment) {
		violations = append(violations, lint.Violation{
			Kind:     lint.KindTODO,
			Location: lint.LocationAtOffset(ctx.File, match.Start),
			Reason:   "TODOs and FIXMEs should be avoided",
		})
	}

	return violations, nil
}

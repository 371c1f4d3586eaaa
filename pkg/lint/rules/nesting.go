package rules

import (
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// Default nesting depth thresholds.
const (
	defaultTypeMaxDepth      = 1
	defaultStatementMaxDepth = 5
)

// NestingRule checks that types and statements are not nested too deeply.
type NestingRule struct {
	lint.BaseRule
}

// NewNestingRule creates a new nesting rule.
func NewNestingRule() *NestingRule {
	return &NestingRule{
		BaseRule: lint.NewBaseRule(
			"SW005",
			"nesting",
			"Types should be nested at most 1 level deep, "+
				"and statements should be nested at most 5 levels deep",
			lint.KindNesting,
			[]string{"structure"},
		),
	}
}

// Apply walks the tree carrying the nesting level. A type declaration deeper
// than the type limit violates; otherwise any node deeper than the statement
// limit violates. The type check takes precedence: when it fires for a node,
// the statement check is not also evaluated there.
func (r *NestingRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	typeDepth := ctx.OptionInt("type_level", defaultTypeMaxDepth)
	stmtDepth := ctx.OptionInt("statement_level", defaultStatementMaxDepth)

	var violations []lint.Violation
	syntax.WalkLevels(ctx.Root, func(n *syntax.Node, level int) {
		switch {
		case n.Kind.IsNamedType() && level > typeDepth:
			violations = append(violations, lint.Violation{
				Kind:     lint.KindNesting,
				Location: nodeLocation(ctx.File, n),
				Reason: fmt.Sprintf("Types should be nested at most %d level deep",
					typeDepth),
			})
		case level > stmtDepth:
			violations = append(violations, lint.Violation{
				Kind:     lint.KindNesting,
				Location: nodeLocation(ctx.File, n),
				Reason: fmt.Sprintf("Statements should be nested at most %d levels deep",
					stmtDepth),
			})
		}
	})

	return violations, nil
}

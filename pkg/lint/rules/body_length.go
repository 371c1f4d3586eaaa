package rules

import (
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// Default body span thresholds, in lines.
const (
	defaultTypeBodyMaxLines     = 200
	defaultFunctionBodyMaxLines = 40
)

// TypeBodyLengthRule checks that class, struct, and enum bodies do not span
// too many lines.
type TypeBodyLengthRule struct {
	lint.BaseRule
}

// NewTypeBodyLengthRule creates a new type body length rule.
func NewTypeBodyLengthRule() *TypeBodyLengthRule {
	return &TypeBodyLengthRule{
		BaseRule: lint.NewBaseRule(
			"SW003",
			"type-body-length",
			"Type bodies should span 200 lines or less",
			lint.KindLength,
			[]string{"structure", "length"},
		),
	}
}

// Apply checks the body span of every type declaration with a body range.
func (r *TypeBodyLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	maxLines := ctx.OptionInt("max_lines", defaultTypeBodyMaxLines)
	return bodyLengthViolations(ctx, "Type", maxLines, func(k syntax.DeclKind) bool {
		return k.HasTypeBody()
	})
}

// FunctionBodyLengthRule checks that function-like bodies do not span too
// many lines.
type FunctionBodyLengthRule struct {
	lint.BaseRule
}

// NewFunctionBodyLengthRule creates a new function body length rule.
func NewFunctionBodyLengthRule() *FunctionBodyLengthRule {
	return &FunctionBodyLengthRule{
		BaseRule: lint.NewBaseRule(
			"SW004",
			"function-body-length",
			"Function bodies should span 40 lines or less",
			lint.KindLength,
			[]string{"structure", "length"},
		),
	}
}

// Apply checks the body span of every function-like declaration with a body range.
func (r *FunctionBodyLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	maxLines := ctx.OptionInt("max_lines", defaultFunctionBodyMaxLines)
	return bodyLengthViolations(ctx, "Function", maxLines, func(k syntax.DeclKind) bool {
		return k.IsFunction()
	})
}

// bodyLengthViolations walks the tree and reports declarations whose body
// span, measured in lines between the mapped body start and body end, exceeds
// maxLines. Nodes without a body range, and body offsets the position mapper
// cannot resolve, produce no violation.
func bodyLengthViolations(
	ctx *lint.RuleContext,
	label string,
	maxLines int,
	match func(syntax.DeclKind) bool,
) ([]lint.Violation, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	var violations []lint.Violation
	syntax.WalkLevels(ctx.Root, func(n *syntax.Node, _ int) {
		if !match(n.Kind) || !n.HasBody() {
			return
		}

		start, ok := ctx.File.LineAndCharacter(n.BodyOffset)
		if !ok {
			return
		}
		end, ok := ctx.File.LineAndCharacter(n.BodyOffset + n.BodyLength)
		if !ok {
			return
		}

		span := end.Line - start.Line
		if span <= maxLines {
			return
		}

		violations = append(violations, lint.Violation{
			Kind:     lint.KindLength,
			Location: lint.LocationAtOffset(ctx.File, n.BodyOffset),
			Reason: fmt.Sprintf("%s body should span %d lines or less: currently spans %d lines",
				label, maxLines, span),
		})
	})

	return violations, nil
}

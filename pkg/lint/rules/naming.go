package rules

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// Default bounds for declaration name lengths, in characters.
const (
	defaultNameMinLength = 3
	defaultNameMaxLength = 40
)

// TypeNameRule checks that type names are alphanumeric, start uppercase, and
// have a reasonable length.
type TypeNameRule struct {
	lint.BaseRule
}

// NewTypeNameRule creates a new type name rule.
func NewTypeNameRule() *TypeNameRule {
	return &TypeNameRule{
		BaseRule: lint.NewBaseRule(
			"SW001",
			"type-name",
			"Type names should be alphanumeric, start with an uppercase character, "+
				"and be between 3 and 40 characters long",
			lint.KindNameFormat,
			[]string{"structure", "naming"},
		),
	}
}

// Apply validates the name of every type declaration in the tree.
func (r *TypeNameRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	minLen := ctx.OptionInt("min_length", defaultNameMinLength)
	maxLen := ctx.OptionInt("max_length", defaultNameMaxLength)

	var violations []lint.Violation
	syntax.WalkLevels(ctx.Root, func(n *syntax.Node, _ int) {
		if !n.Kind.IsNamedType() || n.Name == "" {
			return
		}
		if reason := checkName(n.Name, "Type", false, minLen, maxLen); reason != "" {
			violations = append(violations, lint.Violation{
				Kind:     lint.KindNameFormat,
				Location: nodeLocation(ctx.File, n),
				Reason:   reason,
			})
		}
	})

	return violations, nil
}

// VariableNameRule checks that variable names are alphanumeric, start
// lowercase, and have a reasonable length.
type VariableNameRule struct {
	lint.BaseRule
}

// NewVariableNameRule creates a new variable name rule.
func NewVariableNameRule() *VariableNameRule {
	return &VariableNameRule{
		BaseRule: lint.NewBaseRule(
			"SW002",
			"variable-name",
			"Variable names should be alphanumeric, start with a lowercase character, "+
				"and be between 3 and 40 characters long",
			lint.KindNameFormat,
			[]string{"structure", "naming"},
		),
	}
}

// Apply validates the name of every variable declaration in the tree.
func (r *VariableNameRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	minLen := ctx.OptionInt("min_length", defaultNameMinLength)
	maxLen := ctx.OptionInt("max_length", defaultNameMaxLength)

	var violations []lint.Violation
	syntax.WalkLevels(ctx.Root, func(n *syntax.Node, _ int) {
		if !n.Kind.IsVariable() || n.Name == "" {
			return
		}
		if reason := checkName(n.Name, "Variable", true, minLen, maxLen); reason != "" {
			violations = append(violations, lint.Violation{
				Kind:     lint.KindNameFormat,
				Location: nodeLocation(ctx.File, n),
				Reason:   reason,
			})
		}
	})

	return violations, nil
}

// checkName applies the three name checks in priority order and returns the
// reason for the first failed check, or "" when the name is acceptable.
// Checks: (1) alphanumeric characters only; (2) case of the first character,
// uppercase for types and lowercase for variables; (3) length bounds in
// characters.
func checkName(name, label string, wantLower bool, minLen, maxLen int) string {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Sprintf("%s name should only contain alphanumeric characters: '%s'",
				label, name)
		}
	}

	first, _ := utf8.DecodeRuneInString(name)
	if wantLower {
		if unicode.IsUpper(first) {
			return fmt.Sprintf("%s name should start with a lowercase character: '%s'",
				label, name)
		}
	} else if !unicode.IsUpper(first) {
		return fmt.Sprintf("%s name should start with an uppercase character: '%s'",
			label, name)
	}

	if length := utf8.RuneCountInString(name); length < minLen || length > maxLen {
		return fmt.Sprintf("%s name should be between %d and %d characters in length: '%s'",
			label, minLen, maxLen, name)
	}

	return ""
}

// nodeLocation maps a node's declaration offset to a Location. A node without
// an offset, or one outside the file, degrades to a file-only location.
func nodeLocation(file *syntax.File, n *syntax.Node) lint.Location {
	if !n.HasOffset() {
		return lint.NewLocation(file.Path, 0, 0)
	}
	return lint.LocationAtOffset(file, n.Offset)
}

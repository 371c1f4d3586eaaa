package rules

import (
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
)

// defaultMaxLineLength is the default maximum line length in characters.
const defaultMaxLineLength = 100

// LineLengthRule checks that lines do not exceed a maximum character count.
type LineLengthRule struct {
	lint.BaseRule
}

// NewLineLengthRule creates a new line length rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: lint.NewBaseRule(
			"SW101",
			"line-length",
			"Lines should be 100 characters or less",
			lint.KindLength,
			[]string{"text", "length"},
		),
	}
}

// Apply checks the character count of every line. A line of exactly the
// maximum length is acceptable.
func (r *LineLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	maxLength := ctx.OptionInt("max", defaultMaxLineLength)

	var violations []lint.Violation
	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		length := lint.LineLength(ctx.File, lineNum)
		if length <= maxLength {
			continue
		}

		violations = append(violations, lint.Violation{
			Kind:     lint.KindLength,
			Location: lint.NewLocation(ctx.File.Path, lineNum, 0),
			Reason: fmt.Sprintf("Line #%d should be %d characters or less: currently %d characters",
				lineNum, maxLength, length),
		})
	}

	return violations, nil
}

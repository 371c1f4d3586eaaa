package rules

import (
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
)

// defaultMaxFileLength is the default maximum file length in lines.
const defaultMaxFileLength = 400

// FileLengthRule checks that files do not exceed a maximum line count.
type FileLengthRule struct {
	lint.BaseRule
}

// NewFileLengthRule creates a new file length rule.
func NewFileLengthRule() *FileLengthRule {
	return &FileLengthRule{
		BaseRule: lint.NewBaseRule(
			"SW102",
			"file-length",
			"Files should contain 400 lines or less",
			lint.KindLength,
			[]string{"text", "length"},
		),
	}
}

// Apply checks the total line count of the file.
func (r *FileLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.File == nil {
		return nil, nil
	}

	maxLines := ctx.OptionInt("max", defaultMaxFileLength)

	lineCount := ctx.File.LineCount()
	if lineCount <= maxLines {
		return nil, nil
	}

	violation := lint.Violation{
		Kind:     lint.KindLength,
		Location: lint.NewLocation(ctx.File.Path, lineCount, 0),
		Reason: fmt.Sprintf("File should contain %d lines or less: currently contains %d",
			maxLines, lineCount),
	}
	return []lint.Violation{violation}, nil
}

package lint

import (
	"context"

	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// TextOnlyAnalyzer builds the line index without tokens or a declaration
// tree. Structural and token-constrained rules see no data and stay silent,
// so purely textual linting still works when no syntax analyzer is
// available.
type TextOnlyAnalyzer struct{}

// Analyze implements Analyzer.
func (TextOnlyAnalyzer) Analyze(_ context.Context, path string, content []byte) (*syntax.File, error) {
	return syntax.NewFile(path, content), nil
}

// compile-time interface check
var _ Analyzer = TextOnlyAnalyzer{}

package lint

import (
	"context"
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/config"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// Analyzer is the boundary to the external syntax-analysis service. Given
// source content it returns a File populated with the classified token list
// and the root declaration node. The engine never parses source itself.
type Analyzer interface {
	Analyze(ctx context.Context, path string, content []byte) (*syntax.File, error)
}

// FileResult contains the results of linting a single file.
type FileResult struct {
	// File is the analyzed source file.
	File *syntax.File

	// Violations contains all findings, structural rules first, then textual,
	// in rule invocation order.
	Violations []Violation

	// RuleErrors contains any internal errors from rule execution, by rule ID.
	// A failed rule never aborts the rest of the run.
	RuleErrors map[string]error
}

// HasViolations returns true if any violations were found.
func (fr *FileResult) HasViolations() bool {
	return len(fr.Violations) > 0
}

// Engine coordinates syntax analysis and rule execution for linting.
type Engine struct {
	// Analyzer supplies the token list and declaration tree per file.
	Analyzer Analyzer

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given analyzer and registry.
func NewEngine(analyzer Analyzer, registry *Registry) *Engine {
	return &Engine{
		Analyzer: analyzer,
		Registry: registry,
	}
}

// LintFile analyzes and lints a single file.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	file, err := e.Analyzer.Analyze(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("syntax analysis: %w", err)
	}

	return e.LintSource(ctx, file, cfg)
}

// LintSource lints an already-analyzed file. The file and its tree are
// borrowed read-only for the duration of the call; linting the same file
// twice yields the identical violation sequence.
func (e *Engine) LintSource(
	ctx context.Context,
	file *syntax.File,
	cfg *config.Config,
) (*FileResult, error) {
	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		File:       file,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, file, cfg, rr.Config)

		violations, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range violations {
			violations[i].Severity = rr.Severity
			if violations[i].RuleID == "" {
				violations[i].RuleID = rr.Rule.ID()
			}
			if violations[i].Location.File == "" && file != nil {
				violations[i].Location.File = file.Path
			}
		}

		result.Violations = append(result.Violations, violations...)
	}

	return result, nil
}

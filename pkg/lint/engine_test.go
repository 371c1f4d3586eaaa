package lint_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/delonchen2011/SwiftLint/pkg/config"
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/lint/rules"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// mockAnalyzer implements lint.Analyzer for testing.
type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, path string, content []byte) (*syntax.File, error)
}

func (a *mockAnalyzer) Analyze(ctx context.Context, path string, content []byte) (*syntax.File, error) {
	if a.analyzeFunc != nil {
		return a.analyzeFunc(ctx, path, content)
	}
	return syntax.NewFile(path, content), nil
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	analyzer := &mockAnalyzer{}
	registry := lint.NewRegistry()

	engine := lint.NewEngine(analyzer, registry)

	if engine.Analyzer != lint.Analyzer(analyzer) {
		t.Error("Analyzer mismatch")
	}
	if engine.Registry != registry {
		t.Error("Registry mismatch")
	}
}

func TestEngine_LintFile_AnalyzerError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("sourcekit unavailable")
	analyzer := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, _ string, _ []byte) (*syntax.File, error) {
			return nil, wantErr
		},
	}
	engine := lint.NewEngine(analyzer, lint.NewRegistry())

	_, err := engine.LintFile(context.Background(), "t.swift", []byte("x"), config.NewConfig())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected analyzer error to propagate, got %v", err)
	}
}

func TestEngine_RuleErrorDoesNotAbort(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()

	failing := newStubRule("SW001", "failing")
	failing.err = errors.New("internal failure")
	registry.Register(failing)

	ok := newStubRule("SW101", "working")
	ok.violations = []lint.Violation{{Kind: lint.KindLength, Reason: "found"}}
	registry.Register(ok)

	engine := lint.NewEngine(&mockAnalyzer{}, registry)
	result, err := engine.LintFile(context.Background(), "t.swift", []byte("x"), config.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Violations) != 1 {
		t.Fatalf("got %d violations, want 1 from the working rule", len(result.Violations))
	}
	if result.RuleErrors["SW001"] == nil {
		t.Error("failing rule's error must be recorded")
	}
}

func TestEngine_StampsSeverityRuleIDAndPath(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rule := newStubRule("SW901", "stamper")
	rule.violations = []lint.Violation{{Kind: lint.KindLength, Reason: "r"}}
	registry.Register(rule)

	severity := "very_high"
	cfg := config.NewConfig()
	cfg.Rules["SW901"] = config.RuleConfig{Severity: &severity}

	engine := lint.NewEngine(&mockAnalyzer{}, registry)
	result, err := engine.LintFile(context.Background(), "t.swift", []byte("x"), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := result.Violations[0]
	if v.Severity != config.SeverityVeryHigh {
		t.Errorf("severity = %v, want very_high", v.Severity)
	}
	if v.RuleID != "SW901" {
		t.Errorf("rule ID = %q, want SW901", v.RuleID)
	}
	if v.Location.File != "t.swift" {
		t.Errorf("location file = %q, want t.swift", v.Location.File)
	}
}

func TestEngine_StructuralBeforeTextual(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)

	// A long line inside a deeply nested tree triggers both a structural
	// and a textual rule; structural findings must come first.
	content := []byte(strings.Repeat("a", 105))
	file := syntax.NewFile("t.swift", content)

	root := syntax.NewNode(syntax.DeclUnknown, "")
	outer := syntax.NewNode(syntax.DeclClass, "Outer")
	inner := syntax.NewNode(syntax.DeclClass, "Inner")
	outer.Children = append(outer.Children, inner)
	root.Children = append(root.Children, outer)
	file.Root = root

	engine := lint.NewEngine(&mockAnalyzer{
		analyzeFunc: func(_ context.Context, _ string, _ []byte) (*syntax.File, error) {
			return file, nil
		},
	}, registry)

	result, err := engine.LintFile(context.Background(), "t.swift", content, config.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var kinds []lint.Kind
	for _, v := range result.Violations {
		kinds = append(kinds, v.Kind)
	}

	// SW005 nesting fires for Inner (level 2 > 1), then the textual rules.
	if len(kinds) < 3 {
		t.Fatalf("got %d violations, want at least 3: %v", len(kinds), kinds)
	}
	if kinds[0] != lint.KindNesting {
		t.Errorf("first violation = %v, want Nesting (structural rules run first)", kinds[0])
	}
}

func TestEngine_TextualScenario(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)

	// 105 'a' characters, no trailing newline, no declaration tree:
	// exactly one line length violation and one trailing newline violation.
	content := []byte(strings.Repeat("a", 105))
	engine := lint.NewEngine(&mockAnalyzer{}, registry)

	result, err := engine.LintFile(context.Background(), "t.swift", content, config.NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Violations) != 2 {
		t.Fatalf("got %d violations, want 2: %v", len(result.Violations), result.Violations)
	}

	length := result.Violations[0]
	if length.Kind != lint.KindLength {
		t.Errorf("first violation kind = %v, want Length", length.Kind)
	}
	if length.Location.Line != 1 {
		t.Errorf("length violation line = %d, want 1", length.Location.Line)
	}
	if !strings.Contains(length.Reason, "currently 105") {
		t.Errorf("length reason = %q", length.Reason)
	}

	newline := result.Violations[1]
	if newline.Kind != lint.KindTrailingNewline {
		t.Errorf("second violation kind = %v, want Trailing Newline", newline.Kind)
	}
	if !strings.Contains(newline.Reason, "currently has 0") {
		t.Errorf("newline reason = %q", newline.Reason)
	}
}

func TestEngine_LintSource_Idempotent(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)

	content := []byte("let  x = 1   \nlet y = 2")
	file := syntax.NewFile("t.swift", content)
	engine := lint.NewEngine(&mockAnalyzer{}, registry)
	cfg := config.NewConfig()

	first, err := engine.LintSource(context.Background(), file, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.LintSource(context.Background(), file, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first.Violations) != len(second.Violations) {
		t.Fatalf("runs differ: %d vs %d violations",
			len(first.Violations), len(second.Violations))
	}
	for i := range first.Violations {
		if !first.Violations[i].Equal(second.Violations[i]) {
			t.Errorf("violation %d differs between runs", i)
		}
	}
}

func TestEngine_CancelledContext(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newStubRule("SW901", "one"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := lint.NewEngine(&mockAnalyzer{}, registry)
	file := syntax.NewFile("t.swift", []byte("x"))

	_, err := engine.LintSource(ctx, file, config.NewConfig())
	if err == nil {
		t.Error("expected cancellation error")
	}
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/lint/rules"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// chain nests the given nodes under a fresh root, each node one level deeper.
func chain(nodes ...*syntax.Node) *syntax.Node {
	root := syntax.NewNode(syntax.DeclUnknown, "")
	parent := root
	for _, n := range nodes {
		parent.Children = append(parent.Children, n)
		parent = n
	}
	return root
}

func TestNestingRule_TypeDepth(t *testing.T) {
	t.Parallel()

	rule := rules.NewNestingRule()

	// A type directly at the top level and one nested one level deep are fine.
	ok := chain(
		syntax.NewNode(syntax.DeclClass, "Outer"),
		syntax.NewNode(syntax.DeclStruct, "Inner"),
	)
	violations, err := rule.Apply(newRuleContext("class Outer { struct Inner {} }\n", ok))
	require.NoError(t, err)
	assert.Empty(t, violations)

	// A type two levels deep violates.
	deep := chain(
		syntax.NewNode(syntax.DeclClass, "Outer"),
		syntax.NewNode(syntax.DeclStruct, "Middle"),
		syntax.NewNode(syntax.DeclEnum, "Inner"),
	)
	violations, err = rule.Apply(newRuleContext("class Outer { struct Middle { enum Inner {} } }\n", deep))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, lint.KindNesting, violations[0].Kind)
	assert.Equal(t, "Types should be nested at most 1 level deep", violations[0].Reason)
}

func TestNestingRule_StatementDepth(t *testing.T) {
	t.Parallel()

	rule := rules.NewNestingRule()

	// Six non-type nodes: the sixth sits at level 6 and violates.
	nodes := make([]*syntax.Node, 6)
	for i := range nodes {
		nodes[i] = syntax.NewNode(syntax.DeclVarLocal, "value")
	}
	violations, err := rule.Apply(newRuleContext("func f() {}\n", chain(nodes...)))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "Statements should be nested at most 5 levels deep", violations[0].Reason)
}

func TestNestingRule_TypeCheckTakesPrecedence(t *testing.T) {
	t.Parallel()

	// A type node past both limits reports only the type reason.
	nodes := make([]*syntax.Node, 6)
	for i := 0; i < 5; i++ {
		nodes[i] = syntax.NewNode(syntax.DeclVarLocal, "value")
	}
	nodes[5] = syntax.NewNode(syntax.DeclClass, "Deep")

	rule := rules.NewNestingRule()
	violations, err := rule.Apply(newRuleContext("class Deep {}\n", chain(nodes...)))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "Types should be nested")
}

func TestNestingRule_ConfigurableDepths(t *testing.T) {
	t.Parallel()

	deep := chain(
		syntax.NewNode(syntax.DeclClass, "Outer"),
		syntax.NewNode(syntax.DeclStruct, "Middle"),
		syntax.NewNode(syntax.DeclEnum, "Inner"),
	)

	rule := rules.NewNestingRule()
	ctx := newRuleContextWithOptions("class Outer {}\n", deep,
		map[string]any{"type_level": 2})

	violations, err := rule.Apply(ctx)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestNestingRule_MissingTree(t *testing.T) {
	t.Parallel()

	rule := rules.NewNestingRule()
	violations, err := rule.Apply(newRuleContext("class Outer {}\n", nil))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/lint/rules"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// annotationTokens classifies an identifier and the type that follows it.
func annotationTokens(identOffset, identLen, typeOffset, typeLen int) []syntax.Token {
	return []syntax.Token{
		{Offset: identOffset, Length: identLen, Kind: syntax.TokenIdentifier},
		{Offset: typeOffset, Length: typeLen, Kind: syntax.TokenTypeIdentifier},
	}
}

func TestColonRule(t *testing.T) {
	t.Parallel()

	rule := rules.NewColonRule()

	t.Run("correct spacing", func(t *testing.T) {
		content := "let abc: Void\n"
		ctx := newTokenContext(content, annotationTokens(4, 3, 9, 4))

		violations, err := rule.Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("space before colon", func(t *testing.T) {
		content := "let abc : Void\n"
		ctx := newTokenContext(content, annotationTokens(4, 3, 10, 4))

		violations, err := rule.Apply(ctx)
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, lint.KindColon, violations[0].Kind)
		assert.Equal(t,
			"When specifying a type, always associate the colon with the identifier",
			violations[0].Reason)
	})

	t.Run("no space after colon", func(t *testing.T) {
		content := "let abc:Void\n"
		ctx := newTokenContext(content, annotationTokens(4, 3, 8, 4))

		violations, err := rule.Apply(ctx)
		require.NoError(t, err)
		require.Len(t, violations, 1)
	})

	t.Run("extra space after colon", func(t *testing.T) {
		content := "let abc:  Void\n"
		ctx := newTokenContext(content, annotationTokens(4, 3, 10, 4))

		violations, err := rule.Apply(ctx)
		require.NoError(t, err)
		require.Len(t, violations, 1)
	})

	t.Run("sub-pattern results concatenated", func(t *testing.T) {
		// One colon wrong before, one wrong after, on separate lines. The
		// before-colon matches come first regardless of source order.
		content := "let abc:Void\nlet def : Void\n"
		tokens := []syntax.Token{
			{Offset: 4, Length: 3, Kind: syntax.TokenIdentifier},
			{Offset: 8, Length: 4, Kind: syntax.TokenTypeIdentifier},
			{Offset: 17, Length: 3, Kind: syntax.TokenIdentifier},
			{Offset: 23, Length: 4, Kind: syntax.TokenTypeIdentifier},
		}

		violations, err := rule.Apply(newTokenContext(content, tokens))
		require.NoError(t, err)
		require.Len(t, violations, 2)
		assert.Equal(t, 2, violations[0].Location.Line)
		assert.Equal(t, 1, violations[1].Location.Line)
	})

	t.Run("dictionary literal colon ignored", func(t *testing.T) {
		// Both sides of the colon are plain identifiers, not a type annotation.
		content := "let pair = [key : value]\n"
		tokens := []syntax.Token{
			{Offset: 12, Length: 3, Kind: syntax.TokenIdentifier},
			{Offset: 18, Length: 5, Kind: syntax.TokenIdentifier},
		}

		violations, err := rule.Apply(newTokenContext(content, tokens))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})
}

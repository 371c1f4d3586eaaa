package rules_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delonchen2011/SwiftLint/pkg/config"
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	"github.com/delonchen2011/SwiftLint/pkg/lint/rules"
	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// newTokenContext builds a context for a file with a classified token list.
func newTokenContext(content string, tokens []syntax.Token) *lint.RuleContext {
	file := syntax.NewFile("test.swift", []byte(content))
	file.Tokens = tokens
	return lint.NewRuleContext(context.Background(), file, config.NewConfig(), nil)
}

// tokenAt marks every occurrence of text in content with the given kind.
func tokenAt(content, text string, kind syntax.TokenKind) []syntax.Token {
	var tokens []syntax.Token
	from := 0
	for {
		i := strings.Index(content[from:], text)
		if i < 0 {
			return tokens
		}
		tokens = append(tokens, syntax.Token{
			Offset: from + i,
			Length: len(text),
			Kind:   kind,
		})
		from += i + len(text)
	}
}

func TestForceCastRule(t *testing.T) {
	t.Parallel()

	rule := rules.NewForceCastRule()

	t.Run("keyword occurrence fires", func(t *testing.T) {
		content := "let n = thing as! Int\n"
		ctx := newTokenContext(content, tokenAt(content, "as!", syntax.TokenKeyword))

		violations, err := rule.Apply(ctx)
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, lint.KindForceCast, violations[0].Kind)
		assert.Equal(t, "Force casts should be avoided", violations[0].Reason)
		assert.Equal(t, 1, violations[0].Location.Line)
		assert.Equal(t, 15, violations[0].Location.Character)
	})

	t.Run("comment occurrence ignored", func(t *testing.T) {
		content := "// never use as! here\n"
		ctx := newTokenContext(content, []syntax.Token{
			{Offset: 0, Length: len(content) - 1, Kind: syntax.TokenComment},
		})

		violations, err := rule.Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("mixed occurrences", func(t *testing.T) {
		content := "let n = x as! Int // still as! though\n"
		tokens := []syntax.Token{
			{Offset: 10, Length: 3, Kind: syntax.TokenKeyword},
			{Offset: 18, Length: 19, Kind: syntax.TokenComment},
		}

		violations, err := rule.Apply(newTokenContext(content, tokens))
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, 11, violations[0].Location.Character)
	})

	t.Run("no token data", func(t *testing.T) {
		// Without tokens nothing can be classified as a keyword.
		violations, err := rule.Apply(newTokenContext("x as! Int\n", nil))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})
}

func TestTODORule(t *testing.T) {
	t.Parallel()

	rule := rules.NewTODORule()

	t.Run("todo and fixme markers", func(t *testing.T) {
		content := "// TODO: later\nlet x = 1\n// FIXME: now\n"
		tokens := []syntax.Token{
			{Offset: 0, Length: 14, Kind: syntax.TokenComment},
			{Offset: 25, Length: 13, Kind: syntax.TokenComment},
		}

		violations, err := rule.Apply(newTokenContext(content, tokens))
		require.NoError(t, err)
		require.Len(t, violations, 2)
		assert.Equal(t, lint.KindTODO, violations[0].Kind)
		assert.Equal(t, "TODOs and FIXMEs should be avoided", violations[0].Reason)
		assert.Equal(t, 1, violations[0].Location.Line)
		assert.Equal(t, 3, violations[1].Location.Line)
	})

	t.Run("marker in string ignored", func(t *testing.T) {
		content := "let s = \"// TODO: fake\"\n"
		tokens := []syntax.Token{
			{Offset: 8, Length: 15, Kind: syntax.TokenString},
		}

		violations, err := rule.Apply(newTokenContext(content, tokens))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("plain comment ignored", func(t *testing.T) {
		content := "// just a note\n"
		tokens := []syntax.Token{
			{Offset: 0, Length: 14, Kind: syntax.TokenComment},
		}

		violations, err := rule.Apply(newTokenContext(content, tokens))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})
}

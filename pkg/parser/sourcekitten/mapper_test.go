package sourcekitten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

func TestMapStructure(t *testing.T) {
	t.Parallel()

	doc := `{
		"key.offset": 0,
		"key.substructure": [
			{
				"key.kind": "source.lang.swift.decl.class",
				"key.name": "Greeter",
				"key.offset": 18,
				"key.bodyoffset": 33,
				"key.bodylength": 120,
				"key.substructure": [
					{
						"key.kind": "source.lang.swift.decl.var.instance",
						"key.name": "greeting",
						"key.offset": 38
					},
					{
						"key.kind": "source.lang.swift.decl.function.method.instance",
						"key.name": "greet()",
						"key.offset": 70,
						"key.bodyoffset": 84,
						"key.bodylength": 60
					}
				]
			}
		]
	}`

	root, err := MapStructure([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, root)

	assert.Equal(t, syntax.DeclUnknown, root.Kind)
	assert.Equal(t, 0, root.Offset)
	assert.False(t, root.HasBody())
	require.Len(t, root.Children, 1)

	class := root.Children[0]
	assert.Equal(t, syntax.DeclClass, class.Kind)
	assert.Equal(t, "Greeter", class.Name)
	assert.Equal(t, 18, class.Offset)
	assert.Equal(t, 33, class.BodyOffset)
	assert.Equal(t, 120, class.BodyLength)
	require.Len(t, class.Children, 2)

	assert.Equal(t, syntax.DeclVarInstance, class.Children[0].Kind)
	assert.Equal(t, "greeting", class.Children[0].Name)
	assert.False(t, class.Children[0].HasBody())

	method := class.Children[1]
	assert.Equal(t, syntax.DeclFunctionMethodInstance, method.Kind)
	assert.Equal(t, "greet()", method.Name)
	assert.True(t, method.HasBody())
}

func TestMapStructure_UnknownKindStillTraversed(t *testing.T) {
	t.Parallel()

	doc := `{
		"key.kind": "source.lang.swift.expr.call",
		"key.substructure": [
			{"key.kind": "source.lang.swift.decl.struct", "key.name": "Point"}
		]
	}`

	root, err := MapStructure([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, syntax.DeclUnknown, root.Kind)
	require.Len(t, root.Children, 1)
	assert.Equal(t, syntax.DeclStruct, root.Children[0].Kind)
	assert.Equal(t, "Point", root.Children[0].Name)
}

func TestMapStructure_AbsentFields(t *testing.T) {
	t.Parallel()

	root, err := MapStructure([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, syntax.DeclUnknown, root.Kind)
	assert.Empty(t, root.Name)
	assert.False(t, root.HasOffset())
	assert.False(t, root.HasBody())
	assert.Equal(t, syntax.NoOffset, root.Offset)
	assert.Empty(t, root.Children)
}

func TestMapStructure_MalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := MapStructure([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode structure document")
}

func TestMapStructure_SkipsNonDictChildren(t *testing.T) {
	t.Parallel()

	doc := `{"key.substructure": [42, {"key.name": "kept"}]}`

	root, err := MapStructure([]byte(doc))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "kept", root.Children[0].Name)
}

func TestMapTokens(t *testing.T) {
	t.Parallel()

	doc := `[
		{"type": "source.lang.swift.syntaxtype.keyword", "offset": 0, "length": 5},
		{"type": "source.lang.swift.syntaxtype.identifier", "offset": 6, "length": 7},
		{"type": "source.lang.swift.syntaxtype.typeidentifier", "offset": 15, "length": 3},
		{"type": "source.lang.swift.syntaxtype.comment", "offset": 20, "length": 10},
		{"type": "source.lang.swift.syntaxtype.something.new", "offset": 31, "length": 2}
	]`

	tokens, err := MapTokens([]byte(doc))
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, syntax.Token{Offset: 0, Length: 5, Kind: syntax.TokenKeyword}, tokens[0])
	assert.Equal(t, syntax.Token{Offset: 6, Length: 7, Kind: syntax.TokenIdentifier}, tokens[1])
	assert.Equal(t, syntax.TokenTypeIdentifier, tokens[2].Kind)
	assert.Equal(t, syntax.TokenComment, tokens[3].Kind)

	// Unrecognized syntax types stay in the list as unknown tokens.
	assert.Equal(t, syntax.TokenUnknown, tokens[4].Kind)
}

func TestMapTokens_Malformed(t *testing.T) {
	t.Parallel()

	_, err := MapTokens([]byte(`{"not": "an array"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode syntax document")
}

func TestMapTokens_Empty(t *testing.T) {
	t.Parallel()

	tokens, err := MapTokens([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

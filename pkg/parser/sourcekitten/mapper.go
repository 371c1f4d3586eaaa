package sourcekitten

import (
	"encoding/json"
	"fmt"

	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// Structure dictionary keys as emitted by sourcekitten.
const (
	keyKind         = "key.kind"
	keyName         = "key.name"
	keyOffset       = "key.offset"
	keyBodyOffset   = "key.bodyoffset"
	keyBodyLength   = "key.bodylength"
	keySubstructure = "key.substructure"
)

// declKinds maps SourceKit declaration UIDs to the typed kind enumeration.
// UIDs absent from this table become DeclUnknown: their nodes are still
// traversed, they just do not participate in kind-based checks.
var declKinds = map[string]syntax.DeclKind{
	"source.lang.swift.decl.class":                        syntax.DeclClass,
	"source.lang.swift.decl.struct":                       syntax.DeclStruct,
	"source.lang.swift.decl.enum":                         syntax.DeclEnum,
	"source.lang.swift.decl.enumelement":                  syntax.DeclEnumElement,
	"source.lang.swift.decl.typealias":                    syntax.DeclTypealias,
	"source.lang.swift.decl.extension":                    syntax.DeclExtension,
	"source.lang.swift.decl.protocol":                     syntax.DeclProtocol,
	"source.lang.swift.decl.var.class":                    syntax.DeclVarClass,
	"source.lang.swift.decl.var.global":                   syntax.DeclVarGlobal,
	"source.lang.swift.decl.var.instance":                 syntax.DeclVarInstance,
	"source.lang.swift.decl.var.local":                    syntax.DeclVarLocal,
	"source.lang.swift.decl.var.parameter":                syntax.DeclVarParameter,
	"source.lang.swift.decl.var.static":                   syntax.DeclVarStatic,
	"source.lang.swift.decl.function.free":                syntax.DeclFunctionFree,
	"source.lang.swift.decl.function.method.instance":     syntax.DeclFunctionMethodInstance,
	"source.lang.swift.decl.function.method.class":        syntax.DeclFunctionMethodClass,
	"source.lang.swift.decl.function.method.static":       syntax.DeclFunctionMethodStatic,
	"source.lang.swift.decl.function.constructor":         syntax.DeclFunctionConstructor,
	"source.lang.swift.decl.function.destructor":          syntax.DeclFunctionDestructor,
	"source.lang.swift.decl.function.operator":            syntax.DeclFunctionOperator,
	"source.lang.swift.decl.function.subscript":           syntax.DeclFunctionSubscript,
	"source.lang.swift.decl.function.accessor.getter":     syntax.DeclFunctionAccessorGetter,
	"source.lang.swift.decl.function.accessor.setter":     syntax.DeclFunctionAccessorSetter,
	"source.lang.swift.decl.function.accessor.willset":    syntax.DeclFunctionAccessorWillSet,
	"source.lang.swift.decl.function.accessor.didset":     syntax.DeclFunctionAccessorDidSet,
	"source.lang.swift.decl.function.accessor.address":    syntax.DeclFunctionAccessorAddress,
	"source.lang.swift.decl.function.accessor.mutableaddress": syntax.DeclFunctionAccessorMutableAddress,
}

// tokenKinds maps SourceKit syntaxtype UIDs to the typed token enumeration.
var tokenKinds = map[string]syntax.TokenKind{
	"source.lang.swift.syntaxtype.keyword":                      syntax.TokenKeyword,
	"source.lang.swift.syntaxtype.identifier":                   syntax.TokenIdentifier,
	"source.lang.swift.syntaxtype.typeidentifier":               syntax.TokenTypeIdentifier,
	"source.lang.swift.syntaxtype.buildconfig.keyword":          syntax.TokenBuiltin,
	"source.lang.swift.syntaxtype.attribute.builtin":            syntax.TokenAttributeBuiltin,
	"source.lang.swift.syntaxtype.attribute.id":                 syntax.TokenAttributeID,
	"source.lang.swift.syntaxtype.number":                       syntax.TokenNumber,
	"source.lang.swift.syntaxtype.string":                       syntax.TokenString,
	"source.lang.swift.syntaxtype.string_interpolation_anchor":  syntax.TokenStringInterpolationAnchor,
	"source.lang.swift.syntaxtype.comment":                      syntax.TokenComment,
	"source.lang.swift.syntaxtype.comment.mark":                 syntax.TokenCommentMark,
	"source.lang.swift.syntaxtype.comment.url":                  syntax.TokenCommentURL,
	"source.lang.swift.syntaxtype.doccomment":                   syntax.TokenDocComment,
	"source.lang.swift.syntaxtype.doccomment.field":             syntax.TokenDocCommentField,
}

// MapStructure converts a sourcekitten structure document (the polymorphic
// JSON dictionary tree) into the typed declaration tree the engine consumes.
func MapStructure(data []byte) (*syntax.Node, error) {
	var dict map[string]any
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("decode structure document: %w", err)
	}
	return mapNode(dict), nil
}

// mapNode converts one structure dictionary into a Node, descending into its
// substructure. Fields the dictionary does not carry stay absent on the node.
func mapNode(dict map[string]any) *syntax.Node {
	node := syntax.NewNode(syntax.DeclUnknown, "")

	if kind, ok := dict[keyKind].(string); ok {
		node.Kind = declKinds[kind]
	}
	if name, ok := dict[keyName].(string); ok {
		node.Name = name
	}
	if offset, ok := intValue(dict[keyOffset]); ok {
		node.Offset = offset
	}
	if offset, ok := intValue(dict[keyBodyOffset]); ok {
		node.BodyOffset = offset
	}
	if length, ok := intValue(dict[keyBodyLength]); ok {
		node.BodyLength = length
	}

	if children, ok := dict[keySubstructure].([]any); ok {
		for _, child := range children {
			childDict, ok := child.(map[string]any)
			if !ok {
				continue
			}
			node.Children = append(node.Children, mapNode(childDict))
		}
	}

	return node
}

// intValue extracts an integer from a decoded JSON value. encoding/json
// decodes numbers into float64 when the target is any.
func intValue(v any) (int, bool) {
	n, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// syntaxToken is one entry of a sourcekitten syntax document.
type syntaxToken struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Type   string `json:"type"`
}

// MapTokens converts a sourcekitten syntax document into the flat classified
// token list.
func MapTokens(data []byte) ([]syntax.Token, error) {
	var raw []syntaxToken
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode syntax document: %w", err)
	}

	tokens := make([]syntax.Token, 0, len(raw))
	for _, tok := range raw {
		tokens = append(tokens, syntax.Token{
			Offset: tok.Offset,
			Length: tok.Length,
			Kind:   tokenKinds[tok.Type],
		})
	}
	return tokens, nil
}

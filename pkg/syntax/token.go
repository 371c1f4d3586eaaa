package syntax

// TokenKind is the lexical classification the syntax-analysis service
// attaches to a span of source text.
type TokenKind uint16

const (
	TokenUnknown TokenKind = iota
	TokenKeyword
	TokenIdentifier
	TokenTypeIdentifier
	TokenBuiltin
	TokenAttributeBuiltin
	TokenAttributeID
	TokenNumber
	TokenString
	TokenStringInterpolationAnchor
	TokenComment
	TokenCommentMark
	TokenCommentURL
	TokenDocComment
	TokenDocCommentField
)

// Token is one classified span from the flat, offset-ordered token list
// covering a file.
type Token struct {
	// Offset is the byte offset where the token begins.
	Offset int

	// Length is the token length in bytes.
	Length int

	// Kind classifies the token.
	Kind TokenKind
}

// TokensIn returns the file's tokens whose offsets fall within the byte
// range [start, end), in order.
func (f *File) TokensIn(start, end int) []Token {
	var tokens []Token
	for _, tok := range f.Tokens {
		if tok.Offset >= end {
			break
		}
		if tok.Offset >= start {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

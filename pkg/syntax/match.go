package syntax

import "regexp"

// Range is a byte range in the file content: [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// MatchPattern runs the regex pattern over the file content and returns only
// those match ranges whose enclosed token kinds equal the required sequence.
//
// For each regex match, the tokens whose offsets fall inside the match span
// are collected in order; the match is kept when that kind sequence has the
// same length and element-wise equality as kinds. An empty kinds sequence
// accepts every match.
//
// A malformed pattern yields no matches: one broken rule must not block the
// rest of the analysis.
func (f *File) MatchPattern(pattern string, kinds ...TokenKind) []Range {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}

	var ranges []Range
	for _, span := range re.FindAllIndex(f.Content, -1) {
		if f.tokensMatch(span[0], span[1], kinds) {
			ranges = append(ranges, Range{Start: span[0], End: span[1]})
		}
	}
	return ranges
}

// tokensMatch reports whether the kinds of the tokens inside [start, end)
// exactly equal the required sequence.
func (f *File) tokensMatch(start, end int, kinds []TokenKind) bool {
	if len(kinds) == 0 {
		return true
	}

	tokens := f.TokensIn(start, end)
	if len(tokens) != len(kinds) {
		return false
	}
	for i, tok := range tokens {
		if tok.Kind != kinds[i] {
			return false
		}
	}
	return true
}

package lint

import (
	"unicode"
	"unicode/utf8"

	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// Line-based helpers shared by the textual rules.

// LineLength returns the character count of the specified 1-based line
// (excluding the newline). Characters, not bytes: a multi-byte rune counts
// once. Returns 0 if the line number is out of range.
func LineLength(file *syntax.File, lineNum int) int {
	content := file.LineContent(lineNum)
	if content == nil {
		return 0
	}
	return utf8.RuneCount(content)
}

// TrailingWhitespaceCount returns the number of trailing whitespace
// characters on the specified 1-based line (newline excluded).
func TrailingWhitespaceCount(file *syntax.File, lineNum int) int {
	content := file.LineContent(lineNum)
	count := 0
	for len(content) > 0 {
		r, size := utf8.DecodeLastRune(content)
		if !unicode.IsSpace(r) {
			break
		}
		count++
		content = content[:len(content)-size]
	}
	return count
}

// LeadingWhitespaceCount returns the length of the file's leading run of
// whitespace and newline characters.
func LeadingWhitespaceCount(file *syntax.File) int {
	content := file.Content
	count := 0
	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		if !unicode.IsSpace(r) {
			break
		}
		count++
		content = content[size:]
	}
	return count
}

// TrailingNewlineCount returns the number of trailing newline characters in
// the whole file. A \r\n pair counts as one.
func TrailingNewlineCount(file *syntax.File) int {
	content := file.Content
	count := 0
	for len(content) > 0 && content[len(content)-1] == '\n' {
		content = content[:len(content)-1]
		if len(content) > 0 && content[len(content)-1] == '\r' {
			content = content[:len(content)-1]
		}
		count++
	}
	return count
}

// LocationAtOffset builds a Location for a byte offset via the position
// mapper. An unmappable offset degrades to a file-only location.
func LocationAtOffset(file *syntax.File, offset int) Location {
	pos, ok := file.LineAndCharacter(offset)
	if !ok {
		return NewLocation(file.Path, 0, 0)
	}
	return NewLocation(file.Path, pos.Line, pos.Character)
}

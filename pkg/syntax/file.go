// Package syntax provides the read-only view of a Swift source file that the
// lint engine consumes: raw content, line metadata, the classified token
// stream, and the declaration tree. All of it is produced by an external
// syntax-analysis service and borrowed, never mutated, during one file's
// analysis.
package syntax

import "sort"

// File is an immutable view of a Swift source file at analysis time.
type File struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the offset-ordered classified token list for the file.
	Tokens []Token

	// Root is the root declaration node, or nil if structure is unavailable.
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFile creates a File from content and builds its line index.
// Tokens and Root are supplied separately by the syntax-analysis boundary.
func NewFile(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// Position is a 1-based line and character position in a file.
type Position struct {
	Line      int
	Character int
}

// LineAndCharacter converts a byte offset to a 1-based line and character.
// Character counts bytes within the line. Returns false if the offset is
// negative or beyond the end of the content.
func (f *File) LineAndCharacter(offset int) (Position, bool) {
	if offset < 0 || offset > len(f.Content) || len(f.Lines) == 0 {
		return Position{}, false
	}

	if offset == len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return Position{Line: len(f.Lines), Character: offset - last.StartOffset + 1}, true
	}

	// Binary search for the line containing the offset.
	lineIdx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(f.Lines) {
		lineIdx = len(f.Lines) - 1
	}

	line := f.Lines[lineIdx]
	if offset < line.StartOffset {
		return Position{}, false
	}

	return Position{Line: lineIdx + 1, Character: offset - line.StartOffset + 1}, true
}

// LineContent returns the content of a 1-based line number, excluding the
// newline. Returns nil if the line number is out of range.
func (f *File) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}

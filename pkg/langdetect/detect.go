// Package langdetect decides whether a file is Swift source.
// It uses go-enry so that explicitly passed files without a .swift extension
// are still recognized by content.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langSwift = "Swift"

// SwiftExtension is the canonical Swift source file extension.
const SwiftExtension = ".swift"

// IsSwiftPath reports whether the path alone identifies a Swift file.
func IsSwiftPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SwiftExtension)
}

// IsSwift reports whether the file is Swift source, by extension first and by
// content classification as a fallback. Content may be nil when only the path
// is known.
func IsSwift(path string, content []byte) bool {
	if IsSwiftPath(path) {
		return true
	}
	if len(content) == 0 {
		return false
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == langSwift {
		return true
	}

	// enry can be unsure for short snippets; fall back to the classifier
	// with Swift among the candidates.
	lang, safe := enry.GetLanguageByClassifier(content, []string{
		langSwift, "Objective-C", "C", "C++", "Go", "Rust", "Python",
	})
	return safe && lang == langSwift
}

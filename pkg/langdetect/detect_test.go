package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSwiftPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"main.swift", true},
		{"Sources/App/AppDelegate.swift", true},
		{"MAIN.SWIFT", true},
		{"main.Swift", true},
		{"main.go", false},
		{"swift", false},
		{"main.swift.orig", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSwiftPath(tt.path), "path %q", tt.path)
	}
}

func TestIsSwift(t *testing.T) {
	t.Parallel()

	t.Run("extension wins without content", func(t *testing.T) {
		assert.True(t, IsSwift("main.swift", nil))
	})

	t.Run("no extension and no content", func(t *testing.T) {
		assert.False(t, IsSwift("script", nil))
	})

	t.Run("shebang script", func(t *testing.T) {
		content := []byte("#!/usr/bin/env swift\nimport Foundation\nprint(\"hello\")\n")
		assert.True(t, IsSwift("tool", content))
	})

	t.Run("plain text", func(t *testing.T) {
		assert.False(t, IsSwift("notes.txt", []byte("some meeting notes\n")))
	})

	t.Run("go source", func(t *testing.T) {
		content := []byte("package main\n\nimport \"fmt\"\n\nfunc main() { fmt.Println(1) }\n")
		assert.False(t, IsSwift("main.go", content))
	})
}

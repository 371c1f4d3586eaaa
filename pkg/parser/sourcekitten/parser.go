// Package sourcekitten implements the lint.Analyzer boundary by shelling out
// to the sourcekitten binary, which wraps SourceKit. Its "structure" and
// "syntax" subcommands emit JSON documents that this package maps into the
// typed tree and token list the engine consumes.
package sourcekitten

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/delonchen2011/SwiftLint/pkg/syntax"
)

// DefaultBinary is the sourcekitten executable looked up on PATH.
const DefaultBinary = "sourcekitten"

// Analyzer implements lint.Analyzer using the sourcekitten binary.
type Analyzer struct {
	binary string
}

// New creates an Analyzer invoking the default binary.
func New() *Analyzer {
	return NewWithBinary(DefaultBinary)
}

// NewWithBinary creates an Analyzer invoking the given executable.
func NewWithBinary(binary string) *Analyzer {
	return &Analyzer{binary: binary}
}

// Available reports whether the sourcekitten binary can be found.
func (a *Analyzer) Available() bool {
	_, err := exec.LookPath(a.binary)
	return err == nil
}

// Analyze runs sourcekitten over the given source and returns a File
// populated with the line index, classified tokens, and declaration tree.
func (a *Analyzer) Analyze(ctx context.Context, path string, content []byte) (*syntax.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	file := syntax.NewFile(path, content)

	structureDoc, err := a.run(ctx, "structure", content)
	if err != nil {
		return nil, fmt.Errorf("structure of %s: %w", path, err)
	}
	root, err := MapStructure(structureDoc)
	if err != nil {
		return nil, fmt.Errorf("structure of %s: %w", path, err)
	}
	file.Root = root

	syntaxDoc, err := a.run(ctx, "syntax", content)
	if err != nil {
		return nil, fmt.Errorf("syntax of %s: %w", path, err)
	}
	tokens, err := MapTokens(syntaxDoc)
	if err != nil {
		return nil, fmt.Errorf("syntax of %s: %w", path, err)
	}
	file.Tokens = tokens

	return file, nil
}

// run invokes one sourcekitten subcommand, feeding the source text on stdin.
func (a *Analyzer) run(ctx context.Context, subcommand string, content []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, a.binary, subcommand, "--text", "-")
	cmd.Stdin = bytes.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s %s: %w: %s", a.binary, subcommand, err, stderr.String())
		}
		return nil, fmt.Errorf("%s %s: %w", a.binary, subcommand, err)
	}

	return stdout.Bytes(), nil
}

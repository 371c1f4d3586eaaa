package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column width of the terminal behind w, or
// fallback when w is not a terminal.
func TerminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

// Truncate shortens s to at most width runes, appending an ellipsis when
// anything was cut. Widths below 4 return the string unchanged.
func Truncate(s string, width int) string {
	if width < 4 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

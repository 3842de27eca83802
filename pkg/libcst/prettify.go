package libcst

import (
	"fmt"
	"strings"

	"github.com/zsol/libcst/internal/grammar"
)

// BolOffset returns the byte offset of the start of line n (1-indexed) in
// text (spec.md §6). n <= 1 returns 0; n past the last line returns
// len(text).
func BolOffset(text string, n int) int {
	if n <= 1 {
		return 0
	}
	line := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			line++
			if line == n {
				return i + 1
			}
		}
	}
	return len(text)
}

// PrettifyError renders a grammar.Error as a multi-line, human-readable
// report: one line of source context above and below the failure, the
// offending span underlined with a caret, and the expected-token
// description (spec.md §6's error-prettify interface).
func PrettifyError(err *grammar.Error, text string) string {
	loc := err.Location
	lines := strings.Split(text, "\n")
	lineIdx := loc.Line - 1

	var b strings.Builder
	fmt.Fprintf(&b, "parse error at line %d, column %d: expected %s\n", loc.Line, loc.Column, err.Expected)
	if lineIdx-1 >= 0 && lineIdx-1 < len(lines) {
		fmt.Fprintf(&b, "%5d | %s\n", loc.Line-1, lines[lineIdx-1])
	}
	if lineIdx >= 0 && lineIdx < len(lines) {
		fmt.Fprintf(&b, "%5d | %s\n", loc.Line, lines[lineIdx])
		b.WriteString("      | ")
		for i := 0; i < loc.Column; i++ {
			b.WriteByte(' ')
		}
		b.WriteString("^\n")
	}
	if lineIdx+1 >= 0 && lineIdx+1 < len(lines) {
		fmt.Fprintf(&b, "%5d | %s\n", loc.Line+1, lines[lineIdx+1])
	}
	return b.String()
}

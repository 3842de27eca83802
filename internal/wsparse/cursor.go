// Package wsparse implements the pure, tree-independent text-scanning
// primitives the whitespace inflater is built on (spec.md §4.3):
// parse_simple_whitespace, parse_trailing_whitespace, and parse_empty_lines.
// Keeping these as plain (text, byte offset) -> value functions, with no
// dependency on the tree package, mirrors how the teacher keeps its
// low-level rune matchers (internal/tokenizer/rune_matchers.go-equivalent
// StringMatcherFunc/CharMatcherFunc helpers) independent of any particular
// AST shape.
package wsparse

import (
	"errors"
	"strings"
)

// ErrMissingNewline is returned by TrailingWhitespace when the mandatory
// newline is absent and the cursor is not at EOF (spec.md §4.3's
// TrailingWhitespaceError).
var ErrMissingNewline = errors.New("missing mandatory trailing whitespace")

// Cursor is an exclusive-reference, rollback-on-failure scan position over
// a fixed text buffer (spec.md §9: "take the scan state by exclusive
// reference and only commit on success" — the pattern this implementation
// picked uniformly, grounded on the teacher's `savedPos := p.pos; defer
// func(){ p.pos = savedPos }()` idiom in internal/fastparser/parser.go).
type Cursor struct {
	Text string
	Pos  int
}

// NewCursor creates a cursor positioned at byte offset pos in text.
func NewCursor(text string, pos int) *Cursor {
	return &Cursor{Text: text, Pos: pos}
}

func (c *Cursor) AtEOF() bool { return c.Pos >= len(c.Text) }

func (c *Cursor) peek() byte {
	if c.AtEOF() {
		return 0
	}
	return c.Text[c.Pos]
}

func matchNewline(s string) int {
	if strings.HasPrefix(s, "\r\n") {
		return 2
	}
	if len(s) > 0 && (s[0] == '\n' || s[0] == '\r') {
		return 1
	}
	return 0
}

func isNewlineByte(b byte) bool { return b == '\n' || b == '\r' }

// SimpleWhitespace consumes `[ \t\f]` and backslash-newline continuations;
// it never consumes a bare newline (spec.md §4.3).
func (c *Cursor) SimpleWhitespace() string {
	start := c.Pos
	for !c.AtEOF() {
		b := c.Text[c.Pos]
		if b == ' ' || b == '\t' || b == '\f' {
			c.Pos++
			continue
		}
		if b == '\\' {
			if n := matchNewline(c.Text[c.Pos+1:]); n > 0 {
				c.Pos += 1 + n
				continue
			}
		}
		break
	}
	return c.Text[start:c.Pos]
}

// Comment consumes a `# ...` run up to (not including) the next newline or
// EOF, if one is present at the cursor.
func (c *Cursor) Comment() (value string, ok bool) {
	if c.peek() != '#' {
		return "", false
	}
	start := c.Pos
	for !c.AtEOF() && !isNewlineByte(c.Text[c.Pos]) {
		c.Pos++
	}
	return c.Text[start:c.Pos], true
}

// Newline consumes one logical-line terminator. At EOF, this is the
// fake-newline case (spec.md I5): it synthesizes a zero-byte match rather
// than failing.
func (c *Cursor) Newline() (value string, isFake bool, ok bool) {
	if c.AtEOF() {
		return "", true, true
	}
	n := matchNewline(c.Text[c.Pos:])
	if n == 0 {
		return "", false, false
	}
	value = c.Text[c.Pos : c.Pos+n]
	c.Pos += n
	return value, false, true
}

// TrailingWhitespace is the mandatory `simple_whitespace? comment? newline`
// triple terminating a logical line (spec.md §4.3).
func (c *Cursor) TrailingWhitespace() (ws, comment string, hasComment bool, newline string, fake bool, err error) {
	ws = c.SimpleWhitespace()
	comment, hasComment = c.Comment()
	newline, fake, ok := c.Newline()
	if !ok {
		return ws, comment, hasComment, "", false, ErrMissingNewline
	}
	return ws, comment, hasComment, newline, fake, nil
}

// EmptyLine is one `indent? simple_whitespace comment? newline` physical
// line, in the plain-data shape the tree package's Inflate step converts
// into a tree.EmptyLine.
type EmptyLine struct {
	Indentation string
	HasComment  bool
	Comment     string
	Newline     string
	Fake        bool
}

// oneEmptyLine speculatively tries to match a single empty line at the
// cursor, restoring it on failure.
func (c *Cursor) oneEmptyLine() (EmptyLine, bool) {
	if c.AtEOF() {
		return EmptyLine{}, false
	}
	save := c.Pos
	indentStart := c.Pos
	for !c.AtEOF() {
		b := c.Text[c.Pos]
		if b != ' ' && b != '\t' {
			break
		}
		c.Pos++
	}
	indentation := c.Text[indentStart:c.Pos]
	if !c.AtEOF() {
		b := c.Text[c.Pos]
		if b != '#' && !isNewlineByte(b) {
			c.Pos = save
			return EmptyLine{}, false
		}
	}
	comment, hasComment := c.Comment()
	newline, fake, _ := c.Newline()
	return EmptyLine{Indentation: indentation, HasComment: hasComment, Comment: comment, Newline: newline, Fake: fake}, true
}

// EmptyLines implements spec.md §4.3's empty-line attribution algorithm.
// With overrideIndent == nil, every consecutive empty line is consumed
// unconditionally (the caller owns them all, e.g. a statement's
// leading_lines). With overrideIndent set, lines are speculatively parsed
// in full, then partitioned at the last line whose own indentation strictly
// exceeds the override — only that prefix is committed to the cursor.
func (c *Cursor) EmptyLines(overrideIndent *string) []EmptyLine {
	clone := &Cursor{Text: c.Text, Pos: c.Pos}
	var lines []EmptyLine
	for {
		el, ok := clone.oneEmptyLine()
		if !ok {
			break
		}
		lines = append(lines, el)
	}
	if overrideIndent == nil {
		c.Pos = clone.Pos
		return lines
	}
	cut := -1
	for i, el := range lines {
		if len(el.Indentation) > len(*overrideIndent) {
			cut = i
		}
	}
	if cut < 0 {
		return nil
	}
	for i := 0; i <= cut; i++ {
		c.oneEmptyLine()
	}
	return lines[:cut+1]
}

// Parenthesized is the plain-data result of parse_parenthesized_whitespace:
// a first line's trailing whitespace, zero or more empty lines, an optional
// indent, and a final simple-whitespace run (spec.md §4.3).
type Parenthesized struct {
	FirstWS         string
	FirstComment    string
	FirstHasComment bool
	FirstNewline    string
	FirstFake       bool
	EmptyLines      []EmptyLine
	Indent          bool
	LastLine        string
}

// Parenthesized parses whitespace recognized only while inside an unclosed
// `(`, `[`, or `{` (spec.md §4.3). absoluteIndent is the enclosing block's
// indent string; when the final line's leading bytes match it exactly, that
// prefix is represented structurally (Indent = true) rather than literally,
// so the code generator re-derives it from the live indent stack.
func (c *Cursor) Parenthesized(absoluteIndent string) (Parenthesized, error) {
	ws, comment, hasComment, nl, fake, err := c.TrailingWhitespace()
	if err != nil {
		return Parenthesized{}, err
	}
	empties := c.EmptyLines(nil)
	indentFlag := false
	if absoluteIndent != "" && strings.HasPrefix(c.Text[c.Pos:], absoluteIndent) {
		c.Pos += len(absoluteIndent)
		indentFlag = true
	}
	last := c.SimpleWhitespace()
	return Parenthesized{
		FirstWS: ws, FirstComment: comment, FirstHasComment: hasComment, FirstNewline: nl, FirstFake: fake,
		EmptyLines: empties, Indent: indentFlag, LastLine: last,
	}, nil
}

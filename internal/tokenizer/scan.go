package tokenizer

import (
	"strings"

	"github.com/zsol/libcst/internal/scanner"
	"github.com/zsol/libcst/internal/tree"
)

// DetectDefaultNewline returns the first physical line break found in text,
// or "\n" if the text contains none (spec.md §6).
func DetectDefaultNewline(text string) string {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return "\r\n"
			}
			return "\r"
		case '\n':
			return "\n"
		}
	}
	return "\n"
}

// indentTokenizer threads the column-tracked indent/dedent synthesis
// (spec.md §4.1) through a plain lexical scan, the way the teacher's
// IndentationTokenizer wraps a base tokenizer rather than folding indent
// logic into the scanner itself (internal/tokenizer/indentation.go).
type indentTokenizer struct {
	src         *scanner.Stream
	out         []Token
	indentStack []string // indentStack[0] == "" always
	parenDepth  int
	atLineStart bool
	blankLine   bool // true while the current physical line has produced no real tokens yet
}

// Tokenize runs the full token-stream producer contract (spec.md §4.1):
// given source text, produce a token slice ending in EndMarker, or a
// tokenizer Error.
func Tokenize(text string) ([]Token, *Error) {
	t := &indentTokenizer{
		src:         scanner.NewStream(text),
		indentStack: []string{""},
		atLineStart: true,
		blankLine:   true,
	}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.out, nil
}

func (t *indentTokenizer) rawWS() *tree.WhitespaceField {
	pos := t.src.Pos()
	return tree.NewRawWhitespaceField(tree.RawWhitespaceState{
		Line:            pos.Line,
		Column:          pos.Column,
		ColumnByte:      pos.Offset - (strings.LastIndexByte(t.src.Source()[:pos.Offset], '\n') + 1),
		AbsoluteIndent:  t.currentIndent(),
		IsParenthesized: t.parenDepth > 0,
		ByteOffset:      pos.Offset,
	})
}

func (t *indentTokenizer) currentIndent() string {
	return t.indentStack[len(t.indentStack)-1]
}

func (t *indentTokenizer) pos() tree.Position {
	p := t.src.Pos()
	return tree.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func (t *indentTokenizer) run() *Error {
	var wsBefore *tree.WhitespaceField
	for {
		if wsBefore == nil {
			wsBefore = t.rawWS()
		}
		emitted := len(t.out)

		if t.atLineStart && t.parenDepth == 0 {
			if done, err := t.handleLineStart(); err != nil {
				return err
			} else if done {
				continue
			}
		}

		t.skipSimpleWhitespace()

		if t.src.AtEOF() {
			return t.finish(wsBefore)
		}

		b, _ := t.src.PeekByte()
		prefixLen := t.stringPrefixLen()
		switch {
		case b == '\r' || b == '\n':
			t.consumeNewline(wsBefore)
		case b == '#':
			// Comments are left for the inflater (they live inside the raw
			// whitespace slice of the *next* real token); skip to EOL here.
			t.skipToEOL()
		case b == '\\' && t.peekAt(1) == '\n':
			t.src.SkipBytes(2)
		case isQuote(b):
			if err := t.scanString(wsBefore, 0); err != nil {
				return err
			}
		case prefixLen > 0:
			if err := t.scanString(wsBefore, prefixLen); err != nil {
				return err
			}
		case scanner.IsASCIIDigit(b):
			if err := t.scanNumber(wsBefore); err != nil {
				return err
			}
		case scanner.IsIdentStart(rune(b)) || b >= 0x80:
			if r, _, _ := t.src.PeekRune(); !scanner.IsIdentStart(r) {
				return newError(InvalidCharacter, t.pos(), string(r))
			}
			t.scanNameOrKeyword(wsBefore)
		default:
			if !t.scanOperator(wsBefore) {
				return newError(InvalidCharacter, t.pos(), string(rune(b)))
			}
		}
		if len(t.out) > emitted {
			wsBefore = nil
		}
	}
}

func (t *indentTokenizer) skipSimpleWhitespace() {
	for {
		b, ok := t.src.PeekByte()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\f' {
			t.src.NextByte()
			continue
		}
		if b == '\\' && t.peekAt(1) == '\n' {
			t.src.SkipBytes(2)
			continue
		}
		return
	}
}

func (t *indentTokenizer) skipToEOL() {
	for {
		b, ok := t.src.PeekByte()
		if !ok || b == '\n' || b == '\r' {
			return
		}
		t.src.NextByte()
	}
}

func isQuote(b byte) bool { return b == '\'' || b == '"' }

// peekAt returns the byte n bytes ahead of the cursor, or 0 past EOF — the
// same zero-sentinel convention peekOrZero uses for the current byte.
func (t *indentTokenizer) peekAt(n int) byte {
	b, ok := t.src.PeekByteAt(n)
	if !ok {
		return 0
	}
	return b
}

func isStringPrefixLetter(b byte) bool {
	switch b {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	}
	return false
}

// isValidPrefixPair reports whether two prefix letters form one of Python's
// legal two-letter string prefixes: r/R combined with b/B or f/F, in either
// order. u/U never combines with anything.
func isValidPrefixPair(a, b byte) bool {
	lower := func(c byte) byte {
		if c >= 'A' && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	}
	la, lb := lower(a), lower(b)
	return (la == 'r' && (lb == 'b' || lb == 'f')) || (lb == 'r' && (la == 'b' || la == 'f'))
}

// stringPrefixLen reports the length (0, 1, or 2) of a Python string-literal
// prefix (r"…", b"…", f"…", u"…", rb"…", etc.) starting at the cursor,
// without consuming anything. It returns 0 unless a quote genuinely follows
// the candidate prefix, so a plain identifier like `rb2` is never mistaken
// for the start of a byte-raw string.
func (t *indentTokenizer) stringPrefixLen() int {
	b0 := t.peekAt(0)
	if !isStringPrefixLetter(b0) {
		return 0
	}
	b1 := t.peekAt(1)
	if isStringPrefixLetter(b1) && isValidPrefixPair(b0, b1) && isQuote(t.peekAt(2)) {
		return 2
	}
	if isQuote(b1) {
		return 1
	}
	return 0
}

// handleLineStart measures the new line's indentation and emits Indent /
// Dedent tokens before any real token on the line, the way the teacher's
// IndentationTokenizer measures indent "from the first non-whitespace
// token" rather than from raw column count of whitespace alone.
func (t *indentTokenizer) handleLineStart() (handledBlank bool, err *Error) {
	start := t.src.Mark()
	indent := t.scanIndentString()

	b, ok := t.src.PeekByte()
	if !ok {
		t.atLineStart = false
		return false, nil
	}
	if b == '\n' || b == '\r' || b == '#' {
		// Blank or comment-only line: contributes no Indent/Dedent, its
		// bytes stay raw whitespace for the inflater to classify as an
		// EmptyLine.
		t.src.Reset(start)
		t.atLineStart = false
		return false, nil
	}

	t.atLineStart = false
	current := t.currentIndent()
	switch {
	case strings.HasPrefix(indent, current) && len(indent) > len(current):
		delta := indent[len(current):]
		t.indentStack = append(t.indentStack, indent)
		t.out = append(t.out, Token{
			Kind:           Indent,
			RelativeIndent: delta,
			StartPos:       t.pos(),
			EndPos:         t.pos(),
		})
	case indent == current:
		// no change
	default:
		if err := t.emitDedentsTo(indent); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (t *indentTokenizer) scanIndentString() string {
	start := t.src.Mark()
	sawTab, sawSpace := false, false
	for {
		b, ok := t.src.PeekByte()
		if !ok || (b != ' ' && b != '\t') {
			break
		}
		if b == '\t' {
			sawTab = true
		} else {
			sawSpace = true
		}
		t.src.NextByte()
	}
	_ = sawTab && sawSpace // mixed tabs/spaces within one run is ambiguous but tolerated verbatim (I1 requires byte-exact echo regardless)
	return t.src.SliceFrom(start)
}

func (t *indentTokenizer) emitDedentsTo(indent string) *Error {
	for len(t.indentStack) > 1 && len(t.indentStack[len(t.indentStack)-1]) > len(indent) {
		t.indentStack = t.indentStack[:len(t.indentStack)-1]
		t.out = append(t.out, Token{Kind: Dedent, StartPos: t.pos(), EndPos: t.pos()})
	}
	if t.currentIndent() != indent {
		return newError(MixedTabsAndSpaces, t.pos(), "unindent does not match any outer indentation level")
	}
	return nil
}

func (t *indentTokenizer) consumeNewline(wsBefore *tree.WhitespaceField) {
	startPos := t.pos()
	if b, _ := t.src.PeekByte(); b == '\r' {
		t.src.NextByte()
		if b2, ok := t.src.PeekByte(); ok && b2 == '\n' {
			t.src.NextByte()
		}
	} else {
		t.src.NextByte()
	}
	if t.parenDepth > 0 {
		// Inside parentheses a line break never ends a logical line
		// (spec.md §4.3's parenthesized-whitespace carve-out); no Newline
		// token is emitted and atLineStart stays false.
		return
	}
	t.out = append(t.out, Token{
		Kind:             Newline,
		WhitespaceBefore: wsBefore,
		StartPos:         startPos,
		EndPos:           t.pos(),
	})
	t.atLineStart = true
}

func (t *indentTokenizer) finish(wsBefore *tree.WhitespaceField) *Error {
	if t.parenDepth > 0 {
		return newError(UnclosedParenthesis, t.pos(), "")
	}
	if len(t.out) == 0 || t.out[len(t.out)-1].Kind != Newline {
		// Fake-newline rule (I5): synthesize a zero-byte Newline so every
		// logical line — including the last — ends the same way.
		t.out = append(t.out, Token{Kind: Newline, WhitespaceBefore: wsBefore, StartPos: t.pos(), EndPos: t.pos()})
	}
	if err := t.emitDedentsTo(""); err != nil {
		return err
	}
	t.out = append(t.out, Token{Kind: EndMarker, WhitespaceBefore: wsBefore, StartPos: t.pos(), EndPos: t.pos()})
	return nil
}

func (t *indentTokenizer) scanNameOrKeyword(wsBefore *tree.WhitespaceField) {
	start := t.src.Mark()
	startPos := t.pos()
	for {
		r, _, ok := t.src.PeekRune()
		if !ok || !scanner.IsIdentContinue(r) {
			break
		}
		t.src.NextRune()
	}
	text := t.src.SliceFrom(start)
	kind := Name
	switch {
	case text == "async":
		kind = Async
	case text == "await":
		kind = Await
	case keywords[text]:
		kind = Keyword
	}
	t.out = append(t.out, Token{Kind: kind, String: text, WhitespaceBefore: wsBefore, StartPos: startPos, EndPos: t.pos()})
}

func (t *indentTokenizer) scanOperator(wsBefore *tree.WhitespaceField) bool {
	startPos := t.pos()
	for _, op := range operators {
		if t.src.HasPrefix(op) {
			t.src.SkipBytes(len(op))
			switch op {
			case "(", "[", "{":
				t.parenDepth++
			case ")", "]", "}":
				if t.parenDepth > 0 {
					t.parenDepth--
				}
			}
			t.out = append(t.out, Token{Kind: Op, String: op, WhitespaceBefore: wsBefore, StartPos: startPos, EndPos: t.pos()})
			return true
		}
	}
	return false
}

func (t *indentTokenizer) scanNumber(wsBefore *tree.WhitespaceField) *Error {
	start := t.src.Mark()
	startPos := t.pos()
	isFloat := false
	if b, _ := t.src.PeekByte(); b == '0' {
		if n := t.peekAt(1); n == 'x' || n == 'X' || n == 'o' || n == 'O' || n == 'b' || n == 'B' {
			t.src.SkipBytes(2)
			for isHexDigit(t.peekOrZero()) || t.peekOrZero() == '_' {
				t.src.NextByte()
			}
			t.out = append(t.out, Token{Kind: Number, String: t.src.SliceFrom(start), WhitespaceBefore: wsBefore, StartPos: startPos, EndPos: t.pos()})
			return nil
		}
	}
	for isDigitOrUnderscore(t.peekOrZero()) {
		t.src.NextByte()
	}
	if t.peekOrZero() == '.' {
		isFloat = true
		t.src.NextByte()
		for isDigitOrUnderscore(t.peekOrZero()) {
			t.src.NextByte()
		}
	}
	if c := t.peekOrZero(); c == 'e' || c == 'E' {
		isFloat = true
		t.src.NextByte()
		if c2 := t.peekOrZero(); c2 == '+' || c2 == '-' {
			t.src.NextByte()
		}
		for isDigitOrUnderscore(t.peekOrZero()) {
			t.src.NextByte()
		}
	}
	kind := Number
	if c := t.peekOrZero(); c == 'j' || c == 'J' {
		t.src.NextByte()
	} else if !isFloat && scanner.IsIdentStart(rune(t.peekOrZero())) {
		// A digit run immediately followed by an identifier character with
		// no valid exponent/radix marker is a malformed literal, e.g. `1_x`
		// or `1abc`. A bare trailing `1_` is caught by the check below.
		return newError(BadDecimal, startPos, t.src.SliceFrom(start))
	}
	text := t.src.SliceFrom(start)
	if strings.HasSuffix(text, "_") {
		return newError(BadDecimal, startPos, text)
	}
	t.out = append(t.out, Token{Kind: kind, String: text, WhitespaceBefore: wsBefore, StartPos: startPos, EndPos: t.pos()})
	return nil
}

func (t *indentTokenizer) peekOrZero() byte {
	b, ok := t.src.PeekByte()
	if !ok {
		return 0
	}
	return b
}

func isDigitOrUnderscore(b byte) bool { return scanner.IsASCIIDigit(b) || b == '_' }

func isHexDigit(b byte) bool {
	return scanner.IsASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanString scans a string literal, including any r/b/u/f prefix letters
// (prefixLen of them, already validated by stringPrefixLen) as part of the
// same String token — Python's lexical grammar treats `r"abc"` as one
// literal, never a Name immediately followed by a String.
func (t *indentTokenizer) scanString(wsBefore *tree.WhitespaceField, prefixLen int) *Error {
	start := t.src.Mark()
	startPos := t.pos()
	if prefixLen > 0 {
		t.src.SkipBytes(prefixLen)
	}
	quote, _ := t.src.PeekByte()
	triple := t.peekAt(1) == quote && t.peekAt(2) == quote
	if triple {
		t.src.SkipBytes(3)
	} else {
		t.src.SkipBytes(1)
	}
	for {
		b, ok := t.src.PeekByte()
		if !ok {
			return newError(UnterminatedString, startPos, t.src.SliceFrom(start))
		}
		if b == '\\' {
			t.src.SkipBytes(2)
			continue
		}
		if b == quote {
			if !triple {
				t.src.NextByte()
				break
			}
			if t.peekAt(1) == quote && t.peekAt(2) == quote {
				t.src.SkipBytes(3)
				break
			}
		}
		if !triple && (b == '\n' || b == '\r') {
			return newError(UnterminatedString, startPos, t.src.SliceFrom(start))
		}
		t.src.NextByte()
	}
	t.out = append(t.out, Token{Kind: String, String: t.src.SliceFrom(start), WhitespaceBefore: wsBefore, StartPos: startPos, EndPos: t.pos()})
	return nil
}

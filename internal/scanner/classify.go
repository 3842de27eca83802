package scanner

import (
	"strings"
	"unicode"
)

// FindByte returns the offset of the first occurrence of b in s, or -1.
// Mirrors the single-purpose fast-search helpers the teacher's tokenizer
// leans on (FindByte/FindEscapeOrQuote) to avoid a rune-by-rune scan when a
// matcher only cares about one delimiter byte; ours is a thin wrapper over
// strings.IndexByte rather than a hand-rolled SWAR loop, since spec.md
// explicitly scopes low-level UTF-8/regex scanning performance out (§1).
func FindByte(s string, b byte) int { return strings.IndexByte(s, b) }

// IsASCIIDigit reports whether b is '0'..'9'.
func IsASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsIdentStart reports whether r can start a Name token: an underscore or
// any Unicode letter.
func IsIdentStart(r rune) bool {
	return r == '_' || isLetter(r)
}

// IsIdentContinue reports whether r can continue a Name token.
func IsIdentContinue(r rune) bool {
	return r == '_' || isLetter(r) || isDigit(r)
}

// isLetter approximates XID_Start/XID_Continue for non-ASCII identifiers by
// delegating to unicode.IsLetter; a fully spec-accurate Unicode identifier
// classifier is part of the UTF-8 scanning detail spec.md §1 places out of
// scope.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= 0x80 && unicode.IsLetter(r))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

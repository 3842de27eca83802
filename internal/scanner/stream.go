// Package scanner provides the low-level byte/rune cursor that the tokenizer
// builds on: position tracking, rune-at-a-time advancing, and cheap
// save/restore for speculative matchers.
package scanner

import "unicode/utf8"

// Position identifies a point in the source text.
type Position struct {
	Line   int // 1-based physical line
	Column int // 0-based rune count within the line
	Offset int // 0-based byte offset into the source
}

// Stream is a cursor over UTF-8 source text. It never copies the source; all
// movement is tracked as an offset plus cached line/column.
type Stream struct {
	src string
	pos Position
}

// NewStream creates a cursor positioned at the start of src.
func NewStream(src string) *Stream {
	return &Stream{src: src, pos: Position{Line: 1, Column: 0, Offset: 0}}
}

// Pos returns the current position.
func (s *Stream) Pos() Position { return s.pos }

// Source returns the full underlying source text.
func (s *Stream) Source() string { return s.src }

// AtEOF reports whether the cursor has consumed the entire source.
func (s *Stream) AtEOF() bool { return s.pos.Offset >= len(s.src) }

// Remaining returns the unconsumed tail of the source.
func (s *Stream) Remaining() string { return s.src[s.pos.Offset:] }

// PeekByte returns the next byte without consuming it.
func (s *Stream) PeekByte() (byte, bool) {
	if s.AtEOF() {
		return 0, false
	}
	return s.src[s.pos.Offset], true
}

// PeekByteAt returns the byte at offset bytes ahead of the cursor, without
// consuming anything.
func (s *Stream) PeekByteAt(offset int) (byte, bool) {
	i := s.pos.Offset + offset
	if i < 0 || i >= len(s.src) {
		return 0, false
	}
	return s.src[i], true
}

// PeekRune returns the next rune and its width in bytes without consuming it.
func (s *Stream) PeekRune() (rune, int, bool) {
	if s.AtEOF() {
		return 0, 0, false
	}
	r, width := utf8.DecodeRuneInString(s.src[s.pos.Offset:])
	return r, width, true
}

// NextByte consumes and returns the next byte, updating line/column.
func (s *Stream) NextByte() (byte, bool) {
	b, ok := s.PeekByte()
	if !ok {
		return 0, false
	}
	s.advance(1, b == '\n')
	return b, true
}

// NextRune consumes and returns the next rune, updating line/column.
func (s *Stream) NextRune() (rune, bool) {
	r, width, ok := s.PeekRune()
	if !ok {
		return 0, false
	}
	s.advance(width, r == '\n')
	return r, true
}

func (s *Stream) advance(width int, isNewline bool) {
	s.pos.Offset += width
	if isNewline {
		s.pos.Line++
		s.pos.Column = 0
	} else {
		s.pos.Column++
	}
}

// SkipBytes advances the cursor past n raw bytes of src verbatim, tracking
// any newlines crossed. Used by matchers that have already validated the
// span (e.g. a literal keyword match) and just need to commit it.
func (s *Stream) SkipBytes(n int) {
	end := s.pos.Offset + n
	for s.pos.Offset < end {
		b := s.src[s.pos.Offset]
		s.advance(1, b == '\n')
	}
}

// HasPrefix reports whether the unconsumed source starts with lit.
func (s *Stream) HasPrefix(lit string) bool {
	rest := s.Remaining()
	return len(rest) >= len(lit) && rest[:len(lit)] == lit
}

// Mark returns a snapshot that Reset can later rewind to. Speculative
// matchers fork a Stream value (cheap: no heap allocation, no shared
// mutable state) rather than calling Mark/Reset, but Mark/Reset exists for
// call sites that must keep a single *Stream identity alive (see
// internal/whitespace, which embeds the rule from this pattern).
func (s *Stream) Mark() Position { return s.pos }

// Reset rewinds the cursor to a previously captured Position.
func (s *Stream) Reset(p Position) { s.pos = p }

// SliceFrom returns the source text between start and the current position.
func (s *Stream) SliceFrom(start Position) string {
	return s.src[start.Offset:s.pos.Offset]
}

// Fork returns an independent copy of the cursor. Mutating the copy never
// affects the original; used by matchers that try an alternative and must
// be able to abandon it without bookkeeping.
func (s *Stream) Fork() *Stream {
	cp := *s
	return &cp
}

package tree

import (
	"github.com/zsol/libcst/internal/codegen"
)

// RawWhitespaceState is the opaque scan state the parser stashes in a
// whitespace field before the inflater runs (spec.md §4.1): a pointer at a
// byte offset plus just enough context (absolute indent, parenthesization)
// for the inflater to classify it later without re-tokenizing.
type RawWhitespaceState struct {
	Line            int
	Column          int // rune count within the physical line
	ColumnByte      int // byte offset within the physical line
	AbsoluteIndent  string
	IsParenthesized bool
	ByteOffset      int
}

// WhitespaceField is a mutable slot the parser fills with a
// RawWhitespaceState and the inflater later replaces with a concrete
// Whitespace value (spec.md: "mutated only by the inflater"). It is a
// pointer-shaped struct (not an interface) so the inflater can overwrite it
// in place wherever the tree holds a reference to it.
type WhitespaceField struct {
	Raw      RawWhitespaceState
	Value    Whitespace
	Inflated bool
}

// NewRawWhitespaceField wraps a raw scan state for the parser to attach to
// a tree node.
func NewRawWhitespaceField(raw RawWhitespaceState) *WhitespaceField {
	return &WhitespaceField{Raw: raw}
}

// Whitespace is the structured, post-inflation representation of a
// whitespace field: either simple (no embedded comments/newlines) or
// parenthesized (may span physical lines, carry comments).
type Whitespace interface {
	isWhitespace()
	Codegen(s *codegen.State)
}

// SimpleWhitespace is whitespace that contains no newline other than
// escaped (backslash-continued) ones — spec.md's parse_simple_whitespace.
type SimpleWhitespace string

func (SimpleWhitespace) isWhitespace() {}

// Codegen emits the whitespace text verbatim.
func (w SimpleWhitespace) Codegen(s *codegen.State) { s.WriteString(string(w)) }

// Fakeness distinguishes a synthetic end-of-file newline (spec.md I5) from
// a real one consumed from the source.
type Fakeness int

const (
	Real Fakeness = iota
	Fake
)

// Newline models spec.md's Newline(value?, Fakeness). Value is nil when the
// newline should render using the module's detected default_newline.
type Newline struct {
	Value    *string
	Fakeness Fakeness
}

// Codegen emits nothing for a Fake newline (I5); otherwise the explicit
// Value if present, else the module's default newline string.
func (n Newline) Codegen(s *codegen.State) {
	if n.Fakeness == Fake {
		return
	}
	if n.Value != nil {
		s.WriteString(*n.Value)
		return
	}
	s.WriteString(s.DefaultNewline)
}

// Comment is a single "# ..." trivia token, stored with its leading '#' so
// codegen never has to reconstruct the sigil.
type Comment struct {
	Value string
}

func (c *Comment) Codegen(s *codegen.State) { s.WriteString(c.Value) }

// TrailingWhitespace is the mandatory whitespace?-comment?-newline triple
// that terminates every logical line (spec.md glossary "Trailing
// whitespace").
type TrailingWhitespace struct {
	Whitespace SimpleWhitespace
	Comment    *Comment
	Newline    Newline
}

func (tw TrailingWhitespace) Codegen(s *codegen.State) {
	tw.Whitespace.Codegen(s)
	if tw.Comment != nil {
		tw.Comment.Codegen(s)
	}
	tw.Newline.Codegen(s)
}

// EmptyLine is a physical line consisting only of optional indent,
// whitespace, an optional comment, and a terminating newline.
//
// Indentation records the literal indent string actually present on this
// physical line (distinct from the structural "indent" flag), because the
// footer-attribution algorithm (spec.md §4.3) must compare each empty
// line's real indent against the enclosing block's override indent — this
// is the field the spec's Open Question resolves as present in the
// "normative", more complete draft.
type EmptyLine struct {
	Indent      bool
	Whitespace  SimpleWhitespace
	Comment     *Comment
	Newline     Newline
	Indentation string
}

func (e EmptyLine) Codegen(s *codegen.State) {
	if e.Indent {
		s.WriteString(e.Indentation)
	}
	e.Whitespace.Codegen(s)
	if e.Comment != nil {
		e.Comment.Codegen(s)
	}
	e.Newline.Codegen(s)
}

// ParenthesizedWhitespace is whitespace recognized only while the scan
// state is inside an unclosed '(', '[', or '{': a first physical line's
// trailing whitespace, zero or more further empty lines, then the
// whitespace that leads into the next token (spec.md §4.3).
type ParenthesizedWhitespace struct {
	FirstLine  TrailingWhitespace
	EmptyLines []EmptyLine
	Indent     bool
	LastLine   SimpleWhitespace
}

func (ParenthesizedWhitespace) isWhitespace() {}

func (w ParenthesizedWhitespace) Codegen(s *codegen.State) {
	w.FirstLine.Codegen(s)
	for _, el := range w.EmptyLines {
		el.Codegen(s)
	}
	if w.Indent {
		s.WriteString(s.Indent())
	}
	w.LastLine.Codegen(s)
}

// AssignEqual is the `=` separating a keyword/parameter/annotated-assignment
// target from its value, with independent whitespace on both sides (unlike
// most sigils, PEP8-violating spacing here is common enough in the wild that
// one shared field would lose information on round-trip).
type AssignEqual struct {
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
}

func (e *AssignEqual) Codegen(s *codegen.State) {
	e.WhitespaceBefore.Codegen(s)
	s.WriteString("=")
	e.WhitespaceAfter.Codegen(s)
}

// Codegen renders a whitespace field, panicking if the inflater never ran —
// a bug in the pipeline, not a recoverable user-facing error (spec.md §7:
// "errors are never recovered internally").
func (f *WhitespaceField) Codegen(s *codegen.State) {
	if !f.Inflated {
		panic("libcst: codegen on an un-inflated whitespace field")
	}
	f.Value.Codegen(s)
}

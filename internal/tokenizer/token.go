// Package tokenizer implements the token stream producer (spec.md §4.1): it
// turns source text into a finite sequence of Tokens carrying raw,
// not-yet-classified whitespace slices and indent/dedent structure, the way
// the teacher's IndentationTokenizer wraps a base scanner to synthesize
// structural tokens from column position (internal/tokenizer/indentation.go
// in the reference pack).
package tokenizer

import "github.com/zsol/libcst/internal/tree"

// Kind is a tag from the closed token-kind set (spec.md §3).
type Kind int

const (
	Name Kind = iota
	Number
	String
	FStringStart
	FStringText
	FStringEnd
	Op
	Keyword
	Newline
	Indent
	Dedent
	Async
	Await
	EndMarker
)

func (k Kind) String() string {
	switch k {
	case Name:
		return "Name"
	case Number:
		return "Number"
	case String:
		return "String"
	case FStringStart:
		return "FStringStart"
	case FStringText:
		return "FStringText"
	case FStringEnd:
		return "FStringEnd"
	case Op:
		return "Op"
	case Keyword:
		return "Keyword"
	case Newline:
		return "Newline"
	case Indent:
		return "Indent"
	case Dedent:
		return "Dedent"
	case Async:
		return "Async"
	case Await:
		return "Await"
	case EndMarker:
		return "EndMarker"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit of the source (spec.md §3). String is a
// borrowed slice of the original text; it is empty for synthetic Indent,
// Dedent, and EndMarker tokens. WhitespaceBefore starts out as a raw,
// unparsed whitespace field and is mutated in place by the inflater
// (internal/whitespace). Tokenize leaves WhitespaceAfter nil: the gap after
// a token is the next token's WhitespaceBefore.
type Token struct {
	Kind             Kind
	String           string
	WhitespaceBefore *tree.WhitespaceField
	WhitespaceAfter  *tree.WhitespaceField
	StartPos         tree.Position
	EndPos           tree.Position

	// RelativeIndent is set only on Indent tokens: the indent string
	// introduced relative to the enclosing block (spec.md §3).
	RelativeIndent string
}

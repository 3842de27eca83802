// Package libcst provides a lossless concrete syntax tree parser and code
// generator for a Python-like indentation-sensitive language.
//
// Unlike an abstract syntax tree, every byte of the original source —
// comments, blank lines, trailing whitespace, parenthesization — is
// preserved in the tree and reproduced exactly by Codegen. This makes the
// tree suitable for source-to-source transformations that must leave the
// untouched parts of a file byte-for-byte unchanged.
//
// # Thread Safety
//
// Every function in this package is a pure function of its arguments and
// is safe for concurrent use by multiple goroutines; no parse shares
// mutable state with another.
//
//	go func() { libcst.ParseModule(source1) }()
//	go func() { libcst.ParseModule(source2) }()
//
// # Parsing APIs
//
// The package mirrors the pipeline's four stages plus three convenience
// entry points:
//
//   - Tokenize(text) - lexes source into a token stream
//   - ParseTokensWithoutWhitespace(tokens) - builds a raw tree from tokens
//   - ParseWhitespace(tree, text) - inflates a raw tree's whitespace fields
//   - ParseModule(text) - runs all three stages, handling a leading BOM
//   - ParseStatement(text) - parses exactly one statement
//   - ParseExpression(text) - parses exactly one expression
//   - Codegen(module) - renders a tree back to source text
//
// Use ParseModule for whole files. Use ParseStatement/ParseExpression when
// embedding a single fragment, e.g. splicing a new statement into an
// existing tree.
//
// Example:
//
//	mod, err := libcst.ParseModule("x = 1\ny = x + 1\n")
//	if err != nil {
//	    // handle error
//	}
//	out := libcst.Codegen(mod)
//	// out == "x = 1\ny = x + 1\n"
package libcst

import (
	"errors"
	"strings"

	"github.com/zsol/libcst/internal/codegen"
	"github.com/zsol/libcst/internal/grammar"
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
	"github.com/zsol/libcst/internal/whitespace"
)

// Re-exported tree types, so callers never need to import internal/tree
// directly.
type (
	Module     = tree.Module
	Statement  = tree.Statement
	Expression = tree.Expression
	Token      = tokenizer.Token

	// RawTree is the raw-tree builder's output (spec.md §4.2): a Module
	// whose whitespace fields still hold raw, not-yet-inflated scan state,
	// plus the side tables spec.md §9 sanctions as an acceptable
	// representation of the leading/trailing/footer slots that have no
	// embedded whitespace field of their own. Pass it to ParseWhitespace to
	// finish the parse.
	RawTree = tree.RawTree
)

const bom = "\xef\xbb\xbf"

// Tokenize lexes source text into a token stream (spec.md §4.1). The
// returned tokens carry raw, not-yet-inflated whitespace fields; pass them
// to ParseTokensWithoutWhitespace to build a tree.
func Tokenize(text string) ([]Token, error) {
	toks, err := tokenizer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// ParseTokensWithoutWhitespace runs the PEG raw-tree builder over an
// already-tokenized stream (spec.md §4.2). The returned RawTree's
// whitespace fields still hold raw scan state; pass it and the original
// text to ParseWhitespace to finish the parse.
func ParseTokensWithoutWhitespace(toks []Token) (*RawTree, error) {
	rt, err := grammar.ParseTokensWithoutWhitespace(toks)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// ParseWhitespace inflates every raw whitespace field in rt's tree into a
// structured value, using text to resolve the raw byte-offset slices
// (spec.md §4.3).
func ParseWhitespace(rt *RawTree, text string) (*Module, error) {
	mod, err := whitespace.Inflate(rt, text)
	if err != nil {
		return nil, err
	}
	return mod, nil
}

// ParseModule runs the full three-stage pipeline over a complete source
// file: it strips a leading UTF-8 BOM if present, tokenizes, builds the raw
// tree, and inflates its whitespace (spec.md §6). The original BOM and the
// source's default newline are recorded on the returned Module so Codegen
// reproduces them.
func ParseModule(text string) (*Module, error) {
	hasBOM := strings.HasPrefix(text, bom)
	body := text
	if hasBOM {
		body = strings.TrimPrefix(text, bom)
	}
	toks, tErr := Tokenize(body)
	if tErr != nil {
		return nil, tErr
	}
	rt, pErr := ParseTokensWithoutWhitespace(toks)
	if pErr != nil {
		return nil, pErr
	}
	mod, wErr := ParseWhitespace(rt, body)
	if wErr != nil {
		return nil, wErr
	}
	mod.HasBOM = hasBOM
	mod.DefaultNewline = tokenizer.DetectDefaultNewline(body)
	mod.DefaultIndent = firstIndent(toks)
	return mod, nil
}

// firstIndent returns the indent string introduced by the token stream's
// first Indent token, or the four-space default if the source never
// indents (e.g. a single top-level statement).
func firstIndent(toks []Token) string {
	for _, t := range toks {
		if t.Kind == tokenizer.Indent {
			return t.RelativeIndent
		}
	}
	return "    "
}

// ParseStatement parses text as exactly one statement (spec.md §6): it
// tokenizes text with a trailing newline appended so the grammar always
// sees a complete logical line, parses it as a one-statement module, and
// returns that statement, discarding the synthetic EndMarker token the
// tokenizer appends to every stream.
func ParseStatement(text string) (Statement, error) {
	mod, err := ParseModule(ensureTrailingNewline(text))
	if err != nil {
		return nil, err
	}
	if len(mod.Body) == 0 {
		return nil, errors.New("libcst: no statement found in input")
	}
	return mod.Body[0], nil
}

// ParseExpression parses text as exactly one expression (spec.md §6): it
// wraps text in a bare expression statement, parses that as a one-statement
// module, and unwraps the result, discarding both the synthetic EndMarker
// and the trailing Newline that terminates every simple statement line.
func ParseExpression(text string) (Expression, error) {
	stmt, err := ParseStatement(text)
	if err != nil {
		return nil, err
	}
	line, ok := stmt.(*tree.SimpleStatementLine)
	if !ok || len(line.Body) == 0 {
		return nil, errors.New("libcst: input is not a bare expression")
	}
	exprStmt, ok := line.Body[0].(*tree.Expr)
	if !ok {
		return nil, errors.New("libcst: input is not a bare expression")
	}
	return exprStmt.Value, nil
}

func ensureTrailingNewline(text string) string {
	if strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r") {
		return text
	}
	return text + "\n"
}

// Codegen renders mod back to source text, using the DefaultIndent and
// DefaultNewline it recorded during parsing (spec.md §4.4).
func Codegen(mod *Module) string {
	s := codegen.NewState(mod.CodegenOptions())
	mod.Codegen(s)
	return s.String()
}

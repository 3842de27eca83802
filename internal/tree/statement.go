package tree

import "github.com/zsol/libcst/internal/codegen"

// Statement is either a SimpleStatementLine or a compound statement, each
// owning its own indented Suite (spec.md §3).
type Statement interface {
	Node
	isStatement()
}

func codegenLeadingLines(s *codegen.State, lines []EmptyLine) {
	for _, el := range lines {
		el.Codegen(s)
	}
}

// SimpleStatementLine is "a list of SmallStatement separated by semicolons,
// a trailing whitespace, and leading empty lines" (spec.md §3).
type SimpleStatementLine struct {
	Body               []SmallStatement
	LeadingLines       []EmptyLine
	TrailingWhitespace TrailingWhitespace
}

func (*SimpleStatementLine) isStatement() {}

func (n *SimpleStatementLine) Codegen(s *codegen.State) {
	codegenLeadingLines(s, n.LeadingLines)
	s.WriteIndent()
	for _, small := range n.Body {
		small.Codegen(s)
	}
	n.TrailingWhitespace.Codegen(s)
}

// Suite is a compound statement's body: either an indented block on
// subsequent lines, or a simple-statement suite on the same physical line
// as the header (spec.md §3).
type Suite interface {
	Node
	isSuite()
}

// IndentedBlock is `Newline Indent statements Dedent` (spec.md §4.2's
// `block` rule).
type IndentedBlock struct {
	Body   []Statement
	Header TrailingWhitespace // the newline that ends the compound statement's header line
	Indent string             // the indent introduced beyond the enclosing block (I4)
	Footer []EmptyLine
}

func (*IndentedBlock) isSuite() {}

func (n *IndentedBlock) Codegen(s *codegen.State) {
	n.Header.Codegen(s)
	s.PushIndent(n.Indent)
	if len(n.Body) == 0 {
		// spec.md §4.4: "An empty indented block emits a single pass line
		// to keep the output syntactically valid."
		s.WriteIndent()
		s.WriteString("pass")
		s.WriteString(s.DefaultNewline)
	} else {
		for _, stmt := range n.Body {
			stmt.Codegen(s)
		}
	}
	for _, el := range n.Footer {
		el.Codegen(s)
	}
	s.PopIndent()
}

// SimpleStatementSuite is `simple_stmt` used directly as a compound
// statement's block, e.g. `def f(): pass`.
type SimpleStatementSuite struct {
	Body               []SmallStatement
	LeadingWhitespace  *WhitespaceField
	TrailingWhitespace TrailingWhitespace
}

func (*SimpleStatementSuite) isSuite() {}

func (n *SimpleStatementSuite) Codegen(s *codegen.State) {
	n.LeadingWhitespace.Codegen(s)
	if len(n.Body) == 0 {
		s.WriteString("pass")
	} else {
		for _, small := range n.Body {
			small.Codegen(s)
		}
	}
	n.TrailingWhitespace.Codegen(s)
}

// Colon is the ':' that ends a compound statement's header line, or (with
// WhitespaceAfter populated) one of a slice's separators, where unlike a
// header colon something can follow it on the same line.
type Colon struct {
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
}

func (c Colon) Codegen(s *codegen.State) {
	c.WhitespaceBefore.Codegen(s)
	s.WriteString(":")
	if c.WhitespaceAfter != nil {
		c.WhitespaceAfter.Codegen(s)
	}
}

// Asynchronous marks a def/for/with as prefixed by `async `. A nil pointer
// at the embedding site means the statement is not async.
type Asynchronous struct {
	WhitespaceAfter *WhitespaceField
}

func (a *Asynchronous) Codegen(s *codegen.State) {
	if a == nil {
		return
	}
	s.WriteString("async")
	a.WhitespaceAfter.Codegen(s)
}

// KeywordToken emits a bare keyword/operator spelling followed by its
// trailing whitespace field — most compound-statement headers are a
// sequence of these interleaved with sub-expressions.
type KeywordToken struct {
	Value           string
	WhitespaceAfter *WhitespaceField
}

func (k KeywordToken) Codegen(s *codegen.State) {
	s.WriteString(k.Value)
	if k.WhitespaceAfter != nil {
		k.WhitespaceAfter.Codegen(s)
	}
}

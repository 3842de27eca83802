package tree

import "github.com/zsol/libcst/internal/codegen"

// Position is the { line (1-based), column (0-based char count), offset
// (0-based byte) } triple spec.md §6 fixes as the public position
// representation.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Node is implemented by every tree type capable of emitting itself during
// code generation (spec.md §4.5's "inflate capability" counterpart on the
// output side).
type Node interface {
	Codegen(s *codegen.State)
}

// LeftParen and RightParen are the matched-parenthesis markers every
// Expression variant carries in its Lpar/Rpar slices (spec.md §3, I3).
type LeftParen struct {
	WhitespaceAfter *WhitespaceField
}

func (p LeftParen) Codegen(s *codegen.State) {
	s.WriteString("(")
	p.WhitespaceAfter.Codegen(s)
}

type RightParen struct {
	WhitespaceBefore *WhitespaceField
}

func (p RightParen) Codegen(s *codegen.State) {
	p.WhitespaceBefore.Codegen(s)
	s.WriteString(")")
}

// Parenthesizable is embedded by every Expression variant to satisfy I3
// ("for every expression node, |lpar| == |rpar|") uniformly, the way
// spec.md §4.5 says the capability "is expected to derive mechanically".
type Parenthesizable struct {
	Lpar []LeftParen
	Rpar []RightParen
}

// LParens and RParens expose the matched parenthesis lists.
func (p *Parenthesizable) LParens() []LeftParen  { return p.Lpar }
func (p *Parenthesizable) RParens() []RightParen { return p.Rpar }

// PrependParen records one more matched pair of parentheses directly
// enclosing this expression, as seen by the grammar scanning outward from
// `(`, the expression, then `)` — the parser's way of attaching redundant
// parens to the expression they wrap rather than allocating a wrapper node.
func (p *Parenthesizable) PrependParen(lp LeftParen, rp RightParen) {
	p.Lpar = append([]LeftParen{lp}, p.Lpar...)
	p.Rpar = append(p.Rpar, rp)
}

// codegenParens wraps the emission of inner with this node's matched
// parentheses in source order: Lpar outermost first, then Rpar innermost
// first, the order PrependParen stores them in — spec.md §4.4's
// parenthesization rule.
func (p *Parenthesizable) codegenParens(s *codegen.State, inner func()) {
	for _, lp := range p.Lpar {
		lp.Codegen(s)
	}
	inner()
	for _, rp := range p.Rpar {
		rp.Codegen(s)
	}
}

// Semicolon separates small statements on one logical line, or trails the
// last one. Its Whitespace fields are owned the same way parenthesized
// whitespace is: before the following token, after the preceding one.
type Semicolon struct {
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
}

func (sc *Semicolon) Codegen(s *codegen.State) {
	sc.WhitespaceBefore.Codegen(s)
	s.WriteString(";")
	sc.WhitespaceAfter.Codegen(s)
}

package tree

import "github.com/zsol/libcst/internal/codegen"

// Element is one entry of a Tuple/List/Set display: either a plain value or
// a `*value` starred unpacking, each with its own trailing comma.
type Element struct {
	Value Expression
	Comma *Comma
	Star  string // "" or "*"
	WhitespaceAfterStar *WhitespaceField
}

func (e *Element) Codegen(s *codegen.State) {
	if e.Star != "" {
		s.WriteString(e.Star)
		e.WhitespaceAfterStar.Codegen(s)
	}
	e.Value.Codegen(s)
	if e.Comma != nil {
		e.Comma.Codegen(s)
	}
}

// Tuple is `(a, b, c)`; the parens are frequently implicit (bare
// `a, b = 1, 2`), so unlike other displays its Lpar/Rpar may legitimately be
// empty even at the top of an expression statement.
type Tuple struct {
	Parenthesizable
	Elements []*Element
}

func (*Tuple) isExpression() {}

func (n *Tuple) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		for _, el := range n.Elements {
			el.Codegen(s)
		}
	})
}

// List is `[a, b, c]`.
type List struct {
	Parenthesizable
	WhitespaceAfterBracket  *WhitespaceField
	Elements                []*Element
	WhitespaceBeforeBracket *WhitespaceField
}

func (*List) isExpression() {}

func (n *List) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("[")
		n.WhitespaceAfterBracket.Codegen(s)
		for _, el := range n.Elements {
			el.Codegen(s)
		}
		n.WhitespaceBeforeBracket.Codegen(s)
		s.WriteString("]")
	})
}

// Set is `{a, b, c}`. An empty `{}` is always a Dict (spec matches Python:
// the empty-braces literal denotes an empty dict, never an empty set).
type Set struct {
	Parenthesizable
	WhitespaceAfterBrace  *WhitespaceField
	Elements              []*Element
	WhitespaceBeforeBrace *WhitespaceField
}

func (*Set) isExpression() {}

func (n *Set) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("{")
		n.WhitespaceAfterBrace.Codegen(s)
		for _, el := range n.Elements {
			el.Codegen(s)
		}
		n.WhitespaceBeforeBrace.Codegen(s)
		s.WriteString("}")
	})
}

// DictElement is `key: value` plus its trailing comma, or `**value` when
// Key is nil (dict unpacking).
type DictElement struct {
	Key                  Expression
	WhitespaceBeforeColon *WhitespaceField
	WhitespaceAfterColon *WhitespaceField
	Value                Expression
	Comma                *Comma
	DoubleStar           string // "" or "**"
	WhitespaceAfterStar  *WhitespaceField
}

func (d *DictElement) Codegen(s *codegen.State) {
	if d.DoubleStar != "" {
		s.WriteString(d.DoubleStar)
		d.WhitespaceAfterStar.Codegen(s)
		d.Value.Codegen(s)
	} else {
		d.Key.Codegen(s)
		d.WhitespaceBeforeColon.Codegen(s)
		s.WriteString(":")
		d.WhitespaceAfterColon.Codegen(s)
		d.Value.Codegen(s)
	}
	if d.Comma != nil {
		d.Comma.Codegen(s)
	}
}

// Dict is `{k: v, ...}`.
type Dict struct {
	Parenthesizable
	WhitespaceAfterBrace  *WhitespaceField
	Elements              []*DictElement
	WhitespaceBeforeBrace *WhitespaceField
}

func (*Dict) isExpression() {}

func (n *Dict) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("{")
		n.WhitespaceAfterBrace.Codegen(s)
		for _, el := range n.Elements {
			el.Codegen(s)
		}
		n.WhitespaceBeforeBrace.Codegen(s)
		s.WriteString("}")
	})
}

// CompFor is one `for target in iter` clause of a comprehension, optionally
// followed by `if` filter clauses and a nested CompFor (for multi-`for`
// comprehensions).
type CompFor struct {
	WhitespaceBefore     *WhitespaceField
	Asynchronous         *Asynchronous
	WhitespaceAfterFor   *WhitespaceField
	Target               Expression
	WhitespaceBeforeIn   *WhitespaceField
	WhitespaceAfterIn    *WhitespaceField
	Iter                 Expression
	Ifs                  []*CompIf
	Inner                *CompFor
}

func (cf *CompFor) Codegen(s *codegen.State) {
	cf.WhitespaceBefore.Codegen(s)
	cf.Asynchronous.Codegen(s)
	s.WriteString("for")
	cf.WhitespaceAfterFor.Codegen(s)
	cf.Target.Codegen(s)
	cf.WhitespaceBeforeIn.Codegen(s)
	s.WriteString("in")
	cf.WhitespaceAfterIn.Codegen(s)
	cf.Iter.Codegen(s)
	for _, f := range cf.Ifs {
		f.Codegen(s)
	}
	if cf.Inner != nil {
		cf.Inner.Codegen(s)
	}
}

// CompIf is one `if test` filter clause within a comprehension.
type CompIf struct {
	WhitespaceBefore *WhitespaceField
	WhitespaceAfterIf *WhitespaceField
	Test             Expression
}

func (ci *CompIf) Codegen(s *codegen.State) {
	ci.WhitespaceBefore.Codegen(s)
	s.WriteString("if")
	ci.WhitespaceAfterIf.Codegen(s)
	ci.Test.Codegen(s)
}

// ListComp, SetComp, DictComp, and GeneratorExp all share the
// `elt for_clause+` shape; they are kept as distinct node types (rather than
// one generic Comprehension) because each delimits itself differently and
// DictComp carries a key/value pair instead of a single element.

type ListComp struct {
	Parenthesizable
	WhitespaceAfterBracket  *WhitespaceField
	Elt                     Expression
	For                     *CompFor
	WhitespaceBeforeBracket *WhitespaceField
}

func (*ListComp) isExpression() {}

func (n *ListComp) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("[")
		n.WhitespaceAfterBracket.Codegen(s)
		n.Elt.Codegen(s)
		n.For.Codegen(s)
		n.WhitespaceBeforeBracket.Codegen(s)
		s.WriteString("]")
	})
}

type SetComp struct {
	Parenthesizable
	WhitespaceAfterBrace  *WhitespaceField
	Elt                   Expression
	For                   *CompFor
	WhitespaceBeforeBrace *WhitespaceField
}

func (*SetComp) isExpression() {}

func (n *SetComp) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("{")
		n.WhitespaceAfterBrace.Codegen(s)
		n.Elt.Codegen(s)
		n.For.Codegen(s)
		n.WhitespaceBeforeBrace.Codegen(s)
		s.WriteString("}")
	})
}

type DictComp struct {
	Parenthesizable
	WhitespaceAfterBrace  *WhitespaceField
	Key                   Expression
	WhitespaceBeforeColon *WhitespaceField
	WhitespaceAfterColon  *WhitespaceField
	Value                 Expression
	For                   *CompFor
	WhitespaceBeforeBrace *WhitespaceField
}

func (*DictComp) isExpression() {}

func (n *DictComp) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("{")
		n.WhitespaceAfterBrace.Codegen(s)
		n.Key.Codegen(s)
		n.WhitespaceBeforeColon.Codegen(s)
		s.WriteString(":")
		n.WhitespaceAfterColon.Codegen(s)
		n.Value.Codegen(s)
		n.For.Codegen(s)
		n.WhitespaceBeforeBrace.Codegen(s)
		s.WriteString("}")
	})
}

// GeneratorExp is a bare `(elt for_clause+)`; when it is the sole argument
// to a call, the parentheses may be shared with the Call's own `(` `)` — the
// grammar owns that decision, not this node.
type GeneratorExp struct {
	Parenthesizable
	Elt Expression
	For *CompFor
}

func (*GeneratorExp) isExpression() {}

func (n *GeneratorExp) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Elt.Codegen(s)
		n.For.Codegen(s)
	})
}

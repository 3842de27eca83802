package tree

import "github.com/zsol/libcst/internal/codegen"

// Expression is implemented by every expression variant (spec.md §3). Every
// variant embeds Parenthesizable so I3 ("|lpar| == |rpar|") holds uniformly
// without each variant re-deriving it.
type Expression interface {
	Node
	isExpression()
	LParens() []LeftParen
	RParens() []RightParen
	PrependParen(lp LeftParen, rp RightParen)
}

// Name is a bare identifier, e.g. `x`, `self`, `_`.
type Name struct {
	Parenthesizable
	Value string
}

func (*Name) isExpression() {}

func (n *Name) Codegen(s *codegen.State) {
	n.codegenParens(s, func() { s.WriteString(n.Value) })
}

// Integer is a literal integer token, stored verbatim (preserves leading
// zeros under `0x`/`0o`/`0b` prefixes, underscores, and case of `0X`/`0B`).
type Integer struct {
	Parenthesizable
	Value string
}

func (*Integer) isExpression() {}

func (n *Integer) Codegen(s *codegen.State) {
	n.codegenParens(s, func() { s.WriteString(n.Value) })
}

// Float is a literal floating-point token, stored verbatim.
type Float struct {
	Parenthesizable
	Value string
}

func (*Float) isExpression() {}

func (n *Float) Codegen(s *codegen.State) {
	n.codegenParens(s, func() { s.WriteString(n.Value) })
}

// Imaginary is a literal imaginary-number token (e.g. `3j`), stored verbatim.
type Imaginary struct {
	Parenthesizable
	Value string
}

func (*Imaginary) isExpression() {}

func (n *Imaginary) Codegen(s *codegen.State) {
	n.codegenParens(s, func() { s.WriteString(n.Value) })
}

// SimpleString is a single string token (concatenated adjacent string
// literals are represented as a ConcatenatedString, not folded here).
type SimpleString struct {
	Parenthesizable
	Value string
}

func (*SimpleString) isExpression() {}

func (n *SimpleString) Codegen(s *codegen.State) {
	n.codegenParens(s, func() { s.WriteString(n.Value) })
}

// ConcatenatedString is two or more adjacent string/f-string literals that
// the language concatenates at parse time, e.g. `"a" "b"`.
type ConcatenatedString struct {
	Parenthesizable
	Left            Expression // SimpleString or ConcatenatedString
	WhitespaceBetween *WhitespaceField
	Right           *SimpleString
}

func (*ConcatenatedString) isExpression() {}

func (n *ConcatenatedString) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Left.Codegen(s)
		n.WhitespaceBetween.Codegen(s)
		n.Right.Codegen(s)
	})
}

// Ellipsis is the literal `...`.
type Ellipsis struct {
	Parenthesizable
}

func (*Ellipsis) isExpression() {}

func (n *Ellipsis) Codegen(s *codegen.State) {
	n.codegenParens(s, func() { s.WriteString("...") })
}

// UnaryOp is the closed set of prefix unary operator spellings.
type UnaryOp string

const (
	UnaryPlus  UnaryOp = "+"
	UnaryMinus UnaryOp = "-"
	UnaryNot   UnaryOp = "not"
	UnaryInv   UnaryOp = "~"
)

// UnaryOperation is `op operand` at precedence level 11 (factor) or level 3
// (inversion), e.g. `-x`, `not x`.
type UnaryOperation struct {
	Parenthesizable
	Operator        UnaryOp
	WhitespaceAfter *WhitespaceField
	Expression      Expression
}

func (*UnaryOperation) isExpression() {}

func (n *UnaryOperation) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString(string(n.Operator))
		n.WhitespaceAfter.Codegen(s)
		n.Expression.Codegen(s)
	})
}

// BinaryOp is the closed set of infix binary operator spellings spanning
// spec.md §4.2 levels 5-10 and 12 (bitwise, shift, sum, term, power).
type BinaryOp string

const (
	OpBitOr     BinaryOp = "|"
	OpBitXor    BinaryOp = "^"
	OpBitAnd    BinaryOp = "&"
	OpLeftShift BinaryOp = "<<"
	OpRightShift BinaryOp = ">>"
	OpAdd       BinaryOp = "+"
	OpSubtract  BinaryOp = "-"
	OpMultiply  BinaryOp = "*"
	OpDivide    BinaryOp = "/"
	OpFloorDiv  BinaryOp = "//"
	OpModulo    BinaryOp = "%"
	OpMatMult   BinaryOp = "@"
	OpPower     BinaryOp = "**"
)

// BinaryOperation is the left-folded result of the `head (op operand)+`
// rewrite of a left-recursive binary rule (spec.md §9): Left is itself a
// BinaryOperation for every operator after the first, growing on the left.
type BinaryOperation struct {
	Parenthesizable
	Left             Expression
	Operator         BinaryOp
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
	Right            Expression
}

func (*BinaryOperation) isExpression() {}

func (n *BinaryOperation) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Left.Codegen(s)
		n.WhitespaceBefore.Codegen(s)
		s.WriteString(string(n.Operator))
		n.WhitespaceAfter.Codegen(s)
		n.Right.Codegen(s)
	})
}

// BooleanOp distinguishes `and`/`or` (spec.md §4.2 levels 1-2).
type BooleanOp string

const (
	OpAnd BooleanOp = "and"
	OpOr  BooleanOp = "or"
)

// BooleanOperation is the left-folded `and`/`or` chain, structurally
// identical to BinaryOperation but kept distinct because the operators are
// keywords, not punctuation, and bind looser than every BinaryOperation.
type BooleanOperation struct {
	Parenthesizable
	Left             Expression
	Operator         BooleanOp
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
	Right            Expression
}

func (*BooleanOperation) isExpression() {}

func (n *BooleanOperation) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Left.Codegen(s)
		n.WhitespaceBefore.Codegen(s)
		s.WriteString(string(n.Operator))
		n.WhitespaceAfter.Codegen(s)
		n.Right.Codegen(s)
	})
}

// CompareOp is the closed set of comparison operator spellings, including
// the two-keyword forms `is not` / `not in`.
type CompareOp string

const (
	CmpLessThan      CompareOp = "<"
	CmpGreaterThan   CompareOp = ">"
	CmpLessEqual     CompareOp = "<="
	CmpGreaterEqual  CompareOp = ">="
	CmpEqual         CompareOp = "=="
	CmpNotEqual      CompareOp = "!="
	CmpIn            CompareOp = "in"
	CmpNotIn         CompareOp = "not in"
	CmpIs            CompareOp = "is"
	CmpIsNot         CompareOp = "is not"
)

// ComparisonTarget is one `(operator, comparator)` pair in a Comparison's
// tail. Comparisons are non-associative and chained (`a < b < c`), so unlike
// BinaryOperation they are NOT folded into a left-recursive tree (spec.md
// §4.2: "Comparison produces a dedicated node with a head expression and a
// list of (operator, comparator) pairs").
type ComparisonTarget struct {
	Operator         CompareOp
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
	Comparator       Expression
}

// Comparison is `head (operator comparator)+`.
type Comparison struct {
	Parenthesizable
	Head        Expression
	Comparisons []ComparisonTarget
}

func (*Comparison) isExpression() {}

func (n *Comparison) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Head.Codegen(s)
		for _, c := range n.Comparisons {
			c.WhitespaceBefore.Codegen(s)
			s.WriteString(string(c.Operator))
			c.WhitespaceAfter.Codegen(s)
			c.Comparator.Codegen(s)
		}
	})
}

// Attribute is `value.attr` (spec.md §4.2 level 13, primary).
type Attribute struct {
	Parenthesizable
	Value                 Expression
	WhitespaceBeforeDot   *WhitespaceField
	WhitespaceAfterDot    *WhitespaceField
	Attr                  *Name
}

func (*Attribute) isExpression() {}

func (n *Attribute) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Value.Codegen(s)
		n.WhitespaceBeforeDot.Codegen(s)
		s.WriteString(".")
		n.WhitespaceAfterDot.Codegen(s)
		n.Attr.Codegen(s)
	})
}

// Starred is `*expr`, used in call arguments, assignment targets, and
// display elements (e.g. `[*a, *b]`).
type Starred struct {
	Parenthesizable
	WhitespaceAfterStar *WhitespaceField
	Value               Expression
	Comma               *Comma
}

func (*Starred) isExpression() {}

func (n *Starred) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("*")
		n.WhitespaceAfterStar.Codegen(s)
		n.Value.Codegen(s)
		if n.Comma != nil {
			n.Comma.Codegen(s)
		}
	})
}

// Await is `await primary` (spec.md §4.2 level 13).
type Await struct {
	Parenthesizable
	WhitespaceAfterAwait *WhitespaceField
	Expression           Expression
}

func (*Await) isExpression() {}

func (n *Await) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("await")
		n.WhitespaceAfterAwait.Codegen(s)
		n.Expression.Codegen(s)
	})
}

// NamedExpr is the walrus assignment expression `target := value`.
type NamedExpr struct {
	Parenthesizable
	Target            Expression
	WhitespaceBeforeWalrus *WhitespaceField
	WhitespaceAfterWalrus  *WhitespaceField
	Value             Expression
}

func (*NamedExpr) isExpression() {}

func (n *NamedExpr) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Target.Codegen(s)
		n.WhitespaceBeforeWalrus.Codegen(s)
		s.WriteString(":=")
		n.WhitespaceAfterWalrus.Codegen(s)
		n.Value.Codegen(s)
	})
}

// IfExp is the conditional expression `body if test else orelse`.
type IfExp struct {
	Parenthesizable
	Body                   Expression
	WhitespaceBeforeIf     *WhitespaceField
	WhitespaceAfterIf      *WhitespaceField
	Test                   Expression
	WhitespaceBeforeElse   *WhitespaceField
	WhitespaceAfterElse    *WhitespaceField
	OrElse                 Expression
}

func (*IfExp) isExpression() {}

func (n *IfExp) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Body.Codegen(s)
		n.WhitespaceBeforeIf.Codegen(s)
		s.WriteString("if")
		n.WhitespaceAfterIf.Codegen(s)
		n.Test.Codegen(s)
		n.WhitespaceBeforeElse.Codegen(s)
		s.WriteString("else")
		n.WhitespaceAfterElse.Codegen(s)
		n.OrElse.Codegen(s)
	})
}

// Lambda is `lambda params: body`.
type Lambda struct {
	Parenthesizable
	Params                *Parameters
	WhitespaceAfterLambda *WhitespaceField
	Colon                 Colon
	Body                  Expression
}

func (*Lambda) isExpression() {}

func (n *Lambda) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		s.WriteString("lambda")
		n.WhitespaceAfterLambda.Codegen(s)
		n.Params.Codegen(s)
		n.Colon.Codegen(s)
		n.Body.Codegen(s)
	})
}

package tree

import "github.com/zsol/libcst/internal/codegen"

// Arg is one call argument: a positional value, a `*`/`**` unpacking, or a
// `keyword=value` / `**kwargs` keyword argument.
type Arg struct {
	Value               Expression
	Keyword             *Name
	Equal               *AssignEqual // non-nil iff Keyword != nil
	Star                string       // "", "*", or "**"
	WhitespaceAfterStar *WhitespaceField
	WhitespaceAfterArg  *WhitespaceField
	Comma               *Comma
}

func (a *Arg) Codegen(s *codegen.State) {
	if a.Star != "" {
		s.WriteString(a.Star)
		a.WhitespaceAfterStar.Codegen(s)
	}
	if a.Keyword != nil {
		a.Keyword.Codegen(s)
		a.Equal.Codegen(s)
	}
	a.Value.Codegen(s)
	if a.WhitespaceAfterArg != nil {
		a.WhitespaceAfterArg.Codegen(s)
	}
	if a.Comma != nil {
		a.Comma.Codegen(s)
	}
}

// Call is `func(args)` (spec.md §4.2 level 13, primary postfix `(`).
type Call struct {
	Parenthesizable
	Func                  Expression
	WhitespaceAfterFunc   *WhitespaceField
	WhitespaceBeforeArgs  *WhitespaceField
	Args                  []*Arg
	WhitespaceAfterArgs   *WhitespaceField
}

func (*Call) isExpression() {}

func (n *Call) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Func.Codegen(s)
		n.WhitespaceAfterFunc.Codegen(s)
		s.WriteString("(")
		n.WhitespaceBeforeArgs.Codegen(s)
		for _, a := range n.Args {
			a.Codegen(s)
		}
		n.WhitespaceAfterArgs.Codegen(s)
		s.WriteString(")")
	})
}

// Index is a single subscript element, e.g. the `i` in `a[i]`.
type Index struct {
	Value Expression
}

// Slice is `lower:upper:step`, any part of which may be omitted.
type Slice struct {
	Lower                 Expression
	Upper                 Expression
	Step                  Expression
	FirstColon            Colon
	SecondColon           *Colon
}

func (sl *Slice) Codegen(s *codegen.State) {
	if sl.Lower != nil {
		sl.Lower.Codegen(s)
	}
	sl.FirstColon.Codegen(s)
	if sl.Upper != nil {
		sl.Upper.Codegen(s)
	}
	if sl.SecondColon != nil {
		sl.SecondColon.Codegen(s)
		if sl.Step != nil {
			sl.Step.Codegen(s)
		}
	}
}

// SubscriptElement wraps either an Index or a Slice plus its trailing comma,
// matching the multi-dimensional-subscript shape `a[i, j:k]`.
type SubscriptElement struct {
	Slice interface {
		Codegen(s *codegen.State)
	}
	Comma *Comma
}

func (se *SubscriptElement) Codegen(s *codegen.State) {
	se.Slice.Codegen(s)
	if se.Comma != nil {
		se.Comma.Codegen(s)
	}
}

// Codegen for Index delegates directly to its wrapped value so it can be
// used interchangeably with *Slice inside a SubscriptElement.
func (ix *Index) Codegen(s *codegen.State) { ix.Value.Codegen(s) }

// Subscript is `value[slice]` (spec.md §4.2 level 13, primary postfix `[`).
type Subscript struct {
	Parenthesizable
	Value                Expression
	WhitespaceAfterValue *WhitespaceField
	WhitespaceBeforeSlice *WhitespaceField
	Slice                []*SubscriptElement
	WhitespaceAfterSlice *WhitespaceField
}

func (*Subscript) isExpression() {}

func (n *Subscript) Codegen(s *codegen.State) {
	n.codegenParens(s, func() {
		n.Value.Codegen(s)
		n.WhitespaceAfterValue.Codegen(s)
		s.WriteString("[")
		n.WhitespaceBeforeSlice.Codegen(s)
		for _, el := range n.Slice {
			el.Codegen(s)
		}
		n.WhitespaceAfterSlice.Codegen(s)
		s.WriteString("]")
	})
}

package tree

import "github.com/zsol/libcst/internal/codegen"

// Decorator is one `@expr` line preceding a `def`/`class`.
type Decorator struct {
	WhitespaceAfterAt  *WhitespaceField
	Decorator          Expression
	TrailingWhitespace TrailingWhitespace
}

func (d *Decorator) Codegen(s *codegen.State) {
	s.WriteIndent()
	s.WriteString("@")
	d.WhitespaceAfterAt.Codegen(s)
	d.Decorator.Codegen(s)
	d.TrailingWhitespace.Codegen(s)
}

func codegenDecorators(s *codegen.State, leading []EmptyLine, decorators []*Decorator, linesAfter []EmptyLine) {
	codegenLeadingLines(s, leading)
	for _, d := range decorators {
		d.Codegen(s)
	}
	// lines_after_decorators binds comments/blanks between the last
	// decorator and the def/class line to this node, never to the
	// decorator's own trailing_whitespace (spec.md §9 design note).
	codegenLeadingLines(s, linesAfter)
}

// FunctionDef is `[decorators] [async] def name(params) [-> returns]: body`.
type FunctionDef struct {
	LeadingLines          []EmptyLine
	Decorators            []*Decorator
	LinesAfterDecorators  []EmptyLine
	Asynchronous          *Asynchronous
	WhitespaceAfterDef    *WhitespaceField
	Name                  *Name
	WhitespaceBeforeParams *WhitespaceField
	Params                *Parameters
	WhitespaceAfterParams *WhitespaceField
	Returns               *Annotation // Indicator == "->"; nil when absent
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
}

func (*FunctionDef) isStatement() {}

func (n *FunctionDef) Codegen(s *codegen.State) {
	codegenDecorators(s, n.LeadingLines, n.Decorators, n.LinesAfterDecorators)
	s.WriteIndent()
	n.Asynchronous.Codegen(s)
	s.WriteString("def")
	n.WhitespaceAfterDef.Codegen(s)
	n.Name.Codegen(s)
	n.WhitespaceBeforeParams.Codegen(s)
	s.WriteString("(")
	n.Params.Codegen(s)
	n.WhitespaceAfterParams.Codegen(s)
	s.WriteString(")")
	if n.Returns != nil {
		n.Returns.Codegen(s)
	}
	n.WhitespaceBeforeColon.Codegen(s)
	n.Colon.Codegen(s)
	n.Body.Codegen(s)
}

// Else is the trailing `else:` clause shared by If, While, For, and Try.
type Else struct {
	LeadingLines          []EmptyLine
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
}

func (e *Else) Codegen(s *codegen.State) {
	codegenLeadingLines(s, e.LeadingLines)
	s.WriteIndent()
	s.WriteString("else")
	e.WhitespaceBeforeColon.Codegen(s)
	e.Colon.Codegen(s)
	e.Body.Codegen(s)
}

// If is `if test: body [elif test: body]* [else: body]`. OrElse is nil, an
// *If (representing `elif`), or an *Else.
type If struct {
	LeadingLines          []EmptyLine
	IsElif                bool // selects the "elif" vs "if" keyword spelling
	WhitespaceBeforeTest  *WhitespaceField
	Test                  Expression
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
	OrElse                Node
}

func (*If) isStatement() {}

func (n *If) Codegen(s *codegen.State) {
	codegenLeadingLines(s, n.LeadingLines)
	s.WriteIndent()
	if n.IsElif {
		s.WriteString("elif")
	} else {
		s.WriteString("if")
	}
	n.WhitespaceBeforeTest.Codegen(s)
	n.Test.Codegen(s)
	n.WhitespaceBeforeColon.Codegen(s)
	n.Colon.Codegen(s)
	n.Body.Codegen(s)
	if n.OrElse != nil {
		n.OrElse.Codegen(s)
	}
}

// While is `while test: body [else: body]`.
type While struct {
	LeadingLines          []EmptyLine
	WhitespaceAfterWhile  *WhitespaceField
	Test                  Expression
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
	OrElse                *Else
}

func (*While) isStatement() {}

func (n *While) Codegen(s *codegen.State) {
	codegenLeadingLines(s, n.LeadingLines)
	s.WriteIndent()
	s.WriteString("while")
	n.WhitespaceAfterWhile.Codegen(s)
	n.Test.Codegen(s)
	n.WhitespaceBeforeColon.Codegen(s)
	n.Colon.Codegen(s)
	n.Body.Codegen(s)
	if n.OrElse != nil {
		n.OrElse.Codegen(s)
	}
}

// For is `[async] for target in iter: body [else: body]`.
type For struct {
	LeadingLines         []EmptyLine
	Asynchronous         *Asynchronous
	WhitespaceAfterFor   *WhitespaceField
	Target               Expression
	WhitespaceBeforeIn   *WhitespaceField
	WhitespaceAfterIn    *WhitespaceField
	Iter                 Expression
	WhitespaceBeforeColon *WhitespaceField
	Colon                Colon
	Body                 Suite
	OrElse               *Else
}

func (*For) isStatement() {}

func (n *For) Codegen(s *codegen.State) {
	codegenLeadingLines(s, n.LeadingLines)
	s.WriteIndent()
	n.Asynchronous.Codegen(s)
	s.WriteString("for")
	n.WhitespaceAfterFor.Codegen(s)
	n.Target.Codegen(s)
	n.WhitespaceBeforeIn.Codegen(s)
	s.WriteString("in")
	n.WhitespaceAfterIn.Codegen(s)
	n.Iter.Codegen(s)
	n.WhitespaceBeforeColon.Codegen(s)
	n.Colon.Codegen(s)
	n.Body.Codegen(s)
	if n.OrElse != nil {
		n.OrElse.Codegen(s)
	}
}

// WithItem is one `ctx [as target]` entry of a `with` statement.
type WithItem struct {
	Item   Expression
	AsName *AsName
	Comma  *Comma
}

func (wi *WithItem) Codegen(s *codegen.State) {
	wi.Item.Codegen(s)
	if wi.AsName != nil {
		wi.AsName.Codegen(s)
	}
	if wi.Comma != nil {
		wi.Comma.Codegen(s)
	}
}

// With is `[async] with item[, item]*: body`. The parenthesized
// `with (a, b):` form is recorded via non-nil Lpar/RparWhitespace.
type With struct {
	LeadingLines          []EmptyLine
	Asynchronous          *Asynchronous
	WhitespaceAfterWith   *WhitespaceField
	LparWhitespace        *WhitespaceField
	Items                 []*WithItem
	RparWhitespace        *WhitespaceField
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
}

func (*With) isStatement() {}

func (n *With) Codegen(s *codegen.State) {
	codegenLeadingLines(s, n.LeadingLines)
	s.WriteIndent()
	n.Asynchronous.Codegen(s)
	s.WriteString("with")
	n.WhitespaceAfterWith.Codegen(s)
	if n.LparWhitespace != nil {
		s.WriteString("(")
		n.LparWhitespace.Codegen(s)
	}
	for _, it := range n.Items {
		it.Codegen(s)
	}
	if n.RparWhitespace != nil {
		n.RparWhitespace.Codegen(s)
		s.WriteString(")")
	}
	n.WhitespaceBeforeColon.Codegen(s)
	n.Colon.Codegen(s)
	n.Body.Codegen(s)
}

// ExceptHandler is `except [type [as name]]: body`.
type ExceptHandler struct {
	LeadingLines          []EmptyLine
	WhitespaceAfterExcept *WhitespaceField // present iff Type != nil
	Type                  Expression
	Name                  *AsName
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
}

func (eh *ExceptHandler) Codegen(s *codegen.State) {
	codegenLeadingLines(s, eh.LeadingLines)
	s.WriteIndent()
	s.WriteString("except")
	if eh.Type != nil {
		eh.WhitespaceAfterExcept.Codegen(s)
		eh.Type.Codegen(s)
		if eh.Name != nil {
			eh.Name.Codegen(s)
		}
	}
	eh.WhitespaceBeforeColon.Codegen(s)
	eh.Colon.Codegen(s)
	eh.Body.Codegen(s)
}

// ExceptStarHandler is `except* type [as name]: body` (exception groups).
type ExceptStarHandler struct {
	LeadingLines           []EmptyLine
	WhitespaceAfterExcept  *WhitespaceField
	WhitespaceAfterStar    *WhitespaceField
	Type                   Expression
	Name                   *AsName
	WhitespaceBeforeColon  *WhitespaceField
	Colon                  Colon
	Body                   Suite
}

func (eh *ExceptStarHandler) Codegen(s *codegen.State) {
	codegenLeadingLines(s, eh.LeadingLines)
	s.WriteIndent()
	s.WriteString("except")
	eh.WhitespaceAfterExcept.Codegen(s)
	s.WriteString("*")
	eh.WhitespaceAfterStar.Codegen(s)
	eh.Type.Codegen(s)
	if eh.Name != nil {
		eh.Name.Codegen(s)
	}
	eh.WhitespaceBeforeColon.Codegen(s)
	eh.Colon.Codegen(s)
	eh.Body.Codegen(s)
}

// Finally is the trailing `finally:` clause of a Try.
type Finally struct {
	LeadingLines          []EmptyLine
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
}

func (f *Finally) Codegen(s *codegen.State) {
	codegenLeadingLines(s, f.LeadingLines)
	s.WriteIndent()
	s.WriteString("finally")
	f.WhitespaceBeforeColon.Codegen(s)
	f.Colon.Codegen(s)
	f.Body.Codegen(s)
}

// Try is `try: body handler+ [else:] [finally:]`. Handlers holds either
// ExceptHandler or ExceptStarHandler entries uniformly via the Node
// interface; a Try must not mix the two forms (enforced by the grammar, not
// this type).
type Try struct {
	LeadingLines          []EmptyLine
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
	Handlers              []Node
	OrElse                *Else
	Finalbody             *Finally
}

func (*Try) isStatement() {}

func (n *Try) Codegen(s *codegen.State) {
	codegenLeadingLines(s, n.LeadingLines)
	s.WriteIndent()
	s.WriteString("try")
	n.WhitespaceBeforeColon.Codegen(s)
	n.Colon.Codegen(s)
	n.Body.Codegen(s)
	for _, h := range n.Handlers {
		h.Codegen(s)
	}
	if n.OrElse != nil {
		n.OrElse.Codegen(s)
	}
	if n.Finalbody != nil {
		n.Finalbody.Codegen(s)
	}
}

// ClassDef is `[decorators] class name[(bases, keywords)]: body`.
type ClassDef struct {
	LeadingLines          []EmptyLine
	Decorators            []*Decorator
	LinesAfterDecorators  []EmptyLine
	WhitespaceAfterClass  *WhitespaceField
	Name                  *Name
	LparWhitespace        *WhitespaceField // non-nil iff a "(" follows the name, even if empty
	Bases                 []*Arg
	RparWhitespace        *WhitespaceField
	WhitespaceBeforeColon *WhitespaceField
	Colon                 Colon
	Body                  Suite
}

func (*ClassDef) isStatement() {}

func (n *ClassDef) Codegen(s *codegen.State) {
	codegenDecorators(s, n.LeadingLines, n.Decorators, n.LinesAfterDecorators)
	s.WriteIndent()
	s.WriteString("class")
	n.WhitespaceAfterClass.Codegen(s)
	n.Name.Codegen(s)
	if n.LparWhitespace != nil {
		s.WriteString("(")
		n.LparWhitespace.Codegen(s)
		for _, b := range n.Bases {
			b.Codegen(s)
		}
		n.RparWhitespace.Codegen(s)
		s.WriteString(")")
	}
	n.WhitespaceBeforeColon.Codegen(s)
	n.Colon.Codegen(s)
	n.Body.Codegen(s)
}

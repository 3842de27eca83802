package tree

import "github.com/zsol/libcst/internal/codegen"

// SmallStatement is one of the statement kinds that may appear inside a
// SimpleStatementLine, separated from its neighbors by `;` (spec.md §3).
type SmallStatement interface {
	Node
	isSmallStatement()
}

func codegenSemicolon(s *codegen.State, sc *Semicolon) {
	if sc != nil {
		sc.Codegen(s)
	}
}

// Pass is the bare `pass` statement.
type Pass struct {
	Semicolon *Semicolon
}

func (*Pass) isSmallStatement() {}

func (n *Pass) Codegen(s *codegen.State) {
	s.WriteString("pass")
	codegenSemicolon(s, n.Semicolon)
}

// Break is the bare `break` statement.
type Break struct {
	Semicolon *Semicolon
}

func (*Break) isSmallStatement() {}

func (n *Break) Codegen(s *codegen.State) {
	s.WriteString("break")
	codegenSemicolon(s, n.Semicolon)
}

// Continue is the bare `continue` statement.
type Continue struct {
	Semicolon *Semicolon
}

func (*Continue) isSmallStatement() {}

func (n *Continue) Codegen(s *codegen.State) {
	s.WriteString("continue")
	codegenSemicolon(s, n.Semicolon)
}

// Return is `return [value]`.
type Return struct {
	WhitespaceAfterReturn *WhitespaceField // only present when Value != nil
	Value                 Expression
	Semicolon             *Semicolon
}

func (*Return) isSmallStatement() {}

func (n *Return) Codegen(s *codegen.State) {
	s.WriteString("return")
	if n.Value != nil {
		n.WhitespaceAfterReturn.Codegen(s)
		n.Value.Codegen(s)
	}
	codegenSemicolon(s, n.Semicolon)
}

// Expr is a bare expression used as a statement (spec.md §3's `Expr`),
// e.g. a docstring, a call for its side effects, or `...`.
type Expr struct {
	Value     Expression
	Semicolon *Semicolon
}

func (*Expr) isSmallStatement() {}

func (n *Expr) Codegen(s *codegen.State) {
	n.Value.Codegen(s)
	codegenSemicolon(s, n.Semicolon)
}

// Assert is `assert test[, msg]`.
type Assert struct {
	WhitespaceAfterAssert *WhitespaceField
	Test                  Expression
	Comma                 *Comma
	Msg                   Expression // nil when no message clause
	Semicolon             *Semicolon
}

func (*Assert) isSmallStatement() {}

func (n *Assert) Codegen(s *codegen.State) {
	s.WriteString("assert")
	n.WhitespaceAfterAssert.Codegen(s)
	n.Test.Codegen(s)
	if n.Msg != nil {
		n.Comma.Codegen(s)
		n.Msg.Codegen(s)
	}
	codegenSemicolon(s, n.Semicolon)
}

// AsName is the `as name` clause shared by import aliases, `with` items,
// and `except ... as name`.
type AsName struct {
	WhitespaceBeforeAs *WhitespaceField
	WhitespaceAfterAs  *WhitespaceField
	Name               Expression // *Name for imports/with, *Name for except targets
}

func (a *AsName) Codegen(s *codegen.State) {
	a.WhitespaceBeforeAs.Codegen(s)
	s.WriteString("as")
	a.WhitespaceAfterAs.Codegen(s)
	a.Name.Codegen(s)
}

// ImportAlias is one `module.path [as name]` entry of an `import` or
// `from ... import` statement.
type ImportAlias struct {
	Name    Expression // *Name, or an *Attribute chain for dotted paths
	AsName  *AsName
	Comma   *Comma
}

func (ia *ImportAlias) Codegen(s *codegen.State) {
	ia.Name.Codegen(s)
	if ia.AsName != nil {
		ia.AsName.Codegen(s)
	}
	if ia.Comma != nil {
		ia.Comma.Codegen(s)
	}
}

// Import is `import module[.sub][ as name][, ...]`.
type Import struct {
	WhitespaceAfterImport *WhitespaceField
	Names                 []*ImportAlias
	Semicolon             *Semicolon
}

func (*Import) isSmallStatement() {}

func (n *Import) Codegen(s *codegen.State) {
	s.WriteString("import")
	n.WhitespaceAfterImport.Codegen(s)
	for _, ia := range n.Names {
		ia.Codegen(s)
	}
	codegenSemicolon(s, n.Semicolon)
}

// Dot is one `.` of a relative-import prefix (`from . import x`,
// `from ..pkg import y`); each dot carries its own whitespace so runs of
// dots and the ellipsis token `...` both round-trip correctly.
type Dot struct {
	WhitespaceAfter *WhitespaceField
}

func (d *Dot) Codegen(s *codegen.State) {
	s.WriteString(".")
	if d.WhitespaceAfter != nil {
		d.WhitespaceAfter.Codegen(s)
	}
}

// ImportFrom is `from [dots][module] import (names | *)`.
type ImportFrom struct {
	WhitespaceAfterFrom    *WhitespaceField
	RelativeDots           []*Dot
	Module                 Expression // nil for `from . import x`
	WhitespaceBeforeImport *WhitespaceField
	WhitespaceAfterImport  *WhitespaceField
	LparWhitespace         *WhitespaceField // non-nil iff the import list is parenthesized
	Names                  []*ImportAlias   // nil when Star is true
	Star                   bool
	RparWhitespace         *WhitespaceField
	Semicolon              *Semicolon
}

func (*ImportFrom) isSmallStatement() {}

func (n *ImportFrom) Codegen(s *codegen.State) {
	s.WriteString("from")
	n.WhitespaceAfterFrom.Codegen(s)
	for _, d := range n.RelativeDots {
		d.Codegen(s)
	}
	if n.Module != nil {
		n.Module.Codegen(s)
	}
	n.WhitespaceBeforeImport.Codegen(s)
	s.WriteString("import")
	n.WhitespaceAfterImport.Codegen(s)
	if n.LparWhitespace != nil {
		s.WriteString("(")
		n.LparWhitespace.Codegen(s)
	}
	if n.Star {
		s.WriteString("*")
	} else {
		for _, ia := range n.Names {
			ia.Codegen(s)
		}
	}
	if n.RparWhitespace != nil {
		n.RparWhitespace.Codegen(s)
		s.WriteString(")")
	}
	codegenSemicolon(s, n.Semicolon)
}

// NameItem is one comma-separated name in `global`/`nonlocal`.
type NameItem struct {
	Name  *Name
	Comma *Comma
}

func (ni *NameItem) Codegen(s *codegen.State) {
	ni.Name.Codegen(s)
	if ni.Comma != nil {
		ni.Comma.Codegen(s)
	}
}

// Global is `global name[, ...]`.
type Global struct {
	WhitespaceAfterGlobal *WhitespaceField
	Names                 []*NameItem
	Semicolon             *Semicolon
}

func (*Global) isSmallStatement() {}

func (n *Global) Codegen(s *codegen.State) {
	s.WriteString("global")
	n.WhitespaceAfterGlobal.Codegen(s)
	for _, ni := range n.Names {
		ni.Codegen(s)
	}
	codegenSemicolon(s, n.Semicolon)
}

// Nonlocal is `nonlocal name[, ...]`.
type Nonlocal struct {
	WhitespaceAfterNonlocal *WhitespaceField
	Names                   []*NameItem
	Semicolon               *Semicolon
}

func (*Nonlocal) isSmallStatement() {}

func (n *Nonlocal) Codegen(s *codegen.State) {
	s.WriteString("nonlocal")
	n.WhitespaceAfterNonlocal.Codegen(s)
	for _, ni := range n.Names {
		ni.Codegen(s)
	}
	codegenSemicolon(s, n.Semicolon)
}

// Del is `del target`.
type Del struct {
	WhitespaceAfterDel *WhitespaceField
	Target             Expression
	Semicolon          *Semicolon
}

func (*Del) isSmallStatement() {}

func (n *Del) Codegen(s *codegen.State) {
	s.WriteString("del")
	n.WhitespaceAfterDel.Codegen(s)
	n.Target.Codegen(s)
	codegenSemicolon(s, n.Semicolon)
}

// From is the `from cause` clause of `raise exc from cause`.
type From struct {
	WhitespaceBeforeFrom *WhitespaceField
	WhitespaceAfterFrom  *WhitespaceField
	Item                 Expression
}

func (f *From) Codegen(s *codegen.State) {
	f.WhitespaceBeforeFrom.Codegen(s)
	s.WriteString("from")
	f.WhitespaceAfterFrom.Codegen(s)
	f.Item.Codegen(s)
}

// Raise is `raise [exc [from cause]]`.
type Raise struct {
	WhitespaceAfterRaise *WhitespaceField // present iff Exc != nil
	Exc                  Expression
	Cause                *From
	Semicolon            *Semicolon
}

func (*Raise) isSmallStatement() {}

func (n *Raise) Codegen(s *codegen.State) {
	s.WriteString("raise")
	if n.Exc != nil {
		n.WhitespaceAfterRaise.Codegen(s)
		n.Exc.Codegen(s)
		if n.Cause != nil {
			n.Cause.Codegen(s)
		}
	}
	codegenSemicolon(s, n.Semicolon)
}

// AssignTarget is one `target =` in a (possibly chained) assignment
// `a = b = value`.
type AssignTarget struct {
	Target           Expression
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
}

func (at *AssignTarget) Codegen(s *codegen.State) {
	at.Target.Codegen(s)
	at.WhitespaceBefore.Codegen(s)
	s.WriteString("=")
	at.WhitespaceAfter.Codegen(s)
}

// Assign is `target1 = target2 = ... = value`.
type Assign struct {
	Targets   []*AssignTarget
	Value     Expression
	Semicolon *Semicolon
}

func (*Assign) isSmallStatement() {}

func (n *Assign) Codegen(s *codegen.State) {
	for _, t := range n.Targets {
		t.Codegen(s)
	}
	n.Value.Codegen(s)
	codegenSemicolon(s, n.Semicolon)
}

// AugOp is the closed set of augmented-assignment operator spellings.
type AugOp string

const (
	AugAdd       AugOp = "+="
	AugSubtract  AugOp = "-="
	AugMultiply  AugOp = "*="
	AugDivide    AugOp = "/="
	AugFloorDiv  AugOp = "//="
	AugModulo    AugOp = "%="
	AugMatMult   AugOp = "@="
	AugPower     AugOp = "**="
	AugBitOr     AugOp = "|="
	AugBitXor    AugOp = "^="
	AugBitAnd    AugOp = "&="
	AugLeftShift AugOp = "<<="
	AugRightShift AugOp = ">>="
)

// AugAssign is `target op= value`, e.g. `x += 1`.
type AugAssign struct {
	Target           Expression
	Operator         AugOp
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
	Value            Expression
	Semicolon        *Semicolon
}

func (*AugAssign) isSmallStatement() {}

func (n *AugAssign) Codegen(s *codegen.State) {
	n.Target.Codegen(s)
	n.WhitespaceBefore.Codegen(s)
	s.WriteString(string(n.Operator))
	n.WhitespaceAfter.Codegen(s)
	n.Value.Codegen(s)
	codegenSemicolon(s, n.Semicolon)
}

// AnnAssign is `target: annotation[ = value]`.
type AnnAssign struct {
	Target     Expression
	Annotation *Annotation
	Equal      *AssignEqual // present iff Value != nil
	Value      Expression
	Semicolon  *Semicolon
}

func (*AnnAssign) isSmallStatement() {}

func (n *AnnAssign) Codegen(s *codegen.State) {
	n.Target.Codegen(s)
	n.Annotation.Codegen(s)
	if n.Value != nil {
		n.Equal.Codegen(s)
		n.Value.Codegen(s)
	}
	codegenSemicolon(s, n.Semicolon)
}

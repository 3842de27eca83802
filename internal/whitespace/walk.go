package whitespace

import "github.com/zsol/libcst/internal/tree"

// statement inflates one Statement and everything it owns: its
// leading_lines, its own whitespace fields, and its Suite.
func (c *ctx) statement(stmt tree.Node) *Error {
	leading, err := c.leadingLines(stmt)
	if err != nil {
		return err
	}
	switch n := stmt.(type) {
	case *tree.SimpleStatementLine:
		n.LeadingLines = leading
		for _, small := range n.Body {
			if err := c.smallStatement(small); err != nil {
				return err
			}
		}
		tw, err := c.trailingFor(n)
		if err != nil {
			return err
		}
		n.TrailingWhitespace = tw
	case *tree.FunctionDef:
		n.LeadingLines = leading
		if err := c.decorators(n.Decorators); err != nil {
			return err
		}
		if linesAfter, err := c.linesAfterDecorators(n); err != nil {
			return err
		} else {
			n.LinesAfterDecorators = linesAfter
		}
		if err := c.field(asyncWS(n.Asynchronous)); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterDef); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeParams); err != nil {
			return err
		}
		if err := c.parameters(n.Params); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterParams); err != nil {
			return err
		}
		if n.Returns != nil {
			if err := c.annotation(n.Returns); err != nil {
				return err
			}
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.field(n.Colon.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.suite(n.Body); err != nil {
			return err
		}
	case *tree.If:
		n.LeadingLines = leading
		if err := c.field(n.WhitespaceBeforeTest); err != nil {
			return err
		}
		if err := c.expression(n.Test); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.field(n.Colon.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.suite(n.Body); err != nil {
			return err
		}
		if n.OrElse != nil {
			if err := c.statement(n.OrElse); err != nil {
				return err
			}
		}
	case *tree.Else:
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.field(n.Colon.WhitespaceBefore); err != nil {
			return err
		}
		return c.suite(n.Body)
	case *tree.While:
		n.LeadingLines = leading
		if err := c.field(n.WhitespaceAfterWhile); err != nil {
			return err
		}
		if err := c.expression(n.Test); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.suite(n.Body); err != nil {
			return err
		}
		if n.OrElse != nil {
			if err := c.statement(n.OrElse); err != nil {
				return err
			}
		}
	case *tree.For:
		n.LeadingLines = leading
		if err := c.field(asyncWS(n.Asynchronous)); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterFor); err != nil {
			return err
		}
		if err := c.expression(n.Target); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeIn); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterIn); err != nil {
			return err
		}
		if err := c.expression(n.Iter); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.suite(n.Body); err != nil {
			return err
		}
		if n.OrElse != nil {
			if err := c.statement(n.OrElse); err != nil {
				return err
			}
		}
	case *tree.With:
		n.LeadingLines = leading
		if err := c.field(asyncWS(n.Asynchronous)); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterWith); err != nil {
			return err
		}
		if err := c.field(n.LparWhitespace); err != nil {
			return err
		}
		for _, it := range n.Items {
			if err := c.expression(it.Item); err != nil {
				return err
			}
			if it.AsName != nil {
				if err := c.field(it.AsName.WhitespaceBeforeAs); err != nil {
					return err
				}
				if err := c.field(it.AsName.WhitespaceAfterAs); err != nil {
					return err
				}
				if err := c.expression(it.AsName.Name); err != nil {
					return err
				}
			}
			if err := c.comma(it.Comma); err != nil {
				return err
			}
		}
		if err := c.field(n.RparWhitespace); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.suite(n.Body); err != nil {
			return err
		}
	case *tree.Try:
		n.LeadingLines = leading
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.suite(n.Body); err != nil {
			return err
		}
		for _, h := range n.Handlers {
			if err := c.statement(h); err != nil {
				return err
			}
		}
		if n.OrElse != nil {
			if err := c.statement(n.OrElse); err != nil {
				return err
			}
		}
		if n.Finalbody != nil {
			if err := c.statement(n.Finalbody); err != nil {
				return err
			}
		}
	case *tree.ExceptHandler:
		n.LeadingLines = leading
		if n.Type != nil {
			if err := c.field(n.WhitespaceAfterExcept); err != nil {
				return err
			}
			if err := c.expression(n.Type); err != nil {
				return err
			}
			if n.Name != nil {
				if err := c.field(n.Name.WhitespaceBeforeAs); err != nil {
					return err
				}
				if err := c.field(n.Name.WhitespaceAfterAs); err != nil {
					return err
				}
			}
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		return c.suite(n.Body)
	case *tree.ExceptStarHandler:
		n.LeadingLines = leading
		if err := c.field(n.WhitespaceAfterExcept); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterStar); err != nil {
			return err
		}
		if err := c.expression(n.Type); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		return c.suite(n.Body)
	case *tree.Finally:
		n.LeadingLines = leading
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		return c.suite(n.Body)
	case *tree.ClassDef:
		n.LeadingLines = leading
		if err := c.decorators(n.Decorators); err != nil {
			return err
		}
		if linesAfter, err := c.linesAfterDecorators(n); err != nil {
			return err
		} else {
			n.LinesAfterDecorators = linesAfter
		}
		if err := c.field(n.WhitespaceAfterClass); err != nil {
			return err
		}
		if n.LparWhitespace != nil {
			if err := c.field(n.LparWhitespace); err != nil {
				return err
			}
			for _, a := range n.Bases {
				if err := c.arg(a); err != nil {
					return err
				}
			}
			if err := c.field(n.RparWhitespace); err != nil {
				return err
			}
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.suite(n.Body); err != nil {
			return err
		}
	}
	return nil
}

func asyncWS(a *tree.Asynchronous) *tree.WhitespaceField {
	if a == nil {
		return nil
	}
	return a.WhitespaceAfter
}

func (c *ctx) linesAfterDecorators(node tree.Node) ([]tree.EmptyLine, *Error) {
	raw, ok := c.rt.LinesAfterRaw[node]
	if !ok {
		return nil, nil
	}
	return c.emptyLines(raw.ByteOffset, nil)
}

func (c *ctx) decorators(decorators []*tree.Decorator) *Error {
	for _, d := range decorators {
		if err := c.field(d.WhitespaceAfterAt); err != nil {
			return err
		}
		if err := c.expression(d.Decorator); err != nil {
			return err
		}
		tw, err := c.trailingFor(d)
		if err != nil {
			return err
		}
		d.TrailingWhitespace = tw
	}
	return nil
}

func (c *ctx) suite(s tree.Suite) *Error {
	switch n := s.(type) {
	case *tree.IndentedBlock:
		tw, err := c.trailingFor(n)
		if err != nil {
			return err
		}
		n.Header = tw
		for _, stmt := range n.Body {
			if err := c.statement(stmt); err != nil {
				return err
			}
		}
		if raw, ok := c.rt.FooterRaw[tree.Node(n)]; ok {
			indent := raw.AbsoluteIndent
			lines, err := c.emptyLines(raw.ByteOffset, &indent)
			if err != nil {
				return err
			}
			n.Footer = lines
		}
	case *tree.SimpleStatementSuite:
		if err := c.field(n.LeadingWhitespace); err != nil {
			return err
		}
		for _, small := range n.Body {
			if err := c.smallStatement(small); err != nil {
				return err
			}
		}
		tw, err := c.trailingFor(n)
		if err != nil {
			return err
		}
		n.TrailingWhitespace = tw
	}
	return nil
}

// trailingFor inflates the TrailingWhitespace owned by node from its side
// table entry. A missing entry (a node this build never registers one for)
// yields the zero TrailingWhitespace rather than an error, since an absent
// raw offset is a grammar omission, not a malformed-input condition.
func (c *ctx) trailingFor(node tree.Node) (tree.TrailingWhitespace, *Error) {
	raw, ok := c.rt.TrailingRaw[node]
	if !ok {
		return tree.TrailingWhitespace{}, nil
	}
	return c.trailingWhitespace(raw.ByteOffset)
}

func (c *ctx) comma(cm *tree.Comma) *Error {
	if cm == nil {
		return nil
	}
	if err := c.field(cm.WhitespaceBefore); err != nil {
		return err
	}
	return c.field(cm.WhitespaceAfter)
}

func (c *ctx) annotation(a *tree.Annotation) *Error {
	if a == nil {
		return nil
	}
	if err := c.field(a.WhitespaceBefore); err != nil {
		return err
	}
	if err := c.field(a.WhitespaceAfter); err != nil {
		return err
	}
	return c.expression(a.Value)
}

func (c *ctx) parameters(p *tree.Parameters) *Error {
	if p == nil {
		return nil
	}
	for _, param := range p.PosOnlyParams {
		if err := c.param(param); err != nil {
			return err
		}
	}
	if p.PosOnlyInd != nil {
		if err := c.comma(p.PosOnlyInd.Comma); err != nil {
			return err
		}
		if err := c.field(p.PosOnlyInd.WhitespaceAfter); err != nil {
			return err
		}
	}
	for _, param := range p.Params {
		if err := c.param(param); err != nil {
			return err
		}
	}
	switch star := p.StarArg.(type) {
	case *tree.ParamStar:
		if err := c.comma(star.Comma); err != nil {
			return err
		}
	case *tree.Param:
		if err := c.param(star); err != nil {
			return err
		}
	}
	for _, param := range p.KwonlyParams {
		if err := c.param(param); err != nil {
			return err
		}
	}
	if p.StarKwarg != nil {
		if err := c.param(p.StarKwarg); err != nil {
			return err
		}
	}
	return nil
}

func (c *ctx) param(p *tree.Param) *Error {
	if err := c.field(p.WhitespaceAfterStar); err != nil {
		return err
	}
	if err := c.expression(p.Name); err != nil {
		return err
	}
	if err := c.annotation(p.Annotation); err != nil {
		return err
	}
	if err := c.assignEqual(p.Equal); err != nil {
		return err
	}
	if p.Default != nil {
		if err := c.expression(p.Default); err != nil {
			return err
		}
	}
	if err := c.comma(p.Comma); err != nil {
		return err
	}
	return c.field(p.WhitespaceAfterParam)
}

func (c *ctx) asName(a *tree.AsName) *Error {
	if a == nil {
		return nil
	}
	if err := c.field(a.WhitespaceBeforeAs); err != nil {
		return err
	}
	if err := c.field(a.WhitespaceAfterAs); err != nil {
		return err
	}
	return c.expression(a.Name)
}

func (c *ctx) importAlias(ia *tree.ImportAlias) *Error {
	if err := c.expression(ia.Name); err != nil {
		return err
	}
	if err := c.asName(ia.AsName); err != nil {
		return err
	}
	return c.comma(ia.Comma)
}

func (c *ctx) nameItem(ni *tree.NameItem) *Error {
	if err := c.expression(ni.Name); err != nil {
		return err
	}
	return c.comma(ni.Comma)
}

func (c *ctx) smallStatement(ss tree.SmallStatement) *Error {
	switch n := ss.(type) {
	case *tree.Pass, *tree.Break, *tree.Continue:
		// no whitespace fields of their own beyond the trailing semicolon,
		// which SimpleStatementLine/decorator handling doesn't inflate here
	case *tree.Return:
		if n.Value != nil {
			if err := c.field(n.WhitespaceAfterReturn); err != nil {
				return err
			}
			return c.expression(n.Value)
		}
	case *tree.Expr:
		return c.expression(n.Value)
	case *tree.Assert:
		if err := c.field(n.WhitespaceAfterAssert); err != nil {
			return err
		}
		if err := c.expression(n.Test); err != nil {
			return err
		}
		if n.Msg != nil {
			if err := c.comma(n.Comma); err != nil {
				return err
			}
			return c.expression(n.Msg)
		}
	case *tree.Import:
		if err := c.field(n.WhitespaceAfterImport); err != nil {
			return err
		}
		for _, ia := range n.Names {
			if err := c.importAlias(ia); err != nil {
				return err
			}
		}
	case *tree.ImportFrom:
		if err := c.field(n.WhitespaceAfterFrom); err != nil {
			return err
		}
		for _, d := range n.RelativeDots {
			if err := c.field(d.WhitespaceAfter); err != nil {
				return err
			}
		}
		if n.Module != nil {
			if err := c.expression(n.Module); err != nil {
				return err
			}
		}
		if err := c.field(n.WhitespaceBeforeImport); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterImport); err != nil {
			return err
		}
		if n.LparWhitespace != nil {
			if err := c.field(n.LparWhitespace); err != nil {
				return err
			}
		}
		if !n.Star {
			for _, ia := range n.Names {
				if err := c.importAlias(ia); err != nil {
					return err
				}
			}
		}
		if n.RparWhitespace != nil {
			if err := c.field(n.RparWhitespace); err != nil {
				return err
			}
		}
	case *tree.Global:
		if err := c.field(n.WhitespaceAfterGlobal); err != nil {
			return err
		}
		for _, ni := range n.Names {
			if err := c.nameItem(ni); err != nil {
				return err
			}
		}
	case *tree.Nonlocal:
		if err := c.field(n.WhitespaceAfterNonlocal); err != nil {
			return err
		}
		for _, ni := range n.Names {
			if err := c.nameItem(ni); err != nil {
				return err
			}
		}
	case *tree.Del:
		if err := c.field(n.WhitespaceAfterDel); err != nil {
			return err
		}
		return c.expression(n.Target)
	case *tree.Raise:
		if n.Exc != nil {
			if err := c.field(n.WhitespaceAfterRaise); err != nil {
				return err
			}
			if err := c.expression(n.Exc); err != nil {
				return err
			}
			if n.Cause != nil {
				if err := c.field(n.Cause.WhitespaceBeforeFrom); err != nil {
					return err
				}
				if err := c.field(n.Cause.WhitespaceAfterFrom); err != nil {
					return err
				}
				return c.expression(n.Cause.Item)
			}
		}
	case *tree.Assign:
		for _, t := range n.Targets {
			if err := c.expression(t.Target); err != nil {
				return err
			}
			if err := c.field(t.WhitespaceBefore); err != nil {
				return err
			}
			if err := c.field(t.WhitespaceAfter); err != nil {
				return err
			}
		}
		return c.expression(n.Value)
	case *tree.AugAssign:
		if err := c.expression(n.Target); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfter); err != nil {
			return err
		}
		return c.expression(n.Value)
	case *tree.AnnAssign:
		if err := c.expression(n.Target); err != nil {
			return err
		}
		if err := c.annotation(n.Annotation); err != nil {
			return err
		}
		if n.Value != nil {
			if err := c.assignEqual(n.Equal); err != nil {
				return err
			}
			return c.expression(n.Value)
		}
	}
	return nil
}

// assignEqual inflates the whitespace on both sides of a keyword/parameter/
// annotated-assignment '=' (tree.AssignEqual); nil when the '=' itself is
// absent (a bare Param with no default, say).
func (c *ctx) assignEqual(e *tree.AssignEqual) *Error {
	if e == nil {
		return nil
	}
	if err := c.field(e.WhitespaceBefore); err != nil {
		return err
	}
	return c.field(e.WhitespaceAfter)
}

// parens inflates the matched-parenthesis whitespace every Expression
// variant carries via Parenthesizable (spec.md I3).
func (c *ctx) parens(e tree.Expression) *Error {
	for _, lp := range e.LParens() {
		if err := c.field(lp.WhitespaceAfter); err != nil {
			return err
		}
	}
	for _, rp := range e.RParens() {
		if err := c.field(rp.WhitespaceBefore); err != nil {
			return err
		}
	}
	return nil
}

func (c *ctx) compFor(cf *tree.CompFor) *Error {
	if cf == nil {
		return nil
	}
	if err := c.field(cf.WhitespaceBefore); err != nil {
		return err
	}
	if err := c.field(asyncWS(cf.Asynchronous)); err != nil {
		return err
	}
	if err := c.field(cf.WhitespaceAfterFor); err != nil {
		return err
	}
	if err := c.expression(cf.Target); err != nil {
		return err
	}
	if err := c.field(cf.WhitespaceBeforeIn); err != nil {
		return err
	}
	if err := c.field(cf.WhitespaceAfterIn); err != nil {
		return err
	}
	if err := c.expression(cf.Iter); err != nil {
		return err
	}
	for _, ci := range cf.Ifs {
		if err := c.field(ci.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.field(ci.WhitespaceAfterIf); err != nil {
			return err
		}
		if err := c.expression(ci.Test); err != nil {
			return err
		}
	}
	return c.compFor(cf.Inner)
}

func (c *ctx) subscriptElement(se *tree.SubscriptElement) *Error {
	switch sl := se.Slice.(type) {
	case *tree.Index:
		if err := c.expression(sl.Value); err != nil {
			return err
		}
	case *tree.Slice:
		if sl.Lower != nil {
			if err := c.expression(sl.Lower); err != nil {
				return err
			}
		}
		if err := c.field(sl.FirstColon.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.field(sl.FirstColon.WhitespaceAfter); err != nil {
			return err
		}
		if sl.Upper != nil {
			if err := c.expression(sl.Upper); err != nil {
				return err
			}
		}
		if sl.SecondColon != nil {
			if err := c.field(sl.SecondColon.WhitespaceBefore); err != nil {
				return err
			}
			if err := c.field(sl.SecondColon.WhitespaceAfter); err != nil {
				return err
			}
			if sl.Step != nil {
				if err := c.expression(sl.Step); err != nil {
					return err
				}
			}
		}
	}
	return c.comma(se.Comma)
}

// expression inflates every WhitespaceField and Parenthesizable wrapper
// reachable from e, recursing into sub-expressions.
func (c *ctx) expression(e tree.Expression) *Error {
	if e == nil {
		return nil
	}
	if err := c.parens(e); err != nil {
		return err
	}
	switch n := e.(type) {
	case *tree.Name, *tree.Integer, *tree.Float, *tree.Imaginary, *tree.SimpleString, *tree.Ellipsis:
		// literal tokens own no whitespace beyond their own parens
	case *tree.ConcatenatedString:
		if err := c.expression(n.Left); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBetween); err != nil {
			return err
		}
		return c.expression(n.Right)
	case *tree.UnaryOperation:
		if err := c.field(n.WhitespaceAfter); err != nil {
			return err
		}
		return c.expression(n.Expression)
	case *tree.BinaryOperation:
		if err := c.expression(n.Left); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfter); err != nil {
			return err
		}
		return c.expression(n.Right)
	case *tree.BooleanOperation:
		if err := c.expression(n.Left); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfter); err != nil {
			return err
		}
		return c.expression(n.Right)
	case *tree.Comparison:
		if err := c.expression(n.Head); err != nil {
			return err
		}
		for i := range n.Comparisons {
			ct := &n.Comparisons[i]
			if err := c.field(ct.WhitespaceBefore); err != nil {
				return err
			}
			if err := c.field(ct.WhitespaceAfter); err != nil {
				return err
			}
			if err := c.expression(ct.Comparator); err != nil {
				return err
			}
		}
	case *tree.Attribute:
		if err := c.expression(n.Value); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeDot); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterDot); err != nil {
			return err
		}
		return c.expression(n.Attr)
	case *tree.Starred:
		if err := c.field(n.WhitespaceAfterStar); err != nil {
			return err
		}
		if err := c.expression(n.Value); err != nil {
			return err
		}
		return c.comma(n.Comma)
	case *tree.Await:
		if err := c.field(n.WhitespaceAfterAwait); err != nil {
			return err
		}
		return c.expression(n.Expression)
	case *tree.NamedExpr:
		if err := c.expression(n.Target); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeWalrus); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterWalrus); err != nil {
			return err
		}
		return c.expression(n.Value)
	case *tree.IfExp:
		if err := c.expression(n.Body); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeIf); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterIf); err != nil {
			return err
		}
		if err := c.expression(n.Test); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeElse); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterElse); err != nil {
			return err
		}
		return c.expression(n.OrElse)
	case *tree.Lambda:
		if err := c.field(n.WhitespaceAfterLambda); err != nil {
			return err
		}
		if err := c.parameters(n.Params); err != nil {
			return err
		}
		if err := c.field(n.Colon.WhitespaceBefore); err != nil {
			return err
		}
		if err := c.field(n.Colon.WhitespaceAfter); err != nil {
			return err
		}
		return c.expression(n.Body)
	case *tree.Call:
		if err := c.expression(n.Func); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterFunc); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeArgs); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := c.arg(a); err != nil {
				return err
			}
		}
		return c.field(n.WhitespaceAfterArgs)
	case *tree.Subscript:
		if err := c.expression(n.Value); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterValue); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeSlice); err != nil {
			return err
		}
		for _, el := range n.Slice {
			if err := c.subscriptElement(el); err != nil {
				return err
			}
		}
		return c.field(n.WhitespaceAfterSlice)
	case *tree.Tuple:
		for _, el := range n.Elements {
			if err := c.element(el); err != nil {
				return err
			}
		}
	case *tree.List:
		if err := c.field(n.WhitespaceAfterBracket); err != nil {
			return err
		}
		for _, el := range n.Elements {
			if err := c.element(el); err != nil {
				return err
			}
		}
		return c.field(n.WhitespaceBeforeBracket)
	case *tree.Set:
		if err := c.field(n.WhitespaceAfterBrace); err != nil {
			return err
		}
		for _, el := range n.Elements {
			if err := c.element(el); err != nil {
				return err
			}
		}
		return c.field(n.WhitespaceBeforeBrace)
	case *tree.Dict:
		if err := c.field(n.WhitespaceAfterBrace); err != nil {
			return err
		}
		for _, el := range n.Elements {
			if err := c.dictElement(el); err != nil {
				return err
			}
		}
		return c.field(n.WhitespaceBeforeBrace)
	case *tree.ListComp:
		if err := c.field(n.WhitespaceAfterBracket); err != nil {
			return err
		}
		if err := c.expression(n.Elt); err != nil {
			return err
		}
		if err := c.compFor(n.For); err != nil {
			return err
		}
		return c.field(n.WhitespaceBeforeBracket)
	case *tree.SetComp:
		if err := c.field(n.WhitespaceAfterBrace); err != nil {
			return err
		}
		if err := c.expression(n.Elt); err != nil {
			return err
		}
		if err := c.compFor(n.For); err != nil {
			return err
		}
		return c.field(n.WhitespaceBeforeBrace)
	case *tree.DictComp:
		if err := c.field(n.WhitespaceAfterBrace); err != nil {
			return err
		}
		if err := c.expression(n.Key); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.field(n.WhitespaceAfterColon); err != nil {
			return err
		}
		if err := c.expression(n.Value); err != nil {
			return err
		}
		if err := c.compFor(n.For); err != nil {
			return err
		}
		return c.field(n.WhitespaceBeforeBrace)
	case *tree.GeneratorExp:
		if err := c.expression(n.Elt); err != nil {
			return err
		}
		return c.compFor(n.For)
	}
	return nil
}

func (c *ctx) element(el *tree.Element) *Error {
	if err := c.field(el.WhitespaceAfterStar); err != nil {
		return err
	}
	if err := c.expression(el.Value); err != nil {
		return err
	}
	return c.comma(el.Comma)
}

func (c *ctx) dictElement(d *tree.DictElement) *Error {
	if d.DoubleStar != "" {
		if err := c.field(d.WhitespaceAfterStar); err != nil {
			return err
		}
		if err := c.expression(d.Value); err != nil {
			return err
		}
	} else {
		if err := c.expression(d.Key); err != nil {
			return err
		}
		if err := c.field(d.WhitespaceBeforeColon); err != nil {
			return err
		}
		if err := c.field(d.WhitespaceAfterColon); err != nil {
			return err
		}
		if err := c.expression(d.Value); err != nil {
			return err
		}
	}
	return c.comma(d.Comma)
}

func (c *ctx) arg(a *tree.Arg) *Error {
	if err := c.field(a.WhitespaceAfterStar); err != nil {
		return err
	}
	if a.Keyword != nil {
		if err := c.expression(a.Keyword); err != nil {
			return err
		}
		if err := c.assignEqual(a.Equal); err != nil {
			return err
		}
	}
	if err := c.expression(a.Value); err != nil {
		return err
	}
	if err := c.field(a.WhitespaceAfterArg); err != nil {
		return err
	}
	return c.comma(a.Comma)
}

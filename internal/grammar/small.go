package grammar

import (
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
)

var augOps = map[string]tree.AugOp{
	"+=": tree.AugAdd, "-=": tree.AugSubtract, "*=": tree.AugMultiply, "/=": tree.AugDivide,
	"//=": tree.AugFloorDiv, "%=": tree.AugModulo, "@=": tree.AugMatMult, "**=": tree.AugPower,
	"|=": tree.AugBitOr, "^=": tree.AugBitXor, "&=": tree.AugBitAnd, "<<=": tree.AugLeftShift, ">>=": tree.AugRightShift,
}

func (p *parser) simpleStatementLine() (tree.Statement, *Error) {
	body, err := p.simpleStatementBody()
	if err != nil {
		return nil, err
	}
	n := &tree.SimpleStatementLine{Body: body}
	if p.peek().Kind == tokenizer.Newline {
		p.rt.TrailingRaw[tree.Node(n)] = p.peek().WhitespaceBefore.Raw
		p.advance()
	}
	return n, nil
}

func (p *parser) simpleStatementBody() ([]tree.SmallStatement, *Error) {
	var body []tree.SmallStatement
	for {
		small, err := p.smallStatement()
		if err != nil {
			return nil, err
		}
		if p.atOp(";") {
			sc := &tree.Semicolon{WhitespaceBefore: p.wsField()}
			p.advance()
			sc.WhitespaceAfter = p.wsField()
			setSemicolon(small, sc)
			body = append(body, small)
			if p.peek().Kind == tokenizer.Newline || p.peek().Kind == tokenizer.EndMarker || p.peek().Kind == tokenizer.Dedent {
				return body, nil
			}
			continue
		}
		body = append(body, small)
		return body, nil
	}
}

func setSemicolon(s tree.SmallStatement, sc *tree.Semicolon) {
	switch n := s.(type) {
	case *tree.Pass:
		n.Semicolon = sc
	case *tree.Break:
		n.Semicolon = sc
	case *tree.Continue:
		n.Semicolon = sc
	case *tree.Return:
		n.Semicolon = sc
	case *tree.Expr:
		n.Semicolon = sc
	case *tree.Assert:
		n.Semicolon = sc
	case *tree.Import:
		n.Semicolon = sc
	case *tree.ImportFrom:
		n.Semicolon = sc
	case *tree.Global:
		n.Semicolon = sc
	case *tree.Nonlocal:
		n.Semicolon = sc
	case *tree.Del:
		n.Semicolon = sc
	case *tree.Raise:
		n.Semicolon = sc
	case *tree.Assign:
		n.Semicolon = sc
	case *tree.AugAssign:
		n.Semicolon = sc
	case *tree.AnnAssign:
		n.Semicolon = sc
	}
}

func (p *parser) smallStatement() (tree.SmallStatement, *Error) {
	if p.peek().Kind == tokenizer.Keyword {
		switch p.peek().String {
		case "pass":
			p.advance()
			return &tree.Pass{}, nil
		case "break":
			p.advance()
			return &tree.Break{}, nil
		case "continue":
			p.advance()
			return &tree.Continue{}, nil
		case "return":
			p.advance()
			return p.returnStatement()
		case "raise":
			p.advance()
			return p.raiseStatement()
		case "global":
			p.advance()
			return p.globalOrNonlocal(true)
		case "nonlocal":
			p.advance()
			return p.globalOrNonlocal(false)
		case "del":
			p.advance()
			return p.delStatement()
		case "assert":
			p.advance()
			return p.assertStatement()
		case "import":
			p.advance()
			return p.importStatement()
		case "from":
			p.advance()
			return p.fromImportStatement()
		}
	}
	return p.exprOrAssignStatement()
}

func (p *parser) atEndOfSimpleStatement() bool {
	k := p.peek().Kind
	if k == tokenizer.Newline || k == tokenizer.EndMarker || k == tokenizer.Dedent {
		return true
	}
	return p.atOp(";")
}

func (p *parser) returnStatement() (tree.SmallStatement, *Error) {
	if p.atEndOfSimpleStatement() {
		return &tree.Return{}, nil
	}
	ws := p.wsField()
	val, err := p.testListStarExpr()
	if err != nil {
		return nil, err
	}
	return &tree.Return{WhitespaceAfterReturn: ws, Value: val}, nil
}

func (p *parser) raiseStatement() (tree.SmallStatement, *Error) {
	if p.atEndOfSimpleStatement() {
		return &tree.Raise{}, nil
	}
	ws := p.wsField()
	exc, err := p.test()
	if err != nil {
		return nil, err
	}
	n := &tree.Raise{WhitespaceAfterRaise: ws, Exc: exc}
	if p.atKeyword("from") {
		fromWS := p.wsField()
		p.advance()
		itemWS := p.wsField()
		item, err := p.test()
		if err != nil {
			return nil, err
		}
		n.Cause = &tree.From{WhitespaceBeforeFrom: fromWS, WhitespaceAfterFrom: itemWS, Item: item}
	}
	return n, nil
}

func (p *parser) globalOrNonlocal(isGlobal bool) (tree.SmallStatement, *Error) {
	ws := p.wsField()
	names, err := p.nameItemList()
	if err != nil {
		return nil, err
	}
	if isGlobal {
		return &tree.Global{WhitespaceAfterGlobal: ws, Names: names}, nil
	}
	return &tree.Nonlocal{WhitespaceAfterNonlocal: ws, Names: names}, nil
}

func (p *parser) nameItemList() ([]*tree.NameItem, *Error) {
	var out []*tree.NameItem
	for {
		if p.peek().Kind != tokenizer.Name {
			return nil, newError("name", p.pos())
		}
		ni := &tree.NameItem{Name: &tree.Name{Value: p.peek().String}}
		p.advance()
		if p.atOp(",") {
			commaWS := p.wsField()
			p.advance()
			ni.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
			out = append(out, ni)
			continue
		}
		out = append(out, ni)
		return out, nil
	}
}

func (p *parser) delStatement() (tree.SmallStatement, *Error) {
	ws := p.wsField()
	target, err := p.testListStarExpr()
	if err != nil {
		return nil, err
	}
	return &tree.Del{WhitespaceAfterDel: ws, Target: target}, nil
}

func (p *parser) assertStatement() (tree.SmallStatement, *Error) {
	ws := p.wsField()
	test, err := p.test()
	if err != nil {
		return nil, err
	}
	n := &tree.Assert{WhitespaceAfterAssert: ws, Test: test}
	if p.atOp(",") {
		commaWS := p.wsField()
		p.advance()
		n.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
		msg, err := p.test()
		if err != nil {
			return nil, err
		}
		n.Msg = msg
	}
	return n, nil
}

func (p *parser) dottedNameExpr() (tree.Expression, *Error) {
	if p.peek().Kind != tokenizer.Name {
		return nil, newError("name", p.pos())
	}
	var expr tree.Expression = &tree.Name{Value: p.peek().String}
	p.advance()
	for p.atOp(".") {
		dotBeforeWS := p.wsField()
		p.advance()
		attrWS := p.wsField()
		if p.peek().Kind != tokenizer.Name {
			return nil, newError("name after '.'", p.pos())
		}
		attr := &tree.Name{Value: p.peek().String}
		p.advance()
		expr = &tree.Attribute{Value: expr, WhitespaceBeforeDot: dotBeforeWS, WhitespaceAfterDot: attrWS, Attr: attr}
	}
	return expr, nil
}

func (p *parser) importAliasList(stopOp string) ([]*tree.ImportAlias, *Error) {
	var out []*tree.ImportAlias
	for {
		name, err := p.dottedNameExpr()
		if err != nil {
			return nil, err
		}
		ia := &tree.ImportAlias{Name: name}
		if p.atKeyword("as") {
			asWS := p.wsField()
			p.advance()
			nameWS := p.wsField()
			if p.peek().Kind != tokenizer.Name {
				return nil, newError("name after 'as'", p.pos())
			}
			asn := &tree.Name{Value: p.peek().String}
			p.advance()
			ia.AsName = &tree.AsName{WhitespaceBeforeAs: asWS, WhitespaceAfterAs: nameWS, Name: asn}
		}
		if p.atOp(",") {
			commaWS := p.wsField()
			p.advance()
			ia.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
			out = append(out, ia)
			if stopOp != "" && p.atOp(stopOp) {
				return out, nil
			}
			continue
		}
		out = append(out, ia)
		return out, nil
	}
}

func (p *parser) importStatement() (tree.SmallStatement, *Error) {
	ws := p.wsField()
	names, err := p.importAliasList("")
	if err != nil {
		return nil, err
	}
	return &tree.Import{WhitespaceAfterImport: ws, Names: names}, nil
}

func (p *parser) fromImportStatement() (tree.SmallStatement, *Error) {
	fromWS := p.wsField()
	var dots []*tree.Dot
	for p.atOp(".") || p.atOp("...") {
		op := p.peek().String
		n := len(op) / 1
		_ = n
		if op == "..." {
			afterWS := p.wsField()
			p.advance()
			dots = append(dots, &tree.Dot{}, &tree.Dot{}, &tree.Dot{WhitespaceAfter: afterWS})
			continue
		}
		afterWS := p.wsField()
		p.advance()
		dots = append(dots, &tree.Dot{WhitespaceAfter: afterWS})
	}
	n := &tree.ImportFrom{WhitespaceAfterFrom: fromWS, RelativeDots: dots}
	if !p.atKeyword("import") {
		mod, err := p.dottedNameExpr()
		if err != nil {
			return nil, err
		}
		n.Module = mod
	}
	importWS := p.wsField()
	if _, err := p.expectKeyword("import"); err != nil {
		return nil, err
	}
	n.WhitespaceBeforeImport = importWS
	n.WhitespaceAfterImport = p.wsField()
	if p.atOp("*") {
		p.advance()
		n.Star = true
		return n, nil
	}
	if p.atOp("(") {
		n.LparWhitespace = p.wsField()
		p.advance()
		names, err := p.importAliasList(")")
		if err != nil {
			return nil, err
		}
		n.Names = names
		n.RparWhitespace = p.wsField()
		if _, err := p.expectOp(")"); err != nil {
			return nil, err
		}
		return n, nil
	}
	names, err := p.importAliasList("")
	if err != nil {
		return nil, err
	}
	n.Names = names
	return n, nil
}

// exprOrAssignStatement handles Expr, Assign, AugAssign, and AnnAssign,
// which all begin with an arbitrary test/star-expr list and are only
// disambiguated by what follows it (spec.md §4.2).
func (p *parser) exprOrAssignStatement() (tree.SmallStatement, *Error) {
	first, err := p.testListStarExpr()
	if err != nil {
		return nil, err
	}
	if p.atOp(":") {
		colonBeforeWS := p.wsField()
		p.advance()
		colonAfterWS := p.wsField()
		annVal, err := p.test()
		if err != nil {
			return nil, err
		}
		ann := &tree.Annotation{Indicator: ":", WhitespaceBefore: colonBeforeWS, WhitespaceAfter: colonAfterWS, Value: annVal}
		n := &tree.AnnAssign{Target: first, Annotation: ann}
		if p.atOp("=") {
			eqWS := p.wsField()
			p.advance()
			afterWS := p.wsField()
			val, err := p.testListStarExpr()
			if err != nil {
				return nil, err
			}
			n.Equal = &tree.AssignEqual{WhitespaceBefore: eqWS, WhitespaceAfter: afterWS}
			n.Value = val
		}
		return n, nil
	}
	if op, ok := augOps[p.peek().String]; ok && p.peek().Kind == tokenizer.Op {
		ws := p.wsField()
		p.advance()
		valWS := p.wsField()
		val, err := p.testListStarExpr()
		if err != nil {
			return nil, err
		}
		return &tree.AugAssign{Target: first, Operator: op, WhitespaceBefore: ws, WhitespaceAfter: valWS, Value: val}, nil
	}
	if p.atOp("=") {
		var targets []*tree.AssignTarget
		cur := first
		for p.atOp("=") {
			eqBeforeWS := p.wsField()
			p.advance()
			eqAfterWS := p.wsField()
			targets = append(targets, &tree.AssignTarget{Target: cur, WhitespaceBefore: eqBeforeWS, WhitespaceAfter: eqAfterWS})
			next, err := p.testListStarExpr()
			if err != nil {
				return nil, err
			}
			cur = next
		}
		return &tree.Assign{Targets: targets, Value: cur}, nil
	}
	return &tree.Expr{Value: first}, nil
}

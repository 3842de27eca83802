package grammar

import (
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
)

func (p *parser) ifStatement(isElif bool) (tree.Statement, *Error) {
	p.advance() // 'if' / 'elif'
	testWS := p.wsField()
	test, err := p.namedExprTest()
	if err != nil {
		return nil, err
	}
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n := &tree.If{
		IsElif:                isElif,
		WhitespaceBeforeTest:  testWS,
		Test:                  test,
		WhitespaceBeforeColon: colonWS,
		Colon:                 colon,
		Body:                  body,
	}
	switch {
	case p.atKeyword("elif"):
		lead := p.consumeBlankLines()
		orElse, err := p.ifStatement(true)
		if err != nil {
			return nil, err
		}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(orElse)] = lead.Raw
		}
		n.OrElse = orElse
	case p.atKeyword("else"):
		lead := p.consumeBlankLines()
		elseClause, err := p.elseClause()
		if err != nil {
			return nil, err
		}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(elseClause)] = lead.Raw
		}
		n.OrElse = elseClause
	}
	return n, nil
}

func (p *parser) elseClause() (*tree.Else, *Error) {
	p.advance() // 'else'
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &tree.Else{WhitespaceBeforeColon: colonWS, Colon: colon, Body: body}, nil
}

func (p *parser) whileStatement() (tree.Statement, *Error) {
	p.advance() // 'while'
	testWS := p.wsField()
	test, err := p.namedExprTest()
	if err != nil {
		return nil, err
	}
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n := &tree.While{WhitespaceAfterWhile: testWS, Test: test, WhitespaceBeforeColon: colonWS, Colon: colon, Body: body}
	if p.atKeyword("else") {
		lead := p.consumeBlankLines()
		orElse, err := p.elseClause()
		if err != nil {
			return nil, err
		}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(orElse)] = lead.Raw
		}
		n.OrElse = orElse
	}
	return n, nil
}

func (p *parser) forStatement(async *tree.Asynchronous) (tree.Statement, *Error) {
	p.advance() // 'for'
	forWS := p.wsField()
	target, err := p.targetList()
	if err != nil {
		return nil, err
	}
	inWS, err := p.expectKeyword("in")
	if err != nil {
		return nil, err
	}
	iterWS := p.wsField()
	iter, err := p.testListStarExpr()
	if err != nil {
		return nil, err
	}
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n := &tree.For{
		Asynchronous: async, WhitespaceAfterFor: forWS, Target: target,
		WhitespaceBeforeIn: inWS, WhitespaceAfterIn: iterWS, Iter: iter,
		WhitespaceBeforeColon: colonWS, Colon: colon, Body: body,
	}
	if p.atKeyword("else") {
		lead := p.consumeBlankLines()
		orElse, err := p.elseClause()
		if err != nil {
			return nil, err
		}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(orElse)] = lead.Raw
		}
		n.OrElse = orElse
	}
	return n, nil
}

func (p *parser) withStatement(async *tree.Asynchronous) (tree.Statement, *Error) {
	p.advance() // 'with'
	withWS := p.wsField()
	var lpar, rpar *tree.WhitespaceField
	if p.atOp("(") {
		lpar = p.wsField()
		p.advance()
	}
	var items []*tree.WithItem
	for {
		item, err := p.test()
		if err != nil {
			return nil, err
		}
		wi := &tree.WithItem{Item: item}
		if p.atKeyword("as") {
			asWS := p.wsField()
			p.advance()
			nameWS := p.wsField()
			target, err := p.orTest()
			if err != nil {
				return nil, err
			}
			wi.AsName = &tree.AsName{WhitespaceBeforeAs: asWS, WhitespaceAfterAs: nameWS, Name: target}
		}
		if p.atOp(",") {
			commaWS := p.wsField()
			p.advance()
			wi.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
			items = append(items, wi)
			if p.atOp(":") || p.atOp(")") {
				break
			}
			continue
		}
		items = append(items, wi)
		break
	}
	if lpar != nil {
		rpar = p.wsField()
		if _, err := p.expectOp(")"); err != nil {
			return nil, err
		}
	}
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &tree.With{
		Asynchronous: async, WhitespaceAfterWith: withWS, LparWhitespace: lpar,
		Items: items, RparWhitespace: rpar, WhitespaceBeforeColon: colonWS, Colon: colon, Body: body,
	}, nil
}

func (p *parser) tryStatement() (tree.Statement, *Error) {
	p.advance() // 'try'
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n := &tree.Try{WhitespaceBeforeColon: colonWS, Colon: colon, Body: body}
	for p.atKeyword("except") {
		lead := p.consumeBlankLines()
		handler, err := p.exceptHandler()
		if err != nil {
			return nil, err
		}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(handler)] = lead.Raw
		}
		n.Handlers = append(n.Handlers, handler)
	}
	if p.atKeyword("else") {
		lead := p.consumeBlankLines()
		orElse, err := p.elseClause()
		if err != nil {
			return nil, err
		}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(orElse)] = lead.Raw
		}
		n.OrElse = orElse
	}
	if p.atKeyword("finally") {
		lead := p.consumeBlankLines()
		p.advance()
		fColonWS, fColon, err := p.colon()
		if err != nil {
			return nil, err
		}
		fBody, err := p.block()
		if err != nil {
			return nil, err
		}
		finally := &tree.Finally{WhitespaceBeforeColon: fColonWS, Colon: fColon, Body: fBody}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(finally)] = lead.Raw
		}
		n.Finalbody = finally
	}
	return n, nil
}

func (p *parser) exceptHandler() (tree.Node, *Error) {
	p.advance() // 'except'
	if p.atOp("*") {
		starWS := p.wsField()
		p.advance()
		typeWS := p.wsField()
		typ, err := p.test()
		if err != nil {
			return nil, err
		}
		name, err := p.optionalAsName()
		if err != nil {
			return nil, err
		}
		colonWS, colon, err := p.colon()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &tree.ExceptStarHandler{
			WhitespaceAfterStar: typeWS, WhitespaceAfterExcept: starWS, Type: typ, Name: name,
			WhitespaceBeforeColon: colonWS, Colon: colon, Body: body,
		}, nil
	}
	n := &tree.ExceptHandler{}
	if !p.atOp(":") {
		n.WhitespaceAfterExcept = p.wsField()
		typ, err := p.test()
		if err != nil {
			return nil, err
		}
		n.Type = typ
		name, err := p.optionalAsName()
		if err != nil {
			return nil, err
		}
		n.Name = name
	}
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	n.WhitespaceBeforeColon = colonWS
	n.Colon = colon
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n.Body = body
	return n, nil
}

func (p *parser) optionalAsName() (*tree.AsName, *Error) {
	if !p.atKeyword("as") {
		return nil, nil
	}
	asWS := p.wsField()
	p.advance()
	nameWS := p.wsField()
	if p.peek().Kind != tokenizer.Name {
		return nil, newError("name after 'as'", p.pos())
	}
	name := &tree.Name{Value: p.peek().String}
	p.advance()
	return &tree.AsName{WhitespaceBeforeAs: asWS, WhitespaceAfterAs: nameWS, Name: name}, nil
}

func (p *parser) functionDef(async *tree.Asynchronous, decorators []*tree.Decorator) (tree.Statement, *Error) {
	if _, err := p.expectKeyword("def"); err != nil {
		return nil, err
	}
	nameWS := p.wsField()
	if p.peek().Kind != tokenizer.Name {
		return nil, newError("function name", p.pos())
	}
	name := &tree.Name{Value: p.peek().String}
	p.advance()
	parenWS := p.wsField()
	if _, err := p.expectOp("("); err != nil {
		return nil, err
	}
	params, err := p.parameters(")")
	if err != nil {
		return nil, err
	}
	afterParamsWS := p.wsField()
	if _, err := p.expectOp(")"); err != nil {
		return nil, err
	}
	var returns *tree.Annotation
	if p.atOp("->") {
		arrowWS := p.wsField()
		p.advance()
		valWS := p.wsField()
		val, err := p.test()
		if err != nil {
			return nil, err
		}
		returns = &tree.Annotation{Indicator: "->", WhitespaceBefore: arrowWS, WhitespaceAfter: valWS, Value: val}
	}
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &tree.FunctionDef{
		Decorators: decorators, Asynchronous: async,
		WhitespaceAfterDef: nameWS, Name: name,
		WhitespaceBeforeParams: parenWS, Params: params, WhitespaceAfterParams: afterParamsWS,
		Returns: returns, WhitespaceBeforeColon: colonWS, Colon: colon, Body: body,
	}, nil
}

func (p *parser) classDef(decorators []*tree.Decorator) (tree.Statement, *Error) {
	p.advance() // 'class'
	nameWS := p.wsField()
	if p.peek().Kind != tokenizer.Name {
		return nil, newError("class name", p.pos())
	}
	name := &tree.Name{Value: p.peek().String}
	p.advance()
	var lparWS, rparWS *tree.WhitespaceField
	var bases []*tree.Arg
	if p.atOp("(") {
		lparWS = p.wsField()
		p.advance()
		var err *Error
		bases, err = p.argList(")")
		if err != nil {
			return nil, err
		}
		rparWS = p.wsField()
		if _, err := p.expectOp(")"); err != nil {
			return nil, err
		}
	}
	colonWS, colon, err := p.colon()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &tree.ClassDef{
		Decorators: decorators, WhitespaceAfterClass: nameWS, Name: name,
		LparWhitespace: lparWS, Bases: bases, RparWhitespace: rparWS,
		WhitespaceBeforeColon: colonWS, Colon: colon, Body: body,
	}, nil
}

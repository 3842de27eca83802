package grammar

import (
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
)

type parser struct {
	toks []tokenizer.Token
	idx  int
	rt   *tree.RawTree
	noIn bool // set while parsing a for target, where `in` ends the target
}

// ParseTokensWithoutWhitespace runs the raw-tree builder (spec.md §4.2) over
// an already-tokenized stream, producing a tree.RawTree whose whitespace
// fields and side tables still hold raw scan state. internal/whitespace's
// Inflate finishes the job.
func ParseTokensWithoutWhitespace(toks []tokenizer.Token) (*tree.RawTree, *Error) {
	mod := &tree.Module{}
	rt := tree.NewRawTree(mod)
	p := &parser{toks: toks, rt: rt}
	lead := p.consumeBlankLines()
	body, footer, err := p.statements(false)
	if err != nil {
		return nil, err
	}
	mod.Body = body
	if lead != nil && len(body) > 0 {
		rt.LeadingRaw[tree.Node(body[0])] = lead.Raw
	} else if lead != nil && footer == nil {
		footer = lead
	}
	if footer != nil {
		rt.FooterRaw[tree.Node(mod)] = footer.Raw
	}
	return rt, nil
}

func (p *parser) peek() tokenizer.Token {
	if p.idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.idx]
}

func (p *parser) peekAt(n int) tokenizer.Token {
	i := p.idx + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *parser) advance() tokenizer.Token {
	t := p.peek()
	if p.idx < len(p.toks)-1 {
		p.idx++
	}
	return t
}

func (p *parser) atKeyword(kw string) bool {
	t := p.peek()
	return (t.Kind == tokenizer.Keyword || t.Kind == tokenizer.Async || t.Kind == tokenizer.Await) && t.String == kw
}

func (p *parser) atOp(op string) bool {
	t := p.peek()
	return t.Kind == tokenizer.Op && t.String == op
}

func (p *parser) wsField() *tree.WhitespaceField {
	return p.peek().WhitespaceBefore
}

// consumeAfter returns the WhitespaceField owning the gap after the token
// just consumed: the next token's own WhitespaceBefore, since every token
// carries the raw whitespace slice immediately preceding it (spec.md §4.1).
func (p *parser) consumeAfter() *tree.WhitespaceField {
	return p.wsField()
}

func (p *parser) expectOp(op string) (*tree.WhitespaceField, *Error) {
	if !p.atOp(op) {
		return nil, newError("'"+op+"'", p.pos())
	}
	ws := p.wsField()
	p.advance()
	return ws, nil
}

func (p *parser) expectKeyword(kw string) (*tree.WhitespaceField, *Error) {
	if !p.atKeyword(kw) {
		return nil, newError("'"+kw+"'", p.pos())
	}
	ws := p.wsField()
	p.advance()
	return ws, nil
}

func (p *parser) pos() tree.Position {
	return p.peek().StartPos
}

// consumeBlankLines skips bare Newline tokens that correspond to blank or
// comment-only physical lines (spec.md §4.1: the tokenizer emits a Newline
// for every physical line at top level, real or blank). It returns the
// first such token's WhitespaceBefore field, the raw scan start the
// footer-attribution / leading-lines algorithm needs, or nil if none were
// skipped.
func (p *parser) consumeBlankLines() *tree.WhitespaceField {
	var first *tree.WhitespaceField
	for p.peek().Kind == tokenizer.Newline {
		if first == nil {
			first = p.peek().WhitespaceBefore
		}
		p.advance()
	}
	return first
}

// statements parses a run of statements until EndMarker, or until Dedent
// when inBlock is true. It returns the parsed statements and the
// WhitespaceField marking where the trailing footer's raw scan should
// begin (nil if no blank lines precede the terminator).
func (p *parser) statements(inBlock bool) ([]tree.Statement, *tree.WhitespaceField, *Error) {
	var body []tree.Statement
	for {
		lead := p.consumeBlankLines()
		if p.peek().Kind == tokenizer.EndMarker {
			return body, lead, nil
		}
		if inBlock && p.peek().Kind == tokenizer.Dedent {
			return body, lead, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, nil, err
		}
		if lead != nil {
			p.rt.LeadingRaw[tree.Node(stmt)] = lead.Raw
		}
		body = append(body, stmt)
	}
}

// block parses `Newline Indent statements Dedent | simple_stmt`, the
// `block` rule of spec.md §4.2.
func (p *parser) block() (tree.Suite, *Error) {
	if p.peek().Kind != tokenizer.Newline {
		leadingWS := p.wsField()
		body, err := p.simpleStatementBody()
		if err != nil {
			return nil, err
		}
		suite := &tree.SimpleStatementSuite{Body: body, LeadingWhitespace: leadingWS}
		nlTok := p.peek()
		if nlTok.Kind == tokenizer.Newline {
			p.rt.TrailingRaw[tree.Node(suite)] = nlTok.WhitespaceBefore.Raw
			p.advance()
		}
		return suite, nil
	}
	headerNL := p.peek()
	p.advance()
	lead := p.consumeBlankLines()
	if p.peek().Kind != tokenizer.Indent {
		return nil, newError("indented block", p.pos())
	}
	indent := p.peek().RelativeIndent
	p.advance()
	body, footer, err := p.statements(true)
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != tokenizer.Dedent {
		return nil, newError("dedent", p.pos())
	}
	p.advance()
	if lead != nil && len(body) > 0 {
		p.rt.LeadingRaw[tree.Node(body[0])] = lead.Raw
	}
	block := &tree.IndentedBlock{Body: body, Indent: indent}
	p.rt.TrailingRaw[tree.Node(block)] = headerNL.WhitespaceBefore.Raw
	if footer != nil {
		p.rt.FooterRaw[tree.Node(block)] = footer.Raw
	}
	return block, nil
}

// colon parses the mandatory ':' ending a compound statement's header.
func (p *parser) colon() (*tree.WhitespaceField, tree.Colon, *Error) {
	before := p.wsField()
	if !p.atOp(":") {
		return nil, tree.Colon{}, newError("':'", p.pos())
	}
	p.advance()
	return before, tree.Colon{WhitespaceBefore: before}, nil
}

func (p *parser) asyncMarker() *tree.Asynchronous {
	if p.peek().Kind != tokenizer.Async {
		return nil
	}
	p.advance()
	return &tree.Asynchronous{WhitespaceAfter: p.wsField()}
}

// statement dispatches on one-token lookahead over compound-statement
// keywords (spec.md §4.2's `compound_stmt` rule), falling back to a
// SimpleStatementLine.
func (p *parser) statement() (tree.Statement, *Error) {
	switch {
	case p.atOp("@"):
		return p.decorated()
	case p.atKeyword("def"):
		return p.functionDef(nil, nil)
	case p.peek().Kind == tokenizer.Async:
		return p.asyncStatement(nil)
	case p.atKeyword("class"):
		return p.classDef(nil)
	case p.atKeyword("if"):
		return p.ifStatement(false)
	case p.atKeyword("while"):
		return p.whileStatement()
	case p.atKeyword("for"):
		return p.forStatement(nil)
	case p.atKeyword("with"):
		return p.withStatement(nil)
	case p.atKeyword("try"):
		return p.tryStatement()
	default:
		return p.simpleStatementLine()
	}
}

// asyncStatement dispatches the token after `async` to def/for/with, the
// only three statements the grammar allows it to prefix.
func (p *parser) asyncStatement(decorators []*tree.Decorator) (tree.Statement, *Error) {
	async := p.asyncMarker()
	switch {
	case p.atKeyword("def"):
		return p.functionDef(async, decorators)
	case p.atKeyword("for"):
		return p.forStatement(async)
	case p.atKeyword("with"):
		return p.withStatement(async)
	default:
		return nil, newError("'def', 'for', or 'with' after 'async'", p.pos())
	}
}

func (p *parser) functionOrAsyncStatement(decorators []*tree.Decorator) (tree.Statement, *Error) {
	if p.peek().Kind == tokenizer.Async {
		return p.asyncStatement(decorators)
	}
	return p.functionDef(nil, decorators)
}

func (p *parser) decorated() (tree.Statement, *Error) {
	var decorators []*tree.Decorator
	var linesAfter *tree.WhitespaceField
	for p.atOp("@") {
		atWS := p.wsField()
		p.advance()
		expr, err := p.namedExprTest()
		if err != nil {
			return nil, err
		}
		d := &tree.Decorator{WhitespaceAfterAt: atWS, Decorator: expr}
		if p.peek().Kind == tokenizer.Newline {
			p.rt.TrailingRaw[tree.Node(d)] = p.peek().WhitespaceBefore.Raw
			p.advance()
		}
		decorators = append(decorators, d)
		linesAfter = p.consumeBlankLines()
	}
	var stmt tree.Statement
	var err *Error
	switch {
	case p.peek().Kind == tokenizer.Async || p.atKeyword("def"):
		stmt, err = p.functionOrAsyncStatement(decorators)
	case p.atKeyword("class"):
		stmt, err = p.classDef(decorators)
	default:
		return nil, newError("'def' or 'class' after decorator", p.pos())
	}
	if err != nil {
		return nil, err
	}
	if linesAfter != nil {
		p.rt.LinesAfterRaw[tree.Node(stmt)] = linesAfter.Raw
	}
	return stmt, nil
}

package grammar

import (
	"strings"

	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
)

// test is the top-level expression production: a conditional expression or
// a lambda (spec.md §4.2 level 0).
func (p *parser) test() (tree.Expression, *Error) {
	if p.atKeyword("lambda") {
		return p.lambdef()
	}
	body, err := p.orTest()
	if err != nil {
		return nil, err
	}
	if !p.atKeyword("if") {
		return body, nil
	}
	ifWS := p.wsField()
	p.advance()
	testWS := p.wsField()
	cond, err := p.orTest()
	if err != nil {
		return nil, err
	}
	elseWS := p.wsField()
	if _, err := p.expectKeyword("else"); err != nil {
		return nil, err
	}
	orElseWS := p.wsField()
	orElse, err := p.test()
	if err != nil {
		return nil, err
	}
	return &tree.IfExp{
		Body:                 body,
		WhitespaceBeforeIf:   ifWS,
		WhitespaceAfterIf:    testWS,
		Test:                 cond,
		WhitespaceBeforeElse: elseWS,
		WhitespaceAfterElse:  orElseWS,
		OrElse:               orElse,
	}, nil
}

// namedExprTest wraps test with the optional walrus assignment `target :=
// value` (spec.md §4.2's namedexpr_test).
func (p *parser) namedExprTest() (tree.Expression, *Error) {
	left, err := p.test()
	if err != nil {
		return nil, err
	}
	if !p.atOp(":=") {
		return left, nil
	}
	beforeWS := p.wsField()
	p.advance()
	afterWS := p.wsField()
	val, err := p.test()
	if err != nil {
		return nil, err
	}
	return &tree.NamedExpr{Target: left, WhitespaceBeforeWalrus: beforeWS, WhitespaceAfterWalrus: afterWS, Value: val}, nil
}

func (p *parser) lambdef() (tree.Expression, *Error) {
	p.advance() // 'lambda'
	afterLambdaWS := p.wsField()
	var params *tree.Parameters
	if p.atOp(":") {
		params = &tree.Parameters{}
	} else {
		var err *Error
		params, err = p.parameters(":")
		if err != nil {
			return nil, err
		}
	}
	colonWS := p.wsField()
	if _, err := p.expectOp(":"); err != nil {
		return nil, err
	}
	afterColonWS := p.wsField()
	body, err := p.test()
	if err != nil {
		return nil, err
	}
	return &tree.Lambda{
		Params:                params,
		WhitespaceAfterLambda: afterLambdaWS,
		Colon:                 tree.Colon{WhitespaceBefore: colonWS, WhitespaceAfter: afterColonWS},
		Body:                  body,
	}, nil
}

func (p *parser) foldBoolean(next func() (tree.Expression, *Error), kw string, op tree.BooleanOp) (tree.Expression, *Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.atKeyword(kw) {
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &tree.BooleanOperation{Left: left, Operator: op, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: right}
	}
	return left, nil
}

func (p *parser) orTest() (tree.Expression, *Error) {
	return p.foldBoolean(p.andTest, "or", tree.OpOr)
}

func (p *parser) andTest() (tree.Expression, *Error) {
	return p.foldBoolean(p.notTest, "and", tree.OpAnd)
}

func (p *parser) notTest() (tree.Expression, *Error) {
	if p.atKeyword("not") {
		p.advance()
		ws := p.wsField()
		operand, err := p.notTest()
		if err != nil {
			return nil, err
		}
		return &tree.UnaryOperation{Operator: tree.UnaryNot, WhitespaceAfter: ws, Expression: operand}, nil
	}
	return p.comparison()
}

// comparison builds the non-associative head/tail shape (spec.md §4.2):
// `a < b < c` chains rather than folds, unlike the binary-operator levels.
func (p *parser) comparison() (tree.Expression, *Error) {
	head, err := p.bitOr()
	if err != nil {
		return nil, err
	}
	var targets []tree.ComparisonTarget
	for {
		op, ok := p.matchCompareOp()
		if !ok {
			break
		}
		beforeWS := p.wsField()
		afterWS := p.consumeCompareOp(op)
		comparator, err := p.bitOr()
		if err != nil {
			return nil, err
		}
		targets = append(targets, tree.ComparisonTarget{Operator: op, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Comparator: comparator})
	}
	if len(targets) == 0 {
		return head, nil
	}
	return &tree.Comparison{Head: head, Comparisons: targets}, nil
}

// matchCompareOp reports which (possibly two-keyword) comparison operator,
// if any, starts at the current position, without consuming it.
func (p *parser) matchCompareOp() (tree.CompareOp, bool) {
	t := p.peek()
	if t.Kind == tokenizer.Op {
		switch t.String {
		case "<":
			return tree.CmpLessThan, true
		case ">":
			return tree.CmpGreaterThan, true
		case "<=":
			return tree.CmpLessEqual, true
		case ">=":
			return tree.CmpGreaterEqual, true
		case "==":
			return tree.CmpEqual, true
		case "!=":
			return tree.CmpNotEqual, true
		}
		return "", false
	}
	if t.Kind != tokenizer.Keyword {
		return "", false
	}
	switch t.String {
	case "in":
		if p.noIn {
			return "", false
		}
		return tree.CmpIn, true
	case "is":
		if p.peekAt(1).Kind == tokenizer.Keyword && p.peekAt(1).String == "not" {
			return tree.CmpIsNot, true
		}
		return tree.CmpIs, true
	case "not":
		if p.peekAt(1).Kind == tokenizer.Keyword && p.peekAt(1).String == "in" {
			return tree.CmpNotIn, true
		}
	}
	return "", false
}

// consumeCompareOp advances past the operator identified by matchCompareOp
// and returns the WhitespaceField owning the gap before the comparator. The
// whitespace between the two keywords of "is not"/"not in" isn't separately
// modeled; CompareOp treats each as a single two-word spelling.
func (p *parser) consumeCompareOp(op tree.CompareOp) *tree.WhitespaceField {
	p.advance()
	if op == tree.CmpIsNot || op == tree.CmpNotIn {
		p.advance()
	}
	return p.wsField()
}

func (p *parser) bitOr() (tree.Expression, *Error) {
	left, err := p.bitXor()
	if err != nil {
		return nil, err
	}
	for p.atOp("|") {
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		right, err := p.bitXor()
		if err != nil {
			return nil, err
		}
		left = &tree.BinaryOperation{Left: left, Operator: tree.OpBitOr, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: right}
	}
	return left, nil
}

func (p *parser) bitXor() (tree.Expression, *Error) {
	left, err := p.bitAnd()
	if err != nil {
		return nil, err
	}
	for p.atOp("^") {
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		right, err := p.bitAnd()
		if err != nil {
			return nil, err
		}
		left = &tree.BinaryOperation{Left: left, Operator: tree.OpBitXor, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: right}
	}
	return left, nil
}

func (p *parser) bitAnd() (tree.Expression, *Error) {
	left, err := p.shiftExpr()
	if err != nil {
		return nil, err
	}
	for p.atOp("&") {
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		right, err := p.shiftExpr()
		if err != nil {
			return nil, err
		}
		left = &tree.BinaryOperation{Left: left, Operator: tree.OpBitAnd, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: right}
	}
	return left, nil
}

func (p *parser) shiftExpr() (tree.Expression, *Error) {
	left, err := p.arithExpr()
	if err != nil {
		return nil, err
	}
	for p.atOp("<<") || p.atOp(">>") {
		op := tree.OpLeftShift
		if p.atOp(">>") {
			op = tree.OpRightShift
		}
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		right, err := p.arithExpr()
		if err != nil {
			return nil, err
		}
		left = &tree.BinaryOperation{Left: left, Operator: op, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: right}
	}
	return left, nil
}

func (p *parser) arithExpr() (tree.Expression, *Error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.atOp("+") || p.atOp("-") {
		op := tree.OpAdd
		if p.atOp("-") {
			op = tree.OpSubtract
		}
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &tree.BinaryOperation{Left: left, Operator: op, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: right}
	}
	return left, nil
}

var termOps = map[string]tree.BinaryOp{
	"*": tree.OpMultiply, "/": tree.OpDivide, "//": tree.OpFloorDiv, "%": tree.OpModulo, "@": tree.OpMatMult,
}

func (p *parser) term() (tree.Expression, *Error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := termOps[p.peek().String]
		if !ok || p.peek().Kind != tokenizer.Op {
			break
		}
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &tree.BinaryOperation{Left: left, Operator: op, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: right}
	}
	return left, nil
}

func (p *parser) factor() (tree.Expression, *Error) {
	if p.peek().Kind == tokenizer.Op && (p.peek().String == "+" || p.peek().String == "-" || p.peek().String == "~") {
		op := tree.UnaryOp(p.peek().String)
		p.advance()
		ws := p.wsField()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &tree.UnaryOperation{Operator: op, WhitespaceAfter: ws, Expression: operand}, nil
	}
	return p.power()
}

func (p *parser) power() (tree.Expression, *Error) {
	base, err := p.awaitPrimary()
	if err != nil {
		return nil, err
	}
	if !p.atOp("**") {
		return base, nil
	}
	beforeWS := p.wsField()
	p.advance()
	afterWS := p.wsField()
	exponent, err := p.factor()
	if err != nil {
		return nil, err
	}
	return &tree.BinaryOperation{Left: base, Operator: tree.OpPower, WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Right: exponent}, nil
}

func (p *parser) awaitPrimary() (tree.Expression, *Error) {
	if p.peek().Kind != tokenizer.Await {
		return p.primary()
	}
	p.advance()
	ws := p.wsField()
	operand, err := p.primary()
	if err != nil {
		return nil, err
	}
	return &tree.Await{WhitespaceAfterAwait: ws, Expression: operand}, nil
}

// primary parses an atom followed by any number of `.attr`, `(args)`, and
// `[subscript]` trailers (spec.md §4.2 level 13).
func (p *parser) primary() (tree.Expression, *Error) {
	expr, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.atOp("."):
			dotWS := p.wsField()
			p.advance()
			attrWS := p.wsField()
			if p.peek().Kind != tokenizer.Name {
				return nil, newError("attribute name", p.pos())
			}
			attr := &tree.Name{Value: p.peek().String}
			p.advance()
			expr = &tree.Attribute{Value: expr, WhitespaceBeforeDot: dotWS, WhitespaceAfterDot: attrWS, Attr: attr}
		case p.atOp("("):
			call, err := p.callTrailer(expr)
			if err != nil {
				return nil, err
			}
			expr = call
		case p.atOp("["):
			sub, err := p.subscriptTrailer(expr)
			if err != nil {
				return nil, err
			}
			expr = sub
		default:
			return expr, nil
		}
	}
}

func (p *parser) callTrailer(fn tree.Expression) (tree.Expression, *Error) {
	afterFuncWS := p.wsField()
	p.advance() // '('
	beforeArgsWS := p.wsField()
	args, err := p.argList(")")
	if err != nil {
		return nil, err
	}
	afterArgsWS := p.wsField()
	if _, err := p.expectOp(")"); err != nil {
		return nil, err
	}
	return &tree.Call{
		Func:                 fn,
		WhitespaceAfterFunc:  afterFuncWS,
		WhitespaceBeforeArgs: beforeArgsWS,
		Args:                 args,
		WhitespaceAfterArgs:  afterArgsWS,
	}, nil
}

func (p *parser) subscriptTrailer(val tree.Expression) (tree.Expression, *Error) {
	afterValueWS := p.wsField()
	p.advance() // '['
	beforeSliceWS := p.wsField()
	elements, err := p.subscriptElements()
	if err != nil {
		return nil, err
	}
	afterSliceWS := p.wsField()
	if _, err := p.expectOp("]"); err != nil {
		return nil, err
	}
	return &tree.Subscript{
		Value:                val,
		WhitespaceAfterValue: afterValueWS,
		WhitespaceBeforeSlice: beforeSliceWS,
		Slice:                elements,
		WhitespaceAfterSlice: afterSliceWS,
	}, nil
}

func (p *parser) subscriptElements() ([]*tree.SubscriptElement, *Error) {
	var els []*tree.SubscriptElement
	for {
		el, err := p.subscriptElement()
		if err != nil {
			return nil, err
		}
		if p.atOp(",") {
			commaWS := p.wsField()
			p.advance()
			el.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
			els = append(els, el)
			if p.atOp("]") {
				return els, nil
			}
			continue
		}
		els = append(els, el)
		return els, nil
	}
}

func (p *parser) subscriptElement() (*tree.SubscriptElement, *Error) {
	var lower tree.Expression
	if !p.atOp(":") {
		var err *Error
		lower, err = p.namedExprTest()
		if err != nil {
			return nil, err
		}
	}
	if !p.atOp(":") {
		return &tree.SubscriptElement{Slice: &tree.Index{Value: lower}}, nil
	}
	return p.sliceElement(lower)
}

func (p *parser) sliceElement(lower tree.Expression) (*tree.SubscriptElement, *Error) {
	firstBeforeWS := p.wsField()
	p.advance() // ':'
	firstAfterWS := p.wsField()
	firstColon := tree.Colon{WhitespaceBefore: firstBeforeWS, WhitespaceAfter: firstAfterWS}
	var upper tree.Expression
	if !p.atOp(":") && !p.atOp("]") && !p.atOp(",") {
		var err *Error
		upper, err = p.test()
		if err != nil {
			return nil, err
		}
	}
	sl := &tree.Slice{Lower: lower, Upper: upper, FirstColon: firstColon}
	if p.atOp(":") {
		secondBeforeWS := p.wsField()
		p.advance()
		secondAfterWS := p.wsField()
		secondColon := tree.Colon{WhitespaceBefore: secondBeforeWS, WhitespaceAfter: secondAfterWS}
		sl.SecondColon = &secondColon
		if !p.atOp("]") && !p.atOp(",") {
			step, err := p.test()
			if err != nil {
				return nil, err
			}
			sl.Step = step
		}
	}
	return &tree.SubscriptElement{Slice: sl}, nil
}

// canStartTest reports whether the current token can begin a test/star_expr,
// used to detect a dangling trailing comma in a bare tuple display.
func (p *parser) canStartTest() bool {
	t := p.peek()
	switch t.Kind {
	case tokenizer.Name, tokenizer.Number, tokenizer.String, tokenizer.Await, tokenizer.Async:
		return true
	case tokenizer.Op:
		switch t.String {
		case "(", "[", "{", "*", "+", "-", "~", "...":
			return true
		}
		return false
	case tokenizer.Keyword:
		switch t.String {
		case "not", "lambda", "True", "False", "None":
			return true
		}
		return false
	}
	return false
}

func (p *parser) isCompForAhead() bool {
	if p.atKeyword("for") {
		return true
	}
	return p.peek().Kind == tokenizer.Async && p.peekAt(1).Kind == tokenizer.Keyword && p.peekAt(1).String == "for"
}

// maybeStarredNamedExprTest parses either a `*expr` star-expression or a
// plain namedExprTest, the shape shared by tuple/list/set elements and
// testListStarExpr entries.
func (p *parser) maybeStarredNamedExprTest() (string, *tree.WhitespaceField, tree.Expression, *Error) {
	if p.atOp("*") {
		p.advance()
		afterWS := p.wsField()
		val, err := p.orTest()
		if err != nil {
			return "", nil, nil, err
		}
		return "*", afterWS, val, nil
	}
	val, err := p.namedExprTest()
	if err != nil {
		return "", nil, nil, err
	}
	return "", nil, val, nil
}

// testListStarExpr is the comma-separated list of tests/star-expressions
// used for assignment right-hand sides, for-loop iterables, and return
// values: a single bare expression if there's no comma, otherwise an
// implicit Tuple.
func (p *parser) testListStarExpr() (tree.Expression, *Error) {
	star, afterStarWS, first, err := p.maybeStarredNamedExprTest()
	if err != nil {
		return nil, err
	}
	if !p.atOp(",") {
		if star != "" {
			return &tree.Starred{WhitespaceAfterStar: afterStarWS, Value: first}, nil
		}
		return first, nil
	}
	els := []*tree.Element{{Value: first, Star: star, WhitespaceAfterStar: afterStarWS}}
	for p.atOp(",") {
		commaWS := p.wsField()
		p.advance()
		els[len(els)-1].Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
		if !p.canStartTest() {
			break
		}
		star, afterStarWS, next, err := p.maybeStarredNamedExprTest()
		if err != nil {
			return nil, err
		}
		els = append(els, &tree.Element{Value: next, Star: star, WhitespaceAfterStar: afterStarWS})
	}
	return &tree.Tuple{Elements: els}, nil
}

// targetList covers for-loop and comprehension targets, syntactically
// identical to testListStarExpr (a lossless CST doesn't validate
// assignability, only shape) except that a bare `in` ends the target
// instead of starting a comparison.
func (p *parser) targetList() (tree.Expression, *Error) {
	p.noIn = true
	defer func() { p.noIn = false }()
	return p.testListStarExpr()
}

func (p *parser) restOfElements(first *tree.Element, closer string) ([]*tree.Element, *Error) {
	els := []*tree.Element{}
	el := first
	for {
		if p.atOp(",") {
			commaWS := p.wsField()
			p.advance()
			el.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
			els = append(els, el)
			if p.atOp(closer) {
				// The gap before the closer belongs to the closing bracket.
				el.Comma.WhitespaceAfter = &tree.WhitespaceField{Inflated: true, Value: tree.SimpleWhitespace("")}
				return els, nil
			}
			star, afterStarWS, val, err := p.maybeStarredNamedExprTest()
			if err != nil {
				return nil, err
			}
			el = &tree.Element{Value: val, Star: star, WhitespaceAfterStar: afterStarWS}
			continue
		}
		els = append(els, el)
		return els, nil
	}
}

func (p *parser) dictRestOfElements(first *tree.DictElement, closer string) ([]*tree.DictElement, *Error) {
	els := []*tree.DictElement{}
	el := first
	for {
		if p.atOp(",") {
			commaWS := p.wsField()
			p.advance()
			el.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
			els = append(els, el)
			if p.atOp(closer) {
				// The gap before the closer belongs to the closing brace.
				el.Comma.WhitespaceAfter = &tree.WhitespaceField{Inflated: true, Value: tree.SimpleWhitespace("")}
				return els, nil
			}
			next, err := p.dictElement()
			if err != nil {
				return nil, err
			}
			el = next
			continue
		}
		els = append(els, el)
		return els, nil
	}
}

func (p *parser) dictElement() (*tree.DictElement, *Error) {
	if p.atOp("**") {
		p.advance()
		afterWS := p.wsField()
		val, err := p.orTest()
		if err != nil {
			return nil, err
		}
		return &tree.DictElement{DoubleStar: "**", WhitespaceAfterStar: afterWS, Value: val}, nil
	}
	key, err := p.namedExprTest()
	if err != nil {
		return nil, err
	}
	colonBeforeWS := p.wsField()
	if _, err := p.expectOp(":"); err != nil {
		return nil, err
	}
	colonAfterWS := p.wsField()
	val, err := p.test()
	if err != nil {
		return nil, err
	}
	return &tree.DictElement{Key: key, WhitespaceBeforeColon: colonBeforeWS, WhitespaceAfterColon: colonAfterWS, Value: val}, nil
}

// compFor parses a `[async] for target in iter [if cond]*` clause, recursing
// into Inner for comprehensions with more than one `for`.
func (p *parser) compFor() (*tree.CompFor, *Error) {
	beforeWS := p.wsField()
	async := p.asyncMarker()
	if _, err := p.expectKeyword("for"); err != nil {
		return nil, err
	}
	afterForWS := p.wsField()
	target, err := p.targetList()
	if err != nil {
		return nil, err
	}
	beforeInWS := p.wsField()
	if _, err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	afterInWS := p.wsField()
	iter, err := p.orTest()
	if err != nil {
		return nil, err
	}
	var ifs []*tree.CompIf
	for p.atKeyword("if") {
		ifBeforeWS := p.wsField()
		p.advance()
		ifAfterWS := p.wsField()
		cond, err := p.orTest()
		if err != nil {
			return nil, err
		}
		ifs = append(ifs, &tree.CompIf{WhitespaceBefore: ifBeforeWS, WhitespaceAfterIf: ifAfterWS, Test: cond})
	}
	var inner *tree.CompFor
	if p.isCompForAhead() {
		inner, err = p.compFor()
		if err != nil {
			return nil, err
		}
	}
	return &tree.CompFor{
		WhitespaceBefore:   beforeWS,
		Asynchronous:       async,
		WhitespaceAfterFor: afterForWS,
		Target:             target,
		WhitespaceBeforeIn: beforeInWS,
		WhitespaceAfterIn:  afterInWS,
		Iter:               iter,
		Ifs:                ifs,
		Inner:              inner,
	}, nil
}

func (p *parser) atom() (tree.Expression, *Error) {
	t := p.peek()
	switch {
	case p.atOp("("):
		return p.parenAtom()
	case p.atOp("["):
		return p.listAtom()
	case p.atOp("{"):
		return p.braceAtom()
	case p.atOp("..."):
		p.advance()
		return &tree.Ellipsis{}, nil
	case t.Kind == tokenizer.Name:
		p.advance()
		return &tree.Name{Value: t.String}, nil
	case t.Kind == tokenizer.Keyword && (t.String == "True" || t.String == "False" || t.String == "None"):
		p.advance()
		return &tree.Name{Value: t.String}, nil
	case t.Kind == tokenizer.Number:
		return p.numberAtom()
	case t.Kind == tokenizer.String:
		return p.stringAtom()
	}
	return nil, newError("expression", p.pos())
}

func (p *parser) numberAtom() (tree.Expression, *Error) {
	v := p.peek().String
	p.advance()
	lower := strings.ToLower(v)
	switch {
	case strings.HasSuffix(lower, "j"):
		return &tree.Imaginary{Value: v}, nil
	case !strings.HasPrefix(lower, "0x") && !strings.HasPrefix(lower, "0o") && !strings.HasPrefix(lower, "0b") && strings.ContainsAny(v, ".eE"):
		return &tree.Float{Value: v}, nil
	default:
		return &tree.Integer{Value: v}, nil
	}
}

func (p *parser) stringAtom() (tree.Expression, *Error) {
	first := &tree.SimpleString{Value: p.peek().String}
	p.advance()
	var left tree.Expression = first
	for p.peek().Kind == tokenizer.String {
		betweenWS := p.wsField()
		right := &tree.SimpleString{Value: p.peek().String}
		p.advance()
		left = &tree.ConcatenatedString{Left: left, WhitespaceBetween: betweenWS, Right: right}
	}
	return left, nil
}

func (p *parser) parenAtom() (tree.Expression, *Error) {
	p.advance() // '('
	lpWS := p.wsField()
	if p.atOp(")") {
		rpWS := p.wsField()
		p.advance()
		t := &tree.Tuple{}
		t.Lpar = []tree.LeftParen{{WhitespaceAfter: lpWS}}
		t.Rpar = []tree.RightParen{{WhitespaceBefore: rpWS}}
		return t, nil
	}
	star, afterStarWS, first, err := p.maybeStarredNamedExprTest()
	if err != nil {
		return nil, err
	}
	if star == "" && p.isCompForAhead() {
		compFor, err := p.compFor()
		if err != nil {
			return nil, err
		}
		rpWS := p.wsField()
		if _, err := p.expectOp(")"); err != nil {
			return nil, err
		}
		gen := &tree.GeneratorExp{Elt: first, For: compFor}
		gen.Lpar = []tree.LeftParen{{WhitespaceAfter: lpWS}}
		gen.Rpar = []tree.RightParen{{WhitespaceBefore: rpWS}}
		return gen, nil
	}
	if star == "" && !p.atOp(",") {
		rpWS := p.wsField()
		if _, err := p.expectOp(")"); err != nil {
			return nil, err
		}
		first.PrependParen(tree.LeftParen{WhitespaceAfter: lpWS}, tree.RightParen{WhitespaceBefore: rpWS})
		return first, nil
	}
	el := &tree.Element{Value: first, Star: star, WhitespaceAfterStar: afterStarWS}
	els, err := p.restOfElements(el, ")")
	if err != nil {
		return nil, err
	}
	rpWS := p.wsField()
	if _, err := p.expectOp(")"); err != nil {
		return nil, err
	}
	tup := &tree.Tuple{Elements: els}
	tup.Lpar = []tree.LeftParen{{WhitespaceAfter: lpWS}}
	tup.Rpar = []tree.RightParen{{WhitespaceBefore: rpWS}}
	return tup, nil
}

func (p *parser) listAtom() (tree.Expression, *Error) {
	p.advance() // '['
	afterBracketWS := p.wsField()
	if p.atOp("]") {
		beforeWS := p.wsField()
		p.advance()
		return &tree.List{WhitespaceAfterBracket: afterBracketWS, WhitespaceBeforeBracket: beforeWS}, nil
	}
	star, afterStarWS, first, err := p.maybeStarredNamedExprTest()
	if err != nil {
		return nil, err
	}
	if star == "" && p.isCompForAhead() {
		compFor, err := p.compFor()
		if err != nil {
			return nil, err
		}
		beforeWS := p.wsField()
		if _, err := p.expectOp("]"); err != nil {
			return nil, err
		}
		return &tree.ListComp{WhitespaceAfterBracket: afterBracketWS, Elt: first, For: compFor, WhitespaceBeforeBracket: beforeWS}, nil
	}
	el := &tree.Element{Value: first, Star: star, WhitespaceAfterStar: afterStarWS}
	els, err := p.restOfElements(el, "]")
	if err != nil {
		return nil, err
	}
	beforeWS := p.wsField()
	if _, err := p.expectOp("]"); err != nil {
		return nil, err
	}
	return &tree.List{WhitespaceAfterBracket: afterBracketWS, Elements: els, WhitespaceBeforeBracket: beforeWS}, nil
}

func (p *parser) braceAtom() (tree.Expression, *Error) {
	p.advance() // '{'
	afterBraceWS := p.wsField()
	if p.atOp("}") {
		beforeWS := p.wsField()
		p.advance()
		return &tree.Dict{WhitespaceAfterBrace: afterBraceWS, WhitespaceBeforeBrace: beforeWS}, nil
	}
	if p.atOp("**") {
		first, err := p.dictElement()
		if err != nil {
			return nil, err
		}
		return p.finishDict(afterBraceWS, first)
	}
	star, afterStarWS, first, err := p.maybeStarredNamedExprTest()
	if err != nil {
		return nil, err
	}
	if star == "" && p.atOp(":") {
		colonBeforeWS := p.wsField()
		p.advance()
		colonAfterWS := p.wsField()
		value, err := p.test()
		if err != nil {
			return nil, err
		}
		de := &tree.DictElement{Key: first, WhitespaceBeforeColon: colonBeforeWS, WhitespaceAfterColon: colonAfterWS, Value: value}
		return p.finishDict(afterBraceWS, de)
	}
	if star == "" && p.isCompForAhead() {
		compFor, err := p.compFor()
		if err != nil {
			return nil, err
		}
		beforeWS := p.wsField()
		if _, err := p.expectOp("}"); err != nil {
			return nil, err
		}
		return &tree.SetComp{WhitespaceAfterBrace: afterBraceWS, Elt: first, For: compFor, WhitespaceBeforeBrace: beforeWS}, nil
	}
	el := &tree.Element{Value: first, Star: star, WhitespaceAfterStar: afterStarWS}
	els, err := p.restOfElements(el, "}")
	if err != nil {
		return nil, err
	}
	beforeWS := p.wsField()
	if _, err := p.expectOp("}"); err != nil {
		return nil, err
	}
	return &tree.Set{WhitespaceAfterBrace: afterBraceWS, Elements: els, WhitespaceBeforeBrace: beforeWS}, nil
}

func (p *parser) finishDict(afterBraceWS *tree.WhitespaceField, first *tree.DictElement) (tree.Expression, *Error) {
	if first.DoubleStar == "" && p.isCompForAhead() {
		compFor, err := p.compFor()
		if err != nil {
			return nil, err
		}
		beforeWS := p.wsField()
		if _, err := p.expectOp("}"); err != nil {
			return nil, err
		}
		return &tree.DictComp{
			WhitespaceAfterBrace:  afterBraceWS,
			Key:                   first.Key,
			WhitespaceBeforeColon: first.WhitespaceBeforeColon,
			WhitespaceAfterColon:  first.WhitespaceAfterColon,
			Value:                 first.Value,
			For:                   compFor,
			WhitespaceBeforeBrace: beforeWS,
		}, nil
	}
	els, err := p.dictRestOfElements(first, "}")
	if err != nil {
		return nil, err
	}
	beforeWS := p.wsField()
	if _, err := p.expectOp("}"); err != nil {
		return nil, err
	}
	return &tree.Dict{WhitespaceAfterBrace: afterBraceWS, Elements: els, WhitespaceBeforeBrace: beforeWS}, nil
}

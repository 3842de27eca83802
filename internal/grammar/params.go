package grammar

import (
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
)

// parameters parses a def/lambda parameter list up to (not including)
// closer, bucketing the parsed Params into PosOnlyParams/Params/KwonlyParams
// depending on which of '/' and a bare '*'/'*args' marker have been seen
// (spec.md §4.2's typedargslist/varargslist).
func (p *parser) parameters(closer string) (*tree.Parameters, *Error) {
	params := &tree.Parameters{}
	var working []*tree.Param
	seenStar := false
	for !p.atOp(closer) {
		if p.atOp("/") {
			p.advance()
			afterSlashWS := p.wsField()
			slash := &tree.ParamSlash{}
			if p.atOp(",") {
				p.advance()
				slash.Comma = &tree.Comma{WhitespaceBefore: afterSlashWS, WhitespaceAfter: p.wsField()}
			} else {
				slash.WhitespaceAfter = afterSlashWS
			}
			params.PosOnlyParams = working
			working = nil
			params.PosOnlyInd = slash
			if p.atOp(closer) {
				break
			}
			continue
		}
		if p.atOp("*") && !seenStar {
			p.advance()
			afterStarWS := p.wsField()
			seenStar = true
			params.Params = append(params.Params, working...)
			working = nil
			if p.atOp(",") {
				p.advance()
				comma := &tree.Comma{WhitespaceBefore: afterStarWS, WhitespaceAfter: p.wsField()}
				params.StarArg = &tree.ParamStar{Comma: comma}
				continue
			}
			if p.atOp(closer) {
				params.StarArg = &tree.ParamStar{}
				break
			}
			param, err := p.oneParam("*", afterStarWS, closer)
			if err != nil {
				return nil, err
			}
			params.StarArg = param
			if param.Comma == nil {
				break
			}
			continue
		}
		if p.atOp("**") {
			p.advance()
			afterStarWS := p.wsField()
			param, err := p.oneParam("**", afterStarWS, closer)
			if err != nil {
				return nil, err
			}
			params.Params = append(params.Params, working...)
			working = nil
			params.StarKwarg = param
			break
		}
		param, err := p.oneParam("", nil, closer)
		if err != nil {
			return nil, err
		}
		if seenStar {
			params.KwonlyParams = append(params.KwonlyParams, param)
		} else {
			working = append(working, param)
		}
		if param.Comma == nil {
			break
		}
	}
	params.Params = append(params.Params, working...)
	return params, nil
}

// oneParam parses a single `name[: annotation][= default][,]` parameter,
// already past its star/double-star marker if any.
func (p *parser) oneParam(star string, afterStarWS *tree.WhitespaceField, closer string) (*tree.Param, *Error) {
	if p.peek().Kind != tokenizer.Name {
		return nil, newError("parameter name", p.pos())
	}
	name := &tree.Name{Value: p.peek().String}
	p.advance()
	param := &tree.Param{Name: name, Star: star, WhitespaceAfterStar: afterStarWS}
	if p.atOp(":") {
		ann, err := p.paramAnnotation()
		if err != nil {
			return nil, err
		}
		param.Annotation = ann
	}
	if p.atOp("=") {
		beforeWS := p.wsField()
		p.advance()
		afterWS := p.wsField()
		val, err := p.test()
		if err != nil {
			return nil, err
		}
		param.Equal = &tree.AssignEqual{WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS}
		param.Default = val
	}
	if p.atOp(",") {
		commaWS := p.wsField()
		p.advance()
		param.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
	}
	return param, nil
}

func (p *parser) paramAnnotation() (*tree.Annotation, *Error) {
	beforeWS := p.wsField()
	p.advance() // ':'
	afterWS := p.wsField()
	val, err := p.test()
	if err != nil {
		return nil, err
	}
	return &tree.Annotation{Indicator: ":", WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS, Value: val}, nil
}

// argList parses a call's comma-separated argument list up to closer,
// handling the first-argument-only bare generator expression shorthand
// `f(x for x in y)` inline rather than via separate lookahead in the call
// site (spec.md §4.2's arglist).
func (p *parser) argList(closer string) ([]*tree.Arg, *Error) {
	var args []*tree.Arg
	first := true
	for !p.atOp(closer) {
		arg, err := p.oneArg(first)
		if err != nil {
			return nil, err
		}
		first = false
		if p.atOp(",") {
			commaWS := p.wsField()
			p.advance()
			arg.Comma = &tree.Comma{WhitespaceBefore: commaWS, WhitespaceAfter: p.wsField()}
			args = append(args, arg)
			if p.atOp(closer) {
				// The gap before the closer belongs to the closing paren.
				arg.Comma.WhitespaceAfter = &tree.WhitespaceField{Inflated: true, Value: tree.SimpleWhitespace("")}
				break
			}
			continue
		}
		args = append(args, arg)
		break
	}
	return args, nil
}

func (p *parser) oneArg(first bool) (*tree.Arg, *Error) {
	if p.atOp("*") || p.atOp("**") {
		star := p.peek().String
		p.advance()
		afterStarWS := p.wsField()
		val, err := p.test()
		if err != nil {
			return nil, err
		}
		return &tree.Arg{Value: val, Star: star, WhitespaceAfterStar: afterStarWS}, nil
	}
	if p.peek().Kind == tokenizer.Name && p.peekAt(1).Kind == tokenizer.Op && p.peekAt(1).String == "=" {
		kw := &tree.Name{Value: p.peek().String}
		p.advance()
		beforeWS := p.wsField()
		p.advance() // '='
		afterWS := p.wsField()
		val, err := p.test()
		if err != nil {
			return nil, err
		}
		return &tree.Arg{Value: val, Keyword: kw, Equal: &tree.AssignEqual{WhitespaceBefore: beforeWS, WhitespaceAfter: afterWS}}, nil
	}
	val, err := p.namedExprTest()
	if err != nil {
		return nil, err
	}
	if first && p.isCompForAhead() {
		compFor, err := p.compFor()
		if err != nil {
			return nil, err
		}
		return &tree.Arg{Value: &tree.GeneratorExp{Elt: val, For: compFor}}, nil
	}
	return &tree.Arg{Value: val}, nil
}

package tree

import "github.com/zsol/libcst/internal/codegen"

// ParamSlash is the bare `/` marker ending the positional-only section of a
// parameter list (spec.md §3's `posonly_ind`).
type ParamSlash struct {
	Comma            *Comma
	WhitespaceAfter  *WhitespaceField
}

func (p *ParamSlash) Codegen(s *codegen.State) {
	s.WriteString("/")
	if p.Comma != nil {
		p.Comma.Codegen(s)
	} else if p.WhitespaceAfter != nil {
		p.WhitespaceAfter.Codegen(s)
	}
}

// ParamStar is the bare `*` marker introducing the keyword-only section
// without itself binding a name (spec.md §3's `star_arg = Star(ParamStar)`).
type ParamStar struct {
	Comma *Comma
}

func (p *ParamStar) Codegen(s *codegen.State) {
	s.WriteString("*")
	if p.Comma != nil {
		p.Comma.Codegen(s)
	}
}

// Param is one `name[: annotation][= default]` parameter entry, also used
// for the `*args` / `**kwargs` forms via the Star field.
type Param struct {
	Name                  *Name
	Annotation            *Annotation
	Equal                 *AssignEqual
	Default               Expression
	Comma                 *Comma
	Star                  string // "", "*", or "**"
	WhitespaceAfterStar   *WhitespaceField
	WhitespaceAfterParam  *WhitespaceField
}

func (p *Param) Codegen(s *codegen.State) {
	if p.Star != "" {
		s.WriteString(p.Star)
		p.WhitespaceAfterStar.Codegen(s)
	}
	p.Name.Codegen(s)
	if p.Annotation != nil {
		p.Annotation.Codegen(s)
	}
	if p.Default != nil {
		p.Equal.Codegen(s)
		p.Default.Codegen(s)
	}
	if p.Comma != nil {
		p.Comma.Codegen(s)
	}
	if p.WhitespaceAfterParam != nil {
		p.WhitespaceAfterParam.Codegen(s)
	}
}

// Annotation is the `: type` suffix shared by annotated parameters,
// AnnAssign targets, and function return types (`-> type`); Indicator holds
// the literal sigil since the two contexts use different punctuation.
type Annotation struct {
	Indicator        string // ":" or "->"
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
	Value            Expression
}

func (a *Annotation) Codegen(s *codegen.State) {
	a.WhitespaceBefore.Codegen(s)
	s.WriteString(a.Indicator)
	a.WhitespaceAfter.Codegen(s)
	a.Value.Codegen(s)
}

// Parameters is the full positional-only / regular / keyword-only /
// star-kwarg shape (spec.md §3, §4.2). StarArg is nil when there is no bare
// `*`/`*args` marker at all.
type Parameters struct {
	PosOnlyParams []*Param
	PosOnlyInd    *ParamSlash
	Params        []*Param
	StarArg       Node // nil, *ParamStar, or *Param
	KwonlyParams  []*Param
	StarKwarg     *Param
}

func (p *Parameters) Codegen(s *codegen.State) {
	for _, param := range p.PosOnlyParams {
		param.Codegen(s)
	}
	if p.PosOnlyInd != nil {
		p.PosOnlyInd.Codegen(s)
	}
	for _, param := range p.Params {
		param.Codegen(s)
	}
	if p.StarArg != nil {
		p.StarArg.Codegen(s)
	}
	for _, param := range p.KwonlyParams {
		param.Codegen(s)
	}
	if p.StarKwarg != nil {
		p.StarKwarg.Codegen(s)
	}
}

package whitespace

import (
	"github.com/zsol/libcst/internal/tree"
	"github.com/zsol/libcst/internal/wsparse"
)

// Inflate runs the second pass over a raw tree (spec.md §4.3): it converts
// every whitespace field's raw scan state into a structured tree.Whitespace
// value and partitions leading/trailing/footer empty lines between owners.
// It is the implementation behind the parse_whitespace public operation
// (spec.md §6), which "works for any node type implementing the inflate
// capability" — here realized as one mechanical walker rather than a method
// per type, since the side tables on tree.RawTree already centralize the
// raw state a per-node method would otherwise need passed in.
func Inflate(rt *tree.RawTree, text string) (*tree.Module, *Error) {
	ctx := &ctx{text: text, rt: rt}
	mod := rt.Module
	for _, stmt := range mod.Body {
		if err := ctx.statement(stmt); err != nil {
			return nil, err
		}
	}
	if raw, ok := rt.FooterRaw[tree.Node(mod)]; ok {
		lines, err := ctx.emptyLines(raw.ByteOffset, nil)
		if err != nil {
			return nil, err
		}
		mod.Footer = lines
	}
	return mod, nil
}

type ctx struct {
	text string
	rt   *tree.RawTree
}

func (c *ctx) field(f *tree.WhitespaceField) *Error {
	if f == nil || f.Inflated {
		return nil
	}
	cur := wsparse.NewCursor(c.text, f.Raw.ByteOffset)
	f.Value = nil
	if f.Raw.IsParenthesized {
		if p, err := cur.Parenthesized(f.Raw.AbsoluteIndent); err == nil {
			f.Value = parenWhitespace(p)
		} else {
			cur = wsparse.NewCursor(c.text, f.Raw.ByteOffset)
		}
	}
	if f.Value == nil {
		f.Value = tree.SimpleWhitespace(cur.SimpleWhitespace())
	}
	f.Inflated = true
	return nil
}

func parenWhitespace(p wsparse.Parenthesized) tree.Whitespace {
	return tree.ParenthesizedWhitespace{
		FirstLine:  tree.TrailingWhitespace{Whitespace: tree.SimpleWhitespace(p.FirstWS), Comment: commentOf(p.FirstHasComment, p.FirstComment), Newline: newlineOf(p.FirstNewline, p.FirstFake)},
		EmptyLines: emptyLinesOf(p.EmptyLines),
		Indent:     p.Indent,
		LastLine:   tree.SimpleWhitespace(p.LastLine),
	}
}

func commentOf(has bool, value string) *tree.Comment {
	if !has {
		return nil
	}
	return &tree.Comment{Value: value}
}

func newlineOf(value string, fake bool) tree.Newline {
	if fake {
		return tree.Newline{Fakeness: tree.Fake}
	}
	v := value
	return tree.Newline{Value: &v, Fakeness: tree.Real}
}

func emptyLinesOf(raw []wsparse.EmptyLine) []tree.EmptyLine {
	out := make([]tree.EmptyLine, len(raw))
	for i, el := range raw {
		out[i] = tree.EmptyLine{
			Indent:      el.Indentation != "",
			Whitespace:  "",
			Comment:     commentOf(el.HasComment, el.Comment),
			Newline:     newlineOf(el.Newline, el.Fake),
			Indentation: el.Indentation,
		}
	}
	return out
}

// trailingWhitespace inflates the raw scan state at byteOffset into a
// structured tree.TrailingWhitespace.
func (c *ctx) trailingWhitespace(byteOffset int) (tree.TrailingWhitespace, *Error) {
	cur := wsparse.NewCursor(c.text, byteOffset)
	ws, comment, hasComment, nl, fake, err := cur.TrailingWhitespace()
	if err != nil {
		return tree.TrailingWhitespace{}, newError(TrailingWhitespaceError, posAt(c.text, byteOffset), err.Error())
	}
	return tree.TrailingWhitespace{
		Whitespace: tree.SimpleWhitespace(ws),
		Comment:    commentOf(hasComment, comment),
		Newline:    newlineOf(nl, fake),
	}, nil
}

func (c *ctx) emptyLines(byteOffset int, overrideIndent *string) ([]tree.EmptyLine, *Error) {
	cur := wsparse.NewCursor(c.text, byteOffset)
	lines := cur.EmptyLines(overrideIndent)
	return emptyLinesOf(lines), nil
}

func (c *ctx) leadingLines(stmt tree.Node) ([]tree.EmptyLine, *Error) {
	raw, ok := c.rt.LeadingRaw[stmt]
	if !ok {
		return nil, nil
	}
	return c.emptyLines(raw.ByteOffset, nil)
}

func posAt(text string, offset int) tree.Position {
	line, col := 1, 0
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return tree.Position{Line: line, Column: col, Offset: offset}
}

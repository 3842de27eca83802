package tree

import "github.com/zsol/libcst/internal/codegen"

// Comma separates elements in argument lists, collection displays, and
// parameter lists. A nil *Comma means no trailing comma is present.
type Comma struct {
	WhitespaceBefore *WhitespaceField
	WhitespaceAfter  *WhitespaceField
}

func (c *Comma) Codegen(s *codegen.State) {
	if c == nil {
		return
	}
	c.WhitespaceBefore.Codegen(s)
	s.WriteString(",")
	c.WhitespaceAfter.Codegen(s)
}

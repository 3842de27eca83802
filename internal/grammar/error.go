// Package grammar implements the PEG raw-tree builder (spec.md §4.2): it
// consumes the tokenizer's Token stream and the original source text and
// produces a tree.RawTree whose WhitespaceFields and side tables carry raw,
// not-yet-inflated scan state for internal/whitespace to finish.
package grammar

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zsol/libcst/internal/tree"
)

// Error is a parse failure (spec.md §4.2's ParserError): the grammar found
// no alternative of the current production matching the token at Location.
type Error struct {
	Expected   string
	Location   tree.Position
	IncidentID uuid.UUID
}

func newError(expected string, loc tree.Position) *Error {
	return &Error{Expected: expected, Location: loc, IncidentID: uuid.New()}
}

func (e *Error) Error() string {
	return fmt.Sprintf("parser error [%s] at line %d, column %d: expected %s",
		e.IncidentID, e.Location.Line, e.Location.Column, e.Expected)
}

// Package whitespace implements the second pass over a raw tree (spec.md
// §4.3): it walks every WhitespaceField, reclassifies the raw scan state
// the grammar left behind into a structured tree.Whitespace value, and
// attributes blank lines and trailing comments to exactly one owning node.
package whitespace

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zsol/libcst/internal/tree"
)

// Kind distinguishes the two failure modes spec.md §4.3 names.
type Kind int

const (
	InternalError Kind = iota
	TrailingWhitespaceError
)

// Error is raised by the inflater and is fatal for the whole parse
// (spec.md §7).
type Error struct {
	Kind       Kind
	Position   tree.Position
	Detail     string
	IncidentID uuid.UUID
}

func newError(kind Kind, pos tree.Position, detail string) *Error {
	return &Error{Kind: kind, Position: pos, Detail: detail, IncidentID: uuid.New()}
}

func (e *Error) Error() string {
	name := "internal error"
	if e.Kind == TrailingWhitespaceError {
		name = "missing mandatory trailing whitespace"
	}
	return fmt.Sprintf("whitespace error [%s] at line %d, column %d: %s: %s",
		e.IncidentID, e.Position.Line, e.Position.Column, name, e.Detail)
}

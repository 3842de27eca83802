package tokenizer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zsol/libcst/internal/tree"
)

// Reason is the closed set of tokenizer failure causes (spec.md §4.1).
type Reason int

const (
	BadDecimal Reason = iota
	UnterminatedString
	MixedTabsAndSpaces
	UnclosedParenthesis
	InvalidCharacter
)

func (r Reason) String() string {
	switch r {
	case BadDecimal:
		return "bad decimal literal"
	case UnterminatedString:
		return "unterminated string literal"
	case MixedTabsAndSpaces:
		return "inconsistent use of tabs and spaces in indentation"
	case UnclosedParenthesis:
		return "end of file inside parentheses"
	case InvalidCharacter:
		return "invalid character"
	default:
		return "unknown tokenizer error"
	}
}

// Error is raised synchronously by the tokenizer and is fatal for the whole
// parse (spec.md §7). IncidentID is a per-failure identifier a surrounding
// error-reporting façade can correlate across logs, minted with the same
// uuid.New() call cmd/libcst-bench uses for its RunID.
type Error struct {
	Reason     Reason
	Position   tree.Position
	Detail     string
	IncidentID uuid.UUID
}

func newError(reason Reason, pos tree.Position, detail string) *Error {
	return &Error{Reason: reason, Position: pos, Detail: detail, IncidentID: uuid.New()}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("tokenizer error [%s] at line %d, column %d: %s",
			e.IncidentID, e.Position.Line, e.Position.Column, e.Reason)
	}
	return fmt.Sprintf("tokenizer error [%s] at line %d, column %d: %s: %s",
		e.IncidentID, e.Position.Line, e.Position.Column, e.Reason, e.Detail)
}

package tree

// RawTree is the PEG grammar's output (spec.md §4.2): a Module whose
// WhitespaceField leaves already carry their own raw scan state inline, plus
// side tables recording the raw scan state for the structured
// leading-empty-lines / trailing-whitespace / footer slots that don't have
// an embedded WhitespaceField of their own. spec.md §9 sanctions this
// representation explicitly: "Implementations that represent this as
// side-tables rather than embedded fields are acceptable provided all
// round-trip properties still hold."
//
// Keys are the Node value that owns the slot (a SimpleStatementLine for its
// own TrailingWhitespace/LeadingLines, an IndentedBlock for its
// Header/Footer, and so on); Node values are always pointers under the
// interface, so they are valid, distinct map keys per node instance.
type RawTree struct {
	Module *Module

	// LeadingRaw maps a Statement to the raw scan state where its
	// leading_lines scan should begin.
	LeadingRaw map[Node]RawWhitespaceState

	// TrailingRaw maps a node carrying a TrailingWhitespace field (a
	// SimpleStatementLine, or a compound statement's header) to the raw
	// scan state where that trailing-whitespace scan should begin.
	TrailingRaw map[Node]RawWhitespaceState

	// FooterRaw maps a node carrying a Footer []EmptyLine (Module,
	// IndentedBlock) to the raw scan state where its footer scan should
	// begin. For an IndentedBlock, the override indent the
	// footer-attribution algorithm (spec.md §4.3) partitions against is
	// this entry's own AbsoluteIndent, not the block's relative Indent field.
	FooterRaw map[Node]RawWhitespaceState

	// LinesAfterRaw maps a FunctionDef/ClassDef to the raw scan state for
	// its LinesAfterDecorators slot: blank/comment lines between the last
	// decorator and the def/class keyword belong to the statement, never to
	// the decorator's own trailing_whitespace (spec.md §9 design note).
	LinesAfterRaw map[Node]RawWhitespaceState
}

// NewRawTree creates an empty side-table set around module.
func NewRawTree(module *Module) *RawTree {
	return &RawTree{
		Module:        module,
		LeadingRaw:    map[Node]RawWhitespaceState{},
		TrailingRaw:   map[Node]RawWhitespaceState{},
		FooterRaw:     map[Node]RawWhitespaceState{},
		LinesAfterRaw: map[Node]RawWhitespaceState{},
	}
}

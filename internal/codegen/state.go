// Package codegen implements the shared state the code generator threads
// through a tree traversal (spec.md §4.4): an output buffer, the current
// indent stack, and the newline/indent defaults detected from the source.
//
// The traversal itself lives on the tree node types (internal/tree) — each
// node type implements its own Codegen(*State) method, the way the
// teacher's reflection-driven encoder (pkg/yaml/encoder.go) dispatches per
// reflect.Kind, except our dispatch is static (the tree shape is fixed at
// compile time, so there is nothing to reflect over).
package codegen

import "strings"

// Options configures a Codegen run. The zero value uses "\n" newlines and a
// 4-space default indent, mirroring the teacher's Config-struct-with-
// defaults pattern (pkg/yaml/encoder.go's Config) rather than a global.
type Options struct {
	DefaultNewline string
	DefaultIndent  string
}

func (o Options) withDefaults() Options {
	if o.DefaultNewline == "" {
		o.DefaultNewline = "\n"
	}
	if o.DefaultIndent == "" {
		o.DefaultIndent = "    "
	}
	return o
}

// State is passed by pointer to every node's Codegen method. It is never
// shared across concurrent runs (spec.md §5: one parse/codegen call is a
// pure function of its input).
type State struct {
	buf            strings.Builder
	indentStack    []string
	DefaultNewline string
	DefaultIndent  string
}

// NewState creates codegen state for a single Codegen run.
func NewState(opts Options) *State {
	opts = opts.withDefaults()
	return &State{
		DefaultNewline: opts.DefaultNewline,
		DefaultIndent:  opts.DefaultIndent,
	}
}

// WriteString appends raw text to the output buffer.
func (s *State) WriteString(text string) { s.buf.WriteString(text) }

// String returns the accumulated output.
func (s *State) String() string { return s.buf.String() }

// PushIndent adds indent to the indent stack; pair with PopIndent.
func (s *State) PushIndent(indent string) { s.indentStack = append(s.indentStack, indent) }

// PopIndent removes the most recently pushed indent.
func (s *State) PopIndent() {
	if len(s.indentStack) > 0 {
		s.indentStack = s.indentStack[:len(s.indentStack)-1]
	}
}

// Indent returns the concatenation of every indent level currently on the
// stack — the absolute indent a statement at this depth must emit before
// its first token (spec.md invariant I4).
func (s *State) Indent() string {
	if len(s.indentStack) == 0 {
		return ""
	}
	var b strings.Builder
	for _, ind := range s.indentStack {
		b.WriteString(ind)
	}
	return b.String()
}

// WriteIndent writes the current absolute indent to the buffer. Called by
// each statement immediately before it emits its own leading tokens,
// matching the teacher's "each body statement is responsible for its own
// add_indent" rule (spec.md §4.4).
func (s *State) WriteIndent() { s.buf.WriteString(s.Indent()) }

package tree

import "github.com/zsol/libcst/internal/codegen"

// Module is the CST root (spec.md §3): an ordered list of top-level
// statements plus the trailing empty lines that follow the last one.
type Module struct {
	Body   []Statement
	Footer []EmptyLine

	// DefaultIndent and DefaultNewline are detected once from the source
	// (spec.md §6: "default_newline is detected from the first physical
	// line break") and threaded into every Codegen call so indentation and
	// newline synthesis stay consistent with the original file.
	DefaultIndent  string
	DefaultNewline string

	// HasBOM records whether the source began with a UTF-8 BOM; ParseModule
	// strips it before tokenizing (spec.md §6) and Codegen re-emits it here
	// so round-trip still holds for BOM-prefixed files.
	HasBOM bool
}

// Codegen renders the module back to source text (spec.md: "the last arrow
// must equal the first arrow's input for any well-formed program").
func (m *Module) Codegen(s *codegen.State) {
	if m.HasBOM {
		s.WriteString("\xef\xbb\xbf")
	}
	for _, stmt := range m.Body {
		stmt.Codegen(s)
	}
	for _, el := range m.Footer {
		el.Codegen(s)
	}
}

// CodegenOptions returns the codegen.Options this module was tokenized
// with, so pkg/libcst.Codegen doesn't need a second source of truth.
func (m *Module) CodegenOptions() codegen.Options {
	return codegen.Options{DefaultNewline: m.DefaultNewline, DefaultIndent: m.DefaultIndent}
}

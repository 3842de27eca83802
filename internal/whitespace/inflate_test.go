package whitespace

import (
	"testing"

	"github.com/zsol/libcst/internal/grammar"
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
)

func rawTreeFor(t *testing.T, src string) (*tree.RawTree, string) {
	t.Helper()
	toks, tokErr := tokenizer.Tokenize(src)
	if tokErr != nil {
		t.Fatalf("Tokenize failed: %v", tokErr)
	}
	raw, err := grammar.ParseTokensWithoutWhitespace(toks)
	if err != nil {
		t.Fatalf("ParseTokensWithoutWhitespace failed: %v", err)
	}
	return raw, src
}

func TestInflate_SimpleWhitespaceBetweenTokens(t *testing.T) {
	raw, src := rawTreeFor(t, "x  =  1\n")
	mod, err := Inflate(raw, src)
	if err != nil {
		t.Fatalf("Inflate failed: %v", err)
	}
	if len(mod.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(mod.Body))
	}
}

func TestInflate_CommentBelongsToTrailingWhitespace(t *testing.T) {
	raw, src := rawTreeFor(t, "x = 1  # note\n")
	mod, err := Inflate(raw, src)
	if err != nil {
		t.Fatalf("Inflate failed: %v", err)
	}
	line, ok := mod.Body[0].(*tree.SimpleStatementLine)
	if !ok {
		t.Fatalf("expected *tree.SimpleStatementLine, got %T", mod.Body[0])
	}
	if line.TrailingWhitespace.Comment == nil {
		t.Fatal("expected a trailing comment")
	}
	if line.TrailingWhitespace.Comment.Value != "# note" {
		t.Errorf("expected %q, got %q", "# note", line.TrailingWhitespace.Comment.Value)
	}
}

func TestInflate_BlankLineAfterDecoratorIsNotDecoratorTrailing(t *testing.T) {
	raw, src := rawTreeFor(t, "@decorator\n\ndef f():\n    pass\n")
	mod, err := Inflate(raw, src)
	if err != nil {
		t.Fatalf("Inflate failed: %v", err)
	}
	fn, ok := mod.Body[0].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", mod.Body[0])
	}
	dec := fn.Decorators[0]
	if dec.TrailingWhitespace.Comment != nil {
		t.Error("decorator's own trailing whitespace should carry no comment")
	}
	if len(fn.LinesAfterDecorators) != 1 {
		t.Errorf("expected 1 blank line in LinesAfterDecorators, got %d", len(fn.LinesAfterDecorators))
	}
}

func TestInflate_FooterCommentBetweenMethodsAttachesToNextLeadingLines(t *testing.T) {
	// The stray comment sits deeper than the class body (4 spaces) but
	// shallower than m's own body (8 spaces) — it must fall through to n's
	// LeadingLines, not get glued onto m's IndentedBlock.Footer.
	src := "class C:\n    def m(self):\n        x = 1\n      # stray\n    def n(self):\n        pass\n"
	raw, text := rawTreeFor(t, src)
	mod, err := Inflate(raw, text)
	if err != nil {
		t.Fatalf("Inflate failed: %v", err)
	}
	class, ok := mod.Body[0].(*tree.ClassDef)
	if !ok {
		t.Fatalf("expected *tree.ClassDef, got %T", mod.Body[0])
	}
	block, ok := class.Body.(*tree.IndentedBlock)
	if !ok {
		t.Fatalf("expected *tree.IndentedBlock, got %T", class.Body)
	}
	if len(block.Body) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(block.Body))
	}
	m, ok := block.Body[0].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", block.Body[0])
	}
	mBlock, ok := m.Body.(*tree.IndentedBlock)
	if !ok {
		t.Fatalf("expected *tree.IndentedBlock, got %T", m.Body)
	}
	if len(mBlock.Footer) != 0 {
		t.Errorf("expected m's footer to be empty, got %d lines", len(mBlock.Footer))
	}
	n, ok := block.Body[1].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", block.Body[1])
	}
	if len(n.LeadingLines) != 1 {
		t.Fatalf("expected 1 leading line on n, got %d", len(n.LeadingLines))
	}
	if n.LeadingLines[0].Comment == nil || n.LeadingLines[0].Comment.Value != "# stray" {
		t.Errorf("expected n's leading line to carry the stray comment, got %+v", n.LeadingLines[0])
	}
}

func TestInflate_IdempotentOnRepeatedCall(t *testing.T) {
	raw, src := rawTreeFor(t, "def f(a, b):\n    # explains\n    return a + b\n")
	first, err := Inflate(raw, src)
	if err != nil {
		t.Fatalf("first Inflate failed: %v", err)
	}
	second, err := Inflate(raw, src)
	if err != nil {
		t.Fatalf("second Inflate failed: %v", err)
	}
	if first != second {
		t.Error("expected Inflate to return the same *tree.Module instance it mutated in place")
	}
}

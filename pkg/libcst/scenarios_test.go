package libcst_test

import (
	"strings"
	"testing"

	"github.com/zsol/libcst/internal/grammar"
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
	"github.com/zsol/libcst/pkg/libcst"
)

// TestScenarioEllipsisBodySimpleSuite covers spec.md §8 scenario 1:
// "def f(): ..." parses and round-trips.
func TestScenarioEllipsisBodySimpleSuite(t *testing.T) {
	src := "def f(): ..."
	mod, err := libcst.ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if out := libcst.Codegen(mod); out != src {
		t.Fatalf("round-trip mismatch:\ninput:  %q\noutput: %q", src, out)
	}
}

// TestScenarioSimpleStatementSuiteBody covers spec.md §8 scenario 2: the
// function body suite is a SimpleStatementSuite containing one Expr(Ellipsis).
func TestScenarioSimpleStatementSuiteBody(t *testing.T) {
	src := "def g(a, b): ...\n"
	mod, err := libcst.ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if len(mod.Body) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(mod.Body))
	}
	fn, ok := mod.Body[0].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", mod.Body[0])
	}
	suite, ok := fn.Body.(*tree.SimpleStatementSuite)
	if !ok {
		t.Fatalf("expected *tree.SimpleStatementSuite body, got %T", fn.Body)
	}
	if len(suite.Body) != 1 {
		t.Fatalf("expected 1 small statement in suite, got %d", len(suite.Body))
	}
	exprStmt, ok := suite.Body[0].(*tree.Expr)
	if !ok {
		t.Fatalf("expected *tree.Expr, got %T", suite.Body[0])
	}
	if _, ok := exprStmt.Value.(*tree.Ellipsis); !ok {
		t.Fatalf("expected *tree.Ellipsis value, got %T", exprStmt.Value)
	}
	if out := libcst.Codegen(mod); out != src {
		t.Fatalf("round-trip mismatch:\ninput:  %q\noutput: %q", src, out)
	}
}

// TestScenarioBadDecimal covers spec.md §8 scenario 3: "1_" fails with a
// tokenizer BadDecimal error.
func TestScenarioBadDecimal(t *testing.T) {
	_, err := libcst.ParseModule("1_")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	tErr, ok := err.(*tokenizer.Error)
	if !ok {
		t.Fatalf("expected *tokenizer.Error, got %T (%v)", err, err)
	}
	if tErr.Reason != tokenizer.BadDecimal {
		t.Fatalf("expected BadDecimal, got %v", tErr.Reason)
	}
}

// TestScenarioBlankLineAfterDecorator covers spec.md §8 scenario 4: a blank
// line between a decorator and its def belongs to LinesAfterDecorators, not
// to the decorator's own trailing whitespace.
func TestScenarioBlankLineAfterDecorator(t *testing.T) {
	src := "@decorator\n\ndef f():\n    pass\n"
	mod, err := libcst.ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	fn, ok := mod.Body[0].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", mod.Body[0])
	}
	if len(fn.Decorators) != 1 {
		t.Fatalf("expected 1 decorator, got %d", len(fn.Decorators))
	}
	dec := fn.Decorators[0]
	if dec.TrailingWhitespace.Comment != nil {
		t.Fatalf("decorator's trailing whitespace should carry no comment, got %q", dec.TrailingWhitespace.Comment.Value)
	}
	if len(fn.LinesAfterDecorators) != 1 {
		t.Fatalf("expected 1 blank line in LinesAfterDecorators, got %d", len(fn.LinesAfterDecorators))
	}
	if out := libcst.Codegen(mod); out != src {
		t.Fatalf("round-trip mismatch:\ninput:  %q\noutput: %q", src, out)
	}
}

// TestScenarioCommentsInNestedIfElifElse covers spec.md §8 scenario 5: every
// comment interleaved at either indent level attributes to exactly one node,
// and the whole thing round-trips.
func TestScenarioCommentsInNestedIfElifElse(t *testing.T) {
	src := "if x:\n    # inside if\n    pass\n# before elif\nelif y:\n    pass\n    # inside elif, trailing\nelse:\n    # inside else\n    pass\n"
	mod, err := libcst.ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if out := libcst.Codegen(mod); out != src {
		t.Fatalf("round-trip mismatch:\ninput:  %q\noutput: %q", src, out)
	}

	ifStmt, ok := mod.Body[0].(*tree.If)
	if !ok {
		t.Fatalf("expected *tree.If, got %T", mod.Body[0])
	}
	elifStmt, ok := ifStmt.OrElse.(*tree.If)
	if !ok || !elifStmt.IsElif {
		t.Fatalf("expected an elif If node, got %#v", ifStmt.OrElse)
	}
	if len(elifStmt.LeadingLines) != 1 {
		t.Fatalf("expected 1 leading comment line on the elif clause, got %d", len(elifStmt.LeadingLines))
	}
	if elifStmt.LeadingLines[0].Comment == nil || elifStmt.LeadingLines[0].Comment.Value != "# before elif" {
		t.Fatalf("expected the '# before elif' comment on the elif clause's leading lines, got %#v", elifStmt.LeadingLines[0])
	}
	if _, ok := elifStmt.OrElse.(*tree.Else); !ok {
		t.Fatalf("expected a trailing *tree.Else, got %T", elifStmt.OrElse)
	}
}

// TestScenarioParenthesizedCommentIsWhitespace covers spec.md §8 scenario 6:
// a comment on the middle line of a parenthesized multi-line expression is
// part of ParenthesizedWhitespace.EmptyLines, not a separate statement.
func TestScenarioParenthesizedCommentIsWhitespace(t *testing.T) {
	src := "x = (1 +\n     # middle\n     2)\n"
	mod, err := libcst.ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if len(mod.Body) != 1 {
		t.Fatalf("expected exactly 1 statement (the comment must not become one), got %d", len(mod.Body))
	}
	line, ok := mod.Body[0].(*tree.SimpleStatementLine)
	if !ok || len(line.Body) != 1 {
		t.Fatalf("expected a single-statement SimpleStatementLine, got %#v", mod.Body[0])
	}
	assign, ok := line.Body[0].(*tree.Assign)
	if !ok {
		t.Fatalf("expected *tree.Assign, got %T", line.Body[0])
	}
	binop, ok := assign.Value.(*tree.BinaryOperation)
	if !ok {
		t.Fatalf("expected *tree.BinaryOperation, got %T", assign.Value)
	}
	pw, ok := binop.WhitespaceAfter.Value.(tree.ParenthesizedWhitespace)
	if !ok {
		t.Fatalf("expected ParenthesizedWhitespace after the '+', got %T", binop.WhitespaceAfter.Value)
	}
	if len(pw.EmptyLines) != 1 || pw.EmptyLines[0].Comment == nil || pw.EmptyLines[0].Comment.Value != "# middle" {
		t.Fatalf("expected '# middle' as a ParenthesizedWhitespace empty line, got %#v", pw.EmptyLines)
	}
	if out := libcst.Codegen(mod); out != src {
		t.Fatalf("round-trip mismatch:\ninput:  %q\noutput: %q", src, out)
	}
}

// TestParseStatementDiscardsEndMarker exercises the ParseStatement façade
// (spec.md §6): it must parse a single statement from a fragment lacking a
// trailing newline, ignoring the synthetic end-of-stream tokens.
func TestParseStatementDiscardsEndMarker(t *testing.T) {
	stmt, err := libcst.ParseStatement("x = 1")
	if err != nil {
		t.Fatalf("ParseStatement: %v", err)
	}
	if _, ok := stmt.(*tree.SimpleStatementLine); !ok {
		t.Fatalf("expected *tree.SimpleStatementLine, got %T", stmt)
	}
}

// TestParseExpressionDiscardsNewline exercises the ParseExpression façade
// (spec.md §6): it must parse a bare expression fragment, discarding the
// line's trailing newline and end marker.
func TestParseExpressionDiscardsNewline(t *testing.T) {
	expr, err := libcst.ParseExpression("1 + 2")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	binop, ok := expr.(*tree.BinaryOperation)
	if !ok {
		t.Fatalf("expected *tree.BinaryOperation, got %T", expr)
	}
	if binop.Operator != tree.OpAdd {
		t.Fatalf("expected '+', got %v", binop.Operator)
	}
}

// TestPrettifyErrorPointsAtFailure checks the error-prettify interface
// (spec.md §6) underlines the column where the malformed token begins.
func TestPrettifyErrorPointsAtFailure(t *testing.T) {
	src := "x = 1\ny = )\n"
	_, err := libcst.ParseModule(src)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	// ParseModule reports whichever pipeline stage failed; only format when
	// it is a grammar.Error, since PrettifyError's signature is specific to
	// that type.
	if ge, ok := err.(*grammar.Error); ok {
		report := libcst.PrettifyError(ge, src)
		if !strings.Contains(report, "y = )") {
			t.Fatalf("expected the failing line in the report, got:\n%s", report)
		}
		if !strings.Contains(report, "^") {
			t.Fatalf("expected a caret in the report, got:\n%s", report)
		}
	}
}

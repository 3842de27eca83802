package grammar

import (
	"testing"

	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
)

func assertNoError(t *testing.T, err *Error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err *Error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func parseSource(t *testing.T, src string) *tree.RawTree {
	t.Helper()
	toks, tokErr := tokenizer.Tokenize(src)
	if tokErr != nil {
		t.Fatalf("Tokenize failed: %v", tokErr)
	}
	raw, err := ParseTokensWithoutWhitespace(toks)
	assertNoError(t, err)
	return raw
}

func TestParse_EmptyModule(t *testing.T) {
	raw := parseSource(t, "")
	if len(raw.Module.Body) != 0 {
		t.Errorf("expected an empty body, got %d statements", len(raw.Module.Body))
	}
}

func TestParse_SimpleAssignment(t *testing.T) {
	raw := parseSource(t, "x = 1\n")
	if len(raw.Module.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(raw.Module.Body))
	}
	if _, ok := raw.Module.Body[0].(*tree.SimpleStatementLine); !ok {
		t.Errorf("expected *tree.SimpleStatementLine, got %T", raw.Module.Body[0])
	}
}

func TestParse_FunctionDefSimpleSuite(t *testing.T) {
	raw := parseSource(t, "def f(): ...\n")
	fn, ok := raw.Module.Body[0].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", raw.Module.Body[0])
	}
	suite, ok := fn.Body.(*tree.SimpleStatementSuite)
	if !ok {
		t.Fatalf("expected a SimpleStatementSuite body, got %T", fn.Body)
	}
	if len(suite.Body) != 1 {
		t.Fatalf("expected 1 small statement, got %d", len(suite.Body))
	}
	expr, ok := suite.Body[0].(*tree.Expr)
	if !ok {
		t.Fatalf("expected *tree.Expr, got %T", suite.Body[0])
	}
	if _, ok := expr.Value.(*tree.Ellipsis); !ok {
		t.Errorf("expected an Ellipsis expression, got %T", expr.Value)
	}
}

func TestParse_FunctionDefIndentedBlock(t *testing.T) {
	raw := parseSource(t, "def f(a, b):\n    return a + b\n")
	fn, ok := raw.Module.Body[0].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", raw.Module.Body[0])
	}
	if _, ok := fn.Body.(*tree.IndentedBlock); !ok {
		t.Errorf("expected an IndentedBlock body, got %T", fn.Body)
	}
	if len(fn.Params.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(fn.Params.Params))
	}
}

func TestParse_IfElifElse(t *testing.T) {
	raw := parseSource(t, "if x:\n    pass\nelif y:\n    pass\nelse:\n    pass\n")
	ifStmt, ok := raw.Module.Body[0].(*tree.If)
	if !ok {
		t.Fatalf("expected *tree.If, got %T", raw.Module.Body[0])
	}
	elif, ok := ifStmt.OrElse.(*tree.If)
	if !ok {
		t.Fatalf("expected the elif clause to be another *tree.If, got %T", ifStmt.OrElse)
	}
	if _, ok := elif.OrElse.(*tree.Else); !ok {
		t.Errorf("expected a final *tree.Else, got %T", elif.OrElse)
	}
}

func TestParse_DecoratorStack(t *testing.T) {
	raw := parseSource(t, "@first\n@second(1, 2)\ndef f():\n    pass\n")
	fn, ok := raw.Module.Body[0].(*tree.FunctionDef)
	if !ok {
		t.Fatalf("expected *tree.FunctionDef, got %T", raw.Module.Body[0])
	}
	if len(fn.Decorators) != 2 {
		t.Fatalf("expected 2 decorators, got %d", len(fn.Decorators))
	}
}

func TestParse_ChainedComparisonIsOneNode(t *testing.T) {
	raw := parseSource(t, "ok = 0 < x < 10\n")
	line := raw.Module.Body[0].(*tree.SimpleStatementLine)
	assign := line.Body[0].(*tree.Assign)
	cmp, ok := assign.Value.(*tree.Comparison)
	if !ok {
		t.Fatalf("expected *tree.Comparison, got %T", assign.Value)
	}
	if len(cmp.Comparisons) != 2 {
		t.Errorf("expected a chain of 2 comparison targets, got %d", len(cmp.Comparisons))
	}
}

func TestParse_UnexpectedTokenReportsItsOwnPosition(t *testing.T) {
	toks, tokErr := tokenizer.Tokenize("x = 1\ny = )\n")
	if tokErr != nil {
		t.Fatalf("Tokenize failed: %v", tokErr)
	}
	_, err := ParseTokensWithoutWhitespace(toks)
	assertError(t, err)
	if err.Location.Line != 2 || err.Location.Column != 4 {
		t.Errorf("expected the error at 2:4 (the stray ')'), got %d:%d", err.Location.Line, err.Location.Column)
	}
}

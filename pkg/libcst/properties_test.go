package libcst_test

import (
	"testing"

	"github.com/zsol/libcst/internal/codegen"
	"github.com/zsol/libcst/internal/tree"
	"github.com/zsol/libcst/pkg/libcst"
)

// TestByteConservationPerStatement drives P2 at the finest grain the public
// tree exposes (spec.md §8): codegen-ing each top-level statement on its own
// and concatenating the results must reproduce the exact source, the same
// way codegen-ing the whole module does.
func TestByteConservationPerStatement(t *testing.T) {
	src := "x = 1\ndef f():\n    return x\n\nclass C:\n    pass\n"
	mod, err := libcst.ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	s := codegen.NewState(mod.CodegenOptions())
	for _, stmt := range mod.Body {
		stmt.Codegen(s)
	}
	for _, el := range mod.Footer {
		el.Codegen(s)
	}
	if got := s.String(); got != src {
		t.Fatalf("per-statement concatenation mismatch:\nwant: %q\ngot:  %q", src, got)
	}
}

// TestParenBalance drives P3 (spec.md §8): every expression's matched
// parenthesis lists stay equal in length across a mix of zero, one, and
// doubly-parenthesized expressions.
func TestParenBalance(t *testing.T) {
	cases := []string{
		"x = 1\n",
		"x = (1)\n",
		"x = ((1))\n",
		"x = (1 + 2) * (3 - 4)\n",
		"f((a), (b), (c))\n",
	}
	for _, src := range cases {
		mod, err := libcst.ParseModule(src)
		if err != nil {
			t.Fatalf("ParseModule(%q): %v", src, err)
		}
		walkExpressions(t, mod)
	}
}

// walkExpressions visits every Expression reachable from a handful of
// common statement shapes and checks I3 (len(lpar) == len(rpar)) on each.
func walkExpressions(t *testing.T, mod *tree.Module) {
	t.Helper()
	for _, stmt := range mod.Body {
		line, ok := stmt.(*tree.SimpleStatementLine)
		if !ok {
			continue
		}
		for _, small := range line.Body {
			switch n := small.(type) {
			case *tree.Assign:
				checkBalance(t, n.Value)
			case *tree.Expr:
				checkBalance(t, n.Value)
				if call, ok := n.Value.(*tree.Call); ok {
					for _, arg := range call.Args {
						checkBalance(t, arg.Value)
					}
				}
			}
		}
	}
}

func checkBalance(t *testing.T, e tree.Expression) {
	t.Helper()
	if e == nil {
		return
	}
	if len(e.LParens()) != len(e.RParens()) {
		t.Errorf("unbalanced parens on %T: %d lpar, %d rpar", e, len(e.LParens()), len(e.RParens()))
	}
	switch n := e.(type) {
	case *tree.BinaryOperation:
		checkBalance(t, n.Left)
		checkBalance(t, n.Right)
	}
}

// TestInflaterIdempotence drives P4 (spec.md §8): this implementation's
// chosen answer is a value-idempotent no-op — running ParseWhitespace a
// second time over the same RawTree recomputes every field from the same
// untouched side tables and source text, producing byte-identical output,
// rather than erroring or corrupting already-inflated fields (each
// WhitespaceField's Inflated flag short-circuits re-inflation of the leaf
// whitespace values themselves).
func TestInflaterIdempotence(t *testing.T) {
	src := "def f(a, b):\n    # a comment\n    return a + b\n"
	toks, err := libcst.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	rt, err := libcst.ParseTokensWithoutWhitespace(toks)
	if err != nil {
		t.Fatalf("ParseTokensWithoutWhitespace: %v", err)
	}
	mod1, err := libcst.ParseWhitespace(rt, src)
	if err != nil {
		t.Fatalf("first ParseWhitespace: %v", err)
	}
	out1 := libcst.Codegen(mod1)
	if out1 != src {
		t.Fatalf("first inflation round-trip mismatch:\nwant: %q\ngot:  %q", src, out1)
	}

	mod2, err := libcst.ParseWhitespace(rt, src)
	if err != nil {
		t.Fatalf("second ParseWhitespace: %v", err)
	}
	out2 := libcst.Codegen(mod2)
	if out2 != src {
		t.Fatalf("second inflation round-trip mismatch:\nwant: %q\ngot:  %q", src, out2)
	}
}

package libcst_test

import (
	"testing"

	"github.com/zsol/libcst/pkg/libcst"
)

// FuzzTokenize tests the Tokenize function with random inputs.
func FuzzTokenize(f *testing.F) {
	f.Add("x = 1\n")
	f.Add("def f(a, b=1, *args, **kwargs):\n    return a + b\n")
	f.Add("if x:\n    pass\nelse:\n    pass\n")
	f.Add("")
	f.Add("\t \t\n")
	f.Add("'unterminated")
	f.Add("x = (1,\n     2,\n     3)\n")

	f.Fuzz(func(t *testing.T, data string) {
		// Tokenize should not panic on any input.
		_, _ = libcst.Tokenize(data)
	})
}

// FuzzParseModule tests the full parse pipeline with random inputs and
// checks the round-trip property (P1) whenever a parse succeeds.
func FuzzParseModule(f *testing.F) {
	f.Add("x = 1\n")
	f.Add("class C:\n    def m(self):\n        pass\n")
	f.Add("y = [a for a in range(10) if a % 2 == 0]\n")
	f.Add("# just a comment\n")
	f.Add("x = 1  # trailing comment\n")
	f.Add("\ufeffx = 1\n")
	f.Add("x = {\n    'a': 1,\n}\n")

	f.Fuzz(func(t *testing.T, data string) {
		mod, err := libcst.ParseModule(data)
		if err != nil {
			return
		}
		out := libcst.Codegen(mod)
		if out != data {
			t.Errorf("round-trip mismatch:\ninput:  %q\noutput: %q", data, out)
		}
	})
}

package libcst_test

import (
	"os"
	"testing"

	"github.com/zsol/libcst/internal/grammar"
	"github.com/zsol/libcst/internal/tokenizer"
	"github.com/zsol/libcst/internal/tree"
	"github.com/zsol/libcst/pkg/libcst"
	"gopkg.in/yaml.v3"
)

// corpusCase is one fixture in testdata/corpus.yaml: an input string plus
// its expected outcome, driving P1 (round_trip) and P5 (tokenizer_error /
// parser_error location) from one manifest rather than separate Go tables.
type corpusCase struct {
	Name           string `yaml:"name"`
	Outcome        string `yaml:"outcome"`
	Reason         string `yaml:"reason"`
	Input          string `yaml:"input"`
	ExpectedLine   int    `yaml:"expected_line"`
	ExpectedColumn int    `yaml:"expected_column"`
}

func loadCorpus(t *testing.T) []corpusCase {
	t.Helper()
	data, err := os.ReadFile("../../testdata/corpus.yaml")
	if err != nil {
		t.Fatalf("reading corpus fixture: %v", err)
	}
	var cases []corpusCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("unmarshaling corpus fixture: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("corpus fixture is empty")
	}
	return cases
}

var tokenizerReasons = map[string]tokenizer.Reason{
	"BadDecimal":          tokenizer.BadDecimal,
	"UnterminatedString":  tokenizer.UnterminatedString,
	"MixedTabsAndSpaces":  tokenizer.MixedTabsAndSpaces,
	"UnclosedParenthesis": tokenizer.UnclosedParenthesis,
	"InvalidCharacter":    tokenizer.InvalidCharacter,
}

// TestCorpus drives P1 and P5 (spec.md §8) over testdata/corpus.yaml: a
// round_trip case must satisfy codegen(parse_module(input)) == input; an
// error case must fail at exactly the named line/column.
func TestCorpus(t *testing.T) {
	for _, c := range loadCorpus(t) {
		t.Run(c.Name, func(t *testing.T) {
			switch c.Outcome {
			case "", "round_trip":
				mod, err := libcst.ParseModule(c.Input)
				if err != nil {
					t.Fatalf("ParseModule failed: %v", err)
				}
				if out := libcst.Codegen(mod); out != c.Input {
					t.Errorf("round-trip mismatch:\ninput:  %q\noutput: %q", c.Input, out)
				}
			case "tokenizer_error":
				_, err := libcst.ParseModule(c.Input)
				if err == nil {
					t.Fatal("expected a tokenizer error, got nil")
				}
				tErr, ok := err.(*tokenizer.Error)
				if !ok {
					t.Fatalf("expected *tokenizer.Error, got %T (%v)", err, err)
				}
				if c.Reason != "" {
					want, ok := tokenizerReasons[c.Reason]
					if !ok {
						t.Fatalf("unknown reason %q in fixture", c.Reason)
					}
					if tErr.Reason != want {
						t.Errorf("expected reason %v, got %v", want, tErr.Reason)
					}
				}
				checkLocation(t, tErr.Position, c)
			case "parser_error":
				_, err := libcst.ParseModule(c.Input)
				if err == nil {
					t.Fatal("expected a parser error, got nil")
				}
				gErr, ok := err.(*grammar.Error)
				if !ok {
					t.Fatalf("expected *grammar.Error, got %T (%v)", err, err)
				}
				checkLocation(t, gErr.Location, c)
			default:
				t.Fatalf("unknown outcome %q in fixture", c.Outcome)
			}
		})
	}
}

func checkLocation(t *testing.T, pos tree.Position, c corpusCase) {
	t.Helper()
	if pos.Line != c.ExpectedLine || pos.Column != c.ExpectedColumn {
		t.Errorf("expected error at line %d, column %d; got line %d, column %d", c.ExpectedLine, c.ExpectedColumn, pos.Line, pos.Column)
	}
}

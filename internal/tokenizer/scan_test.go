package tokenizer

import "testing"

// realKinds strips Newline/Indent/Dedent/EndMarker so assertions can
// focus on the "real" tokens of a line, the same filtering collectTokens
// applies to whitespace in the reference tokenizer's own tests.
func realKinds(tokens []Token) []Kind {
	var kinds []Kind
	for _, tok := range tokens {
		switch tok.Kind {
		case Newline, Indent, Dedent, EndMarker:
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestTokenize_NameAndKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		text  string
	}{
		{"plain identifier", "count\n", Name, "count"},
		{"keyword", "return\n", Keyword, "return"},
		{"async marked specially", "async\n", Async, "async"},
		{"await marked specially", "await\n", Await, "await"},
		{"leading underscore", "_private\n", Name, "_private"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if toks[0].Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, toks[0].Kind)
			}
			if toks[0].String != tt.text {
				t.Errorf("expected text %q, got %q", tt.text, toks[0].String)
			}
		})
	}
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single quoted", "'hello'\n", "'hello'"},
		{"double quoted", `"hello"` + "\n", `"hello"`},
		{"escaped quote", `'it\'s'` + "\n", `'it\'s'`},
		{"triple quoted spans lines", "'''a\nb'''\n", "'''a\nb'''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if toks[0].Kind != String {
				t.Fatalf("expected String, got %v", toks[0].Kind)
			}
			if toks[0].String != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, toks[0].String)
			}
		})
	}
}

func TestTokenize_PrefixedStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"raw string", `r'C:\new'` + "\n", `r'C:\new'`},
		{"raw string uppercase", `R'C:\new'` + "\n", `R'C:\new'`},
		{"byte string", `b'abc'` + "\n", `b'abc'`},
		{"f-string", `f'hello {name}'` + "\n", `f'hello {name}'`},
		{"raw bytes combo", `rb'\d+'` + "\n", `rb'\d+'`},
		{"bytes raw combo reversed", `br'\d+'` + "\n", `br'\d+'`},
		{"raw f-string combo", `rf'\d+{n}'` + "\n", `rf'\d+{n}'`},
		{"unicode string", `u'abc'` + "\n", `u'abc'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if toks[0].Kind != String {
				t.Fatalf("expected a single String token, got %v (%q)", toks[0].Kind, toks[0].String)
			}
			if toks[0].String != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, toks[0].String)
			}
		})
	}
}

func TestTokenize_IdentifierResemblingPrefixStaysAName(t *testing.T) {
	// "rb" is a legal two-letter prefix, but only when a quote immediately
	// follows it — "rb2" must tokenize as one Name, not a truncated prefix.
	toks, err := Tokenize("rb2 = 1\n")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Kind != Name || toks[0].String != "rb2" {
		t.Errorf("expected Name %q, got %v %q", "rb2", toks[0].Kind, toks[0].String)
	}
}

func TestTokenize_UnterminatedStringReportsOpeningQuote(t *testing.T) {
	_, err := Tokenize("x = 'abc\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Reason != UnterminatedString {
		t.Errorf("expected UnterminatedString, got %v", err.Reason)
	}
	if err.Position.Line != 1 || err.Position.Column != 4 {
		t.Errorf("expected error at 1:4 (the opening quote), got %d:%d", err.Position.Line, err.Position.Column)
	}
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"integer", "42\n"},
		{"float", "3.14\n"},
		{"exponent", "1e10\n"},
		{"signed exponent", "1e-10\n"},
		{"hex", "0xFF\n"},
		{"underscore separated", "1_000\n"},
		{"imaginary", "1j\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if toks[0].Kind != Number {
				t.Fatalf("expected Number, got %v", toks[0].Kind)
			}
		})
	}
}

func TestTokenize_BadDecimalTrailingUnderscore(t *testing.T) {
	_, err := Tokenize("1_")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Reason != BadDecimal {
		t.Errorf("expected BadDecimal, got %v", err.Reason)
	}
}

func TestTokenize_IndentAndDedent(t *testing.T) {
	input := "if x:\n    pass\ny = 1\n"
	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var sawIndent, sawDedent bool
	for _, tok := range toks {
		if tok.Kind == Indent {
			sawIndent = true
		}
		if tok.Kind == Dedent {
			sawDedent = true
		}
	}
	if !sawIndent {
		t.Error("expected an Indent token")
	}
	if !sawDedent {
		t.Error("expected a Dedent token")
	}
}

func TestTokenize_DedentMismatchErrors(t *testing.T) {
	// four spaces then two: two doesn't match any outer level (0 or 4).
	input := "if x:\n    pass\n  y = 1\n"
	_, err := Tokenize(input)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Reason != MixedTabsAndSpaces {
		t.Errorf("expected MixedTabsAndSpaces, got %v", err.Reason)
	}
}

func TestTokenize_NewlineSuppressedInsideParens(t *testing.T) {
	input := "x = (1 +\n     2)\n"
	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	newlines := 0
	for _, tok := range toks {
		if tok.Kind == Newline {
			newlines++
		}
	}
	if newlines != 1 {
		t.Errorf("expected exactly 1 Newline token (the line-ending one), got %d", newlines)
	}
}

func TestTokenize_UnclosedParenthesisAtEOF(t *testing.T) {
	_, err := Tokenize("x = (1 + 2\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Reason != UnclosedParenthesis {
		t.Errorf("expected UnclosedParenthesis, got %v", err.Reason)
	}
}

func TestTokenize_EndsInEndMarker(t *testing.T) {
	toks, err := Tokenize("x = 1\n")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[len(toks)-1].Kind != EndMarker {
		t.Errorf("expected the last token to be EndMarker, got %v", toks[len(toks)-1].Kind)
	}
}

func TestTokenize_FakeNewlineAtEOFWithoutTrailingNewline(t *testing.T) {
	// No trailing \n in the source; the fake-newline rule still synthesizes
	// one so every logical line ends the same way.
	toks, err := Tokenize("x = 1")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var sawNewline bool
	for _, tok := range toks {
		if tok.Kind == Newline {
			sawNewline = true
		}
	}
	if !sawNewline {
		t.Error("expected a synthesized Newline token before EndMarker")
	}
}

func TestTokenize_OperatorSequence(t *testing.T) {
	toks, err := Tokenize("a + b\n")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	kinds := realKinds(toks)
	if len(kinds) != 3 || kinds[0] != Name || kinds[1] != Op || kinds[2] != Name {
		t.Errorf("expected [Name Op Name], got %v", kinds)
	}
}

func TestDetectDefaultNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix", "a\nb\n", "\n"},
		{"windows", "a\r\nb\r\n", "\r\n"},
		{"classic mac", "a\rb\r", "\r"},
		{"no newline at all", "abc", "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDefaultNewline(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

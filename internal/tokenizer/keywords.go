package tokenizer

// keywords is the closed set of reserved words of the targeted language
// revision. `async`/`await` are tokenized with their own Kind (spec.md §3)
// rather than folded into Keyword, since the grammar dispatches on them
// directly (spec.md §4.2's one-token compound-statement lookahead).
var keywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true,
	"break": true, "class": true, "continue": true,
	"def": true, "del": true,
	"elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true,
	"or": true, "pass": true,
	"raise": true, "return": true,
	"try": true, "while": true, "with": true, "yield": true,
}

// operators is tried longest-spelling-first so that, e.g., `**=` is not
// split into `**` and `=`.
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"->", ":=",
	"**", "//", "<<", ">>", "<=", ">=", "==", "!=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
	"(", ")", "[", "]", "{", "}", ",", ":", ".", ";", "=", "@",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">",
}

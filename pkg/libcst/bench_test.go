package libcst_test

import (
	"testing"

	"github.com/zsol/libcst/pkg/libcst"
)

var benchSource = "def fib(n):\n" +
	"    if n < 2:\n" +
	"        return n\n" +
	"    return fib(n - 1) + fib(n - 2)\n" +
	"\n" +
	"\n" +
	"class Counter:\n" +
	"    def __init__(self, start=0):\n" +
	"        self.value = start\n" +
	"\n" +
	"    def increment(self, by=1):\n" +
	"        self.value += by\n" +
	"        return self.value\n"

func BenchmarkParseModule(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := libcst.ParseModule(benchSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodegen(b *testing.B) {
	mod, err := libcst.ParseModule(benchSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = libcst.Codegen(mod)
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := libcst.Tokenize(benchSource); err != nil {
			b.Fatal(err)
		}
	}
}

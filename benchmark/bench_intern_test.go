package benchmark

import (
	"testing"

	intern "github.com/dzonerzy/go-optparse/internal/intern"
)

// Category: intern

func BenchmarkInterner_Intern(b *testing.B) {
	interner := intern.New(0)
	names := []string{"tags", "paths", "define", "include", "output"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		interner.Intern(names[i%len(names)])
	}
}

func BenchmarkInterner_Rune(b *testing.B) {
	interner := intern.New(0)
	group := []rune{'a', 'b', 'c', 'v', 'x', 'é'}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		interner.Rune(group[i%len(group)])
	}
}

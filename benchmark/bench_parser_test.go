package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-optparse/optparse"
)

// Category: parser

func buildRegistry() *optparse.Registry {
	reg := optparse.NewRegistry("bench")
	reg.Bool("all").Short('a')
	reg.Bool("brief").Short('b')
	reg.String("output").Short('o')
	reg.List("tags").Short('t')
	reg.String("include").Short('I').Multi()
	reg.Property("define").Short('D')
	return reg
}

func BenchmarkAssign(b *testing.B) {
	cases := []struct {
		name  string
		long  string
		words []string
	}{
		{"Boolean", "all", []string{"--all"}},
		{"Inline", "output", []string{"--output=out.bin"}},
		{"Separate", "output", []string{"-o", "out.bin"}},
		{"List", "tags", []string{"--tags=a,b,", "c", "d"}},
		{"Property", "define", []string{"-DDEBUG=1"}},
		{"Group", "all", []string{"-ab"}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			reg := buildRegistry()
			opt := reg.FindByName(tc.long)
			words := optparse.WordsFromArgs(tc.words)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				reg.Reset()
				if err := optparse.Assign(optparse.NewCursor(words), opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParserSimple(b *testing.B) {
	parser := optparse.NewParser(buildRegistry())
	args := []string{"--output", "out.bin", "-ab"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.ParseArgs(args)
		if err != nil {
			b.Fatal(err)
		}
		if v, ok := result.Option("o").Value(); !ok || v != "out.bin" {
			b.Fatalf("output not parsed")
		}
	}
}

func BenchmarkParserComplex(b *testing.B) {
	parser := optparse.NewParser(buildRegistry())
	args := []string{
		"-ab", "--tags=x,y,", "z", "-Ifoo.h", "-Ibar.h", "--define", "NDEBUG=1",
		"-DLEVEL=3", "--output=a.out", "--", "main.c", "util.c",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.ParseArgs(args)
		if err != nil {
			b.Fatal(err)
		}
		if len(result.Args) != 2 {
			b.Fatalf("positionals not parsed: %v", result.Args)
		}
	}
}

func BenchmarkParserDiagnostics(b *testing.B) {
	parser := optparse.NewParser(buildRegistry())
	args := []string{"--otput=x", "-D=1", "-ao", "--tags"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.ParseArgs(args)
		if err != nil {
			b.Fatal(err)
		}
		if result.Err() == nil {
			b.Fatal("expected diagnostics")
		}
	}
}

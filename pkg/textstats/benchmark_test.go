package textstats

import (
	"context"
	"io"
	"strings"
	"testing"
)

var benchText = strings.Repeat("The quick brown fox jumps over the lazy dog.\nPack my box with five dozen liquor jugs.\n\n", 200)

func BenchmarkSplit_Words(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Split(benchText, Words)
	}
}

func BenchmarkTally(b *testing.B) {
	tokens := Split(benchText, Words)
	n := NewNormalizer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewTally(tokens, n)
	}
}

func BenchmarkTally_NoCache(b *testing.B) {
	tokens := Split(benchText, Words)
	n := NewNormalizerWithSteps(0, Lowercase)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewTally(tokens, n)
	}
}

func BenchmarkLengthTable(b *testing.B) {
	tokens := Split(benchText, Words)
	n := NewNormalizer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewLengthTable(tokens, n)
	}
}

func BenchmarkRunner(b *testing.B) {
	runner := NewRunner(NewAnalyses(Options{}), io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := runner.Run(ctx, benchText); err != nil {
			b.Fatal(err)
		}
	}
}

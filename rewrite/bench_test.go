package rewrite_test

import (
	"math/rand"
	"testing"

	"github.com/mkravets/freeword/rewrite"
	"github.com/mkravets/freeword/word"
)

// benchmarkReduce runs Reduce over a fixed random word of length n.
// The word is sampled once, outside the timed loop.
func benchmarkReduce(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(42))
	gens := []rune{'a', 'b', 'c'}
	w := make(word.Word[rune], n)
	for i := range w {
		l := word.NewGen(gens[rng.Intn(len(gens))])
		if rng.Intn(2) == 0 {
			l = l.Inverse()
		}
		w[i] = l
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = rewrite.Reduce(w)
	}
}

// BenchmarkReduce_Small benchmarks the reducer on 100-letter words.
func BenchmarkReduce_Small(b *testing.B) { benchmarkReduce(b, 100) }

// BenchmarkReduce_Medium benchmarks the reducer on 10k-letter words.
func BenchmarkReduce_Medium(b *testing.B) { benchmarkReduce(b, 10_000) }

// BenchmarkReduce_Large benchmarks the reducer on 1M-letter words.
func BenchmarkReduce_Large(b *testing.B) { benchmarkReduce(b, 1_000_000) }

// BenchmarkReduce_WorstCaseCollapse benchmarks a word that cancels all
// the way to the identity: w ++ InvRev(w).
func BenchmarkReduce_WorstCaseCollapse(b *testing.B) {
	rng := rand.New(rand.NewSource(43))
	gens := []rune{'a', 'b', 'c'}
	half := make(word.Word[rune], 50_000)
	for i := range half {
		half[i] = word.NewGen(gens[rng.Intn(len(gens))])
	}
	w := word.Concat(half, half.InvRev())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rewrite.Reduce(w)
	}
}

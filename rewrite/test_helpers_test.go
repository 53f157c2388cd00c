package rewrite_test

import (
	"math/rand"
	"testing"

	"github.com/mkravets/freeword/word"
	"github.com/stretchr/testify/require"
)

// mustParse builds a word from the compact rune form, failing the test
// on malformed input.
func mustParse(t *testing.T, s string) word.Word[rune] {
	t.Helper()
	w, err := word.ParseRunes(s)
	require.NoError(t, err, "parse %q", s)

	return w
}

// randWord samples a length-n word over the alphabet {a,b,c} with
// uniformly random signs.  Callers seed rng themselves so property
// loops stay deterministic run to run.
func randWord(rng *rand.Rand, n int) word.Word[rune] {
	gens := []rune{'a', 'b', 'c'}
	w := make(word.Word[rune], n)
	for i := range w {
		l := word.NewGen(gens[rng.Intn(len(gens))])
		if rng.Intn(2) == 0 {
			l = l.Inverse()
		}
		w[i] = l
	}

	return w
}

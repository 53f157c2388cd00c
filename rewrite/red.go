// Package rewrite: the multi-step reduction relation.
package rewrite

import (
	"fmt"

	"github.com/mkravets/freeword/word"
)

// Red reports whether w2 is reachable from w1 by zero or more
// cancellation steps — the reflexive-transitive closure of Step.
//
// Decision procedure: breadth-first search from w1 over all one-step
// cancellations, with a visited set to merge converging branches.
// The search always terminates because every step shortens the word by
// 2, and it can prune any level once words become shorter than w2.
//
// Red is meant for tests and exploratory tooling on small words; use
// Reduce for canonical forms on hot paths.
// Complexity: exponential in the number of overlapping cancellations
// in the worst case, linear for already-reduced words.
func Red[G comparable](w1, w2 word.Word[G]) bool {
	if len(w2) > len(w1) || (len(w1)-len(w2))%2 != 0 {
		return false
	}
	if w1.Equal(w2) {
		return true
	}

	queue := []word.Word[G]{w1}
	visited := map[string]bool{wordKey(w1): true}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, i := range Cancellations(curr) {
			next, err := CancelAt(curr, i)
			if err != nil {
				continue
			}
			if next.Equal(w2) {
				return true
			}
			// Anything already at or below the target length can only
			// shrink further away from it.
			if len(next) <= len(w2) {
				continue
			}
			if k := wordKey(next); !visited[k] {
				visited[k] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}

// wordKey derives a dedup key for the visited set.  fmt is faithful for
// the comparable alphabets this search is used with; the key never
// escapes the package.
func wordKey[G comparable](w word.Word[G]) string {
	return fmt.Sprint(w)
}

package rewrite

import "github.com/mkravets/freeword/word"

// Test-Bridge (White-Box) for the reducer's cancellation counter.
//
// Purpose:
//   - Expose the unexported reduceCount to rewrite_test ONLY, so the
//     at-most-len(w)/2-pops termination bound can be asserted without
//     widening the production API.
//
// Behavior & Determinism:
//   - Thin pass-through; no side effects beyond the wrapped function.

// ExportedReduceCount exposes reduceCount for white-box tests.
func ExportedReduceCount[G comparable](w word.Word[G]) (word.Word[G], int) {
	return reduceCount(w)
}

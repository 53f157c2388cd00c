// Package rewrite: the one-step cancellation relation.
//
// This file declares the package sentinels and the single-step surface:
// IsReduced, Cancellations, CancelAt, Step.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/mkravets/freeword/word"
)

// Sentinel errors for single-step rewriting.
var (
	// ErrIndexOutOfRange indicates a step position outside [0, len(w)-2].
	ErrIndexOutOfRange = errors.New("rewrite: step index out of range")

	// ErrNoCancellation indicates that the letters at the requested
	// position do not form a cancelling pair.
	ErrNoCancellation = errors.New("rewrite: no cancelling pair at index")
)

// IsReduced reports whether w contains no adjacent cancelling pair,
// i.e. whether no rewriting step applies.  The empty word and every
// singleton word are reduced.
// Complexity: O(n).
func IsReduced[G comparable](w word.Word[G]) bool {
	for i := 0; i+1 < len(w); i++ {
		if w[i].Cancels(w[i+1]) {
			return false
		}
	}

	return true
}

// Cancellations returns every position i at which one step applies,
// i.e. every i with w[i] and w[i+1] a cancelling pair.  A nil result
// means w is reduced.
// Complexity: O(n).
func Cancellations[G comparable](w word.Word[G]) []int {
	var idx []int
	for i := 0; i+1 < len(w); i++ {
		if w[i].Cancels(w[i+1]) {
			idx = append(idx, i)
		}
	}

	return idx
}

// CancelAt applies one rewriting step at position i, deleting the pair
// w[i], w[i+1].  The result is a fresh word exactly 2 letters shorter.
// Returns ErrIndexOutOfRange if i is not a valid pair position, or
// ErrNoCancellation if the letters at i do not cancel.
// Complexity: O(n).
func CancelAt[G comparable](w word.Word[G], i int) (word.Word[G], error) {
	if i < 0 || i+1 >= len(w) {
		return nil, fmt.Errorf("index %d, length %d: %w", i, len(w), ErrIndexOutOfRange)
	}
	if !w[i].Cancels(w[i+1]) {
		return nil, fmt.Errorf("index %d: %w", i, ErrNoCancellation)
	}
	out := make(word.Word[G], 0, len(w)-2)
	out = append(out, w[:i]...)
	out = append(out, w[i+2:]...)

	return out, nil
}

// Step reports whether w2 is reachable from w1 by exactly one
// cancellation, i.e. whether the one-step relation holds.  It never
// holds when w1 has fewer than two letters, and any witness w2 is
// exactly 2 letters shorter than w1.
// Complexity: O(n²) worst case (one O(n) comparison per candidate pair).
func Step[G comparable](w1, w2 word.Word[G]) bool {
	if len(w2) != len(w1)-2 {
		return false
	}
	for _, i := range Cancellations(w1) {
		cand, err := CancelAt(w1, i)
		if err != nil {
			continue
		}
		if cand.Equal(w2) {
			return true
		}
	}

	return false
}

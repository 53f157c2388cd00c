// Package freegroup: the Element type and the group operations.
//
// Invariant maintained by every constructor and operation: the word
// held inside an Element is fully reduced.  Everything in this file
// leans on that invariant; it is what makes Equal a plain slice
// comparison and Inv allocation-minimal.
package freegroup

import (
	"github.com/mkravets/freeword/rewrite"
	"github.com/mkravets/freeword/word"
)

// Element is a free-group element over the alphabet G, represented by
// its unique fully reduced word.  The zero value is the identity.
// Elements are immutable; all operations return fresh values.
type Element[G comparable] struct {
	w word.Word[G] // reduced, never mutated
}

// Mk constructs the canonical element for an arbitrary word, reducing
// it first.  The input slice is not retained.
// Complexity: O(n).
func Mk[G comparable](w word.Word[G]) Element[G] {
	return Element[G]{w: rewrite.Reduce(w)}
}

// Of returns the element of a single generator: the singleton word
// (g, true), which is already reduced.
func Of[G comparable](g G) Element[G] {
	return Element[G]{w: word.Word[G]{word.NewGen(g)}}
}

// One returns the identity element, the empty word.
func One[G comparable]() Element[G] {
	return Element[G]{}
}

// Word returns a fresh copy of the canonical reduced word.
func (a Element[G]) Word() word.Word[G] {
	return a.w.Clone()
}

// Norm returns the length of the canonical word — the word-length norm.
// Norm is 0 exactly on the identity.
func (a Element[G]) Norm() int {
	return len(a.w)
}

// IsOne reports whether a is the identity.
func (a Element[G]) IsOne() bool {
	return len(a.w) == 0
}

// Equal reports whether a and b are the same group element.  Thanks to
// uniqueness of reduced forms this is a structural comparison of the
// canonical words.
// Complexity: O(n).
func (a Element[G]) Equal(b Element[G]) bool {
	return a.w.Equal(b.w)
}

// Mul returns the group product a·b: the concatenation of the two
// canonical words, re-reduced.  Cancellation can only happen across
// the seam, but the single reducer pass handles arbitrary collapse
// (e.g. a·b times b⁻¹·a⁻¹ cancels down to the identity).
// Complexity: O(len(a)+len(b)).
func (a Element[G]) Mul(b Element[G]) Element[G] {
	return Element[G]{w: rewrite.Reduce(word.Concat(a.w, b.w))}
}

// Inv returns the group inverse a⁻¹.  The formal inverse of a reduced
// word is itself reduced (reversal cannot create an adjacent cancelling
// pair that was not already there), so no reducer pass is needed.
// Complexity: O(n).
func (a Element[G]) Inv() Element[G] {
	return Element[G]{w: a.w.InvRev()}
}

// Pow returns aⁿ for any integer n; negative exponents go through Inv,
// Pow(a, 0) is the identity.
// Complexity: O(|n|·len(a)).
func (a Element[G]) Pow(n int) Element[G] {
	base := a
	if n < 0 {
		base = a.Inv()
		n = -n
	}
	out := One[G]()
	for ; n > 0; n-- {
		out = out.Mul(base)
	}

	return out
}

// Format renders the canonical word using f to name generators; see
// word.Format for the notation.
func (a Element[G]) Format(f func(G) string) string {
	return word.Format(a.w, f)
}

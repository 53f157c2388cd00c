// Package freegroup: cyclic reduction and the conjugacy test.
//
// Conjugacy in free groups is decidable by a classical two-step
// procedure: cyclically reduce both elements, then check whether one
// cyclic word is a rotation of the other.
package freegroup

import "github.com/mkravets/freeword/word"

// CyclicReduce strips matching inverse pairs from the two ends of the
// canonical word until the first and last letters no longer cancel.
// The result is conjugate to a (each stripped pair is one conjugation)
// and is the shortest element in a's conjugacy class.
//
// A reduced word stays reduced under this stripping: only the ends are
// removed, interior adjacencies are untouched.
// Complexity: O(n).
func CyclicReduce[G comparable](a Element[G]) Element[G] {
	w := a.w
	lo, hi := 0, len(w)
	for hi-lo >= 2 && w[lo].Cancels(w[hi-1]) {
		lo++
		hi--
	}
	if lo == 0 {
		return a
	}
	out := make(word.Word[G], hi-lo)
	copy(out, w[lo:hi])

	return Element[G]{w: out}
}

// IsConjugate reports whether a and b lie in the same conjugacy class.
// Two elements are conjugate exactly when their cyclic reductions are
// rotations of one another.
// Complexity: O(n²) in the cyclically reduced length.
func IsConjugate[G comparable](a, b Element[G]) bool {
	u := CyclicReduce(a).w
	v := CyclicReduce(b).w
	if len(u) != len(v) {
		return false
	}
	if len(u) == 0 {
		return true
	}
	for r := 0; r < len(u); r++ {
		if rotationEqual(u, v, r) {
			return true
		}
	}

	return false
}

// rotationEqual reports whether rotating u left by r letters yields v.
func rotationEqual[G comparable](u, v word.Word[G], r int) bool {
	n := len(u)
	for i := 0; i < n; i++ {
		if u[(i+r)%n] != v[i] {
			return false
		}
	}

	return true
}

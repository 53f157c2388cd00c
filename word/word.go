// Package word: pure operations on Words.
//
// Every function here returns a freshly allocated slice and leaves its
// arguments untouched.  All are single linear passes.
package word

import "strings"

// Clone returns an independent copy of w.
// Complexity: O(n).
func (w Word[G]) Clone() Word[G] {
	if len(w) == 0 {
		return nil
	}
	out := make(Word[G], len(w))
	copy(out, w)

	return out
}

// Equal reports whether w and o are the same sequence of letters.
// Complexity: O(n).
func (w Word[G]) Equal(o Word[G]) bool {
	if len(w) != len(o) {
		return false
	}
	for i := range w {
		if w[i] != o[i] {
			return false
		}
	}

	return true
}

// Concat joins any number of words left to right into a fresh word.
// Complexity: O(total length).
func Concat[G comparable](ws ...Word[G]) Word[G] {
	total := 0
	for _, w := range ws {
		total += len(w)
	}
	if total == 0 {
		return nil
	}
	out := make(Word[G], 0, total)
	for _, w := range ws {
		out = append(out, w...)
	}

	return out
}

// InvRev returns the formal inverse of w: the letters in reverse order,
// each with its sign flipped.  InvRev is an involution:
// w.InvRev().InvRev() equals w for every word.
// Complexity: O(n).
func (w Word[G]) InvRev() Word[G] {
	if len(w) == 0 {
		return nil
	}
	out := make(Word[G], len(w))
	for i, l := range w {
		out[len(w)-1-i] = l.Inverse()
	}

	return out
}

// Map translates w letterwise into the alphabet H, preserving signs.
// Complexity: O(n).
func Map[G, H comparable](w Word[G], f func(G) H) Word[H] {
	if len(w) == 0 {
		return nil
	}
	out := make(Word[H], len(w))
	for i, l := range w {
		out[i] = Letter[H]{Gen: f(l.Gen), Sign: l.Sign}
	}

	return out
}

// Format renders w using f to name each generator.  Positive letters
// appear as f(g), inverse letters as f(g) followed by a prime, joined
// by middle dots: a·b'·a.  The empty word renders as "ε".
// Complexity: O(n).
func Format[G comparable](w Word[G], f func(G) string) string {
	if len(w) == 0 {
		return "ε"
	}
	parts := make([]string, len(w))
	for i, l := range w {
		if l.Sign {
			parts[i] = f(l.Gen)
		} else {
			parts[i] = f(l.Gen) + "'"
		}
	}

	return strings.Join(parts, "·")
}

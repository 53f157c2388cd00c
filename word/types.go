// Package word: Letter and Word type declarations.
//
// This file declares Letter, Word, the letter constructors NewGen and
// NewInv, and the elementary per-letter predicates used by the rewrite
// package.
package word

// Letter is a signed generator: the generator Gen itself when Sign is
// true, its formal inverse when Sign is false.
//
// Letter is a tiny value type; copy it freely.
type Letter[G comparable] struct {
	// Gen is the alphabet symbol this letter refers to.
	Gen G

	// Sign selects between the generator (true) and its inverse (false).
	Sign bool
}

// NewGen returns the positive letter for generator g.
func NewGen[G comparable](g G) Letter[G] {
	return Letter[G]{Gen: g, Sign: true}
}

// NewInv returns the formal inverse letter for generator g.
func NewInv[G comparable](g G) Letter[G] {
	return Letter[G]{Gen: g, Sign: false}
}

// Inverse returns the letter with the same generator and flipped sign.
func (l Letter[G]) Inverse() Letter[G] {
	return Letter[G]{Gen: l.Gen, Sign: !l.Sign}
}

// Cancels reports whether l and o form a cancelling pair: the same
// generator with opposite signs.  The relation is symmetric.
func (l Letter[G]) Cancels(o Letter[G]) bool {
	return l.Gen == o.Gen && l.Sign != o.Sign
}

// Word is an ordered, possibly-empty sequence of Letters.
//
// Words are immutable by convention: no exported operation mutates a
// Word in place, and callers must not rely on aliasing between an input
// and an output slice.  The empty word is the zero value.
type Word[G comparable] []Letter[G]

// Package freegroup: the universal property.
//
// Lift is the whole reason free groups are "free": a map from bare
// generators into any target group extends in exactly one way to a
// group homomorphism.  Map is the alphabet-to-alphabet specialisation.
package freegroup

import "github.com/mkravets/freeword/word"

// Group is the caller-supplied target of Lift: any associative
// operation with identity and inverses.  freegroup never constructs
// one; it only folds through it.
type Group[T any] interface {
	// Identity returns the neutral element.
	Identity() T

	// Op returns the product a·b.
	Op(a, b T) T

	// Inverse returns a⁻¹.
	Inverse(a T) T
}

// Lift extends the generator map f into the unique homomorphism from
// the free group over G into grp.  Each positive letter (x, true) maps
// to f(x), each inverse letter (x, false) to grp.Inverse(f(x)), and
// the images are multiplied left to right.
//
// Characterising properties (checked by the test suite):
//
//	Lift(grp, f)(Of(x))    = f(x)
//	Lift(grp, f)(a.Mul(b)) = grp.Op(Lift(grp, f)(a), Lift(grp, f)(b))
//
// and any homomorphism agreeing with f on generators agrees with the
// lift everywhere.
// Complexity: O(n) group operations per element.
func Lift[G comparable, T any](grp Group[T], f func(G) T) func(Element[G]) T {
	return func(a Element[G]) T {
		acc := grp.Identity()
		for _, l := range a.w {
			x := f(l.Gen)
			if !l.Sign {
				x = grp.Inverse(x)
			}
			acc = grp.Op(acc, x)
		}

		return acc
	}
}

// Map translates elements along a generator map f: G → H, the functor
// action of the free-group construction.  Semantically it is
// Lift(freegroup over H, Of∘f); operationally it applies f letterwise
// and re-reduces (f may glue distinct generators, creating new
// cancellations).
//
// Functor laws (checked by the test suite): mapping with the identity
// is the identity, and Map(g)∘Map(f) = Map(g∘f).
// Complexity: O(n).
func Map[G, H comparable](f func(G) H) func(Element[G]) Element[H] {
	return func(a Element[G]) Element[H] {
		return Mk(word.Map(a.w, f))
	}
}

// AdditiveGroup is the additive presentation of a group: Zero/Add/Neg
// instead of Identity/Op/Inverse.  Integers under addition are the
// canonical instance.
type AdditiveGroup[T any] interface {
	Zero() T
	Add(a, b T) T
	Neg(a T) T
}

// Multiplicative adapts an additive group to the Group interface, so
// Lift serves additive targets without a second fold: the "sum" of the
// letters of a word is just the lift into the adapted group.
func Multiplicative[T any](add AdditiveGroup[T]) Group[T] {
	return multiplicative[T]{add: add}
}

type multiplicative[T any] struct {
	add AdditiveGroup[T]
}

func (m multiplicative[T]) Identity() T   { return m.add.Zero() }
func (m multiplicative[T]) Op(a, b T) T   { return m.add.Add(a, b) }
func (m multiplicative[T]) Inverse(a T) T { return m.add.Neg(a) }

// Package freegroup builds the free group over an arbitrary comparable
// alphabet on top of the rewrite package's canonical forms.
//
// 🚀 What is an Element?
//
//	Every group element is represented directly by its unique fully
//	reduced word — no quotient bookkeeping, no equivalence classes at
//	runtime.  Two elements are equal exactly when their reduced words
//	are equal letter for letter, so equality is a structural slice
//	comparison.  Every operation re-reduces its result, keeping the
//	invariant alive without the caller ever thinking about it.
//
// ✨ Key operations:
//   - Mk / Of / One            — build elements from words or generators
//   - Mul / Inv / Pow          — the group structure (concat-then-reduce)
//   - Equal / Norm / Word      — decidable equality and the word length
//   - Lift                     — the universal property: any map from
//     generators into a target Group extends to the unique homomorphism
//   - Map                      — the functorial alphabet translation
//   - Dist / CyclicReduce / IsConjugate — word metric and the textbook
//     conjugacy test via cyclic reduction
//
// ⚙️ Usage:
//
//	a, b := freegroup.Of('a'), freegroup.Of('b')
//	x := a.Mul(b).Mul(a.Inv())        // a·b·a⁻¹, already canonical
//	x.Mul(x.Inv()).IsOne()            // true
//
// Elements are immutable values: safe to share across goroutines, safe
// to use as building blocks without defensive copies (Word hands out a
// clone).  Every operation is total and terminates; there are no error
// paths in this package.
package freegroup

// Package freegroup: the word metric and conjugation helpers.
package freegroup

// Dist returns the word-metric distance between a and b: the norm of
// a⁻¹·b.  It is a genuine metric on the free group — symmetric,
// zero exactly when a equals b, and the triangle inequality follows
// from norm subadditivity.
// Complexity: O(len(a)+len(b)).
func Dist[G comparable](a, b Element[G]) int {
	return a.Inv().Mul(b).Norm()
}

// Conj returns the conjugate x⁻¹·a·x.
func Conj[G comparable](a, x Element[G]) Element[G] {
	return x.Inv().Mul(a).Mul(x)
}

// Comm returns the commutator [a, b] = a⁻¹·b⁻¹·a·b.  It is the
// identity exactly when a and b commute.
func Comm[G comparable](a, b Element[G]) Element[G] {
	return a.Inv().Mul(b.Inv()).Mul(a).Mul(b)
}

// Package word provides the Letter and Word value types underlying the
// free-group machinery: signed generators over an arbitrary comparable
// alphabet, and ordered sequences of them.
//
// 🚀 What is a Word?
//
//	A Word[G] is a possibly-empty slice of Letter[G], where each Letter
//	pairs a generator with a sign: Sign=true is the generator itself,
//	Sign=false its formal inverse.  Words are plain values — no exported
//	operation ever mutates its receiver or arguments; everything returns
//	a fresh slice.
//
// ✨ Key operations:
//   - NewGen / NewInv — build single letters
//   - Concat          — join any number of words
//   - InvRev          — formal inversion: reverse and flip every sign;
//     an involution, and the word-level shadow of group inversion
//   - Map             — letterwise alphabet translation
//   - ParseRunes / FormatRunes — compact text form over rune alphabets
//     ("abA" reads as a·b·a⁻¹: lowercase generator, uppercase inverse)
//
// No reduction lives here: cancellation of adjacent inverse pairs is the
// business of the rewrite package.  word only models the raw sequences.
//
// Complexity: every operation in this package is a single linear pass.
package word

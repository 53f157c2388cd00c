// Package rewrite implements the cancellation rewriting system on free
// words: the one-step relation that deletes a single adjacent inverse
// pair, its reflexive-transitive closure, and a linear-time normalizer
// computing the unique fully reduced form of any word.
//
// 🚀 What is the rewriting system?
//
//	One rule only: anywhere a word contains a generator immediately
//	followed by its formal inverse (in either order), that pair may be
//	deleted.  Each application shortens the word by exactly 2, so every
//	rewriting sequence terminates.  The rule is locally confluent (two
//	overlapping cancellations can always be joined), hence by Newman's
//	lemma every word has exactly ONE irreducible form — the canonical
//	form computed by Reduce.
//
// ✨ Key operations:
//   - IsReduced      — no adjacent cancelling pair remains
//   - Cancellations  — all positions where one step applies
//   - CancelAt       — apply one step at a chosen position
//   - Step           — the one-step relation as a predicate
//   - Red            — reachability under any number of steps
//   - Reduce         — the stack-machine normalizer, O(n) time and space
//
// ⚙️ Usage:
//
//	w, _ := word.ParseRunes("abBA")
//	rewrite.Reduce(w)        // ε — everything cancels
//	rewrite.IsReduced(w)     // false
//
// Uniqueness of normal forms is a mathematical theorem about the rule,
// not something the code re-checks at runtime; the test suite pins down
// its observable consequences (idempotence of Reduce, and Reduce being
// constant on Red-reachability classes).
//
// Performance:
//
//   - Reduce: O(n) time, O(n) auxiliary memory, at most n/2 deletions.
//   - Red:    breadth-first search over shrinking words; intended for
//     the small words of tests and tooling, not hot paths.
package rewrite

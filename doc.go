// Package freeword is an in-memory toolkit for free groups: signed words
// over an arbitrary alphabet, a confluent cancellation rewriting system,
// and the group structure built on canonical (fully reduced) words.
//
// 🚀 What is freeword?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Letter/Word primitives: signed generators and immutable words
//		• Rewriting: one-step cancellation, its reflexive-transitive closure,
//		  and a linear-time stack reducer computing unique normal forms
//		• Free groups: Mul/Inv/Pow/Equal/Norm on canonical representatives
//		• Universal property: Lift extends any generator map to the unique
//		  homomorphism into a target group; Map translates between alphabets
//		• Word metric: Dist, cyclic reduction, conjugacy testing
//
// ✨ Why choose freeword?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every operation is total and terminates;
//     uniqueness of normal forms is pinned down by the test suite
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-safe for free – all values are immutable and every
//     operation allocates a fresh result, so no locks are ever needed
//
// Under the hood, everything is organized under three subpackages:
//
//	word/      — Letter and Word value types, concatenation, formal inversion
//	rewrite/   — cancellation step, Red closure, the Reduce normalizer
//	freegroup/ — Element type, group operations, Lift/Map, norm and metric
//
// Quick ASCII example:
//
//	a · b · b⁻¹ · a⁻¹  ──Reduce──▶  ε  (the empty word, the group identity)
//
// Dive into the per-package docs for algorithm outlines, complexity notes,
// and runnable examples.
//
//	go get github.com/mkravets/freeword
package freeword

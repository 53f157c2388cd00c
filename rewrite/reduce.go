package rewrite

import "github.com/mkravets/freeword/word"

// Reduce — canonical-form normalizer
//
// Description:
//
//	Reduce computes the unique fully reduced word reachable from w by
//	repeated cancellation.  Uniqueness is guaranteed by local confluence
//	of the cancellation rule plus termination (every step shortens the
//	word), so ANY order of cancellations yields this same result.
//
// Algorithm Outline (stack machine):
//  1. Scan w left to right with an accumulator acc (stack top at the
//     slice end), starting empty.
//  2. For each letter l:
//     – if acc is non-empty and its top cancels l, pop the top
//     (the adjacent inverse pair disappears);
//     – otherwise push l.
//  3. acc is the reduced word: every surviving adjacent pair was
//     checked at push time, exactly like bracket matching.
//
// Guarantees:
//   - Reduce(Reduce(w)) = Reduce(w)                  (idempotence)
//   - Red(w1, w2) implies Reduce(w1) = Reduce(w2)    (confluence)
//   - at most len(w)/2 pops ever happen              (termination bound)
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n), one fresh output slice
func Reduce[G comparable](w word.Word[G]) word.Word[G] {
	out, _ := reduceCount(w)

	return out
}

// reduceCount runs the stack machine and also reports how many pairs
// were cancelled; the counter is exposed to the white-box tests that
// check the len(w)/2 bound.
func reduceCount[G comparable](w word.Word[G]) (word.Word[G], int) {
	if len(w) == 0 {
		return nil, 0
	}
	acc := make(word.Word[G], 0, len(w))
	pops := 0
	for _, l := range w {
		if n := len(acc); n > 0 && acc[n-1].Cancels(l) {
			acc = acc[:n-1]
			pops++
			continue
		}
		acc = append(acc, l)
	}
	if len(acc) == 0 {
		return nil, pops
	}

	return acc, pops
}

// Package word: compact text form over rune alphabets.
//
// The convention follows computational-group-theory practice: a lowercase
// letter is a generator, the corresponding uppercase letter its inverse,
// so "abA" reads as a·b·a⁻¹.  Whitespace is ignored.
package word

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrBadRune is returned by ParseRunes for any rune that is neither a
// letter nor whitespace.  Check with errors.Is.
var ErrBadRune = errors.New("word: rune is not a letter")

// ParseRunes parses the compact rune form of a word: each lowercase
// letter becomes a positive letter over its own rune, each uppercase
// letter the inverse of its lowercase counterpart.  Whitespace between
// letters is skipped.  Any other rune yields ErrBadRune wrapped with
// its position.
// Complexity: O(n).
func ParseRunes(s string) (Word[rune], error) {
	var out Word[rune]
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsLower(r):
			out = append(out, NewGen(r))
		case unicode.IsUpper(r):
			out = append(out, NewInv(unicode.ToLower(r)))
		default:
			return nil, fmt.Errorf("at byte %d (%q): %w", i, r, ErrBadRune)
		}
	}

	return out, nil
}

// FormatRunes renders a word over a lowercase rune alphabet back into
// the compact form accepted by ParseRunes: positive letters verbatim,
// inverse letters uppercased.  The empty word renders as "".
// Complexity: O(n).
func FormatRunes(w Word[rune]) string {
	runes := make([]rune, len(w))
	for i, l := range w {
		if l.Sign {
			runes[i] = l.Gen
		} else {
			runes[i] = unicode.ToUpper(l.Gen)
		}
	}

	return string(runes)
}

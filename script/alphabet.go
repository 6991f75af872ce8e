package script

import (
	"unicode"
)

// Letters of the two conventions, lower case. Digits are part of both.
const (
	CurrentLetters = "abcdefghijklmnopqrstuvxyz\u02BB\u02BC0123456789"
	LegacyLetters  = "abdefghijklmnopqrstuvxyzöğşç0123456789"
)

// Alphabet is the set of characters expected in text of a convention.
// Whitespace, punctuation and symbols are always admitted.
type Alphabet struct {
	letters map[rune]bool
}

// NewAlphabet creates an alphabet from a string of letters. Upper and
// lower case variants of each letter are included.
func NewAlphabet(letters string) *Alphabet {
	a := &Alphabet{letters: make(map[rune]bool, 2*len(letters))}
	for _, r := range letters {
		a.letters[r] = true
		a.letters[unicode.ToUpper(r)] = true
		a.letters[unicode.ToLower(r)] = true
	}
	tracer().Debugf("alphabet with %d characters", len(a.letters))
	return a
}

// DefaultAlphabet returns the alphabet of direction d.
func DefaultAlphabet(d Direction) *Alphabet {
	if d == Legacy {
		return NewAlphabet(LegacyLetters)
	}
	return NewAlphabet(CurrentLetters)
}

// Contains is true if r may occur in text of this alphabet.
func (a *Alphabet) Contains(r rune) bool {
	if a == nil {
		return true
	}
	if a.letters[r] {
		return true
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return false
	}
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

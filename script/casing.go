package script

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Case classifies the capitalization of a word.
type Case int8

// Capitalization classes. A word without letters is Lower.
const (
	Lower Case = iota // oʻzbek
	Title             // Oʻzbek
	Upper             // OʻZBEK
	Mixed             // oʻZbek
)

// CaseOf returns the capitalization class of s. Only cased letters are
// considered, so okina and tutuq never influence the result.
func CaseOf(s string) Case {
	var upper, lower, n int
	firstUpper := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if n == 0 {
				firstUpper = true
			}
			upper++
			n++
		case unicode.IsLower(r):
			lower++
			n++
		}
	}
	switch {
	case upper == 0:
		return Lower
	case lower == 0 && upper > 1:
		return Upper
	case firstUpper && upper == 1:
		return Title
	case lower == 0:
		return Upper
	}
	return Mixed
}

// ApplyCase renders s with capitalization c. Lower and Mixed leave s as it
// is.
func ApplyCase(s string, c Case) string {
	switch c {
	case Upper:
		return cases.Upper(language.Uzbek).String(s)
	case Title:
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return s
		}
		return cases.Upper(language.Uzbek).String(string(r)) + s[size:]
	}
	return s
}

// Fold returns the case-folded form of s, for caseless comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ToLower returns s in lower case.
func ToLower(s string) string {
	return cases.Lower(language.Uzbek).String(s)
}

// NFC returns s in Unicode normalization form C.
func NFC(s string) string {
	return norm.NFC.String(s)
}

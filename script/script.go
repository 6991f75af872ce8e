/*
Package script holds the orthographic vocabulary of latinga: the two
target conventions, letter classes, apostrophe variants, casing and
normalisation helpers, and the alphabets the validator checks against.

Two Latin conventions of Uzbek are supported. The current orthography
writes the digraphs "sh" and "ch", the letters "oʻ" and "gʻ" with a
turned comma (okina, U+02BB), and the glottal stop with a modifier
apostrophe (tutuq, U+02BC). The legacy orthography writes single letters
"ş", "ç", "ö" and "ğ" instead.
*/
package script

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Direction is the script convention a conversion produces and a
// validation checks against.
type Direction int8

// Target conventions.
const (
	Current Direction = iota // oʻ gʻ sh ch
	Legacy                   // ö ğ ş ç
)

func (d Direction) String() string {
	switch d {
	case Current:
		return "current"
	case Legacy:
		return "legacy"
	}
	return "unknown"
}

// Other returns the opposite direction.
func (d Direction) Other() Direction {
	if d == Legacy {
		return Current
	}
	return Legacy
}

// ParseDirection parses a direction name. Uzbek names of the conventions
// ("joriy", "kelgusi") are accepted as well.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "current", "joriy", "j":
		return Current, true
	case "legacy", "kelgusi", "k":
		return Legacy, true
	}
	return Current, false
}

// Special characters.
const (
	Okina    = '\u02BB' // ʻ turned comma above the line, as in oʻ and gʻ
	Tutuq    = '\u02BC' // ʼ modifier apostrophe, the glottal stop
	ASCIIApo = '\''
)

// Apostrophes lists the characters which are commonly typed in place of
// okina and tutuq.
const Apostrophes = "'`\u2019\u2018\u00B4\u02BB\u02BC"

// IsApostrophe is true for every apostrophe-like character, including
// okina and tutuq.
func IsApostrophe(r rune) bool {
	return strings.ContainsRune(Apostrophes, r)
}

const vowels = "aeiouAEIOUöÖ" + "аеёиоуэюяўыАЕЁИОУЭЮЯЎЫ"

// IsVowel is true for Latin and Cyrillic vowels of Uzbek.
func IsVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// IsLetter is true for letters, including okina and tutuq.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// IsConsonant is true for letters which are neither vowels nor modifier
// letters.
func IsConsonant(r rune) bool {
	return unicode.IsLetter(r) && !IsVowel(r) && !unicode.Is(unicode.Lm, r)
}

// IsWordRune is true for runes which may be part of a word: letters, marks,
// digits and apostrophes.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || IsApostrophe(r)
}

package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/latinga/internal/dictfmt"
	"github.com/npillmayer/latinga/script"
)

// Class is a class of characters a rule context may require.
type Class int8

// Character classes for rule contexts.
const (
	ClassSet Class = iota // literal set of characters
	ClassVowel
	ClassConsonant
	ClassLetter
	ClassUpper
	ClassLower
	ClassDigit
	ClassSpace
	ClassApostrophe
	ClassBoundary
)

var classNames = map[string]Class{
	"vowel":      ClassVowel,
	"consonant":  ClassConsonant,
	"letter":     ClassLetter,
	"upper":      ClassUpper,
	"lower":      ClassLower,
	"digit":      ClassDigit,
	"space":      ClassSpace,
	"apostrophe": ClassApostrophe,
	"boundary":   ClassBoundary,
}

// Term is a single, possibly negated, class of a context condition.
type Term struct {
	Class  Class
	Set    string // characters of a ClassSet
	Negate bool
}

func (term Term) matches(r rune, present bool) bool {
	var m bool
	if !present {
		m = term.Class == ClassBoundary
	} else {
		switch term.Class {
		case ClassSet:
			m = strings.ContainsRune(term.Set, r)
		case ClassVowel:
			m = script.IsVowel(r)
		case ClassConsonant:
			m = script.IsConsonant(r)
		case ClassLetter:
			m = script.IsLetter(r)
		case ClassUpper:
			m = unicode.IsUpper(r)
		case ClassLower:
			m = unicode.IsLower(r)
		case ClassDigit:
			m = unicode.IsDigit(r)
		case ClassSpace:
			m = unicode.IsSpace(r)
		case ClassApostrophe:
			m = script.IsApostrophe(r)
		case ClassBoundary:
			m = !script.IsLetter(r)
		}
	}
	return m != term.Negate
}

func (term Term) String() string {
	var s string
	if term.Class == ClassSet {
		s = "[" + term.Set + "]"
	} else {
		for name, c := range classNames {
			if c == term.Class {
				s = name
			}
		}
	}
	if term.Negate {
		return "!" + s
	}
	return s
}

// Condition is a list of alternative terms. An empty condition always holds.
type Condition []Term

// Holds is true if the neighbour character r satisfies the condition.
// present is false if there is no neighbour, i.e. at the edge of the text.
func (cond Condition) Holds(r rune, present bool) bool {
	if len(cond) == 0 {
		return true
	}
	for _, term := range cond {
		if term.matches(r, present) {
			return true
		}
	}
	return false
}

func (cond Condition) String() string {
	terms := make([]string, len(cond))
	for i, term := range cond {
		terms[i] = term.String()
	}
	return strings.Join(terms, ",")
}

// Context restricts a rule to certain neighbours of the matched text.
type Context struct {
	Before Condition // condition for the character following the match
	After  Condition // condition for the character preceding the match
}

// Holds checks a context against the neighbours of a match.
func (ctx Context) Holds(prev rune, hasPrev bool, next rune, hasNext bool) bool {
	return ctx.After.Holds(prev, hasPrev) && ctx.Before.Holds(next, hasNext)
}

// IsEmpty is true for a context without conditions.
func (ctx Context) IsEmpty() bool {
	return len(ctx.Before) == 0 && len(ctx.After) == 0
}

// ParseCondition parses a comma separated list of classes.
func ParseCondition(s string) (Condition, error) {
	if s == "" {
		return nil, fmt.Errorf("empty condition")
	}
	var cond Condition
	for _, part := range splitClasses(s) {
		term := Term{}
		if strings.HasPrefix(part, "!") {
			term.Negate = true
			part = part[1:]
		}
		if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") && len(part) > 2 {
			term.Class = ClassSet
			term.Set = dictfmt.Unescape(part[1 : len(part)-1])
		} else if c, ok := classNames[strings.ToLower(part)]; ok {
			term.Class = c
		} else {
			return nil, fmt.Errorf("unknown character class %q", part)
		}
		cond = append(cond, term)
	}
	return cond, nil
}

// splitClasses splits at commas outside of brackets.
func splitClasses(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

package shield

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/latinga/internal/dictfmt"
	"github.com/npillmayer/latinga/trie"
)

// ErrEmptyPattern flags a regular expression which matches the empty string
// only, and therefore would never protect anything.
var ErrEmptyPattern = errors.New("pattern matches empty text only")

// PatternError reports a pattern which failed to compile.
type PatternError struct {
	Line    int
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("shield pattern at line %d (%q): %v", e.Line, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Format is the dictionary format of shield patterns: one pattern per line,
// taken literally.
var Format = dictfmt.Format{}

// regexChars are the characters which make a pattern line a regular
// expression.
const regexChars = `\[]()*?+^${}|`

// Patterns is a compiled, immutable set of user patterns.
type Patterns struct {
	regexps  []*regexp.Regexp
	literals *trie.Trie // lower-cased literals
	count    int
}

// Compile compiles serialized shield patterns. It fails on the first
// pattern which does not compile.
func Compile(serialized string) (*Patterns, error) {
	p := &Patterns{literals: trie.New()}
	sc := dictfmt.NewScanner(serialized, Format)
	for sc.Scan() {
		e := sc.Entry()
		if strings.ContainsAny(e.Text, regexChars) {
			re, err := regexp.Compile(e.Text)
			if err != nil {
				return nil, &PatternError{Line: e.Line, Pattern: e.Text, Err: err}
			}
			if isEmptyOnly(re) {
				return nil, &PatternError{Line: e.Line, Pattern: e.Text, Err: ErrEmptyPattern}
			}
			p.regexps = append(p.regexps, re)
		} else {
			p.literals.Insert(strings.ToLower(e.Text), len(p.regexps)+p.literals.Len())
		}
		p.count++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading shield patterns: %w", err)
	}
	p.literals.Freeze()
	tracer().Debugf("shield: compiled %d regular expressions and %d literals",
		len(p.regexps), p.literals.Len())
	return p, nil
}

// isEmptyOnly is true for expressions like "()" or "^$" which can only
// match empty text.
func isEmptyOnly(re *regexp.Regexp) bool {
	return strings.Trim(re.String(), "()^$") == ""
}

// Len returns the number of patterns.
func (p *Patterns) Len() int {
	if p == nil {
		return 0
	}
	return p.count
}

func (p *Patterns) collect(text string, c *collector) {
	if p == nil {
		return
	}
	for _, re := range p.regexps {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			if len(loc) >= 4 && loc[2] >= 0 {
				start, end = loc[2], loc[3]
			}
			c.add(start, end, false)
		}
	}
	if p.literals.Len() > 0 {
		collectLiterals(text, p.literals, c)
	}
}

// collectLiterals finds whole-word occurrences of literals, ignoring case.
// At each word start the longest literal ending at a word boundary wins.
func collectLiterals(text string, literals *trie.Trie, c *collector) {
	prevWord := false
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if prevWord {
			prevWord = isWordChar(r)
			pos += size
			continue
		}
		end := -1
		it := literals.Iterator()
		for i, q := range text[pos:] {
			if !it.Next(unicode.ToLower(q)) {
				break
			}
			e := pos + i + utf8.RuneLen(q)
			if len(it.Values()) > 0 && !startsWithWordChar(text[e:]) {
				end = e
			}
		}
		if end > 0 {
			c.add(pos, end, false)
			last, _ := utf8.DecodeLastRuneInString(text[:end])
			prevWord = isWordChar(last)
			pos = end
			continue
		}
		prevWord = isWordChar(r)
		pos += size
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func startsWithWordChar(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && isWordChar(r)
}

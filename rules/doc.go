/*
Package rules implements substitution rule sets for latinga.

A rule rewrites a source string to a target string, optionally only in a
given context. Rule sets are loaded from a line-oriented text format:

    # one-way rule: source : target
    sh : ş
    # a pair of spellings, current = legacy; the half matching the
    # engine's direction is active
    oʻ = ö | fold
    # qualifiers follow a '|'
    e : ye | after=boundary,vowel fold
    ц : ts | after=vowel dir=current

Entries may be separated by newlines or by ';'. A '#' starts a comment.
A backslash escapes the next character; `\s` stands for a space.

Qualifiers are

    prio=N              priority; ties between equally long matches are
                        broken by higher priority, then by load order
    before=CLASS,...    the character following the match is of CLASS
    after=CLASS,...     the character preceding the match is of CLASS
    dir=current|legacy  the rule is active for one direction only
    fold                match regardless of case and carry the case of the
                        matched text over to the target

A CLASS is one of vowel, consonant, letter, upper, lower, digit, space,
apostrophe, boundary (text edge or a non-letter), or a literal set of
characters in brackets like [abc]. A leading '!' negates a class. Several
classes separated by ',' are alternatives.

Malformed entries are skipped, traced, and counted in the load statistics.

Resolution

At a text position, every rule whose source is a prefix of the remaining
text and whose context holds is a candidate. The longest source wins.
Among equally long sources, higher priority wins, then the rule loaded
first.
*/
package rules

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

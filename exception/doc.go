/*
Package exception holds tables of fixed word forms, mostly proper nouns,
which bypass substitution rules.

An exception table maps the surface form of a word, as it appears in the
input, to its canonical form in the target convention. Tables are loaded
from a line-oriented format; entries may be separated by newlines or commas:

    # a word which must not be touched
    Toshkent
    # surface : canonical
    Chorsu : Chorsu
    # a pair of spellings, current = legacy
    Oʻzbekiston = Özbekiston

A pair maps the spelling of the source convention to the spelling of the
target convention; which side is which follows the direction the table is
loaded for. The target spelling is entered as mapping onto itself.

Lookups are exact and case-sensitive on normalized (NFC) forms. A folded
index supports detecting words which match an exception only if case is
ignored.

Grammatical suffixes may follow an exception, as in "Toshkentda". Package
exception keeps a set of known suffixes to recognize such forms.
*/
package exception

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

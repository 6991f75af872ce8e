/*
Package latinga is a rule-driven transliteration engine for the two Latin
orthographies of Uzbek, together with a validator for script consistency.

Description

Uzbek is written in a current Latin orthography, which uses the digraphs
"sh" and "ch" and the letters "oʻ" and "gʻ", and in a legacy orthography
with single letters "ş", "ç", "ö" and "ğ". Converting between them is not a
character-by-character affair: proper nouns keep their spelling, embedded
foreign text (code, URLs, markup) must not be touched, and some letters
convert differently depending on their neighbours.

An Engine converts text towards one convention, chosen when the engine is
created. It holds three tables, each replaced as a whole by a load:

- substitution rules (package rules), which rewrite source strings to target
  strings, optionally restricted to a context of neighbouring characters;

- exceptions (package exception), fixed word forms which bypass rules;

- shield patterns (package shield), which protect spans of text from any
  conversion.

Converting text first computes the protected spans of the input. Everywhere
else, a word which is an exception is replaced by its canonical form, and
all other text is rewritten by the best matching rule at each position, or
passed through unchanged if no rule matches.

Validation scans text the same way, but instead of producing output it
reports issues: characters outside the alphabet of the convention, rules
flagged as questionable by a low priority, words which match an exception
only if case is ignored, and words still written in the other convention.

Package uzbek provides default tables for Uzbek, including rules to convert
Cyrillic Uzbek text.

BSD License

Copyright (c) 2017–20, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRETC, INDIRETC, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRATC, STRITC LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package latinga

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

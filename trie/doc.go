/*
Package trie implements a rune trie, used by latinga to index the source
sides of substitution rules, the surface forms of exceptions and literal
shield patterns.

The trie is suitable for write-once-read-many-times situations. Tables are
built once when a dictionary is loaded, frozen, and then queried for every
position of every input text. Queries walk the trie along the input and
report every key which is a prefix of the remaining text, which gives
callers the longest match as well as all shorter ones.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trie

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

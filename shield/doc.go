/*
Package shield finds protected spans of text, i.e. ranges which must pass
through a transliteration untouched.

Protected spans come from two sources. Users load patterns, one per line:

    # comment lines start with '#'
    # a line with regular expression syntax is compiled as a regular
    # expression; if it has a capture group, only the group is protected
    "([^"]*)"
    # any other line is a literal, matched case-insensitively as a whole word
    GitHub

Presets, selected when a Matcher is created, recognize common kinds of
embedded foreign text: markup, code, URLs, LaTeX and roman numerals. Preset
Marker protects text enclosed in "{]" and "[}" and removes the markers.

Spans of all sources are merged: the spans reported for an input are sorted
and never overlap.

Loading patterns is atomic. If any pattern fails to compile, the load
reports an error and the patterns loaded before stay active.
*/
package shield

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

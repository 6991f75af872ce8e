/*
Package uzbek provides default dictionaries for converting Uzbek text
between the current Latin orthography and the legacy convention.

The dictionaries are compiled into the binary. They cover

    - the letters which differ between both conventions (oʻ gʻ sh ch),
    - apostrophes typed in place of okina and tutuq,
    - conversion from Uzbek Cyrillic,
    - common proper nouns and the suffixes which may follow them,
    - brand names which are never converted.

Clients may load them into an engine of their own, or create a ready-made
engine with NewEngine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uzbek

import (
	_ "embed"
	"fmt"

	"github.com/npillmayer/latinga"
	"github.com/npillmayer/latinga/shield"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Default dictionaries in serialized form.
var (
	//go:embed data/rules.txt
	Rules string
	//go:embed data/exceptions.txt
	Exceptions string
	//go:embed data/suffixes.txt
	Suffixes string
	//go:embed data/shields.txt
	Shields string
)

// DefaultPresets are the shield presets of engines created by NewEngine.
// LaTeX is left out, as '%' starts a comment there but is common in
// plain text.
const DefaultPresets = shield.Marker | shield.Code | shield.Web | shield.Roman

// Setup loads the default dictionaries into e, replacing any tables
// loaded before.
func Setup(e *latinga.Engine) error {
	r := e.LoadSubstitutionRules(Rules)
	x := e.LoadExceptions(Exceptions)
	s := e.LoadSuffixes(Suffixes)
	if n := r.Skipped + x.Skipped + s.Skipped; n > 0 {
		return fmt.Errorf("uzbek: %d malformed entries in default dictionaries", n)
	}
	if err := e.LoadShieldPatterns(Shields); err != nil {
		return fmt.Errorf("uzbek: default shields: %w", err)
	}
	tracer().Debugf("uzbek: %d rules, %d exceptions, %d suffixes for direction %s",
		r.Accepted, x.Accepted, s.Accepted, e.Direction())
	return nil
}

// NewEngine creates an engine for direction dir, set up with the default
// dictionaries and DefaultPresets. Options are applied after the presets,
// which makes it possible to add further presets.
func NewEngine(dir latinga.Direction, opts ...latinga.Option) (*latinga.Engine, error) {
	opts = append([]latinga.Option{latinga.WithShieldPresets(DefaultPresets)}, opts...)
	e := latinga.New(dir, opts...)
	if err := Setup(e); err != nil {
		return nil, err
	}
	return e, nil
}

package latinga

import (
	"github.com/npillmayer/latinga/exception"
	"github.com/npillmayer/latinga/rules"
	"github.com/npillmayer/latinga/script"
	"github.com/npillmayer/latinga/shield"
)

// Direction is the script convention an engine converts to.
type Direction = script.Direction

// Target conventions.
const (
	Current = script.Current // oʻ gʻ sh ch
	Legacy  = script.Legacy  // ö ğ ş ç
)

// Engine converts and validates text for one target convention.
//
// An Engine is not safe for concurrent use. Clients converting text in
// parallel should create an engine per goroutine.
type Engine struct {
	dir        Direction
	alphabet   *script.Alphabet
	threshold  int
	presets    shield.Preset
	rules      *rules.Set
	exceptions *exception.Table
	suffixes   *exception.Suffixes
	shields    *shield.Matcher
}

// Option configures an engine.
type Option func(*Engine)

// WithAlphabet sets the letters the validator expects. Upper and lower
// case variants are included. White space, punctuation and symbols are
// always accepted.
func WithAlphabet(letters string) Option {
	return func(e *Engine) {
		e.alphabet = script.NewAlphabet(letters)
	}
}

// WithAmbiguityThreshold sets the priority below which the validator
// reports a firing rule as ambiguous. The default is 0, i.e. rules with a
// negative priority are reported.
func WithAmbiguityThreshold(threshold int) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithShieldPresets enables built-in protections for embedded foreign text.
func WithShieldPresets(presets shield.Preset) Option {
	return func(e *Engine) {
		e.presets |= presets
	}
}

// New creates an engine converting to direction dir. The engine starts
// without rules, exceptions or shield patterns and converts text to itself.
func New(dir Direction, opts ...Option) *Engine {
	e := &Engine{dir: dir}
	for _, opt := range opts {
		opt(e)
	}
	if e.alphabet == nil {
		e.alphabet = script.DefaultAlphabet(dir)
	}
	e.shields = shield.NewMatcher(e.presets)
	CT().Debugf("new engine for direction %s, presets %s", dir, e.shields.Presets())
	return e
}

// Direction returns the target convention of the engine.
func (e *Engine) Direction() Direction {
	return e.dir
}

// LoadStats reports the outcome of loading a table.
type LoadStats struct {
	Accepted int // entries in the new table
	Skipped  int // malformed entries which have been left out
}

// LoadExceptions replaces the exception table. Malformed entries are
// skipped. Loading an empty string clears the table.
func (e *Engine) LoadExceptions(serialized string) LoadStats {
	table, stats := exception.Parse(serialized, e.dir)
	e.exceptions = table
	return LoadStats{Accepted: stats.Accepted, Skipped: stats.Skipped}
}

// LoadSuffixes replaces the set of grammatical suffixes which may follow an
// exception.
func (e *Engine) LoadSuffixes(serialized string) LoadStats {
	suffixes, stats := exception.ParseSuffixes(serialized)
	e.suffixes = suffixes
	return LoadStats{Accepted: stats.Accepted, Skipped: stats.Skipped}
}

// LoadSubstitutionRules replaces the rule set. Malformed entries are
// skipped; rules restricted to the other direction are not counted.
func (e *Engine) LoadSubstitutionRules(serialized string) LoadStats {
	set, stats := rules.Parse(serialized, e.dir)
	e.rules = set
	return LoadStats{Accepted: stats.Accepted, Skipped: stats.Skipped}
}

// LoadShieldPatterns replaces the user shield patterns. If a pattern fails
// to compile, an error is returned and the patterns loaded before remain
// active.
func (e *Engine) LoadShieldPatterns(serialized string) error {
	return e.shields.Load(serialized)
}

// Rules returns the active rule set.
func (e *Engine) Rules() *rules.Set {
	return e.rules
}

// Exceptions returns the active exception table.
func (e *Engine) Exceptions() *exception.Table {
	return e.exceptions
}

// Shields returns the protected-span matcher of the engine.
func (e *Engine) Shields() *shield.Matcher {
	return e.shields
}

// Dispose releases all tables. Dispose may be called more than once. After
// disposal, the engine behaves like a newly created one.
func (e *Engine) Dispose() {
	if e.rules == nil && e.exceptions == nil && e.suffixes == nil && e.shields.Patterns() == nil {
		return
	}
	e.rules = nil
	e.exceptions = nil
	e.suffixes = nil
	e.shields.Reset()
	CT().Debugf("engine for direction %s disposed", e.dir)
}

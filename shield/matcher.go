package shield

// Matcher computes protected spans from presets and user patterns.
type Matcher struct {
	presets  Preset
	patterns *Patterns
}

// NewMatcher creates a matcher with a set of presets and no user patterns.
func NewMatcher(presets Preset) *Matcher {
	return &Matcher{presets: presets}
}

// Presets returns the presets of the matcher.
func (m *Matcher) Presets() Preset {
	return m.presets
}

// Patterns returns the user patterns currently active.
func (m *Matcher) Patterns() *Patterns {
	return m.patterns
}

// Load compiles serialized user patterns and replaces the active ones. If
// compilation fails, the active patterns are kept and the error is returned.
func (m *Matcher) Load(serialized string) error {
	p, err := Compile(serialized)
	if err != nil {
		tracer().Errorf("shield: %v", err)
		return err
	}
	m.patterns = p
	return nil
}

// Reset drops all user patterns.
func (m *Matcher) Reset() {
	m.patterns = nil
}

// IsEmpty is true if the matcher will never report a span.
func (m *Matcher) IsEmpty() bool {
	return m == nil || (m.presets == 0 && m.patterns.Len() == 0)
}

// Spans returns the protected spans of text, sorted and non-overlapping.
func (m *Matcher) Spans(text string) []Span {
	if m.IsEmpty() || text == "" {
		return nil
	}
	c := newCollector(len(text))
	m.presets.collect(text, c)
	m.patterns.collect(text, c)
	return c.merged()
}

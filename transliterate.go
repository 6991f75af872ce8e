package latinga

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/latinga/rules"
	"github.com/npillmayer/latinga/shield"
)

// Transliterate converts input to the target convention of the engine.
//
// Protected spans are copied unchanged (markers of preset shield.Marker are
// removed). Exceptions are replaced by their canonical form; a grammatical
// suffix following an exception is converted by rules and, for the legacy
// convention, separated by an apostrophe. All other text is rewritten by
// substitution rules. The result depends on input and loaded tables only.
func (e *Engine) Transliterate(input string) string {
	if input == "" || e.isIdentity() {
		return input
	}
	st := borrowScanState()
	defer st.releaseIntoPool()
	c := &converter{engine: e, text: input, out: &st.out}
	c.out.Grow(len(input) + len(input)/8)
	e.walk(input, st, c, false)
	return c.out.String()
}

func (e *Engine) isIdentity() bool {
	return e.rules.Len() == 0 && e.exceptions.Len() == 0 && e.shields.IsEmpty()
}

// rewrite converts s by rules only.
func (e *Engine) rewrite(s string) string {
	if e.rules.Len() == 0 {
		return s
	}
	var b strings.Builder
	for pos := 0; pos < len(s); {
		if m, ok := e.rules.Resolve(s, pos, len(s)); ok {
			b.WriteString(m.Output)
			pos += m.Len
			continue
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		b.WriteString(s[pos : pos+size])
		pos += size
	}
	return b.String()
}

// exceptionText is the converted form of a token hitting an exception.
func (e *Engine) exceptionText(tok *token) string {
	if tok.hit.Suffix == "" {
		return tok.hit.Entry.Canonical
	}
	sep := ""
	if e.dir == Legacy {
		sep = "'"
	}
	return tok.hit.Entry.Canonical + sep + e.rewrite(tok.hit.Suffix)
}

// converter is a visitor producing converted text.
type converter struct {
	engine *Engine
	text   string
	out    *strings.Builder
}

func (c *converter) segment([]token) {}

func (c *converter) shielded(sp shield.Span) {
	start, end := sp.Inner()
	c.out.WriteString(c.text[start:end])
}

func (c *converter) exception(tok *token) {
	c.out.WriteString(c.engine.exceptionText(tok))
}

func (c *converter) mismatch(tok *token) {
	c.out.WriteString(c.text[tok.coreStart:tok.coreEnd])
}

func (c *converter) rule(pos int, m rules.Match) {
	c.out.WriteString(m.Output)
}

func (c *converter) passThrough(pos int, r rune, n int) {
	c.out.WriteString(c.text[pos : pos+n])
}

package latinga

import (
	"fmt"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/npillmayer/latinga/rules"
	"github.com/npillmayer/latinga/shield"
)

// Category classifies validation issues.
type Category int8

// Issue categories.
const (
	OutOfAlphabet Category = iota // character not expected in the target convention
	Ambiguous                     // a rule of low priority applies
	CaseMismatch                  // word matches an exception only if case is ignored
	Unconverted                   // word is written in the other convention
)

var categoryNames = [...]string{"out-of-alphabet", "ambiguous", "case-mismatch", "unconverted"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// MarshalText renders the category name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Severity tells how serious an issue is.
type Severity int8

// Severities.
const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// MarshalText renders the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue is a finding of the validator. Start and End are rune offsets into
// the validated text, End is exclusive. Line and Column are 1-based, with
// columns counted in runes.
type Issue struct {
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Text       string   `json:"text"`
	Suggestion string   `json:"suggestion,omitempty"`
}

func (i Issue) String() string {
	s := fmt.Sprintf("%d:%d %s %s: %q", i.Line, i.Column, i.Severity, i.Category, i.Text)
	if i.Suggestion != "" {
		s += fmt.Sprintf(" (%q)", i.Suggestion)
	}
	return s
}

// Summary is the result of a validation. Issues holds at most as many
// issues as requested, Total counts all issues found.
type Summary struct {
	Issues    []Issue `json:"issues"`
	Truncated bool    `json:"truncated"`
	Total     int     `json:"total"`
}

// OK is true if no issues have been found.
func (s Summary) OK() bool {
	return s.Total == 0
}

func (s Summary) String() string {
	if s.Total == 0 {
		return "no issues"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d issue(s)", s.Total)
	for _, i := range s.Issues {
		b.WriteString("\n  ")
		b.WriteString(i.String())
	}
	if s.Truncated {
		fmt.Fprintf(&b, "\n  ... and %d more", s.Total-len(s.Issues))
	}
	return b.String()
}

// JSON encodes the summary.
func (s Summary) JSON() ([]byte, error) {
	if s.Issues == nil {
		s.Issues = []Issue{}
	}
	return json.Marshal(s)
}

// Validate scans input for issues concerning the target convention.
//
// Input is scanned like Transliterate does, and an issue is recorded
//
// - for a character no rule or exception applies to, if it is not part
// of the alphabet of the engine (OutOfAlphabet),
//
// - for a rule firing with a priority below the ambiguity threshold
// (Ambiguous),
//
// - for a word matching an exception only if case is ignored (CaseMismatch),
//
// - once per word, for a word some rule would rewrite (Unconverted).
//
// At most limit issues are returned, but all issues are counted. If limit
// is zero or negative, no issues are returned.
func (e *Engine) Validate(input string, limit int) Summary {
	if limit < 0 {
		limit = 0
	}
	st := borrowScanState()
	defer st.releaseIntoPool()
	ch := &checker{
		engine:  e,
		text:    input,
		rec:     recorder{limit: limit, loc: locator{text: input, line: 1, col: 1}},
		flagged: -1,
	}
	e.walk(input, st, ch, true)
	summary := Summary{
		Issues:    ch.rec.issues,
		Total:     ch.rec.total,
		Truncated: ch.rec.total > len(ch.rec.issues),
	}
	CT().Debugf("validation found %d issues", summary.Total)
	return summary
}

// checker is a visitor recording validation issues.
type checker struct {
	engine  *Engine
	text    string
	rec     recorder
	tokens  []token
	ti      int
	flagged int // token flagged as unconverted
}

func (ch *checker) segment(tokens []token) {
	ch.tokens = tokens
	ch.ti = 0
	ch.flagged = -1
}

func (ch *checker) shielded(shield.Span) {}

func (ch *checker) exception(tok *token) {
	want := ch.engine.exceptionText(tok)
	if want == ch.text[tok.coreStart:tok.coreEnd] {
		return
	}
	ch.rec.add(tok.coreStart, tok.coreEnd, Unconverted, Error, ch.text, func() string {
		return want
	})
}

func (ch *checker) mismatch(tok *token) {
	ch.rec.add(tok.coreStart, tok.coreEnd, CaseMismatch, Warning, ch.text, func() string {
		return tok.folded.Canonical
	})
}

func (ch *checker) rule(pos int, m rules.Match) {
	if m.Rule.Priority < ch.engine.threshold {
		ch.rec.add(pos, pos+m.Len, Ambiguous, Warning, ch.text, func() string {
			return m.Output
		})
		return
	}
	if !m.Changes() {
		return
	}
	t := ch.tokenAt(pos)
	if t < 0 {
		ch.rec.add(pos, pos+m.Len, Unconverted, Error, ch.text, func() string {
			return m.Output
		})
		return
	}
	if t == ch.flagged {
		return
	}
	ch.flagged = t
	tok := ch.tokens[t]
	ch.rec.add(tok.coreStart, tok.coreEnd, Unconverted, Error, ch.text, func() string {
		return ch.engine.Transliterate(ch.text[tok.coreStart:tok.coreEnd])
	})
}

func (ch *checker) passThrough(pos int, r rune, n int) {
	if !ch.engine.alphabet.Contains(r) {
		ch.rec.add(pos, pos+n, OutOfAlphabet, Error, ch.text, nil)
	}
}

// tokenAt returns the index of the token whose core contains pos, or -1.
func (ch *checker) tokenAt(pos int) int {
	for ch.ti < len(ch.tokens) && ch.tokens[ch.ti].end <= pos {
		ch.ti++
	}
	if ch.ti < len(ch.tokens) {
		tok := ch.tokens[ch.ti]
		if tok.coreStart <= pos && pos < tok.coreEnd {
			return ch.ti
		}
	}
	return -1
}

// recorder counts issues and keeps the first ones, up to a limit.
type recorder struct {
	limit  int
	total  int
	issues []Issue
	loc    locator
}

// add records an issue for the byte range [from, to) of text. Suggestions
// are computed only for issues which are kept.
func (rec *recorder) add(from, to int, cat Category, sev Severity, text string, suggest func() string) {
	rec.total++
	if len(rec.issues) >= rec.limit {
		return
	}
	issue := Issue{
		Category: cat,
		Severity: sev,
		Text:     text[from:to],
	}
	issue.Start, issue.Line, issue.Column = rec.loc.locate(from)
	issue.End = issue.Start + utf8.RuneCountInString(text[from:to])
	if suggest != nil {
		issue.Suggestion = suggest()
	}
	rec.issues = append(rec.issues, issue)
}

// locator converts byte offsets to rune offsets and line/column positions.
// It is fastest for ascending offsets.
type locator struct {
	text       string
	pos, runes int
	line, col  int
}

func (l *locator) locate(pos int) (runes, line, col int) {
	if pos < l.pos {
		l.pos, l.runes, l.line, l.col = 0, 0, 1, 1
	}
	for l.pos < pos && l.pos < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.pos:])
		l.pos += size
		l.runes++
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	return l.runes, l.line, l.col
}

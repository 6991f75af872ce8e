package shield

import (
	"errors"
	"regexp/syntax"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func spanTexts(text string, spans []Span) []string {
	var s []string
	for _, sp := range spans {
		s = append(s, text[sp.Start:sp.End])
	}
	return s
}

func expectSpans(t *testing.T, text string, spans []Span, want ...string) {
	t.Helper()
	have := spanTexts(text, spans)
	if len(have) != len(want) {
		t.Errorf("expected spans %q, have %q", want, have)
		return
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("expected spans %q, have %q", want, have)
			return
		}
	}
}

func TestQuotedPattern(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := NewMatcher(0)
	if err := m.Load(`"[^"]*"`); err != nil {
		t.Fatal(err)
	}
	text := `before "sh" after`
	expectSpans(t, text, m.Spans(text), `"sh"`)
}

func TestCaptureGroup(t *testing.T) {
	m := NewMatcher(0)
	if err := m.Load(`"([^"]*)"`); err != nil {
		t.Fatal(err)
	}
	text := `a "sh" b`
	expectSpans(t, text, m.Spans(text), `sh`)
}

func TestLiteralWholeWords(t *testing.T) {
	m := NewMatcher(0)
	if err := m.Load("# brands\nGitHub\nshop\nshopping mall"); err != nil {
		t.Fatal(err)
	}
	text := "github, Shopping mall, workshop, shops"
	expectSpans(t, text, m.Spans(text), "github", "Shopping mall")
}

func TestAtomicLoad(t *testing.T) {
	m := NewMatcher(0)
	if err := m.Load(`"[^"]*"`); err != nil {
		t.Fatal(err)
	}
	err := m.Load("good\n(unclosed")
	if err == nil {
		t.Fatalf("expected compile error")
	}
	var perr *PatternError
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Errorf("expected pattern error for line 2, have %v", err)
	}
	var serr *syntax.Error
	if !errors.As(err, &serr) {
		t.Errorf("expected error to wrap a regexp syntax error")
	}
	text := `x "y" good`
	expectSpans(t, text, m.Spans(text), `"y"`)
}

func TestEmptyPattern(t *testing.T) {
	if _, err := Compile("()"); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("expected ErrEmptyPattern, have %v", err)
	}
	p, err := Compile("")
	if err != nil || p.Len() != 0 {
		t.Errorf("expected empty pattern set, have %v", err)
	}
}

func TestMergeOverlapping(t *testing.T) {
	m := NewMatcher(0)
	if err := m.Load("abc\ncde\n[x-z]+"); err != nil {
		t.Fatal(err)
	}
	text := "xyz abcde"
	// literals are whole words, so only the regexp matches
	expectSpans(t, text, m.Spans(text), "xyz")
	c := newCollector(20)
	c.add(0, 5, false)
	c.add(3, 8, false)
	c.add(8, 10, false)
	c.add(12, 14, false)
	c.add(12, 13, false)
	merged := c.merged()
	if len(merged) != 3 || merged[0].End != 8 || merged[1].Start != 8 || merged[2].End != 14 {
		t.Errorf("unexpected merge result %+v", merged)
	}
}

func TestMarkerPreset(t *testing.T) {
	m := NewMatcher(Marker)
	text := "a {]shahar[} b {][}"
	spans := m.Spans(text)
	expectSpans(t, text, spans, "{]shahar[}", "{][}")
	start, end := spans[0].Inner()
	if text[start:end] != "shahar" {
		t.Errorf("expected inner text 'shahar', have %q", text[start:end])
	}
	m = NewMatcher(Marker | Web)
	text = "{]http://x.uz[}"
	spans = m.Spans(text)
	if len(spans) != 1 || !spans[0].Strip {
		t.Errorf("expected marker span to contain URL and keep stripping, have %+v", spans)
	}
}

func TestWebPreset(t *testing.T) {
	m := NewMatcher(Web)
	text := `Sayt: https://gov.uz/shahar, pochta: info@gov.uz &nbsp; end`
	expectSpans(t, text, m.Spans(text), "https://gov.uz/shahar,", "info@gov.uz", "&nbsp;")
	text = `<p class="shahar" title="Shahar">Shahar</p><script>var sh=1;</script>`
	expectSpans(t, text, m.Spans(text),
		`<p class="shahar" title="`, `">`, `</p>`, `<script>var sh=1;</script>`)
	text = "a < b and c > d"
	if spans := m.Spans(text); len(spans) != 0 {
		t.Errorf("did not expect comparison operators to be tags, have %q", spanTexts(text, spans))
	}
}

func TestCodePreset(t *testing.T) {
	m := NewMatcher(Code)
	text := "run `shell` then\n```\nsh x\n```\nmode=fast"
	expectSpans(t, text, m.Spans(text), "`shell`", "```\nsh x\n```", "mode=fast")
}

func TestLaTeXPreset(t *testing.T) {
	m := NewMatcher(LaTeX)
	text := `Matn \textbf{shahar} $x^2$ \label{sh:1} % izoh`
	expectSpans(t, text, m.Spans(text), `\textbf`, `$x^2$`, `\label{sh:1}`, `% izoh`)
	text = `\begin{verbatim}shahar\end{verbatim} shahar`
	expectSpans(t, text, m.Spans(text), `\begin{verbatim}shahar\end{verbatim}`)
}

func TestRomanPreset(t *testing.T) {
	m := NewMatcher(Roman)
	text := "XXI asr, IV bob, Ivan"
	expectSpans(t, text, m.Spans(text), "XXI", "IV")
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("LaTeX"); !ok || p != LaTeX {
		t.Errorf("expected LaTeX preset")
	}
	if p, _ := ParsePreset("all"); p != AllPresets {
		t.Errorf("expected all presets")
	}
	if _, ok := ParsePreset("pdf"); ok {
		t.Errorf("did not expect preset 'pdf'")
	}
	if (Marker | Roman).String() != "marker|roman" {
		t.Errorf("unexpected preset names %q", (Marker | Roman).String())
	}
}

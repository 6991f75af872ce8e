package uzbek

import (
	"testing"

	"github.com/npillmayer/latinga"
	"github.com/npillmayer/latinga/exception"
	"github.com/npillmayer/latinga/rules"
	"github.com/npillmayer/latinga/shield"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestDefaultsWellFormed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, dir := range []latinga.Direction{latinga.Current, latinga.Legacy} {
		set, stats := rules.Parse(Rules, dir)
		if stats.Skipped > 0 || set.Len() == 0 {
			t.Errorf("%s: rules %+v", dir, stats)
		}
		if stats.Inactive == 0 {
			t.Errorf("%s: expected rules restricted to the other direction", dir)
		}
		if _, xstats := exception.Parse(Exceptions, dir); xstats.Skipped > 0 {
			t.Errorf("%s: exceptions %+v", dir, xstats)
		}
	}
	if _, stats := exception.ParseSuffixes(Suffixes); stats.Skipped > 0 || stats.Accepted == 0 {
		t.Errorf("suffixes %+v", stats)
	}
	if _, err := shield.Compile(Shields); err != nil {
		t.Error(err)
	}
	e, err := NewEngine(latinga.Current, latinga.WithShieldPresets(shield.LaTeX))
	if err != nil {
		t.Fatal(err)
	}
	if p := e.Shields().Presets(); p != DefaultPresets|shield.LaTeX {
		t.Errorf("expected default presets plus LaTeX, have %s", p)
	}
}

func TestToLegacy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	e, err := NewEngine(latinga.Legacy)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range []struct{ in, out string }{
		{"Oʻzbekiston Respublikasi poytaxti Toshkent shahri", "Özbekiston Respublikasi poytaxti Toşkent şahri"},
		{"Toshkentda yashayman", "Toşkent'da yaşayman"},
		{"Toshkentcha palov", "Toşkent'ça palov"},
		{"Gʻafur Gʻulom", "Ğafur Ğulom"},
		{"SHAHAR", "ŞAHAR"},
		{"bo'lim, bog`", "bölim, boğ"},
		{"ma'no", "ma'no"},
		{"Microsoft va Chevrolet", "Microsoft va Chevrolet"},
		{"run.sh faylini oching", "run.sh faylini oçing"},
		{"XIX asr", "XIX asr"},
		{"Isʼhoq va musʼhaf", "Ishoq va mushaf"},
		{"MUSʼHAF", "MUSHAF"},
		{"Ishoq Ashob", "Ishoq Ashob"},
		{"mashhur", "maşhur"},
	} {
		if out := e.Transliterate(c.in); out != c.out {
			t.Errorf("%d: expected %q, have %q", i, c.out, out)
		}
	}
}

func TestToCurrent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	e, err := NewEngine(latinga.Current)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range []struct{ in, out string }{
		{"Toşkent'da çoy içdik", "Toshkentda choy ichdik"},
		{"Özbekiston", "Oʻzbekiston"},
		{"o'zbek tili", "oʻzbek tili"},
		{"O’zbek", "Oʻzbek"},
		{"ma'no", "maʼno"},
		{"ÇOY", "CHOY"},
		{"Oʻzbekiston", "Oʻzbekiston"},
		{"Ishoq Mushaf Ashob", "Isʼhoq Musʼhaf Asʼhob"},
		{"MUSHAF", "MUSʼHAF"},
		{"is'hoq", "isʼhoq"},
		{"Isʼhoq", "Isʼhoq"},
		{"исҳоқ", "isʼhoq"},
		{"Ishoqjon", "Ishoqjon"},
	} {
		if out := e.Transliterate(c.in); out != c.out {
			t.Errorf("%d: expected %q, have %q", i, c.out, out)
		}
	}
}

func TestFromCyrillic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cur, err := NewEngine(latinga.Current)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range []struct{ in, out string }{
		{"Ўзбекистон", "Oʻzbekiston"},
		{"шаҳар", "shahar"},
		{"Ер", "Yer"},
		{"ЧОЙ", "CHOY"},
		{"съезд", "syezd"},
		{"милиция", "militsiya"},
		{"цирк", "sirk"},
		{"маъно", "maʼno"},
	} {
		if out := cur.Transliterate(c.in); out != c.out {
			t.Errorf("current %d: expected %q, have %q", i, c.out, out)
		}
	}
	leg, err := NewEngine(latinga.Legacy)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range []struct{ in, out string }{
		{"шаҳар", "şahar"},
		{"ўғил", "öğil"},
		{"маъно", "mano"},
	} {
		if out := leg.Transliterate(c.in); out != c.out {
			t.Errorf("legacy %d: expected %q, have %q", i, c.out, out)
		}
	}
}

func TestValidateWithDefaults(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	e, err := NewEngine(latinga.Current)
	if err != nil {
		t.Fatal(err)
	}
	if summary := e.Validate("Oʻzbekiston Respublikasi", 10); !summary.OK() {
		t.Errorf("expected no issues, have %v", summary)
	}
	summary := e.Validate("şahar", 10)
	if summary.Total != 1 || summary.Issues[0].Category != latinga.Unconverted {
		t.Fatalf("expected 1 unconverted word, have %v", summary)
	}
	if s := summary.Issues[0].Suggestion; s != "shahar" {
		t.Errorf("expected suggestion 'shahar', have %q", s)
	}
	summary = e.Validate("Ishoq keldi", 10)
	if summary.Total != 1 || summary.Issues[0].Category != latinga.Unconverted {
		t.Fatalf("expected s and h without a separator to be reported, have %v", summary)
	}
	if s := summary.Issues[0].Suggestion; s != "Isʼhoq" {
		t.Errorf("expected suggestion 'Isʼhoq', have %q", s)
	}
	if summary := e.Validate("Isʼhoq keldi", 10); !summary.OK() {
		t.Errorf("expected separated s and h to pass, have %v", summary)
	}
	summary = e.Validate("цирк", 10)
	if summary.Total != 2 {
		t.Fatalf("expected 2 issues, have %v", summary)
	}
	if summary.Issues[0].Category != latinga.Ambiguous || summary.Issues[1].Category != latinga.Unconverted {
		t.Errorf("expected an ambiguity and an unconverted word, have %v", summary)
	}
	if s := summary.Issues[1].Suggestion; s != "sirk" {
		t.Errorf("expected suggestion 'sirk', have %q", s)
	}
}

func TestSetupReplacesTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	e := latinga.New(latinga.Legacy)
	e.LoadSubstitutionRules("a : b")
	if err := Setup(e); err != nil {
		t.Fatal(err)
	}
	if out := e.Transliterate("a"); out != "a" {
		t.Errorf("expected rules to be replaced, have %q", out)
	}
	if e.Exceptions().Len() == 0 {
		t.Errorf("expected default exceptions to be loaded")
	}
}

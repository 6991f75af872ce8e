package rules

import (
	"testing"

	"github.com/npillmayer/latinga/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestParseOneWay(t *testing.T) {
	rule, err := ParseRule("sh : ş", script.Current)
	if err != nil {
		t.Fatal(err)
	}
	if rule.Source != "sh" || rule.Target != "ş" {
		t.Errorf("unexpected rule %v", rule)
	}
}

func TestParsePairPolarity(t *testing.T) {
	rule, err := ParseRule("sh = ş", script.Legacy)
	if err != nil || rule.Source != "sh" || rule.Target != "ş" {
		t.Errorf("legacy: unexpected rule %v, err=%v", rule, err)
	}
	rule, err = ParseRule("sh = ş", script.Current)
	if err != nil || rule.Source != "ş" || rule.Target != "sh" {
		t.Errorf("current: unexpected rule %v, err=%v", rule, err)
	}
}

func TestParseQualifiers(t *testing.T) {
	rule, err := ParseRule(`e : ye | after=boundary,vowel before=![xy] prio=-2 fold`, script.Current)
	if err != nil {
		t.Fatal(err)
	}
	if rule.Priority != -2 || !rule.Fold {
		t.Errorf("unexpected rule %v", rule)
	}
	if len(rule.Context.After) != 2 || len(rule.Context.Before) != 1 || !rule.Context.Before[0].Negate {
		t.Errorf("unexpected context %+v", rule.Context)
	}
	t.Logf("rule = %v", rule)
}

func TestParseEscapes(t *testing.T) {
	rule, err := ParseRule(`a\:b : c\sd`, script.Current)
	if err != nil {
		t.Fatal(err)
	}
	if rule.Source != "a:b" || rule.Target != "c d" {
		t.Errorf("unexpected rule %v", rule)
	}
	rule, err = ParseRule(`ь :`, script.Current)
	if err != nil || rule.Target != "" {
		t.Errorf("expected rule with empty target, have %v, err=%v", rule, err)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, entry := range []string{
		"no separator",
		" : x",
		"a : b | prio=high",
		"a : b | before=nowhere",
		"a : b | colour=red",
		"a : b | dir=sideways",
	} {
		if _, err := ParseRule(entry, script.Current); err == nil {
			t.Errorf("expected %q to be malformed", entry)
		}
	}
}

func TestParseTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := "# rules\nsh : ş\nbroken line\nch : ç # comment\nц : ts | dir=legacy\nx:y;z:w"
	set, stats := Parse(table, script.Current)
	if stats.Accepted != 4 || stats.Skipped != 1 || stats.Inactive != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if set.Len() != 4 {
		t.Errorf("expected 4 rules, have %d", set.Len())
	}
	if set.Rules()[1].Line != 4 || set.Rules()[1].Order != 1 {
		t.Errorf("unexpected rule bookkeeping %+v", set.Rules()[1])
	}
}

func TestResolveLongestMatch(t *testing.T) {
	set, _ := Parse("s : z\nsh : ş\nshh : X", script.Current)
	m, ok := set.Resolve("shox", 0, 4)
	if !ok || m.Output != "ş" || m.Len != 2 {
		t.Errorf("expected sh→ş, have %+v", m)
	}
	m, ok = set.Resolve("shox", 0, 1)
	if !ok || m.Output != "z" {
		t.Errorf("expected limit to force s→z, have %+v", m)
	}
	if _, ok := set.Resolve("abc", 0, 3); ok {
		t.Errorf("did not expect a match")
	}
}

func TestResolveTieBreak(t *testing.T) {
	set, _ := Parse("a : 1\na : 2 | prio=5\na : 3 | prio=5", script.Current)
	m, _ := set.Resolve("a", 0, 1)
	if m.Output != "2" {
		t.Errorf("expected higher priority, earlier rule to win, have %q", m.Output)
	}
	set, _ = Parse("a : 1\na : 2", script.Current)
	m, _ = set.Resolve("a", 0, 1)
	if m.Output != "1" {
		t.Errorf("expected earlier rule to win, have %q", m.Output)
	}
}

func TestResolveContext(t *testing.T) {
	set, _ := Parse("е : ye | after=boundary,vowel\nе : e", script.Current)
	m, _ := set.Resolve("ер", 0, len("ер"))
	if m.Output != "ye" {
		t.Errorf("expected ye at word start, have %q", m.Output)
	}
	m, _ = set.Resolve("бер", len("б"), len("бер"))
	if m.Output != "e" {
		t.Errorf("expected e after consonant, have %q", m.Output)
	}
	set, _ = Parse("n : N | before=!boundary", script.Current)
	if _, ok := set.Resolve("an", 1, 2); ok {
		t.Errorf("did not expect match at text end")
	}
}

func TestResolveFold(t *testing.T) {
	set, _ := Parse("ş = sh | fold", script.Current)
	tests := []struct{ text, out string }{
		{"şahar", "sh"},
		{"Şahar", "Sh"},
		{"ŞAHAR", "SH"},
		{"Ş", "Sh"},
	}
	for _, test := range tests {
		m, ok := set.Resolve(test.text, 0, len(test.text))
		if !ok || m.Output != test.out {
			t.Errorf("%q: expected %q, have %+v", test.text, test.out, m)
		}
	}
}

func TestMatchChanges(t *testing.T) {
	set, _ := Parse("a : a\nb : c", script.Current)
	m, _ := set.Resolve("a", 0, 1)
	if m.Changes() {
		t.Errorf("identity rule should not count as change")
	}
	m, _ = set.Resolve("b", 0, 1)
	if !m.Changes() {
		t.Errorf("expected b→c to count as change")
	}
}

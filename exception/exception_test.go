package exception

import (
	"testing"

	"github.com/npillmayer/latinga/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestParseForms(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table, stats := Parse("Toshkent, Chorsu : Chorsu\n# comment\nNew York\n : x\na : b : c\na = b : c", script.Legacy)
	if stats.Accepted != 2 || stats.Skipped != 4 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if e, ok := table.Lookup("Toshkent"); !ok || e.Canonical != "Toshkent" {
		t.Errorf("expected Toshkent to map onto itself, have %+v", e)
	}
	if _, ok := table.Lookup("toshkent"); ok {
		t.Errorf("lookup should be case-sensitive")
	}
}

func TestPairPolarity(t *testing.T) {
	src := "Oʻzbekiston = Özbekiston"
	legacy, _ := Parse(src, script.Legacy)
	if e, ok := legacy.Lookup("Oʻzbekiston"); !ok || e.Canonical != "Özbekiston" {
		t.Errorf("legacy: expected current spelling to map to legacy, have %+v", e)
	}
	if e, ok := legacy.Lookup("Özbekiston"); !ok || e.Canonical != "Özbekiston" {
		t.Errorf("legacy: expected target spelling to map onto itself, have %+v", e)
	}
	current, _ := Parse(src, script.Current)
	if e, ok := current.Lookup("Özbekiston"); !ok || e.Canonical != "Oʻzbekiston" {
		t.Errorf("current: expected legacy spelling to map to current, have %+v", e)
	}
}

func TestLastLoadedWins(t *testing.T) {
	table, _ := Parse("Buxoro : A\nBuxoro : B", script.Current)
	if e, _ := table.Lookup("Buxoro"); e.Canonical != "B" {
		t.Errorf("expected last entry to win, have %+v", e)
	}
}

func TestNormalizedKeys(t *testing.T) {
	table, _ := Parse("Tos\u030ckent", script.Current) // decomposed caron
	if table.Len() != 1 {
		t.Fatalf("expected 1 entry")
	}
	if _, ok := table.Lookup("To\u0161kent"); !ok {
		t.Errorf("expected lookup of composed form to succeed")
	}
}

func TestFoldedLookup(t *testing.T) {
	table, _ := Parse("Toshkent", script.Current)
	if e, ok := table.LookupFolded("TOSHKENT"); !ok || e.Canonical != "Toshkent" {
		t.Errorf("expected folded lookup to find Toshkent, have %+v", e)
	}
	if _, ok := table.LookupFolded("Samarqand"); ok {
		t.Errorf("did not expect to find Samarqand")
	}
}

func TestSuffixes(t *testing.T) {
	suffixes, stats := ParseSuffixes("da, ning\nga = ğa\n-bad")
	if stats.Accepted != 4 || stats.Skipped != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if !suffixes.Contains("DA") || !suffixes.Contains("ğa") || suffixes.Contains("lar") {
		t.Errorf("suffix membership failed")
	}
	table, _ := Parse("Toshkent", script.Legacy)
	hit, ok := table.Match("Toshkentda", suffixes)
	if !ok || hit.Entry.Canonical != "Toshkent" || hit.Suffix != "da" {
		t.Errorf("expected suffixed hit, have %+v", hit)
	}
	hit, ok = table.Match("Toshkent'ning", suffixes)
	if !ok || hit.Suffix != "ning" {
		t.Errorf("expected suffix after apostrophe, have %+v", hit)
	}
	if _, ok := table.Match("Toshkentlar", suffixes); ok {
		t.Errorf("did not expect unknown suffix to match")
	}
	if _, ok := table.Match("Toshkentda", nil); ok {
		t.Errorf("did not expect suffix match without suffix set")
	}
}

func TestEmptyTable(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup("x"); ok || table.Len() != 0 {
		t.Errorf("nil table should be empty")
	}
	if _, ok := table.Match("x", nil); ok {
		t.Errorf("nil table should not match")
	}
}

package script

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestCaseOf(t *testing.T) {
	tests := []struct {
		in   string
		want Case
	}{
		{"toshkent", Lower},
		{"Toshkent", Title},
		{"TOSHKENT", Upper},
		{"ToshKent", Mixed},
		{"oʻzbek", Lower},
		{"Oʻzbek", Title},
		{"OʻZBEK", Upper},
		{"S", Title},
		{"123", Lower},
	}
	for _, test := range tests {
		if c := CaseOf(test.in); c != test.want {
			t.Errorf("CaseOf(%q) = %d, expected %d", test.in, c, test.want)
		}
	}
}

func TestApplyCase(t *testing.T) {
	if s := ApplyCase("ş", Title); s != "Ş" {
		t.Errorf("expected Ş, have %q", s)
	}
	if s := ApplyCase("sh", Title); s != "Sh" {
		t.Errorf("expected Sh, have %q", s)
	}
	if s := ApplyCase("sh", Upper); s != "SH" {
		t.Errorf("expected SH, have %q", s)
	}
	if s := ApplyCase("oʻ", Upper); s != "Oʻ" {
		t.Errorf("expected Oʻ, have %q", s)
	}
	if s := ApplyCase("", Title); s != "" {
		t.Errorf("expected empty string, have %q", s)
	}
}

func TestFoldAndNormalize(t *testing.T) {
	if Fold("TOSHKENT") != Fold("toshkent") {
		t.Errorf("expected folded forms to be equal")
	}
	decomposed := "s\u030c"
	if NFC(decomposed) != "\u0161" {
		t.Errorf("expected NFC to compose %q", decomposed)
	}
}

func TestLetterClasses(t *testing.T) {
	if !IsVowel('o') || !IsVowel('ö') || !IsVowel('я') {
		t.Errorf("expected vowels to be recognized")
	}
	if !IsConsonant('ş') || IsConsonant('a') || IsConsonant(Okina) {
		t.Errorf("consonant classification failed")
	}
	if !IsApostrophe('`') || !IsApostrophe(Tutuq) || IsApostrophe('"') {
		t.Errorf("apostrophe classification failed")
	}
}

func TestAlphabet(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cur := DefaultAlphabet(Current)
	for _, r := range "Oʻzbekiston, 2024!" {
		if !cur.Contains(r) {
			t.Errorf("expected %q to be in current alphabet", r)
		}
	}
	if cur.Contains('ş') {
		t.Errorf("did not expect ş in current alphabet")
	}
	leg := DefaultAlphabet(Legacy)
	if !leg.Contains('Ş') || leg.Contains('c') {
		t.Errorf("legacy alphabet classification failed")
	}
	noDigits := NewAlphabet("abcxyz")
	if noDigits.Contains('1') {
		t.Errorf("did not expect digits in custom alphabet")
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("Kelgusi"); !ok || d != Legacy {
		t.Errorf("expected legacy direction")
	}
	if _, ok := ParseDirection("cyrillic"); ok {
		t.Errorf("did not expect to parse 'cyrillic'")
	}
	if Current.Other() != Legacy || Legacy.String() != "legacy" {
		t.Errorf("direction helpers failed")
	}
}

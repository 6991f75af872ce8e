package trie

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestInsertLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	trie := New()
	trie.Insert("sh", 1)
	trie.Insert("s", 2)
	trie.Insert("sh", 3)
	trie.Insert("", 4)
	trie.Freeze()
	trie.Stats()
	if trie.Len() != 2 {
		t.Errorf("expected 2 keys, have %d", trie.Len())
	}
	v, ok := trie.Lookup("sh")
	if !ok || len(v) != 2 || v[0] != 1 || v[1] != 3 {
		t.Errorf("expected values [1 3] for 'sh', have %v", v)
	}
	if _, ok := trie.Lookup("x"); ok {
		t.Errorf("did not expect to find 'x'")
	}
	if _, ok := trie.Lookup(""); ok {
		t.Errorf("did not expect to find empty key")
	}
}

func TestPrefixes(t *testing.T) {
	trie := New()
	trie.Insert("o", 1)
	trie.Insert("oʻ", 2)
	trie.Insert("oʻz", 3)
	matches := trie.Prefixes("oʻzbek", 0)
	if len(matches) != 3 {
		t.Fatalf("expected 3 prefix matches, have %d", len(matches))
	}
	if matches[1].Len != len("oʻ") || matches[1].Runes != 2 {
		t.Errorf("unexpected second match %+v", matches[1])
	}
	m, ok := trie.Longest("oʻzbek")
	if !ok || m.Values[0] != 3 {
		t.Errorf("expected longest match with value 3, have %+v", m)
	}
	limited := trie.Prefixes("oʻzbek", len("oʻ"))
	if len(limited) != 2 {
		t.Errorf("expected limit to cut off longest key, have %d matches", len(limited))
	}
	if trie.MaxKeyLen() != 3 {
		t.Errorf("expected max key length 3, have %d", trie.MaxKeyLen())
	}
}

func TestNilTrie(t *testing.T) {
	var trie *Trie
	if trie.Len() != 0 || trie.Prefixes("abc", 0) != nil {
		t.Errorf("nil trie should behave as empty trie")
	}
}

func TestKeys(t *testing.T) {
	trie := New()
	for i, k := range []string{"ch", "a", "sh", "c"} {
		trie.Insert(k, i)
	}
	keys := trie.Keys()
	want := []string{"a", "c", "ch", "sh"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, have %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("expected %v, have %v", want, keys)
		}
	}
}

func TestFrozenInsertPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected insert into frozen trie to panic")
		}
	}()
	trie := New()
	trie.Freeze()
	trie.Insert("x", 1)
}

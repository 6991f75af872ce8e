package trie

import (
	"sort"
	"unicode/utf8"
)

// Trie maps string keys to lists of integer values. Values usually are
// indices into a table held by the client.
type Trie struct {
	root   *node
	frozen bool
	keys   int
	nodes  int
	maxlen int // length of the longest key, in runes
}

type node struct {
	children map[rune]*node
	values   []int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: &node{}, nodes: 1}
}

// Insert appends value to the value list of key. Empty keys are ignored.
// Inserting into a frozen trie panics.
func (trie *Trie) Insert(key string, value int) {
	if trie.frozen {
		panic("trie: insert into frozen trie")
	}
	if key == "" {
		return
	}
	n, l := trie.root, 0
	for _, r := range key {
		if n.children == nil {
			n.children = make(map[rune]*node)
		}
		child, ok := n.children[r]
		if !ok {
			child = &node{}
			n.children[r] = child
			trie.nodes++
		}
		n = child
		l++
	}
	if len(n.values) == 0 {
		trie.keys++
	}
	n.values = append(n.values, value)
	if l > trie.maxlen {
		trie.maxlen = l
	}
}

// Freeze makes the trie read-only.
func (trie *Trie) Freeze() {
	trie.frozen = true
}

// Len returns the number of distinct keys in the trie.
func (trie *Trie) Len() int {
	if trie == nil {
		return 0
	}
	return trie.keys
}

// MaxKeyLen returns the length in runes of the longest key.
func (trie *Trie) MaxKeyLen() int {
	if trie == nil {
		return 0
	}
	return trie.maxlen
}

// Lookup returns the values stored for key.
func (trie *Trie) Lookup(key string) ([]int, bool) {
	if trie == nil || key == "" {
		return nil, false
	}
	it := trie.Iterator()
	for _, r := range key {
		if !it.Next(r) {
			return nil, false
		}
	}
	v := it.Values()
	return v, len(v) > 0
}

// Match is a key found as a prefix of a text.
type Match struct {
	Len    int   // length of the key in bytes
	Runes  int   // length of the key in runes
	Values []int // values stored for the key
}

// Prefixes returns all keys which are prefixes of s, shortest first.
// If limit > 0, keys extending beyond byte position limit of s are not
// considered.
func (trie *Trie) Prefixes(s string, limit int) []Match {
	if trie == nil || trie.keys == 0 {
		return nil
	}
	if limit > 0 && limit < len(s) {
		s = s[:limit]
	}
	var matches []Match
	it := trie.Iterator()
	runes := 0
	for i, r := range s {
		if !it.Next(r) {
			break
		}
		runes++
		if v := it.Values(); len(v) > 0 {
			matches = append(matches, Match{Len: i + utf8.RuneLen(r), Runes: runes, Values: v})
		}
	}
	return matches
}

// Longest returns the longest key which is a prefix of s.
func (trie *Trie) Longest(s string) (Match, bool) {
	m := trie.Prefixes(s, 0)
	if len(m) == 0 {
		return Match{}, false
	}
	return m[len(m)-1], true
}

// Keys returns all keys of the trie in lexical order.
func (trie *Trie) Keys() []string {
	if trie == nil {
		return nil
	}
	var keys []string
	var collect func(n *node, prefix []rune)
	collect = func(n *node, prefix []rune) {
		if len(n.values) > 0 {
			keys = append(keys, string(prefix))
		}
		for r, child := range n.children {
			collect(child, append(prefix, r))
		}
	}
	collect(trie.root, make([]rune, 0, trie.maxlen))
	sort.Strings(keys)
	return keys
}

// --- Iterator --------------------------------------------------------------

// Iterator is a one-off iterator to find an entry in the trie, rune by rune.
type Iterator struct {
	trie     *Trie
	position *node
}

// Iterator will return an iterator positioned at the root of the trie.
func (trie *Trie) Iterator() *Iterator {
	return &Iterator{trie: trie, position: trie.root}
}

// Next advances the iterator by r. If it returns false, the prefix is not
// contained in the trie and the iterator is exhausted.
func (it *Iterator) Next(r rune) bool {
	if it.position == nil {
		return false
	}
	it.position = it.position.children[r]
	return it.position != nil
}

// Values returns the values for the prefix walked so far.
func (it *Iterator) Values() []int {
	if it.position == nil {
		return nil
	}
	return it.position.values
}

// ---------------------------------------------------------------------------

// Stats print some useful information about the trie on the Debug trace channel.
func (trie *Trie) Stats() {
	tracer().Debugf("Trie Statistics:")
	tracer().Debugf("  Keys:        %d", trie.keys)
	tracer().Debugf("  Nodes:       %d", trie.nodes)
	tracer().Debugf("  Longest key: %d runes", trie.maxlen)
}

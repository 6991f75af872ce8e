package exception

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/latinga/internal/dictfmt"
	"github.com/npillmayer/latinga/script"
	"github.com/npillmayer/latinga/trie"
)

// Entry is a single exception.
type Entry struct {
	Surface   string
	Canonical string
	Line      int
}

// Table is an immutable exception table.
type Table struct {
	entries []Entry
	index   *trie.Trie       // surface → entry positions
	folded  map[string][]int // folded surface → entry positions
}

// Stats counts the outcome of loading a table.
type Stats struct {
	Accepted int // entries in the table, including implicit ones
	Skipped  int // malformed entries
}

// Format is the dictionary format of exception tables.
var Format = dictfmt.Format{
	Separators:     ",",
	InlineComments: true,
	Escapes:        true,
}

// Parse loads a serialized exception table for direction dir. Malformed
// entries are skipped.
func Parse(serialized string, dir script.Direction) (*Table, Stats) {
	var stats Stats
	var entries []Entry
	sc := dictfmt.NewScanner(serialized, Format)
	for sc.Scan() {
		e := sc.Entry()
		parsed, err := ParseEntry(e.Text, dir)
		if err != nil {
			tracer().Infof("exceptions: skipping line %d %q: %v", e.Line, e.Text, err)
			stats.Skipped++
			continue
		}
		for _, p := range parsed {
			p.Line = e.Line
			entries = append(entries, p)
		}
	}
	if err := sc.Err(); err != nil {
		tracer().Errorf("exceptions: reading table: %v", err)
	}
	table := NewTable(entries)
	stats.Accepted = len(entries)
	tracer().Debugf("exceptions: loaded %d entries for direction %s, %d skipped",
		stats.Accepted, dir, stats.Skipped)
	return table, stats
}

// ParseEntry parses a single table entry. A pair yields two entries.
func ParseEntry(text string, dir script.Direction) ([]Entry, error) {
	colon := dictfmt.IndexUnescaped(text, ':')
	equals := dictfmt.IndexUnescaped(text, '=')
	if colon >= 0 && equals >= 0 ||
		colon >= 0 && dictfmt.IndexUnescaped(text[colon+1:], ':') >= 0 ||
		equals >= 0 && dictfmt.IndexUnescaped(text[equals+1:], '=') >= 0 {
		return nil, fmt.Errorf("more than one separator")
	}
	var entries []Entry
	switch {
	case colon < 0 && equals < 0:
		form := clean(text)
		entries = append(entries, Entry{Surface: form, Canonical: form})
	case colon >= 0 && (equals < 0 || colon < equals):
		surface, canonical, _ := dictfmt.Cut(text, ':')
		entries = append(entries, Entry{Surface: clean(surface), Canonical: clean(canonical)})
	default:
		cur, leg, _ := dictfmt.Cut(text, '=')
		source, target := clean(leg), clean(cur)
		if dir == script.Legacy {
			source, target = target, source
		}
		entries = append(entries, Entry{Surface: source, Canonical: target})
		if target != "" && target != source {
			entries = append(entries, Entry{Surface: target, Canonical: target})
		}
	}
	for _, e := range entries {
		if e.Surface == "" {
			return nil, fmt.Errorf("empty surface form")
		}
		if e.Canonical == "" {
			return nil, fmt.Errorf("empty canonical form")
		}
		if strings.IndexFunc(e.Surface, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("surface form %q contains white space", e.Surface)
		}
	}
	return entries, nil
}

func clean(s string) string {
	return script.NFC(dictfmt.Unescape(strings.TrimSpace(s)))
}

// NewTable indexes a list of entries. For duplicate surface forms the entry
// last in the list wins.
func NewTable(entries []Entry) *Table {
	table := &Table{
		entries: entries,
		index:   trie.New(),
		folded:  make(map[string][]int),
	}
	for i, e := range entries {
		table.index.Insert(e.Surface, i)
		key := script.Fold(e.Surface)
		table.folded[key] = append(table.folded[key], i)
	}
	table.index.Freeze()
	return table
}

// Len returns the number of entries.
func (table *Table) Len() int {
	if table == nil {
		return 0
	}
	return len(table.entries)
}

// Lookup returns the entry for an exact surface form.
func (table *Table) Lookup(surface string) (Entry, bool) {
	if table.Len() == 0 {
		return Entry{}, false
	}
	v, ok := table.index.Lookup(script.NFC(surface))
	if !ok {
		return Entry{}, false
	}
	return table.entries[v[len(v)-1]], true
}

// Hit is the result of matching a word against a table.
type Hit struct {
	Entry  Entry
	Suffix string // grammatical suffix following the surface form, if any
}

// Match matches a word against the table. If the word is not a surface
// form itself, it may be a surface form followed by one of suffixes,
// possibly separated by an apostrophe. The longest surface form wins.
func (table *Table) Match(word string, suffixes *Suffixes) (Hit, bool) {
	if table.Len() == 0 || word == "" {
		return Hit{}, false
	}
	word = script.NFC(word)
	if e, ok := table.Lookup(word); ok {
		return Hit{Entry: e}, true
	}
	if suffixes.Len() == 0 {
		return Hit{}, false
	}
	prefixes := table.index.Prefixes(word, 0)
	for i := len(prefixes) - 1; i >= 0; i-- {
		m := prefixes[i]
		rest := word[m.Len:]
		suffix := strings.TrimLeftFunc(rest, script.IsApostrophe)
		if suffix == "" || !suffixes.Contains(suffix) {
			continue
		}
		return Hit{Entry: table.entries[m.Values[len(m.Values)-1]], Suffix: suffix}, true
	}
	return Hit{}, false
}

// LookupFolded returns an entry whose surface form equals word when case is
// ignored.
func (table *Table) LookupFolded(word string) (Entry, bool) {
	if table.Len() == 0 {
		return Entry{}, false
	}
	v, ok := table.folded[script.Fold(script.NFC(word))]
	if !ok {
		return Entry{}, false
	}
	return table.entries[v[len(v)-1]], true
}

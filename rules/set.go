package rules

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/latinga/internal/dictfmt"
	"github.com/npillmayer/latinga/script"
	"github.com/npillmayer/latinga/trie"
)

// Set is an indexed, immutable set of rules.
type Set struct {
	rules  []Rule
	exact  *trie.Trie // sources as written
	folded *trie.Trie // lower-cased sources of fold rules
}

// Stats counts the outcome of loading a rule table.
type Stats struct {
	Accepted int // rules in the set
	Skipped  int // malformed entries
	Inactive int // rules for the other direction
}

// Parse loads a serialized rule table for direction dir. Malformed entries
// are skipped.
func Parse(serialized string, dir script.Direction) (*Set, Stats) {
	var stats Stats
	var rules []Rule
	sc := dictfmt.NewScanner(serialized, Format)
	for sc.Scan() {
		entry := sc.Entry()
		rule, err := ParseRule(entry.Text, dir)
		if errors.Is(err, errInactive) {
			stats.Inactive++
			continue
		} else if err != nil {
			tracer().Infof("rules: skipping line %d %q: %v", entry.Line, entry.Text, err)
			stats.Skipped++
			continue
		}
		rule.Line = entry.Line
		rules = append(rules, rule)
	}
	if err := sc.Err(); err != nil {
		tracer().Errorf("rules: reading table: %v", err)
	}
	set := NewSet(rules)
	stats.Accepted = set.Len()
	tracer().Debugf("rules: loaded %d rules for direction %s, %d skipped, %d inactive",
		stats.Accepted, dir, stats.Skipped, stats.Inactive)
	return set, stats
}

// NewSet indexes a list of rules. Load order is the order of the list.
func NewSet(rules []Rule) *Set {
	set := &Set{
		rules:  make([]Rule, len(rules)),
		exact:  trie.New(),
		folded: trie.New(),
	}
	for i, rule := range rules {
		rule.Order = i
		set.rules[i] = rule
		if rule.Fold {
			set.folded.Insert(lowerRunes(rule.Source), i)
		} else {
			set.exact.Insert(rule.Source, i)
		}
	}
	set.exact.Freeze()
	set.folded.Freeze()
	return set
}

// Len returns the number of rules in the set.
func (set *Set) Len() int {
	if set == nil {
		return 0
	}
	return len(set.rules)
}

// Rules returns the rules in load order.
func (set *Set) Rules() []Rule {
	if set == nil {
		return nil
	}
	return set.rules
}

// Match is the rule selected at a text position.
type Match struct {
	Rule   *Rule
	Len    int    // length of the matched text in bytes
	Text   string // the matched text
	Output string // the target, with case transferred for fold rules
}

// Changes is true if the match rewrites the text.
func (m Match) Changes() bool {
	return m.Output != m.Text
}

// Resolve selects the rule to apply at byte position pos of text. Sources
// extending beyond byte position limit are not considered.
func (set *Set) Resolve(text string, pos, limit int) (Match, bool) {
	if set.Len() == 0 || pos >= limit || limit > len(text) {
		return Match{}, false
	}
	prev, hasPrev := rune(0), false
	if pos > 0 {
		prev, _ = utf8.DecodeLastRuneInString(text[:pos])
		hasPrev = true
	}
	var best *Rule
	bestLen := 0
	consider := func(length int, values []int) {
		next, hasNext := rune(0), false
		if pos+length < len(text) {
			next, _ = utf8.DecodeRuneInString(text[pos+length:])
			hasNext = true
		}
		for _, v := range values {
			rule := &set.rules[v]
			if !rule.Context.Holds(prev, hasPrev, next, hasNext) {
				continue
			}
			if best == nil || length > bestLen ||
				(length == bestLen && (rule.Priority > best.Priority ||
					(rule.Priority == best.Priority && rule.Order < best.Order))) {
				best, bestLen = rule, length
			}
		}
	}
	for _, m := range set.exact.Prefixes(text[pos:], limit-pos) {
		consider(m.Len, m.Values)
	}
	if set.folded.Len() > 0 {
		it := set.folded.Iterator()
		for i, r := range text[pos:limit] {
			if !it.Next(unicode.ToLower(r)) {
				break
			}
			if v := it.Values(); len(v) > 0 {
				consider(i+utf8.RuneLen(r), v)
			}
		}
	}
	if best == nil {
		return Match{}, false
	}
	m := Match{Rule: best, Len: bestLen, Text: text[pos : pos+bestLen], Output: best.Target}
	if best.Fold {
		m.Output = transferCase(m.Text, best.Target, text[pos+bestLen:])
	}
	return m, true
}

// transferCase renders target in the capitalization of matched. A single
// capital is rendered in all caps if the following letter is upper case too.
func transferCase(matched, target, rest string) string {
	c := script.CaseOf(matched)
	if c == script.Title && strings.IndexFunc(matched, unicode.IsLower) < 0 {
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			c = script.Upper
		}
	}
	return script.ApplyCase(target, c)
}

func lowerRunes(s string) string {
	b := make([]rune, 0, len(s))
	for _, r := range s {
		b = append(b, unicode.ToLower(r))
	}
	return string(b)
}

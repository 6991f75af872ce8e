package exception

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/npillmayer/latinga/internal/dictfmt"
	"github.com/npillmayer/latinga/script"
)

// Suffixes is a set of grammatical suffixes, stored in lower case.
type Suffixes struct {
	set *hashset.Set
}

// ParseSuffixes loads a list of suffixes, separated by newlines or commas.
// A pair "current = legacy" contributes both spellings.
func ParseSuffixes(serialized string) (*Suffixes, Stats) {
	var stats Stats
	s := &Suffixes{set: hashset.New()}
	sc := dictfmt.NewScanner(serialized, Format)
	for sc.Scan() {
		e := sc.Entry()
		cur, leg, pair := dictfmt.Cut(e.Text, '=')
		forms := []string{cur}
		if pair {
			forms = append(forms, leg)
		}
		for _, f := range forms {
			f = script.ToLower(clean(f))
			if f == "" || !isWord(f) {
				tracer().Infof("suffixes: skipping line %d %q", e.Line, e.Text)
				stats.Skipped++
				continue
			}
			if !s.set.Contains(f) {
				stats.Accepted++
			}
			s.set.Add(f)
		}
	}
	tracer().Debugf("suffixes: loaded %d suffixes", stats.Accepted)
	return s, stats
}

func isWord(s string) bool {
	for _, r := range s {
		if !script.IsWordRune(r) {
			return false
		}
	}
	return true
}

// Len returns the number of suffixes.
func (s *Suffixes) Len() int {
	if s == nil || s.set == nil {
		return 0
	}
	return s.set.Size()
}

// Contains checks if suffix is a known suffix, ignoring case.
func (s *Suffixes) Contains(suffix string) bool {
	if s.Len() == 0 {
		return false
	}
	return s.set.Contains(script.ToLower(suffix))
}

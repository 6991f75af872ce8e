package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/latinga/internal/dictfmt"
	"github.com/npillmayer/latinga/script"
)

// Rule is a substitution rule.
type Rule struct {
	Source   string
	Target   string
	Context  Context
	Priority int
	Order    int  // position in the loaded table, starting at 0
	Fold     bool // match regardless of case, transfer case to target
	Line     int  // line of the dictionary source
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%q → %q", r.Source, r.Target))
	if r.Priority != 0 {
		b.WriteString(" prio=" + strconv.Itoa(r.Priority))
	}
	if len(r.Context.After) > 0 {
		b.WriteString(" after=" + r.Context.After.String())
	}
	if len(r.Context.Before) > 0 {
		b.WriteString(" before=" + r.Context.Before.String())
	}
	if r.Fold {
		b.WriteString(" fold")
	}
	return b.String()
}

// Format is the dictionary format of rule tables.
var Format = dictfmt.Format{
	Separators:     ";",
	InlineComments: true,
	Escapes:        true,
}

// errInactive flags a well-formed rule which does not apply to the
// direction being loaded.
var errInactive = errors.New("rule inactive for direction")

// ParseRule parses a single rule entry for direction dir.
func ParseRule(entry string, dir script.Direction) (Rule, error) {
	body, quals, _ := dictfmt.Cut(entry, '|')
	var rule Rule
	colon := dictfmt.IndexUnescaped(body, ':')
	equals := dictfmt.IndexUnescaped(body, '=')
	switch {
	case colon < 0 && equals < 0:
		return rule, fmt.Errorf("missing separator ':' or '='")
	case colon >= 0 && (equals < 0 || colon < equals):
		src, dst, _ := dictfmt.Cut(body, ':')
		rule.Source, rule.Target = src, dst
	default:
		cur, leg, _ := dictfmt.Cut(body, '=')
		if dir == script.Legacy {
			rule.Source, rule.Target = cur, leg
		} else {
			rule.Source, rule.Target = leg, cur
		}
	}
	rule.Source = script.NFC(dictfmt.Unescape(rule.Source))
	rule.Target = script.NFC(dictfmt.Unescape(rule.Target))
	if rule.Source == "" {
		return rule, fmt.Errorf("empty source")
	}
	active := true
	for _, q := range strings.Fields(quals) {
		key, value, hasValue := strings.Cut(q, "=")
		switch strings.ToLower(key) {
		case "prio", "priority":
			p, err := strconv.Atoi(value)
			if err != nil {
				return rule, fmt.Errorf("bad priority %q: %w", value, err)
			}
			rule.Priority = p
		case "before":
			cond, err := ParseCondition(value)
			if err != nil {
				return rule, err
			}
			rule.Context.Before = cond
		case "after":
			cond, err := ParseCondition(value)
			if err != nil {
				return rule, err
			}
			rule.Context.After = cond
		case "dir":
			d, ok := script.ParseDirection(value)
			if !ok {
				return rule, fmt.Errorf("unknown direction %q", value)
			}
			active = d == dir
		case "fold":
			if hasValue {
				return rule, fmt.Errorf("qualifier 'fold' takes no value")
			}
			rule.Fold = true
		default:
			return rule, fmt.Errorf("unknown qualifier %q", q)
		}
	}
	if !active {
		return rule, errInactive
	}
	return rule, nil
}

/*
Package dictfmt scans the line-oriented text format shared by all
dictionaries of latinga: substitution rules, exception lists, suffix lists
and shield patterns.

A dictionary is UTF-8 text. A leading byte order mark is ignored. Each
line holds one or more entries; entries may additionally be separated by
format-specific separators (e.g. ';' for rules or ',' for exceptions),
which allows hosts to pass a whole table as a single-line string.
A '#' starts a comment. Surrounding whitespace of an entry is dropped,
and empty entries are skipped.

Within an entry a backslash escapes the following character. Escaped
characters never act as separators or comment starters. Unescape resolves
escapes once the entry has been split into its fields.
*/
package dictfmt

import (
	"bufio"
	"strings"
)

// BOM is the UTF-8 byte order mark.
const BOM = "\uFEFF"

// Format describes the syntax of a dictionary type.
type Format struct {
	Separators     string // entry separators in addition to newline
	InlineComments bool   // '#' starts a comment anywhere, not only at the start of a line
	Escapes        bool   // backslash escapes are recognized
}

// Entry is a single entry of a dictionary, still carrying its escapes.
type Entry struct {
	Line int    // line number, starting at 1
	Text string // trimmed entry text
}

// Scanner iterates over the entries of a dictionary.
type Scanner struct {
	format  Format
	lines   *bufio.Scanner
	lineno  int
	pending []string
	entry   Entry
	comment string
}

// NewScanner creates a scanner for a serialized dictionary.
func NewScanner(src string, format Format) *Scanner {
	src = strings.TrimPrefix(src, BOM)
	sc := &Scanner{format: format}
	sc.lines = bufio.NewScanner(strings.NewReader(src))
	// single-line tables may be as long as the whole source
	sc.lines.Buffer(make([]byte, 0, 4096), len(src)+bufio.MaxScanTokenSize)
	return sc
}

// Scan advances to the next non-empty entry. It returns false at the end
// of input.
func (sc *Scanner) Scan() bool {
	for {
		for len(sc.pending) > 0 {
			text := strings.TrimSpace(sc.pending[0])
			sc.pending = sc.pending[1:]
			if text != "" {
				sc.entry = Entry{Line: sc.lineno, Text: text}
				return true
			}
		}
		if !sc.lines.Scan() {
			return false
		}
		sc.lineno++
		line := sc.lines.Text()
		sc.comment = ""
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			sc.comment = strings.TrimSpace(line)[1:]
			continue
		}
		if sc.format.InlineComments {
			if i := sc.index(line, '#'); i >= 0 {
				line, sc.comment = line[:i], line[i+1:]
			}
		}
		sc.pending = sc.split(line)
	}
}

// Entry returns the current entry.
func (sc *Scanner) Entry() Entry {
	return sc.entry
}

// Comment returns the comment of the line last read, without the '#'.
func (sc *Scanner) Comment() string {
	return sc.comment
}

// Err returns the first error of the underlying line reader.
func (sc *Scanner) Err() error {
	return sc.lines.Err()
}

func (sc *Scanner) split(line string) []string {
	if sc.format.Separators == "" {
		return []string{line}
	}
	var parts []string
	start := 0
	escaped := false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && sc.format.Escapes:
			escaped = true
		case strings.ContainsRune(sc.format.Separators, r):
			parts = append(parts, line[start:i])
			start = i + len(string(r))
		}
	}
	return append(parts, line[start:])
}

func (sc *Scanner) index(s string, c rune) int {
	if !sc.format.Escapes {
		return strings.IndexRune(s, c)
	}
	return IndexUnescaped(s, c)
}

// Entries returns all entries of a serialized dictionary.
func Entries(src string, format Format) []Entry {
	var entries []Entry
	sc := NewScanner(src, format)
	for sc.Scan() {
		entries = append(entries, sc.Entry())
	}
	return entries
}

// IndexUnescaped returns the byte index of the first occurrence of c in s
// which is not preceded by a backslash, or -1.
func IndexUnescaped(s string, c rune) int {
	escaped := false
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == c:
			return i
		}
	}
	return -1
}

// Cut splits s around the first unescaped occurrence of sep. The parts are
// trimmed. found reports whether sep occurs in s.
func Cut(s string, sep rune) (before, after string, found bool) {
	i := IndexUnescaped(s, sep)
	if i < 0 {
		return strings.TrimSpace(s), "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(string(sep)):]), true
}

// Unescape resolves backslash escapes. `\s` stands for a space, `\t` for a
// tab and `\n` for a newline; any other escaped character stands for itself.
// A trailing single backslash is kept.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			switch r {
			case 's':
				b.WriteRune(' ')
			case 't':
				b.WriteRune('\t')
			case 'n':
				b.WriteRune('\n')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	if escaped {
		b.WriteRune('\\')
	}
	return b.String()
}

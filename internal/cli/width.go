package cli

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// runeWidth is the display width of r in a fixed pitch terminal, in terms
// of `en`s: 2 for East Asian wide and fullwidth characters, 0 for marks and
// format characters, 1 otherwise.
func runeWidth(r rune) int {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// caretPadding returns white space which moves a caret below column col
// (1-based, counting runes) of line. Tabs of line are kept, so the caret
// lines up for any tab width.
func caretPadding(line string, col int) string {
	var b strings.Builder
	n := 1
	for _, r := range line {
		if n >= col {
			break
		}
		n++
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	if n < col { // column beyond end of line
		b.WriteString(strings.Repeat(" ", col-n))
	}
	return b.String()
}

package shield

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Preset selects a group of built-in protections.
type Preset uint8

// Built-in protections.
const (
	Marker Preset = 1 << iota // {] ... [}, markers are removed
	Code                      // markdown code fences and inline code, key=value
	Web                       // URLs, e-mail addresses, HTML entities and tags
	LaTeX                     // comments, math, commands, verbatim environments
	Roman                     // roman numerals in upper case
)

// AllPresets enables every built-in protection.
const AllPresets = Marker | Code | Web | LaTeX | Roman

var presetNames = []struct {
	name   string
	preset Preset
}{
	{"marker", Marker},
	{"code", Code},
	{"web", Web},
	{"latex", LaTeX},
	{"roman", Roman},
}

// ParsePreset parses a preset name, or "all".
func ParsePreset(s string) (Preset, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return AllPresets, true
	}
	for _, p := range presetNames {
		if p.name == s {
			return p.preset, true
		}
	}
	return 0, false
}

func (p Preset) String() string {
	var names []string
	for _, n := range presetNames {
		if p&n.preset != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

var (
	reRoman     = regexp.MustCompile(`\bM{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})\b`)
	reCodeBlock = regexp.MustCompile("(?s)```.*?```|`[^`\n]+`")
	reKeyValue  = regexp.MustCompile(`[a-zA-Z0-9_-]+\s*=\s*[a-zA-Z0-9_\\-]+`)
	reEmail     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reURL       = regexp.MustCompile("(?i)\\bhttps?://[^\\s<>\"'`’‘´ʻʼ]+")
	reEntity    = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	reAttribute = regexp.MustCompile(`(?i)([a-z0-9\-]+)\s*=\s*("[^"]*"|'[^']*')`)
)

// Attributes of HTML tags whose values are prose and stay convertible.
var convertibleAttributes = map[string]bool{
	"content":     true,
	"title":       true,
	"alt":         true,
	"placeholder": true,
	"label":       true,
}

// HTML elements whose content is protected as a whole.
var opaqueElements = map[string]bool{
	"script": true,
	"style":  true,
	"code":   true,
	"pre":    true,
}

// LaTeX commands whose arguments are protected.
var latexStructural = map[string]bool{
	"label": true, "cite": true, "ref": true, "include": true, "input": true,
	"includegraphics": true, "usepackage": true, "documentclass": true,
	"begin": true, "end": true,
}

// LaTeX environments whose content is protected as a whole.
var latexVerbatim = map[string]bool{
	"verbatim": true, "lstlisting": true, "code": true, "minted": true,
}

func (p Preset) collect(text string, c *collector) {
	if p&Marker != 0 {
		collectMarkers(text, c)
	}
	if p&Code != 0 {
		collectRegexp(text, reCodeBlock, c)
		collectRegexp(text, reKeyValue, c)
	}
	if p&Web != 0 {
		collectRegexp(text, reURL, c)
		collectRegexp(text, reEmail, c)
		collectRegexp(text, reEntity, c)
		collectHTML(text, c)
	}
	if p&LaTeX != 0 {
		collectLaTeX(text, c)
	}
	if p&Roman != 0 {
		collectRegexp(text, reRoman, c)
	}
}

func collectRegexp(text string, re *regexp.Regexp, c *collector) {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		c.add(loc[0], loc[1], false)
	}
}

// collectMarkers protects text between "{]" and the next "[}".
func collectMarkers(text string, c *collector) {
	for pos := 0; pos < len(text); {
		i := strings.Index(text[pos:], "{]")
		if i < 0 {
			return
		}
		start := pos + i
		j := strings.Index(text[start+2:], "[}")
		if j < 0 {
			return
		}
		end := start + 2 + j + 2
		c.add(start, end, true)
		pos = end
	}
}

// collectHTML protects HTML tags, except the values of convertible
// attributes, and opaque elements as a whole.
func collectHTML(text string, c *collector) {
	for pos := 0; pos < len(text); {
		i := strings.IndexByte(text[pos:], '<')
		if i < 0 {
			return
		}
		start := pos + i
		rest := text[start:]
		name := tagName(rest)
		if name == "" {
			pos = start + 1
			continue
		}
		if opaqueElements[strings.ToLower(name)] {
			closer := "</" + strings.ToLower(name) + ">"
			if k := strings.Index(strings.ToLower(rest), closer); k >= 0 {
				c.add(start, start+k+len(closer), false)
				pos = start + k + len(closer)
				continue
			}
		}
		gt := strings.IndexByte(rest, '>')
		if gt < 0 {
			return
		}
		end := start + gt + 1
		from := start
		for _, loc := range reAttribute.FindAllStringSubmatchIndex(text[start:end], -1) {
			attr := strings.ToLower(text[start+loc[2] : start+loc[3]])
			if !convertibleAttributes[attr] {
				continue
			}
			valStart, valEnd := start+loc[4]+1, start+loc[5]-1 // without quotes
			c.add(from, valStart, false)
			from = valEnd
		}
		c.add(from, end, false)
		pos = end
	}
}

// tagName returns the name of a tag starting at s[0] == '<', including a
// leading '/' or '!' of closing tags and declarations.
func tagName(s string) string {
	if len(s) < 2 {
		return ""
	}
	i := 1
	if s[i] == '/' || s[i] == '!' {
		i++
	}
	j := i
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == ':') {
			break
		}
		j += size
	}
	if j == i {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	if !unicode.IsLetter(r) && s[1] != '!' {
		return ""
	}
	return s[1:j]
}

// collectLaTeX protects comments, inline and display math, command names,
// arguments of structural commands and verbatim environments.
func collectLaTeX(text string, c *collector) {
	for pos := 0; pos < len(text); {
		i := strings.IndexAny(text[pos:], `%$\`)
		if i < 0 {
			return
		}
		start := pos + i
		end := -1
		switch text[start] {
		case '%':
			if k := strings.IndexByte(text[start:], '\n'); k >= 0 {
				end = start + k
			} else {
				end = len(text)
			}
		case '$':
			delim := "$"
			if strings.HasPrefix(text[start:], "$$") {
				delim = "$$"
			}
			if k := strings.Index(text[start+len(delim):], delim); k >= 0 {
				end = start + len(delim) + k + len(delim)
			}
		case '\\':
			end = scanLaTeXCommand(text, start)
		}
		if end > start {
			c.add(start, end, false)
			pos = end
		} else {
			pos = start + 1
		}
	}
}

func scanLaTeXCommand(text string, start int) int {
	i := start + 1
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += size
	}
	cmd := text[start+1 : i]
	if cmd == "" {
		if i < len(text) { // escaped character like \% or \$
			_, size := utf8.DecodeRuneInString(text[i:])
			return i + size
		}
		return i
	}
	if cmd == "begin" {
		if env, ok := bracedArgument(text, i); ok && latexVerbatim[env] {
			closer := `\end{` + env + `}`
			if k := strings.Index(text[start:], closer); k >= 0 {
				return start + k + len(closer)
			}
		}
	}
	if latexStructural[cmd] {
		return skipArguments(text, i)
	}
	return i
}

// bracedArgument extracts the first {argument} at or after position i,
// skipping white space and optional arguments in brackets.
func bracedArgument(text string, i int) (string, bool) {
	for i < len(text) {
		switch ch := text[i]; {
		case ch == '{':
			if k := strings.IndexByte(text[i+1:], '}'); k >= 0 {
				return text[i+1 : i+1+k], true
			}
			return "", false
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '[' || ch == ']':
			i++
		default:
			return "", false
		}
	}
	return "", false
}

// skipArguments skips balanced {...} and [...] arguments starting at i.
func skipArguments(text string, i int) int {
	for {
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
		if i >= len(text) || (text[i] != '{' && text[i] != '[') {
			return i
		}
		open := text[i]
		closer := byte('}')
		if open == '[' {
			closer = ']'
		}
		depth := 1
		j := i + 1
		for j < len(text) && depth > 0 {
			switch text[j] {
			case open:
				depth++
			case closer:
				depth--
			}
			j++
		}
		i = j
	}
}

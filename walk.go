package latinga

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/latinga/exception"
	"github.com/npillmayer/latinga/rules"
	"github.com/npillmayer/latinga/shield"
)

type tokenKind int8

const (
	plainToken     tokenKind = iota
	exceptionToken           // core is an exception, possibly with a suffix
	caseMismatch             // core is an exception if case is ignored
)

// token is a run of non-space characters between protected spans. Its core
// is the token without leading and trailing punctuation.
type token struct {
	start, end         int
	coreStart, coreEnd int
	kind               tokenKind
	hit                exception.Hit
	folded             exception.Entry
}

// visitor receives the decisions of a walk over a text, in text order.
type visitor interface {
	segment(tokens []token)             // start of an unprotected segment
	shielded(sp shield.Span)            // a protected span
	exception(tok *token)               // an exception token
	mismatch(tok *token)                // a token differing from an exception in case only
	rule(pos int, m rules.Match)        // a rule firing at pos
	passThrough(pos int, r rune, n int) // a character no rule applies to
}

// walk drives a visitor over text. Protected spans are reported as a whole.
// In every other segment, exception lookup takes place at the start of each
// token core, then rules are resolved position by position. Rules never
// extend into a protected span or into the core of an exception token.
func (e *Engine) walk(text string, st *scanState, v visitor, checkCase bool) {
	pos := 0
	for _, sp := range e.shields.Spans(text) {
		if pos < sp.Start {
			e.walkSegment(text, pos, sp.Start, st, v, checkCase)
		}
		v.shielded(sp)
		pos = sp.End
	}
	if pos < len(text) {
		e.walkSegment(text, pos, len(text), st, v, checkCase)
	}
}

func (e *Engine) walkSegment(text string, from, to int, st *scanState, v visitor, checkCase bool) {
	st.tokens = splitTokens(text, from, to, st.tokens[:0])
	if e.exceptions.Len() > 0 {
		for i := range st.tokens {
			e.classify(text, &st.tokens[i], checkCase)
		}
	}
	tokens := st.tokens
	v.segment(tokens)
	ti := 0
	pos := from
	for pos < to {
		for ti < len(tokens) && (tokens[ti].kind == plainToken || tokens[ti].coreStart < pos) {
			ti++
		}
		if ti < len(tokens) && tokens[ti].coreStart == pos {
			tok := &tokens[ti]
			if tok.kind == exceptionToken {
				v.exception(tok)
			} else {
				v.mismatch(tok)
			}
			pos = tok.coreEnd
			ti++
			continue
		}
		limit := to
		if ti < len(tokens) {
			limit = tokens[ti].coreStart
		}
		if m, ok := e.rules.Resolve(text, pos, limit); ok {
			v.rule(pos, m)
			pos += m.Len
			continue
		}
		r, size := utf8.DecodeRuneInString(text[pos:])
		v.passThrough(pos, r, size)
		pos += size
	}
}

func (e *Engine) classify(text string, tok *token, checkCase bool) {
	// surface forms may carry punctuation, as in "Yahoo!"
	if tok.coreStart > tok.start || tok.coreEnd < tok.end {
		if entry, ok := e.exceptions.Lookup(text[tok.start:tok.end]); ok {
			tok.kind = exceptionToken
			tok.hit = exception.Hit{Entry: entry}
			tok.coreStart, tok.coreEnd = tok.start, tok.end
			return
		}
	}
	if tok.coreStart >= tok.coreEnd {
		return
	}
	core := text[tok.coreStart:tok.coreEnd]
	if hit, ok := e.exceptions.Match(core, e.suffixes); ok {
		tok.kind = exceptionToken
		tok.hit = hit
		return
	}
	if checkCase {
		if entry, ok := e.exceptions.LookupFolded(core); ok {
			tok.kind = caseMismatch
			tok.folded = entry
		}
	}
}

// splitTokens appends the tokens of text[from:to] to tokens.
func splitTokens(text string, from, to int, tokens []token) []token {
	pos := from
	for pos < to {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.IsSpace(r) {
			pos += size
			continue
		}
		tok := token{start: pos}
		for pos < to {
			r, size = utf8.DecodeRuneInString(text[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += size
		}
		tok.end = pos
		tok.coreStart, tok.coreEnd = tok.start, tok.end
		for tok.coreStart < tok.coreEnd {
			r, size = utf8.DecodeRuneInString(text[tok.coreStart:])
			if isCoreRune(r) {
				break
			}
			tok.coreStart += size
		}
		for tok.coreEnd > tok.coreStart {
			r, size = utf8.DecodeLastRuneInString(text[tok.coreStart:tok.coreEnd])
			if isCoreRune(r) {
				break
			}
			tok.coreEnd -= size
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isCoreRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Package lexer tokenizes TeX math input. The parser backtracks, so the
// lexer exposes its byte position for save/restore. Matching is done by a
// hand-written matcher rather than a generated automaton: at each position
// the branches are tried in a fixed priority order (whitespace, control
// space, \verb, control word, control symbol, normal character with
// combining marks).
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// StrictReporter routes non-fatal lexical conditions through the render
// settings' strict-mode policy. Defined here, in the consumer package;
// render.Settings implements it.
type StrictReporter interface {
	// ReportNonstrict reports a strictness-gated condition. A non-nil
	// return escalates the condition to a fatal error.
	ReportNonstrict(code, message string, tok *mathast.Token) error
}

// Category codes the lexer distinguishes.
const (
	CatcodeActive  = 13
	CatcodeComment = 14
)

// Lexer produces one token at a time from a byte offset into a shared
// input buffer. Category codes are mutable per-lexer state, scoped to one
// parse; parser directives may change them mid-stream.
type Lexer struct {
	input    *mathast.Input
	text     string
	pos      int
	reporter StrictReporter
	catcodes map[rune]int
}

// New creates a lexer over the input buffer. The reporter may be nil, in
// which case non-strict conditions are ignored.
func New(input *mathast.Input, reporter StrictReporter) *Lexer {
	return &Lexer{
		input:    input,
		text:     input.Text(),
		reporter: reporter,
		catcodes: map[rune]int{
			'%': CatcodeComment,
			'~': CatcodeActive,
		},
	}
}

// Input returns the shared input buffer.
func (l *Lexer) Input() *mathast.Input { return l.input }

// SetCatcode overrides the category code of a character.
func (l *Lexer) SetCatcode(ch rune, code int) {
	l.catcodes[ch] = code
}

// Catcode returns the category code for a character, or -1 when none is
// set.
func (l *Lexer) Catcode(ch rune) int {
	if code, ok := l.catcodes[ch]; ok {
		return code
	}
	return -1
}

// Position returns the byte offset the lexer will read from next.
func (l *Lexer) Position() int { return l.pos }

// SetPosition moves the lexer to an explicit byte offset. The parser uses
// this for lookahead backtracking.
func (l *Lexer) SetPosition(pos int) { l.pos = pos }

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isHSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

func isControlWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '@'
}

// advanceWhile returns the number of leading bytes of s satisfying pred.
func advanceWhile(s string, pred func(byte) bool) int {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	return i
}

// matchControlSpace matches the text after a backslash against the
// control-space form: optional horizontal space, a newline, then trailing
// horizontal space — or horizontal space alone. Returns the matched length
// or -1.
func matchControlSpace(rest string) int {
	if rest == "" {
		return -1
	}
	n := 0
	switch {
	case rest[0] == '\n':
		n = 1
	case isHSpace(rest[0]):
		n = 1 + advanceWhile(rest[1:], isHSpace)
		if n < len(rest) && rest[n] == '\n' {
			n++
		}
	default:
		return -1
	}
	return n + advanceWhile(rest[n:], isHSpace)
}

// matchVerb matches the text after a backslash against \verb or \verb*
// followed by a delimited run on one line. Returns the matched length and
// the star flag; matched == -1 when the text is not a \verb form at all.
// ok is false when a \verb was started but no matching delimiter appears
// before a newline or the end of input.
func matchVerb(rest string) (matched int, star, ok bool) {
	body, found := strings.CutPrefix(rest, "verb")
	if !found {
		return -1, false, true
	}
	prefix := 4
	if strings.HasPrefix(body, "*") {
		star = true
		prefix = 5
		body = body[1:]
	}

	delim, size := utf8.DecodeRuneInString(body)
	if size == 0 {
		return -1, false, true
	}
	// Unstarred \verb with a letter delimiter is just a longer control
	// word (\verbx), not a verbatim run.
	if !star && ((delim >= 'a' && delim <= 'z') || (delim >= 'A' && delim <= 'Z')) {
		return -1, false, true
	}

	for i := size; i < len(body); {
		r, w := utf8.DecodeRuneInString(body[i:])
		switch r {
		case '\n', '\r':
			return -1, false, false
		case delim:
			return prefix + i + w, star, true
		}
		i += w
	}
	return -1, false, false
}

// matchNormal matches a printable codepoint followed by any run of Unicode
// combining marks, consumed together as one token. Returns the byte length
// or -1 when the codepoint is outside the allow-list.
func matchNormal(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	u := uint32(r)
	allowed := (u >= 0x0021 && u <= 0x005B) ||
		(u >= 0x005D && u <= 0x2027) ||
		(u >= 0x202A && u <= 0xD7FF) ||
		u >= 0xF900
	if !allowed {
		return -1
	}
	n := size
	for n < len(s) {
		r, w := utf8.DecodeRuneInString(s[n:])
		if !isCombiningMark(r) {
			break
		}
		n += w
	}
	return n
}

// Lex returns the next token. At end of input it returns an EOF token;
// calling again keeps returning EOF.
func (l *Lexer) Lex() (mathast.Token, error) {
	if l.pos >= len(l.text) {
		return mathast.NewToken(
			mathast.LiteralText("EOF"),
			&mathast.SourceRange{Input: l.input, Start: l.pos, End: l.pos},
		), nil
	}

	start := l.pos
	rest := l.text[l.pos:]

	// Whitespace run collapses to a single space token.
	if isASCIISpace(rest[0]) {
		l.pos += advanceWhile(rest, isASCIISpace)
		return l.finishToken(mathast.LiteralText(" "), start)
	}

	if rest[0] == '\\' {
		after := rest[1:]

		if n := matchControlSpace(after); n >= 0 {
			l.pos += 1 + n
			return l.finishToken(mathast.LiteralText("\\ "), start)
		}

		if n, _, ok := matchVerb(after); !ok {
			tok := mathast.NewToken(
				mathast.SliceText(l.input, start, start+1),
				&mathast.SourceRange{Input: l.input, Start: start, End: start + 1},
			)
			return tok, mathast.ParseErrorAt(mathast.VerbMissingDelimiter{}, &tok)
		} else if n >= 0 {
			l.pos += 1 + n
			return l.finishToken(mathast.SliceText(l.input, start, l.pos), start)
		}

		if n := advanceWhile(after, isControlWordByte); n > 0 {
			// Control word: trailing whitespace is consumed but excluded
			// from the token text.
			ws := advanceWhile(after[n:], isASCIISpace)
			l.pos += 1 + n + ws
			return l.finishToken(mathast.SliceText(l.input, start, start+1+n), start)
		}

		if r, size := utf8.DecodeRuneInString(after); size > 0 && r != utf8.RuneError {
			// Control symbol: backslash plus one codepoint.
			l.pos += 1 + size
			return l.finishToken(mathast.SliceText(l.input, start, l.pos), start)
		}
	}

	if n := matchNormal(rest); n > 0 {
		l.pos += n
		return l.finishToken(mathast.SliceText(l.input, start, l.pos), start)
	}

	r, size := utf8.DecodeRuneInString(rest)
	l.pos += size
	tok := mathast.NewToken(
		mathast.SliceText(l.input, start, l.pos),
		&mathast.SourceRange{Input: l.input, Start: start, End: l.pos},
	)
	return tok, mathast.ParseErrorAt(mathast.UnexpectedCharacter{Character: string(r)}, &tok)
}

// finishToken applies comment catcode handling and wraps up a matched
// token. A single-character token whose character has catcode 14 swallows
// the rest of the line and recurses for the next real token.
func (l *Lexer) finishToken(text mathast.TokenText, start int) (mathast.Token, error) {
	s := text.String()
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && l.Catcode(r) == CatcodeComment {
		if nl := strings.IndexByte(l.text[start:], '\n'); nl >= 0 {
			l.pos = start + nl
		} else {
			l.pos = len(l.text)
			if l.reporter != nil {
				err := l.reporter.ReportNonstrict("commentAtEnd",
					"% comment has no terminating newline; LaTeX would "+
						"fail because of commenting the end of math mode (e.g. $)", nil)
				if err != nil {
					return mathast.Token{}, err
				}
			}
		}
		return l.Lex()
	}

	return mathast.NewToken(
		text,
		&mathast.SourceRange{Input: l.input, Start: start, End: l.pos},
	), nil
}

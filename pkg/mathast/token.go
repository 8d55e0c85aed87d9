// Package mathast defines the lexical and syntactic data model shared by the
// whole rendering pipeline: tokens with provenance, the typed parse-node
// union, source ranges, and the parse-error taxonomy.
package mathast

// TokenText is the textual payload of a Token. It is either a borrowed
// slice of a shared Input buffer (zero-copy, the common case for lexed
// tokens) or a standalone string (macro-synthesized text and static
// literals such as "EOF"). A TokenText is never mutated after creation.
type TokenText struct {
	source *Input
	start  int
	end    int
	str    string
}

// SliceText creates a TokenText borrowing [start, end) of the input buffer.
func SliceText(source *Input, start, end int) TokenText {
	return TokenText{source: source, start: start, end: end}
}

// LiteralText creates a TokenText holding a standalone string. Used for
// macro-generated text and for static literals like "EOF" and " ".
func LiteralText(s string) TokenText {
	return TokenText{str: s}
}

// String returns the text represented by this TokenText.
func (t TokenText) String() string {
	if t.source != nil {
		return t.source.text[t.start:t.end]
	}
	return t.str
}

// Len returns the length of the token text in bytes.
func (t TokenText) Len() int {
	if t.source != nil {
		return t.end - t.start
	}
	return len(t.str)
}

// IsEmpty returns true if the token text has zero length.
func (t TokenText) IsEmpty() bool {
	return t.Len() == 0
}

// Token is an immutable lexical unit. Tokens are created by the lexer or by
// macro expansion, consumed exactly once by the parser or re-queued by the
// expander, and never outlive the render call that created them.
type Token struct {
	// Text is the raw token text. For control sequences it includes the
	// backslash and command name (e.g. "\alpha").
	Text TokenText

	// Loc is the token's span in the original input, when known. Tokens
	// synthesized during macro expansion may carry the macro call's span
	// or none at all.
	Loc *SourceRange

	// NoExpand prevents the macro expander from expanding this token even
	// if its text names a defined macro.
	NoExpand bool

	// TreatAsRelax makes the expander treat the token as \relax, which
	// short-circuits expansion.
	TreatAsRelax bool
}

// NewToken creates a token with the given text and optional location.
func NewToken(text TokenText, loc *SourceRange) Token {
	return Token{Text: text, Loc: loc}
}

// String returns the token text.
func (t Token) String() string {
	return t.Text.String()
}

// RangeToken builds a token spanning from this token to endToken, carrying
// the given text. Used to attribute multi-token constructs to their full
// source extent. Falls back to this token's location when the spans cannot
// be merged.
func (t Token) RangeToken(endToken Token, text TokenText) Token {
	loc := MergeRanges(t.Loc, endToken.Loc)
	if loc == nil {
		loc = t.Loc
	}
	return Token{Text: text, Loc: loc}
}

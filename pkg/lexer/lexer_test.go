package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// lexAll drains the lexer into token texts, stopping at EOF.
func lexAll(t *testing.T, input string) []string {
	t.Helper()
	l := New(mathast.NewInput(input), nil)
	var texts []string
	for {
		tok, err := l.Lex()
		require.NoError(t, err)
		text := tok.Text.String()
		if text == "EOF" {
			return texts
		}
		texts = append(texts, text)
	}
}

func TestLexer_Symbols(t *testing.T) {
	assert.Equal(t, []string{"a", "+", "b"}, lexAll(t, "a+b"))
}

func TestLexer_WhitespaceRunCollapses(t *testing.T) {
	assert.Equal(t, []string{"a", " ", "b"}, lexAll(t, "a  \t  b"))
}

func TestLexer_ControlWord(t *testing.T) {
	assert.Equal(t, []string{"\\frac", "a", "b"}, lexAll(t, `\frac ab`))
}

func TestLexer_ControlWordSwallowsTrailingSpace(t *testing.T) {
	// The space after the control word is consumed, not tokenized.
	assert.Equal(t, []string{"\\alpha", "x"}, lexAll(t, `\alpha  x`))
}

func TestLexer_ControlWordAtSign(t *testing.T) {
	assert.Equal(t, []string{"\\@ifstar"}, lexAll(t, `\@ifstar`))
}

func TestLexer_ControlSymbol(t *testing.T) {
	assert.Equal(t, []string{"\\{", "\\}"}, lexAll(t, `\{\}`))
}

func TestLexer_ControlSpace(t *testing.T) {
	assert.Equal(t, []string{"\\ ", "x"}, lexAll(t, "\\ x"))
}

func TestLexer_ControlWordTextExcludesTrailingSpace(t *testing.T) {
	l := New(mathast.NewInput(`\frac  x`), nil)
	tok, err := l.Lex()
	require.NoError(t, err)
	assert.Equal(t, "\\frac", tok.Text.String())
	require.NotNil(t, tok.Loc)
	// The token text excludes the trailing whitespace, but the source span
	// runs to the post-whitespace position the lexer resumes from.
	assert.Equal(t, 0, tok.Loc.Start)
	assert.Equal(t, 7, tok.Loc.End)
	assert.Equal(t, 5, tok.Text.Len())

	// But the stream position has moved past the whitespace.
	tok, err = l.Lex()
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Text.String())
}

func TestLexer_Verb(t *testing.T) {
	assert.Equal(t, []string{"\\verb|a b|"}, lexAll(t, `\verb|a b|`))
}

func TestLexer_VerbStar(t *testing.T) {
	assert.Equal(t, []string{"\\verb*|a b|"}, lexAll(t, `\verb*|a b|`))
}

func TestLexer_VerbWithLetterDelimiterIsControlWord(t *testing.T) {
	// A letter cannot delimit an unstarred \verb; the run of letters lexes
	// as one long control word instead.
	assert.Equal(t, []string{"\\verbAfooA"}, lexAll(t, `\verbAfooA`))
	assert.Equal(t, []string{"\\verbxfoox"}, lexAll(t, `\verbxfoox`))

	// Starred \verb may use any delimiter.
	assert.Equal(t, []string{"\\verb*AfooA"}, lexAll(t, `\verb*AfooA`))
}

func TestLexer_VerbMissingDelimiter(t *testing.T) {
	l := New(mathast.NewInput(`\verb|oops`), nil)
	_, err := l.Lex()
	require.Error(t, err)
	var parseErr *mathast.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, mathast.VerbMissingDelimiter{}, parseErr.Kind)
}

func TestLexer_CombiningMarksAttachToBase(t *testing.T) {
	// e + combining acute lexes as one token.
	assert.Equal(t, []string{"e\u0301"}, lexAll(t, "e\u0301"))
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	l := New(mathast.NewInput("\x00"), nil)
	_, err := l.Lex()
	require.Error(t, err)
	var parseErr *mathast.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.IsType(t, mathast.UnexpectedCharacter{}, parseErr.Kind)
}

func TestLexer_CommentConsumesToEndOfLine(t *testing.T) {
	// The newline survives the comment and lexes as a space.
	assert.Equal(t, []string{"a", " ", "b"}, lexAll(t, "a% a comment\nb"))
}

type recordingReporter struct {
	codes []string
}

func (r *recordingReporter) ReportNonstrict(code, message string, tok *mathast.Token) error {
	r.codes = append(r.codes, code)
	return nil
}

func TestLexer_CommentAtEndReportsNonstrict(t *testing.T) {
	reporter := &recordingReporter{}
	l := New(mathast.NewInput("a% trailing"), reporter)

	tok, err := l.Lex()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text.String())

	tok, err = l.Lex()
	require.NoError(t, err)
	assert.Equal(t, "EOF", tok.Text.String())
	assert.Equal(t, []string{"commentAtEnd"}, reporter.codes)
}

func TestLexer_CatcodeChange(t *testing.T) {
	l := New(mathast.NewInput("a%b"), nil)
	l.SetCatcode('%', 12)

	// With the comment catcode removed, % lexes as an ordinary character.
	assert.Equal(t, []string{"a", "%", "b"}, lexAll2(t, l))
}

// lexAll2 drains an already-configured lexer.
func lexAll2(t *testing.T, l *Lexer) []string {
	t.Helper()
	var texts []string
	for {
		tok, err := l.Lex()
		require.NoError(t, err)
		if tok.Text.String() == "EOF" {
			return texts
		}
		texts = append(texts, tok.Text.String())
	}
}

func TestLexer_SetPositionBacktracks(t *testing.T) {
	l := New(mathast.NewInput("ab"), nil)
	pos := l.Position()

	tok, err := l.Lex()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text.String())

	l.SetPosition(pos)
	tok, err = l.Lex()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text.String())
}

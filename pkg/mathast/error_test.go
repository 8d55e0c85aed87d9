package mathast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError_NoPosition(t *testing.T) {
	err := NewParseError(DoubleSuperscript{})
	assert.Equal(t, "Double superscript", err.Error())
}

func TestParseError_UnderlinesSpan(t *testing.T) {
	input := NewInput("x^2^3")
	tok := NewToken(LiteralText("^"), &SourceRange{Input: input, Start: 3, End: 4})

	err := ParseErrorAt(DoubleSuperscript{}, &tok)
	require.Equal(t, 3, err.Start)
	require.Equal(t, 4, err.End)

	msg := err.Error()
	assert.Contains(t, msg, "Double superscript at position 4: ")
	// The offending character carries a combining low line.
	assert.Contains(t, msg, "^̲")
}

func TestParseError_ClampsLongContext(t *testing.T) {
	long := strings.Repeat("a", 40) + "!" + strings.Repeat("b", 40)
	input := NewInput(long)
	tok := NewToken(LiteralText("!"), &SourceRange{Input: input, Start: 40, End: 41})

	msg := ParseErrorAt(UnexpectedCharacter{Character: "!"}, &tok).Error()
	assert.Contains(t, msg, "…")
	// Only a 15-character window survives on either side.
	assert.NotContains(t, msg, strings.Repeat("a", 20))
	assert.NotContains(t, msg, strings.Repeat("b", 20))
}

func TestErrorKind_Messages(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{UndefinedControlSequence{Name: `\nope`}, `Undefined control sequence: \nope`},
		{ExpectedToken{Expected: "}", Found: "EOF"}, "Expected '}', got 'EOF'"},
		{TooManyExpansions{Limit: 1000}, "Too many expansions: infinite loop or need to increase maxExpand setting (1000)"},
		{MismatchedEnvironmentEnd{Begin: "matrix", End: "pmatrix"}, `Mismatch: \begin{matrix} matched by \end{pmatrix}`},
		{InvalidUnit{Unit: "zz"}, "Invalid unit: 'zz'"},
		{StrictModeError{ErrMessage: "comment at end", Code: "commentAtEnd"}, "comment at end [commentAtEnd]"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.kind.Message())
	}
}

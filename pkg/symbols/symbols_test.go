package symbols

import (
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/mathast"
)

func TestGet_Replacement(t *testing.T) {
	sym, ok := Get(mathast.ModeMath, "\\alpha")
	require.True(t, ok)
	assert.Equal(t, "α", sym.Replace)
	assert.Equal(t, GroupMathOrd, sym.Group)
}

func TestGet_ModeSensitive(t *testing.T) {
	// \sum is a math-mode operator and has no text-mode meaning.
	sym, ok := Get(mathast.ModeMath, "\\sum")
	require.True(t, ok)
	assert.Equal(t, GroupOpToken, sym.Group)

	_, ok = Get(mathast.ModeText, "\\sum")
	assert.False(t, ok)
}

func TestGet_AtomClasses(t *testing.T) {
	tests := []struct {
		name  string
		class mathast.AtomClass
	}{
		{"+", mathast.AtomBin},
		{"=", mathast.AtomRel},
		{"(", mathast.AtomOpen},
		{")", mathast.AtomClose},
		{",", mathast.AtomPunct},
	}
	for _, tc := range tests {
		sym, ok := Get(mathast.ModeMath, tc.name)
		require.True(t, ok, tc.name)
		assert.True(t, sym.Group.IsAtomClass(), tc.name)
		assert.Equal(t, tc.class, sym.Group.AtomClass(), tc.name)
	}
}

func TestGet_LettersAndDigits(t *testing.T) {
	sym, ok := Get(mathast.ModeMath, "x")
	require.True(t, ok)
	assert.Equal(t, GroupMathOrd, sym.Group)

	sym, ok = Get(mathast.ModeText, "x")
	require.True(t, ok)
	assert.Equal(t, GroupTextOrd, sym.Group)

	sym, ok = Get(mathast.ModeMath, "7")
	require.True(t, ok)
	assert.Equal(t, GroupTextOrd, sym.Group)
}

func TestIsDefinedInAnyMode(t *testing.T) {
	assert.True(t, IsDefinedInAnyMode("\\alpha"))
	assert.True(t, IsDefinedInAnyMode("\\,"))
	assert.False(t, IsDefinedInAnyMode("\\nosuchsymbol"))
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names(mathast.ModeMath)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "\\alpha")
	assert.Contains(t, names, "+")

	// Every name resolves back through Get.
	for _, name := range names[:10] {
		assert.True(t, IsDefined(mathast.ModeMath, name))
	}
}

func TestAccentFor(t *testing.T) {
	m, ok := AccentFor(0x0301)
	require.True(t, ok)
	assert.Equal(t, "\\acute", m.Math)
	assert.Equal(t, "\\'", m.Text)

	_, ok = AccentFor('x')
	assert.False(t, ok)
}

func TestTable_MultiCharacterNamesAreCommands(t *testing.T) {
	for _, name := range Names(mathast.ModeMath) {
		if utf8.RuneCountInString(name) > 1 {
			assert.True(t, strings.HasPrefix(name, "\\"), name)
		}
	}
}

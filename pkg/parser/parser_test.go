package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/macro"
	"github.com/yaklabco/gotexmath/pkg/mathast"
)

func macroMap(name, body string) map[string]*macro.Definition {
	return map[string]*macro.Definition{name: {Body: body}}
}

// stubSettings satisfies Settings for tests that exercise the core grammar
// without the function registry.
type stubSettings struct {
	display bool
}

func (s stubSettings) ReportNonstrict(code, message string, tok *mathast.Token) error { return nil }
func (s stubSettings) DisplayMode() bool                                              { return s.display }
func (s stubSettings) IsTrusted(ctx TrustContext) bool                                { return false }

func parse(t *testing.T, input string) []mathast.Node {
	t.Helper()
	tree, err := New(input, stubSettings{}, nil, 1000).Parse()
	require.NoError(t, err)
	return tree
}

func parseErr(t *testing.T, input string) *mathast.ParseError {
	t.Helper()
	_, err := New(input, stubSettings{}, nil, 1000).Parse()
	require.Error(t, err)
	var parseErr *mathast.ParseError
	require.ErrorAs(t, err, &parseErr)
	return parseErr
}

func TestParser_Symbols(t *testing.T) {
	tree := parse(t, "a+b")
	require.Len(t, tree, 3)

	ord, ok := tree[0].(*mathast.MathOrd)
	require.True(t, ok)
	assert.Equal(t, "a", ord.Text)

	bin, ok := tree[1].(*mathast.Atom)
	require.True(t, ok)
	assert.Equal(t, mathast.AtomBin, bin.Family)
	assert.Equal(t, "+", bin.Text)

	assert.Equal(t, mathast.KindMathOrd, tree[2].Kind())
}

func TestParser_DigitsAreTextOrds(t *testing.T) {
	tree := parse(t, "42")
	require.Len(t, tree, 2)
	assert.Equal(t, mathast.KindTextOrd, tree[0].Kind())
	assert.Equal(t, mathast.KindTextOrd, tree[1].Kind())
}

func TestParser_SupSub(t *testing.T) {
	tree := parse(t, "x^2_3")
	require.Len(t, tree, 1)

	ss, ok := tree[0].(*mathast.SupSub)
	require.True(t, ok)
	assert.Equal(t, "x", ss.Base.(*mathast.MathOrd).Text)
	assert.Equal(t, "2", ss.Sup.(*mathast.TextOrd).Text)
	assert.Equal(t, "3", ss.Sub.(*mathast.TextOrd).Text)
}

func TestParser_SubSupOrderIrrelevant(t *testing.T) {
	tree := parse(t, "x_3^2")
	require.Len(t, tree, 1)
	ss, ok := tree[0].(*mathast.SupSub)
	require.True(t, ok)
	assert.NotNil(t, ss.Sup)
	assert.NotNil(t, ss.Sub)
}

func TestParser_DoubleSuperscript(t *testing.T) {
	perr := parseErr(t, "x^2^3")
	assert.Equal(t, mathast.DoubleSuperscript{}, perr.Kind)
}

func TestParser_DoubleSubscript(t *testing.T) {
	perr := parseErr(t, "x_2_3")
	assert.Equal(t, mathast.DoubleSubscript{}, perr.Kind)
}

func TestParser_SupscriptMissingGroup(t *testing.T) {
	perr := parseErr(t, "x^")
	assert.Equal(t, mathast.ExpectedGroupAfterSymbol{Symbol: "^"}, perr.Kind)
}

func TestParser_Group(t *testing.T) {
	tree := parse(t, "{a+b}")
	require.Len(t, tree, 1)

	grp, ok := tree[0].(*mathast.OrdGroup)
	require.True(t, ok)
	assert.Len(t, grp.Body, 3)
	assert.False(t, grp.SemiSimple)
}

func TestParser_BeginGroupEndGroup(t *testing.T) {
	tree := parse(t, `\begingroup ab\endgroup`)
	require.Len(t, tree, 1)
	grp, ok := tree[0].(*mathast.OrdGroup)
	require.True(t, ok)
	assert.True(t, grp.SemiSimple)
	assert.Len(t, grp.Body, 2)
}

func TestParser_ExtraCloseBrace(t *testing.T) {
	perr := parseErr(t, "{1+2}}")
	assert.Equal(t, mathast.ExpectedToken{Expected: "EOF", Found: "}"}, perr.Kind)
}

func TestParser_UnclosedGroup(t *testing.T) {
	perr := parseErr(t, "{1+2")
	assert.Equal(t, mathast.ExpectedToken{Expected: "}", Found: "EOF"}, perr.Kind)
}

func TestParser_UndefinedControlSequence(t *testing.T) {
	perr := parseErr(t, `\nosuchcommand`)
	assert.Equal(t, mathast.UndefinedControlSequence{Name: `\nosuchcommand`}, perr.Kind)
}

func TestParser_VerbWithLetterDelimiterIsUndefined(t *testing.T) {
	// The lexer treats \verbAfooA as one control word, so it fails as an
	// unknown command rather than lexing a verbatim run.
	perr := parseErr(t, `\verbAfooA`)
	assert.Equal(t, mathast.UndefinedControlSequence{Name: `\verbAfooA`}, perr.Kind)
}

func TestParser_Primes(t *testing.T) {
	tree := parse(t, "f'")
	require.Len(t, tree, 1)

	ss, ok := tree[0].(*mathast.SupSub)
	require.True(t, ok)
	sup, ok := ss.Sup.(*mathast.OrdGroup)
	require.True(t, ok)
	require.Len(t, sup.Body, 1)
	assert.Equal(t, "\\prime", sup.Body[0].(*mathast.TextOrd).Text)
}

func TestParser_DoublePrime(t *testing.T) {
	tree := parse(t, "f''")
	require.Len(t, tree, 1)
	ss := tree[0].(*mathast.SupSub)
	sup := ss.Sup.(*mathast.OrdGroup)
	assert.Len(t, sup.Body, 2)
}

func TestParser_RelaxIsDropped(t *testing.T) {
	tree := parse(t, `a\relax b`)
	assert.Len(t, tree, 2)
}

func TestParser_SpacesCollapseInMathMode(t *testing.T) {
	tree := parse(t, "a   b")
	assert.Len(t, tree, 2)
}

func TestParser_MacroFromSettingsNamespace(t *testing.T) {
	// Macros passed to New pre-seed the namespace.
	tree, err := New(`\half`, stubSettings{}, macroMap("\\half", "x/2"), 1000).Parse()
	require.NoError(t, err)
	assert.Len(t, tree, 3)
}

func TestParser_ExpansionLimit(t *testing.T) {
	_, err := New(`\loop`, stubSettings{}, macroMap("\\loop", "\\loop"), 5).Parse()
	require.Error(t, err)
	var perr *mathast.ParseError
	require.ErrorAs(t, err, &perr)
	assert.IsType(t, mathast.TooManyExpansions{}, perr.Kind)
}

func TestParser_CombiningAccentAttachesToBase(t *testing.T) {
	tree := parse(t, "e\u0301")
	require.Len(t, tree, 1)

	acc, ok := tree[0].(*mathast.Accent)
	require.True(t, ok)
	assert.Equal(t, "\\acute", acc.Label)
	assert.True(t, acc.IsShifty)
	assert.Equal(t, "e", acc.Base.(*mathast.MathOrd).Text)
}

func TestParser_SourceLocationsSpanGroups(t *testing.T) {
	tree := parse(t, "{ab}")
	loc := tree[0].NodeLoc()
	require.NotNil(t, loc)
	assert.Equal(t, 0, loc.Start)
	assert.Equal(t, 4, loc.End)
}

package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/mathast"
)

func newTestExpander(input string, macros map[string]*Definition) *Expander {
	ns := NewNamespace(Builtins, macros)
	return NewExpander(mathast.NewInput(input), ns, nil, mathast.ModeMath, 1000)
}

// expandAll pulls fully-expanded tokens until EOF.
func expandAll(t *testing.T, e *Expander) []string {
	t.Helper()
	var texts []string
	for {
		tok, err := e.ExpandNextToken()
		require.NoError(t, err)
		if tok.Text.String() == "EOF" {
			return texts
		}
		texts = append(texts, tok.Text.String())
	}
}

func TestExpander_LiteralBody(t *testing.T) {
	e := newTestExpander(`\foo`, map[string]*Definition{
		"\\foo": {Body: "ab"},
	})
	assert.Equal(t, []string{"a", "b"}, expandAll(t, e))
}

func TestExpander_BodyWithArguments(t *testing.T) {
	e := newTestExpander(`\swap{x}{y}`, map[string]*Definition{
		"\\swap": {Body: "#2#1"},
	})
	assert.Equal(t, []string{"y", "x"}, expandAll(t, e))
}

func TestExpander_BracedArgumentKeepsGroup(t *testing.T) {
	e := newTestExpander(`\id{ab}`, map[string]*Definition{
		"\\id": {Body: "#1", NumArgs: 1},
	})
	// A multi-token argument substitutes its tokens without braces.
	assert.Equal(t, []string{"a", "b"}, expandAll(t, e))
}

func TestExpander_NestedExpansion(t *testing.T) {
	e := newTestExpander(`\outer`, map[string]*Definition{
		"\\outer": {Body: "\\inner c"},
		"\\inner": {Body: "ab"},
	})
	assert.Equal(t, []string{"a", "b", "c"}, expandAll(t, e))
}

func TestExpander_ExpansionLimit(t *testing.T) {
	ns := NewNamespace(Builtins, map[string]*Definition{
		"\\loop": {Body: "\\loop"},
	})
	e := NewExpander(mathast.NewInput(`\loop`), ns, nil, mathast.ModeMath, 10)

	_, err := e.ExpandNextToken()
	require.Error(t, err)
	var parseErr *mathast.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.IsType(t, mathast.TooManyExpansions{}, parseErr.Kind)
}

func TestExpander_UndefinedPassesThrough(t *testing.T) {
	// ExpandNextToken returns unbound control sequences for the parser to
	// reject; expansion itself does not fail.
	e := newTestExpander(`\nosuch`, nil)
	assert.Equal(t, []string{"\\nosuch"}, expandAll(t, e))
}

func TestExpander_PreTokenizedDefinition(t *testing.T) {
	// Tokens are stored reversed, as \def produces them.
	toks := []mathast.Token{
		mathast.NewToken(mathast.LiteralText("b"), nil),
		mathast.NewToken(mathast.LiteralText("a"), nil),
	}
	e := newTestExpander(`\foo`, map[string]*Definition{
		"\\foo": {Tokens: toks},
	})
	assert.Equal(t, []string{"a", "b"}, expandAll(t, e))
}

func TestExpander_CrBuiltinExpandsToRowBreak(t *testing.T) {
	e := newTestExpander(`\cr`, nil)
	assert.Equal(t, []string{"\\\\"}, expandAll(t, e))
}

func TestNamespace_GroupScoping(t *testing.T) {
	ns := NewNamespace(Builtins, nil)
	ns.Set("\\x", &Definition{Body: "1"}, false)

	ns.BeginGroup()
	ns.Set("\\x", &Definition{Body: "2"}, false)
	assert.Equal(t, "2", ns.Get("\\x").Body)
	require.NoError(t, ns.EndGroup())

	assert.Equal(t, "1", ns.Get("\\x").Body)
}

func TestNamespace_GlobalSetSurvivesGroup(t *testing.T) {
	ns := NewNamespace(Builtins, nil)
	ns.BeginGroup()
	ns.Set("\\x", &Definition{Body: "9"}, true)
	require.NoError(t, ns.EndGroup())

	require.NotNil(t, ns.Get("\\x"))
	assert.Equal(t, "9", ns.Get("\\x").Body)
}

func TestNamespace_SeedMapReceivesGlobalDefinitions(t *testing.T) {
	// The seed map is aliased, so definitions that survive the parse are
	// visible to the caller afterwards.
	seed := map[string]*Definition{}
	ns := NewNamespace(Builtins, seed)

	ns.BeginGroup()
	ns.Set("\\x", &Definition{Body: "9"}, true)
	require.NoError(t, ns.EndGroup())

	require.Contains(t, seed, "\\x")
	assert.Equal(t, "9", seed["\\x"].Body)
}

func TestNamespace_SeedMapLosesGroupLocalDefinitions(t *testing.T) {
	seed := map[string]*Definition{}
	ns := NewNamespace(Builtins, seed)

	ns.BeginGroup()
	ns.Set("\\x", &Definition{Body: "9"}, false)
	require.NoError(t, ns.EndGroup())

	assert.NotContains(t, seed, "\\x")
}

func TestNamespace_UnbalancedEndGroup(t *testing.T) {
	ns := NewNamespace(Builtins, nil)
	assert.Error(t, ns.EndGroup())
}

func TestExpander_ConsumeArg(t *testing.T) {
	e := newTestExpander(`{ab}c`, nil)
	toks, err := e.ConsumeArg()
	require.NoError(t, err)

	// Argument tokens come back reversed for stack pushing.
	var texts []string
	for i := len(toks) - 1; i >= 0; i-- {
		texts = append(texts, toks[i].Text.String())
	}
	assert.Equal(t, []string{"a", "b"}, texts)
}

func TestExpander_ConsumeArgSingleToken(t *testing.T) {
	e := newTestExpander(`xy`, nil)
	toks, err := e.ConsumeArg()
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "x", toks[0].Text.String())
}

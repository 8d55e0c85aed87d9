package macro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/symbols"
)

func TestBuiltins_NeverShadowSymbols(t *testing.T) {
	// The init check panics on violation; this keeps the invariant visible
	// when the tables change.
	for name := range Builtins {
		assert.False(t, symbols.IsDefinedInAnyMode(name), name)
	}
}

func TestBuiltins_NamesAreControlSequences(t *testing.T) {
	for name := range Builtins {
		assert.True(t, strings.HasPrefix(name, "\\"), name)
	}
}

func TestBuiltins_SpacingAliases(t *testing.T) {
	def := Builtins["\\thinspace"]
	require.NotNil(t, def)
	assert.Equal(t, "\\,", def.Body)
}

func TestBuiltins_NoexpandHoldsToken(t *testing.T) {
	e := newTestExpander(`\noexpand\dots x`, nil)
	// \dots is expandable, so \noexpand freezes it and it surfaces as
	// \relax instead of its expansion.
	assert.Equal(t, []string{"\\relax", "x"}, expandAll(t, e))
}

package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle_SupSub(t *testing.T) {
	assert.Equal(t, Script, Display.Sup())
	assert.Equal(t, ScriptCramp, Display.Sub())
	assert.Equal(t, Script, Text.Sup())
	assert.Equal(t, ScriptScript, Script.Sup())
	assert.Equal(t, ScriptScript, ScriptScript.Sup())

	// Superscripts of a cramped style stay cramped.
	assert.Equal(t, ScriptCramp, TextCramp.Sup())
}

func TestStyle_Fractions(t *testing.T) {
	assert.Equal(t, Text, Display.FracNum())
	assert.Equal(t, TextCramp, Display.FracDen())
	assert.Equal(t, Script, Text.FracNum())
	assert.Equal(t, ScriptCramp, Text.FracDen())
}

func TestStyle_Cramp(t *testing.T) {
	assert.Equal(t, DisplayCramp, Display.Cramp())
	assert.Equal(t, TextCramp, Text.Cramp())
	// Cramping is idempotent.
	assert.Equal(t, TextCramp, TextCramp.Cramp())
}

func TestStyle_Text(t *testing.T) {
	// Display is already at least text-sized and stays put.
	assert.Equal(t, Display, Display.Text())
	assert.Equal(t, DisplayCramp, DisplayCramp.Text())
	assert.Equal(t, Text, Script.Text())
	assert.Equal(t, TextCramp, ScriptCramp.Text())
	assert.Equal(t, Text, Text.Text())
}

func TestStyle_IsTight(t *testing.T) {
	assert.False(t, Display.IsTight())
	assert.False(t, Text.IsTight())
	assert.True(t, Script.IsTight())
	assert.True(t, ScriptScript.IsTight())
	assert.True(t, SScriptCramp.IsTight())
}

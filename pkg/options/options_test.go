package options

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gotexmath/pkg/style"
)

func TestNew_Defaults(t *testing.T) {
	opts := New(style.Text, math.Inf(1), 0)
	assert.Equal(t, style.Text, opts.Style)
	assert.Equal(t, BaseSize, opts.Size)
	assert.Equal(t, 1.0, opts.SizeMultiplier)
	assert.Empty(t, opts.Color)
	assert.False(t, opts.Phantom)
}

func TestHavingStyle_DoesNotMutateReceiver(t *testing.T) {
	opts := New(style.Text, math.Inf(1), 0)
	script := opts.HavingStyle(style.Script)

	assert.Equal(t, style.Text, opts.Style)
	assert.Equal(t, style.Script, script.Style)
}

func TestHavingStyle_SameStyleReturnsReceiver(t *testing.T) {
	opts := New(style.Text, math.Inf(1), 0)
	assert.Same(t, opts, opts.HavingStyle(style.Text))
}

func TestHavingStyle_ScriptShrinksSize(t *testing.T) {
	opts := New(style.Display, math.Inf(1), 0)
	script := opts.HavingStyle(style.Script)

	// \normalsize drops to size 3 in scriptstyle.
	assert.Equal(t, 3, script.Size)
	assert.Less(t, script.SizeMultiplier, opts.SizeMultiplier)

	// Returning to text style restores the original size.
	restored := script.HavingStyle(style.Text)
	assert.Equal(t, BaseSize, restored.Size)
	assert.Equal(t, 1.0, restored.SizeMultiplier)
}

func TestHavingCrampedStyle(t *testing.T) {
	opts := New(style.Display, math.Inf(1), 0)
	cramped := opts.HavingCrampedStyle()
	assert.Equal(t, style.DisplayCramp, cramped.Style)
}

func TestHavingSize(t *testing.T) {
	opts := New(style.Text, math.Inf(1), 0)
	huge := opts.HavingSize(10)
	assert.Equal(t, 10, huge.Size)
	assert.Equal(t, 2.074, huge.SizeMultiplier)
	assert.Equal(t, BaseSize, opts.Size)
}

func TestWithColor(t *testing.T) {
	opts := New(style.Text, math.Inf(1), 0)
	red := opts.WithColor("red")
	assert.Equal(t, "red", red.Color)
	assert.Empty(t, opts.Color)
}

func TestWithPhantom(t *testing.T) {
	opts := New(style.Text, math.Inf(1), 0)
	ghost := opts.WithPhantom()
	assert.True(t, ghost.Phantom)
	assert.False(t, opts.Phantom)
}

func TestWithTextFont(t *testing.T) {
	opts := New(style.Text, math.Inf(1), 0)
	styled := opts.WithTextFontFamily("texttt").
		WithTextFontWeight("textbf").
		WithTextFontShape("textit")

	assert.Equal(t, "texttt", styled.FontFamily)
	assert.Equal(t, "textbf", styled.FontWeight)
	assert.Equal(t, "textit", styled.FontShape)
	assert.Empty(t, opts.FontFamily)
}

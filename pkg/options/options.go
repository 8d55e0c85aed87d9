// Package options provides the immutable rendering context threaded through
// tree building. Every change of style, size, color or font derives a new
// Options value; the parent's context is never mutated, so sibling subtrees
// cannot observe each other's changes.
package options

import (
	"github.com/yaklabco/gotexmath/pkg/metrics"
	"github.com/yaklabco/gotexmath/pkg/style"
)

// BaseSize is the user size index corresponding to \normalsize.
const BaseSize = 6

// sizeMultipliers maps the 1-based user size index (\tiny .. \HUGE) to a
// multiplier relative to \normalsize.
var sizeMultipliers = [11]float64{
	0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.2, 1.44, 1.728, 2.074, 2.488,
}

// sizeStyleMap gives the effective size index for a user size under a style
// size class: column 0 for display/text, 1 for script, 2 for scriptscript.
var sizeStyleMap = [11][3]int{
	{1, 1, 1},
	{2, 1, 1},
	{3, 1, 1},
	{4, 2, 1},
	{5, 2, 1},
	{6, 3, 1},
	{7, 4, 2},
	{8, 6, 3},
	{9, 7, 6},
	{10, 8, 7},
	{11, 10, 9},
}

func sizeAtStyle(textSize int, st *style.Style) int {
	if st.Size < 2 {
		return textSize
	}
	return sizeStyleMap[textSize-1][st.Size-1]
}

// Options is the immutable rendering context. Derive variants through the
// Having*/With* methods; never mutate fields of a shared Options.
type Options struct {
	// Style is the current math style.
	Style *style.Style

	// Color is the current CSS color, empty for the default.
	Color string

	// Size is the effective 1-based size index after style adjustment.
	Size int

	// TextSize is the size index that text style would use; kept so
	// returning to text style restores the user-selected size.
	TextSize int

	// Phantom suppresses painting while preserving layout.
	Phantom bool

	// FontFamily and the weight/shape pair select the rendering font.
	FontFamily string
	FontWeight string
	FontShape  string

	// SizeMultiplier is the font scaling factor relative to \normalsize.
	SizeMultiplier float64

	// MaxSize caps any computed size in ems.
	MaxSize float64

	// MinRuleThickness is the minimum thickness for fraction bars and
	// radical rules, in ems.
	MinRuleThickness float64
}

// New creates the root Options for a render: text or display style at
// \normalsize.
func New(st *style.Style, maxSize, minRuleThickness float64) *Options {
	return &Options{
		Style:            st,
		Size:             BaseSize,
		TextSize:         BaseSize,
		SizeMultiplier:   sizeMultipliers[BaseSize-1],
		MaxSize:          maxSize,
		MinRuleThickness: minRuleThickness,
	}
}

func (o *Options) clone() *Options {
	c := *o
	return &c
}

// HavingStyle returns an Options identical to this one except rendered in
// the given style. Deriving the current style returns the receiver.
func (o *Options) HavingStyle(st *style.Style) *Options {
	if o.Style == st {
		return o
	}
	c := o.clone()
	c.Style = st
	c.Size = sizeAtStyle(o.TextSize, st)
	c.SizeMultiplier = sizeMultipliers[c.Size-1]
	return c
}

// HavingCrampedStyle returns this Options in the cramped variant of its
// style.
func (o *Options) HavingCrampedStyle() *Options {
	return o.HavingStyle(o.Style.Cramp())
}

// HavingSize returns this Options at the given user size index, keeping the
// style.
func (o *Options) HavingSize(size int) *Options {
	if o.Size == size && o.TextSize == size {
		return o
	}
	c := o.clone()
	c.TextSize = size
	c.Size = sizeAtStyle(size, o.Style)
	c.SizeMultiplier = sizeMultipliers[c.Size-1]
	return c
}

// WithColor returns this Options rendered in the given color.
func (o *Options) WithColor(color string) *Options {
	c := o.clone()
	c.Color = color
	return c
}

// WithPhantom returns this Options with painting suppressed.
func (o *Options) WithPhantom() *Options {
	c := o.clone()
	c.Phantom = true
	return c
}

// WithTextFontFamily returns this Options with the given text font family.
func (o *Options) WithTextFontFamily(family string) *Options {
	c := o.clone()
	c.FontFamily = family
	return c
}

// WithTextFontWeight returns this Options with the given font weight.
func (o *Options) WithTextFontWeight(weight string) *Options {
	c := o.clone()
	c.FontWeight = weight
	return c
}

// WithTextFontShape returns this Options with the given font shape.
func (o *Options) WithTextFontShape(shape string) *Options {
	c := o.clone()
	c.FontShape = shape
	return c
}

// FontMetrics returns the global font metrics for the current style's size
// class.
func (o *Options) FontMetrics() *metrics.FontMetrics {
	return metrics.GlobalMetrics(o.Style.Size)
}

package domtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_Markup(t *testing.T) {
	inner := NewSymbolNode("x", 0.4, 0, 0, 0, 0.5, nil)
	s := NewSpan([]string{"base"}, []Node{inner})
	assert.Equal(t, `<span class="base">x</span>`, s.Markup())
}

func TestSpan_EmptyClassesOmitted(t *testing.T) {
	s := NewSpan(nil, nil)
	assert.Equal(t, "<span></span>", s.Markup())

	s = NewSpan([]string{"", "mord", ""}, nil)
	assert.Equal(t, `<span class="mord"></span>`, s.Markup())
}

func TestSpan_StyleKeysSorted(t *testing.T) {
	s := NewSpan(nil, nil)
	s.SetStyle("vertical-align", "-0.25em")
	s.SetStyle("height", "1em")
	assert.Equal(t, `<span style="height:1em;vertical-align:-0.25em;"></span>`, s.Markup())
}

func TestSpan_AttributesSorted(t *testing.T) {
	s := NewSpan(nil, nil)
	s.SetAttribute("data-x", "1")
	s.SetAttribute("aria-hidden", "true")
	assert.Equal(t, `<span aria-hidden="true" data-x="1"></span>`, s.Markup())
}

func TestSpan_ExtentFromChildren(t *testing.T) {
	a := NewSymbolNode("a", 0.43, 0, 0, 0, 0.5, nil)
	g := NewSymbolNode("g", 0.43, 0.19, 0, 0, 0.5, nil)
	s := NewSpan(nil, []Node{a, g})
	assert.Equal(t, 0.43, s.Height())
	assert.Equal(t, 0.19, s.Depth())
}

func TestSymbolNode_PlainTextWhenUnstyled(t *testing.T) {
	sn := NewSymbolNode("x", 0.4, 0, 0, 0, 0.5, nil)
	assert.Equal(t, "x", sn.Markup())
}

func TestSymbolNode_ItalicCorrection(t *testing.T) {
	sn := NewSymbolNode("f", 0.7, 0.19, 0.1079, 0, 0.5, nil)
	assert.Equal(t, `<span style="margin-right:0.1079em;">f</span>`, sn.Markup())
}

func TestSymbolNode_Escapes(t *testing.T) {
	sn := NewSymbolNode("<", 0.5, 0, 0, 0, 0.7, nil)
	assert.Equal(t, "&lt;", sn.Markup())
}

func TestAnchor_Markup(t *testing.T) {
	child := NewSymbolNode("x", 0.4, 0, 0, 0, 0.5, nil)
	a := NewAnchor("https://example.com", []string{"mord"}, []Node{child})
	assert.Equal(t, `<a class="mord" href="https://example.com">x</a>`, a.Markup())
}

func TestRule_Markup(t *testing.T) {
	r := NewRule(0.5, 0.04, 0)
	assert.Equal(t,
		`<span class="rule" style="border-right-width:0.5em;border-top-width:0.04em;bottom:0em;"></span>`,
		r.Markup())
	assert.Equal(t, 0.04, r.Height())
	assert.Equal(t, 0.0, r.Depth())
}

func TestFragment_SplicesChildren(t *testing.T) {
	f := &Fragment{Children: []Node{
		NewSymbolNode("a", 0.4, 0, 0, 0, 0.5, nil),
		NewSymbolNode("b", 0.7, 0.1, 0, 0, 0.5, nil),
	}}
	assert.Equal(t, "ab", f.Markup())
	assert.Equal(t, 0.7, f.Height())
	assert.Equal(t, 0.1, f.Depth())
}

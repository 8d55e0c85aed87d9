// Package domtree defines the visual output tree: spans, anchors, symbol
// nodes and rules, each serializable to HTML markup. Builders assemble
// these nodes; the tree itself knows nothing about TeX.
package domtree

import (
	"sort"
	"strings"

	"github.com/yaklabco/gotexmath/pkg/units"
)

// Node is one node of the visual tree.
type Node interface {
	// Markup serializes the node and its children to HTML.
	Markup() string

	// Height and Depth report the node's vertical extent in ems.
	Height() float64
	Depth() float64

	writeMarkup(b *strings.Builder)
}

// escape writes s with the five HTML-significant characters replaced.
func escape(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		default:
			b.WriteRune(r)
		}
	}
}

// writeClasses emits a class attribute, skipping empty entries. Nothing is
// written when every class is empty.
func writeClasses(b *strings.Builder, classes []string) {
	joined := JoinClasses(classes)
	if joined == "" {
		return
	}
	b.WriteString(` class="`)
	escape(b, joined)
	b.WriteString(`"`)
}

// JoinClasses joins class names with single spaces, skipping empties.
func JoinClasses(classes []string) string {
	var b strings.Builder
	for _, c := range classes {
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	return b.String()
}

// writeStyle emits a style attribute from the property map in sorted key
// order, so serialization is deterministic.
func writeStyle(b *strings.Builder, style map[string]string) {
	if len(style) == 0 {
		return
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteString(` style="`)
	for _, k := range keys {
		escape(b, k)
		b.WriteByte(':')
		escape(b, style[k])
		b.WriteByte(';')
	}
	b.WriteString(`"`)
}

// Span is a container node rendered as an HTML <span>.
type Span struct {
	Classes    []string
	Children   []Node
	Attributes map[string]string
	Style      map[string]string

	height      float64
	depth       float64
	MaxFontSize float64
}

// NewSpan creates a span over children, taking its vertical extent from
// the tallest and deepest child.
func NewSpan(classes []string, children []Node) *Span {
	s := &Span{Classes: classes, Children: children}
	for _, child := range children {
		if h := child.Height(); h > s.height {
			s.height = h
		}
		if d := child.Depth(); d > s.depth {
			s.depth = d
		}
	}
	return s
}

// HasClass reports whether the span carries the given class.
func (s *Span) HasClass(class string) bool {
	for _, c := range s.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// SetStyle sets one CSS property on the span.
func (s *Span) SetStyle(prop, value string) {
	if s.Style == nil {
		s.Style = map[string]string{}
	}
	s.Style[prop] = value
}

// SetAttribute sets one HTML attribute on the span.
func (s *Span) SetAttribute(name, value string) {
	if s.Attributes == nil {
		s.Attributes = map[string]string{}
	}
	s.Attributes[name] = value
}

func (s *Span) Height() float64 { return s.height }
func (s *Span) Depth() float64  { return s.depth }

// SetExtent overrides the computed vertical extent.
func (s *Span) SetExtent(height, depth float64) {
	s.height = height
	s.depth = depth
}

func (s *Span) writeMarkup(b *strings.Builder) {
	s.writeTag(b, "span")
}

func (s *Span) writeTag(b *strings.Builder, tag string) {
	b.WriteByte('<')
	b.WriteString(tag)
	writeClasses(b, s.Classes)
	if len(s.Attributes) > 0 {
		keys := make([]string, 0, len(s.Attributes))
		for k := range s.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteString(`="`)
			escape(b, s.Attributes[k])
			b.WriteString(`"`)
		}
	}
	writeStyle(b, s.Style)
	b.WriteByte('>')
	for _, child := range s.Children {
		child.writeMarkup(b)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func (s *Span) Markup() string {
	var b strings.Builder
	s.writeMarkup(&b)
	return b.String()
}

// Anchor is a span rendered as an <a> element. The trust policy has
// already been applied by the time an Anchor exists.
type Anchor struct {
	Span
	Href string
}

// NewAnchor creates an anchor wrapping children.
func NewAnchor(href string, classes []string, children []Node) *Anchor {
	a := &Anchor{Span: *NewSpan(classes, children), Href: href}
	a.SetAttribute("href", href)
	return a
}

func (a *Anchor) writeMarkup(b *strings.Builder) {
	a.writeTag(b, "a")
}

func (a *Anchor) Markup() string {
	var b strings.Builder
	a.writeMarkup(&b)
	return b.String()
}

// SymbolNode is a leaf holding one typeset symbol with its font metrics.
type SymbolNode struct {
	Text    string
	Classes []string
	Style   map[string]string

	height float64
	depth  float64
	Italic float64
	Skew   float64
	Width  float64
}

// NewSymbolNode creates a symbol leaf.
func NewSymbolNode(text string, height, depth, italic, skew, width float64, classes []string) *SymbolNode {
	return &SymbolNode{
		Text:    text,
		Classes: classes,
		height:  height,
		depth:   depth,
		Italic:  italic,
		Skew:    skew,
		Width:   width,
	}
}

// SetStyle sets one CSS property on the symbol.
func (sn *SymbolNode) SetStyle(prop, value string) {
	if sn.Style == nil {
		sn.Style = map[string]string{}
	}
	sn.Style[prop] = value
}

func (sn *SymbolNode) Height() float64 { return sn.height }
func (sn *SymbolNode) Depth() float64  { return sn.depth }

func (sn *SymbolNode) writeMarkup(b *strings.Builder) {
	// Italic correction is emitted as margin-right so the glyph does not
	// collide with what follows.
	needsSpan := len(sn.Classes) > 0 || len(sn.Style) > 0 || sn.Italic > 0
	if !needsSpan {
		escape(b, sn.Text)
		return
	}

	b.WriteString("<span")
	writeClasses(b, sn.Classes)
	if sn.Italic > 0 {
		if sn.Style == nil {
			sn.Style = map[string]string{}
		}
		sn.Style["margin-right"] = units.MakeEm(sn.Italic)
	}
	writeStyle(b, sn.Style)
	b.WriteByte('>')
	escape(b, sn.Text)
	b.WriteString("</span>")
}

func (sn *SymbolNode) Markup() string {
	var b strings.Builder
	sn.writeMarkup(&b)
	return b.String()
}

// Rule is a horizontal or vertical filled rule (from \rule).
type Rule struct {
	Classes []string
	Style   map[string]string

	// WidthEm and HeightEm are the rule box dimensions; ShiftEm raises the
	// rule above the baseline.
	WidthEm  float64
	HeightEm float64
	ShiftEm  float64
}

// NewRule creates a rule node with the given box in ems.
func NewRule(width, height, shift float64) *Rule {
	r := &Rule{
		Classes:  []string{"rule"},
		WidthEm:  width,
		HeightEm: height,
		ShiftEm:  shift,
		Style: map[string]string{
			"border-right-width": units.MakeEm(width),
			"border-top-width":   units.MakeEm(height),
			"bottom":             units.MakeEm(shift),
		},
	}
	return r
}

func (r *Rule) Height() float64 { return r.HeightEm + r.ShiftEm }
func (r *Rule) Depth() float64 {
	if r.ShiftEm < 0 {
		return -r.ShiftEm
	}
	return 0
}

func (r *Rule) writeMarkup(b *strings.Builder) {
	b.WriteString("<span")
	writeClasses(b, r.Classes)
	writeStyle(b, r.Style)
	b.WriteString("></span>")
}

func (r *Rule) Markup() string {
	var b strings.Builder
	r.writeMarkup(&b)
	return b.String()
}

// Fragment is a class-less sequence of children with no element of its
// own. Builders use it to splice sibling runs without an extra span.
type Fragment struct {
	Children []Node
}

func (f *Fragment) Height() float64 {
	var h float64
	for _, c := range f.Children {
		if ch := c.Height(); ch > h {
			h = ch
		}
	}
	return h
}

func (f *Fragment) Depth() float64 {
	var d float64
	for _, c := range f.Children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d
}

func (f *Fragment) writeMarkup(b *strings.Builder) {
	for _, c := range f.Children {
		c.writeMarkup(b)
	}
}

func (f *Fragment) Markup() string {
	var b strings.Builder
	f.writeMarkup(&b)
	return b.String()
}

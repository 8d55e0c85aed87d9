// Package mmltree defines the MathML output tree. Nodes keep their
// attributes in insertion order so serialization is stable across runs.
package mmltree

import (
	"strings"

	"github.com/yaklabco/gotexmath/pkg/units"
)

// Node is one node of the MathML tree.
type Node interface {
	// Markup serializes the node and its children to MathML.
	Markup() string

	writeMarkup(b *strings.Builder)
}

type attribute struct {
	name  string
	value string
}

// MathNode is a MathML element such as <mi>, <mo>, <mrow> or <mfrac>.
type MathNode struct {
	// Type is the element name without brackets ("mi", "mrow", ...).
	Type string

	Children []Node
	Classes  []string

	attrs []attribute
}

// NewMathNode creates an element node with the given children.
func NewMathNode(typ string, children ...Node) *MathNode {
	return &MathNode{Type: typ, Children: children}
}

// SetAttribute sets an attribute, replacing any previous value while
// keeping the original position in the serialization order.
func (n *MathNode) SetAttribute(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attribute{name, value})
}

// Attribute returns the attribute's value and whether it is set.
func (n *MathNode) Attribute(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

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

func (n *MathNode) writeMarkup(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Type)
	if len(n.Classes) > 0 {
		b.WriteString(` class="`)
		escape(b, strings.Join(n.Classes, " "))
		b.WriteString(`"`)
	}
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		escape(b, a.value)
		b.WriteString(`"`)
	}
	b.WriteByte('>')
	for _, c := range n.Children {
		c.writeMarkup(b)
	}
	b.WriteString("</")
	b.WriteString(n.Type)
	b.WriteByte('>')
}

// Markup serializes the element and its subtree.
func (n *MathNode) Markup() string {
	var b strings.Builder
	n.writeMarkup(&b)
	return b.String()
}

// TextNode is character data inside an element.
type TextNode struct {
	Text string
}

// NewTextNode creates a text leaf.
func NewTextNode(text string) *TextNode { return &TextNode{Text: text} }

func (t *TextNode) writeMarkup(b *strings.Builder) {
	escape(b, t.Text)
}

func (t *TextNode) Markup() string {
	var b strings.Builder
	t.writeMarkup(&b)
	return b.String()
}

// SpaceNode is horizontal space of a fixed width in ems, rendered as
// <mspace>.
type SpaceNode struct {
	Width float64
}

// NewSpaceNode creates a space of the given width.
func NewSpaceNode(width float64) *SpaceNode { return &SpaceNode{Width: width} }

func (s *SpaceNode) writeMarkup(b *strings.Builder) {
	b.WriteString(`<mspace width="`)
	b.WriteString(units.MakeEm(s.Width))
	b.WriteString(`"></mspace>`)
}

func (s *SpaceNode) Markup() string {
	var b strings.Builder
	s.writeMarkup(&b)
	return b.String()
}

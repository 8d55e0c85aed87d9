// Package htmlbuild walks the parse tree and produces the visual layout
// tree of spans and symbol nodes. Builders are registered per node kind,
// parallel to the MathML side. The layout carries atom classes, font
// metrics and style-derived sizing; it does not reproduce the full
// vertical-list positioning of a complete typesetting engine.
package htmlbuild

import (
	"unicode/utf8"

	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/metrics"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/symbols"
	"github.com/yaklabco/gotexmath/pkg/units"
)

// Builder builds the visual rendition of one parse node.
type Builder func(node mathast.Node, opts *options.Options) (domtree.Node, error)

var builders = map[mathast.NodeKind]Builder{}

// Register binds a builder to a node kind, panicking on double
// registration.
func Register(kind mathast.NodeKind, fn Builder) {
	if _, dup := builders[kind]; dup {
		panic("htmlbuild: builder registered twice for kind " + kind.String())
	}
	builders[kind] = fn
}

// Build dispatches one node to its registered builder.
func Build(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	fn := builders[node.Kind()]
	if fn == nil {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: node.Kind()})
	}
	return fn(node, opts)
}

// BuildExpression builds each node of an expression in order.
func BuildExpression(nodes []mathast.Node, opts *options.Options) ([]domtree.Node, error) {
	built := make([]domtree.Node, 0, len(nodes))
	for _, node := range nodes {
		b, err := Build(node, opts)
		if err != nil {
			return nil, err
		}
		built = append(built, b)
	}
	return built, nil
}

// MakeSpan wraps children in a span, applying the current color and
// phantom state from opts when given.
func MakeSpan(classes []string, children []domtree.Node, opts *options.Options) *domtree.Span {
	s := domtree.NewSpan(classes, children)
	if opts != nil {
		if opts.Color != "" {
			s.SetStyle("color", opts.Color)
		}
		if opts.Phantom {
			s.SetStyle("color", "transparent")
		}
	}
	return s
}

// MakeSymbol builds a symbol node with the glyph's font metrics. Command
// names are resolved to their replacement character first.
func MakeSymbol(text string, fontFamily string, mode mathast.Mode, opts *options.Options, classes []string) *domtree.SymbolNode {
	value := text
	if sym, ok := symbols.Get(mode, text); ok && sym.Replace != "" {
		value = sym.Replace
	}
	r, _ := utf8.DecodeRuneInString(value)
	m, _ := metrics.CharacterMetricsFor(r, fontFamily)
	sn := domtree.NewSymbolNode(value, m.Height, m.Depth, m.Italic, m.Skew, m.Width, classes)
	if opts != nil {
		if opts.Color != "" {
			sn.SetStyle("color", opts.Color)
		}
		if opts.Phantom {
			sn.SetStyle("color", "transparent")
		}
	}
	return sn
}

// BuildHTMLNode builds the aria-hidden visual subtree without the outer
// root span, for callers that compose it with the MathML tree themselves.
func BuildHTMLNode(tree []mathast.Node, opts *options.Options) (*domtree.Span, error) {
	expression, err := BuildExpression(tree, opts)
	if err != nil {
		return nil, err
	}
	base := MakeSpan([]string{"base"}, expression, nil)

	// The strut forces the line box to the expression's full extent.
	strut := MakeSpan([]string{"strut"}, nil, nil)
	strut.SetStyle("height", units.MakeEm(base.Height()+base.Depth()))
	if base.Depth() > 0 {
		strut.SetStyle("vertical-align", units.MakeEm(-base.Depth()))
	}

	htmlNode := MakeSpan([]string{"katex-html"}, []domtree.Node{strut, base}, nil)
	htmlNode.SetAttribute("aria-hidden", "true")
	return htmlNode, nil
}

// BuildTree builds the complete visual tree for a parse tree.
func BuildTree(tree []mathast.Node, opts *options.Options, displayMode bool) (*domtree.Span, error) {
	htmlNode, err := BuildHTMLNode(tree, opts)
	if err != nil {
		return nil, err
	}
	root := MakeSpan([]string{"katex"}, []domtree.Node{htmlNode}, nil)
	if displayMode {
		root = MakeSpan([]string{"katex-display"}, []domtree.Node{root}, nil)
	}
	return root, nil
}

// Package mathmlbuild walks the parse tree and produces the MathML
// accessibility tree. Builders are registered per node kind; the functions
// package registers the builders for the kinds its handlers produce, and
// this package registers the core kinds the parser produces itself.
package mathmlbuild

import (
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/symbols"
)

// Builder builds the MathML rendition of one parse node.
type Builder func(node mathast.Node, opts *options.Options) (mmltree.Node, error)

var builders = map[mathast.NodeKind]Builder{}

// Register binds a builder to a node kind. Double registration is a
// programming error and panics at startup.
func Register(kind mathast.NodeKind, fn Builder) {
	if _, dup := builders[kind]; dup {
		panic("mathmlbuild: builder registered twice for kind " + kind.String())
	}
	builders[kind] = fn
}

// Build dispatches one node to its registered builder.
func Build(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	fn := builders[node.Kind()]
	if fn == nil {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: node.Kind()})
	}
	return fn(node, opts)
}

// MakeText resolves a symbol name to its output character: command names
// with a replacement in the symbol table become that character.
func MakeText(text string, mode mathast.Mode) string {
	if sym, ok := symbols.Get(mode, text); ok && sym.Replace != "" {
		return sym.Replace
	}
	return text
}

// BuildExpression builds a node list, concatenating adjacent numeric and
// text runs: consecutive <mn> nodes merge into one (so 0.34 is a single
// number), as do consecutive attribute-less <mtext> nodes.
func BuildExpression(nodes []mathast.Node, opts *options.Options) ([]mmltree.Node, error) {
	var groups []mmltree.Node
	var lastGroup *mmltree.MathNode
	for _, node := range nodes {
		built, err := Build(node, opts)
		if err != nil {
			return nil, err
		}
		group, ok := built.(*mmltree.MathNode)
		if ok && lastGroup != nil {
			switch {
			case group.Type == "mn" && lastGroup.Type == "mn":
				lastGroup.Children = append(lastGroup.Children, group.Children...)
				continue
			case group.Type == "mtext" && lastGroup.Type == "mtext" &&
				len(group.Classes) == 0 && len(lastGroup.Classes) == 0:
				lastGroup.Children = append(lastGroup.Children, group.Children...)
				continue
			}
		}
		groups = append(groups, built)
		if ok {
			lastGroup = group
		} else {
			lastGroup = nil
		}
	}
	return groups, nil
}

// BuildExpressionRow builds a node list and wraps it in <mrow> unless it is
// a single node already.
func BuildExpressionRow(nodes []mathast.Node, opts *options.Options) (mmltree.Node, error) {
	expression, err := BuildExpression(nodes, opts)
	if err != nil {
		return nil, err
	}
	if len(expression) == 1 {
		return expression[0], nil
	}
	return mmltree.NewMathNode("mrow", expression...), nil
}

// BuildTree builds the complete <math> element for a parse tree, embedding
// the TeX source as an annotation.
func BuildTree(tree []mathast.Node, texSource string, opts *options.Options, displayMode bool) (*mmltree.MathNode, error) {
	expression, err := BuildExpression(tree, opts)
	if err != nil {
		return nil, err
	}

	var wrapper mmltree.Node
	if len(expression) == 1 {
		if mn, ok := expression[0].(*mmltree.MathNode); ok && (mn.Type == "mrow" || mn.Type == "mtable") {
			wrapper = mn
		}
	}
	if wrapper == nil {
		wrapper = mmltree.NewMathNode("mrow", expression...)
	}

	annotation := mmltree.NewMathNode("annotation", mmltree.NewTextNode(texSource))
	annotation.SetAttribute("encoding", "application/x-tex")

	semantics := mmltree.NewMathNode("semantics", wrapper, annotation)
	math := mmltree.NewMathNode("math", semantics)
	math.SetAttribute("xmlns", "http://www.w3.org/1998/Math/MathML")
	if displayMode {
		math.SetAttribute("display", "block")
	}
	return math, nil
}

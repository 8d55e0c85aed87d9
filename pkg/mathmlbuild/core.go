package mathmlbuild

import (
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/style"
)

// Builders for the node kinds the parser produces without going through a
// registered function: symbols, groups, scripts and spacing.
func init() {
	Register(mathast.KindAtom, buildAtom)
	Register(mathast.KindMathOrd, buildMathOrd)
	Register(mathast.KindTextOrd, buildTextOrd)
	Register(mathast.KindOrdGroup, buildOrdGroup)
	Register(mathast.KindSupSub, buildSupSub)
	Register(mathast.KindSpacing, buildSpacing)
}

func buildAtom(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Atom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindAtom})
	}
	mo := mmltree.NewMathNode("mo", mmltree.NewTextNode(MakeText(n.Text, n.Mode)))
	switch n.Family {
	case mathast.AtomPunct:
		mo.SetAttribute("separator", "true")
	case mathast.AtomOpen, mathast.AtomClose:
		mo.SetAttribute("stretchy", "false")
	}
	return mo, nil
}

func buildMathOrd(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.MathOrd)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindMathOrd})
	}
	return mmltree.NewMathNode("mi", mmltree.NewTextNode(MakeText(n.Text, n.Mode))), nil
}

func buildTextOrd(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.TextOrd)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindTextOrd})
	}
	text := mmltree.NewTextNode(MakeText(n.Text, n.Mode))

	if n.Mode == mathast.ModeText {
		return mmltree.NewMathNode("mtext", text), nil
	}
	if len(n.Text) == 1 && (n.Text[0] >= '0' && n.Text[0] <= '9' || n.Text[0] == '.') {
		return mmltree.NewMathNode("mn", text), nil
	}
	if n.Text == "\\prime" {
		return mmltree.NewMathNode("mo", text), nil
	}
	mi := mmltree.NewMathNode("mi", text)
	mi.SetAttribute("mathvariant", "normal")
	return mi, nil
}

func buildOrdGroup(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.OrdGroup)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindOrdGroup})
	}
	return BuildExpressionRow(n.Body, opts)
}

// buildSupSub picks the script element: msub/msup/msubsup for inline
// scripts, munder/mover/munderover when the base is a limits operator in
// display style.
func buildSupSub(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.SupSub)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSupSub})
	}

	isLimits := false
	if op, isOp := mathast.BaseElem(n.Base).(*mathast.Op); isOp && op.Limits {
		if opts.Style.Size == style.Display.Size || op.AlwaysHandleSupSub {
			isLimits = true
		}
	}

	var base mmltree.Node
	if n.Base != nil {
		var err error
		base, err = Build(n.Base, opts)
		if err != nil {
			return nil, err
		}
	} else {
		base = mmltree.NewMathNode("mrow")
	}

	children := []mmltree.Node{base}
	var typ string
	switch {
	case n.Sub != nil && n.Sup != nil:
		typ = "msubsup"
		if isLimits {
			typ = "munderover"
		}
	case n.Sub != nil:
		typ = "msub"
		if isLimits {
			typ = "munder"
		}
	default:
		typ = "msup"
		if isLimits {
			typ = "mover"
		}
	}
	if n.Sub != nil {
		sub, err := Build(n.Sub, opts)
		if err != nil {
			return nil, err
		}
		children = append(children, sub)
	}
	if n.Sup != nil {
		sup, err := Build(n.Sup, opts)
		if err != nil {
			return nil, err
		}
		children = append(children, sup)
	}
	return mmltree.NewMathNode(typ, children...), nil
}

// Widths of the fixed glue commands, in ems (multiples of 1/18 quad).
var spacingWidths = map[string]float64{
	"\\,":       3.0 / 18.0,
	"\\:":       4.0 / 18.0,
	"\\;":       5.0 / 18.0,
	"\\!":       -3.0 / 18.0,
	"\\enspace": 0.5,
}

func buildSpacing(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Spacing)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSpacing})
	}
	if width, fixed := spacingWidths[n.Text]; fixed {
		return mmltree.NewSpaceNode(width), nil
	}
	// Non-breaking word space (~, control space, text-mode space).
	return mmltree.NewMathNode("mtext", mmltree.NewTextNode(" ")), nil
}

package htmlbuild

import (
	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/units"
)

func init() {
	Register(mathast.KindAtom, buildAtom)
	Register(mathast.KindMathOrd, buildMathOrd)
	Register(mathast.KindTextOrd, buildTextOrd)
	Register(mathast.KindOrdGroup, buildOrdGroup)
	Register(mathast.KindSupSub, buildSupSub)
	Register(mathast.KindSpacing, buildSpacing)
}

func buildAtom(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Atom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindAtom})
	}
	return MakeSymbol(n.Text, "Main-Regular", n.Mode, opts, []string{n.Family.DomClass()}), nil
}

func buildMathOrd(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.MathOrd)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindMathOrd})
	}
	return MakeSymbol(n.Text, "Math-Italic", n.Mode, opts, []string{"mord", "mathnormal"}), nil
}

func buildTextOrd(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.TextOrd)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindTextOrd})
	}
	classes := []string{"mord"}
	font := "Main-Regular"
	if n.Mode == mathast.ModeText {
		switch opts.FontWeight {
		case "textbf":
			classes = append(classes, "textbf")
		}
		switch opts.FontShape {
		case "textit":
			classes = append(classes, "textit")
			font = "Main-Italic"
		}
		if opts.FontFamily != "" {
			classes = append(classes, opts.FontFamily)
		}
	}
	return MakeSymbol(n.Text, font, n.Mode, opts, classes), nil
}

func buildOrdGroup(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.OrdGroup)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindOrdGroup})
	}
	children, err := BuildExpression(n.Body, opts)
	if err != nil {
		return nil, err
	}
	return MakeSpan([]string{"mord"}, children, opts), nil
}

// scriptSpan builds one script under its derived options, scaled relative
// to the surrounding size.
func scriptSpan(class string, script mathast.Node, scriptOpts, opts *options.Options) (domtree.Node, error) {
	built, err := Build(script, scriptOpts)
	if err != nil {
		return nil, err
	}
	s := MakeSpan([]string{class}, []domtree.Node{built}, nil)
	s.SetStyle("font-size", units.MakeEm(scriptOpts.SizeMultiplier/opts.SizeMultiplier))
	return s, nil
}

func buildSupSub(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.SupSub)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSupSub})
	}

	var children []domtree.Node
	if n.Base != nil {
		base, err := Build(n.Base, opts)
		if err != nil {
			return nil, err
		}
		children = append(children, base)
	}

	var scripts []domtree.Node
	if n.Sup != nil {
		supOpts := opts.HavingStyle(opts.Style.Sup())
		s, err := scriptSpan("msup", n.Sup, supOpts, opts)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	if n.Sub != nil {
		subOpts := opts.HavingStyle(opts.Style.Sub())
		s, err := scriptSpan("msub", n.Sub, subOpts, opts)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	children = append(children, MakeSpan([]string{"msupsub"}, scripts, nil))
	return MakeSpan([]string{"mord"}, children, nil), nil
}

func buildSpacing(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Spacing)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSpacing})
	}
	if width, fixed := spacingWidths[n.Text]; fixed {
		s := MakeSpan([]string{"mspace"}, nil, opts)
		s.SetStyle("margin-right", units.MakeEm(width))
		return s, nil
	}
	sn := MakeSymbol(" ", "Main-Regular", n.Mode, opts, []string{"mspace"})
	return sn, nil
}

// spacingWidths mirrors the glue command widths used by the MathML side.
var spacingWidths = map[string]float64{
	"\\,":       3.0 / 18.0,
	"\\:":       4.0 / 18.0,
	"\\;":       5.0 / 18.0,
	"\\!":       -3.0 / 18.0,
	"\\enspace": 0.5,
}

package functions

import (
	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/units"
)

// sizeCommands in ascending order; the 1-based index is the size.
var sizeCommands = []string{
	"\\tiny", "\\sixptsize", "\\scriptsize", "\\footnotesize", "\\small",
	"\\normalsize", "\\large", "\\Large", "\\LARGE", "\\huge", "\\Huge",
}

func init() {
	for i, name := range sizeCommands {
		size := i + 1
		parser.DefaultFunctions.Register(&parser.FuncSpec{
			AllowedInText: true,
			Handler:       handleSizing(size),
		}, name)
	}

	htmlbuild.Register(mathast.KindSizing, buildSizingHTML)
	mathmlbuild.Register(mathast.KindSizing, buildSizingMathML)
}

// handleSizing scoops up the rest of the group, like \color.
func handleSizing(size int) parser.Handler {
	return func(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
		body, err := ctx.Parser.ParseExpression(false, ctx.BreakOnTokenText)
		if err != nil {
			return nil, err
		}
		return &mathast.Sizing{
			Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
			Size: size,
			Body: body,
		}, nil
	}
}

func buildSizingMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Sizing)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSizing})
	}
	newOpts := opts.HavingSize(n.Size)
	inner, err := mathmlbuild.BuildExpression(n.Body, newOpts)
	if err != nil {
		return nil, err
	}
	style := mmltree.NewMathNode("mstyle", inner...)
	style.SetAttribute("mathsize", units.MakeEm(newOpts.SizeMultiplier))
	return style, nil
}

func buildSizingHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Sizing)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSizing})
	}
	newOpts := opts.HavingSize(n.Size)
	children, err := htmlbuild.BuildExpression(n.Body, newOpts)
	if err != nil {
		return nil, err
	}
	s := htmlbuild.MakeSpan([]string{"sizing"}, children, nil)
	s.SetStyle("font-size", units.MakeEm(newOpts.SizeMultiplier/opts.SizeMultiplier))
	return s, nil
}

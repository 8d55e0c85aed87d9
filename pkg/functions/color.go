package functions

import (
	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/parser"
)

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:       2,
		ArgTypes:      []parser.ArgType{parser.ArgColor, parser.ArgOriginal},
		AllowedInText: true,
		Handler:       handleTextcolor,
	}, "\\textcolor")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:       1,
		ArgTypes:      []parser.ArgType{parser.ArgColor},
		AllowedInText: true,
		Handler:       handleColor,
	}, "\\color")

	htmlbuild.Register(mathast.KindColor, buildColorHTML)
	mathmlbuild.Register(mathast.KindColor, buildColorMathML)
}

func handleTextcolor(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	color := args[0].(*mathast.ColorToken).Color
	return &mathast.Color{
		Info:  mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Color: color,
		Body:  ordArgument(args[1]),
	}, nil
}

// handleColor scoops up the rest of the enclosing group, so the color
// applies from the declaration to the end of the group.
func handleColor(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	color := args[0].(*mathast.ColorToken).Color
	body, err := ctx.Parser.ParseExpression(true, ctx.BreakOnTokenText)
	if err != nil {
		return nil, err
	}
	return &mathast.Color{
		Info:  mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Color: color,
		Body:  body,
	}, nil
}

func buildColorMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Color)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindColor})
	}
	inner, err := mathmlbuild.BuildExpression(n.Body, opts.WithColor(n.Color))
	if err != nil {
		return nil, err
	}
	style := mmltree.NewMathNode("mstyle", inner...)
	style.SetAttribute("mathcolor", n.Color)
	return style, nil
}

func buildColorHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Color)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindColor})
	}
	children, err := htmlbuild.BuildExpression(n.Body, opts.WithColor(n.Color))
	if err != nil {
		return nil, err
	}
	return &domtree.Fragment{Children: children}, nil
}

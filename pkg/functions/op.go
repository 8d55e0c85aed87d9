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
	// Named functions typeset upright without limits.
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		Handler: handleNamedOp(false),
	}, "\\arcsin", "\\arccos", "\\arctan", "\\arg", "\\cos", "\\cosh",
		"\\cot", "\\coth", "\\csc", "\\deg", "\\dim", "\\exp", "\\hom",
		"\\ker", "\\lg", "\\ln", "\\log", "\\sec", "\\sin", "\\sinh",
		"\\tan", "\\tanh")

	// These take limits above and below in display style.
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		Handler: handleNamedOp(true),
	}, "\\det", "\\gcd", "\\inf", "\\lim", "\\liminf", "\\limsup",
		"\\max", "\\min", "\\Pr", "\\sup")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleMathop,
	}, "\\mathop")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleOperatorname,
	}, "\\operatorname")

	htmlbuild.Register(mathast.KindOp, buildOpHTML)
	mathmlbuild.Register(mathast.KindOp, buildOpMathML)
}

func handleNamedOp(limits bool) parser.Handler {
	return func(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
		return &mathast.Op{
			Info:   mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
			Limits: limits,
			Name:   ctx.FuncName,
		}, nil
	}
}

func handleMathop(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	return &mathast.Op{
		Info:   mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Limits: true,
		Body:   ordArgument(args[0]),
	}, nil
}

func handleOperatorname(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	return &mathast.Op{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body: ordArgument(args[0]),
	}, nil
}

func buildOpMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Op)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindOp})
	}

	switch {
	case n.SymbolText != "":
		mo := mmltree.NewMathNode("mo",
			mmltree.NewTextNode(mathmlbuild.MakeText(n.SymbolText, n.Mode)))
		mo.SetAttribute("largeop", "true")
		return mo, nil

	case n.Name != "":
		mi := mmltree.NewMathNode("mi", mmltree.NewTextNode(n.Name[1:]))
		if n.ParentIsSupSub {
			return mi, nil
		}
		// U+2061 function application, so screen readers pronounce
		// "sine of x" rather than "sine x".
		apply := mmltree.NewMathNode("mo", mmltree.NewTextNode("\u2061"))
		return mmltree.NewMathNode("mrow", mi, apply), nil

	default:
		inner, err := mathmlbuild.BuildExpression(n.Body, opts)
		if err != nil {
			return nil, err
		}
		return mmltree.NewMathNode("mo", inner...), nil
	}
}

func buildOpHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Op)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindOp})
	}

	switch {
	case n.SymbolText != "":
		sym := htmlbuild.MakeSymbol(n.SymbolText, "Main-Regular", n.Mode, opts, []string{"op-symbol"})
		return htmlbuild.MakeSpan([]string{"mop"}, []domtree.Node{sym}, opts), nil

	case n.Name != "":
		var children []domtree.Node
		for _, r := range n.Name[1:] {
			children = append(children,
				htmlbuild.MakeSymbol(string(r), "Main-Regular", n.Mode, opts, nil))
		}
		return htmlbuild.MakeSpan([]string{"mop"}, children, opts), nil

	default:
		inner, err := htmlbuild.BuildExpression(n.Body, opts)
		if err != nil {
			return nil, err
		}
		return htmlbuild.MakeSpan([]string{"mop"}, inner, opts), nil
	}
}

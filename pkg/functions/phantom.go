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
		NumArgs:       1,
		AllowedInText: true,
		Handler:       handlePhantom,
	}, "\\phantom")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleHPhantom,
	}, "\\hphantom")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleVPhantom,
	}, "\\vphantom")

	htmlbuild.Register(mathast.KindPhantom, buildPhantomHTML)
	mathmlbuild.Register(mathast.KindPhantom, buildPhantomMathML)
	htmlbuild.Register(mathast.KindHPhantom, buildHPhantomHTML)
	mathmlbuild.Register(mathast.KindHPhantom, buildHPhantomMathML)
	htmlbuild.Register(mathast.KindVPhantom, buildVPhantomHTML)
	mathmlbuild.Register(mathast.KindVPhantom, buildVPhantomMathML)
}

func handlePhantom(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	return &mathast.Phantom{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body: ordArgument(args[0]),
	}, nil
}

func handleHPhantom(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	return &mathast.HPhantom{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body: args[0],
	}, nil
}

func handleVPhantom(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	return &mathast.VPhantom{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body: args[0],
	}, nil
}

func buildPhantomMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Phantom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindPhantom})
	}
	inner, err := mathmlbuild.BuildExpression(n.Body, opts)
	if err != nil {
		return nil, err
	}
	return mmltree.NewMathNode("mphantom", inner...), nil
}

func buildHPhantomMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.HPhantom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindHPhantom})
	}
	inner, err := mathmlbuild.Build(n.Body, opts)
	if err != nil {
		return nil, err
	}
	phantom := mmltree.NewMathNode("mphantom", inner)
	padded := mmltree.NewMathNode("mpadded", phantom)
	padded.SetAttribute("height", "0px")
	padded.SetAttribute("depth", "0px")
	return padded, nil
}

func buildVPhantomMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.VPhantom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindVPhantom})
	}
	inner, err := mathmlbuild.Build(n.Body, opts)
	if err != nil {
		return nil, err
	}
	phantom := mmltree.NewMathNode("mphantom", inner)
	padded := mmltree.NewMathNode("mpadded", phantom)
	padded.SetAttribute("width", "0px")
	return padded, nil
}

func buildPhantomHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Phantom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindPhantom})
	}
	children, err := htmlbuild.BuildExpression(n.Body, opts.WithPhantom())
	if err != nil {
		return nil, err
	}
	return htmlbuild.MakeSpan([]string{"mord"}, children, nil), nil
}

func buildHPhantomHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.HPhantom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindHPhantom})
	}
	built, err := htmlbuild.Build(n.Body, opts.WithPhantom())
	if err != nil {
		return nil, err
	}
	s := htmlbuild.MakeSpan([]string{"mord"}, []domtree.Node{built}, nil)
	s.SetExtent(0, 0)
	return s, nil
}

func buildVPhantomHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.VPhantom)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindVPhantom})
	}
	built, err := htmlbuild.Build(n.Body, opts.WithPhantom())
	if err != nil {
		return nil, err
	}
	s := htmlbuild.MakeSpan([]string{"mord", "rlap"}, []domtree.Node{built}, nil)
	s.SetStyle("width", "0px")
	return s, nil
}

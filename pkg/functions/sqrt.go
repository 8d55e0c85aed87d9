package functions

import (
	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/style"
)

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:         1,
		NumOptionalArgs: 1,
		Handler:         handleSqrt,
	}, "\\sqrt")

	htmlbuild.Register(mathast.KindSqrt, buildSqrtHTML)
	mathmlbuild.Register(mathast.KindSqrt, buildSqrtMathML)
}

func handleSqrt(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	var index mathast.Node
	if len(optArgs) > 0 {
		index = optArgs[0]
	}
	return &mathast.Sqrt{
		Info:  mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body:  args[0],
		Index: index,
	}, nil
}

func buildSqrtMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Sqrt)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSqrt})
	}
	body, err := mathmlbuild.Build(n.Body, opts)
	if err != nil {
		return nil, err
	}
	if n.Index == nil {
		return mmltree.NewMathNode("msqrt", body), nil
	}
	index, err := mathmlbuild.Build(n.Index, opts.HavingStyle(style.ScriptScript))
	if err != nil {
		return nil, err
	}
	return mmltree.NewMathNode("mroot", body, index), nil
}

func buildSqrtHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Sqrt)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindSqrt})
	}

	// The radicand renders cramped so its own superscripts stay low.
	body, err := htmlbuild.Build(n.Body, opts.HavingCrampedStyle())
	if err != nil {
		return nil, err
	}

	surd := htmlbuild.MakeSymbol("\\surd", "Main-Regular", n.Mode, opts, []string{"sqrt-sign"})
	children := []domtree.Node{surd,
		htmlbuild.MakeSpan([]string{"sqrt-body"}, []domtree.Node{body}, nil)}

	if n.Index != nil {
		index, err := htmlbuild.Build(n.Index, opts.HavingStyle(style.ScriptScript))
		if err != nil {
			return nil, err
		}
		root := htmlbuild.MakeSpan([]string{"root"}, []domtree.Node{index}, nil)
		children = append([]domtree.Node{root}, children...)
	}
	return htmlbuild.MakeSpan([]string{"mord", "sqrt"}, children, opts), nil
}

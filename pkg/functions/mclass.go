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
		NumArgs:           1,
		AllowedInArgument: true,
		Handler:           handleMclass,
	}, "\\mathord", "\\mathbin", "\\mathrel", "\\mathopen",
		"\\mathclose", "\\mathpunct", "\\mathinner")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 2,
		Handler: handleOverUnderSet,
	}, "\\overset", "\\underset", "\\stackrel")

	htmlbuild.Register(mathast.KindMclass, buildMclassHTML)
	mathmlbuild.Register(mathast.KindMclass, buildMclassMathML)
}

func handleMclass(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	body := ordArgument(args[0])
	return &mathast.Mclass{
		Info:           mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		MClass:         "m" + ctx.FuncName[5:],
		Body:           body,
		IsCharacterBox: mathast.IsCharacterBox(args[0]),
	}, nil
}

// binrelClass infers the spacing class a replacement construct should carry
// from its base: binary operators and relations keep their class, anything
// else spaces as an ordinary atom. A group is judged by its first element.
func binrelClass(arg mathast.Node) string {
	base := arg
	if g, ok := arg.(*mathast.OrdGroup); ok && len(g.Body) > 0 {
		base = g.Body[0]
	}
	if atom, ok := base.(*mathast.Atom); ok {
		switch atom.Family {
		case mathast.AtomBin:
			return "mbin"
		case mathast.AtomRel:
			return "mrel"
		}
	}
	return "mord"
}

func handleOverUnderSet(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	shifted, baseArg := args[0], args[1]

	mclass := "mrel"
	if ctx.FuncName != "\\stackrel" {
		mclass = binrelClass(baseArg)
	}

	mode := ctx.Parser.Mode()
	baseOp := &mathast.Op{
		Info:               mathast.Info{Mode: mode},
		Limits:             true,
		AlwaysHandleSupSub: true,
		SuppressBaseShift:  ctx.FuncName != "\\stackrel",
		Body:               ordArgument(baseArg),
	}

	supsub := &mathast.SupSub{
		Info: mathast.Info{Mode: mode, Loc: ctx.Token.Loc},
		Base: baseOp,
	}
	if ctx.FuncName == "\\underset" {
		supsub.Sub = shifted
	} else {
		supsub.Sup = shifted
	}

	return &mathast.Mclass{
		Info:           mathast.Info{Mode: mode, Loc: ctx.Token.Loc},
		MClass:         mclass,
		Body:           []mathast.Node{supsub},
		IsCharacterBox: mathast.IsCharacterBox(supsub),
	}, nil
}

func buildMclassHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Mclass)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindMclass})
	}
	children, err := htmlbuild.BuildExpression(n.Body, opts)
	if err != nil {
		return nil, err
	}
	return htmlbuild.MakeSpan([]string{n.MClass}, children, opts), nil
}

func buildMclassMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Mclass)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindMclass})
	}
	inner, err := mathmlbuild.BuildExpression(n.Body, opts)
	if err != nil {
		return nil, err
	}

	if n.MClass == "minner" {
		padded := mmltree.NewMathNode("mpadded", inner...)
		padded.SetAttribute("lspace", "0.0556em")
		padded.SetAttribute("width", "+0.1111em")
		return padded, nil
	}

	// A character box keeps its own element, retyped; anything larger is
	// wrapped.
	retypeOrWrap := func(typ string) *mmltree.MathNode {
		if n.IsCharacterBox && len(inner) == 1 {
			if mn, ok := inner[0].(*mmltree.MathNode); ok {
				mn.Type = typ
				return mn
			}
		}
		return mmltree.NewMathNode(typ, inner...)
	}

	if n.MClass == "mord" {
		return retypeOrWrap("mi"), nil
	}

	mo := retypeOrWrap("mo")
	switch n.MClass {
	case "mbin":
		mo.SetAttribute("lspace", "0.22em")
		mo.SetAttribute("rspace", "0.22em")
	case "mpunct":
		mo.SetAttribute("lspace", "0em")
		mo.SetAttribute("rspace", "0.17em")
	case "mopen", "mclose":
		mo.SetAttribute("lspace", "0em")
		mo.SetAttribute("rspace", "0em")
	}
	return mo, nil
}

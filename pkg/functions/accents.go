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

// stretchyAccents cover their whole base; all others sit over its center.
// The accent characters stretch in MathML renderers.
var stretchyAccents = map[string]string{
	"\\widehat":   "^",
	"\\widetilde": "~",
}

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleMathAccent,
	}, "\\acute", "\\grave", "\\ddot", "\\tilde", "\\bar", "\\breve",
		"\\check", "\\hat", "\\vec", "\\dot", "\\mathring",
		"\\widehat", "\\widetilde")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:       1,
		AllowedInText: true,
		ArgTypes:      []parser.ArgType{parser.ArgOriginal},
		Handler:       handleTextAccent,
	}, "\\'", "\\`", "\\^", "\\~", "\\=", "\\u", "\\.", "\\\"", "\\r", "\\v")

	htmlbuild.Register(mathast.KindAccent, buildAccentHTML)
	mathmlbuild.Register(mathast.KindAccent, buildAccentMathML)
}

func handleMathAccent(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	base := normalizeArgument(args[0])
	_, stretchy := stretchyAccents[ctx.FuncName]
	return &mathast.Accent{
		Info:       mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Label:      ctx.FuncName,
		IsStretchy: stretchy,
		IsShifty:   !stretchy,
		Base:       base,
	}, nil
}

func handleTextAccent(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	p := ctx.Parser
	if p.Mode() == mathast.ModeMath {
		err := p.Settings().ReportNonstrict("mathVsTextAccents",
			"LaTeX's accent "+ctx.FuncName+" works only in text mode", ctx.Token)
		if err != nil {
			return nil, err
		}
	}
	return &mathast.Accent{
		Info:     mathast.Info{Mode: mathast.ModeText, Loc: ctx.Token.Loc},
		Label:    ctx.FuncName,
		IsShifty: true,
		Base:     args[0],
	}, nil
}

func accentChar(n *mathast.Accent) string {
	if ch, ok := stretchyAccents[n.Label]; ok {
		return ch
	}
	return mathmlbuild.MakeText(n.Label, n.Mode)
}

func buildAccentMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Accent)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindAccent})
	}
	base, err := mathmlbuild.Build(n.Base, opts)
	if err != nil {
		return nil, err
	}
	accent := mmltree.NewMathNode("mo", mmltree.NewTextNode(accentChar(n)))
	if n.IsStretchy {
		accent.SetAttribute("stretchy", "true")
	}
	over := mmltree.NewMathNode("mover", base, accent)
	over.SetAttribute("accent", "true")
	return over, nil
}

func buildAccentHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Accent)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindAccent})
	}
	base, err := htmlbuild.Build(n.Base, opts.HavingCrampedStyle())
	if err != nil {
		return nil, err
	}
	accent := htmlbuild.MakeSymbol(accentChar(n), "Main-Regular", n.Mode, opts, []string{"accent-body"})
	return htmlbuild.MakeSpan([]string{"mord", "accent"},
		[]domtree.Node{base, accent}, opts), nil
}

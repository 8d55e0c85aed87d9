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

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:       1,
		ArgTypes:      []parser.ArgType{parser.ArgSize},
		AllowedInText: true,
		Handler:       handleKern,
	}, "\\kern", "\\mkern", "\\hskip", "\\mskip")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:         2,
		NumOptionalArgs: 1,
		ArgTypes:        []parser.ArgType{parser.ArgSize, parser.ArgSize, parser.ArgSize},
		AllowedInText:   true,
		Handler:         handleRule,
	}, "\\rule")

	htmlbuild.Register(mathast.KindKern, buildKernHTML)
	mathmlbuild.Register(mathast.KindKern, buildKernMathML)
	htmlbuild.Register(mathast.KindRule, buildRuleHTML)
	mathmlbuild.Register(mathast.KindRule, buildRuleMathML)
}

func handleKern(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	size := args[0].(*mathast.Size)
	p := ctx.Parser

	// The m-variants take math units, the others physical units; using the
	// wrong family is a LaTeX error that strict mode surfaces.
	mathFamily := ctx.FuncName == "\\mkern" || ctx.FuncName == "\\mskip"
	muUnit := size.Value.Unit == "mu"
	if mathFamily && !muUnit {
		err := p.Settings().ReportNonstrict("mathVsTextUnits",
			"LaTeX's "+ctx.FuncName+" supports only mu units, not "+size.Value.Unit+" units", ctx.Token)
		if err != nil {
			return nil, err
		}
	}
	if !mathFamily && muUnit {
		err := p.Settings().ReportNonstrict("mathVsTextUnits",
			"LaTeX's "+ctx.FuncName+" does not support mu units", ctx.Token)
		if err != nil {
			return nil, err
		}
	}

	return &mathast.Kern{
		Info:      mathast.Info{Mode: p.Mode(), Loc: ctx.Token.Loc},
		Dimension: size.Value,
	}, nil
}

func handleRule(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	var shift *mathast.Measurement
	if len(optArgs) > 0 {
		if sz, ok := optArgs[0].(*mathast.Size); ok && !sz.IsBlank {
			v := sz.Value
			shift = &v
		}
	}
	return &mathast.Rule{
		Info:   mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Shift:  shift,
		Width:  args[0].(*mathast.Size).Value,
		Height: args[1].(*mathast.Size).Value,
	}, nil
}

func buildKernMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Kern)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindKern})
	}
	width, err := units.CalculateSize(n.Dimension, opts)
	if err != nil {
		return nil, err
	}
	return mmltree.NewSpaceNode(width), nil
}

func buildKernHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Kern)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindKern})
	}
	width, err := units.CalculateSize(n.Dimension, opts)
	if err != nil {
		return nil, err
	}
	s := htmlbuild.MakeSpan([]string{"mspace"}, nil, opts)
	s.SetStyle("margin-right", units.MakeEm(width))
	return s, nil
}

func buildRuleMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Rule)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindRule})
	}
	width, err := units.CalculateSize(n.Width, opts)
	if err != nil {
		return nil, err
	}
	height, err := units.CalculateSize(n.Height, opts)
	if err != nil {
		return nil, err
	}
	var shift float64
	if n.Shift != nil {
		shift, err = units.CalculateSize(*n.Shift, opts)
		if err != nil {
			return nil, err
		}
	}

	rule := mmltree.NewMathNode("mspace")
	if width > 0 && height > 0 {
		rule.SetAttribute("mathbackground", "black")
	}
	rule.SetAttribute("width", units.MakeEm(width))
	rule.SetAttribute("height", units.MakeEm(height+shift))
	return rule, nil
}

func buildRuleHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Rule)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindRule})
	}
	width, err := units.CalculateSize(n.Width, opts)
	if err != nil {
		return nil, err
	}
	height, err := units.CalculateSize(n.Height, opts)
	if err != nil {
		return nil, err
	}
	var shift float64
	if n.Shift != nil {
		shift, err = units.CalculateSize(*n.Shift, opts)
		if err != nil {
			return nil, err
		}
	}
	return domtree.NewRule(width, height, shift), nil
}

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
	"github.com/yaklabco/gotexmath/pkg/units"
)

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:           2,
		AllowedInArgument: true,
		Handler:           handleFrac,
	}, "\\frac", "\\dfrac", "\\tfrac", "\\binom", "\\dbinom", "\\tbinom",
		"\\\\atopfrac")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:  6,
		ArgTypes: []parser.ArgType{parser.ArgMath, parser.ArgMath, parser.ArgSize, parser.ArgOriginal, parser.ArgMath, parser.ArgMath},
		Handler:  handleGenfrac,
	}, "\\genfrac")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		Infix:   true,
		Handler: handleInfixFrac,
	}, "\\over", "\\choose", "\\atop")

	htmlbuild.Register(mathast.KindGenfrac, buildGenfracHTML)
	mathmlbuild.Register(mathast.KindGenfrac, buildGenfracMathML)
}

func handleFrac(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	numer, denom := args[0], args[1]

	hasBarLine := true
	leftDelim, rightDelim := "", ""
	size := "auto"

	switch ctx.FuncName {
	case "\\dfrac":
		size = "display"
	case "\\tfrac":
		size = "text"
	case "\\binom":
		hasBarLine = false
		leftDelim, rightDelim = "(", ")"
	case "\\dbinom":
		hasBarLine = false
		leftDelim, rightDelim = "(", ")"
		size = "display"
	case "\\tbinom":
		hasBarLine = false
		leftDelim, rightDelim = "(", ")"
		size = "text"
	case "\\\\atopfrac":
		hasBarLine = false
	}

	return &mathast.Genfrac{
		Info:       mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Numer:      numer,
		Denom:      denom,
		HasBarLine: hasBarLine,
		LeftDelim:  leftDelim,
		RightDelim: rightDelim,
		Size:       size,
	}, nil
}

// delimFromArg extracts a delimiter character from a \genfrac delimiter
// argument; "." and an empty group mean no delimiter.
func delimFromArg(arg mathast.Node) string {
	switch n := mathast.BaseElem(arg).(type) {
	case *mathast.Atom:
		if n.Family == mathast.AtomOpen || n.Family == mathast.AtomClose {
			return n.Text
		}
	case *mathast.TextOrd:
		if n.Text != "." {
			return n.Text
		}
	case *mathast.OrdGroup:
		if len(n.Body) == 0 {
			return ""
		}
	}
	return ""
}

func handleGenfrac(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	leftDelim := delimFromArg(args[0])
	rightDelim := delimFromArg(args[1])

	var barSize *mathast.Measurement
	hasBarLine := true
	if sz, ok := args[2].(*mathast.Size); ok && !sz.IsBlank {
		v := sz.Value
		barSize = &v
		hasBarLine = v.Number > 0
	}

	size := "auto"
	if t, ok := mathast.BaseElem(args[3]).(*mathast.TextOrd); ok {
		switch t.Text {
		case "0":
			size = "display"
		case "1":
			size = "text"
		case "2":
			size = "script"
		case "3":
			size = "scriptscript"
		}
	}

	return &mathast.Genfrac{
		Info:       mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Numer:      args[4],
		Denom:      args[5],
		HasBarLine: hasBarLine,
		BarSize:    barSize,
		LeftDelim:  leftDelim,
		RightDelim: rightDelim,
		Size:       size,
	}, nil
}

func handleInfixFrac(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	var replace string
	switch ctx.FuncName {
	case "\\over":
		replace = "\\frac"
	case "\\choose":
		replace = "\\binom"
	case "\\atop":
		replace = "\\\\atopfrac"
	}
	return &mathast.Infix{
		Info:        mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		ReplaceWith: replace,
		Token:       ctx.Token,
	}, nil
}

// adjustStyle resolves a forced fraction size against the surrounding style.
func adjustStyle(size string, current *style.Style) *style.Style {
	switch size {
	case "display":
		// Keep scripts small; only promote text-or-larger to display.
		if current.ID >= style.Script.ID {
			return current.Text()
		}
		return style.Display
	case "text":
		if current.Size == style.Display.Size {
			return style.Text
		}
	case "script":
		return style.Script
	case "scriptscript":
		return style.ScriptScript
	}
	return current
}

func buildGenfracMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Genfrac)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindGenfrac})
	}

	numer, err := mathmlbuild.Build(n.Numer, opts)
	if err != nil {
		return nil, err
	}
	denom, err := mathmlbuild.Build(n.Denom, opts)
	if err != nil {
		return nil, err
	}

	var out mmltree.Node
	mfrac := mmltree.NewMathNode("mfrac", numer, denom)
	if !n.HasBarLine {
		mfrac.SetAttribute("linethickness", "0px")
	} else if n.BarSize != nil {
		ruleWidth, err := units.CalculateSize(*n.BarSize, opts)
		if err != nil {
			return nil, err
		}
		mfrac.SetAttribute("linethickness", units.MakeEm(ruleWidth))
	}
	out = mfrac

	st := adjustStyle(n.Size, opts.Style)
	if st.Size != opts.Style.Size {
		wrap := mmltree.NewMathNode("mstyle", out)
		if st.Size == style.Display.Size {
			wrap.SetAttribute("displaystyle", "true")
		} else {
			wrap.SetAttribute("displaystyle", "false")
		}
		wrap.SetAttribute("scriptlevel", "0")
		out = wrap
	}

	if n.LeftDelim == "" && n.RightDelim == "" {
		return out, nil
	}
	var row []mmltree.Node
	if n.LeftDelim != "" {
		left := mmltree.NewMathNode("mo",
			mmltree.NewTextNode(mathmlbuild.MakeText(n.LeftDelim, n.Mode)))
		left.SetAttribute("fence", "true")
		row = append(row, left)
	}
	row = append(row, out)
	if n.RightDelim != "" {
		right := mmltree.NewMathNode("mo",
			mmltree.NewTextNode(mathmlbuild.MakeText(n.RightDelim, n.Mode)))
		right.SetAttribute("fence", "true")
		row = append(row, right)
	}
	return mmltree.NewMathNode("mrow", row...), nil
}

func buildGenfracHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Genfrac)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindGenfrac})
	}

	st := adjustStyle(n.Size, opts.Style)
	fracOpts := opts.HavingStyle(st)

	numer, err := htmlbuild.Build(n.Numer, fracOpts.HavingStyle(st.FracNum()))
	if err != nil {
		return nil, err
	}
	denom, err := htmlbuild.Build(n.Denom, fracOpts.HavingStyle(st.FracDen()))
	if err != nil {
		return nil, err
	}

	children := []domtree.Node{
		htmlbuild.MakeSpan([]string{"frac-num"}, []domtree.Node{numer}, nil),
	}
	if n.HasBarLine {
		ruleWidth := fracOpts.FontMetrics().DefaultRuleThickness
		if n.BarSize != nil {
			ruleWidth, err = units.CalculateSize(*n.BarSize, fracOpts)
			if err != nil {
				return nil, err
			}
		}
		if ruleWidth < fracOpts.MinRuleThickness {
			ruleWidth = fracOpts.MinRuleThickness
		}
		line := htmlbuild.MakeSpan([]string{"frac-line"}, nil, nil)
		line.SetStyle("border-bottom-width", units.MakeEm(ruleWidth))
		children = append(children, line)
	}
	children = append(children,
		htmlbuild.MakeSpan([]string{"frac-den"}, []domtree.Node{denom}, nil))

	frac := htmlbuild.MakeSpan([]string{"mfrac"}, children, nil)
	if n.LeftDelim == "" && n.RightDelim == "" {
		return htmlbuild.MakeSpan([]string{"mord"}, []domtree.Node{frac}, opts), nil
	}

	var row []domtree.Node
	if n.LeftDelim != "" {
		row = append(row, htmlbuild.MakeSymbol(n.LeftDelim, "Main-Regular", n.Mode, opts, []string{"mopen"}))
	}
	row = append(row, frac)
	if n.RightDelim != "" {
		row = append(row, htmlbuild.MakeSymbol(n.RightDelim, "Main-Regular", n.Mode, opts, []string{"mclose"}))
	}
	return htmlbuild.MakeSpan([]string{"mord"}, row, opts), nil
}

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
		ArgTypes:          []parser.ArgType{parser.ArgText},
		AllowedInText:     true,
		AllowedInArgument: true,
		Handler:           handleText,
	}, "\\text", "\\textrm", "\\textsf", "\\texttt", "\\textnormal",
		"\\textbf", "\\textmd", "\\textit", "\\textup")

	htmlbuild.Register(mathast.KindText, buildTextHTML)
	mathmlbuild.Register(mathast.KindText, buildTextMathML)
}

func handleText(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	font := ""
	if ctx.FuncName != "\\text" {
		font = ctx.FuncName
	}
	return &mathast.Text{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body: ordArgument(args[0]),
		Font: font,
	}, nil
}

// textOptions applies the font variant a text command selects.
func textOptions(font string, opts *options.Options) *options.Options {
	switch font {
	case "\\textbf":
		return opts.WithTextFontWeight("textbf")
	case "\\textmd":
		return opts.WithTextFontWeight("textmd")
	case "\\textit":
		return opts.WithTextFontShape("textit")
	case "\\textup":
		return opts.WithTextFontShape("textup")
	case "\\textrm", "\\textnormal":
		return opts.WithTextFontFamily("textrm")
	case "\\textsf":
		return opts.WithTextFontFamily("textsf")
	case "\\texttt":
		return opts.WithTextFontFamily("texttt")
	}
	return opts
}

func buildTextMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Text)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindText})
	}
	// Text-mode symbols build as <mtext> and adjacent runs merge, so plain
	// \text{..} comes out as one element.
	return mathmlbuild.BuildExpressionRow(n.Body, textOptions(n.Font, opts))
}

func buildTextHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Text)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindText})
	}
	newOpts := textOptions(n.Font, opts)
	children, err := htmlbuild.BuildExpression(n.Body, newOpts)
	if err != nil {
		return nil, err
	}
	return htmlbuild.MakeSpan([]string{"mord", "text"}, children, newOpts), nil
}

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

var styleCommands = map[string]string{
	"\\displaystyle":      "display",
	"\\textstyle":         "text",
	"\\scriptstyle":       "script",
	"\\scriptscriptstyle": "scriptscript",
}

// styleFromString maps a style name to the style it selects.
func styleFromString(name string) *style.Style {
	switch name {
	case "display":
		return style.Display
	case "script":
		return style.Script
	case "scriptscript":
		return style.ScriptScript
	default:
		return style.Text
	}
}

// mstyle scriptlevel/displaystyle pairs per style name.
var mathmlStyleAttrs = map[string][2]string{
	"display":      {"0", "true"},
	"text":         {"0", "false"},
	"script":       {"1", "false"},
	"scriptscript": {"2", "false"},
}

func init() {
	for name, styleName := range styleCommands {
		parser.DefaultFunctions.Register(&parser.FuncSpec{
			AllowedInText: true,
			Handler:       handleStyling(styleName),
		}, name)
	}

	htmlbuild.Register(mathast.KindStyling, buildStylingHTML)
	mathmlbuild.Register(mathast.KindStyling, buildStylingMathML)
}

// handleStyling applies to the rest of the group. The infix break keeps
// {a \over b \displaystyle c} parsing the style switch inside the fraction's
// denominator rather than restarting it.
func handleStyling(styleName string) parser.Handler {
	return func(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
		body, err := ctx.Parser.ParseExpression(true, ctx.BreakOnTokenText)
		if err != nil {
			return nil, err
		}
		return &mathast.Styling{
			Info:  mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
			Style: styleName,
			Body:  body,
		}, nil
	}
}

func buildStylingMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Styling)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindStyling})
	}
	newOpts := opts.HavingStyle(styleFromString(n.Style))
	inner, err := mathmlbuild.BuildExpression(n.Body, newOpts)
	if err != nil {
		return nil, err
	}
	wrap := mmltree.NewMathNode("mstyle", inner...)
	attrs := mathmlStyleAttrs[n.Style]
	wrap.SetAttribute("scriptlevel", attrs[0])
	wrap.SetAttribute("displaystyle", attrs[1])
	return wrap, nil
}

func buildStylingHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Styling)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindStyling})
	}
	newOpts := opts.HavingStyle(styleFromString(n.Style))
	children, err := htmlbuild.BuildExpression(n.Body, newOpts)
	if err != nil {
		return nil, err
	}
	return &domtree.Fragment{Children: children}, nil
}

package functions

import (
	"fmt"

	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/units"
)

// delimiterChars are the characters usable after a delimiter-taking command.
// Symbol replacements are applied during parsing, so the set holds output
// characters, not command names. "." is the empty delimiter.
var delimiterChars = map[string]bool{
	"(": true, ")": true, "[": true, "]": true, "{": true, "}": true,
	"⟨": true, "⟩": true, "⌊": true, "⌋": true, "⌈": true, "⌉": true,
	"<": true, ">": true, "/": true, "\\": true,
	"∣": true, "∥": true,
	".": true,
}

// delimiterSizes maps \big..\Bigg to the delimiter height in ems.
var delimiterSizes = [5]float64{0, 1.2, 1.8, 2.4, 3.0}

type delimCommand struct {
	size   int
	mclass string
}

var delimCommands = map[string]delimCommand{
	"\\bigl": {1, "mopen"}, "\\Bigl": {2, "mopen"},
	"\\biggl": {3, "mopen"}, "\\Biggl": {4, "mopen"},
	"\\bigr": {1, "mclose"}, "\\Bigr": {2, "mclose"},
	"\\biggr": {3, "mclose"}, "\\Biggr": {4, "mclose"},
	"\\bigm": {1, "mrel"}, "\\Bigm": {2, "mrel"},
	"\\biggm": {3, "mrel"}, "\\Biggm": {4, "mrel"},
	"\\big": {1, "mord"}, "\\Big": {2, "mord"},
	"\\bigg": {3, "mord"}, "\\Bigg": {4, "mord"},
}

func init() {
	names := make([]string, 0, len(delimCommands))
	for name := range delimCommands {
		names = append(names, name)
	}
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleDelimSizing,
	}, names...)

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleLeft,
	}, "\\left")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs: 1,
		Handler: handleMiddle,
	}, "\\middle")

	htmlbuild.Register(mathast.KindDelimSizing, buildDelimSizingHTML)
	mathmlbuild.Register(mathast.KindDelimSizing, buildDelimSizingMathML)
	htmlbuild.Register(mathast.KindLeftRight, buildLeftRightHTML)
	mathmlbuild.Register(mathast.KindLeftRight, buildLeftRightMathML)
	htmlbuild.Register(mathast.KindMiddle, buildMiddleHTML)
	mathmlbuild.Register(mathast.KindMiddle, buildMiddleMathML)
}

// checkDelimiter validates a delimiter argument and returns its character.
// The empty delimiter "." is only legal where allowEmpty says so.
func checkDelimiter(delim mathast.Node, funcName string, allowEmpty bool) (string, error) {
	var text string
	switch n := mathast.BaseElem(delim).(type) {
	case *mathast.Atom:
		text = n.Text
	case *mathast.MathOrd:
		text = n.Text
	case *mathast.TextOrd:
		text = n.Text
	default:
		return "", mathast.ParseErrorAtLoc(
			mathast.InvalidDelimiterTypeAfter{Func: funcName}, delim.NodeLoc())
	}
	if !delimiterChars[text] || (text == "." && !allowEmpty) {
		return "", mathast.ParseErrorAtLoc(
			mathast.InvalidDelimiterAfter{Delim: text, Func: funcName}, delim.NodeLoc())
	}
	return text, nil
}

func handleDelimSizing(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	delim, err := checkDelimiter(args[0], ctx.FuncName, false)
	if err != nil {
		return nil, err
	}
	cmd := delimCommands[ctx.FuncName]
	return &mathast.DelimSizing{
		Info:   mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Size:   cmd.size,
		MClass: cmd.mclass,
		Delim:  delim,
	}, nil
}

// handleLeft parses the whole \left...\right construct: the body runs to
// the matching \right, whose delimiter argument follows immediately.
func handleLeft(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	left, err := checkDelimiter(args[0], ctx.FuncName, true)
	if err != nil {
		return nil, err
	}

	p := ctx.Parser
	p.BeginLeftRight()
	body, err := p.ParseExpression(false, "\\right")
	if err != nil {
		return nil, err
	}
	p.EndLeftRight()

	if err := p.Expect("\\right"); err != nil {
		return nil, err
	}
	rightArg, err := p.ParseGroup("argument to '\\right'")
	if err != nil {
		return nil, err
	}
	if rightArg == nil {
		return nil, mathast.NewParseError(
			mathast.ExpectedGroupAs{Context: "argument to '\\right'"})
	}
	right, err := checkDelimiter(rightArg, "\\right", true)
	if err != nil {
		return nil, err
	}

	return &mathast.LeftRight{
		Info:  mathast.Info{Mode: p.Mode(), Loc: ctx.Token.Loc},
		Body:  body,
		Left:  left,
		Right: right,
	}, nil
}

func handleMiddle(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	if !ctx.Parser.InLeftRight() {
		return nil, mathast.ParseErrorAt(
			mathast.ExpectedToken{Expected: "\\left", Found: "\\middle"}, ctx.Token)
	}
	delim, err := checkDelimiter(args[0], ctx.FuncName, true)
	if err != nil {
		return nil, err
	}
	return &mathast.Middle{
		Info:  mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Delim: delim,
	}, nil
}

func buildDelimSizingMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.DelimSizing)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindDelimSizing})
	}
	var children []mmltree.Node
	if n.Delim != "." {
		children = append(children, mmltree.NewTextNode(n.Delim))
	}
	mo := mmltree.NewMathNode("mo", children...)
	if n.MClass == "mopen" || n.MClass == "mclose" {
		mo.SetAttribute("fence", "true")
	} else {
		mo.SetAttribute("fence", "false")
	}
	mo.SetAttribute("stretchy", "true")
	size := units.MakeEm(delimiterSizes[n.Size])
	mo.SetAttribute("minsize", size)
	mo.SetAttribute("maxsize", size)
	return mo, nil
}

func buildDelimSizingHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.DelimSizing)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindDelimSizing})
	}
	classes := []string{n.MClass, "delimsizing", fmt.Sprintf("size%d", n.Size)}
	if n.Delim == "." {
		return htmlbuild.MakeSpan(classes, nil, opts), nil
	}
	sym := htmlbuild.MakeSymbol(n.Delim, "Main-Regular", n.Mode, opts, nil)
	return htmlbuild.MakeSpan(classes, []domtree.Node{sym}, opts), nil
}

func buildLeftRightMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.LeftRight)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindLeftRight})
	}
	inner, err := mathmlbuild.BuildExpression(n.Body, opts)
	if err != nil {
		return nil, err
	}
	var row []mmltree.Node
	if n.Left != "." {
		left := mmltree.NewMathNode("mo",
			mmltree.NewTextNode(mathmlbuild.MakeText(n.Left, n.Mode)))
		left.SetAttribute("fence", "true")
		row = append(row, left)
	}
	row = append(row, inner...)
	if n.Right != "." {
		right := mmltree.NewMathNode("mo",
			mmltree.NewTextNode(mathmlbuild.MakeText(n.Right, n.Mode)))
		right.SetAttribute("fence", "true")
		row = append(row, right)
	}
	return mmltree.NewMathNode("mrow", row...), nil
}

func buildLeftRightHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.LeftRight)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindLeftRight})
	}
	inner, err := htmlbuild.BuildExpression(n.Body, opts)
	if err != nil {
		return nil, err
	}
	var children []domtree.Node
	if n.Left != "." {
		children = append(children,
			htmlbuild.MakeSymbol(n.Left, "Main-Regular", n.Mode, opts, []string{"mopen", "delimcenter"}))
	}
	children = append(children, inner...)
	if n.Right != "." {
		children = append(children,
			htmlbuild.MakeSymbol(n.Right, "Main-Regular", n.Mode, opts, []string{"mclose", "delimcenter"}))
	}
	return htmlbuild.MakeSpan([]string{"minner"}, children, opts), nil
}

func buildMiddleMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Middle)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindMiddle})
	}
	var children []mmltree.Node
	if n.Delim != "." {
		children = append(children, mmltree.NewTextNode(n.Delim))
	}
	mo := mmltree.NewMathNode("mo", children...)
	mo.SetAttribute("fence", "true")
	mo.SetAttribute("lspace", "0.05em")
	mo.SetAttribute("rspace", "0.05em")
	return mo, nil
}

func buildMiddleHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Middle)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindMiddle})
	}
	if n.Delim == "." {
		return htmlbuild.MakeSpan([]string{"mrel"}, nil, opts), nil
	}
	sym := htmlbuild.MakeSymbol(n.Delim, "Main-Regular", n.Mode, opts, nil)
	return htmlbuild.MakeSpan([]string{"mrel"}, []domtree.Node{sym}, opts), nil
}

package functions

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/parser"
)

var protocolRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+\-.]*:`)

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:       2,
		ArgTypes:      []parser.ArgType{parser.ArgURL, parser.ArgOriginal},
		AllowedInText: true,
		Handler:       handleHref,
	}, "\\href")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:       1,
		ArgTypes:      []parser.ArgType{parser.ArgURL},
		AllowedInText: true,
		Handler:       handleURL,
	}, "\\url")

	htmlbuild.Register(mathast.KindHref, buildHrefHTML)
	mathmlbuild.Register(mathast.KindHref, buildHrefMathML)
}

// urlProtocol extracts the lowercased scheme; URLs without one are
// "_relative" for the trust policy.
func urlProtocol(url string) string {
	if m := protocolRe.FindString(url); m != "" {
		return strings.ToLower(m[:len(m)-1])
	}
	return "_relative"
}

func handleHref(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	url := args[0].(*mathast.URL).URL
	if !ctx.Parser.Settings().IsTrusted(parser.TrustContext{
		Command:  "\\href",
		URL:      url,
		Protocol: urlProtocol(url),
	}) {
		return unsupportedCmd("\\href", ctx.Parser.Mode()), nil
	}
	return &mathast.Href{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Href: url,
		Body: ordArgument(args[1]),
	}, nil
}

func handleURL(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	url := args[0].(*mathast.URL).URL
	if !ctx.Parser.Settings().IsTrusted(parser.TrustContext{
		Command:  "\\url",
		URL:      url,
		Protocol: urlProtocol(url),
	}) {
		return unsupportedCmd("\\url", ctx.Parser.Mode()), nil
	}

	// The link text is the URL itself, in monospace.
	var chars []mathast.Node
	for _, r := range url {
		s := string(r)
		if s == "~" {
			s = "\\textasciitilde"
		}
		chars = append(chars, &mathast.TextOrd{
			Info: mathast.Info{Mode: mathast.ModeText},
			Text: s,
		})
	}
	body := &mathast.Text{
		Info: mathast.Info{Mode: ctx.Parser.Mode()},
		Body: chars,
		Font: "\\texttt",
	}
	return &mathast.Href{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Href: url,
		Body: []mathast.Node{body},
	}, nil
}

func buildHrefMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Href)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindHref})
	}
	row, err := mathmlbuild.BuildExpressionRow(n.Body, opts)
	if err != nil {
		return nil, err
	}
	mn, ok := row.(*mmltree.MathNode)
	if !ok {
		mn = mmltree.NewMathNode("mrow", row)
	}
	mn.SetAttribute("href", n.Href)
	return mn, nil
}

func buildHrefHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Href)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindHref})
	}
	children, err := htmlbuild.BuildExpression(n.Body, opts)
	if err != nil {
		return nil, err
	}
	return domtree.NewAnchor(n.Href, []string{"mord"}, children), nil
}

package functions

import (
	"strings"

	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
)

// \verb is tokenized whole by the lexer, so there is no parse handler to
// register; only the builders.
func init() {
	htmlbuild.Register(mathast.KindVerb, buildVerbHTML)
	mathmlbuild.Register(mathast.KindVerb, buildVerbMathML)
}

// verbText renders spaces visibly: open-box under \verb*, no-break space
// otherwise so runs of spaces survive HTML whitespace collapsing.
func verbText(n *mathast.Verb) string {
	space := " "
	if n.Star {
		space = "␣"
	}
	return strings.ReplaceAll(n.Body, " ", space)
}

func buildVerbMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Verb)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindVerb})
	}
	text := mmltree.NewMathNode("mtext", mmltree.NewTextNode(verbText(n)))
	text.SetAttribute("mathvariant", "monospace")
	return text, nil
}

func buildVerbHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Verb)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindVerb})
	}
	var children []domtree.Node
	for _, r := range verbText(n) {
		children = append(children,
			htmlbuild.MakeSymbol(string(r), "Typewriter-Regular", n.Mode, opts, nil))
	}
	return htmlbuild.MakeSpan([]string{"mord", "text", "texttt"}, children, opts), nil
}

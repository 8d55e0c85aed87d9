// Package functions defines the LaTeX commands and environments the parser
// understands. Each family lives in its own file and registers three things
// at init time: the parse-time handler with the parser's function registry,
// and the two render-time builders (visual and MathML) for the node kinds
// its handlers produce.
//
// Importing this package for its side effects is what arms the renderer;
// the render package does so unconditionally.
package functions

import (
	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// ordArgument flattens a group argument into the node list it wraps, so a
// braced argument and a bare one feed handlers identically.
func ordArgument(arg mathast.Node) []mathast.Node {
	if g, ok := arg.(*mathast.OrdGroup); ok {
		return g.Body
	}
	return []mathast.Node{arg}
}

// normalizeArgument unwraps a single-element group argument to the element
// itself.
func normalizeArgument(arg mathast.Node) mathast.Node {
	if g, ok := arg.(*mathast.OrdGroup); ok && len(g.Body) == 1 {
		return g.Body[0]
	}
	return arg
}

// unsupportedCmd renders a command the current settings refused (for
// example an untrusted \href) as its own name in red, matching the lenient
// rendering of unknown commands.
func unsupportedCmd(cmd string, mode mathast.Mode) mathast.Node {
	var body []mathast.Node
	for _, r := range cmd {
		body = append(body, &mathast.TextOrd{
			Info: mathast.Info{Mode: mathast.ModeText},
			Text: string(r),
		})
	}
	return &mathast.Color{
		Info:  mathast.Info{Mode: mode},
		Color: "#cc0000",
		Body: []mathast.Node{&mathast.Text{
			Info: mathast.Info{Mode: mathast.ModeText},
			Body: body,
		}},
	}
}

package functions

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gotexmath/pkg/macro"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/symbols"
)

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		AllowedInText: true,
		Handler:       handleDef,
	}, "\\def", "\\gdef")

	parser.DefaultFunctions.Register(&parser.FuncSpec{
		AllowedInText: true,
		Handler:       handleNewcommand,
	}, "\\newcommand", "\\renewcommand", "\\providecommand")
}

func internalNode(ctx *parser.FuncContext) mathast.Node {
	return &mathast.Internal{
		Info: mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
	}
}

// handleDef implements TeX-style \def\name#1#2{body}. Parameters must be
// numbered consecutively; delimited parameter text is not supported.
func handleDef(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	gullet := ctx.Parser.Gullet()

	nameTok, err := gullet.PopToken()
	if err != nil {
		return nil, err
	}
	name := nameTok.Text.String()
	if !strings.HasPrefix(name, "\\") {
		return nil, mathast.ParseErrorAt(
			mathast.ExpectedControlSequence{Found: name}, &nameTok)
	}

	numArgs := 0
	for {
		tok, err := gullet.Future()
		if err != nil {
			return nil, err
		}
		text := tok.Text.String()
		if text == "{" {
			break
		}
		if _, err := gullet.PopToken(); err != nil {
			return nil, err
		}
		if text != "#" {
			return nil, mathast.ParseErrorAt(
				mathast.ExpectedToken{Expected: "{", Found: text}, &tok)
		}
		digitTok, err := gullet.PopToken()
		if err != nil {
			return nil, err
		}
		want := strconv.Itoa(numArgs + 1)
		if digitTok.Text.String() != want {
			return nil, mathast.ParseErrorAt(
				mathast.ExpectedToken{Expected: "#" + want, Found: "#" + digitTok.Text.String()}, &digitTok)
		}
		numArgs++
	}

	body, err := gullet.ConsumeArg()
	if err != nil {
		return nil, err
	}

	gullet.Macros().Set(name, &macro.Definition{
		Tokens:  body,
		NumArgs: numArgs,
	}, ctx.FuncName == "\\gdef")
	return internalNode(ctx), nil
}

// isDefinedCommand reports whether name already means something: a macro, a
// symbol in either mode, or a registered function.
func isDefinedCommand(p *parser.Parser, name string) bool {
	return p.Gullet().Macros().IsDefined(name) ||
		symbols.IsDefinedInAnyMode(name) ||
		parser.DefaultFunctions.Get(name) != nil
}

// handleNewcommand implements \newcommand and friends. The name may be bare
// or braced; an optional [n] gives the argument count.
func handleNewcommand(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	p := ctx.Parser
	gullet := p.Gullet()

	if err := gullet.ConsumeSpaces(); err != nil {
		return nil, err
	}
	nameTok, err := gullet.PopToken()
	if err != nil {
		return nil, err
	}
	name := nameTok.Text.String()
	if name == "{" {
		inner, err := gullet.PopToken()
		if err != nil {
			return nil, err
		}
		name = inner.Text.String()
		closeTok, err := gullet.PopToken()
		if err != nil {
			return nil, err
		}
		if closeTok.Text.String() != "}" {
			return nil, mathast.ParseErrorAt(
				mathast.ExpectedToken{Expected: "}", Found: closeTok.Text.String()}, &closeTok)
		}
	}
	if !strings.HasPrefix(name, "\\") {
		return nil, mathast.ParseErrorAt(
			mathast.ExpectedControlSequence{Found: name}, &nameTok)
	}

	exists := isDefinedCommand(p, name)
	switch ctx.FuncName {
	case "\\newcommand":
		if exists {
			return nil, mathast.ParseErrorAt(mathast.RedefineExisting{Name: name}, &nameTok)
		}
	case "\\renewcommand":
		if !exists {
			return nil, mathast.ParseErrorAt(mathast.RenewUndefined{Name: name}, &nameTok)
		}
	}

	numArgs := 0
	next, err := gullet.Future()
	if err != nil {
		return nil, err
	}
	if next.Text.String() == "[" {
		if _, err := gullet.PopToken(); err != nil {
			return nil, err
		}
		var digits strings.Builder
		for {
			tok, err := gullet.PopToken()
			if err != nil {
				return nil, err
			}
			t := tok.Text.String()
			if t == "]" {
				break
			}
			if len(t) != 1 || t[0] < '0' || t[0] > '9' {
				return nil, mathast.ParseErrorAt(
					mathast.ExpectedToken{Expected: "argument count", Found: t}, &tok)
			}
			digits.WriteString(t)
		}
		numArgs, err = strconv.Atoi(digits.String())
		if err != nil {
			return nil, mathast.ParseErrorAt(
				mathast.ExpectedToken{Expected: "argument count", Found: digits.String()}, &nameTok)
		}
	}

	body, err := gullet.ConsumeArg()
	if err != nil {
		return nil, err
	}

	// \providecommand keeps an existing meaning; the body is consumed
	// either way.
	if !(ctx.FuncName == "\\providecommand" && exists) {
		gullet.Macros().Set(name, &macro.Definition{
			Tokens:  body,
			NumArgs: numArgs,
		}, true)
	}
	return internalNode(ctx), nil
}

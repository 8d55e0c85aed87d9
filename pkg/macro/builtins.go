package macro

import (
	"fmt"

	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/symbols"
)

// Builtins is the default macro table. It is read-only; per-render
// redefinitions shadow it through the Namespace.
var Builtins = map[string]*Definition{}

func defineMacro(name string, def *Definition) {
	Builtins[name] = def
}

func init() {
	// Expansion primitives.
	defineMacro("\\noexpand", &Definition{Func: func(e *Expander) (Expansion, error) {
		// The next token is not expanded; if it would have been, it also
		// acts like \relax so it cannot consume arguments elsewhere.
		tok, err := e.PopToken()
		if err != nil {
			return Expansion{}, err
		}
		if e.IsExpandable(tok.Text.String()) {
			tok.NoExpand = true
			tok.TreatAsRelax = true
		}
		return Expansion{Tokens: []mathast.Token{tok}}, nil
	}})

	defineMacro("\\expandafter", &Definition{Func: func(e *Expander) (Expansion, error) {
		// Hold the next token, expand the one after it once, then put the
		// held token back in front.
		tok, err := e.PopToken()
		if err != nil {
			return Expansion{}, err
		}
		if _, _, err := e.ExpandOnce(true); err != nil {
			return Expansion{}, err
		}
		return Expansion{Tokens: []mathast.Token{tok}}, nil
	}})

	// Spacing aliases.
	defineMacro("\\thinspace", &Definition{Body: "\\,"})
	defineMacro("\\medspace", &Definition{Body: "\\:"})
	defineMacro("\\thickspace", &Definition{Body: "\\;"})
	defineMacro("\\negthinspace", &Definition{Body: "\\!"})
	defineMacro("\\enskip", &Definition{Body: "\\hskip.5em\\relax"})
	defineMacro("\\quad", &Definition{Body: "\\hskip1em\\relax"})
	defineMacro("\\qquad", &Definition{Body: "\\hskip2em\\relax"})

	// Symbol aliases.
	defineMacro("\\dots", &Definition{Body: "\\ldots"})
	defineMacro("\\dotsb", &Definition{Body: "\\cdots"})
	defineMacro("\\gets", &Definition{Body: "\\leftarrow"})
	defineMacro("\\iff", &Definition{Body: "\\;\\Longleftrightarrow\\;"})
	defineMacro("\\lnot", &Definition{Body: "\\neg"})
	defineMacro("\\land", &Definition{Body: "\\wedge"})
	defineMacro("\\lor", &Definition{Body: "\\vee"})
	defineMacro("\\bmod", &Definition{Body: "\\mathbin{mod}"})
	defineMacro("\\degree", &Definition{Body: "^\\circ"})
	defineMacro("\\cr", &Definition{Body: "\\\\"})
}

func init() {
	// No built-in macro may shadow a symbol defined in either mode. The
	// check runs at startup, not per render; a violation is a programming
	// error in the tables, so it panics.
	for name := range Builtins {
		if symbols.IsDefinedInAnyMode(name) {
			panic(fmt.Sprintf("macro: builtin %q shadows a symbol table entry", name))
		}
	}
}

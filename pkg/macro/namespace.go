// Package macro implements the macro layer between the lexer and the
// parser: macro definitions, the group-scoped namespace they live in, and
// the expander that rewrites control sequences before the parser sees them.
package macro

import "github.com/yaklabco/gotexmath/pkg/mathast"

// Expansion is the result of expanding a macro: replacement tokens in
// reverse order (the last token is pushed first), plus the argument count
// the body references.
type Expansion struct {
	// Tokens holds the replacement, reversed for efficient stack pushes.
	Tokens []mathast.Token

	// NumArgs is how many #n arguments the body references.
	NumArgs int

	// Unexpandable marks primitives that \expandafter must not expand.
	Unexpandable bool
}

// ExpandFunc computes a macro expansion dynamically. The function may pull
// argument tokens from the expander.
type ExpandFunc func(e *Expander) (Expansion, error)

// Definition is one macro binding: a pre-tokenized replacement (as \def
// produces), a literal replacement string retokenized on every use, or a
// function computing the expansion. Tokens takes priority over Body.
type Definition struct {
	// Tokens is a pre-tokenized replacement in reverse order.
	Tokens  []mathast.Token
	Body    string
	NumArgs int
	Func    ExpandFunc
}

// Namespace is a name-to-definition mapping with TeX grouping semantics:
// definitions made inside a group are undone when the group ends, unless
// made global. It is owned by a single render call.
type Namespace struct {
	builtins map[string]*Definition
	current  map[string]*Definition

	// undefStack records, per open group, the shadowed bindings to restore
	// at end of group. A nil value records a name that was unset.
	undefStack []map[string]*Definition
}

// NewNamespace creates a namespace over a read-only builtin table plus
// caller-supplied global macros. The supplied map is aliased, not copied:
// bindings that survive the render (top-level definitions and \gdef) remain
// in the caller's map, so a shared map persists macros across renders.
func NewNamespace(builtins map[string]*Definition, globalMacros map[string]*Definition) *Namespace {
	if globalMacros == nil {
		globalMacros = make(map[string]*Definition)
	}
	return &Namespace{builtins: builtins, current: globalMacros}
}

// BeginGroup opens a new scoping group.
func (ns *Namespace) BeginGroup() {
	ns.undefStack = append(ns.undefStack, map[string]*Definition{})
}

// EndGroup closes the innermost group, restoring bindings shadowed inside
// it.
func (ns *Namespace) EndGroup() error {
	if len(ns.undefStack) == 0 {
		return mathast.NewParseError(mathast.ExpectedToken{
			Expected: "\\begingroup", Found: "\\endgroup",
		})
	}
	undefs := ns.undefStack[len(ns.undefStack)-1]
	ns.undefStack = ns.undefStack[:len(ns.undefStack)-1]
	for name, def := range undefs {
		if def == nil {
			delete(ns.current, name)
		} else {
			ns.current[name] = def
		}
	}
	return nil
}

// EndGroups closes all open groups. Used at the end of a render so that
// group-scoped definitions never leak across calls.
func (ns *Namespace) EndGroups() {
	for len(ns.undefStack) > 0 {
		_ = ns.EndGroup()
	}
}

// Get returns the definition bound to name, or nil.
func (ns *Namespace) Get(name string) *Definition {
	if def, ok := ns.current[name]; ok {
		return def
	}
	if def, ok := ns.builtins[name]; ok {
		return def
	}
	return nil
}

// IsDefined reports whether name has a binding.
func (ns *Namespace) IsDefined(name string) bool {
	if _, ok := ns.current[name]; ok {
		return true
	}
	_, ok := ns.builtins[name]
	return ok
}

// Set binds name to def (nil unbinds). Global bindings clear any pending
// group-local restores; local bindings record the shadowed value so the
// enclosing group can restore it. Macros may redefine themselves mid-parse.
func (ns *Namespace) Set(name string, def *Definition, global bool) {
	if global {
		for _, undefs := range ns.undefStack {
			delete(undefs, name)
		}
		if len(ns.undefStack) > 0 {
			ns.undefStack[len(ns.undefStack)-1][name] = def
		}
	} else if len(ns.undefStack) > 0 {
		top := ns.undefStack[len(ns.undefStack)-1]
		if _, recorded := top[name]; !recorded {
			if old, ok := ns.current[name]; ok {
				top[name] = old
			} else {
				top[name] = nil
			}
		}
	}

	if def == nil {
		delete(ns.current, name)
	} else {
		ns.current[name] = def
	}
}

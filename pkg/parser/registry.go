package parser

import (
	"fmt"
	"sort"

	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// ArgType selects how one function argument is parsed.
type ArgType uint8

// Argument types.
const (
	// ArgOriginal parses an ordinary group in the current mode.
	ArgOriginal ArgType = iota

	// ArgMath and ArgText parse an ordinary group with a forced mode.
	ArgMath
	ArgText

	// ArgColor parses a raw color spec (named or #hex).
	ArgColor

	// ArgSize parses a raw measurement (number + unit).
	ArgSize

	// ArgURL parses a raw URL with TeX escapes removed.
	ArgURL

	// ArgRaw parses the argument's raw token text without expansion.
	ArgRaw
)

// FuncContext is passed to a parse-time handler.
type FuncContext struct {
	// Parser is the active parser, for handlers that consume more input.
	Parser *Parser

	// FuncName is the control sequence that invoked the handler.
	FuncName string

	// Token is the invoking token, for error positions.
	Token *mathast.Token

	// BreakOnTokenText propagates the enclosing expression's stop token to
	// handlers that parse to end of group (\color, \displaystyle).
	BreakOnTokenText string
}

// Handler builds a parse node from the function's parsed arguments.
type Handler func(ctx *FuncContext, args []mathast.Node, optArgs []mathast.Node) (mathast.Node, error)

// FuncSpec describes one registered function: its argument shape, mode
// restrictions and parse-time handler. The render-time builders register
// separately, keyed by node kind.
type FuncSpec struct {
	// NumArgs is the number of required arguments.
	NumArgs int

	// NumOptionalArgs is the number of leading optional [..] arguments.
	NumOptionalArgs int

	// ArgTypes gives the type of each argument, optional ones first.
	// Missing entries default to ArgOriginal.
	ArgTypes []ArgType

	// AllowedInText permits the function inside \text{...}.
	AllowedInText bool

	// MathOnly is the inverse restriction for text-only commands.
	TextOnly bool

	// AllowedInArgument permits the function as a bare sup/sub or function
	// argument without braces (x^\frac12).
	AllowedInArgument bool

	// Infix marks \over-family operators collected during expression
	// parsing and rewritten afterwards.
	Infix bool

	// Handler builds the parse node.
	Handler Handler
}

// Registry maps control-sequence names to function specs. Registration
// happens at init time; lookups during parsing are read-only.
type Registry struct {
	specs map[string]*FuncSpec
}

// NewRegistry creates an empty function registry.
func NewRegistry() *Registry {
	return &Registry{specs: map[string]*FuncSpec{}}
}

// Register binds spec to each name. Registering a name twice is a
// programming error and panics at startup.
func (r *Registry) Register(spec *FuncSpec, names ...string) {
	for _, name := range names {
		if _, dup := r.specs[name]; dup {
			panic(fmt.Sprintf("parser: function %q registered twice", name))
		}
		r.specs[name] = spec
	}
}

// Get returns the spec for name, or nil.
func (r *Registry) Get(name string) *FuncSpec {
	return r.specs[name]
}

// Names returns every registered function name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultFunctions is the registry the parser consults. The functions
// package populates it at init time.
var DefaultFunctions = NewRegistry()

// EnvContext is passed to an environment handler.
type EnvContext struct {
	Parser  *Parser
	EnvName string
	Token   *mathast.Token
}

// EnvHandler parses an environment body, up to but not including \end.
type EnvHandler func(ctx *EnvContext, args []mathast.Node, optArgs []mathast.Node) (mathast.Node, error)

// EnvSpec describes one registered environment.
type EnvSpec struct {
	NumArgs         int
	NumOptionalArgs int
	ArgTypes        []ArgType
	Handler         EnvHandler
}

// EnvRegistry maps environment names to specs.
type EnvRegistry struct {
	specs map[string]*EnvSpec
}

// NewEnvRegistry creates an empty environment registry.
func NewEnvRegistry() *EnvRegistry {
	return &EnvRegistry{specs: map[string]*EnvSpec{}}
}

// Register binds spec to each environment name, panicking on duplicates.
func (r *EnvRegistry) Register(spec *EnvSpec, names ...string) {
	for _, name := range names {
		if _, dup := r.specs[name]; dup {
			panic(fmt.Sprintf("parser: environment %q registered twice", name))
		}
		r.specs[name] = spec
	}
}

// Get returns the spec for name, or nil.
func (r *EnvRegistry) Get(name string) *EnvSpec {
	return r.specs[name]
}

// Names returns every registered environment name, sorted.
func (r *EnvRegistry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultEnvironments is the registry \begin consults. The functions
// package populates it at init time.
var DefaultEnvironments = NewEnvRegistry()

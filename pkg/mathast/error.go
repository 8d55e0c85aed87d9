package mathast

import (
	"fmt"
	"strings"
)

// ErrorKind is the closed set of fatal render-failure conditions. Each kind
// is a distinct struct carrying the context its message needs, so callers
// can match structurally with errors.As on the wrapping ParseError.
type ErrorKind interface {
	// Message returns the human-readable description without position info.
	Message() string

	// errorKind seals the set; only this package defines kinds.
	errorKind()
}

// UnexpectedCharacter reports a codepoint outside the lexer's allow-list.
type UnexpectedCharacter struct{ Character string }

// VerbMissingDelimiter reports a \verb run with no matching delimiter before
// the end of the line.
type VerbMissingDelimiter struct{}

// TooManyExpansions reports that macro expansion exceeded the configured
// limit, which indicates an accidentally recursive definition.
type TooManyExpansions struct{ Limit int }

// UndefinedControlSequence reports an unknown command name.
type UndefinedControlSequence struct{ Name string }

// ExpectedToken reports a mismatch between the token the parser required
// and the one it found.
type ExpectedToken struct{ Expected, Found string }

// ExpectedGroupAs reports a missing required argument; Context names the
// enclosing function and argument role (e.g. "argument to '\sqrt'").
type ExpectedGroupAs struct{ Context string }

// ExpectedGroupAfterSymbol reports a missing group after ^ or _.
type ExpectedGroupAfterSymbol struct{ Symbol string }

// UnexpectedEndOfMacroArgument reports EOF inside a macro argument group.
type UnexpectedEndOfMacroArgument struct{}

// DoubleSuperscript reports a second superscript on the same base.
type DoubleSuperscript struct{}

// DoubleSubscript reports a second subscript on the same base.
type DoubleSubscript struct{}

// MultipleInfixOperators reports more than one \over-family operator at the
// same nesting depth.
type MultipleInfixOperators struct{}

// LimitsMustFollowBase reports \limits or \nolimits not directly following
// an operator atom.
type LimitsMustFollowBase struct{}

// NoSuchEnvironment reports an unknown environment name at \begin.
type NoSuchEnvironment struct{ Name string }

// MismatchedEnvironmentEnd reports \end naming a different environment than
// the matching \begin.
type MismatchedEnvironmentEnd struct{ Begin, End string }

// UnknownColumnAlignment reports an unrecognized character in an array
// column specification.
type UnknownColumnAlignment struct{ Alignment string }

// InvalidColor reports a color argument that is neither a named color nor a
// hex triplet.
type InvalidColor struct{ Color string }

// InvalidSize reports a size argument that does not parse as a measurement.
type InvalidSize struct{ Size string }

// InvalidUnit reports a measurement with an unknown length unit.
type InvalidUnit struct{ Unit string }

// InvalidDelimiterAfter reports a symbol that is not a known delimiter after
// a delimiter-taking command.
type InvalidDelimiterAfter struct{ Delim, Func string }

// InvalidDelimiterTypeAfter reports a non-symbol (e.g. a group) where a
// delimiter-taking command required a delimiter atom.
type InvalidDelimiterTypeAfter struct{ Func string }

// FunctionDisallowedInMode reports a function used in a mode it does not
// support (e.g. \sqrt inside \text).
type FunctionDisallowedInMode struct {
	Func string
	Mode Mode
}

// FunctionMissingArguments reports a function appearing argument-less where
// an argument was required of it (e.g. "\sqrt\over2").
type FunctionMissingArguments struct{ Func, Context string }

// RedefineExisting reports \newcommand naming an already-defined command.
type RedefineExisting struct{ Name string }

// RenewUndefined reports \renewcommand naming a command with no prior
// definition.
type RenewUndefined struct{ Name string }

// ExpectedControlSequence reports a definition command whose defined name
// is not a control sequence.
type ExpectedControlSequence struct{ Found string }

// StrictModeError is a strictness-gated condition escalated to fatal by the
// strict-mode policy. Code identifies the condition machine-readably.
type StrictModeError struct{ ErrMessage, Code string }

// ExpectedNode reports a builder dispatched on a node of the wrong kind.
// This indicates a registration bug, not bad input.
type ExpectedNode struct{ Node NodeKind }

func (k UnexpectedCharacter) Message() string {
	return fmt.Sprintf("Unexpected character: '%s'", k.Character)
}

func (VerbMissingDelimiter) Message() string {
	return "\\verb ended by end of line instead of matching delimiter"
}

func (k TooManyExpansions) Message() string {
	return fmt.Sprintf("Too many expansions: infinite loop or need to increase maxExpand setting (%d)", k.Limit)
}

func (k UndefinedControlSequence) Message() string {
	return fmt.Sprintf("Undefined control sequence: %s", k.Name)
}

func (k ExpectedToken) Message() string {
	return fmt.Sprintf("Expected '%s', got '%s'", k.Expected, k.Found)
}

func (k ExpectedGroupAs) Message() string {
	return fmt.Sprintf("Expected group as %s", k.Context)
}

func (k ExpectedGroupAfterSymbol) Message() string {
	return fmt.Sprintf("Expected group after '%s'", k.Symbol)
}

func (UnexpectedEndOfMacroArgument) Message() string {
	return "Unexpected end of input in a macro argument, expected '}'"
}

func (DoubleSuperscript) Message() string {
	return "Double superscript"
}

func (DoubleSubscript) Message() string {
	return "Double subscript"
}

func (MultipleInfixOperators) Message() string {
	return "only one infix operator per group"
}

func (LimitsMustFollowBase) Message() string {
	return "Limit controls must follow a math operator"
}

func (k NoSuchEnvironment) Message() string {
	return fmt.Sprintf("No such environment: %s", k.Name)
}

func (k MismatchedEnvironmentEnd) Message() string {
	return fmt.Sprintf("Mismatch: \\begin{%s} matched by \\end{%s}", k.Begin, k.End)
}

func (k UnknownColumnAlignment) Message() string {
	return fmt.Sprintf("Unknown column alignment: %s", k.Alignment)
}

func (k InvalidColor) Message() string {
	return fmt.Sprintf("Invalid color: '%s'", k.Color)
}

func (k InvalidSize) Message() string {
	return fmt.Sprintf("Invalid size: '%s'", k.Size)
}

func (k InvalidUnit) Message() string {
	return fmt.Sprintf("Invalid unit: '%s'", k.Unit)
}

func (k InvalidDelimiterAfter) Message() string {
	return fmt.Sprintf("Invalid delimiter: '%s' after '%s'", k.Delim, k.Func)
}

func (k InvalidDelimiterTypeAfter) Message() string {
	return fmt.Sprintf("Invalid delimiter type after '%s'", k.Func)
}

func (k FunctionDisallowedInMode) Message() string {
	return fmt.Sprintf("Can't use function '%s' in %s mode", k.Func, k.Mode)
}

func (k FunctionMissingArguments) Message() string {
	return fmt.Sprintf("Got function '%s' with no arguments as %s", k.Func, k.Context)
}

func (k RedefineExisting) Message() string {
	return fmt.Sprintf("\\newcommand{%s} attempting to redefine %s; use \\renewcommand", k.Name, k.Name)
}

func (k RenewUndefined) Message() string {
	return fmt.Sprintf("\\renewcommand{%s} when command %s does not yet exist; use \\newcommand", k.Name, k.Name)
}

func (k ExpectedControlSequence) Message() string {
	return fmt.Sprintf("Expected a control sequence, got '%s'", k.Found)
}

func (k StrictModeError) Message() string {
	return fmt.Sprintf("%s [%s]", k.ErrMessage, k.Code)
}

func (k ExpectedNode) Message() string {
	return fmt.Sprintf("Expected node of type %v", k.Node)
}

func (UnexpectedCharacter) errorKind()         {}
func (VerbMissingDelimiter) errorKind()        {}
func (TooManyExpansions) errorKind()           {}
func (UndefinedControlSequence) errorKind()    {}
func (ExpectedToken) errorKind()               {}
func (ExpectedGroupAs) errorKind()             {}
func (ExpectedGroupAfterSymbol) errorKind()    {}
func (UnexpectedEndOfMacroArgument) errorKind() {}
func (DoubleSuperscript) errorKind()           {}
func (DoubleSubscript) errorKind()             {}
func (MultipleInfixOperators) errorKind()      {}
func (LimitsMustFollowBase) errorKind()        {}
func (NoSuchEnvironment) errorKind()           {}
func (MismatchedEnvironmentEnd) errorKind()    {}
func (UnknownColumnAlignment) errorKind()      {}
func (InvalidColor) errorKind()                {}
func (InvalidSize) errorKind()                 {}
func (InvalidUnit) errorKind()                 {}
func (InvalidDelimiterAfter) errorKind()       {}
func (InvalidDelimiterTypeAfter) errorKind()   {}
func (FunctionDisallowedInMode) errorKind()    {}
func (FunctionMissingArguments) errorKind()    {}
func (RedefineExisting) errorKind()            {}
func (RenewUndefined) errorKind()              {}
func (ExpectedControlSequence) errorKind()     {}
func (StrictModeError) errorKind()             {}
func (ExpectedNode) errorKind()                {}

// ParseError is the fatal error surface of the renderer. It pairs an
// ErrorKind with an optional source span for caret-style diagnostics.
type ParseError struct {
	// Kind is the structural error condition.
	Kind ErrorKind

	// Input is the source text the span points into, empty when unknown.
	Input string

	// Start and End are byte offsets into Input; both -1 when unknown.
	Start int
	End   int
}

// NewParseError creates a ParseError with no position information.
func NewParseError(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Start: -1, End: -1}
}

// ParseErrorAt creates a ParseError located at the given token.
func ParseErrorAt(kind ErrorKind, tok *Token) *ParseError {
	e := NewParseError(kind)
	if tok != nil && tok.Loc != nil {
		e.Input = tok.Loc.Input.Text()
		e.Start = tok.Loc.Start
		e.End = tok.Loc.End
	}
	return e
}

// ParseErrorAtLoc creates a ParseError located at the given source range.
func ParseErrorAtLoc(kind ErrorKind, loc *SourceRange) *ParseError {
	e := NewParseError(kind)
	if loc != nil {
		e.Input = loc.Input.Text()
		e.Start = loc.Start
		e.End = loc.End
	}
	return e
}

// Error implements the error interface. When position information is
// available the offending span is underlined in the style of TeX engines.
func (e *ParseError) Error() string {
	msg := e.Kind.Message()
	if e.Start < 0 || e.Input == "" {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	fmt.Fprintf(&b, " at position %d: ", e.Start+1)

	// Underline the span with combining low lines, clamping the excerpt to
	// a window around the error.
	start, end := e.Start, e.End
	if end > len(e.Input) {
		end = len(e.Input)
	}
	left := e.Input[:start]
	if len(left) > 15 {
		left = "…" + left[len(left)-15:]
	}
	right := e.Input[end:]
	if len(right) > 15 {
		right = right[:15] + "…"
	}
	b.WriteString(left)
	for _, r := range e.Input[start:end] {
		b.WriteRune(r)
		b.WriteRune('̲')
	}
	b.WriteString(right)
	return b.String()
}

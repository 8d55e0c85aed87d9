package macro

import (
	"strings"

	"github.com/yaklabco/gotexmath/pkg/lexer"
	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// Expander wraps the lexer with a pushback stack and macro expansion. On
// each pull, a control sequence bound in the namespace is replaced on the
// stack by its expansion; expansion recurses until the next token is not a
// bound macro, bounded by the expansion-count limit.
type Expander struct {
	lex      *lexer.Lexer
	ns       *Namespace
	mode     mathast.Mode
	reporter lexer.StrictReporter

	// stack holds pushed-back tokens, top at the end. Tokens here take
	// priority over the lexer's output.
	stack []mathast.Token

	maxExpand  int
	expansions int
}

// NewExpander creates an expander over the input with the given namespace
// and expansion limit.
func NewExpander(input *mathast.Input, ns *Namespace, reporter lexer.StrictReporter, mode mathast.Mode, maxExpand int) *Expander {
	return &Expander{
		lex:       lexer.New(input, reporter),
		ns:        ns,
		mode:      mode,
		reporter:  reporter,
		maxExpand: maxExpand,
	}
}

// Lexer exposes the underlying lexer for position save/restore and catcode
// directives.
func (e *Expander) Lexer() *lexer.Lexer { return e.lex }

// Macros exposes the namespace for \def and friends.
func (e *Expander) Macros() *Namespace { return e.ns }

// Mode returns the current parsing mode.
func (e *Expander) Mode() mathast.Mode { return e.mode }

// SwitchMode changes the parsing mode (entering or leaving \text).
func (e *Expander) SwitchMode(mode mathast.Mode) { e.mode = mode }

// BeginGroup opens a macro scoping group.
func (e *Expander) BeginGroup() { e.ns.BeginGroup() }

// EndGroup closes the innermost macro scoping group.
func (e *Expander) EndGroup() error { return e.ns.EndGroup() }

// EndGroups closes all open groups at the end of parsing.
func (e *Expander) EndGroups() { e.ns.EndGroups() }

// PushToken pushes a token back; it will be the next token pulled.
func (e *Expander) PushToken(tok mathast.Token) {
	e.stack = append(e.stack, tok)
}

// PushTokens pushes a reversed expansion (last token first in the slice is
// pulled last).
func (e *Expander) PushTokens(toks []mathast.Token) {
	e.stack = append(e.stack, toks...)
}

// PopToken returns the next raw token without expanding it.
func (e *Expander) PopToken() (mathast.Token, error) {
	if n := len(e.stack); n > 0 {
		tok := e.stack[n-1]
		e.stack = e.stack[:n-1]
		return tok, nil
	}
	return e.lex.Lex()
}

// Future peeks at the next raw token, leaving it on the stack.
func (e *Expander) Future() (mathast.Token, error) {
	tok, err := e.PopToken()
	if err != nil {
		return tok, err
	}
	e.PushToken(tok)
	return tok, nil
}

// ConsumeSpaces discards any space tokens waiting on the stream.
func (e *Expander) ConsumeSpaces() error {
	for {
		tok, err := e.Future()
		if err != nil {
			return err
		}
		if tok.Text.String() != " " {
			return nil
		}
		if _, err := e.PopToken(); err != nil {
			return err
		}
	}
}

func (e *Expander) countExpansion(n int) error {
	e.expansions += n
	if e.maxExpand > 0 && e.expansions > e.maxExpand {
		return mathast.NewParseError(mathast.TooManyExpansions{Limit: e.maxExpand})
	}
	return nil
}

// ConsumeArg collects one macro argument: a balanced {...} group (braces
// stripped) or a single token. The returned tokens are reversed, matching
// the stack order expansions use.
func (e *Expander) ConsumeArg() ([]mathast.Token, error) {
	tok, err := e.PopToken()
	if err != nil {
		return nil, err
	}

	text := tok.Text.String()
	if text == "EOF" {
		return nil, mathast.ParseErrorAt(mathast.UnexpectedEndOfMacroArgument{}, &tok)
	}

	if text != "{" {
		return []mathast.Token{tok}, nil
	}

	var tokens []mathast.Token
	depth := 1
	for depth > 0 {
		tok, err := e.PopToken()
		if err != nil {
			return nil, err
		}
		switch tok.Text.String() {
		case "EOF":
			return nil, mathast.ParseErrorAt(mathast.UnexpectedEndOfMacroArgument{}, &tok)
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				continue
			}
		}
		tokens = append(tokens, tok)
	}

	// Reverse into stack order.
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return tokens, nil
}

// ConsumeArgs collects n arguments, each fully raw (not expanded), in
// declaration order.
func (e *Expander) ConsumeArgs(n int) ([][]mathast.Token, error) {
	args := make([][]mathast.Token, n)
	for i := range args {
		// Ignore spaces between arguments.
		if err := e.ConsumeSpaces(); err != nil {
			return nil, err
		}
		arg, err := e.ConsumeArg()
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

// IsDefined reports whether name is bound as a macro.
func (e *Expander) IsDefined(name string) bool {
	return e.ns.IsDefined(name)
}

// IsExpandable reports whether name would expand when pulled.
func (e *Expander) IsExpandable(name string) bool {
	def := e.ns.Get(name)
	return def != nil
}

// getExpansion resolves a definition into replacement tokens, retokenizing
// string bodies.
func (e *Expander) getExpansion(name string) (*Expansion, error) {
	def := e.ns.Get(name)
	if def == nil {
		return nil, nil
	}

	if def.Func != nil {
		exp, err := def.Func(e)
		if err != nil {
			return nil, err
		}
		return &exp, nil
	}

	if def.Tokens != nil {
		return &Expansion{Tokens: def.Tokens, NumArgs: def.NumArgs}, nil
	}

	numArgs := def.NumArgs
	if numArgs == 0 && strings.Contains(def.Body, "#") {
		stripped := strings.ReplaceAll(def.Body, "##", "")
		for strings.Contains(stripped, "#"+digit(numArgs+1)) {
			numArgs++
		}
	}

	bodyLexer := lexer.New(mathast.NewInput(def.Body), e.reporter)
	var tokens []mathast.Token
	for {
		tok, err := bodyLexer.Lex()
		if err != nil {
			return nil, err
		}
		if tok.Text.String() == "EOF" {
			break
		}
		tokens = append(tokens, tok)
	}
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return &Expansion{Tokens: tokens, NumArgs: numArgs}, nil
}

func digit(n int) string {
	return string(rune('0' + n))
}

// ExpandOnce tries one expansion step. When the next token is a bound,
// expandable macro, it is replaced on the stack by its expansion and
// (true, zero Token) is returned. Otherwise the token itself is returned
// with expanded == false, already popped from the stream. With
// expandableOnly set, primitives flagged unexpandable are passed through.
func (e *Expander) ExpandOnce(expandableOnly bool) (bool, mathast.Token, error) {
	topToken, err := e.PopToken()
	if err != nil {
		return false, mathast.Token{}, err
	}

	name := topToken.Text.String()
	var expansion *Expansion
	if !topToken.NoExpand && !topToken.TreatAsRelax {
		expansion, err = e.getExpansion(name)
		if err != nil {
			return false, mathast.Token{}, err
		}
	}

	if expansion == nil || (expandableOnly && expansion.Unexpandable) {
		if expandableOnly && expansion == nil &&
			strings.HasPrefix(name, "\\") && !e.IsDefined(name) {
			return false, mathast.Token{}, mathast.ParseErrorAt(
				mathast.UndefinedControlSequence{Name: name}, &topToken)
		}
		return false, topToken, nil
	}

	if err := e.countExpansion(1); err != nil {
		return false, mathast.Token{}, err
	}

	tokens := expansion.Tokens
	if expansion.NumArgs > 0 {
		args, err := e.ConsumeArgs(expansion.NumArgs)
		if err != nil {
			return false, mathast.Token{}, err
		}

		// Substitute #n in the (reversed) body. Scanning backwards, a
		// parameter appears as "#" at i with its digit at i-1; inserted
		// argument tokens land above the cursor and are never rescanned.
		tokens = append([]mathast.Token(nil), tokens...)
		for i := len(tokens) - 1; i >= 0; i-- {
			if tokens[i].Text.String() != "#" {
				continue
			}
			if i == 0 {
				return false, mathast.Token{}, mathast.ParseErrorAt(
					mathast.ExpectedToken{Expected: "macro parameter", Found: "#"},
					&tokens[i])
			}
			i--
			next := tokens[i].Text.String()
			switch {
			case next == "#":
				// ## collapses to a literal #.
				tokens = append(tokens[:i+1], tokens[i+2:]...)
			case len(next) == 1 && next[0] >= '1' && next[0] <= '9':
				arg := args[next[0]-'1']
				replaced := make([]mathast.Token, 0, len(tokens)-2+len(arg))
				replaced = append(replaced, tokens[:i]...)
				replaced = append(replaced, arg...)
				replaced = append(replaced, tokens[i+2:]...)
				tokens = replaced
			default:
				return false, mathast.Token{}, mathast.ParseErrorAt(
					mathast.ExpectedToken{Expected: "macro parameter number", Found: "#" + next},
					&tokens[i])
			}
		}

		if err := e.countExpansion(len(tokens)); err != nil {
			return false, mathast.Token{}, err
		}
	}

	e.PushTokens(tokens)
	return true, mathast.Token{}, nil
}

// ExpandNextToken pulls the next fully expanded token. Tokens flagged
// treat-as-relax surface as \relax.
func (e *Expander) ExpandNextToken() (mathast.Token, error) {
	for {
		expanded, tok, err := e.ExpandOnce(false)
		if err != nil {
			return mathast.Token{}, err
		}
		if !expanded {
			if tok.TreatAsRelax {
				tok.Text = mathast.LiteralText("\\relax")
			}
			return tok, nil
		}
	}
}

// ExpandMacroAsText fully expands a macro by name and returns the
// concatenated token text. Used for arguments that want raw text, such as
// \href URLs built from macros.
func (e *Expander) ExpandMacroAsText(name string, loc *mathast.SourceRange) (string, error) {
	exp, err := e.getExpansion(name)
	if err != nil {
		return "", err
	}
	if exp == nil {
		return "", mathast.ParseErrorAtLoc(mathast.UndefinedControlSequence{Name: name}, loc)
	}
	var b strings.Builder
	for i := len(exp.Tokens) - 1; i >= 0; i-- {
		b.WriteString(exp.Tokens[i].Text.String())
	}
	return b.String(), nil
}

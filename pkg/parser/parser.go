// Package parser turns the macro-expanded token stream into the typed parse
// tree. It is a recursive-descent parser: an expression is a sequence of
// atoms, an atom is a symbol, a group or a function invocation, and each
// atom may carry superscripts, subscripts and limit controls. Functions and
// environments are resolved through registries populated at init time.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gotexmath/pkg/lexer"
	"github.com/yaklabco/gotexmath/pkg/macro"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/symbols"
	"github.com/yaklabco/gotexmath/pkg/units"
)

// endOfExpression are the tokens that terminate an expression without being
// consumed by it.
var endOfExpression = map[string]bool{
	"}":          true,
	"\\endgroup": true,
	"\\end":      true,
	"\\right":    true,
	"&":          true,
}

var (
	colorRe = regexp.MustCompile(`^(#[a-fA-F0-9]{3}|#[a-fA-F0-9]{6}|[a-zA-Z]+)$`)
	sizeRe  = regexp.MustCompile(`^\s*([-+]?)\s*(\d+(?:\.\d*)?|\.\d+)\s*([a-z]{2})\s*$`)
	urlEsc  = regexp.MustCompile(`\\([#$%&~_^{}])`)
)

// Parser consumes the expander's token stream and builds parse nodes.
type Parser struct {
	mode     mathast.Mode
	gullet   *macro.Expander
	settings Settings

	// nextToken caches one fetched-but-unconsumed expanded token.
	nextToken *mathast.Token

	leftRightDepth int
}

// New creates a parser over input. The macros map pre-seeds the namespace on
// top of the builtin table; maxExpand bounds total macro expansion.
func New(input string, settings Settings, macros map[string]*macro.Definition, maxExpand int) *Parser {
	buf := mathast.NewInput(input)
	ns := macro.NewNamespace(macro.Builtins, macros)
	return &Parser{
		mode:     mathast.ModeMath,
		gullet:   macro.NewExpander(buf, ns, settings, mathast.ModeMath, maxExpand),
		settings: settings,
	}
}

// Settings returns the render settings slice the parser was created with.
func (p *Parser) Settings() Settings { return p.settings }

// Gullet returns the macro expander, for handlers that define macros or
// read raw tokens.
func (p *Parser) Gullet() *macro.Expander { return p.gullet }

// Mode returns the current parsing mode.
func (p *Parser) Mode() mathast.Mode { return p.mode }

// SwitchMode changes the parsing mode, keeping the expander in sync.
func (p *Parser) SwitchMode(mode mathast.Mode) {
	p.mode = mode
	p.gullet.SwitchMode(mode)
}

// InLeftRight reports whether parsing is inside a \left...\right pair.
func (p *Parser) InLeftRight() bool { return p.leftRightDepth > 0 }

// BeginLeftRight and EndLeftRight bracket a \left...\right body.
func (p *Parser) BeginLeftRight() { p.leftRightDepth++ }
func (p *Parser) EndLeftRight()   { p.leftRightDepth-- }

// Fetch returns the next expanded token without consuming it.
func (p *Parser) Fetch() (*mathast.Token, error) {
	if p.nextToken == nil {
		tok, err := p.gullet.ExpandNextToken()
		if err != nil {
			return nil, err
		}
		p.nextToken = &tok
	}
	return p.nextToken, nil
}

// Consume discards the fetched token.
func (p *Parser) Consume() { p.nextToken = nil }

// Expect checks that the next token is text and consumes it.
func (p *Parser) Expect(text string) error {
	tok, err := p.Fetch()
	if err != nil {
		return err
	}
	if got := tok.Text.String(); got != text {
		return mathast.ParseErrorAt(mathast.ExpectedToken{Expected: text, Found: got}, tok)
	}
	p.Consume()
	return nil
}

// ConsumeSpaces discards space tokens.
func (p *Parser) ConsumeSpaces() error {
	for {
		tok, err := p.Fetch()
		if err != nil {
			return err
		}
		if tok.Text.String() != " " {
			return nil
		}
		p.Consume()
	}
}

// Parse runs the parser over the whole input and returns the tree.
func (p *Parser) Parse() ([]mathast.Node, error) {
	// A group scopes macro definitions made during this parse.
	p.gullet.BeginGroup()
	tree, err := p.ParseExpression(false, "")
	if err != nil {
		return nil, err
	}
	if err := p.Expect("EOF"); err != nil {
		return nil, err
	}
	p.gullet.EndGroups()
	return tree, nil
}

// ParseExpression parses a sequence of atoms until an expression-ending
// token, the given break token, or (with breakOnInfix) an infix operator.
// The terminating token is left unconsumed.
func (p *Parser) ParseExpression(breakOnInfix bool, breakOnTokenText string) ([]mathast.Node, error) {
	var body []mathast.Node
	for {
		if p.mode == mathast.ModeMath {
			if err := p.ConsumeSpaces(); err != nil {
				return nil, err
			}
		}
		tok, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		text := tok.Text.String()
		if endOfExpression[text] {
			break
		}
		if breakOnTokenText != "" && text == breakOnTokenText {
			break
		}
		if text == "\\relax" {
			p.Consume()
			continue
		}
		if spec := DefaultFunctions.Get(text); spec != nil && spec.Infix && breakOnInfix {
			break
		}
		atom, err := p.parseAtom(breakOnTokenText)
		if err != nil {
			return nil, err
		}
		if atom == nil {
			break
		}
		if atom.Kind() == mathast.KindInternal {
			// Definitions and other no-output commands leave nothing behind.
			continue
		}
		body = append(body, atom)
	}
	return p.handleInfixNodes(body)
}

// handleInfixNodes rewrites an expression containing one infix operator
// (\over, \choose) into the equivalent function call over the surrounding
// halves. More than one infix at the same depth is an error.
func (p *Parser) handleInfixNodes(body []mathast.Node) ([]mathast.Node, error) {
	overIndex := -1
	var funcName string
	var token *mathast.Token
	for i, node := range body {
		inf, ok := node.(*mathast.Infix)
		if !ok {
			continue
		}
		if overIndex != -1 {
			return nil, mathast.ParseErrorAtLoc(mathast.MultipleInfixOperators{}, inf.NodeLoc())
		}
		overIndex = i
		funcName = inf.ReplaceWith
		token = inf.Token
	}
	if overIndex == -1 {
		return body, nil
	}

	numer := groupOf(body[:overIndex], p.mode)
	denom := groupOf(body[overIndex+1:], p.mode)
	node, err := p.CallFunction(funcName, token, []mathast.Node{numer, denom}, nil, "")
	if err != nil {
		return nil, err
	}
	return []mathast.Node{node}, nil
}

// groupOf wraps a node slice, leaving a lone node unwrapped.
func groupOf(nodes []mathast.Node, mode mathast.Mode) mathast.Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &mathast.OrdGroup{Info: mathast.Info{Mode: mode}, Body: nodes}
}

// parseAtom parses a base group and any superscripts, subscripts, primes
// and limit controls attached to it.
func (p *Parser) parseAtom(breakOnTokenText string) (mathast.Node, error) {
	base, err := p.parseGroup("", breakOnTokenText)
	if err != nil {
		return nil, err
	}

	// Sub/superscripts do not exist in text mode, and a no-output command
	// cannot carry them.
	if p.mode == mathast.ModeText || (base != nil && base.Kind() == mathast.KindInternal) {
		return base, nil
	}

	var superscript, subscript mathast.Node
	for {
		if err := p.ConsumeSpaces(); err != nil {
			return nil, err
		}
		tok, err := p.Fetch()
		if err != nil {
			return nil, err
		}

		switch tok.Text.String() {
		case "\\limits", "\\nolimits":
			op, ok := mathast.BaseElem(base).(*mathast.Op)
			if !ok {
				return nil, mathast.ParseErrorAt(mathast.LimitsMustFollowBase{}, tok)
			}
			op.Limits = tok.Text.String() == "\\limits"
			op.AlwaysHandleSupSub = true
			p.Consume()
			continue

		case "^":
			if superscript != nil {
				return nil, mathast.ParseErrorAt(mathast.DoubleSuperscript{}, tok)
			}
			superscript, err = p.handleSupSubscript("superscript")
			if err != nil {
				return nil, err
			}
			continue

		case "_":
			if subscript != nil {
				return nil, mathast.ParseErrorAt(mathast.DoubleSubscript{}, tok)
			}
			subscript, err = p.handleSupSubscript("subscript")
			if err != nil {
				return nil, err
			}
			continue

		case "'":
			if superscript != nil {
				return nil, mathast.ParseErrorAt(mathast.DoubleSuperscript{}, tok)
			}
			loc := tok.Loc
			p.Consume()
			primes := []mathast.Node{
				&mathast.TextOrd{Info: mathast.Info{Mode: p.mode, Loc: loc}, Text: "\\prime"},
			}
			for {
				next, err := p.Fetch()
				if err != nil {
					return nil, err
				}
				if next.Text.String() != "'" {
					break
				}
				p.Consume()
				primes = append(primes, &mathast.TextOrd{
					Info: mathast.Info{Mode: p.mode, Loc: next.Loc}, Text: "\\prime",
				})
			}
			// f'^2 folds the explicit superscript in after the primes.
			if next, err := p.Fetch(); err != nil {
				return nil, err
			} else if next.Text.String() == "^" {
				sup, err := p.handleSupSubscript("superscript")
				if err != nil {
					return nil, err
				}
				primes = append(primes, sup)
			}
			superscript = &mathast.OrdGroup{Info: mathast.Info{Mode: p.mode, Loc: loc}, Body: primes}
			continue
		}
		break
	}

	if superscript == nil && subscript == nil {
		return base, nil
	}
	if base != nil {
		if op, ok := mathast.BaseElem(base).(*mathast.Op); ok {
			op.ParentIsSupSub = true
		}
	}
	info := mathast.Info{Mode: p.mode}
	if base != nil {
		info.Loc = base.NodeLoc()
	}
	return &mathast.SupSub{Info: info, Base: base, Sup: superscript, Sub: subscript}, nil
}

// handleSupSubscript parses the group following ^ or _.
func (p *Parser) handleSupSubscript(name string) (mathast.Node, error) {
	symbolToken, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	symTok := *symbolToken
	p.Consume()
	if err := p.ConsumeSpaces(); err != nil {
		return nil, err
	}
	group, err := p.parseGroup(name, "")
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, mathast.ParseErrorAt(
			mathast.ExpectedGroupAfterSymbol{Symbol: symTok.Text.String()}, &symTok)
	}
	return group, nil
}

// ParseGroup parses a single group in the current mode: a braced group, a
// function invocation or a symbol. Returns nil when the next token starts
// none of these. name is the argument role for error messages, empty when
// parsing an expression atom.
func (p *Parser) ParseGroup(name string) (mathast.Node, error) {
	return p.parseGroup(name, "")
}

func (p *Parser) parseGroup(name string, breakOnTokenText string) (mathast.Node, error) {
	firstToken, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	firstTok := *firstToken
	text := firstTok.Text.String()

	if text == "{" || text == "\\begingroup" {
		p.Consume()
		groupEnd := "}"
		semiSimple := text == "\\begingroup"
		if semiSimple {
			groupEnd = "\\endgroup"
		}
		p.gullet.BeginGroup()
		expression, err := p.ParseExpression(false, groupEnd)
		if err != nil {
			return nil, err
		}
		lastToken, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		lastTok := *lastToken
		if err := p.Expect(groupEnd); err != nil {
			return nil, err
		}
		if err := p.gullet.EndGroup(); err != nil {
			return nil, err
		}
		loc := mathast.MergeRanges(firstTok.Loc, lastTok.Loc)
		return &mathast.OrdGroup{
			Info:       mathast.Info{Mode: p.mode, Loc: loc},
			Body:       expression,
			SemiSimple: semiSimple,
		}, nil
	}

	if text == "$" {
		return p.parseDollarGroup(&firstTok)
	}

	result, isFunction, err := p.ParseFunction(breakOnTokenText, name)
	if err != nil || isFunction {
		return result, err
	}

	sym, err := p.parseSymbol()
	if sym != nil || err != nil {
		return sym, err
	}

	if strings.HasPrefix(text, "\\") {
		return nil, mathast.ParseErrorAt(
			mathast.UndefinedControlSequence{Name: text}, &firstTok)
	}
	return nil, nil
}

// parseDollarGroup parses $...$ inside text mode, switching back to math.
func (p *Parser) parseDollarGroup(dollar *mathast.Token) (mathast.Node, error) {
	if p.mode == mathast.ModeMath {
		return nil, mathast.ParseErrorAt(mathast.UnexpectedCharacter{Character: "$"}, dollar)
	}
	p.Consume()
	outer := p.mode
	p.SwitchMode(mathast.ModeMath)
	p.gullet.BeginGroup()
	body, err := p.ParseExpression(false, "$")
	if err != nil {
		return nil, err
	}
	if err := p.Expect("$"); err != nil {
		return nil, err
	}
	if err := p.gullet.EndGroup(); err != nil {
		return nil, err
	}
	p.SwitchMode(outer)
	return &mathast.Styling{
		Info:  mathast.Info{Mode: mathast.ModeMath, Loc: dollar.Loc},
		Style: "text",
		Body:  body,
	}, nil
}

// ParseFunction tries to parse a function invocation. Returns (nil, false,
// nil) when the next token is not a registered function.
func (p *Parser) ParseFunction(breakOnTokenText string, name string) (mathast.Node, bool, error) {
	tok, err := p.Fetch()
	if err != nil {
		return nil, false, err
	}
	funcTok := *tok
	funcName := funcTok.Text.String()
	spec := DefaultFunctions.Get(funcName)
	if spec == nil {
		return nil, false, nil
	}
	p.Consume()

	if name != "" && !spec.AllowedInArgument {
		return nil, false, mathast.ParseErrorAt(
			mathast.FunctionMissingArguments{Func: funcName, Context: name}, &funcTok)
	}
	if p.mode == mathast.ModeText && !spec.AllowedInText {
		return nil, false, mathast.ParseErrorAt(
			mathast.FunctionDisallowedInMode{Func: funcName, Mode: p.mode}, &funcTok)
	}
	if p.mode == mathast.ModeMath && spec.TextOnly {
		return nil, false, mathast.ParseErrorAt(
			mathast.FunctionDisallowedInMode{Func: funcName, Mode: p.mode}, &funcTok)
	}

	args, optArgs, err := p.ParseArguments(funcName, spec.NumArgs, spec.NumOptionalArgs, spec.ArgTypes)
	if err != nil {
		return nil, false, err
	}
	res, err := p.CallFunction(funcName, &funcTok, args, optArgs, breakOnTokenText)
	return res, true, err
}

// CallFunction invokes the registered handler for name.
func (p *Parser) CallFunction(name string, token *mathast.Token, args, optArgs []mathast.Node, breakOnTokenText string) (mathast.Node, error) {
	spec := DefaultFunctions.Get(name)
	if spec == nil || spec.Handler == nil {
		return nil, mathast.NewParseError(mathast.UndefinedControlSequence{Name: name})
	}
	ctx := &FuncContext{
		Parser:           p,
		FuncName:         name,
		Token:            token,
		BreakOnTokenText: breakOnTokenText,
	}
	return spec.Handler(ctx, args, optArgs)
}

// ParseArguments collects a function's optional and required arguments.
// argTypes covers optional arguments first; missing entries parse as
// ordinary groups.
func (p *Parser) ParseArguments(funcName string, numArgs, numOptionalArgs int, argTypes []ArgType) (args, optArgs []mathast.Node, err error) {
	total := numArgs + numOptionalArgs
	for i := 0; i < total; i++ {
		argType := ArgOriginal
		if i < len(argTypes) {
			argType = argTypes[i]
		}
		isOptional := i < numOptionalArgs

		if err := p.ConsumeSpaces(); err != nil {
			return nil, nil, err
		}
		arg, err := p.parseGroupOfType("argument to '"+funcName+"'", argType, isOptional)
		if err != nil {
			return nil, nil, err
		}
		if isOptional {
			optArgs = append(optArgs, arg)
			continue
		}
		if arg == nil {
			return nil, nil, mathast.NewParseError(
				mathast.ExpectedGroupAs{Context: "argument to '" + funcName + "'"})
		}
		args = append(args, arg)
	}
	return args, optArgs, nil
}

// parseGroupOfType dispatches on the argument type.
func (p *Parser) parseGroupOfType(name string, argType ArgType, optional bool) (mathast.Node, error) {
	switch argType {
	case ArgColor:
		return p.parseColorGroup(optional)
	case ArgSize:
		return p.parseSizeGroup(optional)
	case ArgURL:
		return p.parseURLGroup(optional)
	case ArgRaw:
		str, tok, err := p.ParseStringGroup(optional)
		if err != nil || tok == nil {
			return nil, err
		}
		return &mathast.Raw{Info: mathast.Info{Mode: p.mode, Loc: tok.Loc}, Str: str}, nil
	case ArgMath, ArgText:
		return p.parseArgumentGroup(name, argType, optional)
	default:
		return p.parseArgumentGroup(name, argType, optional)
	}
}

// parseArgumentGroup parses an ordinary group argument, forcing the mode
// for math/text argument types.
func (p *Parser) parseArgumentGroup(name string, argType ArgType, optional bool) (mathast.Node, error) {
	outer := p.mode
	switch argType {
	case ArgMath:
		p.SwitchMode(mathast.ModeMath)
	case ArgText:
		p.SwitchMode(mathast.ModeText)
	}

	var result mathast.Node
	var err error
	if optional {
		result, err = p.parseOptionalGroup()
	} else {
		result, err = p.parseGroup(name, "")
	}

	if argType == ArgMath || argType == ArgText {
		p.SwitchMode(outer)
	}
	return result, err
}

// parseOptionalGroup parses a [...] group, returning nil when absent.
func (p *Parser) parseOptionalGroup() (mathast.Node, error) {
	tok, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	if tok.Text.String() != "[" {
		return nil, nil
	}
	firstTok := *tok
	p.Consume()
	p.gullet.BeginGroup()
	expression, err := p.ParseExpression(false, "]")
	if err != nil {
		return nil, err
	}
	lastToken, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	lastTok := *lastToken
	if err := p.Expect("]"); err != nil {
		return nil, err
	}
	if err := p.gullet.EndGroup(); err != nil {
		return nil, err
	}
	return &mathast.OrdGroup{
		Info: mathast.Info{Mode: p.mode, Loc: mathast.MergeRanges(firstTok.Loc, lastTok.Loc)},
		Body: expression,
	}, nil
}

// ParseStringGroup reads the raw, unexpanded token text of a braced group
// (or a bracketed one when optional). The second return is nil when an
// optional group is absent.
func (p *Parser) ParseStringGroup(optional bool) (string, *mathast.Token, error) {
	open, close := "{", "}"
	if optional {
		open, close = "[", "]"
	}
	first, err := p.Fetch()
	if err != nil {
		return "", nil, err
	}
	if got := first.Text.String(); got != open {
		if optional {
			return "", nil, nil
		}
		return "", nil, mathast.ParseErrorAt(
			mathast.ExpectedToken{Expected: open, Found: got}, first)
	}
	firstTok := *first
	p.Consume()

	var b strings.Builder
	depth := 0
	for {
		tok, err := p.gullet.PopToken()
		if err != nil {
			return "", nil, err
		}
		switch t := tok.Text.String(); t {
		case "EOF":
			return "", nil, mathast.ParseErrorAt(mathast.UnexpectedEndOfMacroArgument{}, &tok)
		case close:
			if depth == 0 {
				rt := firstTok.RangeToken(tok, mathast.LiteralText(b.String()))
				return b.String(), &rt, nil
			}
			depth--
			b.WriteString(t)
		case open:
			depth++
			b.WriteString(t)
		default:
			b.WriteString(t)
		}
	}
}

// parseColorGroup parses a raw color argument.
func (p *Parser) parseColorGroup(optional bool) (mathast.Node, error) {
	str, tok, err := p.ParseStringGroup(optional)
	if err != nil || tok == nil {
		return nil, err
	}
	color := strings.TrimSpace(str)
	if !colorRe.MatchString(color) {
		return nil, mathast.ParseErrorAt(mathast.InvalidColor{Color: color}, tok)
	}
	return &mathast.ColorToken{
		Info:  mathast.Info{Mode: p.mode, Loc: tok.Loc},
		Color: color,
	}, nil
}

// ParseSizeGroup parses a measurement argument at the current position.
// Environment handlers use it for \\[1em] row gaps.
func (p *Parser) ParseSizeGroup(optional bool) (mathast.Node, error) {
	return p.parseSizeGroup(optional)
}

// parseSizeGroup parses a measurement argument, braced or bare
// (\kern1em and \kern{1em} both work).
func (p *Parser) parseSizeGroup(optional bool) (mathast.Node, error) {
	first, err := p.Fetch()
	if err != nil {
		return nil, err
	}

	var str string
	var tok *mathast.Token
	if !optional && first.Text.String() != "{" {
		str, tok, err = p.scanBareSize()
	} else {
		str, tok, err = p.ParseStringGroup(optional)
	}
	if err != nil || tok == nil {
		return nil, err
	}

	if strings.TrimSpace(str) == "" {
		// \\[] row gaps may be blank.
		return &mathast.Size{Info: mathast.Info{Mode: p.mode, Loc: tok.Loc}, IsBlank: true}, nil
	}

	m := sizeRe.FindStringSubmatch(str)
	if m == nil {
		return nil, mathast.ParseErrorAt(mathast.InvalidSize{Size: str}, tok)
	}
	number, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, mathast.ParseErrorAt(mathast.InvalidSize{Size: str}, tok)
	}
	if m[1] == "-" {
		number = -number
	}
	unit := m[3]
	if !units.ValidUnit(unit) {
		return nil, mathast.ParseErrorAt(mathast.InvalidUnit{Unit: unit}, tok)
	}
	return &mathast.Size{
		Info:  mathast.Info{Mode: p.mode, Loc: tok.Loc},
		Value: mathast.Measurement{Number: number, Unit: unit},
	}, nil
}

// scanBareSize reads an unbraced measurement token by token.
func (p *Parser) scanBareSize() (string, *mathast.Token, error) {
	var b strings.Builder
	var first, last *mathast.Token
	letters := 0
	for letters < 2 {
		tok, err := p.Fetch()
		if err != nil {
			return "", nil, err
		}
		t := tok.Text.String()
		if len(t) != 1 {
			break
		}
		c := t[0]
		isNumeric := letters == 0 && (c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-')
		isLetter := c >= 'a' && c <= 'z'
		if !isNumeric && !isLetter {
			break
		}
		if isLetter {
			letters++
		}
		b.WriteByte(c)
		cp := *tok
		if first == nil {
			first = &cp
		}
		last = &cp
		p.Consume()
	}
	if first == nil {
		cur, err := p.Fetch()
		if err != nil {
			return "", nil, err
		}
		return "", nil, mathast.ParseErrorAt(
			mathast.InvalidSize{Size: cur.Text.String()}, cur)
	}
	rt := first.RangeToken(*last, mathast.LiteralText(b.String()))
	return b.String(), &rt, nil
}

// parseURLGroup parses a raw URL argument. The comment catcode of % is
// suspended so percent escapes survive, and TeX escapes of URL-significant
// characters are unescaped.
func (p *Parser) parseURLGroup(optional bool) (mathast.Node, error) {
	p.gullet.Lexer().SetCatcode('%', lexer.CatcodeActive)
	str, tok, err := p.ParseStringGroup(optional)
	p.gullet.Lexer().SetCatcode('%', lexer.CatcodeComment)
	if err != nil || tok == nil {
		return nil, err
	}
	url := urlEsc.ReplaceAllString(str, "$1")
	return &mathast.URL{
		Info: mathast.Info{Mode: p.mode, Loc: tok.Loc},
		URL:  url,
	}, nil
}

// parseSymbol parses a single symbol (or verbatim run) from the symbol
// table, applying Unicode combining marks as accents. Returns nil when the
// next token is not a symbol.
func (p *Parser) parseSymbol() (mathast.Node, error) {
	tok, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	nucleus := *tok
	text := nucleus.Text.String()

	if strings.HasPrefix(text, "\\verb") && len(text) > 5 {
		p.Consume()
		rest := text[5:]
		star := false
		if strings.HasPrefix(rest, "*") {
			star = true
			rest = rest[1:]
		}
		_, w := utf8.DecodeRuneInString(rest)
		body := rest[w : len(rest)-w]
		return &mathast.Verb{
			Info: mathast.Info{Mode: mathast.ModeText, Loc: nucleus.Loc},
			Body: body,
			Star: star,
		}, nil
	}

	// Strip trailing combining marks before the table lookup; they attach
	// to the base symbol as accents afterward.
	base, marks := splitCombiningMarks(text)

	var node mathast.Node
	if sym, ok := symbols.Get(p.mode, base); ok {
		node = p.symbolNode(sym, base, &nucleus)
	} else {
		r, _ := utf8.DecodeRuneInString(base)
		if r < 0x80 {
			// Plain ASCII with no symbol entry: not a symbol (e.g. EOF).
			return nil, nil
		}
		code := "unknownSymbol"
		if p.mode == mathast.ModeMath {
			code = "unicodeTextInMathMode"
		}
		if p.settings != nil {
			err := p.settings.ReportNonstrict(code,
				"Unrecognized Unicode character \""+base+"\" ("+strconv.Itoa(int(r))+")",
				&nucleus)
			if err != nil {
				return nil, err
			}
		}
		info := mathast.Info{Mode: p.mode, Loc: nucleus.Loc}
		if p.mode == mathast.ModeMath {
			node = &mathast.MathOrd{Info: info, Text: base}
		} else {
			node = &mathast.TextOrd{Info: info, Text: base}
		}
	}
	p.Consume()

	for _, mark := range marks {
		mapping, ok := symbols.AccentFor(mark)
		if !ok {
			return nil, mathast.ParseErrorAt(
				mathast.UnexpectedCharacter{Character: string(mark)}, &nucleus)
		}
		label := mapping.Math
		if p.mode == mathast.ModeText {
			label = mapping.Text
		}
		node = &mathast.Accent{
			Info:     mathast.Info{Mode: p.mode, Loc: nucleus.Loc},
			Label:    label,
			IsShifty: true,
			Base:     node,
		}
	}
	return node, nil
}

// splitCombiningMarks splits a token's trailing combining diacritical marks
// (U+0300..U+036F) from its base character sequence.
func splitCombiningMarks(s string) (base, marks string) {
	i := len(s)
	for i > 0 {
		r, w := utf8.DecodeLastRuneInString(s[:i])
		if r < 0x0300 || r > 0x036f {
			break
		}
		i -= w
	}
	return s[:i], s[i:]
}

// symbolNode builds the parse node for one symbol-table entry.
func (p *Parser) symbolNode(sym symbols.Symbol, text string, tok *mathast.Token) mathast.Node {
	s := text
	if sym.Replace != "" {
		s = sym.Replace
	}
	info := mathast.Info{Mode: p.mode, Loc: tok.Loc}

	switch {
	case sym.Group.IsAtomClass():
		return &mathast.Atom{Info: info, Family: sym.Group.AtomClass(), Text: s}
	case sym.Group == symbols.GroupMathOrd:
		return &mathast.MathOrd{Info: info, Text: s}
	case sym.Group == symbols.GroupTextOrd:
		return &mathast.TextOrd{Info: info, Text: s}
	case sym.Group == symbols.GroupOpToken:
		return &mathast.Op{Info: info, Limits: true, SymbolText: s}
	case sym.Group == symbols.GroupSpacing:
		return &mathast.Spacing{Info: info, Text: text}
	default:
		// Accent tokens reaching here are not attached to a base; render
		// them as their bare character.
		return &mathast.MathOrd{Info: info, Text: s}
	}
}

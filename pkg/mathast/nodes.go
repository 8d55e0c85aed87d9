package mathast

// Atom is a single symbol carrying a TeX spacing class (bin, rel, open, ...).
type Atom struct {
	Info
	Family AtomClass
	Text   string
}

// Kind implements Node.
func (*Atom) Kind() NodeKind { return KindAtom }

// MathOrd is an ordinary math-mode symbol (letters, Greek, ...).
type MathOrd struct {
	Info
	Text string
}

// Kind implements Node.
func (*MathOrd) Kind() NodeKind { return KindMathOrd }

// TextOrd is an ordinary text-mode symbol or a math-mode digit.
type TextOrd struct {
	Info
	Text string
}

// Kind implements Node.
func (*TextOrd) Kind() NodeKind { return KindTextOrd }

// OrdGroup is a braced group {...}. SemiSimple marks \begingroup groups,
// which scope macros but not styles.
type OrdGroup struct {
	Info
	Body       []Node
	SemiSimple bool
}

// Kind implements Node.
func (*OrdGroup) Kind() NodeKind { return KindOrdGroup }

// SupSub attaches a superscript and/or subscript to a base. At most one of
// each; a second attachment to the same base is a parse error.
type SupSub struct {
	Info
	Base Node
	Sup  Node
	Sub  Node
}

// Kind implements Node.
func (*SupSub) Kind() NodeKind { return KindSupSub }

// Op is a big operator (\sum, \int, \lim, \sin ...). Either SymbolText is a
// single operator symbol, Name is a named function like "\sin", or Body
// holds an arbitrary operator expression.
type Op struct {
	Info
	Limits             bool
	AlwaysHandleSupSub bool
	SuppressBaseShift  bool
	ParentIsSupSub     bool
	SymbolText         string
	Name               string
	Body               []Node
}

// Kind implements Node.
func (*Op) Kind() NodeKind { return KindOp }

// Genfrac is a generalized fraction: numerator over denominator with an
// optional bar line and optional surrounding delimiters.
type Genfrac struct {
	Info
	Numer      Node
	Denom      Node
	HasBarLine bool
	LeftDelim  string
	RightDelim string

	// Size forces a fraction style: "auto", "display", "text", "script" or
	// "scriptscript".
	Size string

	// BarSize overrides the rule thickness when non-nil.
	BarSize *Measurement
}

// Kind implements Node.
func (*Genfrac) Kind() NodeKind { return KindGenfrac }

// Infix is a placeholder for an infix operator (\over, \choose) collected
// during expression parsing and rewritten into a Genfrac afterwards.
type Infix struct {
	Info
	ReplaceWith string
	Token       *Token
}

// Kind implements Node.
func (*Infix) Kind() NodeKind { return KindInfix }

// Sqrt is a radical with an optional index (\sqrt[3]{x}).
type Sqrt struct {
	Info
	Body  Node
	Index Node
}

// Kind implements Node.
func (*Sqrt) Kind() NodeKind { return KindSqrt }

// Mclass overrides the spacing class of its body (\mathbin, \mathrel, ...,
// and the \overset/\underset/\stackrel constructs).
type Mclass struct {
	Info

	// MClass is the DOM spacing class: "mord", "mbin", "mrel", "mopen",
	// "mclose", "mpunct" or "minner".
	MClass         string
	Body           []Node
	IsCharacterBox bool
}

// Kind implements Node.
func (*Mclass) Kind() NodeKind { return KindMclass }

// LeftRight is a \left...\right balanced delimiter pair.
type LeftRight struct {
	Info
	Body  []Node
	Left  string
	Right string
}

// Kind implements Node.
func (*LeftRight) Kind() NodeKind { return KindLeftRight }

// Middle is a \middle delimiter inside a \left...\right pair.
type Middle struct {
	Info
	Delim string
}

// Kind implements Node.
func (*Middle) Kind() NodeKind { return KindMiddle }

// DelimSizing is an explicitly sized delimiter (\bigl, \Bigr, ...).
type DelimSizing struct {
	Info

	// Size ranges 1 (\big) to 4 (\Bigg).
	Size int

	// MClass is "mopen", "mclose", "mrel" or "mord" depending on the
	// command variant.
	MClass string
	Delim  string
}

// Kind implements Node.
func (*DelimSizing) Kind() NodeKind { return KindDelimSizing }

// AlignSpec describes one column of an array environment.
type AlignSpec struct {
	// Align is "l", "c" or "r"; empty for separator columns.
	Align string

	// Separator is "|" for a rule column, empty otherwise.
	Separator string
}

// Array is a matrix/array/cases environment body: rows of cells with
// per-column alignment.
type Array struct {
	Info
	ColSeparationType   string
	HSkipBeforeAndAfter bool
	Cols                []AlignSpec
	Body                [][]Node
	RowGaps             []*Measurement
}

// Kind implements Node.
func (*Array) Kind() NodeKind { return KindArray }

// Text is a \text{...} (or font-variant) group parsed in text mode.
type Text struct {
	Info
	Body []Node

	// Font is the text font command that produced the group ("\text",
	// "\textbf", ...), empty for plain \text.
	Font string
}

// Kind implements Node.
func (*Text) Kind() NodeKind { return KindText }

// Color renders its body in a color (\color, \textcolor).
type Color struct {
	Info
	Color string
	Body  []Node
}

// Kind implements Node.
func (*Color) Kind() NodeKind { return KindColor }

// Rule is a \rule box with explicit width and height.
type Rule struct {
	Info
	Shift  *Measurement
	Width  Measurement
	Height Measurement
}

// Kind implements Node.
func (*Rule) Kind() NodeKind { return KindRule }

// Kern is an explicit horizontal space (\kern, \mkern).
type Kern struct {
	Info
	Dimension Measurement
}

// Kind implements Node.
func (*Kern) Kind() NodeKind { return KindKern }

// Spacing is a named spacing command (\, \; \quad, control space, ~).
type Spacing struct {
	Info
	Text string
}

// Kind implements Node.
func (*Spacing) Kind() NodeKind { return KindSpacing }

// Accent places an accent over a base (\hat, \tilde, text accents).
type Accent struct {
	Info
	Label      string
	IsStretchy bool
	IsShifty   bool
	Base       Node
}

// Kind implements Node.
func (*Accent) Kind() NodeKind { return KindAccent }

// Phantom renders its body invisibly while keeping its full size.
type Phantom struct {
	Info
	Body []Node
}

// Kind implements Node.
func (*Phantom) Kind() NodeKind { return KindPhantom }

// HPhantom keeps only the width of its body.
type HPhantom struct {
	Info
	Body Node
}

// Kind implements Node.
func (*HPhantom) Kind() NodeKind { return KindHPhantom }

// VPhantom keeps only the height of its body.
type VPhantom struct {
	Info
	Body Node
}

// Kind implements Node.
func (*VPhantom) Kind() NodeKind { return KindVPhantom }

// Styling switches math style (\displaystyle, \textstyle, ...) for the rest
// of the enclosing group.
type Styling struct {
	Info

	// Style is "display", "text", "script" or "scriptscript".
	Style string
	Body  []Node
}

// Kind implements Node.
func (*Styling) Kind() NodeKind { return KindStyling }

// Sizing switches font size (\tiny ... \Huge) for the rest of the enclosing
// group.
type Sizing struct {
	Info

	// Size is the 1-based index into the size table (1 = \tiny, 6 =
	// \normalsize, 11 = \HUGE).
	Size int
	Body []Node
}

// Kind implements Node.
func (*Sizing) Kind() NodeKind { return KindSizing }

// Verb is a \verb|...| verbatim run rendered in monospace.
type Verb struct {
	Info
	Body string
	Star bool
}

// Kind implements Node.
func (*Verb) Kind() NodeKind { return KindVerb }

// Href wraps its body in a hyperlink. Only built when the trust policy
// allows the URL.
type Href struct {
	Info
	Href string
	Body []Node
}

// Kind implements Node.
func (*Href) Kind() NodeKind { return KindHref }

// Size is a parsed size argument (\kern dimension, \rule box, row gaps).
// Argument-only: it never appears in the finished tree.
type Size struct {
	Info
	Value   Measurement
	IsBlank bool
}

// Kind implements Node.
func (*Size) Kind() NodeKind { return KindSize }

// ColorToken is a parsed color argument. Argument-only.
type ColorToken struct {
	Info
	Color string
}

// Kind implements Node.
func (*ColorToken) Kind() NodeKind { return KindColorToken }

// URL is a parsed URL argument (\href, \url). Argument-only.
type URL struct {
	Info
	URL string
}

// Kind implements Node.
func (*URL) Kind() NodeKind { return KindURL }

// Raw is a raw string argument. Argument-only.
type Raw struct {
	Info
	Str string
}

// Kind implements Node.
func (*Raw) Kind() NodeKind { return KindRaw }

// Internal marks a command that produced no output, such as a macro
// definition. The parser drops it from the expression.
type Internal struct {
	Info
}

// Kind implements Node.
func (*Internal) Kind() NodeKind { return KindInternal }

// Package style models TeX's eight math styles: display, text, script and
// scriptscript, each with a cramped variant. Styles govern the size and
// spacing of sub-expressions; transitions (superscript, fraction numerator,
// cramping) are table-driven as in the TeXbook.
package style

// Style is one of the eight math styles. Values are ordered so that larger
// IDs mean smaller rendering.
type Style struct {
	// ID is the style's index: 0,1 display; 2,3 text; 4,5 script; 6,7
	// scriptscript. Odd IDs are the cramped variants.
	ID int

	// Size is the style's size class: 0 display, 1 text, 2 script,
	// 3 scriptscript. Used to select font metrics.
	Size int

	// Cramped styles suppress superscript raising.
	Cramped bool
}

// The eight styles.
var (
	Display      = &Style{ID: 0, Size: 0}
	DisplayCramp = &Style{ID: 1, Size: 0, Cramped: true}
	Text         = &Style{ID: 2, Size: 1}
	TextCramp    = &Style{ID: 3, Size: 1, Cramped: true}
	Script       = &Style{ID: 4, Size: 2}
	ScriptCramp  = &Style{ID: 5, Size: 2, Cramped: true}
	ScriptScript = &Style{ID: 6, Size: 3}
	SScriptCramp = &Style{ID: 7, Size: 3, Cramped: true}
)

var styles = []*Style{
	Display, DisplayCramp,
	Text, TextCramp,
	Script, ScriptCramp,
	ScriptScript, SScriptCramp,
}

// Transition tables, indexed by style ID. Values per the TeXbook, Appendix G.
var (
	sup     = []int{4, 5, 4, 5, 6, 7, 6, 7}
	sub     = []int{5, 5, 5, 5, 7, 7, 7, 7}
	fracNum = []int{2, 3, 4, 5, 6, 7, 6, 7}
	fracDen = []int{3, 3, 5, 5, 7, 7, 7, 7}
	cramp   = []int{1, 1, 3, 3, 5, 5, 7, 7}
	text    = []int{0, 1, 2, 3, 2, 3, 2, 3}
)

// Sup returns the style of a superscript in this style.
func (s *Style) Sup() *Style { return styles[sup[s.ID]] }

// Sub returns the style of a subscript in this style.
func (s *Style) Sub() *Style { return styles[sub[s.ID]] }

// FracNum returns the style of a fraction numerator in this style.
func (s *Style) FracNum() *Style { return styles[fracNum[s.ID]] }

// FracDen returns the style of a fraction denominator in this style.
func (s *Style) FracDen() *Style { return styles[fracDen[s.ID]] }

// Cramp returns the cramped variant of this style.
func (s *Style) Cramp() *Style { return styles[cramp[s.ID]] }

// Text returns the style used for relative "em"/"ex" measurements: the
// text-style variant at the same crampedness.
func (s *Style) Text() *Style { return styles[text[s.ID]] }

// IsTight reports whether the style uses tight (script-size) spacing.
func (s *Style) IsTight() bool { return s.Size >= 2 }

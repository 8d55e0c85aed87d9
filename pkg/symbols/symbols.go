// Package symbols holds the static symbol table: the mapping from
// (mode, symbol name) to font, atom group and optional Unicode replacement.
// The table is built once at package initialization from generated data and
// is read-only during rendering.
package symbols

import (
	"sort"

	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// Font identifies which symbol font a symbol comes from.
type Font uint8

// Symbol fonts.
const (
	FontMain Font = iota
	FontAMS
)

// Group classifies a symbol: either one of TeX's atom classes or a
// non-atom lexical role.
type Group uint8

// Symbol groups.
const (
	GroupMathOrd Group = iota
	GroupTextOrd
	GroupBin
	GroupRel
	GroupOpen
	GroupClose
	GroupPunct
	GroupInner
	GroupOpToken
	GroupSpacing
	GroupAccentToken
)

// IsAtomClass reports whether the group maps onto a TeX atom class for
// spacing purposes.
func (g Group) IsAtomClass() bool {
	switch g {
	case GroupBin, GroupRel, GroupOpen, GroupClose, GroupPunct, GroupInner:
		return true
	default:
		return false
	}
}

// AtomClass converts an atom group into its mathast class. Only valid when
// IsAtomClass is true; other groups report ordinary.
func (g Group) AtomClass() mathast.AtomClass {
	switch g {
	case GroupBin:
		return mathast.AtomBin
	case GroupRel:
		return mathast.AtomRel
	case GroupOpen:
		return mathast.AtomOpen
	case GroupClose:
		return mathast.AtomClose
	case GroupPunct:
		return mathast.AtomPunct
	case GroupInner:
		return mathast.AtomInner
	default:
		return mathast.AtomOrd
	}
}

// Symbol is one entry of the symbol table.
type Symbol struct {
	Font  Font
	Group Group

	// Replace is the Unicode character emitted for the symbol, empty when
	// the symbol name is its own character.
	Replace string
}

var table = map[mathast.Mode]map[string]Symbol{
	mathast.ModeMath: {},
	mathast.ModeText: {},
}

func defineSymbol(mode mathast.Mode, font Font, group Group, replace, name string) {
	table[mode][name] = Symbol{Font: font, Group: group, Replace: replace}
}

// Get looks up a symbol by mode and name.
func Get(mode mathast.Mode, name string) (Symbol, bool) {
	s, ok := table[mode][name]
	return s, ok
}

// IsDefined reports whether name is a symbol in the given mode.
func IsDefined(mode mathast.Mode, name string) bool {
	_, ok := table[mode][name]
	return ok
}

// Names returns every symbol name defined in the given mode, sorted.
func Names(mode mathast.Mode) []string {
	names := make([]string, 0, len(table[mode]))
	for name := range table[mode] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDefinedInAnyMode reports whether name is a symbol in math or text mode.
// Used by the startup check that no built-in macro shadows a symbol.
func IsDefinedInAnyMode(name string) bool {
	return IsDefined(mathast.ModeMath, name) || IsDefined(mathast.ModeText, name)
}

// AccentMapping is the text/math command pair a Unicode combining mark
// decomposes into.
type AccentMapping struct {
	Text string
	Math string
}

// unicodeAccents maps combining diacritical marks (U+0300..U+036F) to the
// accent commands that produce them.
var unicodeAccents = map[rune]AccentMapping{
	0x0300: {Text: "\\`", Math: "\\grave"},
	0x0301: {Text: "\\'", Math: "\\acute"},
	0x0302: {Text: "\\^", Math: "\\hat"},
	0x0303: {Text: "\\~", Math: "\\tilde"},
	0x0304: {Text: "\\=", Math: "\\bar"},
	0x0306: {Text: "\\u", Math: "\\breve"},
	0x0307: {Text: "\\.", Math: "\\dot"},
	0x0308: {Text: "\\\"", Math: "\\ddot"},
	0x030A: {Text: "\\r", Math: "\\mathring"},
	0x030C: {Text: "\\v", Math: "\\check"},
}

// AccentFor returns the accent commands for a combining mark.
func AccentFor(mark rune) (AccentMapping, bool) {
	m, ok := unicodeAccents[mark]
	return m, ok
}

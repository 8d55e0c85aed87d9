package metrics

// CharacterMetrics describes a single glyph in a font family.
type CharacterMetrics struct {
	Depth  float64
	Height float64
	Italic float64
	Skew   float64
	Width  float64
}

// characterMetrics is keyed by font family, then codepoint. The table is a
// generated extract of the upstream font data covering the glyphs the
// default symbol set can produce; missing entries fall back to a nominal
// box via CharacterMetricsFor.
var characterMetrics = map[string]map[rune]CharacterMetrics{
	"Main-Regular": mainRegular,
	"Main-Italic":  mainItalic,
	"Math-Italic":  mathItalic,
	"Typewriter-Regular": {
		// Typewriter glyphs are monospaced; one entry stands for all.
		'a': {Height: 0.61111, Width: 0.525},
	},
}

var nominalBox = CharacterMetrics{Depth: 0, Height: 0.68333, Width: 0.5}

// CharacterMetricsFor looks up metrics for a character in a font family.
// The second return is false when the glyph is not in the table; callers
// then receive a nominal box so layout can proceed.
func CharacterMetricsFor(ch rune, fontFamily string) (CharacterMetrics, bool) {
	family, ok := characterMetrics[fontFamily]
	if !ok {
		return nominalBox, false
	}
	m, ok := family[ch]
	if !ok {
		return nominalBox, false
	}
	return m, true
}

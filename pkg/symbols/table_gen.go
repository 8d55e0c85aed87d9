package symbols

import "github.com/yaklabco/gotexmath/pkg/mathast"

// The default symbol set, a generated extract of the upstream symbol data.
// Relations, binary operators, delimiters, Greek letters, big operators and
// the punctuation both modes share.

func init() {
	math := mathast.ModeMath
	text := mathast.ModeText

	// Relations.
	defineSymbol(math, FontMain, GroupRel, "=", "=")
	defineSymbol(math, FontMain, GroupRel, "<", "<")
	defineSymbol(math, FontMain, GroupRel, ">", ">")
	defineSymbol(math, FontMain, GroupRel, ":", ":")
	defineSymbol(math, FontMain, GroupRel, "≤", "\\le")
	defineSymbol(math, FontMain, GroupRel, "≤", "\\leq")
	defineSymbol(math, FontMain, GroupRel, "≥", "\\ge")
	defineSymbol(math, FontMain, GroupRel, "≥", "\\geq")
	defineSymbol(math, FontMain, GroupRel, "≠", "\\ne")
	defineSymbol(math, FontMain, GroupRel, "≠", "\\neq")
	defineSymbol(math, FontMain, GroupRel, "≈", "\\approx")
	defineSymbol(math, FontMain, GroupRel, "≡", "\\equiv")
	defineSymbol(math, FontMain, GroupRel, "∈", "\\in")
	defineSymbol(math, FontMain, GroupRel, "⊂", "\\subset")
	defineSymbol(math, FontMain, GroupRel, "⊆", "\\subseteq")
	defineSymbol(math, FontMain, GroupRel, "←", "\\leftarrow")
	defineSymbol(math, FontMain, GroupRel, "→", "\\rightarrow")
	defineSymbol(math, FontMain, GroupRel, "→", "\\to")
	defineSymbol(math, FontMain, GroupRel, "⇒", "\\Rightarrow")
	defineSymbol(math, FontMain, GroupRel, "⇐", "\\Leftarrow")
	defineSymbol(math, FontMain, GroupRel, "↦", "\\mapsto")
	defineSymbol(math, FontMain, GroupRel, "∼", "\\sim")
	defineSymbol(math, FontMain, GroupRel, "∝", "\\propto")
	defineSymbol(math, FontMain, GroupRel, "⊢", "\\vdash")
	defineSymbol(math, FontMain, GroupRel, "⊩", "\\Vdash")
	defineSymbol(math, FontMain, GroupRel, "⟺", "\\Longleftrightarrow")
	defineSymbol(math, FontMain, GroupRel, "∉", "\\notin")
	defineSymbol(math, FontMain, GroupRel, "∋", "\\ni")

	// Binary operators.
	defineSymbol(math, FontMain, GroupBin, "+", "+")
	defineSymbol(math, FontMain, GroupBin, "−", "-")
	defineSymbol(math, FontMain, GroupBin, "∗", "*")
	defineSymbol(math, FontMain, GroupBin, "±", "\\pm")
	defineSymbol(math, FontMain, GroupBin, "∓", "\\mp")
	defineSymbol(math, FontMain, GroupBin, "×", "\\times")
	defineSymbol(math, FontMain, GroupBin, "÷", "\\div")
	defineSymbol(math, FontMain, GroupBin, "⋅", "\\cdot")
	defineSymbol(math, FontMain, GroupBin, "∘", "\\circ")
	defineSymbol(math, FontMain, GroupBin, "∪", "\\cup")
	defineSymbol(math, FontMain, GroupBin, "∩", "\\cap")
	defineSymbol(math, FontMain, GroupBin, "∨", "\\vee")
	defineSymbol(math, FontMain, GroupBin, "∧", "\\wedge")
	defineSymbol(math, FontMain, GroupBin, "⊕", "\\oplus")
	defineSymbol(math, FontMain, GroupBin, "⊗", "\\otimes")
	defineSymbol(math, FontMain, GroupBin, "∖", "\\setminus")

	// Open and close delimiters.
	defineSymbol(math, FontMain, GroupOpen, "(", "(")
	defineSymbol(math, FontMain, GroupOpen, "[", "[")
	defineSymbol(math, FontMain, GroupOpen, "{", "\\lbrace")
	defineSymbol(math, FontMain, GroupOpen, "⟨", "\\langle")
	defineSymbol(math, FontMain, GroupOpen, "⌊", "\\lfloor")
	defineSymbol(math, FontMain, GroupOpen, "⌈", "\\lceil")
	defineSymbol(math, FontMain, GroupClose, ")", ")")
	defineSymbol(math, FontMain, GroupClose, "]", "]")
	defineSymbol(math, FontMain, GroupClose, "}", "\\rbrace")
	defineSymbol(math, FontMain, GroupClose, "⟩", "\\rangle")
	defineSymbol(math, FontMain, GroupClose, "⌋", "\\rfloor")
	defineSymbol(math, FontMain, GroupClose, "⌉", "\\rceil")
	defineSymbol(math, FontMain, GroupMathOrd, "∣", "\\vert")
	defineSymbol(math, FontMain, GroupMathOrd, "∣", "|")
	defineSymbol(math, FontMain, GroupMathOrd, "∥", "\\Vert")
	defineSymbol(math, FontMain, GroupMathOrd, "∥", "\\|")
	defineSymbol(math, FontMain, GroupMathOrd, "\\", "\\backslash")
	defineSymbol(math, FontMain, GroupMathOrd, "/", "/")

	// Punctuation.
	defineSymbol(math, FontMain, GroupPunct, ",", ",")
	defineSymbol(math, FontMain, GroupPunct, ";", ";")
	defineSymbol(math, FontMain, GroupInner, "…", "\\ldots")
	defineSymbol(math, FontMain, GroupInner, "⋯", "\\cdots")
	defineSymbol(math, FontMain, GroupInner, "⋱", "\\ddots")
	defineSymbol(math, FontMain, GroupMathOrd, "⋮", "\\vdots")

	// Ordinary symbols.
	defineSymbol(math, FontMain, GroupMathOrd, "∞", "\\infty")
	defineSymbol(math, FontMain, GroupMathOrd, "√", "\\surd")
	defineSymbol(math, FontMain, GroupMathOrd, "′", "\\prime")
	defineSymbol(math, FontMain, GroupMathOrd, "∂", "\\partial")
	defineSymbol(math, FontMain, GroupMathOrd, "∇", "\\nabla")
	defineSymbol(math, FontMain, GroupMathOrd, "∅", "\\emptyset")
	defineSymbol(math, FontMain, GroupMathOrd, "ℏ", "\\hbar")
	defineSymbol(math, FontMain, GroupMathOrd, "ℓ", "\\ell")
	defineSymbol(math, FontMain, GroupMathOrd, "℘", "\\wp")
	defineSymbol(math, FontMain, GroupMathOrd, "ℜ", "\\Re")
	defineSymbol(math, FontMain, GroupMathOrd, "ℑ", "\\Im")
	defineSymbol(math, FontMain, GroupMathOrd, "¬", "\\neg")
	defineSymbol(math, FontMain, GroupMathOrd, "∀", "\\forall")
	defineSymbol(math, FontMain, GroupMathOrd, "∃", "\\exists")
	defineSymbol(math, FontMain, GroupMathOrd, "ı", "\\imath")
	defineSymbol(math, FontMain, GroupMathOrd, "ȷ", "\\jmath")

	// Greek lowercase.
	greekLower := []struct{ name, ch string }{
		{"\\alpha", "α"}, {"\\beta", "β"}, {"\\gamma", "γ"},
		{"\\delta", "δ"}, {"\\epsilon", "ϵ"}, {"\\varepsilon", "ε"},
		{"\\zeta", "ζ"}, {"\\eta", "η"}, {"\\theta", "θ"},
		{"\\vartheta", "ϑ"}, {"\\iota", "ι"}, {"\\kappa", "κ"},
		{"\\lambda", "λ"}, {"\\mu", "μ"}, {"\\nu", "ν"},
		{"\\xi", "ξ"}, {"\\omicron", "ο"}, {"\\pi", "π"},
		{"\\varpi", "ϖ"}, {"\\rho", "ρ"}, {"\\varrho", "ϱ"},
		{"\\sigma", "σ"}, {"\\varsigma", "ς"}, {"\\tau", "τ"},
		{"\\upsilon", "υ"}, {"\\phi", "ϕ"}, {"\\varphi", "φ"},
		{"\\chi", "χ"}, {"\\psi", "ψ"}, {"\\omega", "ω"},
	}
	for _, g := range greekLower {
		defineSymbol(math, FontMain, GroupMathOrd, g.ch, g.name)
	}

	// Greek uppercase.
	greekUpper := []struct{ name, ch string }{
		{"\\Gamma", "Γ"}, {"\\Delta", "Δ"}, {"\\Theta", "Θ"},
		{"\\Lambda", "Λ"}, {"\\Xi", "Ξ"}, {"\\Pi", "Π"},
		{"\\Sigma", "Σ"}, {"\\Upsilon", "Υ"}, {"\\Phi", "Φ"},
		{"\\Psi", "Ψ"}, {"\\Omega", "Ω"},
	}
	for _, g := range greekUpper {
		defineSymbol(math, FontMain, GroupMathOrd, g.ch, g.name)
	}

	// Big operators (op-token symbols; rendered with limits in display).
	bigOps := []struct{ name, ch string }{
		{"\\sum", "∑"}, {"\\prod", "∏"}, {"\\coprod", "∐"},
		{"\\int", "∫"}, {"\\iint", "∬"}, {"\\iiint", "∭"},
		{"\\oint", "∮"}, {"\\oiint", "∯"}, {"\\oiiint", "∰"},
		{"\\bigcup", "⋃"}, {"\\bigcap", "⋂"}, {"\\bigoplus", "⨁"},
		{"\\bigotimes", "⨂"}, {"\\bigvee", "⋁"}, {"\\bigwedge", "⋀"},
	}
	for _, g := range bigOps {
		defineSymbol(math, FontMain, GroupOpToken, g.ch, g.name)
	}

	// Accent tokens.
	accents := []struct{ name, ch string }{
		{"\\hat", "^"}, {"\\tilde", "~"}, {"\\bar", "ˉ"},
		{"\\grave", "ˋ"}, {"\\acute", "ˊ"}, {"\\dot", "˙"},
		{"\\ddot", "¨"}, {"\\breve", "˘"}, {"\\check", "ˇ"},
		{"\\vec", "⃗"}, {"\\mathring", "˚"},
	}
	for _, g := range accents {
		defineSymbol(math, FontMain, GroupAccentToken, g.ch, g.name)
	}

	// Text-mode accent tokens.
	textAccents := []struct{ name, ch string }{
		{"\\'", "ˊ"}, {"\\`", "ˋ"}, {"\\^", "ˆ"}, {"\\~", "˜"},
		{"\\=", "ˉ"}, {"\\\"", "¨"}, {"\\.", "˙"}, {"\\u", "˘"},
		{"\\v", "ˇ"}, {"\\r", "˚"},
	}
	for _, g := range textAccents {
		defineSymbol(text, FontMain, GroupAccentToken, g.ch, g.name)
	}

	// Digits are textords in both modes; Latin letters are mathords in
	// math mode and textords in text mode.
	for ch := '0'; ch <= '9'; ch++ {
		defineSymbol(math, FontMain, GroupTextOrd, "", string(ch))
		defineSymbol(text, FontMain, GroupTextOrd, "", string(ch))
	}
	for _, span := range []struct{ lo, hi rune }{{'a', 'z'}, {'A', 'Z'}} {
		for ch := span.lo; ch <= span.hi; ch++ {
			defineSymbol(math, FontMain, GroupMathOrd, "", string(ch))
			defineSymbol(text, FontMain, GroupTextOrd, "", string(ch))
		}
	}

	// Characters shared by both modes with their literal glyph.
	for _, ch := range []string{
		"!", "?", "@", ".", "'", "‘", "’", "“", "”",
	} {
		defineSymbol(math, FontMain, GroupTextOrd, "", ch)
		defineSymbol(text, FontMain, GroupTextOrd, "", ch)
	}
	for _, ch := range []string{
		",", ";", "-", "(", ")", "[", "]", "<", ">", "=", "+", "*", "/", ":",
	} {
		defineSymbol(text, FontMain, GroupTextOrd, "", ch)
	}

	// Spacing symbols. The glue commands carry no replacement; builders map
	// them to fixed widths.
	for _, name := range []string{"\\,", "\\:", "\\;", "\\!", "\\enspace"} {
		defineSymbol(math, FontMain, GroupSpacing, "", name)
	}
	defineSymbol(text, FontMain, GroupSpacing, "", "\\,")
	defineSymbol(text, FontMain, GroupSpacing, "", "\\enspace")
	defineSymbol(math, FontMain, GroupSpacing, " ", "~")
	defineSymbol(math, FontMain, GroupSpacing, " ", "\\ ")
	defineSymbol(math, FontMain, GroupSpacing, " ", "\\nobreakspace")
	defineSymbol(text, FontMain, GroupSpacing, " ", "~")
	defineSymbol(text, FontMain, GroupSpacing, " ", "\\ ")
	defineSymbol(text, FontMain, GroupSpacing, " ", " ")
	defineSymbol(math, FontMain, GroupSpacing, "", " ")

	// Escaped specials. \{ and \} are delimiters in math mode.
	defineSymbol(math, FontMain, GroupOpen, "{", "\\{")
	defineSymbol(math, FontMain, GroupClose, "}", "\\}")
	defineSymbol(text, FontMain, GroupTextOrd, "{", "\\{")
	defineSymbol(text, FontMain, GroupTextOrd, "}", "\\}")
	for _, pair := range []struct{ name, ch string }{
		{"\\$", "$"}, {"\\%", "%"}, {"\\_", "_"}, {"\\#", "#"}, {"\\&", "&"},
		{"\\textasciitilde", "~"}, {"\\textbackslash", "\\"},
	} {
		defineSymbol(math, FontMain, GroupTextOrd, pair.ch, pair.name)
		defineSymbol(text, FontMain, GroupTextOrd, pair.ch, pair.name)
	}
}

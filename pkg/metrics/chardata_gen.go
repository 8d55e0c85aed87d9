package metrics

// Generated extract of glyph metrics for the default fonts. Values follow
// the Computer Modern tables; heights and depths are in ems at design size.

var mainRegular = map[rune]CharacterMetrics{
	'!': {Height: 0.69444, Width: 0.27778},
	'(': {Depth: 0.25, Height: 0.75, Width: 0.38889},
	')': {Depth: 0.25, Height: 0.75, Width: 0.38889},
	'+': {Depth: 0.08333, Height: 0.58333, Width: 0.77778},
	',': {Depth: 0.19444, Height: 0.10556, Width: 0.27778},
	'-': {Height: 0.44444, Width: 0.33333},
	'.': {Height: 0.10556, Width: 0.27778},
	'/': {Depth: 0.25, Height: 0.75, Width: 0.5},
	'0': {Height: 0.64444, Width: 0.5},
	'1': {Height: 0.64444, Width: 0.5},
	'2': {Height: 0.64444, Width: 0.5},
	'3': {Height: 0.64444, Width: 0.5},
	'4': {Height: 0.64444, Width: 0.5},
	'5': {Height: 0.64444, Width: 0.5},
	'6': {Height: 0.64444, Width: 0.5},
	'7': {Height: 0.64444, Width: 0.5},
	'8': {Height: 0.64444, Width: 0.5},
	'9': {Height: 0.64444, Width: 0.5},
	':': {Height: 0.43056, Width: 0.27778},
	';': {Depth: 0.19444, Height: 0.43056, Width: 0.27778},
	'<': {Depth: 0.0391, Height: 0.5391, Width: 0.77778},
	'=': {Depth: -0.13313, Height: 0.36687, Width: 0.77778},
	'>': {Depth: 0.0391, Height: 0.5391, Width: 0.77778},
	'?': {Height: 0.69444, Width: 0.47222},
	'A': {Height: 0.68333, Width: 0.75},
	'B': {Height: 0.68333, Width: 0.70834},
	'C': {Height: 0.68333, Width: 0.72222},
	'D': {Height: 0.68333, Width: 0.76389},
	'E': {Height: 0.68333, Width: 0.68056},
	'F': {Height: 0.68333, Width: 0.65278},
	'G': {Height: 0.68333, Width: 0.78472},
	'H': {Height: 0.68333, Width: 0.75},
	'I': {Height: 0.68333, Width: 0.36111},
	'J': {Height: 0.68333, Width: 0.51389},
	'K': {Height: 0.68333, Width: 0.77778},
	'L': {Height: 0.68333, Width: 0.625},
	'M': {Height: 0.68333, Width: 0.91667},
	'N': {Height: 0.68333, Width: 0.75},
	'O': {Height: 0.68333, Width: 0.77778},
	'P': {Height: 0.68333, Width: 0.68056},
	'Q': {Depth: 0.19444, Height: 0.68333, Width: 0.77778},
	'R': {Height: 0.68333, Width: 0.73611},
	'S': {Height: 0.68333, Width: 0.55556},
	'T': {Height: 0.68333, Width: 0.72222},
	'U': {Height: 0.68333, Width: 0.75},
	'V': {Height: 0.68333, Italic: 0.01389, Width: 0.75},
	'W': {Height: 0.68333, Italic: 0.01389, Width: 1.02778},
	'X': {Height: 0.68333, Width: 0.75},
	'Y': {Height: 0.68333, Italic: 0.025, Width: 0.75},
	'Z': {Height: 0.68333, Width: 0.61111},
	'[': {Depth: 0.25, Height: 0.75, Width: 0.27778},
	']': {Depth: 0.25, Height: 0.75, Width: 0.27778},
	'a': {Height: 0.43056, Width: 0.5},
	'b': {Height: 0.69444, Width: 0.55556},
	'c': {Height: 0.43056, Width: 0.44445},
	'd': {Height: 0.69444, Width: 0.55556},
	'e': {Height: 0.43056, Width: 0.44445},
	'f': {Height: 0.69444, Italic: 0.07778, Width: 0.30556},
	'g': {Depth: 0.19444, Height: 0.43056, Italic: 0.01389, Width: 0.5},
	'h': {Height: 0.69444, Width: 0.55556},
	'i': {Height: 0.66786, Width: 0.27778},
	'j': {Depth: 0.19444, Height: 0.66786, Width: 0.30556},
	'k': {Height: 0.69444, Width: 0.52778},
	'l': {Height: 0.69444, Width: 0.27778},
	'm': {Height: 0.43056, Width: 0.83334},
	'n': {Height: 0.43056, Width: 0.55556},
	'o': {Height: 0.43056, Width: 0.5},
	'p': {Depth: 0.19444, Height: 0.43056, Width: 0.55556},
	'q': {Depth: 0.19444, Height: 0.43056, Width: 0.52778},
	'r': {Height: 0.43056, Width: 0.39167},
	's': {Height: 0.43056, Width: 0.39445},
	't': {Height: 0.61508, Width: 0.38889},
	'u': {Height: 0.43056, Width: 0.55556},
	'v': {Height: 0.43056, Italic: 0.01389, Width: 0.52778},
	'w': {Height: 0.43056, Italic: 0.01389, Width: 0.72222},
	'x': {Height: 0.43056, Width: 0.52778},
	'y': {Depth: 0.19444, Height: 0.43056, Italic: 0.01389, Width: 0.52778},
	'z': {Height: 0.43056, Width: 0.44445},
	'{': {Depth: 0.25, Height: 0.75, Width: 0.5},
	'|': {Depth: 0.25, Height: 0.75, Width: 0.27778},
	'}': {Depth: 0.25, Height: 0.75, Width: 0.5},
	'±': {Depth: 0.08333, Height: 0.58333, Width: 0.77778},
	'×': {Depth: 0.08333, Height: 0.58333, Width: 0.77778},
	'÷': {Depth: 0.08333, Height: 0.58333, Width: 0.77778},
	'−': {Depth: 0.08333, Height: 0.58333, Width: 0.77778},
	'⋅': {Depth: -0.05555, Height: 0.44445, Width: 0.27778},
	'∑': {Depth: 0.25001, Height: 0.75001, Width: 1.05556},
	'∏': {Depth: 0.25001, Height: 0.75001, Width: 0.94445},
	'∫': {Depth: 0.80556, Height: 0.80556, Italic: 0.19445, Width: 0.47222},
	'∞': {Height: 0.43056, Width: 1.0},
	'≤': {Depth: 0.13597, Height: 0.63597, Width: 0.77778},
	'≥': {Depth: 0.13597, Height: 0.63597, Width: 0.77778},
	'≠': {Depth: 0.25, Height: 0.75, Width: 0.77778},
	'←': {Depth: 0.011, Height: 0.511, Width: 1.0},
	'→': {Depth: 0.011, Height: 0.511, Width: 1.0},
	'⇒': {Depth: 0.011, Height: 0.525, Width: 1.0},
}

var mainItalic = map[rune]CharacterMetrics{
	'a': {Height: 0.43056, Italic: 0.00354, Width: 0.51111},
	'e': {Height: 0.43056, Italic: 0.00354, Width: 0.46111},
	'f': {Depth: 0.19444, Height: 0.69444, Italic: 0.13292, Width: 0.30556},
	'x': {Height: 0.43056, Italic: 0.00354, Width: 0.49445},
}

var mathItalic = map[rune]CharacterMetrics{
	'A': {Height: 0.68333, Width: 0.75},
	'a': {Height: 0.43056, Width: 0.52859},
	'b': {Height: 0.69444, Width: 0.42917},
	'f': {Depth: 0.19444, Height: 0.69444, Italic: 0.10764, Width: 0.48986},
	'x': {Height: 0.43056, Width: 0.57153},
	'y': {Depth: 0.19444, Height: 0.43056, Italic: 0.03588, Width: 0.49028},
	'α': {Height: 0.43056, Width: 0.63287},
	'β': {Depth: 0.19444, Height: 0.69444, Width: 0.56618},
	'γ': {Depth: 0.19444, Height: 0.43056, Width: 0.51773},
	'δ': {Height: 0.69444, Width: 0.44444},
	'ω': {Height: 0.43056, Width: 0.62245},
	'π': {Height: 0.43056, Width: 0.57003},
}

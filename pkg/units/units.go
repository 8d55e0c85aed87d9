// Package units converts TeX length literals into CSS em values and formats
// em lengths canonically. Absolute units go through a fixed points-per-unit
// table scaled by the active font's points-per-em; relative units resolve
// against the current font metrics.
package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/metrics"
	"github.com/yaklabco/gotexmath/pkg/options"
)

// ptPerUnit gives TeX points per unit for the absolute TeX units.
var ptPerUnit = map[string]float64{
	"pt": 1.0,             // TeX point
	"mm": 7227.0 / 2540.0, // millimeter
	"cm": 7227.0 / 254.0,  // centimeter
	"in": 72.27,           // inch
	"bp": 803.0 / 800.0,   // big (PostScript) point
	"px": 803.0 / 800.0,   // \pdfpxdimen defaults to 1bp
	"pc": 12.0,            // pica
	"dd": 1238.0 / 1157.0, // didot
	"cc": 14856.0 / 1157.0, // cicero
	"nd": 685.0 / 642.0,   // new didot
	"nc": 1370.0 / 107.0,  // new cicero
	"sp": 1.0 / 65536.0,   // scaled point
}

// ValidUnit reports whether unit is a length unit the renderer understands.
func ValidUnit(unit string) bool {
	if _, ok := ptPerUnit[unit]; ok {
		return true
	}
	return unit == "ex" || unit == "em" || unit == "mu"
}

// CalculateSize converts a measurement into CSS ems under the given
// rendering context. ex/em resolve against the text-style metrics even in
// tight styles, with a compensating multiplier applied afterwards.
func CalculateSize(size mathast.Measurement, opts *options.Options) (float64, error) {
	var scale float64

	switch {
	case ptPerUnit[size.Unit] != 0:
		// Absolute units: unit -> pt -> em, then unscale to current size.
		m := opts.FontMetrics()
		scale = ptPerUnit[size.Unit] / m.PtPerEm / opts.SizeMultiplier

	case size.Unit == "mu":
		// mu scales with scriptstyle/scriptscriptstyle.
		scale = opts.FontMetrics().CSSEmPerMu

	default:
		// Other relative units always refer to the textstyle font in the
		// current size.
		unitOpts := opts
		if opts.Style.IsTight() {
			unitOpts = opts.HavingStyle(opts.Style.Text())
		}

		var m *metrics.FontMetrics = unitOpts.FontMetrics()
		switch size.Unit {
		case "ex":
			scale = m.XHeight
		case "em":
			scale = m.Quad
		default:
			return 0, mathast.NewParseError(mathast.InvalidUnit{Unit: size.Unit})
		}

		if unitOpts != opts {
			scale *= unitOpts.SizeMultiplier / opts.SizeMultiplier
		}
	}

	return math.Min(size.Number*scale, opts.MaxSize), nil
}

// MakeEm formats a float as a CSS em length: rounded to 4 decimal digits,
// trailing zeros trimmed, negative zero normalized to "0".
func MakeEm(n float64) string {
	s := strconv.FormatFloat(n, 'f', 4, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" || s == "" {
		s = "0"
	}
	return s + "em"
}

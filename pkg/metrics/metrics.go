// Package metrics exposes the static font metric tables the builders and
// units conversion consume. The tables are generated from upstream font data
// by an out-of-band build step and are read-only after initialization.
package metrics

// FontMetrics holds the per-size-class global metrics (TeX's sigmas and
// xis) the layout algorithms need.
type FontMetrics struct {
	XHeight              float64
	Quad                 float64
	AxisHeight           float64
	DefaultRuleThickness float64
	Num1                 float64
	Denom1               float64
	SupShift             float64
	SubShift             float64

	// PtPerEm is the design size: TeX points per em at this size class.
	PtPerEm float64

	// CSSEmPerMu converts math units to CSS ems (quad / 18).
	CSSEmPerMu float64
}

// Global metrics by size class: 0 = text size, 1 = script, 2 = scriptscript.
// Values derive from the Computer Modern font tables.
var fontMetricsBySizeIndex = [3]FontMetrics{
	{
		XHeight:              0.431,
		Quad:                 1.0,
		AxisHeight:           0.25,
		DefaultRuleThickness: 0.04,
		Num1:                 0.677,
		Denom1:               0.686,
		SupShift:             0.413,
		SubShift:             0.15,
		PtPerEm:              10.0,
		CSSEmPerMu:           1.0 / 18.0,
	},
	{
		XHeight:              0.431,
		Quad:                 1.171,
		AxisHeight:           0.25,
		DefaultRuleThickness: 0.049,
		Num1:                 0.732,
		Denom1:               0.752,
		SupShift:             0.503,
		SubShift:             0.143,
		PtPerEm:              10.0,
		CSSEmPerMu:           1.171 / 18.0,
	},
	{
		XHeight:              0.431,
		Quad:                 1.472,
		AxisHeight:           0.25,
		DefaultRuleThickness: 0.049,
		Num1:                 0.925,
		Denom1:               1.025,
		SupShift:             0.504,
		SubShift:             0.139,
		PtPerEm:              10.0,
		CSSEmPerMu:           1.472 / 18.0,
	},
}

// GlobalMetrics returns the global metrics for a style size class
// (0 display, 1 text, 2 script, 3 scriptscript).
func GlobalMetrics(sizeClass int) *FontMetrics {
	switch {
	case sizeClass <= 0:
		return &fontMetricsBySizeIndex[0]
	case sizeClass == 1:
		return &fontMetricsBySizeIndex[0]
	case sizeClass == 2:
		return &fontMetricsBySizeIndex[1]
	default:
		return &fontMetricsBySizeIndex[2]
	}
}

package mathast

// Measurement is a TeX length literal: a number paired with a unit such as
// "pt", "em" or "mu". Conversion to CSS ems lives in pkg/units.
type Measurement struct {
	Number float64
	Unit   string
}

package mathast

//go:generate stringer -type=Mode -trimprefix=Mode

// Mode identifies the TeX parsing mode a token or node belongs to.
type Mode uint8

// The two TeX modes the parser distinguishes. Math mode is the default;
// text mode is entered by commands such as \text.
const (
	ModeMath Mode = iota
	ModeText
)

// String returns the lowercase mode name used in error messages.
func (m Mode) String() string {
	if m == ModeText {
		return "text"
	}
	return "math"
}

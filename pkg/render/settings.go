package render

import (
	"math"

	"github.com/yaklabco/gotexmath/internal/logging"
	"github.com/yaklabco/gotexmath/pkg/macro"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/parser"
)

// Severity is a strict-mode decision for one non-fatal condition.
type Severity uint8

// Strict-mode severities. Warn is the zero value, so an unset Settings
// logs incompatibilities rather than hiding them.
const (
	// Warn continues and logs the condition.
	Warn Severity = iota

	// Ignore continues silently.
	Ignore

	// Error escalates the condition to a fatal parse error.
	Error
)

// StrictFunc decides the severity of one strictness-gated condition. The
// code identifies the condition machine-readably ("commentAtEnd",
// "mathVsTextUnits"); message is the human-readable form.
type StrictFunc func(code, message string, tok *mathast.Token) Severity

// TrustFunc decides whether one trust-gated command (\href, \url) may emit
// its output.
type TrustFunc func(ctx parser.TrustContext) bool

// Settings configures one render call. The zero value renders inline math
// with warnings logged, nothing trusted, and the default expansion and size
// limits.
type Settings struct {
	// Display typesets in display style and centers the output.
	Display bool

	// Strict is the blanket severity for strictness-gated conditions.
	Strict Severity

	// StrictFn, when non-nil, decides severity per condition and takes
	// precedence over Strict.
	StrictFn StrictFunc

	// Trust permits all trust-gated commands.
	Trust bool

	// TrustFn, when non-nil, decides trust per command and takes precedence
	// over Trust.
	TrustFn TrustFunc

	// Macros pre-seeds the macro namespace. Definitions made by \gdef during
	// the render are written back, so a shared map persists macros across
	// calls.
	Macros map[string]*macro.Definition

	// MaxSize caps user-specified sizes, in ems. Zero means unlimited.
	MaxSize float64

	// MaxExpand bounds total macro expansions per render. Zero means the
	// default of 1000.
	MaxExpand int

	// MinRuleThickness is a lower bound on fraction-bar and rule
	// thicknesses, in ems.
	MinRuleThickness float64
}

const defaultMaxExpand = 1000

func (s *Settings) maxSize() float64 {
	if s.MaxSize <= 0 {
		return math.Inf(1)
	}
	return s.MaxSize
}

func (s *Settings) maxExpand() int {
	if s.MaxExpand <= 0 {
		return defaultMaxExpand
	}
	return s.MaxExpand
}

// DisplayMode reports whether the input is typeset in display style.
func (s *Settings) DisplayMode() bool { return s.Display }

// IsTrusted decides whether a trust-gated command may run.
func (s *Settings) IsTrusted(ctx parser.TrustContext) bool {
	if s.TrustFn != nil {
		return s.TrustFn(ctx)
	}
	return s.Trust
}

// ReportNonstrict routes a strictness-gated condition through the strict
// policy. A non-nil return is a fatal parse error the caller must propagate.
func (s *Settings) ReportNonstrict(code, message string, tok *mathast.Token) error {
	severity := s.Strict
	if s.StrictFn != nil {
		severity = s.StrictFn(code, message, tok)
	}
	switch severity {
	case Error:
		return mathast.ParseErrorAt(mathast.StrictModeError{ErrMessage: message, Code: code}, tok)
	case Warn:
		logging.Default().Warn("LaTeX-incompatible input",
			logging.FieldCode, code, logging.FieldMessage, message)
	}
	return nil
}

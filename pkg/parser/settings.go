package parser

import (
	"github.com/yaklabco/gotexmath/pkg/lexer"
)

// TrustContext describes a command that wants to emit potentially unsafe
// output, so the trust policy can decide per command and URL.
type TrustContext struct {
	// Command is the control sequence asking for trust ("\\href", "\\url").
	Command string

	// URL is the raw URL argument.
	URL string

	// Protocol is the lowercased URL scheme, "_relative" for relative URLs.
	Protocol string
}

// Settings is the slice of the render configuration the parser consumes.
// render.Settings implements it; defining the interface here keeps the
// dependency arrow pointing from render to parser.
type Settings interface {
	lexer.StrictReporter

	// DisplayMode reports whether the input is typeset in display style.
	DisplayMode() bool

	// IsTrusted decides whether a trust-gated command may run.
	IsTrusted(ctx TrustContext) bool
}

// Package render is the public entry point of the math renderer. It wires
// the lexing, expansion, parsing and tree-building packages together under a
// caller-supplied Settings and serializes the result to markup.
package render

import (
	"strings"

	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/style"

	// Importing functions populates the parser and builder registries.
	_ "github.com/yaklabco/gotexmath/pkg/functions"
)

// Parse parses input into a tree without building output. Callers that want
// markup use RenderMathML, RenderHTML or RenderToString instead.
func Parse(input string, settings *Settings) ([]mathast.Node, error) {
	if settings == nil {
		settings = &Settings{}
	}
	p := parser.New(input, settings, settings.Macros, settings.maxExpand())
	return p.Parse()
}

// rootOptions builds the initial rendering context for one call.
func rootOptions(settings *Settings) *options.Options {
	st := style.Text
	if settings.Display {
		st = style.Display
	}
	return options.New(st, settings.maxSize(), settings.MinRuleThickness)
}

// RenderMathML renders input to a <math> element with the TeX source
// embedded as an annotation.
func RenderMathML(input string, settings *Settings) (string, error) {
	if settings == nil {
		settings = &Settings{}
	}
	tree, err := Parse(input, settings)
	if err != nil {
		return "", err
	}
	math, err := mathmlbuild.BuildTree(tree, input, rootOptions(settings), settings.Display)
	if err != nil {
		return "", err
	}
	return math.Markup(), nil
}

// RenderHTML renders input to the visual span tree's markup.
func RenderHTML(input string, settings *Settings) (string, error) {
	if settings == nil {
		settings = &Settings{}
	}
	tree, err := Parse(input, settings)
	if err != nil {
		return "", err
	}
	span, err := htmlbuild.BuildTree(tree, rootOptions(settings), settings.Display)
	if err != nil {
		return "", err
	}
	return span.Markup(), nil
}

// RenderToString renders input to a single span holding both trees: the
// MathML element for accessibility tools and the visual tree, hidden from
// them, for display. Both are built from one parse.
func RenderToString(input string, settings *Settings) (string, error) {
	if settings == nil {
		settings = &Settings{}
	}
	tree, err := Parse(input, settings)
	if err != nil {
		return "", err
	}
	opts := rootOptions(settings)
	math, err := mathmlbuild.BuildTree(tree, input, opts, settings.Display)
	if err != nil {
		return "", err
	}
	htmlNode, err := htmlbuild.BuildHTMLNode(tree, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if settings.Display {
		b.WriteString(`<span class="katex-display">`)
	}
	b.WriteString(`<span class="katex"><span class="katex-mathml">`)
	b.WriteString(math.Markup())
	b.WriteString(`</span>`)
	b.WriteString(htmlNode.Markup())
	b.WriteString(`</span>`)
	if settings.Display {
		b.WriteString(`</span>`)
	}
	return b.String(), nil
}

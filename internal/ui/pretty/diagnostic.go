package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// FormatRenderError formats a failed render for terminal output. Parse
// errors with position information get a source excerpt with a caret run
// under the offending span; anything else prints as a plain error line.
func (s *Styles) FormatRenderError(err error) string {
	var parseErr *mathast.ParseError
	if !errors.As(err, &parseErr) {
		return s.Error.Render("error") + " " + s.Message.Render(err.Error()) + "\n"
	}
	return s.FormatParseError(parseErr)
}

// FormatParseError formats one parse error with caret context.
func (s *Styles) FormatParseError(err *mathast.ParseError) string {
	var builder strings.Builder

	builder.WriteString(s.Error.Render("error"))
	builder.WriteString("  ")
	builder.WriteString(s.Message.Render(err.Kind.Message()))
	if err.Start >= 0 {
		builder.WriteString("  ")
		builder.WriteString(s.Location.Render(fmt.Sprintf("at position %d", err.Start+1)))
	}
	builder.WriteString("\n")

	if err.Start >= 0 && err.Input != "" {
		builder.WriteString(s.formatSourceContext(err.Input, err.Start, err.End))
	}
	return builder.String()
}

// formatSourceContext renders the line holding the span with carets under
// the offending characters.
func (s *Styles) formatSourceContext(input string, start, end int) string {
	if start > len(input) {
		start = len(input)
	}
	if end > len(input) {
		end = len(input)
	}
	if end < start {
		end = start
	}

	// Clamp to the line containing the span start.
	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := len(input)
	if nl := strings.IndexByte(input[lineStart:], '\n'); nl >= 0 {
		lineEnd = lineStart + nl
	}
	if end > lineEnd {
		end = lineEnd
	}

	const indent = "        "
	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(input[lineStart:lineEnd]) + "\n")

	// One caret per rune of the span; at least one so zero-width spans
	// (e.g. unexpected EOF) still point somewhere.
	pad := strings.Repeat(" ", len([]rune(input[lineStart:start])))
	carets := len([]rune(input[start:end]))
	if carets == 0 {
		carets = 1
	}
	builder.WriteString(indent + pad + s.Caret.Render(strings.Repeat("^", carets)) + "\n")
	return builder.String()
}

package pretty

import (
	"fmt"
	"strings"
)

// ScanSummary aggregates the outcome of one document scan run.
type ScanSummary struct {
	// Files is the number of Markdown files scanned.
	Files int

	// Rendered is the number of math segments rendered.
	Rendered int

	// Failed is the number of files aborted by a render error.
	Failed int
}

// FormatScanSummary formats a run summary for terminal output.
func (s *Styles) FormatScanSummary(summary ScanSummary) string {
	var builder strings.Builder
	builder.WriteString(s.Bold.Render("Summary") + "\n")
	builder.WriteString(fmt.Sprintf("  %s %d\n", s.Dim.Render("files:"), summary.Files))
	builder.WriteString(fmt.Sprintf("  %s %d\n", s.Dim.Render("rendered:"), summary.Rendered))
	if summary.Failed > 0 {
		builder.WriteString("  " + s.Error.Render(fmt.Sprintf("failed: %d", summary.Failed)) + "\n")
	} else {
		builder.WriteString("  " + s.Success.Render("all math rendered") + "\n")
	}
	return builder.String()
}

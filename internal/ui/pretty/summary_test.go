package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gotexmath/internal/ui/pretty"
)

func TestFormatScanSummary_AllRendered(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatScanSummary(pretty.ScanSummary{Files: 3, Rendered: 12})
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "files: 3")
	assert.Contains(t, out, "rendered: 12")
	assert.Contains(t, out, "all math rendered")
	assert.NotContains(t, out, "failed")
}

func TestFormatScanSummary_Failures(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatScanSummary(pretty.ScanSummary{Files: 2, Rendered: 5, Failed: 1})
	assert.Contains(t, out, "failed: 1")
	assert.NotContains(t, out, "all math rendered")
}

package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gotexmath/internal/ui/pretty"
)

func TestFormatTable_Rows(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)

	out := formatter.FormatTable([]pretty.CommandRow{
		{Name: "\\alpha", Kind: "symbol", Modes: "math", Detail: "α"},
		{Name: "\\frac", Kind: "function", Modes: "math", Detail: "2 args"},
	})
	assert.Contains(t, out, "COMMAND")
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "\\alpha")
	assert.Contains(t, out, "function")
	assert.Contains(t, out, "2 commands")
}

func TestFormatTable_SeparatorBoundedByTerminalWidth(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 20)

	out := formatter.FormatTable([]pretty.CommandRow{
		{Name: "\\sum", Kind: "symbol", Modes: "math", Detail: "∑"},
	})
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "-") {
			assert.LessOrEqual(t, len(line), 20)
		}
	}
}

func TestFormatTable_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	assert.Empty(t, formatter.FormatTable(nil))
}

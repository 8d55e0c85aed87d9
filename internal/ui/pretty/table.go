package pretty

import (
	"fmt"
	"strings"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minNameWidth     = 16
	minKindWidth     = 12
	minDetailWidth   = 20
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// CommandRow is one listed command: a symbol, function or environment.
type CommandRow struct {
	// Name is the control sequence or environment name.
	Name string

	// Kind is "symbol", "function" or "environment".
	Kind string

	// Modes lists the modes the command is valid in ("math", "text",
	// "math, text").
	Modes string

	// Detail is kind-specific: the rendered character for symbols, the
	// argument count for functions.
	Detail string
}

// TableFormatter formats command listings as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats command rows as a styled table.
func (t *TableFormatter) FormatTable(rows []CommandRow) string {
	if len(rows) == 0 {
		return ""
	}

	nameWidth, kindWidth, detailWidth := t.columnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(nameWidth, kindWidth, detailWidth))
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, nameWidth, kindWidth, detailWidth))
	}
	builder.WriteString(t.styles.Dim.Render(fmt.Sprintf("%d commands", len(rows))) + "\n")
	return builder.String()
}

func (t *TableFormatter) columnWidths(rows []CommandRow) (int, int, int) {
	nameWidth, kindWidth, detailWidth := minNameWidth, minKindWidth, minDetailWidth
	for _, row := range rows {
		if w := len(row.Name); w > nameWidth {
			nameWidth = w
		}
		if w := len(row.Kind); w > kindWidth {
			kindWidth = w
		}
		if w := len([]rune(row.Detail)); w > detailWidth {
			detailWidth = w
		}
	}
	return nameWidth, kindWidth, detailWidth
}

func (t *TableFormatter) formatHeader(nameWidth, kindWidth, detailWidth int) string {
	pad := strings.Repeat(" ", tablePadding)
	header := fmt.Sprintf("%-*s%s%-*s%s%-*s%s%s",
		nameWidth, "COMMAND", pad,
		kindWidth, "KIND", pad,
		detailWidth, "DETAIL", pad,
		"MODES")
	separator := strings.Repeat(lightSeparator, min(len(header), t.termWidth))
	return t.styles.TableHeader.Render(header) + "\n" +
		t.styles.TableSeparator.Render(separator) + "\n"
}

func (t *TableFormatter) formatRow(row CommandRow, nameWidth, kindWidth, detailWidth int) string {
	pad := strings.Repeat(" ", tablePadding)
	detailPad := strings.Repeat(" ", max(detailWidth-len([]rune(row.Detail)), 0))
	return fmt.Sprintf("%s%s%-*s%s%s%s%s%s\n",
		t.styles.TableCommand.Render(fmt.Sprintf("%-*s", nameWidth, row.Name)), pad,
		kindWidth, row.Kind, pad,
		row.Detail, detailPad, pad,
		t.styles.TableMode.Render(row.Modes))
}

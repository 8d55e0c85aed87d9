package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gotexmath/internal/ui/pretty"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/symbols"

	// Importing functions populates the parser registries being listed.
	_ "github.com/yaklabco/gotexmath/pkg/functions"
)

// symbolsFlags holds CLI flags for the symbols command.
type symbolsFlags struct {
	kind   string
	filter string
}

func newSymbolsCommand(color *string) *cobra.Command {
	flags := &symbolsFlags{}

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List supported commands, symbols and environments",
		Long: `List every control sequence the renderer understands: symbol table
entries, registered functions, and environments.

Examples:
  gotexmath symbols                    # everything
  gotexmath symbols --kind functions   # functions only
  gotexmath symbols --filter arrow     # names containing "arrow"`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSymbols(flags, *color)
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", "all",
		"listing kind: all, symbols, functions, environments")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "only names containing this substring")

	return cmd
}

func runSymbols(flags *symbolsFlags, color string) error {
	var rows []pretty.CommandRow
	switch flags.kind {
	case "all":
		rows = append(rows, symbolRows()...)
		rows = append(rows, functionRows()...)
		rows = append(rows, environmentRows()...)
	case "symbols":
		rows = symbolRows()
	case "functions":
		rows = functionRows()
	case "environments":
		rows = environmentRows()
	default:
		return fmt.Errorf("unknown kind %q: want all, symbols, functions or environments", flags.kind)
	}

	if flags.filter != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if strings.Contains(row.Name, flags.filter) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	colorEnabled := pretty.IsColorEnabled(color, os.Stdout)
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	formatter := pretty.NewTableFormatter(pretty.NewStyles(colorEnabled), width)
	fmt.Print(formatter.FormatTable(rows))
	return nil
}

func symbolRows() []pretty.CommandRow {
	var rows []pretty.CommandRow
	textNames := make(map[string]bool)
	for _, name := range symbols.Names(mathast.ModeText) {
		textNames[name] = true
	}

	for _, name := range symbols.Names(mathast.ModeMath) {
		modes := "math"
		if textNames[name] {
			modes = "math, text"
			delete(textNames, name)
		}
		sym, _ := symbols.Get(mathast.ModeMath, name)
		rows = append(rows, pretty.CommandRow{
			Name:   name,
			Kind:   "symbol",
			Modes:  modes,
			Detail: sym.Replace,
		})
	}
	for _, name := range symbols.Names(mathast.ModeText) {
		if !textNames[name] {
			continue
		}
		sym, _ := symbols.Get(mathast.ModeText, name)
		rows = append(rows, pretty.CommandRow{
			Name:   name,
			Kind:   "symbol",
			Modes:  "text",
			Detail: sym.Replace,
		})
	}
	return rows
}

func functionRows() []pretty.CommandRow {
	var rows []pretty.CommandRow
	for _, name := range parser.DefaultFunctions.Names() {
		spec := parser.DefaultFunctions.Get(name)
		modes := "math"
		if spec.AllowedInText {
			modes = "math, text"
		}
		if spec.TextOnly {
			modes = "text"
		}
		rows = append(rows, pretty.CommandRow{
			Name:   name,
			Kind:   "function",
			Modes:  modes,
			Detail: argDetail(spec.NumArgs, spec.NumOptionalArgs),
		})
	}
	return rows
}

func environmentRows() []pretty.CommandRow {
	var rows []pretty.CommandRow
	for _, name := range parser.DefaultEnvironments.Names() {
		spec := parser.DefaultEnvironments.Get(name)
		rows = append(rows, pretty.CommandRow{
			Name:   name,
			Kind:   "environment",
			Modes:  "math",
			Detail: argDetail(spec.NumArgs, spec.NumOptionalArgs),
		})
	}
	return rows
}

func argDetail(numArgs, numOptional int) string {
	switch {
	case numArgs == 0 && numOptional == 0:
		return ""
	case numOptional == 0:
		return fmt.Sprintf("%d args", numArgs)
	default:
		return fmt.Sprintf("%d args, %d optional", numArgs, numOptional)
	}
}

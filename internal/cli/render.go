package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gotexmath/internal/configloader"
	"github.com/yaklabco/gotexmath/internal/logging"
	"github.com/yaklabco/gotexmath/internal/ui/pretty"
	"github.com/yaklabco/gotexmath/pkg/render"
)

// renderFlags holds CLI flags for the render command.
type renderFlags struct {
	display bool
	format  string
	input   string
	output  string
	strict  string
	trust   bool
}

func newRenderCommand(configPath, color *string) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [expression]",
		Short: "Render a TeX math expression to markup",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags, *configPath, *color)
		},
	}

	cmd.Flags().BoolVar(&flags.display, "display", false, "typeset in display style")
	cmd.Flags().StringVar(&flags.format, "format", "mathml",
		"output format: mathml, html, both")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "read the expression from a file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write markup to a file")
	cmd.Flags().StringVar(&flags.strict, "strict", "",
		"strict policy for LaTeX incompatibilities: ignore, warn, error")
	cmd.Flags().BoolVar(&flags.trust, "trust", false, "allow \\href and \\url output")

	return cmd
}

const renderLongDescription = `Render a TeX math expression to MathML, HTML markup, or both.

The expression comes from the argument, from --input, or from stdin.

Examples:
  gotexmath render '\frac{a}{b}'             # MathML to stdout
  gotexmath render --format html 'x^2'       # visual span tree
  gotexmath render --display '\sum_{i=0}^n'  # display style
  echo '\sqrt{2}' | gotexmath render         # read from stdin`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags, configPath, color string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyRenderFlags(cmd, flags, cfg)
	if err := configloader.Validate(cfg); err != nil {
		return err
	}

	input, err := readExpression(args, flags.input)
	if err != nil {
		return err
	}

	settings := cfg.ToSettings()
	var markup string
	switch flags.format {
	case "mathml":
		markup, err = render.RenderMathML(input, settings)
	case "html":
		markup, err = render.RenderHTML(input, settings)
	case "both":
		markup, err = render.RenderToString(input, settings)
	default:
		return fmt.Errorf("unknown format %q: want mathml, html or both", flags.format)
	}
	if err != nil {
		styles := pretty.NewStyles(pretty.IsColorEnabled(color, os.Stderr))
		fmt.Fprint(os.Stderr, styles.FormatRenderError(err))
		return err
	}

	return writeOutput(flags.output, markup+"\n")
}

// applyRenderFlags overlays explicitly-set CLI flags onto the configuration.
func applyRenderFlags(cmd *cobra.Command, flags *renderFlags, cfg *configloader.Config) {
	if cmd.Flags().Changed("display") {
		cfg.Display = flags.display
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}
	if cmd.Flags().Changed("trust") {
		cfg.Trust = flags.trust
	}
}

// readExpression resolves the input expression: argument, file, or stdin.
func readExpression(args []string, inputPath string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no expression given: pass an argument, --input, or pipe stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func writeOutput(outputPath, markup string) error {
	if outputPath == "" {
		fmt.Print(markup)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logging.Default().Debug("wrote markup", logging.FieldOutput, outputPath)
	return nil
}

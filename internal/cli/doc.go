package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotexmath/internal/configloader"
	"github.com/yaklabco/gotexmath/internal/logging"
	"github.com/yaklabco/gotexmath/internal/ui/pretty"
	"github.com/yaklabco/gotexmath/pkg/mdscan"
)

// docFlags holds CLI flags for the doc command.
type docFlags struct {
	write  bool
	output string
	trust  bool
}

func newDocCommand(configPath, color *string) *cobra.Command {
	flags := &docFlags{}

	cmd := &cobra.Command{
		Use:   "doc [files...]",
		Short: "Render math embedded in Markdown documents",
		Long:  docLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoc(cmd, args, flags, *configPath, *color)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write the result to a file (single input only)")
	cmd.Flags().BoolVar(&flags.trust, "trust", false, "allow \\href and \\url output")

	return cmd
}

const docLongDescription = `Scan Markdown documents and replace embedded math with rendered MathML.

Inline $...$ and display $$...$$ spans are rendered in place, as are fenced
code blocks with the "math" info string. All other content passes through
byte-identical.

Examples:
  gotexmath doc README.md              # result to stdout
  gotexmath doc -w docs/*.md           # rewrite in place
  gotexmath doc -o out.md notes.md     # write to a new file`

func runDoc(cmd *cobra.Command, args []string, flags *docFlags, configPath, color string) error {
	if flags.output != "" && len(args) > 1 {
		return fmt.Errorf("--output accepts a single input file, got %d", len(args))
	}
	if flags.output != "" && flags.write {
		return fmt.Errorf("--output and --write are mutually exclusive")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("trust") {
		cfg.Trust = flags.trust
	}
	if err := configloader.Validate(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scanner := mdscan.New(cfg.ToSettings())
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, os.Stderr))
	summary := pretty.ScanSummary{}
	var firstErr error

	for _, path := range args {
		rendered, err := scanFile(ctx, scanner, path, flags)
		summary.Files++
		if err != nil {
			summary.Failed++
			if firstErr == nil {
				firstErr = err
			}
			logging.Default().Error("document scan failed",
				logging.FieldPath, path, logging.FieldError, err)
			fmt.Fprint(os.Stderr, styles.FormatRenderError(err))
			continue
		}
		summary.Rendered += rendered
	}

	if flags.write || len(args) > 1 {
		fmt.Fprint(os.Stderr, styles.FormatScanSummary(summary))
	}
	return firstErr
}

// scanFile renders one document and delivers the result per the flags.
func scanFile(ctx context.Context, scanner *mdscan.Scanner, path string, flags *docFlags) (int, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	out, rendered, err := scanner.Render(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	switch {
	case flags.write:
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return rendered, fmt.Errorf("write %s: %w", path, err)
		}
	case flags.output != "":
		if err := os.WriteFile(flags.output, out, 0o644); err != nil {
			return rendered, fmt.Errorf("write %s: %w", flags.output, err)
		}
	default:
		os.Stdout.Write(out)
	}
	return rendered, nil
}

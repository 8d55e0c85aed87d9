// Package cli provides the Cobra command structure for gotexmath.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotexmath/internal/configloader"
	"github.com/yaklabco/gotexmath/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gotexmath command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gotexmath",
		Short: "A TeX math renderer producing HTML and MathML",
		Long: `gotexmath parses TeX/LaTeX math notation and renders it into HTML
markup, MathML, or both.

It supports the core TeX math grammar: macros, fractions, radicals, accents,
delimiters, matrix environments, styling and sizing commands. The doc command
scans Markdown documents and replaces embedded math with rendered MathML.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(&configPath, &color))
	rootCmd.AddCommand(newDocCommand(&configPath, &color))
	rootCmd.AddCommand(newSymbolsCommand(&color))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(configPath string) (*configloader.Config, error) {
	result, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}
	logging.SetLevel(result.Config.LogLevel)
	for _, path := range result.LoadedFrom {
		logging.Default().Debug("loaded config", logging.FieldPath, path)
	}
	return result.Config, nil
}

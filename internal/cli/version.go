package cli

import (
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gotexmath/internal/logging"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/symbols"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of gotexmath.`,
		Run: func(_ *cobra.Command, _ []string) {
			logger := log.NewWithOptions(os.Stdout, log.Options{
				ReportTimestamp: false,
				ReportCaller:    false,
			})
			logger.SetLevel(log.InfoLevel)

			logger.Info("gotexmath",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
				"go", runtime.Version(),
				"platform", runtime.GOOS+"/"+runtime.GOARCH,
			)
			logger.Info("renderer",
				"symbols", len(symbols.Names(mathast.ModeMath)),
				"functions", len(parser.DefaultFunctions.Names()),
				"environments", len(parser.DefaultEnvironments.Names()),
			)
		},
	}

	return cmd
}

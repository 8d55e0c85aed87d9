// Package main is the entry point for the gotexmath CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gotexmath/internal/cli"
	"github.com/yaklabco/gotexmath/internal/logging"
	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Parse errors were already reported with caret context by the
		// failing command.
		var parseErr *mathast.ParseError
		if !errors.As(err, &parseErr) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}
	return cli.ExitSuccess
}

package cli

import (
	"errors"

	"github.com/yaklabco/gotexmath/internal/configloader"
	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// Exit codes for gotexmath.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseError indicates the input failed to parse or render.
	ExitParseError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error to the process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var parseErr *mathast.ParseError
	if errors.As(err, &parseErr) {
		return ExitParseError
	}
	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}
	return ExitInternalError
}

package cli

import (
	"strings"

	"github.com/jmgilman/go/collection/errors"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitNotFound     = 11 // Root or entry not found
	ExitForbidden    = 12 // Permission denied
	ExitIOError      = 13 // Filesystem read failed
	ExitInvalidState = 14 // Collection invalid or closed
)

// usagePrefixes are the beginnings of the errors cobra reports for bad
// command lines.
var usagePrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch errors.GetCode(err) {
	case errors.CodeInvalidConfig:
		return ExitConfigError
	case errors.CodeNotFound:
		return ExitNotFound
	case errors.CodeForbidden:
		return ExitForbidden
	case errors.CodeIO:
		return ExitIOError
	case errors.CodeInvalidState:
		return ExitInvalidState
	case errors.CodeInvalidInput:
		return ExitUsageError
	case errors.CodeInternal:
		return ExitGeneralError
	}

	msg := err.Error()
	for _, p := range usagePrefixes {
		if strings.HasPrefix(msg, p) {
			return ExitUsageError
		}
	}
	return ExitGeneralError
}

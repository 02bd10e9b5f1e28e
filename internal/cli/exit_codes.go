package cli

import "github.com/tkhquang/relkit/internal/errors"

// Exit codes for the relkit CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure during execution.
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 2

	// ExitMissingFile indicates a required input file is missing.
	ExitMissingFile = 3

	// ExitParseError indicates an input file could not be understood.
	ExitParseError = 4
)

// exitCodeFor maps an error category to the process exit code.
func exitCodeFor(category errors.ErrorCategory) int {
	switch category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.NotFound:
		return ExitMissingFile
	case errors.Parse:
		return ExitParseError
	default:
		return ExitFailure
	}
}

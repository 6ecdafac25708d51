package cli

import (
	"github.com/ariel-frischer/toastkit/internal/cli/shared"
)

// Exit codes for the toastctl CLI (re-exported from shared)
// These codes support composition in shell scripts
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = shared.ExitSuccess

	// ExitFailure indicates the toast could not be shown or another runtime failure
	ExitFailure = shared.ExitFailure

	// ExitDismissed indicates show --wait saw the toast dismissed
	ExitDismissed = shared.ExitDismissed

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitMissingDependencies indicates the host cannot show toasts
	ExitMissingDependencies = shared.ExitMissingDependency

	// ExitTimeout indicates show --wait saw no reaction in time
	ExitTimeout = shared.ExitTimeout
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}

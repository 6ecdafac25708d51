// Package errors provides categorised, actionable errors for the toastctl
// command line. Library packages return plain wrapped errors; the CLI turns
// them into a CLIError right before printing.
package errors

import (
	"context"
	stderrors "errors"

	"github.com/ariel-frischer/toastkit/internal/toast"
)

// ErrorCategory groups errors by who has to act on them.
type ErrorCategory int

const (
	// Argument errors are fixed by changing the command line
	Argument ErrorCategory = iota
	// Configuration errors are fixed by editing a config file or environment variable
	Configuration
	// Prerequisite errors need something installed or enabled on the host
	Prerequisite
	// Runtime errors happened while showing the toast
	Runtime
)

// String returns the heading printed above the error message.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is an error with a category, optional usage line and remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument error that prints a usage line.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap gives err a category. Returns nil for a nil error.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation, Err: err}
}

// WrapWithMessage wraps err as "message: err".
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     message + ": " + err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// IsCLIError reports whether err is, or wraps, a CLIError.
func IsCLIError(err error) bool {
	var cliErr *CLIError
	return stderrors.As(err, &cliErr)
}

// AsCLIError returns the CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// FromToastError maps errors returned by toast.Show onto CLI errors with
// remediation steps. Other errors become Runtime errors.
func FromToastError(err error) *CLIError {
	switch {
	case err == nil:
		return nil
	case IsCLIError(err):
		return AsCLIError(err)
	case stderrors.Is(err, toast.ErrUnsupportedPlatform):
		return UnsupportedPlatform(err)
	case stderrors.Is(err, toast.ErrDeliveryRejected):
		return DeliveryRejected(err)
	case stderrors.Is(err, toast.ErrMalformedDocument):
		return MalformedDocument(err)
	case stderrors.Is(err, context.DeadlineExceeded):
		return Wrap(err, Runtime, "Increase listen_timeout in the configuration")
	default:
		return Wrap(err, Runtime)
	}
}

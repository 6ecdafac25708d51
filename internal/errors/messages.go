package errors

import (
	"context"
	"fmt"
	"time"
)

// ConfigFileNotFound is returned when --config names a missing file.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Check the path passed to --config",
		"Run 'toastctl config show' to see the effective configuration",
	)
}

// ConfigParseError is returned when a config file cannot be loaded or validated.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration, fmt.Sprintf("failed to load %s", path),
		"Make sure the file is valid JSON",
		"Allowed values: host auto|legacy|modern, duration short|long, post_show_delay_ms 0-10000, listen_timeout 1-3600",
	)
}

// InvalidFlagCombination is returned for flags that cannot be used together.
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination %s: %s", flags, reason),
		"Run 'toastctl show --help' for the list of flags",
	)
}

// InvalidFlagValue is returned when a flag value cannot be parsed.
func InvalidFlagValue(flag, value, usage string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid value %q for --%s", value, flag),
		usage,
	)
}

// MissingTitle is returned when neither --title nor a manifest was given.
func MissingTitle() *CLIError {
	return NewArgumentErrorWithUsage(
		"a toast needs a title",
		"toastctl show --title <text> [--text1 <text>] [--text2 <text>]",
		"Pass --title, or describe the toast in a manifest and use -f",
	)
}

// ManifestNotFound is returned when -f names a missing file.
func ManifestNotFound(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("manifest not found: %s", path),
		"Check the path passed to -f",
	)
}

// ManifestInvalid is returned when a manifest does not parse or validate.
func ManifestInvalid(path string, err error) *CLIError {
	return WrapWithMessage(err, Argument, fmt.Sprintf("invalid manifest %s", path),
		"Run 'toastctl render -f "+path+"' to check the file without showing a toast",
	)
}

// TimeoutError is returned when no toast event arrived in time.
// It wraps context.DeadlineExceeded.
func TimeoutError(timeout time.Duration, what string) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("no %s within %s", what, timeout),
		Remediation: []string{
			"The toast may have been suppressed by Focus Assist or the notification settings",
			"Increase listen_timeout in the configuration",
		},
		Err: context.DeadlineExceeded,
	}
}

// UnsupportedPlatform is returned off Windows or without PowerShell.
func UnsupportedPlatform(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite, "cannot show toasts on this host",
		"Run toastctl on Windows with powershell.exe on PATH",
		"Use 'toastctl render' to print the toast document instead",
	)
}

// DeliveryRejected is returned when the shell refused the toast.
func DeliveryRejected(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "Windows refused the toast",
		"Check that notifications are enabled for the app in Settings > System > Notifications",
		"A custom app_id must be registered with a Start menu shortcut; leave it empty to use PowerShell's id",
	)
}

// MalformedDocument is returned when the rendered document does not parse.
func MalformedDocument(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "the toast document is not valid XML",
		"Run 'toastctl render' with the same flags and report the output",
	)
}

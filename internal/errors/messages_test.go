// Package errors_test tests structured CLI error message generation and remediation steps.
// Related: internal/errors/messages.go
// Tags: errors, cli-errors, messages, remediation, error-categories
package errors

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err             *CLIError
		wantCategory    ErrorCategory
		wantInMessage   string
		wantUsage       bool
		wantRemediation bool
	}{
		"config file not found": {
			err:             ConfigFileNotFound("/path/to/config.json"),
			wantCategory:    Configuration,
			wantInMessage:   "/path/to/config.json",
			wantRemediation: true,
		},
		"config parse error": {
			err:             ConfigParseError("/path/to/config.json", &testError{}),
			wantCategory:    Configuration,
			wantInMessage:   "test error",
			wantRemediation: true,
		},
		"invalid flag combination": {
			err:           InvalidFlagCombination("--silent --sound", "silent toasts have no sound"),
			wantCategory:  Argument,
			wantInMessage: "--silent --sound",
		},
		"invalid flag value": {
			err:           InvalidFlagValue("duration", "forever", "--duration short|long"),
			wantCategory:  Argument,
			wantInMessage: "forever",
			wantUsage:     true,
		},
		"missing title": {
			err:             MissingTitle(),
			wantCategory:    Argument,
			wantInMessage:   "title",
			wantUsage:       true,
			wantRemediation: true,
		},
		"manifest not found": {
			err:           ManifestNotFound("toast.yaml"),
			wantCategory:  Argument,
			wantInMessage: "toast.yaml",
		},
		"manifest invalid": {
			err:             ManifestInvalid("toast.yaml", &testError{}),
			wantCategory:    Argument,
			wantInMessage:   "test error",
			wantRemediation: true,
		},
		"timeout": {
			err:             TimeoutError(5*time.Minute, "toast event"),
			wantCategory:    Runtime,
			wantInMessage:   "5m0s",
			wantRemediation: true,
		},
		"unsupported platform": {
			err:             UnsupportedPlatform(toast.ErrUnsupportedPlatform),
			wantCategory:    Prerequisite,
			wantInMessage:   "not supported",
			wantRemediation: true,
		},
		"delivery rejected": {
			err:             DeliveryRejected(toast.ErrDeliveryRejected),
			wantCategory:    Runtime,
			wantInMessage:   "refused",
			wantRemediation: true,
		},
		"malformed document": {
			err:             MalformedDocument(toast.ErrMalformedDocument),
			wantCategory:    Runtime,
			wantInMessage:   "malformed",
			wantRemediation: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantCategory, tc.err.Category)
			assert.Contains(t, tc.err.Message, tc.wantInMessage)
			assert.Equal(t, tc.wantUsage, tc.err.Usage != "")
			if tc.wantRemediation {
				assert.NotEmpty(t, tc.err.Remediation)
			}
		})
	}
}

func TestTimeoutError_WrapsDeadline(t *testing.T) {
	t.Parallel()

	err := TimeoutError(time.Second, "toast event")
	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "no toast event within 1s", err.Error())
}

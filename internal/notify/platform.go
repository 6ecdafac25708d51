package notify

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/ariel-frischer/toastkit/internal/toast"
)

// DefaultListenTimeout bounds how long the listener waits for toast events.
const DefaultListenTimeout = 5 * time.Minute

// PlatformOption configures NewPlatform.
type PlatformOption func(*platformConfig)

type platformConfig struct {
	runner        Runner
	listenTimeout time.Duration
}

// WithRunner replaces the process runner (for testing).
func WithRunner(r Runner) PlatformOption {
	return func(c *platformConfig) { c.runner = r }
}

// WithListenTimeout sets how long events are reported after a toast is shown.
func WithListenTimeout(d time.Duration) PlatformOption {
	return func(c *platformConfig) { c.listenTimeout = d }
}

// NewPlatform creates the toast platform for the current OS.
// On Windows with PowerShell on PATH it drives the WinRT toast API; anywhere
// else it returns a platform that fails with toast.ErrUnsupportedPlatform.
func NewPlatform(opts ...PlatformOption) toast.Platform {
	cfg := platformConfig{runner: ExecRunner{}, listenTimeout: DefaultListenTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return hostPlatform(cfg)
}

// NewPowerShellPlatform creates the PowerShell platform regardless of OS.
func NewPowerShellPlatform(opts ...PlatformOption) toast.Platform {
	cfg := platformConfig{runner: ExecRunner{}, listenTimeout: DefaultListenTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newPowerShellPlatform(cfg)
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopPlatform is used where no toast service exists.
type noopPlatform struct{}

func (noopPlatform) CreateNotification(_ toast.Document) (toast.Notification, error) {
	return nil, toast.ErrUnsupportedPlatform
}

func (noopPlatform) CreateNotifier(_ string) (toast.Notifier, error) {
	return nil, toast.ErrUnsupportedPlatform
}

// CheckDocument verifies that doc is well-formed XML with a toast root element.
func CheckDocument(doc toast.Document) error {
	dec := xml.NewDecoder(strings.NewReader(doc.String()))
	depth := 0
	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", toast.ErrMalformedDocument, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if sawRoot {
					return fmt.Errorf("%w: more than one root element", toast.ErrMalformedDocument)
				}
				if el.Name.Local != "toast" {
					return fmt.Errorf("%w: root element is <%s>, want <toast>", toast.ErrMalformedDocument, el.Name.Local)
				}
				sawRoot = true
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if !sawRoot {
		return fmt.Errorf("%w: empty document", toast.ErrMalformedDocument)
	}
	return nil
}

package notify

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ariel-frischer/toastkit/internal/toast"
)

// maxEventLine bounds one JSON event line; activation inputs can be long.
const maxEventLine = 1 << 20

// powerShellPlatform shows toasts through the WinRT API exposed to PowerShell.
type powerShellPlatform struct {
	runner        Runner
	listenTimeout time.Duration
}

func newPowerShellPlatform(cfg platformConfig) *powerShellPlatform {
	if cfg.runner == nil {
		cfg.runner = ExecRunner{}
	}
	if cfg.listenTimeout <= 0 {
		cfg.listenTimeout = DefaultListenTimeout
	}
	return &powerShellPlatform{runner: cfg.runner, listenTimeout: cfg.listenTimeout}
}

// CreateNotification rejects documents the WinRT XML parser would reject.
func (p *powerShellPlatform) CreateNotification(doc toast.Document) (toast.Notification, error) {
	if err := CheckDocument(doc); err != nil {
		return nil, err
	}
	return &notification{doc: doc}, nil
}

func (p *powerShellPlatform) CreateNotifier(appID string) (toast.Notifier, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, fmt.Errorf("%w: empty application id", toast.ErrDeliveryRejected)
	}
	return &notifier{platform: p, appID: appID}, nil
}

type notification struct {
	doc toast.Document

	mu          sync.Mutex
	subscribers []func(toast.Event)
}

func (n *notification) Document() toast.Document { return n.doc }

func (n *notification) Subscribe(fn func(toast.Event)) error {
	if fn == nil {
		return errors.New("nil event subscriber")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
	return nil
}

func (n *notification) snapshot() []func(toast.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]func(toast.Event){}, n.subscribers...)
}

func (n *notification) publish(ev toast.Event) {
	for _, fn := range n.snapshot() {
		fn(ev)
	}
}

type notifier struct {
	platform *powerShellPlatform
	appID    string
}

// Show starts the script and returns once the shell accepted or refused the
// toast. Events keep flowing to subscribers until ctx is done, the listen
// timeout passes, or the toast fails.
func (s *notifier) Show(ctx context.Context, tn toast.Notification) error {
	n, ok := tn.(*notification)
	if !ok {
		return fmt.Errorf("notification %T was not created by this platform", tn)
	}

	listen := len(n.snapshot()) > 0
	script := buildScript(n.doc, s.appID, listen, s.platform.listenTimeout)

	proc, err := s.platform.runner.Start(ctx, script)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(proc.Stdout())
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLine)

	for scanner.Scan() {
		ev, ok := decodeLine(scanner.Bytes())
		if !ok {
			continue
		}
		switch string(ev.Kind) {
		case eventShown:
			go s.stream(scanner, proc, n)
			return nil
		case eventError:
			for scanner.Scan() {
			}
			_ = proc.Wait()
			return fmt.Errorf("%w: %s", toast.ErrDeliveryRejected, ev.Message)
		default:
			// an event before "shown" means the script is out of step; deliver it anyway
			n.publish(ev)
		}
	}

	waitErr := proc.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return fmt.Errorf("reading powershell output: %w", scanErr)
	}
	if waitErr != nil {
		return fmt.Errorf("powershell exited before showing the toast: %w", waitErr)
	}
	return errors.New("powershell exited before showing the toast")
}

// stream forwards the remaining events and reaps the process.
func (s *notifier) stream(scanner *bufio.Scanner, proc Process, n *notification) {
	for scanner.Scan() {
		if ev, ok := decodeLine(scanner.Bytes()); ok {
			n.publish(ev)
		}
	}
	if err := proc.Wait(); err != nil {
		log.Printf("[notify] toast listener exited: %v", err)
	}
}

// decodeLine skips blank lines and logs garbage instead of failing the toast.
func decodeLine(line []byte) (toast.Event, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return toast.Event{}, false
	}
	ev, err := DecodeEvent(line)
	if err != nil {
		log.Printf("[notify] warning: ignoring listener output %q: %v", line, err)
		return toast.Event{}, false
	}
	return ev, true
}

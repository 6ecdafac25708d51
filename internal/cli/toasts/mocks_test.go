package toasts

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/ariel-frischer/toastkit/internal/config"
	"github.com/ariel-frischer/toastkit/internal/testutil"
	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/ariel-frischer/toastkit/internal/winver"
	"github.com/spf13/cobra"
)

// MockPlatform records shown documents and replays a canned event after Show.
type MockPlatform struct {
	mu sync.Mutex

	event     *toast.Event
	createErr error
	showErr   error

	docs   []toast.Document
	appIDs []string
}

// NewMockPlatform creates a platform that accepts every toast.
func NewMockPlatform() *MockPlatform {
	return &MockPlatform{}
}

// WithEvent raises ev on the subscriber after the toast is shown.
func (p *MockPlatform) WithEvent(ev toast.Event) *MockPlatform {
	p.event = &ev
	return p
}

// WithCreateError fails CreateNotification.
func (p *MockPlatform) WithCreateError(err error) *MockPlatform {
	p.createErr = err
	return p
}

// WithShowError fails Show.
func (p *MockPlatform) WithShowError(err error) *MockPlatform {
	p.showErr = err
	return p
}

func (p *MockPlatform) CreateNotification(doc toast.Document) (toast.Notification, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs = append(p.docs, doc)
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &mockNotification{doc: doc}, nil
}

func (p *MockPlatform) CreateNotifier(appID string) (toast.Notifier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.appIDs = append(p.appIDs, appID)
	return &mockNotifier{platform: p}, nil
}

// Shown returns the documents handed to the platform.
func (p *MockPlatform) Shown() []toast.Document {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]toast.Document(nil), p.docs...)
}

// AppIDs returns the ids notifiers were created for.
func (p *MockPlatform) AppIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.appIDs...)
}

type mockNotifier struct {
	platform *MockPlatform
}

func (n *mockNotifier) Show(_ context.Context, notification toast.Notification) error {
	n.platform.mu.Lock()
	ev, err := n.platform.event, n.platform.showErr
	n.platform.mu.Unlock()
	if err != nil {
		return err
	}
	if ev != nil {
		if mn, ok := notification.(*mockNotification); ok && mn.subscriber != nil {
			go mn.subscriber(*ev)
		}
	}
	return nil
}

type mockNotification struct {
	doc        toast.Document
	subscriber func(toast.Event)
}

func (n *mockNotification) Document() toast.Document { return n.doc }

func (n *mockNotification) Subscribe(fn func(toast.Event)) error {
	n.subscriber = fn
	return nil
}

// probeFor returns a probe reporting v.
func probeFor(v winver.Version) *winver.Probe {
	return winver.NewProbe(winver.SourceFunc(func() (winver.Version, bool) { return v, true }))
}

var (
	windows81 = winver.Version{Major: 6, Minor: 3, Build: 9600}
	windows11 = winver.Version{Major: 10, Minor: 0, Build: 22631}
)

// newDeps wires platform and a modern host probe.
func newDeps(platform *MockPlatform) *shared.Deps {
	return &shared.Deps{
		Platform: func(*config.Configuration) toast.Platform { return platform },
		Probe:    probeFor(windows11),
	}
}

// runCmd executes the toast commands with args under a fresh root.
// HOME is pointed at an empty directory so no global config is read.
func runCmd(t *testing.T, deps *shared.Deps, args ...string) (string, string, error) {
	t.Helper()
	testutil.IsolateHome(t)

	root := &cobra.Command{Use: "toastctl", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: shared.GroupToasts, Title: "Toasts:"})
	root.PersistentFlags().String(shared.ConfigFlag, "", "")
	Register(root, deps)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

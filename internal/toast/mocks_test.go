package toast

import (
	"context"
	"sync"
)

// mockPlatform records everything handed to it and lets tests raise events.
type mockPlatform struct {
	mu sync.Mutex

	createErr   error
	notifierErr error
	showErr     error

	docs          []Document
	appIDs        []string
	shown         int
	notifications []*mockNotification
}

func newMockPlatform() *mockPlatform {
	return &mockPlatform{}
}

func (p *mockPlatform) withCreateError(err error) *mockPlatform {
	p.createErr = err
	return p
}

func (p *mockPlatform) withNotifierError(err error) *mockPlatform {
	p.notifierErr = err
	return p
}

func (p *mockPlatform) withShowError(err error) *mockPlatform {
	p.showErr = err
	return p
}

func (p *mockPlatform) CreateNotification(doc Document) (Notification, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs = append(p.docs, doc)
	if p.createErr != nil {
		return nil, p.createErr
	}
	n := &mockNotification{doc: doc}
	p.notifications = append(p.notifications, n)
	return n, nil
}

func (p *mockPlatform) CreateNotifier(appID string) (Notifier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.appIDs = append(p.appIDs, appID)
	if p.notifierErr != nil {
		return nil, p.notifierErr
	}
	return &mockNotifier{platform: p}, nil
}

func (p *mockPlatform) lastNotification() *mockNotification {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.notifications) == 0 {
		return nil
	}
	return p.notifications[len(p.notifications)-1]
}

type mockNotifier struct {
	platform *mockPlatform
}

func (n *mockNotifier) Show(_ context.Context, _ Notification) error {
	n.platform.mu.Lock()
	defer n.platform.mu.Unlock()
	n.platform.shown++
	return n.platform.showErr
}

type mockNotification struct {
	mu          sync.Mutex
	doc         Document
	subscribers []func(Event)
}

func (n *mockNotification) Document() Document { return n.doc }

func (n *mockNotification) Subscribe(fn func(Event)) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
	return nil
}

// emit raises ev on a separate goroutine, as the shell would, and waits for delivery.
func (n *mockNotification) emit(ev Event) {
	n.mu.Lock()
	subs := append([]func(Event){}, n.subscribers...)
	n.mu.Unlock()

	var wg sync.WaitGroup
	for _, fn := range subs {
		wg.Add(1)
		go func(fn func(Event)) {
			defer wg.Done()
			fn(ev)
		}(fn)
	}
	wg.Wait()
}

func (n *mockNotification) subscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}

type fixedHost bool

func (h fixedHost) IsLegacyHost() bool { return bool(h) }

package toast

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedDocument means the platform could not parse the rendered document.
	// With escaped content this indicates a bug in the builder.
	ErrMalformedDocument = errors.New("malformed toast document")
	// ErrDeliveryRejected means the platform refused the toast: unknown app id,
	// notifications disabled by the user or by policy.
	ErrDeliveryRejected = errors.New("toast delivery rejected")
	// ErrUnsupportedPlatform means no toast platform is available on this host.
	ErrUnsupportedPlatform = errors.New("toast notifications are not supported on this platform")
)

// Platform is the operating system notification service.
type Platform interface {
	// CreateNotification parses doc into a notification that can be shown.
	CreateNotification(doc Document) (Notification, error)
	// CreateNotifier returns the notifier for an application id.
	CreateNotifier(appID string) (Notifier, error)
}

// Notification is a parsed toast owned by a Platform.
type Notification interface {
	Document() Document
	// Subscribe registers fn for the notification's events. fn runs on a
	// goroutine owned by the platform.
	Subscribe(fn func(Event)) error
}

// Notifier shows notifications for one application.
type Notifier interface {
	// Show raises the notification. A nil error does not mean the toast was
	// displayed: the shell reports success even when it suppresses a toast.
	Show(ctx context.Context, n Notification) error
}

// Show renders the toast and raises it on p. Callbacks are registered right
// before showing. Show never retries; callers decide whether to call it again.
func (t Toast) Show(ctx context.Context, p Platform) error {
	if p == nil {
		return ErrUnsupportedPlatform
	}

	n, err := p.CreateNotification(t.Render())
	if err != nil {
		return classify("create notification", ErrMalformedDocument, err)
	}

	if !t.handlers.Empty() {
		if err := n.Subscribe(t.handlers.Dispatch); err != nil {
			return fmt.Errorf("subscribe to toast events: %w", err)
		}
	}

	notifier, err := p.CreateNotifier(t.appID)
	if err != nil {
		return classify("create notifier", ErrDeliveryRejected, err)
	}

	showErr := notifier.Show(ctx, n)
	t.pause(ctx)
	if showErr != nil {
		return classify("show toast", ErrDeliveryRejected, showErr)
	}
	return nil
}

// pause waits out the post-show delay. It is not a wait for the toast to appear.
func (t Toast) pause(ctx context.Context) {
	if t.postShowDelay <= 0 {
		return
	}
	timer := time.NewTimer(t.postShowDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// classify wraps err with sentinel unless it already carries one of the package sentinels.
func classify(op string, sentinel, err error) error {
	if errors.Is(err, ErrMalformedDocument) || errors.Is(err, ErrDeliveryRejected) || errors.Is(err, ErrUnsupportedPlatform) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, sentinel, err)
}

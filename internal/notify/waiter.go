package notify

import (
	"context"
	"errors"

	"github.com/ariel-frischer/toastkit/internal/toast"
)

// Waiter turns toast callbacks into a channel so a command line caller can
// block until the user reacts.
type Waiter struct {
	events chan toast.Event
}

// NewWaiter creates a waiter with room for a few events.
func NewWaiter() *Waiter {
	return &Waiter{events: make(chan toast.Event, 16)}
}

// Attach returns t with callbacks that feed the waiter. Callbacks already set on t are replaced.
func (w *Waiter) Attach(t toast.Toast) toast.Toast {
	return t.
		OnActivated(func(a toast.Activated) {
			w.push(toast.Event{Kind: toast.EventActivated, Arguments: a.Arguments, Inputs: a.Inputs})
		}).
		OnDismissed(func(r toast.DismissalReason) {
			w.push(toast.Event{Kind: toast.EventDismissed, Reason: r})
		}).
		OnFailed(func(err error) {
			ev := toast.Event{Kind: toast.EventFailed, Message: err.Error()}
			var de *toast.DeliveryError
			if errors.As(err, &de) {
				ev.Code = de.Code
				ev.Message = de.Message
			}
			w.push(ev)
		})
}

// push never blocks the platform's goroutine; events beyond the buffer are dropped.
func (w *Waiter) push(ev toast.Event) {
	select {
	case w.events <- ev:
	default:
	}
}

// Wait returns the next event, or ctx's error once it is done.
func (w *Waiter) Wait(ctx context.Context) (toast.Event, error) {
	select {
	case ev := <-w.events:
		return ev, nil
	case <-ctx.Done():
		return toast.Event{}, ctx.Err()
	}
}

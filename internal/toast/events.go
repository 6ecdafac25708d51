package toast

import "fmt"

// EventKind identifies a toast event raised by the shell.
type EventKind string

const (
	// EventActivated is raised for clicks on the toast body or an action
	EventActivated EventKind = "activated"
	// EventDismissed is raised when the toast leaves the screen without activation
	EventDismissed EventKind = "dismissed"
	// EventFailed is raised when the shell could not raise the toast
	EventFailed EventKind = "failed"
)

// DismissalReason says why a toast was dismissed.
type DismissalReason int

const (
	// DismissUnknown is reported for reasons this package does not know
	DismissUnknown DismissalReason = iota
	// DismissUserCanceled means the user closed the toast
	DismissUserCanceled
	// DismissApplicationHidden means the application removed the toast
	DismissApplicationHidden
	// DismissTimedOut means the toast expired
	DismissTimedOut
)

// DismissalReasonFromCode maps a ToastDismissalReason value
// (0 user canceled, 1 application hidden, 2 timed out).
func DismissalReasonFromCode(code int) DismissalReason {
	switch code {
	case 0:
		return DismissUserCanceled
	case 1:
		return DismissApplicationHidden
	case 2:
		return DismissTimedOut
	default:
		return DismissUnknown
	}
}

func (r DismissalReason) String() string {
	switch r {
	case DismissUserCanceled:
		return "user canceled"
	case DismissApplicationHidden:
		return "application hidden"
	case DismissTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Activated carries the data of an activation.
type Activated struct {
	// Arguments of the invoked action, or the launch arguments for a body click.
	Arguments string
	// Inputs maps input ids to the entered text or selected choice id. Never nil.
	Inputs map[string]string
}

// DeliveryError is passed to the failure callback.
type DeliveryError struct {
	Code    int32
	Message string
}

func (e *DeliveryError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("toast failed (0x%08X)", uint32(e.Code))
	}
	return fmt.Sprintf("toast failed (0x%08X): %s", uint32(e.Code), e.Message)
}

// Event is the plain form of a shell event, decoded once at the platform boundary.
type Event struct {
	Kind      EventKind
	Arguments string
	Inputs    map[string]string
	Reason    DismissalReason
	Code      int32
	Message   string
}

// Handlers holds the optional callbacks of a toast.
type Handlers struct {
	Activated func(Activated)
	Dismissed func(DismissalReason)
	Failed    func(error)
}

// Empty reports whether no callback is set.
func (h Handlers) Empty() bool {
	return h.Activated == nil && h.Dismissed == nil && h.Failed == nil
}

// Dispatch routes ev to the matching callback. Events without a callback and
// unknown kinds are dropped.
func (h Handlers) Dispatch(ev Event) {
	switch ev.Kind {
	case EventActivated:
		if h.Activated == nil {
			return
		}
		inputs := make(map[string]string, len(ev.Inputs))
		for k, v := range ev.Inputs {
			inputs[k] = v
		}
		h.Activated(Activated{Arguments: ev.Arguments, Inputs: inputs})
	case EventDismissed:
		if h.Dismissed != nil {
			h.Dismissed(ev.Reason)
		}
	case EventFailed:
		if h.Failed != nil {
			h.Failed(&DeliveryError{Code: ev.Code, Message: ev.Message})
		}
	}
}

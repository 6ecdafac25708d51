package toast

import (
	"slices"
	"time"

	"github.com/ariel-frischer/toastkit/internal/winver"
)

// PowerShellAppID can be used by programs without their own AppUserModelID.
// The toast will report PowerShell as its origin.
const PowerShellAppID = `{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}\WindowsPowerShell\v1.0\powershell.exe`

// DefaultPostShowDelay is the pause after Show. Exiting right after showing can
// stop the shell from displaying the toast.
const DefaultPostShowDelay = 10 * time.Millisecond

// Host reports the toast generation of the machine. *winver.Probe implements it.
type Host interface {
	IsLegacyHost() bool
}

type imageRole int

const (
	roleGeneric imageRole = iota
	roleAppLogo
	roleHero
)

type image struct {
	role imageRole
	src  string
	alt  string
	crop IconCrop
}

type text struct {
	value string
	set   bool
}

// Toast is an immutable toast description. Use New to create one.
type Toast struct {
	appID         string
	legacy        bool
	postShowDelay time.Duration

	title text
	line1 text
	line2 text

	launch    string
	header    Header
	hasHeader bool

	images   []image
	audio    Audio
	duration Duration
	scenario Scenario

	inputs  []Input
	actions []Action

	handlers Handlers
}

// Option configures New.
type Option func(*options)

type options struct {
	host          Host
	legacy        *bool
	postShowDelay time.Duration
}

// WithHost decides the host generation with h instead of the process-wide winver probe.
func WithHost(h Host) Option {
	return func(o *options) { o.host = h }
}

// WithLegacy forces legacy or modern behaviour without probing.
func WithLegacy(legacy bool) Option {
	return func(o *options) { o.legacy = &legacy }
}

// WithPostShowDelay overrides DefaultPostShowDelay. Zero disables the pause.
func WithPostShowDelay(d time.Duration) Option {
	return func(o *options) { o.postShowDelay = d }
}

// New creates a toast for the application with the given AppUserModelID.
// The id is passed through to the platform untouched.
func New(appID string, opts ...Option) Toast {
	o := options{postShowDelay: DefaultPostShowDelay}
	for _, opt := range opts {
		opt(&o)
	}

	var legacy bool
	switch {
	case o.legacy != nil:
		legacy = *o.legacy
	case o.host != nil:
		legacy = o.host.IsLegacyHost()
	default:
		legacy = winver.IsLegacyHost()
	}

	return Toast{
		appID:         appID,
		legacy:        legacy,
		postShowDelay: o.postShowDelay,
	}
}

// AppID returns the application id the toast will be shown for.
func (t Toast) AppID() string { return t.appID }

// IsLegacy reports whether the toast renders for a legacy host.
func (t Toast) IsLegacy() bool { return t.legacy }

// Title sets the first, emphasised line.
func (t Toast) Title(s string) Toast {
	t.title = text{value: escape(s), set: true}
	return t
}

// Text1 sets the first line below the title.
func (t Toast) Text1(s string) Toast {
	t.line1 = text{value: escape(s), set: true}
	return t
}

// Text2 sets the second line below the title.
func (t Toast) Text2(s string) Toast {
	t.line2 = text{value: escape(s), set: true}
	return t
}

// Launch sets the arguments reported when the toast body itself is clicked.
func (t Toast) Launch(arguments string) Toast {
	t.launch = escape(arguments)
	return t
}

// Header groups the toast in the action centre.
func (t Toast) Header(h Header) Toast {
	t.header = h.escaped()
	t.hasHeader = true
	return t
}

// Duration sets the display duration hint.
func (t Toast) Duration(d Duration) Toast {
	t.duration = d
	return t
}

// Scenario sets the toast scenario.
func (t Toast) Scenario(s Scenario) Toast {
	t.scenario = s
	return t
}

// Icon adds an app logo override shown in the corner of the toast.
// Legacy hosts reject the placement, so there it becomes a plain Image.
func (t Toast) Icon(path string, crop IconCrop, alt string) Toast {
	if t.legacy {
		return t.Image(path, alt)
	}
	return t.addImage(image{role: roleAppLogo, src: fileURI(path), alt: escape(alt), crop: crop})
}

// Hero adds a large image above the text.
// Legacy hosts reject the placement, so there it becomes a plain Image.
func (t Toast) Hero(path, alt string) Toast {
	if t.legacy {
		return t.Image(path, alt)
	}
	return t.addImage(image{role: roleHero, src: fileURI(path), alt: escape(alt)})
}

// Image adds an inline image. On legacy hosts it replaces any previous image:
// the legacy templates show nothing at all when given more than one.
func (t Toast) Image(path, alt string) Toast {
	if t.legacy {
		t.images = nil
	}
	return t.addImage(image{role: roleGeneric, src: fileURI(path), alt: escape(alt)})
}

func (t Toast) addImage(img image) Toast {
	t.images = append(slices.Clip(t.images), img)
	return t
}

// Audio sets the audio directive.
func (t Toast) Audio(a Audio) Toast {
	t.audio = a
	return t
}

// Input appends an input field. Selection choices without an id use their label.
func (t Toast) Input(in Input) Toast {
	t.inputs = append(slices.Clip(t.inputs), in.escaped())
	return t
}

// Action appends a button or context menu entry.
func (t Toast) Action(a Action) Toast {
	t.actions = append(slices.Clip(t.actions), a.escaped())
	return t
}

// OnActivated registers the callback for clicks on the toast or one of its actions.
// It may run several times and never on the goroutine that called Show.
func (t Toast) OnActivated(fn func(Activated)) Toast {
	t.handlers.Activated = fn
	return t
}

// OnDismissed registers the callback for the toast leaving the screen without activation.
func (t Toast) OnDismissed(fn func(DismissalReason)) Toast {
	t.handlers.Dismissed = fn
	return t
}

// OnFailed registers the callback for the shell failing to raise the toast.
// The error is a *DeliveryError.
func (t Toast) OnFailed(fn func(error)) Toast {
	t.handlers.Failed = fn
	return t
}

package toasts

import (
	"errors"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ariel-frischer/toastkit/internal/config"
	apperrors "github.com/ariel-frischer/toastkit/internal/errors"
	"github.com/ariel-frischer/toastkit/internal/manifest"
	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/ariel-frischer/toastkit/internal/winver"
	"github.com/spf13/pflag"
)

// contextSuffix marks an --action as a context menu entry.
const contextSuffix = ",context"

// toastFlags are the content flags shared by show and render.
type toastFlags struct {
	manifest string
	appID    string
	host     string

	title string
	text1 string
	text2 string

	icon     string
	iconCrop string
	hero     string
	images   []string

	sound  string
	silent bool
	loop   bool

	duration string
	scenario string
	launch   string

	inputs  []string
	selects []string
	actions []string
}

func (f *toastFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.manifest, "file", "f", "", "Read the toast from a YAML manifest")
	fs.StringVar(&f.appID, "app-id", "", "AppUserModelID to show the toast for (default: PowerShell)")
	fs.StringVar(&f.host, "host", "", "Host generation: auto, legacy or modern")

	fs.StringVarP(&f.title, "title", "t", "", "Title line")
	fs.StringVar(&f.text1, "text1", "", "First body line")
	fs.StringVar(&f.text2, "text2", "", "Second body line")

	fs.StringVar(&f.icon, "icon", "", "App logo override image path")
	fs.StringVar(&f.iconCrop, "icon-crop", "square", "Icon crop: square or circle")
	fs.StringVar(&f.hero, "hero", "", "Hero image path")
	fs.StringArrayVar(&f.images, "image", nil, "Inline image path (repeatable)")

	fs.StringVar(&f.sound, "sound", "", "Sound name (Default, IM, Mail, Reminder, SMS, Alarm..Alarm10, Call..Call10)")
	fs.BoolVar(&f.silent, "silent", false, "Mute the toast")
	fs.BoolVar(&f.loop, "loop", false, "Loop the sound (Alarm and Call sounds only)")

	fs.StringVar(&f.duration, "duration", "", "How long the toast stays: short or long")
	fs.StringVar(&f.scenario, "scenario", "", "Scenario: alarm, reminder or incomingCall")
	fs.StringVar(&f.launch, "launch", "", "Arguments passed back when the toast body is clicked")

	fs.StringArrayVar(&f.inputs, "input", nil, "Text box as id[=placeholder] (repeatable)")
	fs.StringArrayVar(&f.selects, "select", nil, "Selection box as id=a|b|c (repeatable)")
	fs.StringArrayVar(&f.actions, "action", nil, "Button as content=arguments[,context] (repeatable)")
}

// hasContent reports whether any content flag was given.
func (f *toastFlags) hasContent() bool {
	return f.title != "" || f.text1 != "" || f.text2 != "" || f.icon != "" || f.hero != "" ||
		len(f.images) > 0 || f.sound != "" || f.silent || f.loop || f.duration != "" ||
		f.scenario != "" || f.launch != "" || len(f.inputs) > 0 || len(f.selects) > 0 || len(f.actions) > 0
}

// build turns flags, or the manifest they name, into a toast. Flags override
// the configuration; a manifest overrides both except for unset fields.
func (f *toastFlags) build(cfg *config.Configuration, probe *winver.Probe) (toast.Toast, error) {
	if f.host != "" {
		if _, err := winver.ParseMode(f.host); err != nil {
			return toast.Toast{}, apperrors.InvalidFlagValue("host", f.host, "--host auto|legacy|modern")
		}
		cfg.Host = f.host
	}
	if f.appID != "" {
		cfg.AppID = f.appID
	}
	opts := cfg.ToastOptions(probe)

	if f.manifest != "" {
		if f.hasContent() {
			return toast.Toast{}, apperrors.InvalidFlagCombination("--file", "content flags cannot be combined with a manifest")
		}
		return f.buildManifest(cfg, opts)
	}

	if f.title == "" {
		return toast.Toast{}, apperrors.MissingTitle()
	}

	t := cfg.Apply(toast.New(cfg.ResolvedAppID(), opts...)).Title(f.title)
	if f.text1 != "" {
		t = t.Text1(f.text1)
	}
	if f.text2 != "" {
		t = t.Text2(f.text2)
	}
	if f.launch != "" {
		t = t.Launch(f.launch)
	}

	var err error
	if t, err = f.applyAttributes(t); err != nil {
		return toast.Toast{}, err
	}
	if t, err = f.applyImages(t); err != nil {
		return toast.Toast{}, err
	}
	if t, err = f.applyAudio(t); err != nil {
		return toast.Toast{}, err
	}
	return f.applyActions(t)
}

func (f *toastFlags) buildManifest(cfg *config.Configuration, opts []toast.Option) (toast.Toast, error) {
	m, err := manifest.Load(f.manifest)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return toast.Toast{}, apperrors.ManifestNotFound(f.manifest)
		}
		return toast.Toast{}, apperrors.ManifestInvalid(f.manifest, err)
	}
	log.Printf("[show] manifest %s: %s", f.manifest, m.Summary())

	if m.Duration == "" {
		m.Duration = cfg.Duration
	}
	if m.Scenario == "" {
		m.Scenario = cfg.Scenario
	}
	if m.Audio == nil && cfg.Sound != "" {
		m.Audio = &manifest.Audio{Sound: cfg.Sound}
	}

	t, err := m.Build(cfg.ResolvedAppID(), opts...)
	if err != nil {
		return toast.Toast{}, apperrors.ManifestInvalid(f.manifest, err)
	}
	return t, nil
}

func (f *toastFlags) applyAttributes(t toast.Toast) (toast.Toast, error) {
	switch f.duration {
	case "":
	case string(toast.DurationShort), string(toast.DurationLong):
		t = t.Duration(toast.Duration(f.duration))
	default:
		return t, apperrors.InvalidFlagValue("duration", f.duration, "--duration short|long")
	}

	switch f.scenario {
	case "":
	case "default":
		t = t.Scenario(toast.ScenarioDefault)
	case string(toast.ScenarioAlarm), string(toast.ScenarioReminder), string(toast.ScenarioIncomingCall):
		t = t.Scenario(toast.Scenario(f.scenario))
	default:
		return t, apperrors.InvalidFlagValue("scenario", f.scenario, "--scenario default|alarm|reminder|incomingCall")
	}
	return t, nil
}

func (f *toastFlags) applyImages(t toast.Toast) (toast.Toast, error) {
	if f.icon != "" {
		var crop toast.IconCrop
		switch f.iconCrop {
		case "", "square":
			crop = toast.CropSquare
		case "circle":
			crop = toast.CropCircular
		default:
			return t, apperrors.InvalidFlagValue("icon-crop", f.iconCrop, "--icon-crop square|circle")
		}
		t = t.Icon(f.icon, crop, "")
	}
	if f.hero != "" {
		t = t.Hero(f.hero, "")
	}
	for _, img := range f.images {
		t = t.Image(img, "")
	}
	return t, nil
}

func (f *toastFlags) applyAudio(t toast.Toast) (toast.Toast, error) {
	if f.silent {
		if f.sound != "" || f.loop {
			return t, apperrors.InvalidFlagCombination("--silent --sound/--loop", "a silent toast plays no sound")
		}
		return t.Audio(toast.Silent()), nil
	}
	if f.sound == "" {
		if f.loop {
			return t, apperrors.InvalidFlagCombination("--loop", "--loop needs --sound with an Alarm or Call sound")
		}
		return t, nil
	}
	a, err := toast.ParseAudio(f.sound, f.loop)
	if err != nil {
		return t, apperrors.InvalidFlagValue("sound", f.sound, "--sound <name> [--loop]")
	}
	return t.Audio(a), nil
}

func (f *toastFlags) applyActions(t toast.Toast) (toast.Toast, error) {
	for _, raw := range f.inputs {
		id, placeholder, _ := strings.Cut(raw, "=")
		if id == "" {
			return t, apperrors.InvalidFlagValue("input", raw, "--input id[=placeholder]")
		}
		t = t.Input(toast.TextInput(id).WithPlaceholder(placeholder))
	}

	for _, raw := range f.selects {
		id, choices, ok := strings.Cut(raw, "=")
		if !ok || id == "" || choices == "" {
			return t, apperrors.InvalidFlagValue("select", raw, "--select id=a|b|c")
		}
		contents := strings.Split(choices, "|")
		if slices.Contains(contents, "") {
			return t, apperrors.InvalidFlagValue("select", raw, "--select id=a|b|c (no empty choices)")
		}
		t = t.Input(toast.SelectionInput(id, toast.SelectionsFromContents(contents...)...))
	}

	for _, raw := range f.actions {
		a, err := parseAction(raw)
		if err != nil {
			return t, err
		}
		t = t.Action(a)
	}
	return t, nil
}

// parseAction parses content=arguments[,context]. Without "=" the content
// doubles as the arguments.
func parseAction(raw string) (toast.Action, error) {
	s := raw
	placement := toast.PlacementInline
	if strings.HasSuffix(s, contextSuffix) {
		s = strings.TrimSuffix(s, contextSuffix)
		placement = toast.PlacementContextMenu
	}

	content, arguments, ok := strings.Cut(s, "=")
	if !ok {
		arguments = content
	}
	if content == "" {
		return toast.Action{}, apperrors.InvalidFlagValue("action", raw, "--action content=arguments[,context]")
	}

	a := toast.ActionFromContent(content)
	a.Arguments = arguments
	a.Placement = placement
	return a, nil
}

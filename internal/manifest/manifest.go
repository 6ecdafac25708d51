// Package manifest describes a toast in YAML so it can be kept in a file and
// shown with toastctl show -f.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a toast.
type Manifest struct {
	AppID    string   `yaml:"app_id"`
	Title    string   `yaml:"title"`
	Text1    string   `yaml:"text1,omitempty"`
	Text2    string   `yaml:"text2,omitempty"`
	Launch   string   `yaml:"launch,omitempty"`
	Duration string   `yaml:"duration,omitempty" validate:"omitempty,oneof=short long"`
	Scenario string   `yaml:"scenario,omitempty" validate:"omitempty,oneof=default alarm reminder incomingCall"`
	Header   *Header  `yaml:"header,omitempty"`
	Images   []Image  `yaml:"images,omitempty" validate:"dive"`
	Audio    *Audio   `yaml:"audio,omitempty"`
	Inputs   []Input  `yaml:"inputs,omitempty" validate:"max=5,dive"`
	Actions  []Action `yaml:"actions,omitempty" validate:"max=5,dive"`
}

// Header groups toasts in the action center.
type Header struct {
	ID        string `yaml:"id,omitempty"`
	Title     string `yaml:"title" validate:"required"`
	Arguments string `yaml:"arguments,omitempty"`
}

// Image is one picture of the toast. Kind selects the builder call.
type Image struct {
	Kind string `yaml:"kind" validate:"required,oneof=icon hero image"`
	Path string `yaml:"path" validate:"required"`
	Alt  string `yaml:"alt,omitempty"`
	Crop string `yaml:"crop,omitempty" validate:"omitempty,oneof=square circle"`
}

// Audio selects the toast sound. Loopable sounds play once unless Loop is set.
type Audio struct {
	Sound  string `yaml:"sound,omitempty"`
	Loop   bool   `yaml:"loop,omitempty"`
	Silent bool   `yaml:"silent,omitempty" validate:"excluded_with=Sound"`
}

// Input is a text box or a selection box.
type Input struct {
	ID          string   `yaml:"id" validate:"required"`
	Type        string   `yaml:"type,omitempty" validate:"omitempty,oneof=text selection"`
	Title       string   `yaml:"title,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Default     string   `yaml:"default,omitempty"`
	Choices     []Choice `yaml:"choices,omitempty" validate:"required_if=Type selection,dive"`
}

// Choice is one entry of a selection box. An empty ID uses the content.
type Choice struct {
	ID      string `yaml:"id,omitempty"`
	Content string `yaml:"content" validate:"required"`
}

// Action is a button or a context menu entry.
type Action struct {
	Content         string `yaml:"content" validate:"required"`
	Arguments       string `yaml:"arguments,omitempty"`
	Placement       string `yaml:"placement,omitempty" validate:"omitempty,oneof=inline contextMenu"`
	ActivationType  string `yaml:"activation_type,omitempty" validate:"omitempty,oneof=foreground background protocol system"`
	InputID         string `yaml:"input_id,omitempty"`
	AfterActivation string `yaml:"after_activation,omitempty" validate:"omitempty,oneof=default pendingUpdate"`
	Image           string `yaml:"image,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("manifest is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks field values and cross references.
func (m *Manifest) Validate() error {
	if err := validator.New().Struct(m); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	ids := make(map[string]bool, len(m.Inputs))
	for _, in := range m.Inputs {
		if ids[in.ID] {
			return fmt.Errorf("manifest validation failed: duplicate input id %q", in.ID)
		}
		ids[in.ID] = true
	}
	for _, a := range m.Actions {
		if a.InputID != "" && !ids[a.InputID] {
			return fmt.Errorf("manifest validation failed: action %q refers to unknown input %q", a.Content, a.InputID)
		}
	}
	if m.Audio != nil && !m.Audio.Silent {
		if _, err := toast.ParseAudio(m.Audio.Sound, m.Audio.Loop); err != nil {
			return fmt.Errorf("manifest validation failed: %w", err)
		}
	}
	return nil
}

// Build replays the manifest through the toast builder in file order.
// An empty app_id falls back to appID.
func (m *Manifest) Build(appID string, opts ...toast.Option) (toast.Toast, error) {
	if m.AppID != "" {
		appID = m.AppID
	}
	t := toast.New(appID, opts...).Title(m.Title)

	if m.Text1 != "" {
		t = t.Text1(m.Text1)
	}
	if m.Text2 != "" {
		t = t.Text2(m.Text2)
	}
	if m.Launch != "" {
		t = t.Launch(m.Launch)
	}
	if m.Duration != "" {
		t = t.Duration(toast.Duration(m.Duration))
	}
	if m.Scenario != "" && m.Scenario != "default" {
		t = t.Scenario(toast.Scenario(m.Scenario))
	}
	if m.Header != nil {
		h := toast.HeaderFromTitle(m.Header.Title)
		if m.Header.ID != "" {
			h.ID = m.Header.ID
		}
		h.Arguments = m.Header.Arguments
		t = t.Header(h)
	}

	for _, img := range m.Images {
		switch img.Kind {
		case "icon":
			crop := toast.CropSquare
			if img.Crop == "circle" {
				crop = toast.CropCircular
			}
			t = t.Icon(img.Path, crop, img.Alt)
		case "hero":
			t = t.Hero(img.Path, img.Alt)
		default:
			t = t.Image(img.Path, img.Alt)
		}
	}

	if m.Audio != nil {
		a := toast.Silent()
		if !m.Audio.Silent {
			var err error
			a, err = toast.ParseAudio(m.Audio.Sound, m.Audio.Loop)
			if err != nil {
				return toast.Toast{}, err
			}
		}
		t = t.Audio(a)
	}

	for _, in := range m.Inputs {
		t = t.Input(in.toInput())
	}
	for _, a := range m.Actions {
		t = t.Action(a.toAction())
	}
	return t, nil
}

func (in Input) toInput() toast.Input {
	var out toast.Input
	if in.Type == string(toast.InputSelection) {
		choices := make([]toast.Selection, 0, len(in.Choices))
		for _, c := range in.Choices {
			choices = append(choices, toast.Selection{ID: c.ID, Content: c.Content})
		}
		out = toast.SelectionInput(in.ID, choices...)
	} else {
		out = toast.TextInput(in.ID).WithPlaceholder(in.Placeholder)
	}
	return out.WithTitle(in.Title).WithDefault(in.Default)
}

func (a Action) toAction() toast.Action {
	out := toast.ActionFromContent(a.Content)
	out.Arguments = a.Arguments
	if a.Placement == "contextMenu" {
		out.Placement = toast.PlacementContextMenu
	}
	out.ActivationType = toast.ActivationType(a.ActivationType)
	out.InputID = a.InputID
	if a.AfterActivation != "default" {
		out.AfterActivation = toast.AfterActivation(a.AfterActivation)
	}
	out.ImageURI = a.Image
	return out
}

// Summary returns a short one-line description for debug logs.
func (m *Manifest) Summary() string {
	parts := []string{fmt.Sprintf("%q", m.Title)}
	if n := len(m.Images); n > 0 {
		parts = append(parts, fmt.Sprintf("%d image(s)", n))
	}
	if n := len(m.Inputs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d input(s)", n))
	}
	if n := len(m.Actions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d action(s)", n))
	}
	return strings.Join(parts, ", ")
}

// Package testutil provides test utilities and helpers for toastctl tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// IsolateHome points HOME and USERPROFILE at an empty temp dir so no real
// global config is read or written. Tests using it cannot run in parallel.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

// WriteConfig writes values as a JSON config file at path and returns path.
func WriteConfig(t *testing.T, path string, values map[string]interface{}) string {
	t.Helper()

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// ManifestOption adjusts the manifest written by CreateTempManifest.
type ManifestOption func(*manifestConfig)

type manifestConfig struct {
	title    string
	text1    string
	duration string
	sound    string
	actions  []string
	extra    []string
}

// WithTitle sets the manifest title.
func WithTitle(title string) ManifestOption {
	return func(c *manifestConfig) { c.title = title }
}

// WithText1 sets the first body line.
func WithText1(text string) ManifestOption {
	return func(c *manifestConfig) { c.text1 = text }
}

// WithDuration sets the duration attribute.
func WithDuration(d string) ManifestOption {
	return func(c *manifestConfig) { c.duration = d }
}

// WithSound sets audio.sound.
func WithSound(sound string) ManifestOption {
	return func(c *manifestConfig) { c.sound = sound }
}

// WithAction adds an action whose arguments equal its content.
func WithAction(content string) ManifestOption {
	return func(c *manifestConfig) { c.actions = append(c.actions, content) }
}

// WithRawLine appends a raw top-level YAML line, for unknown-field cases.
func WithRawLine(line string) ManifestOption {
	return func(c *manifestConfig) { c.extra = append(c.extra, line) }
}

// CreateTempManifest writes a toast manifest into dir and returns its path.
func CreateTempManifest(t *testing.T, dir string, opts ...ManifestOption) string {
	t.Helper()

	cfg := &manifestConfig{title: "Test toast"}
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "title: %q\n", cfg.title)
	if cfg.text1 != "" {
		fmt.Fprintf(&b, "text1: %q\n", cfg.text1)
	}
	if cfg.duration != "" {
		fmt.Fprintf(&b, "duration: %s\n", cfg.duration)
	}
	if cfg.sound != "" {
		fmt.Fprintf(&b, "audio:\n  sound: %s\n", cfg.sound)
	}
	if len(cfg.actions) > 0 {
		b.WriteString("actions:\n")
		for _, a := range cfg.actions {
			fmt.Fprintf(&b, "  - content: %q\n    arguments: %q\n", a, a)
		}
	}
	for _, line := range cfg.extra {
		b.WriteString(line + "\n")
	}

	path := filepath.Join(dir, "toast.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("failed to write toast.yaml: %v", err)
	}
	return path
}

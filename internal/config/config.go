package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/ariel-frischer/toastkit/internal/winver"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "TOASTCTL_"

// Configuration represents the toastctl configuration
type Configuration struct {
	AppID           string `koanf:"app_id"`
	Duration        string `koanf:"duration" validate:"omitempty,oneof=short long"`
	Scenario        string `koanf:"scenario" validate:"omitempty,oneof=default alarm reminder incomingCall"`
	Sound           string `koanf:"sound"`
	Host            string `koanf:"host" validate:"oneof=auto legacy modern"`
	PostShowDelayMS int    `koanf:"post_show_delay_ms" validate:"min=0,max=10000"`
	ListenTimeout   int    `koanf:"listen_timeout" validate:"min=1,max=3600"` // seconds
	Wait            bool   `koanf:"wait"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
// A missing local file is an error; a missing global file is not.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
		if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and that the sound name is known.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if _, err := toast.ParseAudio(c.Sound, false); err != nil {
		return fmt.Errorf("config validation failed: sound: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: TOASTCTL_POST_SHOW_DELAY_MS -> post_show_delay_ms
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// ResolvedAppID returns the configured app id, or PowerShell's id when none is set.
func (c *Configuration) ResolvedAppID() string {
	if c.AppID == "" {
		return toast.PowerShellAppID
	}
	return c.AppID
}

// PostShowDelay returns the pause after showing a toast.
func (c *Configuration) PostShowDelay() time.Duration {
	return time.Duration(c.PostShowDelayMS) * time.Millisecond
}

// ListenFor returns how long toast events are reported after showing.
func (c *Configuration) ListenFor() time.Duration {
	return time.Duration(c.ListenTimeout) * time.Second
}

// HostMode returns the configured host mode.
func (c *Configuration) HostMode() winver.Mode {
	mode, err := winver.ParseMode(c.Host)
	if err != nil {
		return winver.ModeAuto
	}
	return mode
}

// ToastOptions turns the host mode and post-show delay into builder options.
// probe is consulted only in auto mode; nil means the process-wide probe.
func (c *Configuration) ToastOptions(probe *winver.Probe) []toast.Option {
	return []toast.Option{
		toast.WithLegacy(c.HostMode().Resolve(probe)),
		toast.WithPostShowDelay(c.PostShowDelay()),
	}
}

// Apply sets the configured duration, scenario and sound on t.
// Values already set on t by flags or a manifest are overwritten only when
// the configuration names one, so callers apply configuration first.
func (c *Configuration) Apply(t toast.Toast) toast.Toast {
	if c.Duration != "" {
		t = t.Duration(toast.Duration(c.Duration))
	}
	if c.Scenario != "" && c.Scenario != "default" {
		t = t.Scenario(toast.Scenario(c.Scenario))
	}
	if c.Sound != "" {
		if a, err := toast.ParseAudio(c.Sound, false); err == nil {
			t = t.Audio(a)
		}
	}
	return t
}

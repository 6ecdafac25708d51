package shared

import (
	"errors"
	"os"

	"github.com/ariel-frischer/toastkit/internal/config"
	apperrors "github.com/ariel-frischer/toastkit/internal/errors"
	"github.com/ariel-frischer/toastkit/internal/notify"
	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/ariel-frischer/toastkit/internal/winver"
	"github.com/spf13/cobra"
)

// Deps holds the host services commands talk to. Tests replace them.
type Deps struct {
	// Platform creates the toast platform for a loaded configuration
	Platform func(cfg *config.Configuration) toast.Platform
	// Probe answers the host generation question in auto mode
	Probe *winver.Probe
}

// DefaultDeps uses the real notification platform and the process-wide probe.
func DefaultDeps() *Deps {
	return &Deps{
		Platform: func(cfg *config.Configuration) toast.Platform {
			return notify.NewPlatform(notify.WithListenTimeout(cfg.ListenFor()))
		},
		Probe: winver.Host(),
	}
}

// ConfigFlag is the persistent flag naming a local config file.
const ConfigFlag = "config"

// LoadConfig loads the configuration named by the --config flag and maps
// failures onto configuration errors.
func LoadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	cfg, err := config.Load(path)
	if err != nil {
		if path != "" && errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.ConfigFileNotFound(path)
		}
		if path == "" {
			path = "configuration"
		}
		return nil, apperrors.ConfigParseError(path, err)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GlobalConfigDir is the directory under the home directory holding the user config.
const GlobalConfigDir = ".toastctl"

// GlobalConfigPath returns ~/.toastctl/config.json.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, GlobalConfigDir, "config.json"), nil
}

// ResolvePath returns local when set, otherwise the global config path.
func ResolvePath(local string) (string, error) {
	if local != "" {
		return local, nil
	}
	return GlobalConfigPath()
}

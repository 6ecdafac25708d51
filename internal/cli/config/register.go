// Package config provides the 'toastctl config' commands.
package config

import (
	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds the config command tree to the root command.
func Register(rootCmd *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the toastctl configuration",
		Long: `Configuration is layered, later sources win:

  1. built-in defaults
  2. ~/.toastctl/config.json
  3. the file named by --config
  4. TOASTCTL_* environment variables (TOASTCTL_HOST=legacy)`,
	}
	configCmd.GroupID = shared.GroupConfiguration
	configCmd.AddCommand(newShowCmd(), newSetCmd(), newKeysCmd(), newInitCmd(), newValidateCmd())
	rootCmd.AddCommand(configCmd)
}

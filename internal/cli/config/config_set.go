package config

import (
	"fmt"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	cfgpkg "github.com/ariel-frischer/toastkit/internal/config"
	apperrors "github.com/ariel-frischer/toastkit/internal/errors"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the file named by --config, or in
~/.toastctl/config.json when --config is not given.

The value is validated against the key before anything is written.`,
		Example: `  toastctl config set host legacy
  toastctl config set listen_timeout 60
  toastctl --config ./toastctl.json config set app_id com.example.app`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, _ := cmd.Flags().GetString(shared.ConfigFlag)
			path, err := cfgpkg.ResolvePath(local)
			if err != nil {
				return apperrors.Wrap(err, apperrors.Configuration)
			}
			if err := cfgpkg.SetConfigValue(path, args[0], args[1]); err != nil {
				return apperrors.NewArgumentError(err.Error(), "Run 'toastctl config keys' to list keys and allowed values")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", args[0], args[1], path)
			return nil
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List configuration keys with their types and descriptions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			colors := shared.NewColors()
			out := cmd.OutOrStdout()
			for _, key := range cfgpkg.SortedKeys() {
				schema := cfgpkg.KnownKeys[key]
				kind := schema.Type.String()
				switch schema.Type {
				case cfgpkg.TypeEnum:
					kind = fmt.Sprintf("%s %v", kind, schema.AllowedValues)
				case cfgpkg.TypeInt:
					kind = fmt.Sprintf("%s %d..%d", kind, schema.Min, schema.Max)
				}
				fmt.Fprintf(out, "%s\n  %s\n  %s (default %v)\n", colors.Cyan(key), schema.Description, colors.Dim(kind), schema.Default)
			}
		},
	}
}

package config

import (
	"fmt"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	cfgpkg "github.com/ariel-frischer/toastkit/internal/config"
	apperrors "github.com/ariel-frischer/toastkit/internal/errors"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a config file with every key at its default value, to the file named
by --config or to ~/.toastctl/config.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			local, _ := cmd.Flags().GetString(shared.ConfigFlag)
			path, err := cfgpkg.ResolvePath(local)
			if err != nil {
				return apperrors.Wrap(err, apperrors.Configuration)
			}
			if err := cfgpkg.WriteDefaultConfig(path, force); err != nil {
				return apperrors.NewConfigError(err.Error(), "Pass --force to overwrite it")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", shared.NewColors().Green("✓"), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a config file for syntax errors and invalid values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, _ := cmd.Flags().GetString(shared.ConfigFlag)
			if len(args) == 1 {
				local = args[0]
			}
			path, err := cfgpkg.ResolvePath(local)
			if err != nil {
				return apperrors.Wrap(err, apperrors.Configuration)
			}
			if err := cfgpkg.ValidateConfigFile(path); err != nil {
				return apperrors.Wrap(err, apperrors.Configuration, "Run 'toastctl config keys' to list keys and allowed values")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid\n", shared.NewColors().Green("✓"), path)
			return nil
		},
	}
}

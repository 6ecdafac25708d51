package util

import (
	"fmt"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/ariel-frischer/toastkit/internal/config"
	apperrors "github.com/ariel-frischer/toastkit/internal/errors"
	"github.com/ariel-frischer/toastkit/internal/health"
	"github.com/spf13/cobra"
)

func newDoctorCmd(deps *shared.Deps, opts health.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"dr"},
		Short:   "Check whether this host can show toasts (dr)",
		Long: `Check the operating system, PowerShell on PATH, the Windows version and
the config files. Exits with code 4 when toasts cannot be shown here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := opts
			if opts.Probe == nil {
				opts.Probe = deps.Probe
			}
			if global, err := config.GlobalConfigPath(); err == nil {
				opts.ConfigPaths = append(opts.ConfigPaths, global)
			}
			if local, _ := cmd.Flags().GetString(shared.ConfigFlag); local != "" {
				opts.ConfigPaths = append(opts.ConfigPaths, local)
			}

			report := health.RunHealthChecks(opts)
			fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))
			if !report.Passed {
				return apperrors.NewPrerequisiteError("some checks failed",
					"Use 'toastctl render' to build toast documents on hosts that cannot show them",
				)
			}
			return nil
		},
	}
	cmd.GroupID = shared.GroupInfo
	return cmd
}

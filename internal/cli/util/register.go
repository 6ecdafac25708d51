// Package util provides informational commands: probe, doctor and version.
package util

import (
	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/ariel-frischer/toastkit/internal/health"
	"github.com/spf13/cobra"
)

// Register adds the utility commands to the root command.
func Register(rootCmd *cobra.Command, deps *shared.Deps) {
	rootCmd.AddCommand(newProbeCmd(deps))
	rootCmd.AddCommand(newDoctorCmd(deps, health.Options{}))
	rootCmd.AddCommand(newVersionCmd())
}

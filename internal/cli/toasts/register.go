// Package toasts provides the CLI commands that build toasts: show and render.
package toasts

import (
	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds the toast commands to the root command.
func Register(rootCmd *cobra.Command, deps *shared.Deps) {
	rootCmd.AddCommand(newShowCmd(deps))
	rootCmd.AddCommand(newRenderCmd(deps))
}

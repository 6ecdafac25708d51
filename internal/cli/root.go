// toastctl - Windows toast notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/toastkit

// Package cli provides the Cobra-based command line for toastctl: show and
// render build toasts, probe and doctor inspect the host, config manages the
// layered configuration and version prints build information.
package cli

import (
	"io"
	"log"
	"os"

	"github.com/ariel-frischer/toastkit/internal/cli/config"
	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/ariel-frischer/toastkit/internal/cli/toasts"
	"github.com/ariel-frischer/toastkit/internal/cli/util"
	apperrors "github.com/ariel-frischer/toastkit/internal/errors"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupToasts        = shared.GroupToasts
	GroupConfiguration = shared.GroupConfiguration
	GroupInfo          = shared.GroupInfo
)

// NewRootCmd builds the command tree around deps.
func NewRootCmd(deps *shared.Deps) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "toastctl",
		Short: "Windows toast notifications from the command line",
		Long: `toastctl - Windows toast notifications from the command line

Build a toast from flags or a YAML manifest, show it through the Windows
notification platform, and optionally wait for the user to react. Windows 8.x
hosts get the legacy templates automatically.

Source: https://github.com/ariel-frischer/toastkit`,
		Example: `  # Show a toast
  toastctl show --title "Build finished" --text1 "All tests passed"

  # Ask and wait for the answer
  toastctl show --title "Reboot now?" --action "Yes=yes" --action "Later=later" --wait

  # Print the XML instead of showing it
  toastctl render --title "Build finished"

  # What does this machine get?
  toastctl probe
  toastctl doctor`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), debug)
		},
	}

	rootCmd.AddGroup(&cobra.Group{ID: GroupToasts, Title: "Toasts:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInfo, Title: "Information:"})
	rootCmd.SetHelpCommandGroupID(GroupInfo)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	rootCmd.PersistentFlags().StringP(shared.ConfigFlag, "c", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(), "Run '"+cmd.CommandPath()+" --help' for usage")
	})

	toasts.Register(rootCmd, deps)
	config.Register(rootCmd)
	util.Register(rootCmd, deps)
	return rootCmd
}

// Execute runs the root command with the real host services
func Execute() error {
	return Run(NewRootCmd(shared.DefaultDeps()), os.Stderr)
}

// Run executes cmd and prints a failure to errOut. Exit-code-only errors are not printed.
func Run(cmd *cobra.Command, errOut io.Writer) error {
	err := cmd.Execute()
	if err == nil || shared.IsExitError(err) {
		return err
	}
	apperrors.FprintError(errOut, apperrors.FromToastError(err))
	return err
}

// configureLogging sends the packages' bracketed log lines to w with --debug
// and drops them otherwise.
func configureLogging(w io.Writer, debug bool) {
	log.SetFlags(0)
	if debug {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}

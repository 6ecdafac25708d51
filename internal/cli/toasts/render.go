package toasts

import (
	"fmt"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newRenderCmd(deps *shared.Deps) *cobra.Command {
	var flags toastFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the toast XML without showing it",
		Long: `Build a toast from flags or a manifest and print the XML document that
'toastctl show' would hand to Windows. Nothing is shown; this works on any OS.`,
		Example: `  # Document for the current host
  toastctl render --title "Build finished" --text1 "All tests passed"

  # What a Windows 8.1 machine would get
  toastctl render --host legacy --title "Build finished" --image C:\logo.png

  # Check a manifest
  toastctl render -f toast.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			t, err := flags.build(cfg, deps.Probe)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.GroupID = shared.GroupToasts
	flags.register(cmd.Flags())
	return cmd
}

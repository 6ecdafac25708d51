package util

import (
	"fmt"
	"io"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/ariel-frischer/toastkit/internal/winver"
	"github.com/spf13/cobra"
)

func newProbeCmd(deps *shared.Deps) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Show the Windows version and which toast templates it gets",
		Long: `Report the host's Windows version as read from ntdll, whether it counts
as a legacy host (Windows 8.x and older), and the template toasts use there.

The host setting from the configuration is applied, so 'TOASTCTL_HOST=legacy
toastctl probe' shows what a forced legacy run would do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			report := newProbeReport(deps.Probe, cfg.HostMode())
			if plain {
				report.writePlain(cmd.OutOrStdout())
			} else {
				report.writePretty(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.GroupID = shared.GroupInfo
	cmd.Flags().BoolVar(&plain, "plain", false, "key=value output for scripts")
	return cmd
}

type probeReport struct {
	version   winver.Version
	available bool
	mode      winver.Mode
	legacy    bool
	template  string
}

func newProbeReport(probe *winver.Probe, mode winver.Mode) probeReport {
	v, ok := probe.Version()
	legacy := mode.Resolve(probe)
	template := toast.TemplateGeneric
	if legacy {
		template = fmt.Sprintf("%s (%s with an image)", toast.TemplateText04, toast.TemplateImageAndText04)
	}
	return probeReport{
		version:   v,
		available: ok,
		mode:      mode,
		legacy:    legacy,
		template:  template,
	}
}

func (r probeReport) versionString() string {
	if !r.available {
		return "unavailable"
	}
	return r.version.String()
}

func (r probeReport) writePlain(w io.Writer) {
	fmt.Fprintf(w, "version=%s\n", r.versionString())
	fmt.Fprintf(w, "mode=%s\n", r.mode)
	fmt.Fprintf(w, "legacy=%t\n", r.legacy)
	fmt.Fprintf(w, "template=%s\n", r.template)
}

func (r probeReport) writePretty(w io.Writer) {
	colors := shared.NewColors()
	row := func(label string, value interface{}) {
		fmt.Fprintf(w, "%s  %v\n", colors.Yellow(fmt.Sprintf("%10s", label)), value)
	}

	version := r.versionString()
	if !r.available {
		version = colors.Dim("unavailable (treated as modern)")
	}
	row("Windows", version)
	row("Mode", r.mode)
	host := colors.Green("modern")
	if r.legacy {
		host = colors.Yellow("legacy")
	}
	row("Host", host)
	row("Template", colors.White(r.template))
}

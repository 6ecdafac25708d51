package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/toastkit/internal/build"
	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for toastctl",
		Example: `  # Show version info
  toastctl version

  # Plain output (for scripts)
  toastctl version --plain`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if plain {
				printPlainVersion(cmd.OutOrStdout(), build.Current())
			} else {
				printPrettyVersion(cmd.OutOrStdout(), build.Current(), shared.GetTerminalWidth())
			}
		},
	}
	cmd.GroupID = shared.GroupInfo
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer, info build.Info) {
	fmt.Fprintf(w, "toastctl %s\n", info.Version)
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built: %s\n", info.BuildDate)
	fmt.Fprintf(w, "go: %s\n", info.GoVersion)
	fmt.Fprintf(w, "platform: %s\n", info.Platform)
}

// printPrettyVersion prints a styled version output with logo and box
func printPrettyVersion(w io.Writer, info build.Info, termWidth int) {
	colors := shared.NewColors()

	fmt.Fprintln(w)
	logoPadding := max(0, (termWidth-shared.LogoDisplayWidth)/2)
	for _, line := range shared.Logo {
		fmt.Fprintln(w, colors.Cyan(strings.Repeat(" ", logoPadding)+line))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, colors.Dim(shared.CenterText(shared.Tagline, termWidth)))
	fmt.Fprintln(w)

	rows := []struct {
		label string
		value string
	}{
		{"Version", info.Version},
		{"Commit", truncateCommit(info.Commit)},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Platform", info.Platform},
	}

	boxWidth := 44
	if termWidth < 50 {
		boxWidth = max(20, termWidth-6)
	}
	contentWidth := boxWidth - 4
	pad := strings.Repeat(" ", max(0, (termWidth-boxWidth)/2))

	fmt.Fprintln(w, pad+shared.BoxTopLeft+strings.Repeat(shared.BoxHorizontal, boxWidth-2)+shared.BoxTopRight)
	fmt.Fprintln(w, pad+shared.BoxVertical+strings.Repeat(" ", boxWidth-2)+shared.BoxVertical)
	for _, row := range rows {
		line := fmt.Sprintf("  %s    %s", colors.Yellow(fmt.Sprintf("%10s", row.label)), colors.White(row.value))
		// label width + spacing + value + margin
		if lineLen := 10 + 4 + len(row.value) + 2; lineLen < contentWidth {
			line += strings.Repeat(" ", contentWidth-lineLen)
		}
		fmt.Fprintln(w, pad+shared.BoxVertical+" "+line+" "+shared.BoxVertical)
	}
	fmt.Fprintln(w, pad+shared.BoxVertical+strings.Repeat(" ", boxWidth-2)+shared.BoxVertical)
	fmt.Fprintln(w, pad+shared.BoxBottomLeft+strings.Repeat(shared.BoxHorizontal, boxWidth-2)+shared.BoxBottomRight)
	fmt.Fprintln(w)
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

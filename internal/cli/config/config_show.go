package config

import (
	"encoding/json"
	"fmt"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	cfgpkg "github.com/ariel-frischer/toastkit/internal/config"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  toastctl config show
  TOASTCTL_HOST=legacy toastctl config show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			values := effectiveValues(cfg)
			out := cmd.OutOrStdout()

			if jsonOut {
				data, err := json.MarshalIndent(values, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding configuration: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			colors := shared.NewColors()
			for _, key := range cfgpkg.SortedKeys() {
				fmt.Fprintf(out, "%-20s %-12v %s\n", key, display(values[key]), colors.Dim(cfgpkg.KnownKeys[key].Description))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func effectiveValues(cfg *cfgpkg.Configuration) map[string]interface{} {
	return map[string]interface{}{
		"app_id":             cfg.AppID,
		"duration":           cfg.Duration,
		"scenario":           cfg.Scenario,
		"sound":              cfg.Sound,
		"host":               cfg.Host,
		"post_show_delay_ms": cfg.PostShowDelayMS,
		"listen_timeout":     cfg.ListenTimeout,
		"wait":               cfg.Wait,
	}
}

func display(v interface{}) interface{} {
	if s, ok := v.(string); ok && s == "" {
		return `""`
	}
	return v
}

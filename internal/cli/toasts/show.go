package toasts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/ariel-frischer/toastkit/internal/cli/shared"
	apperrors "github.com/ariel-frischer/toastkit/internal/errors"
	"github.com/ariel-frischer/toastkit/internal/notify"
	"github.com/ariel-frischer/toastkit/internal/progress"
	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/spf13/cobra"
)

func newShowCmd(deps *shared.Deps) *cobra.Command {
	var (
		flags   toastFlags
		wait    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a toast notification",
		Long: `Show a Windows toast notification built from flags or a YAML manifest.

With --wait, toastctl blocks until the user clicks the toast, a button, or
dismisses it, and prints what happened. Exit codes: 0 activated, 2 dismissed,
5 no reaction within listen_timeout.`,
		Example: `  # Simple toast
  toastctl show --title "Backup complete" --text1 "42 files copied"

  # Ask a question and wait for the answer
  toastctl show --title "Deploy to production?" \
    --action "Deploy=deploy" --action "Cancel=cancel" --wait

  # Quick reply
  toastctl show --title "Ana" --text1 "Lunch?" --input "reply=Type a reply" \
    --action "Send=send" --wait --json

  # From a manifest
  toastctl show -f toast.yaml`,
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

			platform := deps.Platform(cfg)
			if !wait && !cfg.Wait {
				if err := t.Show(cmd.Context(), platform); err != nil {
					return apperrors.FromToastError(err)
				}
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.ListenFor())
			defer cancel()

			waiter := notify.NewWaiter()
			if err := waiter.Attach(t).Show(ctx, platform); err != nil {
				return apperrors.FromToastError(err)
			}
			log.Printf("[show] toast shown for %s, waiting up to %s", t.AppID(), cfg.ListenFor())

			display := progress.NewWaitDisplayTo(progress.DetectTerminalCapabilities(), cmd.ErrOrStderr())
			display.Start("Waiting for a reaction", time.Now().Add(cfg.ListenFor()))

			ev, err := waiter.Wait(ctx)
			if err != nil {
				display.Fail("No reaction", nil)
				if errors.Is(err, context.DeadlineExceeded) {
					return apperrors.TimeoutError(cfg.ListenFor(), "reaction to the toast")
				}
				return err
			}
			display.Stop()

			if err := writeEvent(cmd.OutOrStdout(), ev, jsonOut); err != nil {
				return err
			}
			switch ev.Kind {
			case toast.EventDismissed:
				return shared.NewExitError(shared.ExitDismissed)
			case toast.EventFailed:
				return apperrors.DeliveryRejected(&toast.DeliveryError{Code: ev.Code, Message: ev.Message})
			}
			return nil
		},
	}
	cmd.GroupID = shared.GroupToasts
	flags.register(cmd.Flags())
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait for the user to react and print the event")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the event as JSON (with --wait)")
	return cmd
}

// eventOutput is the JSON form of a toast event printed by show --wait --json.
type eventOutput struct {
	Event     string            `json:"event"`
	Arguments string            `json:"arguments,omitempty"`
	Inputs    map[string]string `json:"inputs,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	Code      string            `json:"code,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// writeEvent prints ev as one JSON object, or as tab separated lines:
// the kind and its detail first, then one "input<TAB>id<TAB>value" per input.
func writeEvent(w io.Writer, ev toast.Event, asJSON bool) error {
	out := eventOutput{Event: string(ev.Kind)}
	switch ev.Kind {
	case toast.EventActivated:
		out.Arguments = ev.Arguments
		out.Inputs = ev.Inputs
	case toast.EventDismissed:
		out.Reason = ev.Reason.String()
	case toast.EventFailed:
		out.Code = fmt.Sprintf("0x%08X", uint32(ev.Code))
		out.Message = ev.Message
	}

	if asJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(out)
	}

	switch ev.Kind {
	case toast.EventActivated:
		fmt.Fprintf(w, "%s\t%s\n", out.Event, out.Arguments)
		ids := make([]string, 0, len(out.Inputs))
		for id := range out.Inputs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(w, "input\t%s\t%s\n", id, out.Inputs[id])
		}
	case toast.EventDismissed:
		fmt.Fprintf(w, "%s\t%s\n", out.Event, out.Reason)
	default:
		fmt.Fprintf(w, "%s\t%s\t%s\n", out.Event, out.Code, out.Message)
	}
	return nil
}

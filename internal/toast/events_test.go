package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDismissalReasonFromCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		code int
		want DismissalReason
		str  string
	}{
		"user canceled":      {code: 0, want: DismissUserCanceled, str: "user canceled"},
		"application hidden": {code: 1, want: DismissApplicationHidden, str: "application hidden"},
		"timed out":          {code: 2, want: DismissTimedOut, str: "timed out"},
		"future value":       {code: 7, want: DismissUnknown, str: "unknown"},
		"negative":           {code: -1, want: DismissUnknown, str: "unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := DismissalReasonFromCode(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestHandlers_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("routes by kind", func(t *testing.T) {
		t.Parallel()
		var got []string
		h := Handlers{
			Activated: func(a Activated) { got = append(got, "activated:"+a.Arguments) },
			Dismissed: func(r DismissalReason) { got = append(got, "dismissed:"+r.String()) },
			Failed:    func(err error) { got = append(got, "failed:"+err.Error()) },
		}

		h.Dispatch(Event{Kind: EventDismissed, Reason: DismissUserCanceled})
		h.Dispatch(Event{Kind: EventActivated, Arguments: "a"})
		h.Dispatch(Event{Kind: EventFailed, Code: 1, Message: "nope"})
		h.Dispatch(Event{Kind: "shown"})

		assert.Equal(t, []string{
			"dismissed:user canceled",
			"activated:a",
			"failed:toast failed (0x00000001): nope",
		}, got)
	})

	t.Run("missing callbacks are skipped", func(t *testing.T) {
		t.Parallel()
		h := Handlers{}
		assert.True(t, h.Empty())
		assert.NotPanics(t, func() {
			h.Dispatch(Event{Kind: EventActivated})
			h.Dispatch(Event{Kind: EventDismissed})
			h.Dispatch(Event{Kind: EventFailed})
		})
	})

	t.Run("activation inputs are copied", func(t *testing.T) {
		t.Parallel()
		raw := map[string]string{"k": "v"}
		var got Activated
		Handlers{Activated: func(a Activated) { got = a }}.Dispatch(Event{Kind: EventActivated, Inputs: raw})

		require.NotNil(t, got.Inputs)
		got.Inputs["k"] = "changed"
		assert.Equal(t, "v", raw["k"])
	})
}

func TestDeliveryError_Error(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "toast failed (0x80070490)", (&DeliveryError{Code: -2147023728}).Error())
}

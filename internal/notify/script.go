package notify

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/ariel-frischer/toastkit/internal/toast"
)

// wire event names written by the script
const (
	eventShown = "shown"
	eventError = "error"
)

// scriptPrelude writes events as BOM-less UTF-8 whatever the console code page.
const scriptPrelude = `$ErrorActionPreference = 'Stop'
try { [Console]::OutputEncoding = New-Object System.Text.UTF8Encoding $false } catch { }
function Emit($o) {
	[Console]::Out.WriteLine(($o | ConvertTo-Json -Compress -Depth 4))
	[Console]::Out.Flush()
}
try {
	[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
	[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
	$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
	$xml.LoadXml('%s')
	$toast = New-Object Windows.UI.Notifications.ToastNotification $xml
%s	[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('%s').Show($toast)
} catch {
	Emit @{ event = 'error'; message = $_.Exception.Message }
	exit 1
}
Emit @{ event = 'shown' }
`

const scriptSubscribe = `	Register-ObjectEvent -InputObject $toast -EventName Activated -SourceIdentifier toast.activated | Out-Null
	Register-ObjectEvent -InputObject $toast -EventName Dismissed -SourceIdentifier toast.dismissed | Out-Null
	Register-ObjectEvent -InputObject $toast -EventName Failed -SourceIdentifier toast.failed | Out-Null
`

const scriptListen = `$deadline = (Get-Date).AddSeconds(%d)
while ((Get-Date) -lt $deadline) {
	$e = Wait-Event -Timeout 1
	if ($null -eq $e) { continue }
	Remove-Event -EventIdentifier $e.EventIdentifier
	switch ($e.SourceIdentifier) {
		'toast.activated' {
			$a = $e.SourceArgs[1] -as [Windows.UI.Notifications.ToastActivatedEventArgs]
			$inputs = @{}
			if ($null -ne $a -and $null -ne $a.UserInput) {
				foreach ($k in $a.UserInput.Keys) { $inputs[$k] = [string]$a.UserInput[$k] }
			}
			Emit @{ event = 'activated'; arguments = [string]$a.Arguments; inputs = $inputs }
		}
		'toast.dismissed' {
			Emit @{ event = 'dismissed'; reason = [int]$e.SourceArgs[1].Reason }
		}
		'toast.failed' {
			$err = $e.SourceArgs[1].ErrorCode
			Emit @{ event = 'failed'; code = [int]$err.HResult; message = [string]$err.Message }
			exit 0
		}
	}
}
`

// buildScript returns the PowerShell script that shows doc for appID and, when
// listen is set, reports events for up to listenFor.
func buildScript(doc toast.Document, appID string, listen bool, listenFor time.Duration) string {
	subscribe := ""
	if listen {
		subscribe = scriptSubscribe
	}
	script := fmt.Sprintf(scriptPrelude, escapeForPowerShell(doc.String()), subscribe, escapeForPowerShell(appID))
	if listen {
		seconds := int(listenFor / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		script += fmt.Sprintf(scriptListen, seconds)
	}
	return script
}

var powerShellQuotes = strings.NewReplacer("'", "''", "\u2018", "\u2018\u2018", "\u2019", "\u2019\u2019", "\u201a", "\u201a\u201a", "\u201b", "\u201b\u201b")

// escapeForPowerShell escapes s for a single-quoted PowerShell string.
// PowerShell also treats the typographic single quotes as delimiters.
func escapeForPowerShell(s string) string {
	return powerShellQuotes.Replace(s)
}

// encodeCommand encodes a script for powershell -EncodedCommand (base64 of UTF-16LE).
func encodeCommand(script string) string {
	units := utf16.Encode([]rune(script))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type wireEvent struct {
	Event     string            `json:"event"`
	Arguments string            `json:"arguments"`
	Inputs    map[string]string `json:"inputs"`
	Reason    *int              `json:"reason"`
	Code      int32             `json:"code"`
	Message   string            `json:"message"`
}

// DecodeEvent decodes one line written by the listener script. The returned
// kind is the wire name; toast event kinds map one to one.
func DecodeEvent(line []byte) (toast.Event, error) {
	var w wireEvent
	if err := json.Unmarshal(bytes.TrimPrefix(line, utf8BOM), &w); err != nil {
		return toast.Event{}, fmt.Errorf("decoding toast event: %w", err)
	}
	if w.Event == "" {
		return toast.Event{}, fmt.Errorf("decoding toast event: missing event name")
	}

	ev := toast.Event{
		Kind:      toast.EventKind(w.Event),
		Arguments: w.Arguments,
		Inputs:    w.Inputs,
		Code:      w.Code,
		Message:   w.Message,
	}
	if ev.Inputs == nil {
		ev.Inputs = map[string]string{}
	}
	if w.Event == string(toast.EventDismissed) {
		ev.Reason = toast.DismissUnknown
		if w.Reason != nil {
			ev.Reason = toast.DismissalReasonFromCode(*w.Reason)
		}
	}
	return ev, nil
}

// Package notify delivers rendered toast documents to the Windows notification
// shell.
//
// The platform drives the WinRT ToastNotificationManager through PowerShell,
// so it needs neither cgo nor COM bindings and builds with CGO_ENABLED=0.
// A short script loads the document into a Windows.Data.Xml.Dom.XmlDocument,
// shows it, and, when callbacks are registered, reports Activated, Dismissed
// and Failed events as one JSON object per line on stdout:
//
//	{"event":"shown"}
//	{"event":"activated","arguments":"reply","inputs":{"msg":"on my way"}}
//	{"event":"dismissed","reason":2}
//	{"event":"failed","code":-2143420143,"message":"..."}
//
// DecodeEvent turns those lines into toast.Event values; nothing from the
// WinRT event arguments leaks past this package.
//
// # Platform Support
//
//   - Windows: PowerShell with the WinRT projection (Windows PowerShell 5.1)
//   - Other platforms: a platform that returns toast.ErrUnsupportedPlatform
//
// # Usage
//
//	platform := notify.NewPlatform(notify.WithListenTimeout(time.Minute))
//	waiter := notify.NewWaiter()
//	t := waiter.Attach(toast.New(toast.PowerShellAppID).Title("Deploy done"))
//	if err := t.Show(ctx, platform); err != nil {
//		return err
//	}
//	ev, err := waiter.Wait(ctx)
package notify

// Package toast builds Windows toast notification documents and hands them to a
// delivery platform.
//
// A Toast is an immutable value: every configuration call returns an updated
// copy, so a partially configured toast can be used as a template for several
// notifications.
//
//	t := toast.New(toast.PowerShellAppID).
//		Title("Build finished").
//		Text1("toastkit: all checks passed").
//		Icon(`C:\icons\ok.png`, toast.CropCircular, "ok").
//		Audio(toast.Play(toast.SoundIM)).
//		Action(toast.ActionFromContent("Open log"))
//	fmt.Println(t.Render())
//
// Hosts older than Windows 10 only understand the legacy ToastText04 and
// ToastImageAndText04 templates. On such hosts a toast carries a single image
// (the last one added), and icon or hero images degrade to a plain image.
// The host generation is detected through the winver package unless an
// Option overrides it.
//
// All caller supplied text is escaped when it is stored; Render only
// concatenates.
package toast

package toast

import (
	"fmt"
	"strings"
)

// Placement decides where an action is shown.
type Placement string

const (
	// PlacementInline renders a button on the toast
	PlacementInline Placement = ""
	// PlacementContextMenu renders an entry in the toast's context menu
	PlacementContextMenu Placement = "contextMenu"
)

// ActivationType decides what the shell does when an action is invoked.
type ActivationType string

const (
	// ActivationDefault leaves the attribute out, which means foreground
	ActivationDefault ActivationType = ""
	// ActivationForeground launches the foreground app
	ActivationForeground ActivationType = "foreground"
	// ActivationBackground triggers the app's background task
	ActivationBackground ActivationType = "background"
	// ActivationProtocol launches Arguments as a protocol uri
	ActivationProtocol ActivationType = "protocol"
	// ActivationSystem lets the system handle the action (snooze, dismiss)
	ActivationSystem ActivationType = "system"
)

// AfterActivation decides what happens to the toast after an action is invoked.
type AfterActivation string

const (
	// AfterActivationDefault dismisses the toast
	AfterActivationDefault AfterActivation = ""
	// AfterActivationPendingUpdate keeps the toast in a pending state until it is updated
	AfterActivationPendingUpdate AfterActivation = "pendingUpdate"
)

// Action is a button or context menu entry. Arguments are returned verbatim on activation.
type Action struct {
	Content         string
	Arguments       string
	Placement       Placement
	ActivationType  ActivationType
	InputID         string
	AfterActivation AfterActivation
	ImageURI        string
}

// ActionFromContent creates an inline action whose arguments are its label.
func ActionFromContent(content string) Action {
	return Action{Content: content, Arguments: content}
}

func (a Action) escaped() Action {
	return Action{
		Content:         escape(a.Content),
		Arguments:       escape(a.Arguments),
		Placement:       a.Placement,
		ActivationType:  a.ActivationType,
		InputID:         escape(a.InputID),
		AfterActivation: a.AfterActivation,
		ImageURI:        escape(a.ImageURI),
	}
}

// writeTo renders an already escaped action.
func (a Action) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, `<action content="%s" arguments="%s"`, a.Content, a.Arguments)
	if a.ActivationType != ActivationDefault {
		fmt.Fprintf(b, ` activationType="%s"`, a.ActivationType)
	}
	if a.Placement == PlacementContextMenu {
		fmt.Fprintf(b, ` placement="%s"`, a.Placement)
	}
	if a.InputID != "" {
		fmt.Fprintf(b, ` hint-inputId="%s"`, a.InputID)
	}
	if a.AfterActivation != AfterActivationDefault {
		fmt.Fprintf(b, ` afterActivationBehavior="%s"`, a.AfterActivation)
	}
	if a.ImageURI != "" {
		fmt.Fprintf(b, ` imageUri="%s"`, a.ImageURI)
	}
	b.WriteString(" />")
}

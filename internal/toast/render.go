package toast

import (
	"fmt"
	"strings"
)

// Document is a rendered toast XML document.
type Document string

func (d Document) String() string { return string(d) }

// template picks the binding template for the host generation.
func (t Toast) template() string {
	if !t.legacy {
		return TemplateGeneric
	}
	// ToastImageAndText04 shows an empty placeholder when there is no image
	if len(t.images) == 0 {
		return TemplateText04
	}
	return TemplateImageAndText04
}

// Render assembles the toast document. It never fails and the same toast
// always renders the same document.
func (t Toast) Render() Document {
	var b strings.Builder

	b.WriteString("<toast")
	if t.duration != DurationUnset {
		fmt.Fprintf(&b, ` duration="%s"`, t.duration)
	}
	if t.scenario != ScenarioDefault {
		fmt.Fprintf(&b, ` scenario="%s"`, t.scenario)
	}
	if t.launch != "" {
		fmt.Fprintf(&b, ` launch="%s"`, t.launch)
	}
	b.WriteString(">")

	if t.hasHeader && !t.legacy {
		fmt.Fprintf(&b, `<header id="%s" title="%s" arguments="%s" />`, t.header.ID, t.header.Title, t.header.Arguments)
	}

	fmt.Fprintf(&b, `<visual><binding template="%s">`, t.template())
	for _, img := range t.images {
		img.writeTo(&b)
	}
	t.writeText(&b, 1, t.title)
	t.writeText(&b, 2, t.line1)
	t.writeText(&b, 3, t.line2)
	b.WriteString("</binding></visual>")

	b.WriteString(t.audio.element())

	if len(t.inputs) > 0 || len(t.actions) > 0 {
		b.WriteString("<actions>")
		for _, in := range t.inputs {
			in.writeTo(&b)
		}
		for _, a := range t.actions {
			a.writeTo(&b)
		}
		b.WriteString("</actions>")
	}

	b.WriteString("</toast>")
	return Document(b.String())
}

// writeText emits a text slot. Legacy templates address slots by position.
func (t Toast) writeText(b *strings.Builder, id int, s text) {
	if !s.set {
		return
	}
	if t.legacy {
		fmt.Fprintf(b, `<text id="%d">%s</text>`, id, s.value)
		return
	}
	fmt.Fprintf(b, `<text>%s</text>`, s.value)
}

func (img image) writeTo(b *strings.Builder) {
	switch img.role {
	case roleAppLogo:
		b.WriteString(`<image placement="appLogoOverride"`)
		if img.crop == CropCircular {
			b.WriteString(` hint-crop="circle"`)
		}
	case roleHero:
		b.WriteString(`<image placement="Hero"`)
	default:
		b.WriteString(`<image id="1"`)
	}
	fmt.Fprintf(b, ` src="%s" alt="%s" />`, img.src, img.alt)
}

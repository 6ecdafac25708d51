package toast

import (
	"fmt"
	"strings"
)

// InputType is the kind of an input field.
type InputType string

const (
	// InputText is a free text box
	InputText InputType = "text"
	// InputSelection is a single-choice drop down
	InputSelection InputType = "selection"
)

// Selection is one choice of a selection input. An empty ID takes the Content.
type Selection struct {
	ID      string
	Content string
}

// SelectionsFromContents creates choices whose ids are their labels.
func SelectionsFromContents(contents ...string) []Selection {
	out := make([]Selection, 0, len(contents))
	for _, c := range contents {
		out = append(out, Selection{ID: c, Content: c})
	}
	return out
}

// Input is a user input field. Its value is reported under ID on activation.
type Input struct {
	ID           string
	Type         InputType
	Title        string
	Placeholder  string
	DefaultInput string
	Selections   []Selection
}

// TextInput creates a text box.
func TextInput(id string) Input {
	return Input{ID: id, Type: InputText}
}

// SelectionInput creates a single-choice input.
func SelectionInput(id string, choices ...Selection) Input {
	return Input{ID: id, Type: InputSelection, Selections: choices}
}

// WithPlaceholder sets the grey hint shown in an empty text box.
func (in Input) WithPlaceholder(s string) Input {
	in.Placeholder = s
	return in
}

// WithTitle sets the label rendered above the input.
func (in Input) WithTitle(s string) Input {
	in.Title = s
	return in
}

// WithDefault sets the initial value (a selection id for selection inputs).
func (in Input) WithDefault(s string) Input {
	in.DefaultInput = s
	return in
}

func (in Input) escaped() Input {
	out := Input{
		ID:           escape(in.ID),
		Type:         in.Type,
		Title:        escape(in.Title),
		Placeholder:  escape(in.Placeholder),
		DefaultInput: escape(in.DefaultInput),
	}
	if out.Type == "" {
		out.Type = InputText
	}
	if len(in.Selections) > 0 {
		out.Selections = make([]Selection, 0, len(in.Selections))
		for _, s := range in.Selections {
			id := s.ID
			if id == "" {
				id = s.Content
			}
			out.Selections = append(out.Selections, Selection{ID: escape(id), Content: escape(s.Content)})
		}
	}
	return out
}

// writeTo renders an already escaped input.
func (in Input) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, `<input id="%s" type="%s"`, in.ID, in.Type)
	if in.Title != "" {
		fmt.Fprintf(b, ` title="%s"`, in.Title)
	}
	// the shell ignores placeHolderContent on selection inputs
	if in.Placeholder != "" && in.Type == InputText {
		fmt.Fprintf(b, ` placeHolderContent="%s"`, in.Placeholder)
	}
	if in.DefaultInput != "" {
		fmt.Fprintf(b, ` defaultInput="%s"`, in.DefaultInput)
	}
	if in.Type != InputSelection || len(in.Selections) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")
	for _, s := range in.Selections {
		fmt.Fprintf(b, `<selection id="%s" content="%s" />`, s.ID, s.Content)
	}
	b.WriteString("</input>")
}

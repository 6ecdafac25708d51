package toast

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modern() Toast { return New("app", WithLegacy(false)) }
func legacy() Toast { return New("app", WithLegacy(true)) }

// wellFormed parses doc and returns the character data of every element in order.
func wellFormed(t *testing.T, doc Document) []string {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc.String()))
	var texts []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return texts
		}
		require.NoError(t, err, "document is not well-formed: %s", doc)
		if cd, ok := tok.(xml.CharData); ok {
			texts = append(texts, string(cd))
		}
	}
}

func attrs(t *testing.T, doc Document, element string) []map[string]string {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc.String()))
	var out []map[string]string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == element {
			m := make(map[string]string, len(se.Attr))
			for _, a := range se.Attr {
				m[a.Name.Local] = a.Value
			}
			out = append(out, m)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`<toast><visual><binding template="ToastGeneric"></binding></visual></toast>`,
		modern().Render().String())
	assert.Equal(t,
		`<toast><visual><binding template="ToastText04"></binding></visual></toast>`,
		legacy().Render().String())
}

func TestRender_EscapesUserText(t *testing.T) {
	t.Parallel()

	nasty := `<b>"Tom" & 'Jerry'</b>`
	tests := map[string]Toast{
		"modern": modern(),
		"legacy": legacy(),
	}

	for name, base := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc := base.
				Title(nasty).
				Text1(nasty).
				Text2(nasty).
				Launch(nasty).
				Image(`C:\pics\<a&b>.png`, nasty).
				Input(TextInput(nasty).WithPlaceholder(nasty)).
				Input(SelectionInput("s", Selection{ID: nasty, Content: nasty})).
				Action(Action{Content: nasty, Arguments: nasty, InputID: nasty}).
				Render()

			texts := wellFormed(t, doc)
			assert.Equal(t, []string{nasty, nasty, nasty}, texts)
			assert.NotContains(t, doc.String(), `"Tom"`)
			assert.NotContains(t, doc.String(), `'Jerry'`)
			assert.NotContains(t, doc.String(), "<b>")

			for _, el := range []string{"toast", "image", "input", "selection", "action"} {
				for _, a := range attrs(t, doc, el) {
					for k, v := range a {
						if strings.Contains(v, "Tom") {
							assert.Equal(t, nasty, v, "%s@%s", el, k)
						}
					}
				}
			}
			img := attrs(t, doc, "image")
			require.Len(t, img, 1)
			assert.Equal(t, `file:///C:\pics\<a&b>.png`, img[0]["src"])
		})
	}
}

func TestRender_DropsCharactersXMLForbids(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  string
	}{
		"bell":                 {input: "ding\x07dong", want: "dingdong"},
		"ansi colour":          {input: "\x1b[31mred\x1b[0m", want: "[31mred[0m"},
		"nul and form feed":    {input: "a\x00b\x0cc", want: "abc"},
		"invalid utf-8":        {input: "caf\xe9", want: "caf\uFFFD"},
		"noncharacter":         {input: "x\uFFFEy", want: "xy"},
		"whitespace kept":      {input: "a\tb\nc", want: "a\tb\nc"},
		"astral plane kept":    {input: "ok \U0001F600", want: "ok \U0001F600"},
		"markup still escaped": {input: "<\x07>", want: "<>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, base := range []Toast{modern(), legacy()} {
				doc := base.
					Title(tt.input).
					Image(tt.input+".png", tt.input).
					Input(TextInput("reply").WithPlaceholder(tt.input)).
					Action(ActionFromContent(tt.input)).
					Render()

				texts := wellFormed(t, doc)
				require.Len(t, texts, 1)
				assert.Equal(t, tt.want, texts[0])
				action := attrs(t, doc, "action")
				require.Len(t, action, 1)
				if !strings.ContainsAny(tt.want, "\t\n\r") {
					assert.Equal(t, tt.want, action[0]["content"])
				}
			}
		})
	}
}

func TestRender_NoDoubleEscape(t *testing.T) {
	t.Parallel()

	doc := modern().Title("a &amp; b").Render().String()
	assert.Contains(t, doc, "<text>a &amp;amp; b</text>")

	again := modern().Title("fish & chips")
	assert.Equal(t, again.Render(), again.Render())
	assert.Contains(t, again.Render().String(), "<text>fish &amp; chips</text>")
}

func TestRender_ModernImages(t *testing.T) {
	t.Parallel()

	doc := modern().
		Icon(`C:\a.png`, CropCircular, "alt").
		Hero(`C:\b.png`, "alt2").
		Image(`C:\c.png`, "alt3").
		Render()

	assert.Equal(t,
		`<toast><visual><binding template="ToastGeneric">`+
			`<image placement="appLogoOverride" hint-crop="circle" src="file:///C:\a.png" alt="alt" />`+
			`<image placement="Hero" src="file:///C:\b.png" alt="alt2" />`+
			`<image id="1" src="file:///C:\c.png" alt="alt3" />`+
			`</binding></visual></toast>`,
		doc.String())

	images := attrs(t, doc, "image")
	require.Len(t, images, 3)
	assert.Equal(t, "appLogoOverride", images[0]["placement"])
	assert.Equal(t, "circle", images[0]["hint-crop"])
	assert.Equal(t, "Hero", images[1]["placement"])
	assert.Empty(t, images[2]["placement"])
}

func TestRender_ModernSquareIconHasNoCrop(t *testing.T) {
	t.Parallel()

	images := attrs(t, modern().Icon("a.png", CropSquare, "a").Render(), "image")
	require.Len(t, images, 1)
	_, hasCrop := images[0]["hint-crop"]
	assert.False(t, hasCrop)
}

func TestRender_ModernKeepsEveryImage(t *testing.T) {
	t.Parallel()

	doc := modern().Image("1.png", "1").Image("2.png", "2").Image("3.png", "3").Render()
	assert.Len(t, attrs(t, doc, "image"), 3)
}

func TestRender_LegacySingleImage(t *testing.T) {
	t.Parallel()

	doc := legacy().Image("1.png", "one").Image("2.png", "two").Image("3.png", "three").Render()

	images := attrs(t, doc, "image")
	require.Len(t, images, 1)
	assert.Equal(t, "file:///3.png", images[0]["src"])
	assert.Equal(t, "three", images[0]["alt"])
}

func TestRender_LegacyIconAndHeroFallBackToImage(t *testing.T) {
	t.Parallel()

	plain := legacy().Image("p.png", "alt").Render()

	assert.Equal(t, plain, legacy().Icon("p.png", CropCircular, "alt").Render())
	assert.Equal(t, plain, legacy().Hero("p.png", "alt").Render())

	mixed := legacy().Icon("a.png", CropCircular, "a").Hero("b.png", "b").Image("c.png", "c").Render()
	images := attrs(t, mixed, "image")
	require.Len(t, images, 1)
	assert.Equal(t, "file:///c.png", images[0]["src"])
	assert.NotContains(t, mixed.String(), "placement=")
	assert.NotContains(t, mixed.String(), "hint-crop")
}

func TestRender_TemplateSelection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		toast Toast
		want  string
	}{
		"legacy without image":   {toast: legacy().Title("t"), want: TemplateText04},
		"legacy with image":      {toast: legacy().Image("a.png", "a"), want: TemplateImageAndText04},
		"legacy with hero":       {toast: legacy().Hero("a.png", "a"), want: TemplateImageAndText04},
		"modern without image":   {toast: modern().Title("t"), want: TemplateGeneric},
		"modern with one image":  {toast: modern().Image("a.png", "a"), want: TemplateGeneric},
		"modern with two images": {toast: modern().Image("a.png", "a").Hero("b.png", "b"), want: TemplateGeneric},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			bindings := attrs(t, tt.toast.Render(), "binding")
			require.Len(t, bindings, 1)
			assert.Equal(t, tt.want, bindings[0]["template"])
		})
	}
}

func TestRender_TextOrderAndIDs(t *testing.T) {
	t.Parallel()

	// set in reverse order; render order is fixed
	m := modern().Text2("three").Text1("two").Title("one").Image("i.png", "i")
	assert.Contains(t, m.Render().String(),
		`<image id="1" src="file:///i.png" alt="i" /><text>one</text><text>two</text><text>three</text></binding>`)

	l := legacy().Text2("three").Title("one")
	assert.Contains(t, l.Render().String(), `<text id="1">one</text><text id="3">three</text>`)
}

func TestRender_RootAttributes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		toast Toast
		want  string
	}{
		"none":             {toast: modern(), want: `<toast>`},
		"short":            {toast: modern().Duration(DurationShort), want: `<toast duration="short">`},
		"long alarm":       {toast: modern().Duration(DurationLong).Scenario(ScenarioAlarm), want: `<toast duration="long" scenario="alarm">`},
		"reminder":         {toast: modern().Scenario(ScenarioReminder), want: `<toast scenario="reminder">`},
		"incoming call":    {toast: modern().Scenario(ScenarioIncomingCall), want: `<toast scenario="incomingCall">`},
		"default scenario": {toast: modern().Scenario(ScenarioAlarm).Scenario(ScenarioDefault), want: `<toast>`},
		"launch":           {toast: modern().Launch("open=1"), want: `<toast launch="open=1">`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, strings.HasPrefix(tt.toast.Render().String(), tt.want), tt.toast.Render().String())
		})
	}
}

func TestRender_Header(t *testing.T) {
	t.Parallel()

	h := Header{ID: "build", Title: "Builds & Tests", Arguments: "open=builds"}
	assert.Contains(t, modern().Header(h).Render().String(),
		`<toast><header id="build" title="Builds &amp; Tests" arguments="open=builds" /><visual>`)
	assert.NotContains(t, legacy().Header(h).Render().String(), "<header")

	assert.Equal(t, Header{ID: "x", Title: "x"}, HeaderFromTitle("x"))
}

func TestRender_Audio(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		audio   Audio
		want    string
		noAudio bool
	}{
		"silent":        {audio: Silent(), want: `<audio silent="true" />`},
		"unset":         {audio: Audio{}, noAudio: true},
		"default":       {audio: Play(SoundDefault), noAudio: true},
		"sms":           {audio: Play(SoundSMS), want: `<audio src="ms-winsoundevent:Notification.SMS" />`},
		"alarm once":    {audio: PlayOnce(LoopAlarm), want: `<audio src="ms-winsoundevent:Notification.Looping.Alarm" />`},
		"alarm looping": {audio: PlayLooping(LoopAlarm), want: `<audio loop="true" src="ms-winsoundevent:Notification.Looping.Alarm" />`},
		"call10 loop":   {audio: PlayLooping(LoopCall10), want: `<audio loop="true" src="ms-winsoundevent:Notification.Looping.Call10" />`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc := modern().Audio(tt.audio).Render()
			if tt.noAudio {
				assert.NotContains(t, doc.String(), "<audio")
				return
			}
			assert.Contains(t, doc.String(), "</visual>"+tt.want+"</toast>")
		})
	}

	looped := attrs(t, modern().Audio(PlayLooping(LoopAlarm)).Render(), "audio")
	require.Len(t, looped, 1)
	assert.Equal(t, "true", looped[0]["loop"])
	assert.True(t, strings.HasSuffix(looped[0]["src"], "Notification.Looping.Alarm"))
}

func TestRender_Actions(t *testing.T) {
	t.Parallel()

	doc := modern().
		Action(Action{Content: "Hey", Arguments: "hey"}).
		Action(ActionFromContent("Hey2")).
		Action(Action{Content: "Context", Arguments: "ctx", Placement: PlacementContextMenu}).
		Action(Action{Content: "Web", Arguments: "https://example.com", ActivationType: ActivationProtocol}).
		Render()

	actions := attrs(t, doc, "action")
	require.Len(t, actions, 4)

	_, placed := actions[0]["placement"]
	assert.False(t, placed, "inline actions carry no placement")
	assert.Equal(t, "hey", actions[0]["arguments"])

	assert.Equal(t, "Hey2", actions[1]["content"])
	assert.Equal(t, "Hey2", actions[1]["arguments"])

	assert.Equal(t, "contextMenu", actions[2]["placement"])
	assert.Equal(t, "protocol", actions[3]["activationType"])

	assert.Contains(t, doc.String(), `<action content="Context" arguments="ctx" placement="contextMenu" />`)
}

func TestRender_ActionOptionalAttributes(t *testing.T) {
	t.Parallel()

	doc := modern().Action(Action{
		Content:         "Reply",
		Arguments:       "reply",
		ActivationType:  ActivationBackground,
		InputID:         "msg",
		AfterActivation: AfterActivationPendingUpdate,
		ImageURI:        "reply.png",
	}).Render()

	assert.Contains(t, doc.String(),
		`<action content="Reply" arguments="reply" activationType="background" hint-inputId="msg" afterActivationBehavior="pendingUpdate" imageUri="reply.png" />`)
}

func TestRender_InputsPrecedeActions(t *testing.T) {
	t.Parallel()

	doc := modern().
		Action(ActionFromContent("Send")).
		Input(TextInput("reply").WithPlaceholder("Type a reply")).
		Action(ActionFromContent("Later")).
		Input(SelectionInput("when", SelectionsFromContents("1h", "4h")...)).
		Render()

	assert.Contains(t, doc.String(),
		`<actions>`+
			`<input id="reply" type="text" placeHolderContent="Type a reply" />`+
			`<input id="when" type="selection"><selection id="1h" content="1h" /><selection id="4h" content="4h" /></input>`+
			`<action content="Send" arguments="Send" />`+
			`<action content="Later" arguments="Later" />`+
			`</actions>`)
	wellFormed(t, doc)
}

func TestRender_InputDetails(t *testing.T) {
	t.Parallel()

	doc := modern().
		Input(Input{ID: "plain"}).
		Input(TextInput("t").WithTitle("Name").WithDefault("anon")).
		Input(SelectionInput("s", Selection{Content: "Label only"}, Selection{ID: "b", Content: "B"}).WithPlaceholder("ignored")).
		Render()

	assert.Contains(t, doc.String(), `<input id="plain" type="text" />`)
	assert.Contains(t, doc.String(), `<input id="t" type="text" title="Name" defaultInput="anon" />`)
	assert.Contains(t, doc.String(),
		`<input id="s" type="selection"><selection id="Label only" content="Label only" /><selection id="b" content="B" /></input>`)
	assert.NotContains(t, doc.String(), "ignored")
}

func TestRender_NoActionsSectionWhenEmpty(t *testing.T) {
	t.Parallel()
	assert.NotContains(t, modern().Title("x").Render().String(), "<actions>")
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	toast := modern().
		Title("t").Text1("1").Text2("2").
		Icon("i.png", CropCircular, "i").
		Audio(PlayOnce(LoopCall)).
		Duration(DurationLong).
		Input(TextInput("x")).
		Action(ActionFromContent("ok"))

	assert.Equal(t, toast.Render(), toast.Render())
}

func TestToast_BranchesDoNotShareState(t *testing.T) {
	t.Parallel()

	base := modern().Image("base.png", "base").Action(ActionFromContent("base"))
	// give the underlying slices spare capacity
	base = base.Image("two.png", "two").Action(ActionFromContent("two"))

	left := base.Image("left.png", "left").Action(ActionFromContent("left")).Input(TextInput("l"))
	right := base.Image("right.png", "right").Action(ActionFromContent("right")).Input(TextInput("r"))

	assert.Contains(t, left.Render().String(), "left.png")
	assert.NotContains(t, left.Render().String(), "right")
	assert.Contains(t, right.Render().String(), "right.png")
	assert.NotContains(t, right.Render().String(), "left")
	assert.NotContains(t, base.Render().String(), "left")
	assert.NotContains(t, base.Render().String(), "right")
}

func TestToast_SelectionSliceNotAliased(t *testing.T) {
	t.Parallel()

	choices := []Selection{{ID: "a", Content: "A"}}
	toast := modern().Input(SelectionInput("s", choices...))
	choices[0].Content = "changed"

	assert.Contains(t, toast.Render().String(), `content="A"`)
}

func TestNew_HostResolution(t *testing.T) {
	t.Parallel()

	assert.True(t, New("a", WithHost(fixedHost(true))).IsLegacy())
	assert.False(t, New("a", WithHost(fixedHost(false))).IsLegacy())
	// WithLegacy wins over WithHost
	assert.False(t, New("a", WithHost(fixedHost(true)), WithLegacy(false)).IsLegacy())
	assert.Equal(t, "a", New("a", WithLegacy(false)).AppID())
}

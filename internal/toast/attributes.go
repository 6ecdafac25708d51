package toast

// Duration asks the shell how long to keep the toast on screen. The shell may ignore it.
type Duration string

const (
	// DurationUnset leaves the choice to the shell
	DurationUnset Duration = ""
	// DurationShort is about 7 seconds
	DurationShort Duration = "short"
	// DurationLong is about 25 seconds
	DurationLong Duration = "long"
)

// Scenario changes how the shell presents and persists the toast.
type Scenario string

const (
	// ScenarioDefault is the normal toast behaviour
	ScenarioDefault Scenario = ""
	// ScenarioAlarm stays pre-expanded until dismissed and loops alarm audio by default
	ScenarioAlarm Scenario = "alarm"
	// ScenarioReminder stays pre-expanded until dismissed
	ScenarioReminder Scenario = "reminder"
	// ScenarioIncomingCall uses the call layout and loops ringtone audio by default
	ScenarioIncomingCall Scenario = "incomingCall"
)

// IconCrop selects how an app logo override is cropped.
type IconCrop int

const (
	// CropSquare keeps the image as is
	CropSquare IconCrop = iota
	// CropCircular crops the image to a circle
	CropCircular
)

// Template names of the toast binding.
const (
	TemplateGeneric        = "ToastGeneric"
	TemplateText04         = "ToastText04"
	TemplateImageAndText04 = "ToastImageAndText04"
)

// Header groups toasts under a shared heading in the action centre.
// Only modern hosts render it.
type Header struct {
	ID        string
	Title     string
	Arguments string
}

// HeaderFromTitle creates a header whose id is its title.
func HeaderFromTitle(title string) Header {
	return Header{ID: title, Title: title}
}

func (h Header) escaped() Header {
	return Header{
		ID:        escape(h.ID),
		Title:     escape(h.Title),
		Arguments: escape(h.Arguments),
	}
}

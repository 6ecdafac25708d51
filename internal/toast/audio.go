package toast

import (
	"fmt"
	"strings"
)

// Sound is a one-shot system notification sound.
type Sound string

// System notification sounds.
const (
	SoundDefault  Sound = "Default"
	SoundIM       Sound = "IM"
	SoundMail     Sound = "Mail"
	SoundReminder Sound = "Reminder"
	SoundSMS      Sound = "SMS"
)

// LoopableSound is a sound that can be looped for the lifetime of the toast.
type LoopableSound string

// Loopable system sounds.
const (
	LoopAlarm   LoopableSound = "Alarm"
	LoopAlarm2  LoopableSound = "Alarm2"
	LoopAlarm3  LoopableSound = "Alarm3"
	LoopAlarm4  LoopableSound = "Alarm4"
	LoopAlarm5  LoopableSound = "Alarm5"
	LoopAlarm6  LoopableSound = "Alarm6"
	LoopAlarm7  LoopableSound = "Alarm7"
	LoopAlarm8  LoopableSound = "Alarm8"
	LoopAlarm9  LoopableSound = "Alarm9"
	LoopAlarm10 LoopableSound = "Alarm10"
	LoopCall    LoopableSound = "Call"
	LoopCall2   LoopableSound = "Call2"
	LoopCall3   LoopableSound = "Call3"
	LoopCall4   LoopableSound = "Call4"
	LoopCall5   LoopableSound = "Call5"
	LoopCall6   LoopableSound = "Call6"
	LoopCall7   LoopableSound = "Call7"
	LoopCall8   LoopableSound = "Call8"
	LoopCall9   LoopableSound = "Call9"
	LoopCall10  LoopableSound = "Call10"
)

var (
	sounds = []Sound{SoundDefault, SoundIM, SoundMail, SoundReminder, SoundSMS}

	loopableSounds = []LoopableSound{
		LoopAlarm, LoopAlarm2, LoopAlarm3, LoopAlarm4, LoopAlarm5,
		LoopAlarm6, LoopAlarm7, LoopAlarm8, LoopAlarm9, LoopAlarm10,
		LoopCall, LoopCall2, LoopCall3, LoopCall4, LoopCall5,
		LoopCall6, LoopCall7, LoopCall8, LoopCall9, LoopCall10,
	}
)

type audioKind int

const (
	audioUnset audioKind = iota
	audioSilent
	audioNamed
	audioOnce
	audioLooping
)

// Audio is the audio directive of a toast. The zero value leaves the host
// default sound in place.
type Audio struct {
	kind audioKind
	name string
}

// Silent mutes the toast.
func Silent() Audio {
	return Audio{kind: audioSilent}
}

// Play plays a system sound once. Play(SoundDefault) is the same as the zero Audio.
func Play(s Sound) Audio {
	return Audio{kind: audioNamed, name: string(s)}
}

// PlayOnce plays a loopable sound a single time.
func PlayOnce(s LoopableSound) Audio {
	return Audio{kind: audioOnce, name: string(s)}
}

// PlayLooping loops a sound until the toast goes away.
func PlayLooping(s LoopableSound) Audio {
	return Audio{kind: audioLooping, name: string(s)}
}

// element returns the audio markup, or "" when the host default applies.
func (a Audio) element() string {
	switch a.kind {
	case audioSilent:
		return `<audio silent="true" />`
	case audioNamed:
		if a.name == string(SoundDefault) {
			return ""
		}
		return fmt.Sprintf(`<audio src="ms-winsoundevent:Notification.%s" />`, a.name)
	case audioOnce:
		return fmt.Sprintf(`<audio src="ms-winsoundevent:Notification.Looping.%s" />`, a.name)
	case audioLooping:
		return fmt.Sprintf(`<audio loop="true" src="ms-winsoundevent:Notification.Looping.%s" />`, a.name)
	default:
		return ""
	}
}

func (a Audio) String() string {
	switch a.kind {
	case audioSilent:
		return "silent"
	case audioNamed:
		return a.name
	case audioOnce:
		return a.name + " (once)"
	case audioLooping:
		return a.name + " (looping)"
	default:
		return "default"
	}
}

// ParseAudio resolves a sound name as used in configuration files and flags.
// "silent" mutes, "" and "default" keep the host default, one-shot sounds are
// matched case-insensitively, and loopable sounds play once unless loop is set.
func ParseAudio(name string, loop bool) (Audio, error) {
	switch strings.ToLower(name) {
	case "":
		return Audio{}, nil
	case "silent", "none":
		return Silent(), nil
	}
	for _, s := range sounds {
		if strings.EqualFold(name, string(s)) {
			if loop {
				return Audio{}, fmt.Errorf("sound %q cannot loop", name)
			}
			return Play(s), nil
		}
	}
	for _, s := range loopableSounds {
		if strings.EqualFold(name, string(s)) {
			if loop {
				return PlayLooping(s), nil
			}
			return PlayOnce(s), nil
		}
	}
	return Audio{}, fmt.Errorf("unknown sound %q", name)
}

package winver

import "fmt"

// Mode selects how the legacy flag is decided.
type Mode string

const (
	// ModeAuto asks the probe
	ModeAuto Mode = "auto"
	// ModeLegacy forces legacy templates
	ModeLegacy Mode = "legacy"
	// ModeModern forces the adaptive template
	ModeModern Mode = "modern"
)

// ParseMode parses a mode name. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeLegacy, ModeModern:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown host mode %q (expected auto, legacy or modern)", s)
	}
}

// Resolve returns the legacy flag for the mode, consulting probe only for ModeAuto.
func (m Mode) Resolve(probe *Probe) bool {
	switch m {
	case ModeLegacy:
		return true
	case ModeModern:
		return false
	default:
		if probe == nil {
			probe = Host()
		}
		return probe.IsLegacyHost()
	}
}

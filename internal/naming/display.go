package naming

import (
	"errors"
	"fmt"
)

// DisplayMode selects how the generated names are combined into the long
// name shown in generic text.
type DisplayMode string

const (
	ModeEmpire           DisplayMode = "Empire"
	ModeEmpireAvatar     DisplayMode = "EmpireAvatar"
	ModeEmpireFullAvatar DisplayMode = "EmpireFullAvatar"
	ModeFullEmpire       DisplayMode = "FullEmpire"
	ModeFullEmpireAvatar DisplayMode = "FullEmpireAvatar"
	ModeFullAvatar       DisplayMode = "FullAvatar"
	ModeFullBoth         DisplayMode = "FullBoth"
)

// DefaultDisplayMode is used when no preference has been saved.
const DefaultDisplayMode = ModeFullEmpireAvatar

// ErrUnknownDisplayMode is returned when parsing an unrecognised mode.
var ErrUnknownDisplayMode = errors.New("unknown display mode")

// ModeInfo is the option text offered for a display mode.
type ModeInfo struct {
	Mode        DisplayMode
	Title       string
	Description string
}

// modeInfos is in the order the option list presents them.
var modeInfos = []ModeInfo{
	{ModeEmpireAvatar, "Culture + (Avatar)", "Add the Avatar name after the Culture name: You're at peace with the Celts (Boudicca)"},
	{ModeEmpire, "Culture", "Use the original naming: You're at peace with the Celts"},
	{ModeFullEmpire, "Culture Dynamic", "Use the dynamic Empire name based on Civics, Ideologies and Size: You're at peace with the Celtic Kingdom"},
	{ModeFullAvatar, "Avatar Dynamic", "Use the dynamic Avatar name instead of the Culture name: You're at peace with the Queen Boudicca"},
	{ModeFullBoth, "Full Dynamic", "Show the full dynamic names: You're at peace with the Celtic Kingdom (Queen Boudicca)"},
	{ModeEmpireFullAvatar, "Culture + Avatar Dynamic", "Use the dynamic Avatar name with the culture adjective: You're at peace with the Celtic Queen Boudicca"},
	{ModeFullEmpireAvatar, "Culture Dynamic + (Avatar)", "Use the dynamic Empire name with the Avatar short name: You're at peace with the Celtic Kingdom (Boudicca)"},
}

// Modes returns the option list for every display mode.
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(modeInfos))
	copy(out, modeInfos)
	return out
}

// ParseDisplayMode validates a mode identifier.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for _, info := range modeInfos {
		if string(info.Mode) == s {
			return info.Mode, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDisplayMode, s)
}

// LongNameInput carries everything the long name may be built from.
type LongNameInput struct {
	GovernmentName string // generated government-form name
	AvatarName     string // title + persona
	PersonaName    string // persona or user name, untitled
	Adjective      string // culture adjective
	RoughName      string // the host's own name for the polity
}

// ResolveLongName combines the names according to mode. Unrecognised modes
// fall back to the rough name.
func ResolveLongName(mode DisplayMode, in LongNameInput) string {
	switch mode {
	case ModeEmpire:
		return in.RoughName
	case ModeEmpireAvatar:
		return in.RoughName + " (" + in.PersonaName + ")"
	case ModeFullEmpire:
		return in.GovernmentName
	case ModeFullAvatar:
		return in.AvatarName
	case ModeFullBoth:
		return in.GovernmentName + " (" + in.AvatarName + ")"
	case ModeEmpireFullAvatar:
		return in.Adjective + " " + in.AvatarName
	case ModeFullEmpireAvatar:
		return in.GovernmentName + " (" + in.PersonaName + ")"
	default:
		return in.RoughName
	}
}

package domain

import "time"

// DefaultProfile is the preferences profile used when none is named
const DefaultProfile = "default"

// NoStartupTrack disables the startup sound
const NoStartupTrack = -1

// Preferences is the persisted choice of backend and playback tuning.
// Playback state (cursors, pending schedule) is never part of it.
type Preferences struct {
	Backend        Backend
	Port           string
	Profile        string
	RandomEnabled  bool
	RandomHi       uint16
	RandomLo       uint16
	RandomMaxDelay uint32
	RandomMinDelay uint32
	RandomMode     RandomMode
	StartupTrack   int
	UpdatedAt      time.Time
	Volume         Volume
}

// DefaultPreferences returns preferences matching a freshly started session
func DefaultPreferences(profile string) Preferences {
	if profile == "" {
		profile = DefaultProfile
	}
	return Preferences{
		Backend:        BackendDisabled,
		Profile:        profile,
		RandomHi:       DefaultRandomHi,
		RandomLo:       DefaultRandomLo,
		RandomMaxDelay: DefaultRandomMaxDelay,
		RandomMinDelay: DefaultRandomMinDelay,
		RandomMode:     RandomRange,
		StartupTrack:   NoStartupTrack,
		Volume:         VolumeDefault,
	}
}

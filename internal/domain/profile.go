package domain

import "math"

// DefaultMaxTrack is the addressing ceiling shared by the byte-indexed modules
const DefaultMaxTrack = 255

// Profile is the per-backend constant table: wire speed, addressing ceiling and
// how a unit volume maps onto the module's native scale.
type Profile struct {
	BaudRate int
	// Ceil rounds the scaled volume up instead of to nearest
	Ceil bool
	// FloorLevel is the smallest native level used for any non-zero volume
	FloorLevel int
	// Inverted is set when 0 is the loudest native level
	Inverted  bool
	MaxTrack  uint16
	MuteLevel int
	Name      string
	// Scale is the native level reached at full volume (or at silence when Inverted)
	Scale      int
	SettleTime Millis
}

var profiles = map[Backend]Profile{
	BackendDisabled: {
		MaxTrack: DefaultMaxTrack,
		Name:     "Disabled",
	},
	BackendMP3Trigger: {
		BaudRate:  38400,
		Inverted:  true,
		MaxTrack:  DefaultMaxTrack,
		MuteLevel: 254,
		Name:      "MP3 Trigger",
		Scale:     240,
	},
	BackendDFPlayer: {
		BaudRate:   9600,
		Ceil:       true,
		FloorLevel: 1,
		MaxTrack:   2999,
		MuteLevel:  0,
		Name:       "DFPlayer Mini",
		Scale:      30,
		SettleTime: 1000,
	},
	BackendHCR: {
		BaudRate:   9600,
		MaxTrack:   DefaultMaxTrack,
		MuteLevel:  0,
		Name:       "HCR Vocalizer",
		Scale:      100,
		SettleTime: 250,
	},
	BackendDYSV5W: {
		BaudRate:   9600,
		MaxTrack:   DefaultMaxTrack,
		MuteLevel:  0,
		Name:       "DY-SV5W",
		Scale:      30,
		SettleTime: 200,
	},
	BackendDYSV5WChecksum: {
		BaudRate:   38400,
		MaxTrack:   DefaultMaxTrack,
		MuteLevel:  0,
		Name:       "DY-SV5W (checksum frames)",
		Scale:      30,
		SettleTime: 200,
	},
}

// Profile returns the constant table row for b
func (b Backend) Profile() Profile {
	if p, ok := profiles[b]; ok {
		return p
	}
	return profiles[BackendDisabled]
}

// ClampTrack forces a flat track number into [1, MaxTrack]
func (p Profile) ClampTrack(track int) uint16 {
	if track < 1 {
		return 1
	}
	if track > int(p.MaxTrack) {
		return p.MaxTrack
	}
	return uint16(track)
}

// NativeVolume maps a unit volume onto the module's native level.
// Louder input never produces a quieter level, inverted scales included.
func (p Profile) NativeVolume(v Volume) int {
	v = v.Clamp()
	if p.Scale == 0 {
		return 0
	}

	scaled := float64(v) * float64(p.Scale)
	if p.Inverted {
		scaled = (1 - float64(v)) * float64(p.Scale)
	}

	var level int
	if p.Ceil {
		// float noise (0.1*30 = 3.0000000000000004) must not bump a level
		level = int(math.Ceil(scaled - 1e-9))
	} else {
		level = int(math.Round(scaled))
	}

	if !p.Inverted && v > 0 && level < p.FloorLevel {
		level = p.FloorLevel
	}
	return min(max(level, 0), p.Scale)
}

// Loudest returns the native level for full volume
func (p Profile) Loudest() int {
	return p.NativeVolume(1)
}

// Quietest returns the native level for silence
func (p Profile) Quietest() int {
	return p.NativeVolume(0)
}

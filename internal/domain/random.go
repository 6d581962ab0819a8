package domain

import "fmt"

// RandomMode selects how the scheduler picks an ambient track
type RandomMode string

const (
	// RandomRange draws a flat track uniformly from the configured [lo, hi]
	RandomRange RandomMode = "range"
	// RandomBanks draws uniformly across the legacy bank pool and plays by bank/track
	RandomBanks RandomMode = "banks"
)

// Random scheduling defaults
const (
	DefaultRandomMinDelay uint32 = 600
	DefaultRandomMaxDelay uint32 = 10000
	DefaultRandomLo       uint16 = 1
	DefaultRandomHi       uint16 = DefaultMaxTrack
	// DefaultResumeSeconds is the pause applied when resuming without an explicit delay
	DefaultResumeSeconds uint32 = 12
)

// ParseRandomMode validates a mode string
func ParseRandomMode(s string) (RandomMode, error) {
	switch RandomMode(s) {
	case RandomRange, RandomBanks:
		return RandomMode(s), nil
	case "":
		return RandomRange, nil
	}
	return "", fmt.Errorf("unknown random mode %q (expected %q or %q)", s, RandomRange, RandomBanks)
}

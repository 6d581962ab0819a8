package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Backend identifies which physical sound module a session drives.
// The numeric values double as the choice numbers used by setup menus.
type Backend int

const (
	BackendDisabled Backend = iota
	BackendMP3Trigger
	BackendDFPlayer
	BackendHCR
	BackendDYSV5W
	BackendDYSV5WChecksum
)

// Backends lists every selectable backend in choice order
var Backends = []Backend{
	BackendDisabled,
	BackendMP3Trigger,
	BackendDFPlayer,
	BackendHCR,
	BackendDYSV5W,
	BackendDYSV5WChecksum,
}

var backendKeys = map[Backend]string{
	BackendDisabled:       "disabled",
	BackendMP3Trigger:     "mp3trigger",
	BackendDFPlayer:       "dfplayer",
	BackendHCR:            "hcr",
	BackendDYSV5W:         "dysv5w",
	BackendDYSV5WChecksum: "dysv5w-checksum",
}

// String returns the short key used in flags, settings and the database
func (b Backend) String() string {
	if key, ok := backendKeys[b]; ok {
		return key
	}
	return "unknown"
}

// Name returns a human-readable module name
func (b Backend) Name() string {
	return b.Profile().Name
}

// Enabled reports whether b drives a device
func (b Backend) Enabled() bool {
	return b != BackendDisabled
}

// BaudRate returns the UART speed the caller must open the channel at (0 when disabled)
func (b Backend) BaudRate() int {
	return b.Profile().BaudRate
}

// BackendFromChoice maps a menu choice number to a backend.
// Unknown choices fall back to BackendDisabled.
func BackendFromChoice(choice int) Backend {
	for _, b := range Backends {
		if int(b) == choice {
			return b
		}
	}
	return BackendDisabled
}

// ParseBackend accepts either the short key ("dfplayer") or the choice number ("2")
func ParseBackend(s string) (Backend, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		for _, b := range Backends {
			if int(b) == n {
				return b, nil
			}
		}
		return BackendDisabled, fmt.Errorf("%w: choice %d", ErrUnknownBackend, n)
	}
	for b, key := range backendKeys {
		if key == s {
			return b, nil
		}
	}
	return BackendDisabled, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// BackendKeys returns the short keys in choice order, for flag enums and forms
func BackendKeys() []string {
	keys := make([]string, len(Backends))
	for i, b := range Backends {
		keys[i] = b.String()
	}
	return keys
}

// MarshalText encodes b as its short key
func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText accepts anything ParseBackend does
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

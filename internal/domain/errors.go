package domain

import "errors"

var (
	ErrHandshake           = errors.New("sound module did not acknowledge")
	ErrNoChannel           = errors.New("no channel bound")
	ErrPortBusy            = errors.New("serial port is in use by another process")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrUnknownBackend      = errors.New("unknown sound backend")
)

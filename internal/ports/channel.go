package ports

import (
	"io"
	"time"
)

// Channel is the byte-oriented link to a sound module (a UART in production).
// Only Write is required; reads are used by backends that handshake.
type Channel interface {
	io.Writer
}

// DuplexChannel is a Channel that can also be read
type DuplexChannel interface {
	Channel
	io.Reader
}

// ReadTimeouter is implemented by channels whose reads can be bounded
type ReadTimeouter interface {
	SetReadTimeout(timeout time.Duration) error
}

// PortOpener opens the physical channel for a backend at the required baud rate
type PortOpener interface {
	Open(name string, baudRate int) (PortChannel, error)
	List() ([]string, error)
}

// PortChannel is an opened channel that must be released by its owner
type PortChannel interface {
	DuplexChannel
	io.Closer
	Name() string
}

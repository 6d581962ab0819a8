// Package serialport opens UARTs for sound modules with go.bug.st/serial and
// guards each device with a lock file so only one process drives it.
package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// Opener implements ports.PortOpener for real serial devices
type Opener struct {
	lockDir string
}

// Port is an open, locked serial device
type Port struct {
	serial.Port
	lock *PortLock
	name string
}

// Verify interface compliance at compile time
var (
	_ ports.PortOpener    = (*Opener)(nil)
	_ ports.PortChannel   = (*Port)(nil)
	_ ports.ReadTimeouter = (*Port)(nil)
)

// NewOpener creates an opener that keeps its lock files in lockDir
func NewOpener(lockDir string) *Opener {
	return &Opener{lockDir: lockDir}
}

// Open locks name and opens it at baudRate, 8N1
func (o *Opener) Open(name string, baudRate int) (ports.PortChannel, error) {
	lock, err := AcquireLock(o.lockDir, name)
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(name, mode)
	if err != nil {
		_ = lock.Release()
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	logging.Logger.Info("Serial port opened", "port", name, "baud", baudRate)
	return &Port{Port: p, lock: lock, name: name}, nil
}

// List returns the serial devices present on this machine
func (o *Opener) List() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return names, nil
}

// Name returns the device path
func (p *Port) Name() string {
	return p.name
}

// SetReadTimeout bounds each Read; a timed out Read returns 0, nil
func (p *Port) SetReadTimeout(timeout time.Duration) error {
	return p.Port.SetReadTimeout(timeout)
}

// Close closes the device and releases its lock
func (p *Port) Close() error {
	err := p.Port.Close()
	if lerr := p.lock.Release(); err == nil {
		err = lerr
	}
	logging.Logger.Info("Serial port closed", "port", p.name)
	return err
}

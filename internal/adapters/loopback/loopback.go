// Package loopback provides a pseudo-terminal pair that stands in for a serial
// sound module. The session writes to the tty side; a Monitor reads the frames
// from the controlling side and can answer like a module would.
package loopback

import (
	"errors"
	"fmt"
	"os"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// Port is the device side of the loopback
type Port struct {
	ptmx  *os.File
	state *term.State
	tty   *os.File
}

// Verify interface compliance at compile time
var _ ports.PortChannel = (*Port)(nil)

// Open allocates a pty pair with the device side in raw mode so that bytes
// pass through without line discipline translation
func Open() (*Port, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open pty: %w", err)
	}

	state, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		ptmx.Close()
		tty.Close()
		return nil, fmt.Errorf("failed to set raw mode: %w", err)
	}

	logging.Logger.Debug("Loopback opened", "tty", tty.Name())
	return &Port{ptmx: ptmx, state: state, tty: tty}, nil
}

// Write sends bytes toward the monitor
func (p *Port) Write(b []byte) (int, error) {
	return p.tty.Write(b)
}

// Read returns bytes the monitor answered with
func (p *Port) Read(b []byte) (int, error) {
	return p.tty.Read(b)
}

// Name returns the tty path, which other programs may open like a serial port
func (p *Port) Name() string {
	return p.tty.Name()
}

// Controller returns the side the monitor reads frames from
func (p *Port) Controller() *os.File {
	return p.ptmx
}

// Close restores the terminal mode and closes both ends
func (p *Port) Close() error {
	var errs []error
	if p.state != nil {
		errs = append(errs, term.Restore(int(p.tty.Fd()), p.state))
	}
	errs = append(errs, p.tty.Close(), p.ptmx.Close())
	return errors.Join(errs...)
}

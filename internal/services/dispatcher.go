package services

import (
	"strconv"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// CommandPrefix marks a sound command
const CommandPrefix = '$'

// Random burst and themed playback timings, in seconds
const (
	startRandomDelay = 1
	burstResume      = 20
	leiaResume       = 44
	cantinaResume    = 56
	chortleResume    = 27
	discoResume      = 40
)

// Dispatcher translates short "$" commands into SoundService calls
type Dispatcher struct {
	sound *SoundService
}

// Verify interface compliance at compile time
var _ ports.CommandHandler = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher driving sound
func NewDispatcher(sound *SoundService) *Dispatcher {
	return &Dispatcher{sound: sound}
}

// Handle implements ports.CommandHandler
func (d *Dispatcher) Handle(command string) bool {
	return d.Dispatch(command)
}

// Dispatch runs a command and reports whether it was a sound command.
// Unrecognized input has no side effects so another handler may take it.
// Recognized commands return true even when the session is Disabled.
func (d *Dispatcher) Dispatch(cmd string) bool {
	if len(cmd) < 2 || len(cmd) > 5 || cmd[0] != CommandPrefix {
		return false
	}

	action := d.parse(cmd[1:])
	if action == nil {
		return false
	}

	logging.Logger.Debug("Dispatching sound command", "command", cmd)
	action()
	return true
}

// parse returns the action for body (the command without its prefix), or nil
func (d *Dispatcher) parse(body string) func() {
	s := d.sound
	c := body[0]

	switch {
	case isDigit(c):
		if len(body) > 3 {
			return nil
		}
		track := 0
		if len(body) > 1 {
			n, ok := atoi(body[1:])
			if !ok {
				return nil
			}
			track = n
		}
		bank := int(c - '0')
		return func() {
			s.StopRandom()
			s.PlaySound(bank, track)
		}

	case c >= 'G' && c <= 'K' && len(body) == 1:
		bank := int(c-'G') + 1
		return func() { s.PlaySound(bank, 0) }

	case c >= 'g' && c <= 'k' && len(body) >= 2 && len(body) <= 3:
		n, ok := atoi(body[1:])
		if !ok {
			return nil
		}
		bank := int(c-'g') + 1
		return func() { s.PlaySound(bank, n) }

	case c == 'V' && len(body) >= 3 && (body[1] == 'V' || body[1] == 'D'):
		n, ok := atoi(body[2:])
		if !ok || n > domain.VolumeSteps {
			return nil
		}
		return func() { s.SetVolumeSteps(n) }

	case len(body) == 1:
		return d.macro(c)
	}
	return nil
}

func (d *Dispatcher) macro(c byte) func() {
	s := d.sound

	burst := func(bank, track int, resume uint32) func() {
		return func() {
			s.SuspendRandom()
			s.PlaySound(bank, track)
			s.ResumeRandom(resume)
		}
	}

	switch c {
	case 'R':
		return func() { s.StartRandom(startRandomDelay) }
	case 'E':
		return func() {
			s.SuspendRandom()
			s.PlayRandom()
			s.ResumeRandom(burstResume)
		}
	case 'O':
		return func() {
			s.StopRandom()
			s.VolumeOff()
		}
	case 's':
		return func() {
			s.StopRandom()
			s.Stop()
		}
	case '+':
		return s.VolumeUp
	case '-':
		return s.VolumeDown
	case 'm':
		return s.VolumeMid
	case 'f':
		return s.VolumeMax
	case 'p':
		return s.VolumeMin
	case 'W':
		return func() {
			s.StopRandom()
			s.PlaySound(domain.BankSing, 2)
		}
	case 'M':
		return func() {
			s.StopRandom()
			s.PlaySound(domain.BankSing, 3)
		}
	case 'L':
		return burst(domain.BankLeia, 1, leiaResume)
	case 'C':
		return burst(domain.BankSing, 5, cantinaResume)
	case 'c':
		return burst(domain.BankSing, 1, chortleResume)
	case 'D':
		return burst(domain.BankSing, 6, discoResume)
	case 'S':
		return burst(domain.BankScream, 2, 0)
	case 'F':
		return burst(domain.BankScream, 3, 0)
	}
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// atoi accepts only plain decimal digits
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Package mp3trigger speaks the SparkFun MP3 Trigger binary serial protocol (38400 8N1).
//
//	't' <index>  play track by 0-based binary index
//	'O'          stop
//	'v' <level>  volume, 0 is loudest
package mp3trigger

import (
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// Command bytes
const (
	CmdPlay   byte = 't'
	CmdStop   byte = 'O'
	CmdVolume byte = 'v'
)

// Native volume limits
const (
	maxIndex   = 254
	quietLevel = 240
	muteLevel  = 254
)

// Encoder implements ports.Encoder
type Encoder struct {
	ch ports.Channel
}

// Verify interface compliance at compile time
var _ ports.Encoder = (*Encoder)(nil)

// NewEncoder creates an MP3 Trigger encoder writing to ch
func NewEncoder(ch ports.Channel) *Encoder {
	return &Encoder{ch: ch}
}

// Play triggers the flat 1-based track; the device indexes from 0
func (e *Encoder) Play(track uint16) error {
	index := int(track) - 1
	index = min(max(index, 0), maxIndex)
	return e.write(CmdPlay, byte(index))
}

// Stop halts playback
func (e *Encoder) Stop() error {
	return e.write(CmdStop)
}

// SetVolume writes an inverted level (0 loud .. 240 quiet)
func (e *Encoder) SetVolume(level int) error {
	level = min(max(level, 0), quietLevel)
	return e.write(CmdVolume, byte(level))
}

// Mute writes the attenuation level that silences the decoder
func (e *Encoder) Mute() error {
	return e.write(CmdVolume, muteLevel)
}

func (e *Encoder) write(b ...byte) error {
	if e.ch == nil {
		return domain.ErrNoChannel
	}
	_, err := e.ch.Write(b)
	return err
}

package dysv5w

import (
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// IndexEncoder drives a module through the 6-byte play-index framing.
// The framing defines no stop or volume frame, so those requests write nothing.
type IndexEncoder struct {
	ch ports.Channel
}

// ChecksumEncoder drives a module through the AA checksum framing
type ChecksumEncoder struct {
	ch ports.Channel
}

// Verify interface compliance at compile time
var (
	_ ports.Encoder = (*IndexEncoder)(nil)
	_ ports.Encoder = (*ChecksumEncoder)(nil)
)

// NewIndexEncoder creates an encoder for the 7E..EF framing
func NewIndexEncoder(ch ports.Channel) *IndexEncoder {
	return &IndexEncoder{ch: ch}
}

// Play writes the play-index frame
func (e *IndexEncoder) Play(track uint16) error {
	if track < 1 {
		track = 1
	}
	return write(e.ch, IndexFrame(track))
}

// Stop is not expressible in the index framing
func (e *IndexEncoder) Stop() error {
	logging.Logger.Debug("Stop not supported by index framing")
	return nil
}

// SetVolume is not expressible in the index framing
func (e *IndexEncoder) SetVolume(level int) error {
	logging.Logger.Debug("Volume not supported by index framing", "level", level)
	return nil
}

// Mute is not expressible in the index framing
func (e *IndexEncoder) Mute() error {
	return nil
}

// NewChecksumEncoder creates an encoder for the AA checksum framing
func NewChecksumEncoder(ch ports.Channel) *ChecksumEncoder {
	return &ChecksumEncoder{ch: ch}
}

// Play selects and starts a 1-based track: AA 07 02 HI LO SM
func (e *ChecksumEncoder) Play(track uint16) error {
	if track < 1 {
		track = 1
	}
	hi, lo := split(track)
	return write(e.ch, ChecksumFrame(ChecksumCmdTrack, hi, lo))
}

// Stop halts playback: AA 04 00 AE
func (e *ChecksumEncoder) Stop() error {
	return write(e.ch, ChecksumFrame(ChecksumCmdStop))
}

// SetVolume writes a 0..30 level: AA 13 01 VV SM
func (e *ChecksumEncoder) SetVolume(level int) error {
	level = min(max(level, 0), MaxVolume)
	return write(e.ch, ChecksumFrame(ChecksumCmdVolume, byte(level)))
}

// Mute sets the volume to zero
func (e *ChecksumEncoder) Mute() error {
	return e.SetVolume(0)
}

func write(ch ports.Channel, frame []byte) error {
	if ch == nil {
		return domain.ErrNoChannel
	}
	_, err := ch.Write(frame)
	return err
}

// Package dfplayer speaks the DFPlayer Mini serial protocol (9600 8N1).
//
// Every message is a fixed 10-byte frame:
//
//	7E FF 06 <cmd> <feedback> <hi> <lo> <chkH> <chkL> EF
//
// The checksum is the two's complement of the 16-bit sum of bytes 1..6.
package dfplayer

import (
	"bytes"
	"errors"
	"fmt"
)

// FrameSize is the length of every DFPlayer message
const FrameSize = 10

const (
	frameStart   byte = 0x7E
	frameVersion byte = 0xFF
	frameLength  byte = 0x06
	frameEnd     byte = 0xEF
)

// Commands sent to the module
const (
	CmdPlay   byte = 0x03
	CmdVolume byte = 0x06
	CmdEQ     byte = 0x07
	CmdReset  byte = 0x0C
	CmdStop   byte = 0x16
)

// Messages returned by the module
const (
	RespOnline byte = 0x3F
	RespError  byte = 0x40
	RespAck    byte = 0x41
)

// EQNormal is the flat equalizer preset
const EQNormal = 0

// Module limits
const (
	MaxTrack  = 2999
	MaxVolume = 30
)

var errBadFrame = errors.New("malformed dfplayer frame")

// Frame is one decoded message
type Frame struct {
	Cmd      byte
	Feedback bool
	Param    uint16
}

// Bytes encodes f with its checksum
func (f Frame) Bytes() []byte {
	fb := byte(0)
	if f.Feedback {
		fb = 1
	}
	b := []byte{frameStart, frameVersion, frameLength, f.Cmd, fb, byte(f.Param >> 8), byte(f.Param), 0, 0, frameEnd}
	sum := checksum(b)
	b[7], b[8] = byte(sum>>8), byte(sum)
	return b
}

func (f Frame) String() string {
	return fmt.Sprintf("cmd=0x%02X fb=%t param=%d", f.Cmd, f.Feedback, f.Param)
}

// ParseFrame decodes exactly one frame
func ParseFrame(b []byte) (Frame, error) {
	if len(b) != FrameSize {
		return Frame{}, fmt.Errorf("%w: length %d", errBadFrame, len(b))
	}
	if b[0] != frameStart || b[1] != frameVersion || b[2] != frameLength || b[9] != frameEnd {
		return Frame{}, fmt.Errorf("%w: % X", errBadFrame, b)
	}
	if want := checksum(b); uint16(b[7])<<8|uint16(b[8]) != want {
		return Frame{}, fmt.Errorf("%w: checksum mismatch, want %04X", errBadFrame, want)
	}
	return Frame{
		Cmd:      b[3],
		Feedback: b[4] != 0,
		Param:    uint16(b[5])<<8 | uint16(b[6]),
	}, nil
}

// ScanFrames is a bufio.SplitFunc that yields whole frames and skips line noise
func ScanFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := bytes.IndexByte(data, frameStart)
	if start < 0 {
		return len(data), nil, nil
	}
	if len(data)-start < FrameSize {
		if atEOF {
			return len(data), nil, nil
		}
		return start, nil, nil
	}
	candidate := data[start : start+FrameSize]
	if _, err := ParseFrame(candidate); err != nil {
		return start + 1, nil, nil
	}
	return start + FrameSize, candidate, nil
}

func checksum(b []byte) uint16 {
	var sum uint16
	for _, v := range b[1:7] {
		sum += uint16(v)
	}
	return -sum
}

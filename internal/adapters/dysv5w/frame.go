// Package dysv5w encodes the two serial framings used with DY-SV5W style sound boards.
//
// The index framing is a fixed 6-byte "play index" frame with no checksum:
//
//	7E 03 A2 <hi> <lo> EF
//
// The checksum framing carries a command, a length and a trailing sum:
//
//	AA <cmd> <len> <data...> <sum>
//
// where sum is the low byte of the arithmetic sum of every preceding byte.
package dysv5w

// Index framing
const (
	IndexStart   byte = 0x7E
	IndexEnd     byte = 0xEF
	IndexCmdPlay byte = 0xA2
)

// Checksum framing
const (
	ChecksumStart     byte = 0xAA
	ChecksumCmdStop   byte = 0x04
	ChecksumCmdTrack  byte = 0x07
	ChecksumCmdVolume byte = 0x13
)

// MaxVolume is the top of the module's 0..30 volume scale
const MaxVolume = 30

// IndexFrame builds the 6-byte play-index frame for a 1-based track
func IndexFrame(track uint16) []byte {
	hi, lo := split(track)
	return []byte{IndexStart, 0x03, IndexCmdPlay, hi, lo, IndexEnd}
}

// ChecksumFrame builds an AA-framed command with its trailing sum
func ChecksumFrame(cmd byte, data ...byte) []byte {
	frame := make([]byte, 0, len(data)+4)
	frame = append(frame, ChecksumStart, cmd, byte(len(data)))
	frame = append(frame, data...)
	return append(frame, Sum(frame))
}

// Sum returns the low 8 bits of the arithmetic sum of b
func Sum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return sum
}

func split(track uint16) (hi, lo byte) {
	return byte(track >> 8), byte(track)
}

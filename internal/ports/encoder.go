package ports

import (
	"context"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

// Encoder frames playback requests for one physical sound module.
// Every method is a fire-and-forget write; a returned error only reports
// that the bytes could not be written.
type Encoder interface {
	// Play starts the flat 1-based track
	Play(track uint16) error

	// Stop halts playback
	Stop() error

	// SetVolume writes a level already mapped onto the module's native scale
	SetVolume(level int) error

	// Mute writes the module's explicit silence command
	Mute() error
}

// Initializer is implemented by encoders whose module needs a handshake before use
type Initializer interface {
	Init(ctx context.Context) error
}

// RandomPlayer is implemented by modules that pick random sounds themselves
type RandomPlayer interface {
	PlayRandom() error
}

// EncoderFactory builds the encoder for backend bound to ch
type EncoderFactory interface {
	NewEncoder(backend domain.Backend, ch Channel) (Encoder, error)
}

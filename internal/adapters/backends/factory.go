// Package backends maps a backend choice onto its protocol encoder.
package backends

import (
	"fmt"

	"github.com/penumbra-droid/droidsound/internal/adapters/dfplayer"
	"github.com/penumbra-droid/droidsound/internal/adapters/dysv5w"
	"github.com/penumbra-droid/droidsound/internal/adapters/hcr"
	"github.com/penumbra-droid/droidsound/internal/adapters/mp3trigger"
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// Factory implements ports.EncoderFactory
type Factory struct{}

// Verify interface compliance at compile time
var _ ports.EncoderFactory = Factory{}

// NewFactory creates the encoder factory
func NewFactory() Factory {
	return Factory{}
}

// NewEncoder builds the encoder for backend writing to ch
func (Factory) NewEncoder(backend domain.Backend, ch ports.Channel) (ports.Encoder, error) {
	switch backend {
	case domain.BackendMP3Trigger:
		return mp3trigger.NewEncoder(ch), nil
	case domain.BackendDFPlayer:
		return dfplayer.NewEncoder(ch), nil
	case domain.BackendHCR:
		return hcr.NewEncoder(ch), nil
	case domain.BackendDYSV5W:
		return dysv5w.NewIndexEncoder(ch), nil
	case domain.BackendDYSV5WChecksum:
		return dysv5w.NewChecksumEncoder(ch), nil
	default:
		return nil, fmt.Errorf("%w: %s has no encoder", domain.ErrUnknownBackend, backend)
	}
}

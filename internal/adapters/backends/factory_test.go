package backends

import (
	"bytes"
	"testing"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_EveryEnabledBackend(t *testing.T) {
	for _, b := range domain.Backends {
		if !b.Enabled() {
			continue
		}
		t.Run(b.String(), func(t *testing.T) {
			var buf bytes.Buffer
			enc, err := NewFactory().NewEncoder(b, &buf)
			require.NoError(t, err)
			require.NoError(t, enc.Play(3))
			assert.NotEmpty(t, buf.Bytes())
		})
	}
}

func TestFactory_Capabilities(t *testing.T) {
	f := NewFactory()

	df, err := f.NewEncoder(domain.BackendDFPlayer, nil)
	require.NoError(t, err)
	_, ok := df.(ports.Initializer)
	assert.True(t, ok)

	voc, err := f.NewEncoder(domain.BackendHCR, nil)
	require.NoError(t, err)
	_, ok = voc.(ports.RandomPlayer)
	assert.True(t, ok)

	trig, err := f.NewEncoder(domain.BackendMP3Trigger, nil)
	require.NoError(t, err)
	_, ok = trig.(ports.Initializer)
	assert.False(t, ok)
}

func TestFactory_Disabled(t *testing.T) {
	_, err := NewFactory().NewEncoder(domain.BackendDisabled, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

package mp3trigger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

func TestPlay_ZeroBasedIndex(t *testing.T) {
	tests := []struct {
		name     string
		track    uint16
		expected []byte
	}{
		{"first track", 1, []byte{'t', 0}},
		{"bank two track five", 24, []byte{'t', 23}},
		{"zero clamps to first", 0, []byte{'t', 0}},
		{"ceiling", 255, []byte{'t', 254}},
		{"above ceiling", 900, []byte{'t', 254}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewEncoder(&buf).Play(tt.track))
			assert.Equal(t, tt.expected, buf.Bytes())
		})
	}
}

func TestStop(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Stop())
	assert.Equal(t, []byte{'O'}, buf.Bytes())
}

func TestSetVolume_ClampsToQuietLevel(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	require.NoError(t, enc.SetVolume(0))
	require.NoError(t, enc.SetVolume(120))
	require.NoError(t, enc.SetVolume(400))

	assert.Equal(t, []byte{'v', 0, 'v', 120, 'v', 240}, buf.Bytes())
}

func TestMute(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Mute())
	assert.Equal(t, []byte{'v', 254}, buf.Bytes())
}

func TestNoChannel(t *testing.T) {
	err := NewEncoder(nil).Play(1)
	assert.ErrorIs(t, err, domain.ErrNoChannel)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input    string
		expected Backend
	}{
		{"mp3trigger", BackendMP3Trigger},
		{"DFPlayer", BackendDFPlayer},
		{" hcr ", BackendHCR},
		{"dysv5w", BackendDYSV5W},
		{"dysv5w-checksum", BackendDYSV5WChecksum},
		{"0", BackendDisabled},
		{"2", BackendDFPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := ParseBackend(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestParseBackend_Unknown(t *testing.T) {
	_, err := ParseBackend("wav-shield")
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = ParseBackend("9")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestBackendFromChoice(t *testing.T) {
	assert.Equal(t, BackendMP3Trigger, BackendFromChoice(1))
	assert.Equal(t, BackendDFPlayer, BackendFromChoice(2))
	assert.Equal(t, BackendHCR, BackendFromChoice(3))
	assert.Equal(t, BackendDisabled, BackendFromChoice(42))
}

func TestBackend_BaudRate(t *testing.T) {
	assert.Equal(t, 0, BackendDisabled.BaudRate())
	assert.Equal(t, 38400, BackendMP3Trigger.BaudRate())
	assert.Equal(t, 38400, BackendDYSV5WChecksum.BaudRate())
	assert.Equal(t, 9600, BackendDFPlayer.BaudRate())
	assert.Equal(t, 9600, BackendDYSV5W.BaudRate())
	assert.Equal(t, 9600, BackendHCR.BaudRate())
}

func TestBackendJSONUsesKey(t *testing.T) {
	data, err := json.Marshal(struct{ Backend Backend }{BackendHCR})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Backend":"hcr"}`, string(data))

	var decoded struct{ Backend Backend }
	require.NoError(t, json.Unmarshal([]byte(`{"Backend":"2"}`), &decoded))
	assert.Equal(t, BackendDFPlayer, decoded.Backend)

	assert.Error(t, json.Unmarshal([]byte(`{"Backend":"theremin"}`), &decoded))
}
